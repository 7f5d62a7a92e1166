package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/discshadow/internal/core/shadows"
)

func testState() State {
	return State{
		Width:  1280,
		Height: 720,
		Disc: Body{
			Center:   shadows.Point{X: 850, Y: 360},
			Velocity: shadows.Point{X: 0, Y: 12},
			Radius:   150,
		},
		Light: Light{
			Pos:     shadows.Point{X: 200, Y: 360},
			Radius:  25,
			Falloff: 1e-6,
		},
	}
}

func TestUpdateIsPure(t *testing.T) {
	st := testState()
	st.Disc.Velocity = shadows.Point{X: 431.5, Y: -977.25}
	events := []Event{
		{Kind: DragStart, Pos: shadows.Point{X: 205, Y: 355}},
		{Kind: DragMove, Pos: shadows.Point{X: 400, Y: 100}},
	}

	first := Update(st, 0.37, events)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Update(st, 0.37, events))
	}
	assert.Equal(t, testState().Light, Update(testState(), 0, nil).Light, "input state must not change")
}

func TestBounceRightWall(t *testing.T) {
	st := testState()
	r := st.Disc.Radius
	st.Disc.Center = shadows.Point{X: float64(st.Width) - r - 1, Y: 360}
	st.Disc.Velocity = shadows.Point{X: 100, Y: 0}

	next := Update(st, 1, nil)

	assert.Less(t, next.Disc.Velocity.X, 0.0, "x velocity should flip")
	assert.LessOrEqual(t, next.Disc.Center.X+r, float64(st.Width))
	assert.InDelta(t, 1031.0, next.Disc.Center.X, 1e-9)
}

func TestBounceAllWalls(t *testing.T) {
	tests := []struct {
		name   string
		center shadows.Point
		vel    shadows.Point
		wantVX float64
		wantVY float64
	}{
		{"left", shadows.Point{X: 160, Y: 360}, shadows.Point{X: -50, Y: 0}, 50, 0},
		{"top", shadows.Point{X: 640, Y: 155}, shadows.Point{X: 0, Y: -20}, 0, 20},
		{"bottom", shadows.Point{X: 640, Y: 565}, shadows.Point{X: 0, Y: 20}, 0, -20},
		{"corner", shadows.Point{X: 1125, Y: 565}, shadows.Point{X: 20, Y: 20}, -20, -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{Center: tt.center, Velocity: tt.vel, Radius: 150}
			got := Step(b, 1, 1280, 720)
			assert.Equal(t, tt.wantVX, got.Velocity.X)
			assert.Equal(t, tt.wantVY, got.Velocity.Y)
			assertInside(t, got, 1280, 720)
		})
	}
}

func TestStepHugeDt(t *testing.T) {
	b := Body{Center: shadows.Point{X: 640, Y: 360}, Velocity: shadows.Point{X: 1e5, Y: -3e4}, Radius: 40}
	got := Step(b, 17.3, 1280, 720)
	assertInside(t, got, 1280, 720)
	assert.Equal(t, math.Abs(b.Velocity.X), math.Abs(got.Velocity.X))
}

func TestStepDiscWiderThanFrame(t *testing.T) {
	b := Body{Center: shadows.Point{X: 10, Y: 360}, Velocity: shadows.Point{X: 5, Y: 0}, Radius: 1000}
	got := Step(b, 1, 1280, 720)
	assert.Equal(t, 640.0, got.Center.X)
	assert.Equal(t, 360.0, got.Center.Y)
}

func TestUpdateIgnoresBadDt(t *testing.T) {
	st := testState()
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.Equal(t, st, Update(st, dt, nil), "dt=%v", dt)
	}
}

func TestDragGesture(t *testing.T) {
	st := testState()

	// Pressing away from the light does not grab it.
	missed := Update(st, 0, []Event{
		{Kind: DragStart, Pos: shadows.Point{X: 600, Y: 600}},
		{Kind: DragMove, Pos: shadows.Point{X: 700, Y: 700}},
	})
	assert.False(t, missed.Dragging)
	assert.Equal(t, st.Light.Pos, missed.Light.Pos)

	grabbed := Update(st, 0, []Event{
		{Kind: DragStart, Pos: shadows.Point{X: 210, Y: 350}},
		{Kind: DragMove, Pos: shadows.Point{X: 500, Y: 100}},
	})
	require.True(t, grabbed.Dragging)
	assert.Equal(t, shadows.Point{X: 500, Y: 100}, grabbed.Light.Pos)

	released := Update(grabbed, 0, []Event{
		{Kind: DragEnd},
		{Kind: DragMove, Pos: shadows.Point{X: 10, Y: 10}},
	})
	assert.False(t, released.Dragging)
	assert.Equal(t, shadows.Point{X: 500, Y: 100}, released.Light.Pos)
}

func TestDragClampsAndRejectsBadCoordinates(t *testing.T) {
	st := testState()
	st.Dragging = true

	clamped := Update(st, 0, []Event{{Kind: DragMove, Pos: shadows.Point{X: -300, Y: 5000}}})
	assert.Equal(t, shadows.Point{X: 0, Y: 720}, clamped.Light.Pos)

	nan := Update(st, 0, []Event{{Kind: DragMove, Pos: shadows.Point{X: math.NaN(), Y: 10}}})
	assert.Equal(t, st.Light.Pos, nan.Light.Pos)

	inf := Update(st, 0, []Event{{Kind: DragMove, Pos: shadows.Point{X: 10, Y: math.Inf(1)}}})
	assert.Equal(t, st.Light.Pos, inf.Light.Pos)
}

func TestResize(t *testing.T) {
	st := testState()
	st.Light.Pos = shadows.Point{X: 1200, Y: 700}

	small := Resize(st, 800, 600)
	assert.Equal(t, 800, small.Width)
	assert.Equal(t, 600, small.Height)
	assert.Equal(t, shadows.Point{X: 800, Y: 600}, small.Light.Pos)
	assertInside(t, small.Disc, 800, 600)

	assert.Equal(t, st, Resize(st, 0, 600))
	assert.Equal(t, st, Resize(st, 800, -1))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(testState()))

	bad := testState()
	bad.Disc.Radius = 0
	bad.Light.Falloff = -1
	bad.Width = 0
	bad.Light.Pos.X = math.NaN()

	err := Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radius")
	assert.Contains(t, err.Error(), "falloff")
	assert.Contains(t, err.Error(), "bounds")
	assert.Contains(t, err.Error(), "light position")
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "drag-start", DragStart.String())
	assert.Equal(t, "drag-move", DragMove.String())
	assert.Equal(t, "drag-end", DragEnd.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}

func assertInside(t *testing.T, b Body, w, h int) {
	t.Helper()
	assert.GreaterOrEqual(t, b.Center.X-b.Radius, 0.0)
	assert.LessOrEqual(t, b.Center.X+b.Radius, float64(w))
	assert.GreaterOrEqual(t, b.Center.Y-b.Radius, 0.0)
	assert.LessOrEqual(t, b.Center.Y+b.Radius, float64(h))
}
