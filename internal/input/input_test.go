package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/discshadow/internal/core/scene"
	"chosenoffset.com/discshadow/internal/core/shadows"
	"chosenoffset.com/discshadow/internal/render"
)

type fakeInput struct {
	x, y                    int
	pressed, down, released bool
}

func (f *fakeInput) IsKeyJustPressed(render.Key) bool { return false }
func (f *fakeInput) GetCursorPosition() (int, int)    { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool {
	return f.down
}
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool {
	return f.pressed
}
func (f *fakeInput) IsMouseButtonJustReleased(render.MouseButton) bool {
	return f.released
}

func kinds(events []scene.Event) []scene.EventKind {
	var out []scene.EventKind
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestAdapterDragSequence(t *testing.T) {
	in := &fakeInput{x: 10, y: 20}
	a := NewAdapter(in)

	assert.Empty(t, a.Poll(), "idle cursor")

	in.pressed, in.down = true, true
	events := a.Poll()
	assert.Equal(t, []scene.EventKind{scene.DragStart, scene.DragMove}, kinds(events))
	assert.Equal(t, shadows.Point{X: 10, Y: 20}, events[0].Pos)
	assert.Equal(t, shadows.Point{X: 10, Y: 20}, events[1].Pos)

	in.pressed = false
	assert.Empty(t, a.Poll(), "held without moving")

	in.x, in.y = 30, 40
	events = a.Poll()
	assert.Equal(t, []scene.EventKind{scene.DragMove}, kinds(events))
	assert.Equal(t, shadows.Point{X: 30, Y: 40}, events[0].Pos)

	in.down, in.released = false, true
	assert.Equal(t, []scene.EventKind{scene.DragEnd}, kinds(a.Poll()))

	in.released = false
	in.x = 99
	assert.Empty(t, a.Poll(), "moving with the button up")
}

func TestAdapterClickWithinOneTick(t *testing.T) {
	in := &fakeInput{x: 5, y: 5, pressed: true, released: true}
	a := NewAdapter(in)

	assert.Equal(t, []scene.EventKind{scene.DragStart, scene.DragEnd}, kinds(a.Poll()))
}

func TestAdapterPressSnapsLight(t *testing.T) {
	st := scene.State{
		Width:  100,
		Height: 100,
		Light:  scene.Light{Pos: shadows.Point{X: 50, Y: 50}, Radius: 8},
	}
	in := &fakeInput{x: 55, y: 47, pressed: true, down: true}
	a := NewAdapter(in)

	st = scene.Update(st, 0, a.Poll())
	assert.True(t, st.Dragging)
	assert.Equal(t, shadows.Point{X: 55, Y: 47}, st.Light.Pos)
}

func TestAdapterMissedRelease(t *testing.T) {
	in := &fakeInput{pressed: true, down: true}
	a := NewAdapter(in)
	a.Poll()

	// Button went up while the window had no focus.
	in.pressed, in.down = false, false
	assert.Equal(t, []scene.EventKind{scene.DragEnd}, kinds(a.Poll()))
}
