package scene

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/discshadow/internal/core/shadows"
)

// Validate checks the invariants the evaluator relies on
func Validate(st State) error {
	var errs []error
	if st.Width <= 0 || st.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame bounds must be positive, got %dx%d", st.Width, st.Height))
	}
	if !(st.Disc.Radius > 0) || math.IsInf(st.Disc.Radius, 0) {
		errs = append(errs, fmt.Errorf("disc radius must be positive and finite, got %v", st.Disc.Radius))
	}
	if !(st.Light.Falloff >= 0) || math.IsInf(st.Light.Falloff, 0) {
		errs = append(errs, fmt.Errorf("light falloff must be non-negative and finite, got %v", st.Light.Falloff))
	}
	if !(st.Light.Radius >= 0) {
		errs = append(errs, fmt.Errorf("light radius must be non-negative, got %v", st.Light.Radius))
	}
	if !st.Disc.Center.IsFinite() || !st.Disc.Velocity.IsFinite() {
		errs = append(errs, errors.New("disc position and velocity must be finite"))
	}
	if !st.Light.Pos.IsFinite() {
		errs = append(errs, errors.New("light position must be finite"))
	}
	return errors.Join(errs...)
}

// Update applies the frame's input events in order and then advances the disc by dt seconds.
func Update(st State, dt float64, events []Event) State {
	for _, ev := range events {
		st = applyEvent(st, ev)
	}
	if dt > 0 && !math.IsInf(dt, 0) {
		st.Disc = Step(st.Disc, dt, st.Width, st.Height)
	}
	return st
}

func applyEvent(st State, ev Event) State {
	if ev.Kind == DragEnd {
		st.Dragging = false
		return st
	}
	if !ev.Pos.IsFinite() {
		return st
	}
	pos := clampToFrame(ev.Pos, st.Width, st.Height)

	switch ev.Kind {
	case DragStart:
		// Only grab when the pointer lands on the light marker.
		if shadows.Distance(pos, st.Light.Pos) <= st.Light.Radius {
			st.Dragging = true
		}
	case DragMove:
		if st.Dragging {
			st.Light.Pos = pos
		}
	}
	return st
}

// Step moves the body by velocity*dt and bounces it off the frame edges.
// The disc edge never leaves [0,w]x[0,h]; an axis narrower than the disc pins the
// centre to the middle of that axis.
func Step(b Body, dt float64, w, h int) Body {
	if !b.Center.IsFinite() || !b.Velocity.IsFinite() {
		return b
	}
	b.Center.X = clampCenter(b.Center.X, b.Radius, float64(w))
	b.Center.Y = clampCenter(b.Center.Y, b.Radius, float64(h))
	next := b.Center.Add(b.Velocity.Scale(dt))
	if !next.IsFinite() {
		return b
	}
	b.Center.X, b.Velocity.X = reflect(next.X, b.Velocity.X, b.Radius, float64(w))
	b.Center.Y, b.Velocity.Y = reflect(next.Y, b.Velocity.Y, b.Radius, float64(h))
	return b
}

// reflect folds pos back inside [r, size-r] like a ball between two walls, flipping v
// once per wall crossed.
func reflect(pos, v, r, size float64) (float64, float64) {
	lo, hi := r, size-r
	if hi <= lo {
		return size / 2, v
	}
	span := hi - lo
	folds := math.Floor((pos - lo) / span)
	if folds == 0 {
		return pos, v
	}
	m := math.Max(0, math.Min(span, pos-lo-folds*span))
	if math.Mod(folds, 2) == 0 {
		return lo + m, v
	}
	return hi - m, -v
}

// Resize changes the frame bounds and clamps the light and disc back inside them.
// Non-positive sizes leave the state unchanged.
func Resize(st State, w, h int) State {
	if w <= 0 || h <= 0 || (w == st.Width && h == st.Height) {
		return st
	}
	st.Width, st.Height = w, h
	st.Light.Pos = clampToFrame(st.Light.Pos, w, h)
	st.Disc.Center.X = clampCenter(st.Disc.Center.X, st.Disc.Radius, float64(w))
	st.Disc.Center.Y = clampCenter(st.Disc.Center.Y, st.Disc.Radius, float64(h))
	return st
}

func clampCenter(c, r, size float64) float64 {
	if size-r <= r {
		return size / 2
	}
	return math.Max(r, math.Min(size-r, c))
}

func clampToFrame(p shadows.Point, w, h int) shadows.Point {
	return shadows.Point{
		X: math.Max(0, math.Min(float64(w), p.X)),
		Y: math.Max(0, math.Min(float64(h), p.Y)),
	}
}
