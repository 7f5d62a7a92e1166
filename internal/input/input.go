// Package input turns raw pointer state into scene drag events.
package input

import (
	"chosenoffset.com/discshadow/internal/core/scene"
	"chosenoffset.com/discshadow/internal/core/shadows"
	"chosenoffset.com/discshadow/internal/render"
)

// Adapter polls an InputManager once per tick
type Adapter struct {
	input  render.InputManager
	button render.MouseButton

	lastX, lastY int
	held         bool
}

// NewAdapter creates an adapter that drags with the left mouse button
func NewAdapter(input render.InputManager) *Adapter {
	return &Adapter{input: input, button: render.MouseButtonLeft}
}

// Poll returns this tick's drag events in the order they happened.
// A press that is still held also reports a move to the press position, so a
// grabbed light snaps to the cursor on the same tick. After that a move is only
// reported while the button is held and the cursor actually moved.
func (a *Adapter) Poll() []scene.Event {
	x, y := a.input.GetCursorPosition()
	pos := shadows.Point{X: float64(x), Y: float64(y)}

	var events []scene.Event
	if a.input.IsMouseButtonJustPressed(a.button) {
		events = append(events, scene.Event{Kind: scene.DragStart, Pos: pos})
		a.held = true
		if a.input.IsMouseButtonPressed(a.button) {
			events = append(events, scene.Event{Kind: scene.DragMove, Pos: pos})
		}
	} else if a.held && a.input.IsMouseButtonPressed(a.button) && (x != a.lastX || y != a.lastY) {
		events = append(events, scene.Event{Kind: scene.DragMove, Pos: pos})
	}

	if a.held && (a.input.IsMouseButtonJustReleased(a.button) || !a.input.IsMouseButtonPressed(a.button)) {
		events = append(events, scene.Event{Kind: scene.DragEnd, Pos: pos})
		a.held = false
	}

	a.lastX, a.lastY = x, y
	return events
}
