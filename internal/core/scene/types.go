// Package scene holds the per-frame state of the bouncing disc and the draggable light.
//
// State is a plain value. Update never mutates its argument, so the same (state, dt,
// events) always produce the same result and callers can keep the previous frame around.
package scene

import (
	"chosenoffset.com/discshadow/internal/core/shadows"
)

// Body is the moving occluder
type Body struct {
	Center   shadows.Point
	Velocity shadows.Point // pixels per second
	Radius   float64
}

// Disc returns the occluding shape of the body
func (b Body) Disc() shadows.Disc {
	return shadows.Disc{Center: b.Center, Radius: b.Radius}
}

// Light is the point light the user drags around
type Light struct {
	Pos     shadows.Point
	Radius  float64 // grab and marker radius
	Falloff float64 // k in 1/(1+k*d^2)
}

// State aggregates everything the renderer needs for one frame
type State struct {
	Width    int
	Height   int
	Disc     Body
	Light    Light
	Dragging bool
}

// EventKind identifies a pointer gesture step
type EventKind int

const (
	DragStart EventKind = iota
	DragMove
	DragEnd
)

func (k EventKind) String() string {
	switch k {
	case DragStart:
		return "drag-start"
	case DragMove:
		return "drag-move"
	case DragEnd:
		return "drag-end"
	default:
		return "unknown"
	}
}

// Event is one pointer input for the frame
type Event struct {
	Kind EventKind
	Pos  shadows.Point
}
