package game

import (
	"image/color"
	"log"

	"chosenoffset.com/discshadow/internal/render"
)

var dragRingColor = color.RGBA{255, 160, 40, 255}

// Draw renders the scene to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()

	frame, err := g.Compositor.RenderInto(g.ctx, g.Scene, g.Frame, w, h)
	g.Frame = frame
	if err != nil {
		// Shutting down; the half-written frame is never shown.
		log.Printf("Frame abandoned: %v", err)
		screen.Clear()
		return
	}
	if len(frame) == 0 {
		screen.Clear()
	} else {
		screen.WritePixels(frame)
	}

	if g.Scene.Dragging && g.Compositor.DrawBodies {
		light := g.Scene.Light
		g.Renderer.StrokeCircle(screen,
			float32(light.Pos.X),
			float32(light.Pos.Y),
			float32(light.Radius)+3,
			2,
			dragRingColor)
	}

	if g.Telemetry != nil {
		g.Telemetry.FrameDone()
		g.Overlay.Draw(screen, g.Telemetry.Latest())
	}

	g.FrameCount++
	if g.FrameCount == 1 {
		log.Printf("First frame %dx%d with %d workers", w, h, g.Compositor.Concurrency())
		if g.GraphicsLibrary != nil {
			log.Printf("Graphics library: %s", g.GraphicsLibrary())
		}
	}
}
