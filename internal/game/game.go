package game

import (
	"context"
	"fmt"

	"chosenoffset.com/discshadow/internal/config"
	"chosenoffset.com/discshadow/internal/core/scene"
	"chosenoffset.com/discshadow/internal/input"
	"chosenoffset.com/discshadow/internal/render"
	"chosenoffset.com/discshadow/internal/render/compositor"
	"chosenoffset.com/discshadow/internal/telemetry"
	"chosenoffset.com/discshadow/internal/ui/hud"
)

// Game drives one frame per tick: input and physics update the scene, the compositor
// shades it, and the overlay is drawn on top.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Resizable    bool
	Dt           float64

	Scene      scene.State
	Compositor *compositor.Compositor
	Frame      []byte

	Renderer  render.Renderer
	InputMgr  render.InputManager
	Input     *input.Adapter
	Overlay   *hud.Overlay
	Telemetry *telemetry.Monitor

	// GraphicsLibrary is queried once the first frame is drawn, for the startup log.
	GraphicsLibrary func() string

	Paused bool

	ctx context.Context

	// Debug
	FrameCount int
}

// NewGame builds a game from cfg. ctx bounds frame rendering; cancelling it makes
// in-flight frames stop early.
func NewGame(ctx context.Context, cfg *config.Config, r render.Renderer, inputMgr render.InputManager, monitor *telemetry.Monitor) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	comp := compositor.New(cfg.Render.Workers)
	comp.Palette = palette
	comp.DrawBodies = cfg.Render.DrawBodies

	if ctx == nil {
		ctx = context.Background()
	}

	hudConfig := cfg.HUD
	return &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Resizable:    cfg.Window.Resizable,
		Dt:           cfg.Dt(),
		Scene:        cfg.SceneState(),
		Compositor:   comp,
		Renderer:     r,
		InputMgr:     inputMgr,
		Input:        input.NewAdapter(inputMgr),
		Overlay:      hud.New(&hudConfig, r, cfg.Window.Width, cfg.Window.Height),
		Telemetry:    monitor,
		ctx:          ctx,
	}, nil
}

// Update handles input and advances the scene by one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.Overlay.Toggle()
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyB) {
		g.Compositor.DrawBodies = !g.Compositor.DrawBodies
	}
	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.Paused = !g.Paused
	}

	g.Scene = scene.Resize(g.Scene, g.ScreenWidth, g.ScreenHeight)

	dt := g.Dt
	if g.Paused {
		dt = 0
	}
	g.Scene = scene.Update(g.Scene, dt, g.Input.Poll())

	g.Overlay.SetStatus(g.status())
	return nil
}

func (g *Game) status() string {
	switch {
	case g.Paused:
		return "Paused"
	case g.Scene.Dragging:
		return fmt.Sprintf("Light: %.0f, %.0f", g.Scene.Light.Pos.X, g.Scene.Light.Pos.Y)
	default:
		return ""
	}
}

// Layout returns the logical screen size. A resizable window renders at its real size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Resizable && outsideWidth > 0 && outsideHeight > 0 {
		if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
			g.ScreenWidth, g.ScreenHeight = outsideWidth, outsideHeight
			g.Overlay.SetScreenSize(outsideWidth, outsideHeight)
		}
	}
	return g.ScreenWidth, g.ScreenHeight
}
