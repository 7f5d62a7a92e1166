// Package hud draws the telemetry overlay on top of the rendered frame.
package hud

import (
	"fmt"
	"image/color"
	"io"

	"chosenoffset.com/discshadow/internal/render"
	"chosenoffset.com/discshadow/internal/telemetry"
)

const (
	padding    = 10
	lineHeight = 16
	textInset  = 8
)

// Config defines what the overlay shows and where
type Config struct {
	Show     bool    `json:"show"`
	Position string  `json:"position"` // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity  float64 `json:"opacity"`  // Background opacity (0-1)
	ShowHeap bool    `json:"show_heap"`
	ShowHelp bool    `json:"show_help"`
}

// DefaultConfig returns a sensible default overlay configuration
func DefaultConfig() *Config {
	return &Config{
		Show:     true,
		Position: "top-left",
		Opacity:  0.6,
		ShowHeap: true,
		ShowHelp: true,
	}
}

// Overlay manages the telemetry text panel
type Overlay struct {
	config       *Config
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
	status       string
	panel        render.Image
}

// New creates a new overlay with the given configuration
func New(config *Config, r render.Renderer, screenWidth, screenHeight int) *Overlay {
	if config == nil {
		config = DefaultConfig()
	}
	return &Overlay{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetScreenSize updates the screen dimensions
func (o *Overlay) SetScreenSize(width, height int) {
	o.screenWidth = width
	o.screenHeight = height
}

// SetStatus sets a free-form line shown under the telemetry
func (o *Overlay) SetStatus(status string) {
	o.status = status
}

// Toggle flips overlay visibility
func (o *Overlay) Toggle() {
	o.config.Show = !o.config.Show
}

// Visible reports whether the overlay is drawn
func (o *Overlay) Visible() bool {
	return o.config.Show
}

// Lines returns the text lines for a snapshot, top to bottom
func (o *Overlay) Lines(s telemetry.Stats) []string {
	lines := []string{s.String()}
	if o.config.ShowHeap {
		lines = append(lines, fmt.Sprintf("Go heap: %.1fMB", s.HeapMB))
	}
	if o.status != "" {
		lines = append(lines, o.status)
	}
	if o.config.ShowHelp {
		lines = append(lines, "Drag the light | H: overlay | B: shapes | Space: pause | Esc: quit")
	}
	return lines
}

// Draw renders the overlay to the screen
func (o *Overlay) Draw(screen render.Image, s telemetry.Stats) {
	if !o.config.Show || o.renderer == nil {
		return
	}

	lines := o.Lines(s)
	width := 0
	for _, line := range lines {
		w, _ := o.renderer.MeasureText(line, 1)
		width = max(width, w)
	}
	width += 2 * textInset
	height := len(lines)*lineHeight + textInset

	x, y := o.calculatePosition(width, height)
	o.drawPanel(screen, x, y, width, height)

	currentY := y + textInset/2
	for i, line := range lines {
		clr := color.RGBA{255, 255, 200, 255}
		if i > 0 {
			clr = color.RGBA{180, 180, 180, 255}
		}
		o.renderer.DrawText(screen, line, x+textInset, currentY, clr, 1.0)
		currentY += lineHeight
	}
}

// drawPanel draws the semi-transparent background panel. The panel image is
// reused across frames and only reallocated when the line set changes size.
func (o *Overlay) drawPanel(screen render.Image, x, y, width, height int) {
	if o.panel == nil || o.panel.Bounds().Dx() != width || o.panel.Bounds().Dy() != height {
		if o.panel != nil {
			o.panel.Dispose()
		}
		o.panel = o.renderer.NewImage(width, height)
	}

	alpha := uint8(clamp01(o.config.Opacity) * 255)
	// Premultiplied: the RGB channels must not exceed alpha.
	o.panel.Fill(color.RGBA{R: alpha / 12, G: alpha / 12, B: alpha / 8, A: alpha})

	border := color.RGBA{R: alpha / 4, G: alpha / 4, B: alpha / 3, A: alpha}
	w, h := float32(width), float32(height)
	o.renderer.FillRect(o.panel, 0, 0, w, 1, border)
	o.renderer.FillRect(o.panel, 0, h-1, w, 1, border)
	o.renderer.FillRect(o.panel, 0, 0, 1, h, border)
	o.renderer.FillRect(o.panel, w-1, 0, 1, h, border)

	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(o.panel, op)
}

// Echo writes the status line with a carriage return so it overwrites itself in a terminal.
func Echo(w io.Writer, s telemetry.Stats) {
	fmt.Fprintf(w, "\r%s", s.String())
}

// calculatePosition returns the top-left corner of the panel
func (o *Overlay) calculatePosition(width, height int) (int, int) {
	switch o.config.Position {
	case "top-right":
		return o.screenWidth - width - padding, padding
	case "bottom-left":
		return padding, o.screenHeight - height - padding
	case "bottom-right":
		return o.screenWidth - width - padding, o.screenHeight - height - padding
	default: // "top-left"
		return padding, padding
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
