// Package config holds the demo's tunables. Values are loaded from a JSON file
// layered over the defaults, so a file only needs the keys it changes.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"chosenoffset.com/discshadow/internal/core/scene"
	"chosenoffset.com/discshadow/internal/core/shadows"
	"chosenoffset.com/discshadow/internal/render/compositor"
	"chosenoffset.com/discshadow/internal/ui/hud"
)

// Config holds all settings for a run
type Config struct {
	Window    WindowConfig    `json:"window"`
	Scene     SceneConfig     `json:"scene"`
	Render    RenderConfig    `json:"render"`
	HUD       hud.Config      `json:"hud"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

// WindowConfig defines the window and tick rate
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
	TPS       int    `json:"tps"` // Update calls per second, also fixes dt
}

// SceneConfig is the starting scene
type SceneConfig struct {
	Disc  DiscConfig  `json:"disc"`
	Light LightConfig `json:"light"`
}

// DiscConfig places the occluder
type DiscConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	VX     float64 `json:"vx"` // pixels per second
	VY     float64 `json:"vy"`
}

// LightConfig places the light
type LightConfig struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Radius  float64 `json:"radius"`  // grab and marker radius
	Falloff float64 `json:"falloff"` // k in 1/(1+k*d^2), 0 disables falloff
}

// RenderConfig controls the compositor
type RenderConfig struct {
	Workers    int          `json:"workers"` // 0 = one per CPU
	DrawBodies bool         `json:"draw_bodies"`
	Colors     ColorsConfig `json:"colors"`
}

// ColorsConfig holds "RRGGBB" hex colours
type ColorsConfig struct {
	Lit    string `json:"lit"`
	Shadow string `json:"shadow"`
	Body   string `json:"body"`
	Marker string `json:"marker"`
}

// TelemetryConfig controls sampling
type TelemetryConfig struct {
	IntervalMS int  `json:"interval_ms"`
	Echo       bool `json:"echo"` // also print the status line to stdout
}

// DefaultConfig returns the classic scene: a 1280x720 window, a large disc bouncing
// vertically and the light to its left.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Disc Shadow",
			Resizable: false,
			TPS:       60,
		},
		Scene: SceneConfig{
			Disc: DiscConfig{
				X:      850,
				Y:      360,
				Radius: 150,
				VX:     0,
				VY:     12,
			},
			Light: LightConfig{
				X:       200,
				Y:       360,
				Radius:  25,
				Falloff: 0,
			},
		},
		Render: RenderConfig{
			Workers:    0,
			DrawBodies: true,
			Colors: ColorsConfig{
				Lit:    "ffff00",
				Shadow: "000000",
				Body:   "ffffff",
				Marker: "ffffff",
			},
		},
		HUD: *hud.DefaultConfig(),
		Telemetry: TelemetryConfig{
			IntervalMS: 100,
			Echo:       false,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate rejects values the renderer cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Window.TPS))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Render.Workers))
	}
	if c.Telemetry.IntervalMS < 0 {
		errs = append(errs, fmt.Errorf("telemetry interval must not be negative, got %d", c.Telemetry.IntervalMS))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		// Scene checks need valid window bounds.
		if err := scene.Validate(c.SceneState()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SceneState builds the initial scene for the configured window
func (c *Config) SceneState() scene.State {
	return scene.State{
		Width:  c.Window.Width,
		Height: c.Window.Height,
		Disc: scene.Body{
			Center:   shadows.Point{X: c.Scene.Disc.X, Y: c.Scene.Disc.Y},
			Velocity: shadows.Point{X: c.Scene.Disc.VX, Y: c.Scene.Disc.VY},
			Radius:   c.Scene.Disc.Radius,
		},
		Light: scene.Light{
			Pos:     shadows.Point{X: c.Scene.Light.X, Y: c.Scene.Light.Y},
			Radius:  c.Scene.Light.Radius,
			Falloff: c.Scene.Light.Falloff,
		},
	}
}

// Palette parses the configured colours
func (c *Config) Palette() (compositor.Palette, error) {
	var p compositor.Palette
	var err error
	if p.Lit, err = parseHexColor("lit", c.Render.Colors.Lit); err != nil {
		return p, err
	}
	if p.Shadow, err = parseHexColor("shadow", c.Render.Colors.Shadow); err != nil {
		return p, err
	}
	if p.Body, err = parseHexColor("body", c.Render.Colors.Body); err != nil {
		return p, err
	}
	if p.Marker, err = parseHexColor("marker", c.Render.Colors.Marker); err != nil {
		return p, err
	}
	return p, nil
}

// Dt is the fixed simulation step in seconds
func (c *Config) Dt() float64 {
	if c.Window.TPS <= 0 {
		return 0
	}
	return 1 / float64(c.Window.TPS)
}

// TelemetryInterval converts the sampling period
func (c *Config) TelemetryInterval() time.Duration {
	return time.Duration(c.Telemetry.IntervalMS) * time.Millisecond
}

// parseHexColor parses "RRGGBB" into an opaque colour
func parseHexColor(name, s string) (color.RGBA, error) {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b uint8
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %s: want RRGGBB, got %q", name, s)
	}
	if n, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return color.RGBA{}, fmt.Errorf("color %s: want RRGGBB, got %q", name, s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
