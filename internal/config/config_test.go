package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/discshadow/internal/render/compositor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	pal, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, compositor.DefaultPalette(), pal)

	st := cfg.SceneState()
	assert.Equal(t, 1280, st.Width)
	assert.Equal(t, 720, st.Height)
	assert.Equal(t, 150.0, st.Disc.Radius)
	assert.Equal(t, 200.0, st.Light.Pos.X)
	assert.InDelta(t, 1.0/60, cfg.Dt(), 1e-12)
	assert.Equal(t, 100*time.Millisecond, cfg.TelemetryInterval())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"window": {"width": 800, "resizable": true},
		"scene": {"disc": {"radius": 60, "vx": 90}, "light": {"falloff": 0.00001}},
		"render": {"workers": 3, "colors": {"lit": "#80ff40"}},
		"hud": {"position": "bottom-right"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "untouched keys keep defaults")
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, 60.0, cfg.Scene.Disc.Radius)
	assert.Equal(t, 90.0, cfg.Scene.Disc.VX)
	assert.Equal(t, 12.0, cfg.Scene.Disc.VY)
	assert.Equal(t, 1e-5, cfg.Scene.Light.Falloff)
	assert.Equal(t, 3, cfg.Render.Workers)
	assert.Equal(t, "bottom-right", cfg.HUD.Position)
	assert.True(t, cfg.HUD.Show)

	pal, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x80, 0xff, 0x40, 0xff}, pal.Lit)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad json", `{"window": `, "failed to parse config"},
		{"zero radius", `{"scene": {"disc": {"radius": 0}}}`, "radius"},
		{"negative falloff", `{"scene": {"light": {"falloff": -1}}}`, "falloff"},
		{"bad color", `{"render": {"colors": {"shadow": "black"}}}`, "color shadow"},
		{"negative workers", `{"render": {"workers": -2}}`, "workers"},
		{"zero window", `{"window": {"height": 0}}`, "window size"},
		{"zero tps", `{"window": {"tps": 0}}`, "tps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("x", "0a0B0c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{10, 11, 12, 255}, c)

	for _, bad := range []string{"", "fff", "gggggg", "#12345", "1234567"} {
		_, err := parseHexColor("x", bad)
		assert.Error(t, err, bad)
	}
}
