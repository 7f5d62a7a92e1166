// Package compositor turns a scene into an RGBA framebuffer.
//
// The buffer is row-major, top to bottom, four bytes per pixel in R, G, B, A order with
// alpha always 255, which is the layout ebiten's WritePixels expects. Rows are split into
// horizontal bands that are shaded in parallel; each band writes only its own byte range,
// and Render returns only after every band has finished.
package compositor

import (
	"context"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/discshadow/internal/core/scene"
	"chosenoffset.com/discshadow/internal/core/shadows"
)

// BytesPerPixel is the size of one RGBA pixel in the output buffer.
const BytesPerPixel = 4

// bandsPerWorker oversplits the frame so a slow band does not stall the join.
const bandsPerWorker = 4

// Palette holds the colours used for each kind of pixel
type Palette struct {
	Lit    color.RGBA // base colour of lit floor, scaled by falloff
	Shadow color.RGBA
	Body   color.RGBA // the disc itself
	Marker color.RGBA // the light handle
}

// DefaultPalette matches the classic look: yellow floor, black shadow, white shapes.
func DefaultPalette() Palette {
	return Palette{
		Lit:    color.RGBA{0xff, 0xff, 0x00, 0xff},
		Shadow: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Body:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		Marker: color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// Compositor renders frames. The zero value uses GOMAXPROCS workers, draws no disc body
// or light marker and has an all-zero palette; use New for the usual setup.
type Compositor struct {
	// Workers bounds how many bands are shaded at once. <= 0 means GOMAXPROCS.
	Workers int
	Palette Palette
	// DrawBodies paints the disc and the light marker on top of the field.
	DrawBodies bool
}

// New creates a compositor with the default palette and bodies drawn
func New(workers int) *Compositor {
	return &Compositor{
		Workers:    workers,
		Palette:    DefaultPalette(),
		DrawBodies: true,
	}
}

// RenderFrame renders st into a new width*height*4 buffer using all available CPUs.
// Zero or negative dimensions yield an empty buffer.
func RenderFrame(st scene.State, width, height int) []byte {
	buf, _ := New(0).Render(context.Background(), st, width, height)
	return buf
}

// Render allocates a fresh buffer and fills it.
func (c *Compositor) Render(ctx context.Context, st scene.State, width, height int) ([]byte, error) {
	return c.RenderInto(ctx, st, nil, width, height)
}

// RenderInto fills dst, growing it when it is too small, and returns the populated slice
// of length width*height*4. If ctx is cancelled mid-frame the remaining bands are skipped
// and ctx.Err() is returned; the buffer contents are then undefined.
func (c *Compositor) RenderInto(ctx context.Context, st scene.State, dst []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return dst[:0], nil
	}

	size := width * height * BytesPerPixel
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]

	workers := c.Concurrency()
	if workers == 1 {
		if err := ctx.Err(); err != nil {
			return dst, err
		}
		c.shadeRows(st, dst, width, 0, height)
		return dst, nil
	}

	rows := bandRows(height, workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += rows {
		y1 := min(y0+rows, height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.shadeRows(st, dst[y0*width*BytesPerPixel:y1*width*BytesPerPixel], width, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dst, err
	}
	return dst, nil
}

// Concurrency is the number of bands shaded at once.
func (c *Compositor) Concurrency() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func bandRows(height, workers int) int {
	bands := workers * bandsPerWorker
	rows := (height + bands - 1) / bands
	return max(rows, 1)
}

// shadeRows fills rows [y0, y1). band starts at row y0.
func (c *Compositor) shadeRows(st scene.State, band []byte, width, y0, y1 int) {
	occ := st.Disc.Disc()
	light := st.Light
	marker2 := light.Radius * light.Radius

	i := 0
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			p := shadows.Point{X: float64(x), Y: float64(y)}
			px := c.pixel(p, light, marker2, occ)
			band[i] = px.R
			band[i+1] = px.G
			band[i+2] = px.B
			band[i+3] = px.A
			i += BytesPerPixel
		}
	}
}

func (c *Compositor) pixel(p shadows.Point, light scene.Light, marker2 float64, occ shadows.Disc) color.RGBA {
	if c.DrawBodies {
		if marker2 > 0 && shadows.DistanceSquared(p, light.Pos) <= marker2 {
			return c.Palette.Marker
		}
		if occ.Contains(p) {
			return c.Palette.Body
		}
	}
	s := shadows.Evaluate(p, light.Pos, light.Falloff, occ)
	if s.Visibility == 0 {
		return c.Palette.Shadow
	}
	return shadows.Shade(c.Palette.Lit, s)
}
