package shadows

import (
	"image/color"
	"math"
)

// Sample is the result of evaluating the light at one pixel.
// Visibility is binary (0 or 1); Intensity is the distance falloff in (0, 1].
type Sample struct {
	Visibility float64
	Intensity  float64
}

// Brightness is the factor applied to the base colour
func (s Sample) Brightness() float64 {
	return s.Visibility * s.Intensity
}

// Visible decides whether light reaches p past the occluder.
//
// A pixel strictly inside the disc is unlit: it is inside solid matter. The light gets no
// such treatment; a light inside the disc is judged by the segment test alone. A pixel that
// coincides with the light is always lit unless it is itself inside the disc.
func Visible(p, light Point, occ Disc) bool {
	if occ.Contains(p) {
		return false
	}
	return !SegmentBlocked(p, light, occ)
}

// Falloff returns the inverse-square attenuation 1/(1+k*dist2).
// Negative or non-finite k is treated as no falloff.
func Falloff(dist2, k float64) float64 {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return 1
	}
	return 1 / (1 + k*dist2)
}

// Evaluate computes visibility and intensity for the pixel at p.
// It has no state and is safe to call concurrently.
func Evaluate(p, light Point, k float64, occ Disc) Sample {
	s := Sample{Intensity: Falloff(DistanceSquared(p, light), k)}
	if Visible(p, light, occ) {
		s.Visibility = 1
	}
	return s
}

// Shade scales the RGB channels of base by the sample brightness, keeping alpha
func Shade(base color.RGBA, s Sample) color.RGBA {
	f := s.Brightness()
	return color.RGBA{
		R: scaleChannel(base.R, f),
		G: scaleChannel(base.G, f),
		B: scaleChannel(base.B, f),
		A: base.A,
	}
}

func scaleChannel(c uint8, f float64) uint8 {
	v := math.Round(float64(c) * f)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
