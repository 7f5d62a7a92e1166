package shadows

import "math"

// Point represents a 2D point in framebuffer space
type Point struct {
	X, Y float64
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the length of p treated as a vector
func (p Point) Len() float64 {
	return math.Sqrt(p.Dot(p))
}

// IsFinite reports whether neither coordinate is NaN or infinite
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Disc is a solid circular occluder
type Disc struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies strictly inside the disc
func (d Disc) Contains(p Point) bool {
	off := p.Sub(d.Center)
	return off.Dot(off) < d.Radius*d.Radius
}
