package shadows

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared avoids the square root when only comparisons are needed
func DistanceSquared(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// SegmentBlocked reports whether the open segment from a to b passes through the disc.
// It projects the disc centre onto the a->b direction and compares the perpendicular
// distance with the radius. The closest approach must lie strictly between the endpoints,
// so a disc sitting behind either endpoint never blocks.
func SegmentBlocked(a, b Point, occ Disc) bool {
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return false
	}
	dir := d.Scale(1 / length)

	toCenter := occ.Center.Sub(a)
	t := toCenter.Dot(dir)
	if t <= 0 || t >= length {
		return false
	}

	perp := toCenter.Sub(dir.Scale(t))
	return perp.Dot(perp) < occ.Radius*occ.Radius
}
