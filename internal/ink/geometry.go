package ink

import "github.com/gogpu/gg"

// Distance returns the Euclidean distance between two points.
func Distance(a, b gg.Point) float64 {
	return a.Distance(b)
}

// Midpoint returns the arithmetic mean of two points.
func Midpoint(a, b gg.Point) gg.Point {
	return gg.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// OffsetPoints returns the two points obtained by moving width/2
// perpendicular to the direction (toward - from), on each side of from.
// ok is false when the direction has zero length; callers must skip the
// segment instead of dividing by zero.
func OffsetPoints(from, toward gg.Point, width float64) (left, right gg.Point, ok bool) {
	dir := toward.Sub(from)
	if dir.X == 0 && dir.Y == 0 {
		return gg.Point{}, gg.Point{}, false
	}
	n := dir.Normalize()
	perp := gg.Pt(-n.Y, n.X).Mul(width / 2)
	return from.Add(perp), from.Sub(perp), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
