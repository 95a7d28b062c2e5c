package ink

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned bounding box in view units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyRect returns a rect that unions as the identity: any point added to
// it becomes the whole box.
func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Empty reports whether the rect contains no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX && r.MinY >= r.MaxY
}

// Width returns the horizontal extent, never negative.
func (r Rect) Width() float64 {
	if r.MaxX < r.MinX {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the vertical extent, never negative.
func (r Rect) Height() float64 {
	if r.MaxY < r.MinY {
		return 0
	}
	return r.MaxY - r.MinY
}

// Include grows the rect to contain the point.
func (r Rect) Include(p gg.Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Pad grows the rect by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{
		MinX: r.MinX - d, MinY: r.MinY - d,
		MaxX: r.MaxX + d, MaxY: r.MaxY + d,
	}
}
