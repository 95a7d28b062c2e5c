package ink

import "github.com/gogpu/gg"

// Width smoothing for the brush: the instantaneous width is inversely
// proportional to pointer speed and exponentially smoothed against the
// previous width. The constants are tuning values; changing them changes
// how every drawn ribbon looks.
const (
	widthSmoothing = 0.5
	widthScale     = 50.0
)

// Sub-unit pointer moves are sensor jitter and emit no geometry.
const minMoveDistance = 1.0

// builder accumulates one in-progress pointer gesture into renderable
// geometry. The accumulated path is painted with the canvas's current
// color until Finish freezes it into an immutable Stroke.
type builder interface {
	Move(p gg.Point)
	// Finish returns the accumulated geometry as a committed stroke with
	// the given color, or nil when the gesture produced no ink. The
	// builder resets either way.
	Finish(col gg.RGBA) Stroke
	// Empty reports whether no visible geometry has accumulated yet.
	Empty() bool
	Paint(dc *gg.Context, col gg.RGBA)
	// Bounds returns the accumulated geometry's bounding box; ok is false
	// while the builder is empty.
	Bounds() (Rect, bool)
}

// penBuilder accumulates a fixed-width polyline.
type penBuilder struct {
	points []gg.Point
	width  float64
}

func (b *penBuilder) Begin(p gg.Point, width float64) {
	b.points = append(b.points[:0], p)
	b.width = width
}

func (b *penBuilder) Move(p gg.Point) {
	b.points = append(b.points, p)
}

func (b *penBuilder) Finish(col gg.RGBA) Stroke {
	defer func() { b.points = b.points[:0] }()
	if len(b.points) < 2 {
		return nil
	}
	points := make([]gg.Point, len(b.points))
	copy(points, b.points)
	return &Polyline{Meta: newMeta(), Points: points, Width: b.width, Color: col}
}

func (b *penBuilder) Empty() bool {
	return len(b.points) < 2
}

func (b *penBuilder) Paint(dc *gg.Context, col gg.RGBA) {
	if b.Empty() {
		return
	}
	paintPolyline(dc, b.points, b.width, col)
}

func (b *penBuilder) Bounds() (Rect, bool) {
	if b.Empty() {
		return Rect{}, false
	}
	r := emptyRect()
	for _, pt := range b.points {
		r = r.Include(pt)
	}
	return r, true
}

// brushBuilder accumulates a variable-width ribbon. Across consecutive
// moves it tracks the previous raw pointer point, the previous curve
// endpoint (the prior segment's midpoint), and the previous smoothed width.
type brushBuilder struct {
	segments []RibbonSegment
	bounds   Rect

	minWidth, maxWidth float64
	prevPoint          gg.Point
	prevEnd            gg.Point
	prevWidth          float64
}

func (b *brushBuilder) Begin(p gg.Point, minWidth, maxWidth float64) {
	b.segments = b.segments[:0]
	b.bounds = emptyRect()
	b.minWidth, b.maxWidth = minWidth, maxWidth
	b.prevPoint = p
	b.prevEnd = p
	b.prevWidth = maxWidth
}

func (b *brushBuilder) Move(p gg.Point) {
	dist := Distance(b.prevPoint, p)
	if dist < minMoveDistance {
		return
	}
	width := clamp(
		(widthScale/dist)*widthSmoothing+b.prevWidth*(1-widthSmoothing),
		b.minWidth, b.maxWidth,
	)
	mid := Midpoint(b.prevPoint, p)
	if seg, ok := ribbonSegment(b.prevEnd, b.prevPoint, mid, b.prevWidth, width); ok {
		b.segments = append(b.segments, seg)
		b.bounds = seg.include(b.bounds)
	}
	b.prevPoint = p
	b.prevEnd = mid
	b.prevWidth = width
}

func (b *brushBuilder) Finish(col gg.RGBA) Stroke {
	defer func() { b.segments = b.segments[:0]; b.bounds = emptyRect() }()
	if len(b.segments) == 0 {
		return nil
	}
	segments := make([]RibbonSegment, len(b.segments))
	copy(segments, b.segments)
	return &Ribbon{
		Meta:     newMeta(),
		Segments: segments,
		Color:    col,
		MinWidth: b.minWidth,
		MaxWidth: b.maxWidth,
	}
}

func (b *brushBuilder) Empty() bool {
	return len(b.segments) == 0
}

func (b *brushBuilder) Paint(dc *gg.Context, col gg.RGBA) {
	for _, s := range b.segments {
		s.paint(dc, col)
	}
}

func (b *brushBuilder) Bounds() (Rect, bool) {
	if len(b.segments) == 0 {
		return Rect{}, false
	}
	return b.bounds, true
}
