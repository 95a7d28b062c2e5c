package ink

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// Stroke is one immutable committed unit of ink. A stroke paints itself
// into a drawing context and reports its geometric bounds, so history,
// compositing, and cropping never care which width variant produced it.
type Stroke interface {
	Paint(dc *gg.Context)
	Bounds() Rect
}

// Meta carries the identity every committed stroke gets at commit time.
type Meta struct {
	ID   string
	Time time.Time
}

func newMeta() Meta {
	return Meta{ID: uuid.NewString(), Time: time.Now()}
}

// Polyline is the fixed-width stroke variant: an open point chain drawn
// with one line width and round caps and joins. A single-point polyline is
// a dot, painted as a filled circle of radius Width/2.
type Polyline struct {
	Meta
	Points []gg.Point
	Width  float64
	Color  gg.RGBA
}

func (p *Polyline) Paint(dc *gg.Context) {
	paintPolyline(dc, p.Points, p.Width, p.Color)
}

func (p *Polyline) Bounds() Rect {
	b := emptyRect()
	for _, pt := range p.Points {
		b = b.Include(pt)
	}
	return b
}

// paintPolyline is shared with the pen builder, which paints the same
// geometry before it is committed.
func paintPolyline(dc *gg.Context, points []gg.Point, width float64, col gg.RGBA) {
	if len(points) == 0 {
		return
	}
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	if len(points) == 1 {
		dc.DrawCircle(points[0].X, points[0].Y, width/2)
		_ = dc.Fill()
		return
	}
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	_ = dc.Stroke()
}

// RibbonSegment is one closed outline piece of a variable-width stroke:
// two quadratic rails between the offset points of consecutive curve
// endpoints, tapering from the start width to the end width.
type RibbonSegment struct {
	StartLeft, ControlLeft, EndLeft    gg.Point
	EndRight, ControlRight, StartRight gg.Point
}

// ribbonSegment builds the closed outline for a quadratic centerline from
// start to end with the given control point. ok is false when any of the
// offset directions is degenerate; the caller skips the segment.
func ribbonSegment(start, control, end gg.Point, startWidth, endWidth float64) (RibbonSegment, bool) {
	sl, sr, ok := OffsetPoints(start, control, startWidth)
	if !ok {
		return RibbonSegment{}, false
	}
	cl, cr, ok := OffsetPoints(control, end, (startWidth+endWidth)/2)
	if !ok {
		return RibbonSegment{}, false
	}
	// The end offsets use the reverse direction (end toward control), which
	// flips their sides: the second offset lands on the start-left rail.
	// Pairing them crosswise closes the outline into a single simple loop.
	er, el, ok := OffsetPoints(end, control, endWidth)
	if !ok {
		return RibbonSegment{}, false
	}
	return RibbonSegment{
		StartLeft: sl, ControlLeft: cl, EndLeft: el,
		EndRight: er, ControlRight: cr, StartRight: sr,
	}, true
}

func (s RibbonSegment) paint(dc *gg.Context, col gg.RGBA) {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(s.StartLeft.X, s.StartLeft.Y)
	dc.QuadraticTo(s.ControlLeft.X, s.ControlLeft.Y, s.EndLeft.X, s.EndLeft.Y)
	dc.LineTo(s.EndRight.X, s.EndRight.Y)
	dc.QuadraticTo(s.ControlRight.X, s.ControlRight.Y, s.StartRight.X, s.StartRight.Y)
	dc.ClosePath()
	_ = dc.FillPreserve()
	_ = dc.Stroke()
}

// include grows b by the segment's outline points. Quadratic curves stay
// inside the convex hull of their control points, so this is conservative.
func (s RibbonSegment) include(b Rect) Rect {
	for _, pt := range []gg.Point{
		s.StartLeft, s.ControlLeft, s.EndLeft,
		s.EndRight, s.ControlRight, s.StartRight,
	} {
		b = b.Include(pt)
	}
	return b
}

// Ribbon is the variable-width stroke variant. The width is baked into the
// closed outline segments; MinWidth and MaxWidth are kept only so export
// padding can be estimated.
type Ribbon struct {
	Meta
	Segments []RibbonSegment
	Color    gg.RGBA
	MinWidth float64
	MaxWidth float64
}

func (r *Ribbon) Paint(dc *gg.Context) {
	for _, s := range r.Segments {
		s.paint(dc, r.Color)
	}
}

func (r *Ribbon) Bounds() Rect {
	b := emptyRect()
	for _, s := range r.Segments {
		b = s.include(b)
	}
	return b
}
