package ink

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Tool selects which stroke builder handles pan gestures.
type Tool int

const (
	// ToolPen draws fixed-width polylines.
	ToolPen Tool = iota
	// ToolBrush draws variable-width ribbons whose width follows pointer
	// speed.
	ToolBrush
)

// PanPhase mirrors the host gesture recognizer's pan states.
type PanPhase int

const (
	PanBegan PanPhase = iota
	PanChanged
	PanEnded
	PanCancelled
)

// GestureKind identifies what kind of pointer gesture produced a change.
type GestureKind int

const (
	GestureTap GestureKind = iota
	GesturePan
)

// Gesture is handed to the OnGestureDrawn observer after every committed
// tap or pan update.
type Gesture struct {
	Kind     GestureKind
	Location gg.Point
}

// Canvas is the drawing surface core. It consumes already-classified
// gesture events from the host, keeps the stroke history, and re-renders
// the composite image after every mutation. All methods must be called
// from the single goroutine that owns the surface.
type Canvas struct {
	history History
	pen     penBuilder
	brush   brushBuilder
	builder builder // non-nil while a pan gesture is in flight

	tool          Tool
	width, height float64
	pixelScale    float64

	strokeColor    gg.RGBA // base color; alpha tracked separately
	strokeAlpha    float64
	strokeWidth    float64 // pen
	minStrokeWidth float64 // brush
	maxStrokeWidth float64 // brush
	background     gg.RGBA

	image image.Image

	// Host observers. The canvas never calls back into itself through
	// these, so hosts may mutate the canvas from them.
	OnGestureDrawn            func(Gesture)
	OnUndoAvailabilityChanged func(bool)
	OnRedoAvailabilityChanged func(bool)
}

// NewCanvas creates an empty canvas of the given size in view units, at
// pixel scale 1 with a transparent background.
func NewCanvas(width, height float64) *Canvas {
	c := &Canvas{
		width:          width,
		height:         height,
		pixelScale:     1,
		strokeColor:    gg.RGBA{A: 1},
		strokeAlpha:    1,
		strokeWidth:    3,
		minStrokeWidth: 1,
		maxStrokeWidth: 6,
	}
	c.composite()
	return c
}

// CurrentImage returns the latest composite. It is replaced, never
// mutated, so the host may hold on to it.
func (c *Canvas) CurrentImage() image.Image { return c.image }

// IsEmpty reports whether there is no visible ink: no active strokes and
// no in-progress path.
func (c *Canvas) IsEmpty() bool {
	if len(c.history.Active()) > 0 {
		return false
	}
	return c.builder == nil || c.builder.Empty()
}

// Size returns the canvas size in view units.
func (c *Canvas) Size() (w, h float64) { return c.width, c.height }

// Resize changes the canvas size and re-composites. Non-positive
// dimensions are rejected.
func (c *Canvas) Resize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == c.width && height == c.height {
		return true
	}
	c.width, c.height = width, height
	c.composite()
	return true
}

// --- Configuration. Invalid assignments are rejected and the previous
// value retained; nothing in the steady-state drawing path errors.

// SetTool switches the pan builder. Switching mid-gesture is ignored so a
// stroke never changes variant halfway.
func (c *Canvas) SetTool(t Tool) bool {
	if c.builder != nil {
		return false
	}
	c.tool = t
	return true
}

func (c *Canvas) Tool() Tool { return c.tool }

// SetStrokeColor replaces the base stroke color. The alpha component is
// ignored; it is governed by SetStrokeAlpha.
func (c *Canvas) SetStrokeColor(col color.Color) {
	rgba := gg.FromColor(col)
	rgba.A = 1
	c.strokeColor = rgba
}

// SetStrokeAlpha sets the stroke alpha. Values outside (0, 1] are
// rejected.
func (c *Canvas) SetStrokeAlpha(a float64) bool {
	if a <= 0 || a > 1 {
		return false
	}
	c.strokeAlpha = a
	return true
}

func (c *Canvas) StrokeAlpha() float64 { return c.strokeAlpha }

// SetStrokeWidth sets the pen width and collapses the brush range to the
// same value. Non-positive widths are rejected.
func (c *Canvas) SetStrokeWidth(w float64) bool {
	if w <= 0 {
		return false
	}
	c.strokeWidth = w
	c.minStrokeWidth = w
	c.maxStrokeWidth = w
	return true
}

func (c *Canvas) StrokeWidth() float64 { return c.strokeWidth }

// SetStrokeWidthRange sets the brush width range. Both bounds must be
// positive and min must not exceed max.
func (c *Canvas) SetStrokeWidthRange(minWidth, maxWidth float64) bool {
	if minWidth <= 0 || maxWidth <= 0 || minWidth > maxWidth {
		return false
	}
	c.minStrokeWidth = minWidth
	c.maxStrokeWidth = maxWidth
	return true
}

// SetMinimumStrokeWidth sets the brush minimum. Rejected when non-positive
// or above the current maximum.
func (c *Canvas) SetMinimumStrokeWidth(w float64) bool {
	return c.SetStrokeWidthRange(w, c.maxStrokeWidth)
}

// SetMaximumStrokeWidth sets the brush maximum. Rejected when non-positive
// or below the current minimum.
func (c *Canvas) SetMaximumStrokeWidth(w float64) bool {
	return c.SetStrokeWidthRange(c.minStrokeWidth, w)
}

func (c *Canvas) MinimumStrokeWidth() float64 { return c.minStrokeWidth }
func (c *Canvas) MaximumStrokeWidth() float64 { return c.maxStrokeWidth }

// SetBackgroundColor sets the composite background and re-composites.
func (c *Canvas) SetBackgroundColor(col color.Color) {
	c.background = gg.FromColor(col)
	c.composite()
}

// SetPixelScale sets device pixels per view unit. Non-positive scales are
// rejected.
func (c *Canvas) SetPixelScale(s float64) bool {
	if s <= 0 {
		return false
	}
	c.pixelScale = s
	c.composite()
	return true
}

func (c *Canvas) PixelScale() float64 { return c.pixelScale }

// currentColor merges the base color with the current alpha. It is frozen
// into a stroke only at commit time; the in-progress path always paints
// with the live value.
func (c *Canvas) currentColor() gg.RGBA {
	col := c.strokeColor
	col.A = c.strokeAlpha
	return col
}

// --- Gesture adapter.

// GestureShouldBegin seeds the active builder for the coming pan and
// always accepts.
func (c *Canvas) GestureShouldBegin(p gg.Point) bool {
	switch c.tool {
	case ToolBrush:
		c.brush.Begin(p, c.minStrokeWidth, c.maxStrokeWidth)
		c.builder = &c.brush
	default:
		c.pen.Begin(p, c.strokeWidth)
		c.builder = &c.pen
	}
	return true
}

// Tap commits a dot: a filled circle of radius width/2 at the tap point.
func (c *Canvas) Tap(p gg.Point) {
	c.builder = nil // a tap leaves no pan gesture behind
	width := c.strokeWidth
	if c.tool == ToolBrush {
		width = c.maxStrokeWidth
	}
	dot := &Polyline{
		Meta:   newMeta(),
		Points: []gg.Point{p},
		Width:  width,
		Color:  c.currentColor(),
	}
	c.commit(dot)
	c.composite()
	c.notifyDrawn(Gesture{Kind: GestureTap, Location: p})
}

// Pan feeds one phase of the host's pan gesture into the active builder.
// Ended and Cancelled are both terminal: the accumulated path, if any,
// becomes a committed stroke.
func (c *Canvas) Pan(phase PanPhase, p gg.Point) {
	switch phase {
	case PanBegan:
		if c.builder == nil {
			c.GestureShouldBegin(p)
		}
	case PanChanged:
		if c.builder == nil {
			return
		}
		c.builder.Move(p)
		c.composite()
		c.notifyDrawn(Gesture{Kind: GesturePan, Location: p})
	case PanEnded, PanCancelled:
		if c.builder == nil {
			return
		}
		if s := c.builder.Finish(c.currentColor()); s != nil {
			c.commit(s)
		}
		c.builder = nil
		c.composite()
		c.notifyDrawn(Gesture{Kind: GesturePan, Location: p})
	}
}

// --- History operations.

// Undo hides the most recent active stroke. No-op when nothing is active.
func (c *Canvas) Undo() {
	undo, redo := c.history.CanUndo(), c.history.CanRedo()
	if !c.history.Undo() {
		return
	}
	c.notifyAvailability(undo, redo)
	c.composite()
}

// Redo restores the most recently undone stroke. No-op when there is
// nothing to redo.
func (c *Canvas) Redo() {
	undo, redo := c.history.CanUndo(), c.history.CanRedo()
	if !c.history.Redo() {
		return
	}
	c.notifyAvailability(undo, redo)
	c.composite()
}

// Clear drops every stroke, including the redo branch, and re-composites
// to an empty image.
func (c *Canvas) Clear() {
	undo, redo := c.history.CanUndo(), c.history.CanRedo()
	c.history.Clear()
	c.notifyAvailability(undo, redo)
	c.composite()
}

func (c *Canvas) CanUndo() bool { return c.history.CanUndo() }
func (c *Canvas) CanRedo() bool { return c.history.CanRedo() }

// ActiveStrokes returns the visible committed strokes, oldest first. The
// slice aliases the history; callers must not retain it across mutations.
func (c *Canvas) ActiveStrokes() []Stroke { return c.history.Active() }

func (c *Canvas) commit(s Stroke) {
	undo, redo := c.history.CanUndo(), c.history.CanRedo()
	c.history.Commit(s)
	c.notifyAvailability(undo, redo)
}

func (c *Canvas) notifyAvailability(undoBefore, redoBefore bool) {
	if u := c.history.CanUndo(); u != undoBefore && c.OnUndoAvailabilityChanged != nil {
		c.OnUndoAvailabilityChanged(u)
	}
	if r := c.history.CanRedo(); r != redoBefore && c.OnRedoAvailabilityChanged != nil {
		c.OnRedoAvailabilityChanged(r)
	}
}

func (c *Canvas) notifyDrawn(g Gesture) {
	if c.OnGestureDrawn != nil {
		c.OnGestureDrawn(g)
	}
}

// --- Compositor.

// composite re-renders the full canvas. This is a deliberate full redraw
// on every mutation, not an incremental patch; cost is linear in the
// active strokes' geometry.
func (c *Canvas) composite() {
	c.image = c.render(c.width, c.height, gg.Point{})
}

// render paints the active strokes plus the in-progress path into a fresh
// surface of w by h view units at the pixel scale, with the view origin
// shifted so that origin maps to (0,0). Returns nil when the surface
// would have no pixels.
func (c *Canvas) render(w, h float64, origin gg.Point) image.Image {
	pw := int(math.Ceil(w * c.pixelScale))
	ph := int(math.Ceil(h * c.pixelScale))
	if pw <= 0 || ph <= 0 {
		return nil
	}
	dc := gg.NewContext(pw, ph)
	defer dc.Close()
	if c.background.A > 0 {
		dc.ClearWithColor(c.background)
	}
	dc.Scale(c.pixelScale, c.pixelScale)
	dc.Translate(-origin.X, -origin.Y)
	for _, s := range c.history.Active() {
		s.Paint(dc)
	}
	if c.builder != nil {
		c.builder.Paint(dc, c.currentColor())
	}
	return dc.Image()
}
