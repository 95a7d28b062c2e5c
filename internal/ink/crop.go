package ink

import (
	"image"

	"github.com/gogpu/gg"
)

// ExportCroppedImage re-renders the visible ink into a surface sized to
// the padded union of its bounding boxes. Returns nil when there is no
// ink, so callers can distinguish "nothing drawn" from a blank canvas.
func (c *Canvas) ExportCroppedImage() image.Image {
	bounds, ok := c.inkBounds()
	if !ok {
		return nil
	}
	bounds = bounds.Pad(c.cropPadding())
	if bounds.Empty() {
		return nil
	}
	return c.render(bounds.Width(), bounds.Height(), gg.Pt(bounds.MinX, bounds.MinY))
}

// inkBounds unions the bounding boxes of every active stroke and the
// in-progress path. ok is false when there is no ink at all.
func (c *Canvas) inkBounds() (Rect, bool) {
	bounds := emptyRect()
	any := false
	for _, s := range c.history.Active() {
		bounds = bounds.Union(s.Bounds())
		any = true
	}
	if c.builder != nil {
		if b, ok := c.builder.Bounds(); ok {
			bounds = bounds.Union(b)
			any = true
		}
	}
	return bounds, any
}

// cropPadding is half the widest configured stroke width, so round caps at
// the ink's edge are not clipped.
func (c *Canvas) cropPadding() float64 {
	w := c.strokeWidth
	if c.maxStrokeWidth > w {
		w = c.maxStrokeWidth
	}
	return w / 2
}
