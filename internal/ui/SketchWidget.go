package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"MySketchPad/internal/ink"
)

// SketchWidget adapts Fyne pointer events to the drawing core's gesture
// interface and blits the core's composite image back to the screen.
type SketchWidget struct {
	widget.BaseWidget
	Canvas *ink.Canvas

	raster    *canvas.Image
	panActive bool
	lastPoint gg.Point

	// OnChanged fires after every visible change, so the toolbar can sync
	// button state.
	OnChanged func()
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Tappable = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

func NewSketchWidget(c *ink.Canvas) *SketchWidget {
	w := &SketchWidget{Canvas: c}
	w.raster = canvas.NewImageFromImage(c.CurrentImage())
	w.raster.FillMode = canvas.ImageFillStretch
	w.ExtendBaseWidget(w)
	return w
}

// Sync re-blits the core's current image and notifies OnChanged.
func (w *SketchWidget) Sync() {
	w.raster.Image = w.Canvas.CurrentImage()
	w.raster.Refresh()
	if w.OnChanged != nil {
		w.OnChanged()
	}
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.Canvas.GestureShouldBegin(eventPoint(e.Position))
	}
}

func (w *SketchWidget) MouseUp(*desktop.MouseEvent) {}

func (w *SketchWidget) Tapped(e *fyne.PointEvent) {
	w.Canvas.Tap(eventPoint(e.Position))
	w.Sync()
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	p := eventPoint(e.Position)
	if !w.panActive {
		w.Canvas.Pan(ink.PanBegan, p)
		w.panActive = true
	}
	w.Canvas.Pan(ink.PanChanged, p)
	w.lastPoint = p
	w.Sync()
}

func (w *SketchWidget) DragEnd() {
	if !w.panActive {
		return
	}
	w.Canvas.Pan(ink.PanEnded, w.lastPoint)
	w.panActive = false
	w.Sync()
}

func (w *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *SketchWidget) MouseOut()                      {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	return &sketchRenderer{widget: w, background: bg}
}

func eventPoint(p fyne.Position) gg.Point {
	return gg.Pt(float64(p.X), float64(p.Y))
}

type sketchRenderer struct {
	widget     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.widget.raster}
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.widget.raster.Resize(size)
	if r.widget.Canvas.Resize(float64(size.Width), float64(size.Height)) {
		r.widget.raster.Image = r.widget.Canvas.CurrentImage()
	}
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *sketchRenderer) Destroy() {}
