package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MySketchPad/internal/export"
	"MySketchPad/internal/ink"
)

// We need to keep track of the last used color when switching back from the eraser.
var lastSelectedColor color.Color = color.Black

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *SketchWidget) fyne.CanvasObject {
	sketch := board.Canvas

	// Tools: pen (fixed width), brush (speed-sensitive width), eraser.
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			sketch.SetTool(ink.ToolPen)
			sketch.SetStrokeColor(lastSelectedColor)
			if sketch.StrokeWidth() > 10.0 {
				sketch.SetStrokeWidth(2.0)
			}
		}), // Pen
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			sketch.SetTool(ink.ToolBrush)
			sketch.SetStrokeColor(lastSelectedColor)
			sketch.SetStrokeWidthRange(1.0, 8.0)
		}), // Brush
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			sketch.SetTool(ink.ToolPen)
			sketch.SetStrokeColor(color.White)
			sketch.SetStrokeWidth(20.0)
		}), // Eraser
	)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		lastSelectedColor = c
		sketch.SetStrokeColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(3.0)
	strokeSlider.OnChanged = func(val float64) {
		sketch.SetStrokeWidth(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	// --- Alpha Slider ---
	alphaSlider := widget.NewSlider(0.05, 1.0)
	alphaSlider.Step = 0.05
	alphaSlider.SetValue(1.0)
	alphaSlider.OnChanged = func(val float64) {
		sketch.SetStrokeAlpha(val)
	}
	alphaContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(90, 35)), alphaSlider)

	// --- Undo / Redo / Clear ---
	undoBtn := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
		sketch.Undo()
		board.Sync()
	})
	redoBtn := widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() {
		sketch.Redo()
		board.Sync()
	})
	undoBtn.Disable()
	redoBtn.Disable()
	sketch.OnUndoAvailabilityChanged = func(ok bool) {
		if ok {
			undoBtn.Enable()
		} else {
			undoBtn.Disable()
		}
	}
	sketch.OnRedoAvailabilityChanged = func(ok bool) {
		if ok {
			redoBtn.Enable()
		} else {
			redoBtn.Disable()
		}
	}
	clearBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		sketch.Clear()
		board.Sync()
	})

	// --- Export ---
	exportPNG := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
		img := sketch.ExportCroppedImage()
		if img == nil {
			log.Println("Export: nothing drawn yet")
			return
		}
		name := fmt.Sprintf("sketch-%d.png", time.Now().Unix())
		if err := export.SavePNG(name, img); err != nil {
			log.Printf("Export: saving %s failed: %v", name, err)
			return
		}
		log.Printf("Export: saved %s", name)
	})
	exportPDF := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		name := fmt.Sprintf("sketch-%d.pdf", time.Now().Unix())
		if err := export.SavePDF(name, sketch.ActiveStrokes()); err != nil {
			log.Printf("Export: saving %s failed: %v", name, err)
			return
		}
		log.Printf("Export: saved %s", name)
	})

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewLabel("Alpha:"),
		alphaContainer,
		widget.NewSeparator(),
		undoBtn,
		redoBtn,
		clearBtn,
		widget.NewSeparator(),
		exportPNG,
		exportPDF,
		layout.NewSpacer(),
	)
}
