package main

import (
	"flag"
	"image/color"
	"log"

	"MySketchPad/internal/ink"
	"MySketchPad/internal/ui"
)

func main() {
	width := flag.Float64("width", 1024, "initial canvas width in points")
	height := flag.Float64("height", 640, "initial canvas height in points")
	scale := flag.Float64("scale", 1, "device pixels per point")
	brush := flag.Bool("brush", false, "start with the variable-width brush instead of the pen")
	flag.Parse()

	sketch := ink.NewCanvas(*width, *height)
	if !sketch.SetPixelScale(*scale) {
		log.Printf("Ignoring invalid -scale %v, keeping %v", *scale, sketch.PixelScale())
	}
	sketch.SetBackgroundColor(color.White)
	if *brush {
		sketch.SetTool(ink.ToolBrush)
	}

	board := ui.NewSketchWidget(sketch)
	ui.RunApp(board)
}
