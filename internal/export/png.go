package export

import (
	"errors"
	"image"
	"image/png"
	"os"
)

// SavePNG writes an image produced by the canvas to disk. A nil image
// (the canvas's explicit "no ink" result) is an error so callers do not
// silently write nothing.
func SavePNG(path string, img image.Image) error {
	if img == nil {
		return errors.New("export: no image to save")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
