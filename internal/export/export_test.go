package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MySketchPad/internal/ink"
)

func drawnCanvas(t *testing.T) *ink.Canvas {
	t.Helper()
	c := ink.NewCanvas(200, 200)
	require.True(t, c.SetStrokeWidth(4))

	// One dot, one polyline.
	c.Tap(gg.Pt(30, 30))
	c.GestureShouldBegin(gg.Pt(50, 50))
	c.Pan(ink.PanBegan, gg.Pt(50, 50))
	c.Pan(ink.PanChanged, gg.Pt(120, 80))
	c.Pan(ink.PanEnded, gg.Pt(120, 80))

	// One ribbon.
	require.True(t, c.SetTool(ink.ToolBrush))
	require.True(t, c.SetStrokeWidthRange(2, 8))
	c.GestureShouldBegin(gg.Pt(20, 120))
	c.Pan(ink.PanBegan, gg.Pt(20, 120))
	c.Pan(ink.PanChanged, gg.Pt(60, 130))
	c.Pan(ink.PanChanged, gg.Pt(110, 140))
	c.Pan(ink.PanEnded, gg.Pt(110, 140))

	require.Len(t, c.ActiveStrokes(), 3)
	return c
}

func TestSavePNG(t *testing.T) {
	c := drawnCanvas(t)
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, SavePNG(path, c.CurrentImage()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSavePNGCropped(t *testing.T) {
	c := drawnCanvas(t)
	path := filepath.Join(t.TempDir(), "cropped.png")

	img := c.ExportCroppedImage()
	require.NotNil(t, img)
	require.NoError(t, SavePNG(path, img))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSavePNGRejectsNilImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")
	assert.Error(t, SavePNG(path, nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSavePDF(t *testing.T) {
	c := drawnCanvas(t)
	path := filepath.Join(t.TempDir(), "out.pdf")

	require.NoError(t, SavePDF(path, c.ActiveStrokes()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestSavePDFEmptyStrokes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, SavePDF(path, nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
