package export

import (
	"github.com/jung-kurt/gofpdf"

	"MySketchPad/internal/ink"
)

// SavePDF writes the given strokes as vector geometry onto a single
// landscape A4 page, one point per view unit. Both stroke variants keep
// their color, alpha, and width.
func SavePDF(path string, strokes []ink.Stroke) error {
	p := gofpdf.New("L", "pt", "A4", "")
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, s := range strokes {
		switch st := s.(type) {
		case *ink.Polyline:
			drawPolyline(p, st)
		case *ink.Ribbon:
			drawRibbon(p, st)
		}
	}
	return p.OutputFileAndClose(path)
}

func drawPolyline(p *gofpdf.Fpdf, st *ink.Polyline) {
	if len(st.Points) == 0 {
		return
	}
	setColor(p, st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	if len(st.Points) == 1 {
		// Dot stroke.
		p.Circle(st.Points[0].X, st.Points[0].Y, st.Width/2, "F")
		return
	}
	p.SetLineWidth(st.Width)
	p.MoveTo(st.Points[0].X, st.Points[0].Y)
	for _, pt := range st.Points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.DrawPath("D")
}

func drawRibbon(p *gofpdf.Fpdf, st *ink.Ribbon) {
	setColor(p, st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	p.SetLineWidth(1)
	for _, seg := range st.Segments {
		p.MoveTo(seg.StartLeft.X, seg.StartLeft.Y)
		p.CurveTo(seg.ControlLeft.X, seg.ControlLeft.Y, seg.EndLeft.X, seg.EndLeft.Y)
		p.LineTo(seg.EndRight.X, seg.EndRight.Y)
		p.CurveTo(seg.ControlRight.X, seg.ControlRight.Y, seg.StartRight.X, seg.StartRight.Y)
		p.ClosePath()
		p.DrawPath("B")
	}
}

func setColor(p *gofpdf.Fpdf, r, g, b, a float64) {
	ri, gi, bi := int(r*255), int(g*255), int(b*255)
	p.SetDrawColor(ri, gi, bi)
	p.SetFillColor(ri, gi, bi)
	p.SetAlpha(a, "Normal")
}
