// Implements a PDF backend to render paths,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgcombine/svgdraw"
	"github.com/benoitkugler/svgcombine/svgpath"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
	a   fixed.Point26_6 // current point
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {
	p.a = fixed.Point26_6{}
}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
	p.a = a
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
	p.a = b
}

// QuadBezier is elevated to a cubic curve, since
// PDF has no quadratic operator.
func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.a)
	bx, by := fixedTof(b)
	x, y := fixedTof(c)
	cx0, cy0 := x0+2./3*(bx-x0), y0+2./3*(by-y0)
	cx1, cy1 := x+2./3*(bx-x), y+2./3*(by-y)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.a = c
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.a = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (f *filler) SetColor(c color.Color) {
	nc := toNRGBA(c)
	f.pdf.SetFillColor(int(nc.R), int(nc.G), int(nc.B))
	f.pdf.SetAlpha(float64(nc.A)/255, "")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color) {
	nc := toNRGBA(c)
	s.pdf.SetDrawColor(int(nc.R), int(nc.G), int(nc.B))
	s.pdf.SetAlpha(float64(nc.A)/255, "")
}

func (s *stroker) SetLineWidth(width fixed.Int26_6) {
	s.pdf.SetLineWidth(float64(width) / 64)
}

func (s *stroker) Draw() {
	s.pdf.DrawPath("D")
}

// NewDocument returns a one page PDF of width x height points,
// without margins.
func NewDocument(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// RenderPDF draws `path` on a single page of width x height points,
// `viewBox` being mapped to the whole page.
func RenderPDF(w io.Writer, path svgpath.Path, paint svgdraw.Paint, viewBox svgpath.Bounds, width, height float64) error {
	pdf := NewDocument(width, height)
	svgdraw.Draw(NewRenderer(pdf), path, paint, svgdraw.ViewBoxMatrix(viewBox, width, height))
	return pdf.Output(w)
}
