// Implements a raster backend to render paths,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgcombine/svgdraw"
	"github.com/benoitkugler/svgcombine/svgpath"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c color.Color) { f.Filler.SetColor(c) }

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c color.Color) { s.Dasher.SetColor(c) }

func (s stroker) SetLineWidth(width fixed.Int26_6) {
	s.Dasher.SetStroke(width, 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
}

// Rasterize paints `path` onto a white width x height image,
// `viewBox` being mapped to the whole image.
func Rasterize(path svgpath.Path, paint svgdraw.Paint, viewBox svgpath.Bounds, width, height int) *image.NRGBA {
	img := imaging.New(width, height, color.White)
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	svgdraw.Draw(renderer, path, paint, svgdraw.ViewBoxMatrix(viewBox, float64(width), float64(height)))
	return img
}

// RenderPNG rasterizes `path` and writes it as a PNG image.
func RenderPNG(w io.Writer, path svgpath.Path, paint svgdraw.Paint, viewBox svgpath.Bounds, width, height int) error {
	img := Rasterize(path, paint, viewBox, width, height)
	return imaging.Encode(w, img, imaging.PNG)
}
