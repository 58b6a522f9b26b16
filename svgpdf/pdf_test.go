package svgpdf

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgcombine/svgdraw"
	"github.com/benoitkugler/svgcombine/svgpath"
)

func testPath() svgpath.Path {
	p := func(x, y float64) svgpath.Point { return svgpath.Point{X: x, Y: y} }
	return svgpath.Path{
		svgpath.Line{From: p(0, 0), To: p(10, 0)},
		svgpath.QuadBezier{From: p(10, 0), Control: p(10, 10), To: p(0, 10)},
		svgpath.Arc{From: p(0, 10), Radius: p(5, 5), Sweep: true, To: p(0, 0)},
	}
}

func TestRenderPDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderPDF(&buf, testPath(), svgdraw.Paint{Fill: color.Black}, svgpath.Bounds{W: 20, H: 10}, 600, 300)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out, "/MediaBox [0 0 600.00 300.00]")
}

func TestRendererOperators(t *testing.T) {
	t.Parallel()

	pdf := NewDocument(100, 100)
	pdf.SetCompression(false)
	paint := svgdraw.Paint{
		Fill:      color.RGBA{G: 0xff, A: 0xff},
		Stroke:    color.RGBA{R: 0xff, A: 0xff},
		LineWidth: 2,
	}
	svgdraw.Draw(NewRenderer(pdf), testPath(), paint, svgdraw.ViewBoxMatrix(svgpath.Bounds{W: 10, H: 10}, 100, 100))

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	out := buf.String()

	assert.Contains(t, out, " m")
	assert.Contains(t, out, " l")
	assert.Contains(t, out, " c")
	assert.Contains(t, out, "RG")
	assert.Contains(t, out, "rg")
}

func TestSetupDrawers(t *testing.T) {
	t.Parallel()

	r := NewRenderer(NewDocument(10, 10))
	f, s := r.SetupDrawers(true, false)
	assert.NotNil(t, f)
	assert.Nil(t, s)

	f, s = r.SetupDrawers(false, true)
	assert.Nil(t, f)
	assert.NotNil(t, s)
}
