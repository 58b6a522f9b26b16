package svgwrite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgcombine/svgdoc"
	"github.com/benoitkugler/svgcombine/svgpath"
)

func line(x0, y0, x1, y1 float64) svgpath.Line {
	return svgpath.Line{From: svgpath.Point{X: x0, Y: y0}, To: svgpath.Point{X: x1, Y: y1}}
}

func TestNewCanvas(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path          svgpath.Path
		viewBox       svgpath.Bounds
		width, height float64
	}{
		"wide": {
			path:    svgpath.Path{line(0, 0, 10, 5)},
			viewBox: svgpath.Bounds{X: -1, Y: -0.5, W: 12, H: 6},
			width:   600, height: 300,
		},
		"tall": {
			path:    svgpath.Path{line(0, 0, 5, 10)},
			viewBox: svgpath.Bounds{X: -0.5, Y: -1, W: 6, H: 12},
			width:   300, height: 600,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := NewCanvas([]svgpath.Path{tc.path}, Options{})
			assert.InDelta(t, tc.viewBox.X, c.ViewBox.X, 1e-9)
			assert.InDelta(t, tc.viewBox.Y, c.ViewBox.Y, 1e-9)
			assert.InDelta(t, tc.viewBox.W, c.ViewBox.W, 1e-9)
			assert.InDelta(t, tc.viewBox.H, c.ViewBox.H, 1e-9)
			assert.Equal(t, tc.width, c.Width)
			assert.Equal(t, tc.height, c.Height)
		})
	}
}

func TestNewCanvasDegenerated(t *testing.T) {
	t.Parallel()

	c := NewCanvas([]svgpath.Path{{line(2, 2, 2, 2)}}, Options{})
	assert.InDelta(t, 1.9, c.ViewBox.X, 1e-9)
	assert.InDelta(t, 1.2, c.ViewBox.W, 1e-9)
	assert.InDelta(t, 1.2, c.ViewBox.H, 1e-9)
	assert.InDelta(t, 600, c.Width, 1)
	assert.Equal(t, float64(600), c.Height)

	custom := NewCanvas([]svgpath.Path{{line(0, 0, 10, 5)}}, Options{Margin: 0.5, MinDimension: 100})
	assert.InDelta(t, 20, custom.ViewBox.W, 1e-9)
	assert.Equal(t, float64(100), custom.Width)
	assert.Equal(t, float64(50), custom.Height)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	paths := []svgpath.Path{
		{line(0, 0, 10, 0), line(10, 0, 10, 10)},
		{line(20, 20, 30, 30)},
	}
	attrs := []map[string]string{
		{"fill": "#000000", "stroke": "none", "stroke_width": "1", "d": "M 99 99"},
		{"id": `a"b`},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, paths, attrs, Options{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<path d="M 0,0 L 10,0 L 10,10" fill="#000000" stroke="none" stroke-width="1"></path>`)
	assert.Contains(t, out, `id="a&#34;b"`)
	assert.Contains(t, out, `width="600px"`)
	assert.Equal(t, 2, strings.Count(out, "<path "))

	// the output is readable back, with the same geometry
	doc, err := svgdoc.ReadDocumentStream(&buf, svgdoc.StrictErrorMode, svgdoc.DocumentOrder)
	require.NoError(t, err)
	assert.Equal(t, paths, doc.Paths())
	assert.Equal(t, "1", doc.Attributes()[0]["stroke-width"])
	assert.Equal(t, NewCanvas(paths, Options{}).ViewBox, doc.ViewBox)
}

func TestWriteAttributeMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, []svgpath.Path{{line(0, 0, 1, 1)}}, []map[string]string{{}, {}}, Options{})
	require.ErrorIs(t, err, ErrAttributeMismatch)
	assert.Zero(t, buf.Len())

	require.NoError(t, Write(&buf, []svgpath.Path{{line(0, 0, 1, 1)}}, nil, Options{}))
	assert.Contains(t, buf.String(), `<path d="M 0,0 L 1,1"></path>`)
}
