package svgraster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgcombine/svgdraw"
	"github.com/benoitkugler/svgcombine/svgpath"
)

func square(x, y, size float64) svgpath.Path {
	return svgpath.Rect(x, y, size, size, 0, 0)
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func isBlack(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

func TestRasterize(t *testing.T) {
	t.Parallel()

	// left half of the view box is filled
	path := square(0, 0, 10)
	img := Rasterize(path, svgdraw.Paint{Fill: color.Black}, svgpath.Bounds{W: 20, H: 10}, 200, 100)

	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	assert.True(t, isBlack(img.At(50, 50)))
	assert.True(t, isWhite(img.At(150, 50)))
}

func TestRasterizeStroke(t *testing.T) {
	t.Parallel()

	path := square(5, 5, 10)
	red := color.RGBA{R: 0xff, A: 0xff}
	img := Rasterize(path, svgdraw.Paint{Stroke: red, LineWidth: 1}, svgpath.Bounds{W: 20, H: 20}, 200, 200)

	// the inside is not filled, the outline is
	assert.True(t, isWhite(img.At(100, 100)))
	r, g, b, _ := img.At(100, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestRenderPNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderPNG(&buf, square(0, 0, 10), svgdraw.Paint{Fill: color.Black}, svgpath.Bounds{W: 10, H: 10}, 60, 60)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.True(t, isBlack(img.At(30, 30)))
}
