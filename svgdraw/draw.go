// Given a path, implements how to draw it on a canvas.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgcombine/svgpath"
)

type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// SetLineWidth sets the width of the stroke, in device space
	SetLineWidth(width fixed.Int26_6)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func toFixed(p svgpath.Point, m rasterx.Matrix2D) fixed.Point26_6 {
	return fToFixed(m.Transform(p.X, p.Y))
}

// ViewBoxMatrix maps `viewBox` onto a width x height device.
func ViewBoxMatrix(viewBox svgpath.Bounds, width, height float64) rasterx.Matrix2D {
	if viewBox.W == 0 || viewBox.H == 0 {
		return rasterx.Identity
	}
	sx, sy := width/viewBox.W, height/viewBox.H
	return rasterx.Matrix2D{A: sx, D: sy, E: -viewBox.X * sx, F: -viewBox.Y * sy}
}

// DrawPath replays `path` into `d`, transformed by `m`.
// A new subpath is started at each discontinuity, and subpaths
// ending on their start point are closed. Arcs are drawn as cubics.
func DrawPath(d Drawer, path svgpath.Path, m rasterx.Matrix2D) {
	var subStart svgpath.Point
	for i, seg := range path {
		if i == 0 || seg.Start() != path[i-1].End() {
			if i != 0 {
				d.Stop(path[i-1].End() == subStart)
			}
			subStart = seg.Start()
			d.Start(toFixed(subStart, m))
		}
		switch seg := seg.(type) {
		case svgpath.Line:
			d.Line(toFixed(seg.To, m))
		case svgpath.QuadBezier:
			d.QuadBezier(toFixed(seg.Control, m), toFixed(seg.To, m))
		case svgpath.CubicBezier:
			d.CubeBezier(toFixed(seg.Control1, m), toFixed(seg.Control2, m), toFixed(seg.To, m))
		case svgpath.Arc:
			for _, c := range seg.Cubics() {
				d.CubeBezier(toFixed(c.Control1, m), toFixed(c.Control2, m), toFixed(c.To, m))
			}
		}
	}
	if len(path) != 0 {
		d.Stop(path[len(path)-1].End() == subStart)
	}
}

// Draw paints `path` with `paint` into the driver.
func Draw(drv Driver, path svgpath.Path, paint Paint, m rasterx.Matrix2D) {
	filler, stroker := drv.SetupDrawers(paint.Fill != nil, paint.Stroke != nil && paint.LineWidth > 0)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(true)
		DrawPath(filler, path, m)
		filler.SetColor(paint.Fill)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		// the stroke scales with the average of the axis
		scale := (math.Abs(m.A) + math.Abs(m.D)) / 2
		stroker.SetLineWidth(fixed.Int26_6(paint.LineWidth * scale * 64))
		DrawPath(stroker, path, m)
		stroker.SetColor(paint.Stroke)
		stroker.Draw()
	}
}
