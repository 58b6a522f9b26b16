package svgwrite

import (
	"math"

	"github.com/benoitkugler/svgcombine/svgpath"
)

const (
	// DefaultMargin is the fraction of the content size
	// added on each side of the viewBox.
	DefaultMargin = 0.1
	// DefaultMinDimension is the pixel size of the longer side.
	DefaultMinDimension = 600
)

// Options tunes the canvas of a written document.
// The zero value uses the defaults.
type Options struct {
	Margin       float64
	MinDimension float64
}

func (o Options) withDefaults() Options {
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.MinDimension <= 0 {
		o.MinDimension = DefaultMinDimension
	}
	return o
}

// Canvas is the viewport a set of paths is displayed in:
// a viewBox in user space, mapped to Width x Height pixels.
type Canvas struct {
	ViewBox       svgpath.Bounds
	Width, Height float64
}

// NewCanvas returns the canvas fitting all the paths, grown by the margin.
// A zero extent is treated as 1 so that the canvas is never degenerated.
func NewCanvas(paths []svgpath.Path, opts Options) Canvas {
	opts = opts.withDefaults()
	box := svgpath.UnionBounds(paths...)
	if box.W == 0 {
		box.W = 1
	}
	if box.H == 0 {
		box.H = 1
	}
	box.X -= opts.Margin * box.W
	box.Y -= opts.Margin * box.H
	box.W += 2 * opts.Margin * box.W
	box.H += 2 * opts.Margin * box.H

	out := Canvas{ViewBox: box}
	if box.W > box.H {
		out.Width = opts.MinDimension
		out.Height = math.Ceil(opts.MinDimension * box.H / box.W)
	} else {
		out.Width = math.Ceil(opts.MinDimension * box.W / box.H)
		out.Height = opts.MinDimension
	}
	return out
}
