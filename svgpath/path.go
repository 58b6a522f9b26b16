// Implements an abstract representation of
// svg paths as ordered lists of curve segments,
// which can be concatenated, measured and
// serialized back to path data.
package svgpath

import (
	"strconv"
	"strings"
)

// Point is a position in user space.
type Point struct{ X, Y float64 }

func (p Point) String() string { return formatFloat(p.X) + "," + formatFloat(p.Y) }

// Segment groups the different curve primitives
type Segment interface {
	Start() Point
	End() Point

	// appendD writes the drawing command (without the initial M)
	appendD(b *strings.Builder)
}

// Line is a straight segment.
type Line struct{ From, To Point }

// QuadBezier is a quadratic Bézier curve with one control point.
type QuadBezier struct{ From, Control, To Point }

// CubicBezier is a cubic Bézier curve with two control points.
type CubicBezier struct{ From, Control1, Control2, To Point }

// Arc is an elliptical arc, kept in its SVG endpoint parametrization.
type Arc struct {
	From     Point
	Radius   Point   // rx, ry
	Rotation float64 // x-axis rotation, in degrees
	LargeArc bool
	Sweep    bool
	To       Point
}

func (s Line) Start() Point        { return s.From }
func (s QuadBezier) Start() Point  { return s.From }
func (s CubicBezier) Start() Point { return s.From }
func (s Arc) Start() Point         { return s.From }

func (s Line) End() Point        { return s.To }
func (s QuadBezier) End() Point  { return s.To }
func (s CubicBezier) End() Point { return s.To }
func (s Arc) End() Point         { return s.To }

func (s Line) appendD(b *strings.Builder) {
	b.WriteString("L ")
	b.WriteString(s.To.String())
}

func (s QuadBezier) appendD(b *strings.Builder) {
	b.WriteString("Q ")
	b.WriteString(s.Control.String())
	b.WriteByte(' ')
	b.WriteString(s.To.String())
}

func (s CubicBezier) appendD(b *strings.Builder) {
	b.WriteString("C ")
	b.WriteString(s.Control1.String())
	b.WriteByte(' ')
	b.WriteString(s.Control2.String())
	b.WriteByte(' ')
	b.WriteString(s.To.String())
}

func (s Arc) appendD(b *strings.Builder) {
	b.WriteString("A ")
	b.WriteString(s.Radius.String())
	b.WriteByte(' ')
	b.WriteString(formatFloat(s.Rotation))
	b.WriteByte(' ')
	b.WriteString(formatFlag(s.LargeArc))
	b.WriteByte(',')
	b.WriteString(formatFlag(s.Sweep))
	b.WriteByte(' ')
	b.WriteString(s.To.String())
}

// Path describes an ordered sequence of segments.
// Consecutive segments are not required to be connected:
// a discontinuity starts a new subpath.
type Path []Segment

// D returns the path data of the path, suitable for the `d`
// attribute of a <path> element.
func (p Path) D() string {
	var b strings.Builder
	for i, seg := range p {
		if i == 0 || seg.Start() != p[i-1].End() {
			if i != 0 {
				b.WriteByte(' ')
			}
			b.WriteString("M ")
			b.WriteString(seg.Start().String())
		}
		b.WriteByte(' ')
		seg.appendD(&b)
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.D()
}

// Subpaths returns the number of connected runs of segments.
func (p Path) Subpaths() int {
	n := 0
	for i, seg := range p {
		if i == 0 || seg.Start() != p[i-1].End() {
			n++
		}
	}
	return n
}

// Concat returns a new path made of the segments of `paths`,
// in order. The inputs are not modified.
func Concat(paths ...Path) Path {
	n := 0
	for _, p := range paths {
		n += len(p)
	}
	out := make(Path, 0, n)
	for _, p := range paths {
		out = append(out, p...)
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
