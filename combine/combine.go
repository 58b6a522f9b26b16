// Package combine selects paths of an SVG document by index and
// concatenates their segments into a single path.
package combine

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgcombine/svgpath"
)

var (
	// ErrIndexOutOfRange is returned when a selected index has no path.
	ErrIndexOutOfRange = errors.New("path index out of range")
	// ErrNoSelection is returned when no index is given.
	ErrNoSelection = errors.New("no path selected")
)

// DefaultIndices selects the second and fourth paths of a document.
var DefaultIndices = []int{1, 3}

// Select returns the paths at `indices`, in the order of `indices`.
// An index may be repeated. Nothing is returned if any index is invalid.
func Select(paths []svgpath.Path, indices []int) ([]svgpath.Path, error) {
	if len(indices) == 0 {
		return nil, ErrNoSelection
	}
	out := make([]svgpath.Path, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(paths) {
			return nil, fmt.Errorf("%w: index %d, document has %d paths", ErrIndexOutOfRange, idx, len(paths))
		}
		out[i] = paths[idx]
	}
	return out, nil
}

// Combine builds a new path made of the segments of the
// selected paths, in selection order. Segments are not modified.
func Combine(paths []svgpath.Path, indices []int) (svgpath.Path, error) {
	selected, err := Select(paths, indices)
	if err != nil {
		return nil, err
	}
	return svgpath.Concat(selected...), nil
}

// Style holds the presentation attributes applied to written paths.
type Style struct {
	Fill        string `yaml:"fill"`
	Stroke      string `yaml:"stroke"`
	StrokeWidth string `yaml:"stroke_width"`
}

// DefaultStyle is an opaque black fill, without stroke.
var DefaultStyle = Style{Fill: "#000000", Stroke: "none", StrokeWidth: "1"}

// Attributes returns the non empty attributes of the style.
func (s Style) Attributes() map[string]string {
	out := make(map[string]string, 3)
	if s.Fill != "" {
		out["fill"] = s.Fill
	}
	if s.Stroke != "" {
		out["stroke"] = s.Stroke
	}
	if s.StrokeWidth != "" {
		out["stroke_width"] = s.StrokeWidth
	}
	return out
}
