// Package svgwrite serializes paths to standalone SVG documents.
package svgwrite

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgcombine/svgpath"
)

// ErrAttributeMismatch is returned when the attributes are
// not parallel to the paths.
var ErrAttributeMismatch = errors.New("attributes do not match paths")

// Write writes an SVG document with one <path> element per path.
// `attributes` is either empty or parallel to `paths`; attribute
// names using underscores (stroke_width) are written with hyphens,
// in lexical order, after the path data.
func Write(w io.Writer, paths []svgpath.Path, attributes []map[string]string, opts Options) error {
	if len(attributes) != 0 && len(attributes) != len(paths) {
		return fmt.Errorf("%w: %d paths, %d attribute sets", ErrAttributeMismatch, len(paths), len(attributes))
	}
	canvas := NewCanvas(paths, opts)

	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "svg"}, Attr: []xml.Attr{
		attr("xmlns", "http://www.w3.org/2000/svg"),
		attr("baseProfile", "full"),
		attr("version", "1.1"),
		attr("width", formatFloat(canvas.Width)+"px"),
		attr("height", formatFloat(canvas.Height)+"px"),
		attr("viewBox", fmt.Sprintf("%s %s %s %s",
			formatFloat(canvas.ViewBox.X), formatFloat(canvas.ViewBox.Y),
			formatFloat(canvas.ViewBox.W), formatFloat(canvas.ViewBox.H))),
	}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for i, p := range paths {
		el := xml.StartElement{Name: xml.Name{Local: "path"}, Attr: []xml.Attr{attr("d", p.D())}}
		if len(attributes) != 0 {
			el.Attr = append(el.Attr, sortedAttrs(attributes[i])...)
		}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// sortedAttrs normalizes the names and drops `d`, which
// always comes from the path itself.
func sortedAttrs(m map[string]string) []xml.Attr {
	out := make([]xml.Attr, 0, len(m))
	for k, v := range m {
		k = strings.ReplaceAll(k, "_", "-")
		if k == "d" {
			continue
		}
		out = append(out, attr(k, v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name.Local < out[j].Name.Local })
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
