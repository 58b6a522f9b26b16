package svgdoc

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgcombine/svgpath"
)

var errParamMismatch = errors.New("param mismatch")

type svgFunc func(c *docCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        noopF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"desc":     noopF,
	"defs":     noopF,
	"title":    titleF,
	"metadata": noopF,
	"style":    noopF,
	"symbol":   noopF,
	// gradients only carry paint information
	"linearGradient": noopF,
	"radialGradient": noopF,
	"stop":           noopF,
}

// parseLength parses a coordinate or length, accepting
// an optional "px" suffix.
func parseLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func parseNumbers(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		if out[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parsePoints(s string) ([]svgpath.Point, error) {
	nums, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, errors.New("points has odd number of coordinates")
	}
	out := make([]svgpath.Point, len(nums)/2)
	for i := range out {
		out[i] = svgpath.Point{X: nums[2*i], Y: nums[2*i+1]}
	}
	return out, nil
}

func noopF(*docCursor, []xml.Attr) error { return nil }

func svgF(c *docCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			nums, err := parseNumbers(attr.Value)
			if err != nil {
				return err
			}
			if len(nums) != 4 {
				return errParamMismatch
			}
			c.doc.ViewBox = svgpath.Bounds{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}
		case "width":
			c.doc.Width = attr.Value
		case "height":
			c.doc.Height = attr.Value
		}
	}
	return nil
}

func titleF(c *docCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.doc.Titles = append(c.doc.Titles, "")
	return nil
}

func pathF(c *docCursor, attrs []xml.Attr) error {
	var (
		path svgpath.Path
		err  error
	)
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			if path, err = svgpath.ParseD(attr.Value); err != nil {
				return err
			}
		}
	}
	c.addElement(PathKind, path, attrs)
	return nil
}

func polylineF(c *docCursor, attrs []xml.Attr) error {
	points, err := readPointsAttr(attrs)
	if err != nil {
		return err
	}
	c.addElement(PolylineKind, svgpath.Polyline(points), attrs)
	return nil
}

func polygonF(c *docCursor, attrs []xml.Attr) error {
	points, err := readPointsAttr(attrs)
	if err != nil {
		return err
	}
	c.addElement(PolygonKind, svgpath.Polygon(points), attrs)
	return nil
}

func readPointsAttr(attrs []xml.Attr) ([]svgpath.Point, error) {
	for _, attr := range attrs {
		if attr.Name.Local == "points" {
			return parsePoints(attr.Value)
		}
	}
	return nil, nil
}

func lineF(c *docCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseLength(attr.Value)
		case "x2":
			x2, err = parseLength(attr.Value)
		case "y1":
			y1, err = parseLength(attr.Value)
		case "y2":
			y2, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	path := svgpath.Path{svgpath.Line{From: svgpath.Point{X: x1, Y: y1}, To: svgpath.Point{X: x2, Y: y2}}}
	c.addElement(LineKind, path, attrs)
	return nil
}

func readEllipse(attrs []xml.Attr) (cx, cy, rx, ry float64, err error) {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseLength(attr.Value)
		case "cy":
			cy, err = parseLength(attr.Value)
		case "r":
			rx, err = parseLength(attr.Value)
			ry = rx
		case "rx":
			rx, err = parseLength(attr.Value)
		case "ry":
			ry, err = parseLength(attr.Value)
		}
		if err != nil {
			return
		}
	}
	return
}

func circleF(c *docCursor, attrs []xml.Attr) error {
	cx, cy, rx, ry, err := readEllipse(attrs)
	if err != nil {
		return err
	}
	c.addElement(CircleKind, svgpath.Ellipse(cx, cy, rx, ry), attrs)
	return nil
}

func ellipseF(c *docCursor, attrs []xml.Attr) error {
	cx, cy, rx, ry, err := readEllipse(attrs)
	if err != nil {
		return err
	}
	c.addElement(EllipseKind, svgpath.Ellipse(cx, cy, rx, ry), attrs)
	return nil
}

func rectF(c *docCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseLength(attr.Value)
		case "y":
			y, err = parseLength(attr.Value)
		case "width":
			w, err = parseLength(attr.Value)
		case "height":
			h, err = parseLength(attr.Value)
		case "rx":
			rx, err = parseLength(attr.Value)
		case "ry":
			ry, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.addElement(RectKind, svgpath.Rect(x, y, w, h, rx, ry), attrs)
	return nil
}
