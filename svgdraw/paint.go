package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errInvalidColor = errors.New("invalid color")

// Paint is the subset of presentation attributes
// used to preview a path. A nil color disables the operation.
type Paint struct {
	Fill, Stroke color.Color
	LineWidth    float64
}

// ParsePaint reads the fill, stroke and stroke width attributes,
// with the SVG defaults: black fill, no stroke, width 1.
// Attribute names may use underscores instead of hyphens.
func ParsePaint(attrs map[string]string) (Paint, error) {
	out := Paint{Fill: color.Black, LineWidth: 1}
	for k, v := range attrs {
		var err error
		switch strings.ReplaceAll(k, "_", "-") {
		case "fill":
			out.Fill, err = ParseColor(v)
		case "stroke":
			out.Stroke, err = ParseColor(v)
		case "stroke-width":
			out.LineWidth, err = strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
		}
		if err != nil {
			return Paint{}, fmt.Errorf("attribute %s: %w", k, err)
		}
	}
	return out, nil
}

// ParseColor parses an SVG color: a named color, #rgb, #rrggbb
// or rgb(r, g, b) with integers or percentages.
// "none" and "transparent" return a nil color.
func ParseColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "none", "transparent":
		return nil, nil
	case "currentcolor":
		return color.Black, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v[1:])
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		return parseRGB(v[4 : len(v)-1])
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", errInvalidColor, v)
}

func parseHex(v string) (color.Color, error) {
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return nil, fmt.Errorf("%w: #%s", errInvalidColor, v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: #%s", errInvalidColor, v)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

func parseRGB(v string) (color.Color, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: rgb(%s)", errInvalidColor, v)
	}
	var comps [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		scale := 1.
		if strings.HasSuffix(p, "%") {
			p = strings.TrimSuffix(p, "%")
			scale = 255. / 100
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: rgb(%s)", errInvalidColor, v)
		}
		f *= scale
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		comps[i] = uint8(f + 0.5)
	}
	return color.RGBA{R: comps[0], G: comps[1], B: comps[2], A: 0xff}, nil
}
