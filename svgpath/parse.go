package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPathData is returned (wrapped) when a `d` attribute can't be compiled.
var ErrInvalidPathData = errors.New("invalid path data")

// pathCursor is used while compiling path data
type pathCursor struct {
	data string
	pos  int

	path              Path
	current, subStart Point
	lastKey           byte  // last command executed
	lastControl       Point // last control point, used by smooth curves
	placed            bool  // a moveto has been seen
}

// ParseD compiles the svg path data `d` into a Path.
func ParseD(d string) (Path, error) {
	c := pathCursor{data: d}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c.path, nil
}

func (c *pathCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (offset %d)", ErrInvalidPathData, fmt.Sprintf(format, args...), c.pos)
}

func isCommand(r byte) bool {
	switch r {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isSeparator(r byte) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func isDigit(r byte) bool { return '0' <= r && r <= '9' }

func (c *pathCursor) skipSeparators() {
	for c.pos < len(c.data) && isSeparator(c.data[c.pos]) {
		c.pos++
	}
}

func (c *pathCursor) eof() bool {
	c.skipSeparators()
	return c.pos >= len(c.data)
}

// readNumber reads the next float, accepting the compact
// forms "-1-2", "1.5.5" and exponents.
func (c *pathCursor) readNumber() (float64, error) {
	c.skipSeparators()
	start := c.pos
	i := c.pos
	if i < len(c.data) && (c.data[i] == '+' || c.data[i] == '-') {
		i++
	}
	digits := 0
	for i < len(c.data) && isDigit(c.data[i]) {
		i++
		digits++
	}
	if i < len(c.data) && c.data[i] == '.' {
		i++
		for i < len(c.data) && isDigit(c.data[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, c.errorf("expected number")
	}
	if i < len(c.data) && (c.data[i] == 'e' || c.data[i] == 'E') {
		j := i + 1
		if j < len(c.data) && (c.data[j] == '+' || c.data[j] == '-') {
			j++
		}
		if j < len(c.data) && isDigit(c.data[j]) {
			for j < len(c.data) && isDigit(c.data[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(c.data[start:i], 64)
	if err != nil {
		return 0, c.errorf("%s", err)
	}
	c.pos = i
	return f, nil
}

// readFlag reads an arc flag, which may be packed
// without separator ("a1 1 0 01 10 10").
func (c *pathCursor) readFlag() (bool, error) {
	c.skipSeparators()
	if c.pos < len(c.data) {
		switch c.data[c.pos] {
		case '0':
			c.pos++
			return false, nil
		case '1':
			c.pos++
			return true, nil
		}
	}
	return false, c.errorf("expected arc flag")
}

func (c *pathCursor) readPoint(relative bool) (Point, error) {
	x, err := c.readNumber()
	if err != nil {
		return Point{}, err
	}
	y, err := c.readNumber()
	if err != nil {
		return Point{}, err
	}
	if relative {
		return Point{c.current.X + x, c.current.Y + y}, nil
	}
	return Point{x, y}, nil
}

// reflect returns the reflection of the last control point
// if the previous command is one of `keys`, or the current point.
func (c *pathCursor) reflect(keys string) Point {
	for i := 0; i < len(keys); i++ {
		if c.lastKey == keys[i] {
			return Point{2*c.current.X - c.lastControl.X, 2*c.current.Y - c.lastControl.Y}
		}
	}
	return c.current
}

func (c *pathCursor) compile() error {
	var key byte
	for !c.eof() {
		r := c.data[c.pos]
		switch {
		case isCommand(r):
			key = r
			c.pos++
		case key == 0:
			return c.errorf("path data must start with a moveto")
		case key == 'Z' || key == 'z':
			return c.errorf("unexpected parameter after closepath")
		case key == 'M':
			key = 'L' // implicit lineto
		case key == 'm':
			key = 'l'
		}
		if !c.placed && key != 'M' && key != 'm' {
			return c.errorf("path data must start with a moveto")
		}
		if err := c.addSegment(key); err != nil {
			return err
		}
		c.lastKey = key
	}
	return nil
}

func (c *pathCursor) addSegment(key byte) error {
	relative := 'a' <= key && key <= 'z'
	switch key {
	case 'M', 'm':
		p, err := c.readPoint(relative)
		if err != nil {
			return err
		}
		c.current, c.subStart, c.placed = p, p, true
	case 'Z', 'z':
		if c.current != c.subStart {
			c.path = append(c.path, Line{c.current, c.subStart})
		}
		c.current = c.subStart
	case 'L', 'l':
		p, err := c.readPoint(relative)
		if err != nil {
			return err
		}
		c.path = append(c.path, Line{c.current, p})
		c.current = p
	case 'H', 'h':
		x, err := c.readNumber()
		if err != nil {
			return err
		}
		if relative {
			x += c.current.X
		}
		p := Point{x, c.current.Y}
		c.path = append(c.path, Line{c.current, p})
		c.current = p
	case 'V', 'v':
		y, err := c.readNumber()
		if err != nil {
			return err
		}
		if relative {
			y += c.current.Y
		}
		p := Point{c.current.X, y}
		c.path = append(c.path, Line{c.current, p})
		c.current = p
	case 'C', 'c', 'S', 's':
		var ctrl1 Point
		if key == 'S' || key == 's' {
			ctrl1 = c.reflect("CcSs")
		} else {
			var err error
			if ctrl1, err = c.readPoint(relative); err != nil {
				return err
			}
		}
		ctrl2, err := c.readPoint(relative)
		if err != nil {
			return err
		}
		to, err := c.readPoint(relative)
		if err != nil {
			return err
		}
		c.path = append(c.path, CubicBezier{c.current, ctrl1, ctrl2, to})
		c.current, c.lastControl = to, ctrl2
	case 'Q', 'q', 'T', 't':
		var ctrl Point
		if key == 'T' || key == 't' {
			ctrl = c.reflect("QqTt")
		} else {
			var err error
			if ctrl, err = c.readPoint(relative); err != nil {
				return err
			}
		}
		to, err := c.readPoint(relative)
		if err != nil {
			return err
		}
		c.path = append(c.path, QuadBezier{c.current, ctrl, to})
		c.current, c.lastControl = to, ctrl
	case 'A', 'a':
		rx, err := c.readNumber()
		if err != nil {
			return err
		}
		ry, err := c.readNumber()
		if err != nil {
			return err
		}
		rot, err := c.readNumber()
		if err != nil {
			return err
		}
		large, err := c.readFlag()
		if err != nil {
			return err
		}
		sweep, err := c.readFlag()
		if err != nil {
			return err
		}
		to, err := c.readPoint(relative)
		if err != nil {
			return err
		}
		switch {
		case to == c.current: // omitted, per the implementation notes of SVG
		case rx == 0 || ry == 0:
			c.path = append(c.path, Line{c.current, to})
		default:
			c.path = append(c.path, Arc{
				From: c.current, Radius: Point{rx, ry}, Rotation: rot,
				LargeArc: large, Sweep: sweep, To: to,
			})
		}
		c.current = to
	}
	return nil
}
