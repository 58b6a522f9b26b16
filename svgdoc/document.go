// Provides parsing of SVG documents into the geometric
// paths they contain, with the attributes found on each
// graphical element.
//
// Only geometry is extracted: styles, transforms and references
// are kept as raw attributes and are not resolved.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svgcombine/svgpath"
)

// ErrInvalidDocument is returned when the input is not an SVG document.
var ErrInvalidDocument = errors.New("invalid svg document")

// ErrorMode determines how unsupported elements are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unsupported element.
	WarnErrorMode
	// StrictErrorMode fails on the first unsupported element.
	StrictErrorMode
)

var errorModeNames = [...]string{"ignore", "warn", "strict"}

func (m ErrorMode) String() string {
	if int(m) < len(errorModeNames) {
		return errorModeNames[m]
	}
	return fmt.Sprintf("ErrorMode(%d)", m)
}

// ParseErrorMode returns the mode named `s`.
func ParseErrorMode(s string) (ErrorMode, error) {
	for i, name := range errorModeNames {
		if name == s {
			return ErrorMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown error mode %q (expected one of %v)", s, errorModeNames)
}

// Order controls the order of the extracted paths.
type Order uint8

const (
	// KindOrder groups the elements by kind, in the order
	// path, polyline, polygon, line, ellipse, circle, rect,
	// keeping the document order inside each group.
	KindOrder Order = iota
	// DocumentOrder keeps the elements in document order.
	DocumentOrder
)

var orderNames = [...]string{"kind", "document"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", o)
}

// ParseOrder returns the order named `s`.
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if name == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("unknown order %q (expected one of %v)", s, orderNames)
}

// Kind is the element a path was read from.
type Kind uint8

const (
	PathKind Kind = iota
	PolylineKind
	PolygonKind
	LineKind
	EllipseKind
	CircleKind
	RectKind
)

var kindNames = [...]string{"path", "polyline", "polygon", "line", "ellipse", "circle", "rect"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Attributes maps the attribute names of an element to their raw value.
type Attributes map[string]string

// Element is one graphical element of a document.
type Element struct {
	Kind       Kind
	Path       svgpath.Path
	Attributes Attributes
}

// Document holds data from parsed SVGs.
type Document struct {
	ViewBox       svgpath.Bounds
	Width, Height string   // top level width and height attributes
	Titles        []string // Title elements collect here

	Elements []Element
}

// Paths returns the paths of the elements, in order.
func (d *Document) Paths() []svgpath.Path {
	out := make([]svgpath.Path, len(d.Elements))
	for i, e := range d.Elements {
		out[i] = e.Path
	}
	return out
}

// Attributes returns the attributes of the elements, parallel to Paths.
func (d *Document) Attributes() []Attributes {
	out := make([]Attributes, len(d.Elements))
	for i, e := range d.Elements {
		out[i] = e.Attributes
	}
	return out
}

// ReadDocumentStream reads the document from the given io.Reader.
// errMode determines if the reader ignores, errors out, or logs a warning
// if it does not handle an element found in the document.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode, order Order) (*Document, error) {
	doc := &Document{}
	cursor := &docCursor{doc: doc, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenSVG := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			if se.Name.Local == "svg" {
				seenSVG = true
			} else if !seenSVG {
				return nil, fmt.Errorf("%w: unexpected root element <%s>", ErrInvalidDocument, se.Name.Local)
			}
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if se.Name.Local == "title" {
				cursor.inTitleText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				doc.Titles[len(doc.Titles)-1] += string(se)
			}
		}
	}
	if !seenSVG {
		return nil, fmt.Errorf("%w: no <svg> element", ErrInvalidDocument)
	}
	if order == KindOrder {
		slices.SortStableFunc(doc.Elements, func(a, b Element) int { return int(a.Kind) - int(b.Kind) })
	}
	return doc, nil
}

// ReadDocument reads the document from the named file.
func ReadDocument(file string, errMode ErrorMode, order Order) (*Document, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, errMode, order)
}

// docCursor stores intermediate state while reading a document
type docCursor struct {
	doc         *Document
	errorMode   ErrorMode
	inTitleText bool
}

func (c *docCursor) handleError(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(msg)
	case WarnErrorMode:
		slog.Warn(msg)
	}
	return nil
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("cannot process svg element %s", se.Name.Local)
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("reading <%s>: %w", se.Name.Local, err)
	}
	return nil
}

// addElement records a graphical element; empty paths are kept
// so that indices follow the elements of the document.
func (c *docCursor) addElement(kind Kind, path svgpath.Path, attrs []xml.Attr) {
	c.doc.Elements = append(c.doc.Elements, Element{
		Kind:       kind,
		Path:       path,
		Attributes: newAttributes(attrs),
	})
}

func newAttributes(attrs []xml.Attr) Attributes {
	out := make(Attributes, len(attrs))
	for _, attr := range attrs {
		key := attr.Name.Local
		if attr.Name.Space == "xmlns" {
			key = "xmlns:" + key
		}
		out[key] = attr.Value
	}
	return out
}
