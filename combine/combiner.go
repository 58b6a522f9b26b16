package combine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/browser"
	"golang.org/x/sync/errgroup"

	"github.com/benoitkugler/svgcombine/storage"
	"github.com/benoitkugler/svgcombine/svgdoc"
	"github.com/benoitkugler/svgcombine/svgdraw"
	"github.com/benoitkugler/svgcombine/svgpath"
	"github.com/benoitkugler/svgcombine/svgpdf"
	"github.com/benoitkugler/svgcombine/svgraster"
	"github.com/benoitkugler/svgcombine/svgwrite"
)

// DefaultSplitPattern names the files written by Split.
const DefaultSplitPattern = "result_%d.svg"

// Combiner runs the load, combine and write pipeline.
type Combiner struct {
	Indices   []int
	Style     Style
	Order     svgdoc.Order
	ErrorMode svgdoc.ErrorMode
	// Workers bounds the number of files written concurrently by Split.
	Workers int

	store  *storage.Store
	opener func(path string) error
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithStore replaces the default storage.
func WithStore(s *storage.Store) Option {
	return func(c *Combiner) { c.store = s }
}

// WithOpener replaces the function used to display written files,
// which defaults to the system browser.
func WithOpener(open func(path string) error) Option {
	return func(c *Combiner) { c.opener = open }
}

// New returns a Combiner selecting DefaultIndices with DefaultStyle.
func New(opts ...Option) *Combiner {
	c := &Combiner{
		Indices: append([]int(nil), DefaultIndices...),
		Style:   DefaultStyle,
		Order:   svgdoc.KindOrder,
		Workers: 4,
		store:   storage.New(),
		opener:  browser.OpenFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one run of the pipeline.
type Request struct {
	Input  string
	Output string
	// PNG and PDF are optional preview locations.
	PNG, PDF string
	// Open displays the output once written.
	Open bool
}

// Result summarizes a run.
type Result struct {
	Paths    int // number of paths in the input
	Segments int
	Subpaths int
	Canvas   svgwrite.Canvas
}

// Load reads the document stored at `input`.
func (c *Combiner) Load(ctx context.Context, input string) (*svgdoc.Document, error) {
	data, err := c.store.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	doc, err := svgdoc.ReadDocumentStream(bytes.NewReader(data), c.ErrorMode, c.Order)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", input, err)
	}
	slog.Debug("document loaded", "input", input, "paths", len(doc.Elements))
	return doc, nil
}

// Run combines the selected paths of the input and writes the result.
// Nothing is written unless the combination succeeds.
func (c *Combiner) Run(ctx context.Context, req Request) (Result, error) {
	doc, err := c.Load(ctx, req.Input)
	if err != nil {
		return Result{}, err
	}
	combined, err := Combine(doc.Paths(), c.Indices)
	if err != nil {
		return Result{}, fmt.Errorf("combining %s: %w", req.Input, err)
	}

	paths := []svgpath.Path{combined}
	var buf bytes.Buffer
	if err := svgwrite.Write(&buf, paths, []map[string]string{c.Style.Attributes()}, svgwrite.Options{}); err != nil {
		return Result{}, err
	}
	if err := c.store.Save(ctx, req.Output, buf.Bytes()); err != nil {
		return Result{}, err
	}
	res := Result{
		Paths:    len(doc.Elements),
		Segments: len(combined),
		Subpaths: combined.Subpaths(),
		Canvas:   svgwrite.NewCanvas(paths, svgwrite.Options{}),
	}
	slog.Info("combined paths written",
		"output", req.Output, "indices", c.Indices, "segments", res.Segments)

	if req.PNG != "" || req.PDF != "" {
		if err := c.preview(ctx, combined, res.Canvas, req); err != nil {
			return res, err
		}
	}
	if req.Open {
		c.open(req.Output)
	}
	return res, nil
}

func (c *Combiner) preview(ctx context.Context, path svgpath.Path, canvas svgwrite.Canvas, req Request) error {
	paint, err := svgdraw.ParsePaint(c.Style.Attributes())
	if err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	if req.PNG != "" {
		var buf bytes.Buffer
		err := svgraster.RenderPNG(&buf, path, paint, canvas.ViewBox, int(canvas.Width), int(canvas.Height))
		if err != nil {
			return fmt.Errorf("rendering png: %w", err)
		}
		if err := c.store.Save(ctx, req.PNG, buf.Bytes()); err != nil {
			return err
		}
		slog.Info("png preview written", "output", req.PNG)
	}
	if req.PDF != "" {
		var buf bytes.Buffer
		err := svgpdf.RenderPDF(&buf, path, paint, canvas.ViewBox, canvas.Width, canvas.Height)
		if err != nil {
			return fmt.Errorf("rendering pdf: %w", err)
		}
		if err := c.store.Save(ctx, req.PDF, buf.Bytes()); err != nil {
			return err
		}
		slog.Info("pdf preview written", "output", req.PDF)
	}
	return nil
}

// open displays a written file; failures are only logged since
// the output is already saved.
func (c *Combiner) open(location string) {
	path, err := storage.LocalPath(location)
	if err != nil {
		slog.Warn("cannot open output", "output", location, "err", err)
		return
	}
	if err := c.opener(path); err != nil {
		slog.Warn("cannot open output", "output", path, "err", err)
	}
}

// Split writes each path of the input to its own file, named by
// formatting `pattern` with the path index, using the combiner style.
// It returns the written locations, in path order.
func (c *Combiner) Split(ctx context.Context, input, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultSplitPattern
	}
	doc, err := c.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	attrs := []map[string]string{c.Style.Attributes()}
	outputs := make([]string, len(doc.Elements))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))
	for i, el := range doc.Elements {
		outputs[i] = fmt.Sprintf(pattern, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := svgwrite.Write(&buf, []svgpath.Path{el.Path}, attrs, svgwrite.Options{}); err != nil {
				return err
			}
			if err := c.store.Save(ctx, outputs[i], buf.Bytes()); err != nil {
				return err
			}
			slog.Debug("path written", "index", i, "kind", el.Kind, "output", outputs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Info("paths exported", "count", len(outputs))
	return outputs, nil
}

// PathInfo describes one path of a document.
type PathInfo struct {
	Index    int
	Kind     svgdoc.Kind
	ID       string
	Segments int
	Subpaths int
	Bounds   svgpath.Bounds
	Fill     string
}

// Describe lists the paths of `doc`, to help choosing indices.
func Describe(doc *svgdoc.Document) []PathInfo {
	out := make([]PathInfo, len(doc.Elements))
	for i, el := range doc.Elements {
		out[i] = PathInfo{
			Index:    i,
			Kind:     el.Kind,
			ID:       el.Attributes["id"],
			Segments: len(el.Path),
			Subpaths: el.Path.Subpaths(),
			Bounds:   el.Path.Bounds(),
			Fill:     el.Attributes["fill"],
		}
	}
	return out
}
