// Package config holds the settings of a run, read from
// a YAML file and overridden by command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/svgcombine/combine"
	"github.com/benoitkugler/svgcombine/svgdoc"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Input        string        `yaml:"input"`
	Output       string        `yaml:"output"`
	Indices      []int         `yaml:"select"`
	Style        combine.Style `yaml:"style"`
	Order        string        `yaml:"order"`
	ErrorMode    string        `yaml:"error_mode"`
	Open         bool          `yaml:"open"`
	PNG          string        `yaml:"png"`
	PDF          string        `yaml:"pdf"`
	SplitPattern string        `yaml:"split_pattern"`
}

// Default returns the settings used without any file or flag:
// paths 1 and 3 of test.svg are written to result.svg.
func Default() Config {
	return Config{
		Input:        "test.svg",
		Output:       "result.svg",
		Indices:      append([]int(nil), combine.DefaultIndices...),
		Style:        combine.DefaultStyle,
		Order:        svgdoc.KindOrder.String(),
		ErrorMode:    svgdoc.IgnoreErrorMode.String(),
		SplitPattern: combine.DefaultSplitPattern,
	}
}

// Parse overlays the YAML document `data` on `base`.
// Unknown keys are rejected.
func Parse(data []byte, base Config) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&base); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return base, nil
}

// Validate reports every problem of the config at once.
func (c Config) Validate() error {
	var merr error
	if c.Input == "" {
		merr = multierror.Append(merr, errors.New("input is required"))
	}
	if c.Output == "" {
		merr = multierror.Append(merr, errors.New("output is required"))
	}
	if len(c.Indices) == 0 {
		merr = multierror.Append(merr, errors.New("at least one path index must be selected"))
	}
	for _, idx := range c.Indices {
		if idx < 0 {
			merr = multierror.Append(merr, fmt.Errorf("negative path index %d", idx))
		}
	}
	if _, err := svgdoc.ParseOrder(c.Order); err != nil {
		merr = multierror.Append(merr, err)
	}
	if _, err := svgdoc.ParseErrorMode(c.ErrorMode); err != nil {
		merr = multierror.Append(merr, err)
	}
	if c.SplitPattern != "" && strings.Count(c.SplitPattern, "%d") != 1 {
		merr = multierror.Append(merr, fmt.Errorf("split pattern %q must contain %%d exactly once", c.SplitPattern))
	}
	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, merr)
	}
	return nil
}

// Combiner applies the config to a new Combiner.
// The config must be valid.
func (c Config) Combiner(opts ...combine.Option) *combine.Combiner {
	out := combine.New(opts...)
	out.Indices = append([]int(nil), c.Indices...)
	out.Style = c.Style
	out.Order, _ = svgdoc.ParseOrder(c.Order)
	out.ErrorMode, _ = svgdoc.ParseErrorMode(c.ErrorMode)
	return out
}

// Request returns the pipeline request of the config.
func (c Config) Request() combine.Request {
	return combine.Request{
		Input:  c.Input,
		Output: c.Output,
		PNG:    c.PNG,
		PDF:    c.PDF,
		Open:   c.Open,
	}
}
