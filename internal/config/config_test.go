package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgcombine/combine"
	"github.com/benoitkugler/svgcombine/svgdoc"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "test.svg", c.Input)
	assert.Equal(t, "result.svg", c.Output)
	assert.Equal(t, []int{1, 3}, c.Indices)
	assert.Equal(t, combine.DefaultStyle, c.Style)
	assert.False(t, c.Open)

	req := c.Request()
	assert.Equal(t, "test.svg", req.Input)
	assert.False(t, req.Open)
}

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
input: drawing.svg
select: [0, 2, 2]
style:
  fill: "#ff0000"
order: document
open: true
`)
	c, err := Parse(data, Default())
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "drawing.svg", c.Input)
	assert.Equal(t, "result.svg", c.Output)
	assert.Equal(t, []int{0, 2, 2}, c.Indices)
	assert.Equal(t, "#ff0000", c.Style.Fill)
	assert.Equal(t, "none", c.Style.Stroke)
	assert.True(t, c.Open)

	comb := c.Combiner()
	assert.Equal(t, svgdoc.DocumentOrder, comb.Order)
	assert.Equal(t, []int{0, 2, 2}, comb.Indices)

	empty, err := Parse(nil, Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), empty)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"unknown key":  "colour: red",
		"wrong type":   "select: first",
		"invalid yaml": "input: [",
	}
	for name, data := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(data), Default())
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := Config{
		Indices:      []int{-1, 2},
		Order:        "random",
		ErrorMode:    "loud",
		SplitPattern: "result.svg",
	}
	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, msg := range []string{
		"input is required",
		"output is required",
		"negative path index -1",
		"unknown order",
		"unknown error mode",
		"split pattern",
	} {
		assert.Contains(t, err.Error(), msg)
	}

	c = Default()
	c.Indices = nil
	require.ErrorContains(t, c.Validate(), "at least one path index")
}
