package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/benoitkugler/svgcombine/internal/cli"
)

const (
	cmdName = "svgcombine"

	shortDesc = "Combine selected paths of an SVG document into a single path."
	longDesc  = `svgcombine reads the paths of an SVG document, selects some of them by
index and concatenates their segments, in selection order, into a single
path. The result is written to a new SVG document with a fixed style
(black fill, no stroke), and may be previewed as PNG or PDF, or opened in
the system browser.

Paths are numbered from 0, all <path> elements first, then polylines,
polygons, lines, ellipses, circles and rects. Use "svgcombine list" to see
the indices of a document.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc, nil)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
