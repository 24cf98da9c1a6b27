package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// Options configures diagram generation.
type Options struct {
	// Detailed labels edges with the changed position and letters.
	Detailed bool
}

const header = `  rankdir=LR;
  bgcolor="transparent";
  node [shape=box, style="rounded,filled", fillcolor=white, fontname="Helvetica", fontsize=20, margin="0.2,0.1"];
  edge [fontname="Helvetica", fontsize=12];
  nodesep=0.3;
`

// LadderDOT converts a ladder to Graphviz DOT source. The first and last words
// are highlighted. An empty path yields an empty graph.
func LadderDOT(path []string, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph ladder {\n")
	buf.WriteString(header)
	buf.WriteString("\n")

	for i, w := range path {
		attrs := fmt.Sprintf("label=%q", w)
		if i == 0 || i == len(path)-1 {
			attrs += `, fillcolor="#d9f2ef", penwidth=2`
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", w, attrs)
	}

	buf.WriteString("\n")
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if !opts.Detailed {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from, to, edgeLabel(from, to))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// NeighborhoodDOT renders word at the center of its neighbors.
func NeighborhoodDOT(word string, neighbors []string, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph neighborhood {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString(header)
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=\"#d9f2ef\", penwidth=2];\n", word, word)
	for _, n := range neighbors {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n, n)
	}
	buf.WriteString("\n")
	for _, n := range neighbors {
		if opts.Detailed {
			fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", word, n, edgeLabel(word, n))
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", word, n)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// edgeLabel describes a single substitution, e.g. "1: O→A" (1-based position).
func edgeLabel(from, to string) string {
	pos := wordgraph.ChangedPosition(from, to)
	if pos < 0 {
		return ""
	}
	a, b := []rune(from), []rune(to)
	return fmt.Sprintf("%d: %c→%c", pos+1, a[pos], b[pos])
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a plain
// viewBox and pixel size so the output scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
