// Package nodelink renders word ladders as node-link diagrams.
//
// # Overview
//
// A ladder becomes a chain of rounded boxes, one per word, joined by edges
// from each word to the next. With [Options].Detailed set, every edge is
// labeled with the position that changed and the substituted letters.
//
// A neighborhood (one word and all of its neighbors) renders as a star,
// which is useful to explain why a search got stuck.
//
// # Usage
//
//	dot := nodelink.LadderDOT(path, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be written out and processed with external
// Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
