// Package render turns word ladders into pictures.
//
// # Overview
//
// Diagrams are built in two steps. The [nodelink] subpackage produces
// Graphviz DOT source for a ladder or for a word's neighborhood and renders
// it to SVG in-process. This package converts that SVG to PNG or PDF:
//
//	dot := nodelink.LadderDOT(path, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(ctx, svg, 2)
//	pdf, err := render.ToPDF(ctx, svg)
//
// # External Tools
//
// PNG and PDF output shell out to rsvg-convert from librsvg. When it is not
// installed, [ToPNG] and [ToPDF] return an UNSUPPORTED error; [Available]
// checks up front.
//
// [nodelink]: github.com/matzehuels/wordladder/pkg/render/nodelink
package render
