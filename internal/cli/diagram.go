package cli

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/matzehuels/wordladder/pkg/render"
	"github.com/matzehuels/wordladder/pkg/render/nodelink"
)

// diagramOpts holds the diagram output flags shared by ladder and neighbors.
type diagramOpts struct {
	dot      string
	svg      string
	png      string
	pdf      string
	scale    float64
	detailed bool
}

// register adds the diagram flags to fs. what names the rendered thing in
// the help text.
func (d *diagramOpts) register(fs *pflag.FlagSet, what string) {
	fs.StringVar(&d.dot, "dot", "", "write the "+what+" as Graphviz DOT to this file")
	fs.StringVar(&d.svg, "svg", "", "write the "+what+" as SVG to this file")
	fs.StringVar(&d.png, "png", "", "write the "+what+" as PNG to this file (requires rsvg-convert)")
	fs.StringVar(&d.pdf, "pdf", "", "write the "+what+" as PDF to this file (requires rsvg-convert)")
	fs.Float64Var(&d.scale, "scale", render.DefaultScale, "PNG scale factor")
	fs.BoolVar(&d.detailed, "detailed", false, "label diagram edges with the changed letter")
}

// requested reports whether any diagram file was asked for.
func (d *diagramOpts) requested() bool {
	return d.dot != "" || d.svg != "" || d.png != "" || d.pdf != ""
}

func (d *diagramOpts) options() nodelink.Options {
	return nodelink.Options{Detailed: d.detailed}
}

// writeDiagrams writes dot and each rendering requested by d. SVG is only
// rendered when some output needs it.
func (c *CLI) writeDiagrams(ctx context.Context, dot string, d *diagramOpts) error {
	if d.dot != "" {
		if err := c.writeGenerated(d.dot, []byte(dot)); err != nil {
			return err
		}
	}
	if d.svg == "" && d.png == "" && d.pdf == "" {
		return nil
	}

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return err
	}
	if d.svg != "" {
		if err := c.writeGenerated(d.svg, svg); err != nil {
			return err
		}
	}
	if d.png != "" {
		png, err := render.ToPNG(ctx, svg, d.scale)
		if err != nil {
			return err
		}
		if err := c.writeGenerated(d.png, png); err != nil {
			return err
		}
	}
	if d.pdf != "" {
		pdf, err := render.ToPDF(ctx, svg)
		if err != nil {
			return err
		}
		if err := c.writeGenerated(d.pdf, pdf); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) writeGenerated(path string, data []byte) error {
	if err := writeOutput(path, data); err != nil {
		return err
	}
	c.Logger.Infof("Generated %s", path)
	return nil
}
