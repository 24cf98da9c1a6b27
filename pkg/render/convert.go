package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/wordladder/pkg/errors"
)

// converter is the external tool used for raster and PDF output.
const converter = "rsvg-convert"

// DefaultScale is the PNG scale factor used when none is given.
const DefaultScale = 2.0

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale
// factor. A scale of 2.0 produces a 2x resolution image; zero or less means
// [DefaultScale].
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// Available reports whether rsvg-convert is on the PATH.
func Available() bool {
	_, err := exec.LookPath(converter)
	return err == nil
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, converter, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w: %s", converter, err, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
