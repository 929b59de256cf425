package renderer

import (
	"context"
	"fmt"
	"strings"

	"github.com/avdeyev/orbitgen/internal/ring"
)

// ExportDiagram lays out the ring, renders it in the requested format, and
// writes the result. The image is encoded fully in memory before the single
// file write, so a failed render leaves no partial output.
func ExportDiagram(ctx context.Context, r *ring.Ring, outputPath string, opts RenderOptions) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	layout := CalculateLayout(r)

	var data []byte
	var err error

	switch strings.ToLower(opts.Format) {
	case "", "png":
		data, err = NewPNGRenderer(opts).Render(layout, r)
	case "svg":
		data, err = NewSVGRenderer(opts).Render(layout, r)
	default:
		return fmt.Errorf("unsupported format: %s (supported: png, svg)", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to render diagram: %w", err)
	}

	return writeFile(outputPath, data)
}
