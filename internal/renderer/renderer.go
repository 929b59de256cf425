// Package renderer draws orbit diagrams from a ring model. It supports PNG
// and SVG output, resolves label fonts with a host-then-embedded fallback
// chain, and renders deterministically for a fixed ring and font resolver.
package renderer

import (
	"context"

	"github.com/avdeyev/orbitgen/internal/ring"
)

// RenderOptions contains configuration for rendering
type RenderOptions struct {
	Format        string // "png" (default) or "svg"
	Title         string
	IncludeLabels bool
	Fonts         FontResolver // nil selects the host resolver
}

// RenderDiagram generates a diagram from the ring model and writes it to
// outputPath. It respects the provided context for cancellation.
func RenderDiagram(ctx context.Context, r *ring.Ring, outputPath string, opts RenderOptions) error {
	return ExportDiagram(ctx, r, outputPath, opts)
}
