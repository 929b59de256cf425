// Package generator wires manifest loading, ring building, and rendering
// into the one operation the CLI exposes.
package generator

import (
	"context"
	"fmt"

	"github.com/avdeyev/orbitgen/internal/manifest"
	"github.com/avdeyev/orbitgen/internal/renderer"
	"github.com/avdeyev/orbitgen/internal/ring"
	"github.com/avdeyev/orbitgen/internal/validation"
)

// Config contains all configuration needed to generate a diagram. When both
// ManifestPath and ManifestURL are empty the built-in default manifest is
// rendered.
type Config struct {
	ManifestPath  string
	ManifestURL   string
	OutputPath    string
	Format        string
	Title         string
	IncludeLabels bool

	// Remote holds credentials for ManifestURL fetches.
	Remote manifest.RemoteOptions

	// Fonts overrides the font resolver; nil selects host fonts with the
	// embedded fallback.
	Fonts renderer.FontResolver
}

// Result contains the results of diagram generation
type Result struct {
	EntityCount int
	OutputPath  string
}

// Generator handles the core logic of producing a diagram from a manifest.
type Generator struct{}

// Generate creates a diagram image.
//
// It performs the following steps:
//  1. Validates the output path (existence and writability of the directory)
//  2. Loads the manifest from a file, a URL, or the built-in default
//  3. Validates the manifest preconditions
//  4. Builds the ring model and renders it to the requested format
//
// Returns a Result with the entity count and output path, or an error if any
// step fails. Nothing is written on failure.
func (g *Generator) Generate(ctx context.Context, cfg Config) (*Result, error) {
	if err := validation.ValidateOutputPath(cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("invalid output path: %w", err)
	}

	m, err := g.loadManifest(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	r := ring.Build(m)

	opts := renderer.RenderOptions{
		Format:        cfg.Format,
		Title:         cfg.Title,
		IncludeLabels: cfg.IncludeLabels,
		Fonts:         cfg.Fonts,
	}

	if err := renderer.RenderDiagram(ctx, r, cfg.OutputPath, opts); err != nil {
		return nil, err
	}

	return &Result{
		EntityCount: len(m.Entities),
		OutputPath:  cfg.OutputPath,
	}, nil
}

// loadManifest resolves the manifest source in priority order: explicit
// file, then URL, then the built-in default.
func (g *Generator) loadManifest(ctx context.Context, cfg Config) (*manifest.Manifest, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if cfg.ManifestPath != "" {
		if err := validation.ValidateInputPath(cfg.ManifestPath, false); err != nil {
			return nil, fmt.Errorf("invalid manifest path: %w", err)
		}
		return manifest.ParseFile(cfg.ManifestPath)
	}

	if cfg.ManifestURL != "" {
		return manifest.Fetch(ctx, cfg.ManifestURL, cfg.Remote)
	}

	return manifest.Default(), nil
}
