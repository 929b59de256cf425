// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"

	"github.com/avdeyev/orbitgen/internal/generator"
	"github.com/avdeyev/orbitgen/internal/manifest"
	"github.com/avdeyev/orbitgen/internal/renderer"
	"github.com/avdeyev/orbitgen/internal/ring"
)

// ManifestLoader defines the interface for loading diagram manifests
type ManifestLoader interface {
	// LoadFile parses a manifest from a local HCL file
	LoadFile(ctx context.Context, path string) (*manifest.Manifest, error)

	// LoadRemote fetches and parses a manifest from an HTTP(S) endpoint
	LoadRemote(ctx context.Context, url string, opts manifest.RemoteOptions) (*manifest.Manifest, error)
}

// RingBuilder defines the interface for building the render model
type RingBuilder interface {
	// Build creates the ring model from a validated manifest
	Build(m *manifest.Manifest) *ring.Ring
}

// DiagramRenderer defines the interface for rendering diagrams
type DiagramRenderer interface {
	// RenderDiagram generates a diagram from a ring and saves it to the output path
	RenderDiagram(ctx context.Context, r *ring.Ring, outputPath string, opts renderer.RenderOptions) error
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// ValidateOutputPath validates an output path for security and accessibility
	ValidateOutputPath(path string) error

	// ValidateInputPath validates an input path (a manifest file)
	ValidateInputPath(path string, mustBeDir bool) error
}

// Generator defines the interface for generating diagrams
type Generator interface {
	// Generate creates a diagram image from a manifest source
	Generate(ctx context.Context, cfg generator.Config) (*generator.Result, error)
}
