package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if version == "" {
		t.Error("version should not be empty")
	}
}

func TestRootCommand_RendersDefaultManifest(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "orbit.png")

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--output", outputPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if !strings.Contains(out.String(), outputPath) {
		t.Errorf("confirmation output %q should mention %q", out.String(), outputPath)
	}
}

func TestRootCommand_FailsOnBadOutput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", filepath.Join(t.TempDir(), "missing", "orbit.png")})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() should fail for a missing output directory")
	}
}

func TestRootCommand_RejectsConfigAndURL(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", "a.hcl", "--url", "http://example.com/m.hcl"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() should reject --config together with --url")
	}
}
