package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avdeyev/orbitgen/internal/generator"
	"github.com/avdeyev/orbitgen/internal/manifest"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		manifestPath string
		manifestURL  string
		outputPath   string
		format       string
		title        string
		noLabels     bool
		verbose      bool
		remoteUser   string
		remotePass   string
	)

	cmd := &cobra.Command{
		Use:     "orbitgen",
		Short:   "Render an orbit diagram from a manifest",
		Long:    "orbitgen renders a ring of labeled glyphs around a central hub.\nWith no flags it renders the built-in default manifest to orbit.png.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			cfg := generator.Config{
				ManifestPath:  manifestPath,
				ManifestURL:   manifestURL,
				OutputPath:    outputPath,
				Format:        format,
				Title:         title,
				IncludeLabels: !noLabels,
				Remote: manifest.RemoteOptions{
					Username: remoteUser,
					Password: remotePass,
				},
			}

			log.Debug().
				Str("manifest", manifestPath).
				Str("url", manifestURL).
				Str("format", format).
				Msg("generating diagram")

			gen := &generator.Generator{}
			result, err := gen.Generate(cmd.Context(), cfg)
			if err != nil {
				log.Error().Err(err).Msg("diagram generation failed")
				return err
			}

			log.Info().
				Int("entities", result.EntityCount).
				Str("path", result.OutputPath).
				Msg("diagram saved")
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", result.OutputPath)
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.Flags().StringVarP(&manifestPath, "config", "c", "", "path to a manifest file")
	cmd.Flags().StringVar(&manifestURL, "url", "", "URL of a remote manifest")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "orbit.png", "output image path")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "output format (png or svg)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "optional diagram title")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "skip entity labels")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&remoteUser, "remote-user", "", "basic auth user for --url")
	cmd.Flags().StringVar(&remotePass, "remote-password", "", "basic auth password for --url")
	cmd.MarkFlagsMutuallyExclusive("config", "url")

	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
