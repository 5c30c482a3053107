// Package cli implements the scatterangle command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scatterangle/pkg/buildinfo"
	"github.com/matzehuels/scatterangle/pkg/errors"
	"github.com/matzehuels/scatterangle/pkg/render/sink"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "scatterangle"

	// defaultBase is the output path, without extension, used when -o is not given.
	defaultBase = "scattering"

	// stdoutPath writes a single output to standard output.
	stdoutPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Invoked without a subcommand it behaves like plot.
func (c *CLI) RootCommand() *cobra.Command {
	opts := newPlotOpts()

	root := &cobra.Command{
		Use:   appName,
		Short: "Scatterangle computes scattering angles and draws the optical layout",
		Long: `Scatterangle computes the half-angle subtended by a glass cell as seen from
the sample, the width that cone illuminates on a downstream detector, and
draws a side view of cell, coil, detector and rays.

Without arguments it writes scattering.svg for a cell at 200 mm and a
detector at 800 mm.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlotCommand(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	// Register all subcommands
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.calcCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Formats & Paths
// =============================================================================

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	sink.FormatSVG:  true,
	sink.FormatPNG:  true,
	sink.FormatPDF:  true,
	sink.FormatEPS:  true,
	sink.FormatJSON: true,
}

// parseFormats parses a comma-separated format string into a slice.
// Surrounding whitespace and empty entries are dropped.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []string{sink.FormatSVG}
	}
	return formats
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be svg, png, pdf, eps or json)", f)
		}
	}
	return nil
}

// basePath derives the base output path from the -o flag.
// If output is empty, the default base is used. Known format extensions are
// stripped so that "plot.svg" with -f svg,png yields plot.svg and plot.png.
func basePath(output string) string {
	if output == "" {
		return defaultBase
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(strings.ToLower(ext), ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths returns one output path per format. A single format with an
// explicit output uses that path verbatim.
func outputPaths(output string, formats []string) []string {
	if len(formats) == 1 && output != "" {
		return []string{output}
	}
	base := basePath(output)
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + "." + f
	}
	return paths
}
