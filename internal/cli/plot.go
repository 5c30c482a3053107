package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/scatterangle/pkg/config"
	"github.com/matzehuels/scatterangle/pkg/errors"
	"github.com/matzehuels/scatterangle/pkg/geometry"
	"github.com/matzehuels/scatterangle/pkg/layout"
	"github.com/matzehuels/scatterangle/pkg/render/sink"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	scene      sceneFlags
	output     string  // output file (single format) or base path (multiple)
	formatsStr string  // comma-separated output formats
	width      float64 // figure width in inches
	title      string  // optional figure title
	noLegend   bool    // hide the legend
	open       bool    // open written files in the system viewer
}

func newPlotOpts() *plotOpts {
	return &plotOpts{
		scene: newSceneFlags(),
		width: float64(sink.DefaultWidth / vg.Inch),
	}
}

// register adds the scene and output flags to cmd.
func (o *plotOpts) register(cmd *cobra.Command) {
	o.scene.register(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&o.formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, eps, json (comma-separated)")
	cmd.Flags().Float64Var(&o.width, "width", o.width, "figure width in inches")
	cmd.Flags().StringVar(&o.title, "title", "", "figure title")
	cmd.Flags().BoolVar(&o.noLegend, "no-legend", false, "hide the legend")
	cmd.Flags().BoolVar(&o.open, "open", false, "open the written files with the system viewer")
}

// plotCommand creates the plot command.
func (c *CLI) plotCommand() *cobra.Command {
	opts := newPlotOpts()

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the cell, coil, detector and rays",
		Long: `Draw a side view of the optical layout with the scattering angle and the
detector coverage annotated in the corner.

Geometry is taken from defaults, then --config, then .env and SCATTER_*
variables, then explicitly set flags.

Examples:
  scatterangle plot --cell 150 --detector 600
  scatterangle plot --no-detector -f png -o cell.png
  scatterangle plot -f svg,pdf,json -o out/beamline`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlotCommand(cmd, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

// runPlotCommand validates flags, resolves the configuration and renders.
func (c *CLI) runPlotCommand(cmd *cobra.Command, opts *plotOpts) error {
	formats := parseFormats(opts.formatsStr)
	if err := validateFormats(formats); err != nil {
		return err
	}
	if opts.output == stdoutPath && len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout output supports a single format, got %d", len(formats))
	}
	cfg, err := opts.scene.resolve(cmd)
	if err != nil {
		return err
	}
	ctx := withLogger(cmd.Context(), c.Logger)
	return c.runPlot(ctx, cfg, formats, opts)
}

// buildScene lays out cfg.
func buildScene(cfg config.Config) layout.Scene {
	var lopts []layout.Option
	if d := cfg.Detector(); d != nil {
		lopts = append(lopts, layout.WithDetector(*d))
	}
	if cfg.Layout.SampleWidth > 0 {
		lopts = append(lopts, layout.WithSample(cfg.Layout.SampleWidth))
	}
	return layout.Build(cfg.Instrument, cfg.Layout.CellPosition, lopts...)
}

// runPlot builds the scene and writes one file per format.
func (c *CLI) runPlot(ctx context.Context, cfg config.Config, formats []string, opts *plotOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debug("Resolved configuration",
		"cell", cfg.Layout.CellPosition,
		"detector", cfg.Detector() != nil,
		"sample_width", cfg.Layout.SampleWidth)

	scene := buildScene(cfg)
	if bad := scene.Degenerate(); len(bad) > 0 {
		logger.Warnf("Degenerate geometry, skipping non-finite elements: %s", strings.Join(bad, ", "))
	}

	paths := outputPaths(opts.output, formats)
	for i, format := range formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		prog := newProgress(logger)
		sp := startSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
		data, err := renderScene(scene, cfg.Instrument, format, opts)
		sp.Stop()
		if err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if err := writeOutput(paths[i], data); err != nil {
			return err
		}
		if paths[i] == stdoutPath {
			continue
		}
		prog.done("Generated " + paths[i])
		if opts.open {
			if err := openFile(paths[i]); err != nil {
				logger.Warnf("Could not open %s: %v", paths[i], err)
			}
		}
	}

	if opts.output != stdoutPath {
		printSummary(scene)
		for _, p := range paths {
			printFile(p)
		}
	}
	return nil
}

// renderScene dispatches to the sink for format.
func renderScene(scene layout.Scene, inst geometry.Instrument, format string, opts *plotOpts) ([]byte, error) {
	if format == sink.FormatJSON {
		data, err := sink.RenderJSON(scene, sink.WithJSONInstrument(inst))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render json")
		}
		return data, nil
	}
	if !sink.IsPlotFormat(format) {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}

	popts := []sink.PlotOption{sink.WithWidth(vg.Length(opts.width) * vg.Inch)}
	if opts.title != "" {
		popts = append(popts, sink.WithTitle(opts.title))
	}
	if opts.noLegend {
		popts = append(popts, sink.WithoutLegend())
	}
	data, err := sink.RenderPlot(scene, format, popts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout for "-".
func writeOutput(path string, data []byte) error {
	if path == stdoutPath {
		if _, err := os.Stdout.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write stdout")
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// printSummary prints the computed results.
func printSummary(scene layout.Scene) {
	printSuccess("Scattering angle %s", StyleNumber.Render(fmt.Sprintf("%.4f rad (%.2f°)", scene.Angle, scene.Degrees)))
	if scene.Coverage != nil {
		printKeyValue("Coverage", fmt.Sprintf("%.1f mm", *scene.Coverage))
	}
	if scene.SampleCoverage != nil {
		printKeyValue("Sample", fmt.Sprintf("%.1f mm", *scene.SampleCoverage))
	}
}
