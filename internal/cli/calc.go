package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scatterangle/pkg/config"
	"github.com/matzehuels/scatterangle/pkg/geometry"
	"github.com/matzehuels/scatterangle/pkg/render/sink"
)

// calcResult is the machine-readable output of calc --json.
type calcResult struct {
	CellPosition     sink.Number  `json:"cell_position"`
	DetectorPosition *sink.Number `json:"detector_position,omitempty"`
	SampleWidth      sink.Number  `json:"sample_width,omitempty"`
	AngleRadians     sink.Number  `json:"angle_radians"`
	AngleDegrees     sink.Number  `json:"angle_degrees"`
	Coverage         *sink.Number `json:"detector_coverage_mm,omitempty"`
	SampleAngle      *sink.Number `json:"sample_angle_radians,omitempty"`
	SampleCoverage   *sink.Number `json:"sample_coverage_mm,omitempty"`
}

// calculate evaluates the geometry for cfg.
func calculate(cfg config.Config) calcResult {
	in := cfg.Instrument
	cellX := cfg.Layout.CellPosition
	angle := in.ScatteringAngle(cellX)

	r := calcResult{
		CellPosition: sink.Number(cellX),
		AngleRadians: sink.Number(angle),
		AngleDegrees: sink.Number(geometry.Degrees(angle)),
	}
	if w := cfg.Layout.SampleWidth; w > 0 {
		r.SampleWidth = sink.Number(w)
		sa := sink.Number(in.FiniteSampleAngle(cellX, w))
		r.SampleAngle = &sa
	}
	if d := cfg.Detector(); d != nil {
		dp := sink.Number(*d)
		cov := sink.Number(in.Coverage(cellX, *d))
		r.DetectorPosition = &dp
		r.Coverage = &cov
		if w := cfg.Layout.SampleWidth; w > 0 {
			sc := sink.Number(in.FiniteSampleCoverage(cellX, *d, w))
			r.SampleCoverage = &sc
		}
	}
	return r
}

// calcCommand creates the calc command for printing results without drawing.
func (c *CLI) calcCommand() *cobra.Command {
	scene := newSceneFlags()
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the scattering angle and detector coverage",
		Long: `Print the scattering angle subtended by the cell and, when a detector is
configured, the width it illuminates on the detector.

Examples:
  scatterangle calc
  scatterangle calc --cell 0 --detector 500
  scatterangle calc --sample-width 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scene.resolve(cmd)
			if err != nil {
				return err
			}
			r := calculate(cfg)
			c.Logger.Debug("Calculated", "angle", float64(r.AngleRadians), "cell", cfg.Layout.CellPosition)
			if asJSON {
				return writeCalcJSON(cmd.OutOrStdout(), r)
			}
			printCalc(r)
			return nil
		},
	}

	scene.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func writeCalcJSON(w io.Writer, r calcResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func printCalc(r calcResult) {
	fmt.Println(StyleTitle.Render("Scattering geometry"))
	printKeyValue("Cell", fmt.Sprintf("%g mm", float64(r.CellPosition)))
	if r.DetectorPosition != nil {
		printKeyValue("Detector", fmt.Sprintf("%g mm", float64(*r.DetectorPosition)))
	}
	printKeyValue("Angle", StyleNumber.Render(fmt.Sprintf("%.5f rad", float64(r.AngleRadians)))+
		StyleDim.Render(fmt.Sprintf(" (%.2f°)", float64(r.AngleDegrees))))
	if r.Coverage != nil {
		printKeyValue("Coverage", StyleNumber.Render(fmt.Sprintf("%.1f mm", float64(*r.Coverage))))
	}
	if r.SampleAngle != nil {
		printKeyValue("Sample", fmt.Sprintf("%g mm", float64(r.SampleWidth)))
		printKeyValue("Sample angle", fmt.Sprintf("%.5f rad", float64(*r.SampleAngle)))
	}
	if r.SampleCoverage != nil {
		printKeyValue("Sample cov.", fmt.Sprintf("%.1f mm", float64(*r.SampleCoverage)))
	}
}
