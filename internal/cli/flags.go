package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scatterangle/pkg/config"
	"github.com/matzehuels/scatterangle/pkg/geometry"
)

// sceneFlags holds the flags that select the geometry and positions.
// Only flags the user set explicitly override the layered configuration.
type sceneFlags struct {
	configPath  string
	envFile     string
	cell        float64
	detector    float64
	noDetector  bool
	sampleWidth float64

	cellLength    float64
	cellWidth     float64
	coilLength    float64
	coilWidth     float64
	detectorWidth float64
}

func newSceneFlags() sceneFlags {
	return sceneFlags{
		cell:          geometry.DefaultCellPosition,
		detector:      geometry.DefaultDetectorPosition,
		cellLength:    geometry.DefaultCellLength,
		cellWidth:     geometry.DefaultCellWidth,
		coilLength:    geometry.DefaultCoilLength,
		coilWidth:     geometry.DefaultCoilWidth,
		detectorWidth: geometry.DefaultDetectorWidth,
	}
}

// register adds the geometry flags to cmd.
func (f *sceneFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "TOML file with [instrument] and [layout] tables")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file with SCATTER_* variables (default .env)")

	fs.Float64Var(&f.cell, "cell", f.cell, "cell centre position from the sample (mm)")
	fs.Float64Var(&f.detector, "detector", f.detector, "detector position from the sample (mm)")
	fs.BoolVar(&f.noDetector, "no-detector", false, "omit the detector")
	fs.Float64Var(&f.sampleWidth, "sample-width", 0, "finite sample width (mm), 0 for a point sample")

	fs.Float64Var(&f.cellLength, "cell-length", f.cellLength, "cell length along the beam (mm)")
	fs.Float64Var(&f.cellWidth, "cell-width", f.cellWidth, "cell width across the beam (mm)")
	fs.Float64Var(&f.coilLength, "coil-length", f.coilLength, "coil length along the beam (mm)")
	fs.Float64Var(&f.coilWidth, "coil-width", f.coilWidth, "coil width across the beam (mm)")
	fs.Float64Var(&f.detectorWidth, "detector-width", f.detectorWidth, "detector width across the beam (mm)")
}

// resolve loads the layered configuration and applies explicitly set flags.
func (f *sceneFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath, f.envFile)
	if err != nil {
		return cfg, err
	}
	return f.apply(cmd, cfg), nil
}

func (f *sceneFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	fs := cmd.Flags()
	override := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	override("cell", &cfg.Layout.CellPosition, f.cell)
	override("detector", &cfg.Layout.DetectorPosition, f.detector)
	override("sample-width", &cfg.Layout.SampleWidth, f.sampleWidth)
	override("cell-length", &cfg.Instrument.CellLength, f.cellLength)
	override("cell-width", &cfg.Instrument.CellWidth, f.cellWidth)
	override("coil-length", &cfg.Instrument.CoilLength, f.coilLength)
	override("coil-width", &cfg.Instrument.CoilWidth, f.coilWidth)
	override("detector-width", &cfg.Instrument.DetectorWidth, f.detectorWidth)

	// An explicit --detector brings the detector back unless --no-detector is also given.
	if fs.Changed("detector") {
		cfg.Layout.NoDetector = false
	}
	if fs.Changed("no-detector") {
		cfg.Layout.NoDetector = f.noDetector
	}
	return cfg
}
