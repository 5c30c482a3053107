package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scatterangle/pkg/errors"
	"github.com/matzehuels/scatterangle/pkg/geometry"
)

// Config is the fully resolved input to a calculation.
type Config struct {
	Instrument geometry.Instrument `toml:"instrument"`
	Layout     Layout              `toml:"layout"`
}

// Layout holds positions along the beam axis, measured from the sample.
type Layout struct {
	CellPosition     float64 `toml:"cell_position"`
	DetectorPosition float64 `toml:"detector_position"`
	NoDetector       bool    `toml:"no_detector"`
	SampleWidth      float64 `toml:"sample_width"`
}

// Default returns the reference configuration: the default instrument with
// the cell at 200 mm and the detector at 800 mm.
func Default() Config {
	return Config{
		Instrument: geometry.Default(),
		Layout: Layout{
			CellPosition:     geometry.DefaultCellPosition,
			DetectorPosition: geometry.DefaultDetectorPosition,
		},
	}
}

// Detector returns the detector position, or nil when the layout has none.
func (c Config) Detector() *float64 {
	if c.Layout.NoDetector {
		return nil
	}
	d := c.Layout.DetectorPosition
	return &d
}

// LoadFile reads a TOML file over base and returns the merged result.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return base, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data, base)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML data over base. Keys absent from data keep the value
// from base; unknown keys are an error.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Marshal returns cfg encoded as TOML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
