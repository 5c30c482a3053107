package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/matzehuels/scatterangle/pkg/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SCATTER"

// EnvConfig holds values read from the environment. Nil fields were not set.
// Names are derived from the field names, so only the prefixed variables
// are read.
type EnvConfig struct {
	// Env: SCATTER_CELL_LENGTH
	CellLength *float64 `split_words:"true"`
	// Env: SCATTER_CELL_WIDTH
	CellWidth *float64 `split_words:"true"`
	// Env: SCATTER_COIL_LENGTH
	CoilLength *float64 `split_words:"true"`
	// Env: SCATTER_COIL_WIDTH
	CoilWidth *float64 `split_words:"true"`
	// Env: SCATTER_DETECTOR_WIDTH
	DetectorWidth *float64 `split_words:"true"`

	// Env: SCATTER_CELL_POSITION
	CellPosition *float64 `split_words:"true"`
	// Env: SCATTER_DETECTOR_POSITION
	DetectorPosition *float64 `split_words:"true"`
	// Env: SCATTER_NO_DETECTOR
	NoDetector *bool `split_words:"true"`
	// Env: SCATTER_SAMPLE_WIDTH
	SampleWidth *float64 `split_words:"true"`
}

// LoadFromEnv reads SCATTER_* variables.
func LoadFromEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "environment")
	}
	return env, nil
}

// Apply overlays the set fields of e onto cfg.
func (e EnvConfig) Apply(cfg Config) Config {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Instrument.CellLength, e.CellLength)
	set(&cfg.Instrument.CellWidth, e.CellWidth)
	set(&cfg.Instrument.CoilLength, e.CoilLength)
	set(&cfg.Instrument.CoilWidth, e.CoilWidth)
	set(&cfg.Instrument.DetectorWidth, e.DetectorWidth)
	set(&cfg.Layout.CellPosition, e.CellPosition)
	set(&cfg.Layout.DetectorPosition, e.DetectorPosition)
	set(&cfg.Layout.SampleWidth, e.SampleWidth)
	if e.NoDetector != nil {
		cfg.Layout.NoDetector = *e.NoDetector
	}
	return cfg
}

// LoadDotEnv loads variables from a .env file without overriding variables
// that are already set. If path is empty, ".env" in the working directory is
// used. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return nil
}

// Load resolves defaults, the optional TOML file at path, the optional .env
// file at envFile and SCATTER_* variables, in that order.
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	if err := LoadDotEnv(envFile); err != nil {
		return cfg, err
	}
	env, err := LoadFromEnv()
	if err != nil {
		return cfg, err
	}
	return env.Apply(cfg), nil
}
