// Package config resolves the instrument geometry and sample-frame positions
// used by the scatterangle CLI.
//
// Values are layered from lowest to highest precedence:
//
//  1. built-in defaults ([Default])
//  2. a TOML file ([LoadFile])
//  3. an optional .env file ([LoadDotEnv])
//  4. SCATTER_* environment variables ([LoadFromEnv])
//
// Command-line flags are applied on top by the CLI itself.
//
// # File Format
//
//	[instrument]
//	cell_length = 80.0
//	cell_width = 42.0
//	coil_length = 300.0
//	coil_width = 200.0
//	detector_width = 256.0
//
//	[layout]
//	cell_position = 200.0
//	detector_position = 800.0
//	no_detector = false
//	sample_width = 0.0
//
// Keys left out of the file keep their lower-layer value. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
//
// # Environment
//
// Every field has a SCATTER_ variable, for example SCATTER_CELL_LENGTH or
// SCATTER_DETECTOR_POSITION. Unset variables leave the value untouched.
package config
