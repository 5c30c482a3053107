package geometry

import "math"

// Default instrument dimensions in millimetres.
const (
	DefaultCellLength    = 80.0
	DefaultCellWidth     = 42.0
	DefaultCoilLength    = 300.0
	DefaultCoilWidth     = 200.0
	DefaultDetectorWidth = 256.0
)

// Default sample-frame positions used when nothing else is configured.
const (
	DefaultCellPosition     = 200.0
	DefaultDetectorPosition = 800.0
)

// Instrument holds the fixed dimensions of the optical layout. It is a plain
// value: copies are independent and safe to share between goroutines.
type Instrument struct {
	CellLength    float64 `toml:"cell_length" json:"cell_length"`       // along the beam
	CellWidth     float64 `toml:"cell_width" json:"cell_width"`         // across the beam
	CoilLength    float64 `toml:"coil_length" json:"coil_length"`       // along the beam
	CoilWidth     float64 `toml:"coil_width" json:"coil_width"`         // across the beam
	DetectorWidth float64 `toml:"detector_width" json:"detector_width"` // active width across the beam
}

// Default returns the reference instrument: an 80×42 mm cell inside a
// 300×200 mm coil, imaged onto a 256 mm detector.
func Default() Instrument {
	return Instrument{
		CellLength:    DefaultCellLength,
		CellWidth:     DefaultCellWidth,
		CoilLength:    DefaultCoilLength,
		CoilWidth:     DefaultCoilWidth,
		DetectorWidth: DefaultDetectorWidth,
	}
}

// CellExit returns the X coordinate of the cell's downstream face for a cell
// centred at cellX.
func (in Instrument) CellExit(cellX float64) float64 {
	return cellX + in.CellLength/2
}

// ScatteringAngle returns the half-angle, in radians, between the beam axis
// and the line from the sample to the downstream edge of a cell centred at
// cellX. For cellX > -CellLength/2 the result lies in (0, π/2) and grows as
// the cell moves towards the sample.
//
// When the half-width to distance ratio is not finite the ratio itself is
// returned (+Inf, -Inf or NaN) instead of the clamped arctangent.
func (in Instrument) ScatteringAngle(cellX float64) float64 {
	ratio := (in.CellWidth / 2) / in.CellExit(cellX)
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return ratio
	}
	return math.Atan(ratio)
}

// Coverage returns the full width, in millimetres, illuminated on a
// detector plane at detX by rays leaving the sample at the scattering angle
// for a cell at cellX. The result is negative when detX is negative.
func (in Instrument) Coverage(cellX, detX float64) float64 {
	return 2 * detX * math.Tan(in.ScatteringAngle(cellX))
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
