package geometry

import "math"

// FiniteSampleAngle is ScatteringAngle for a sample of the given width: the
// ray runs from the sample's upper edge to the cell's upper downstream corner.
// A zero sampleWidth gives the same result as ScatteringAngle.
func (in Instrument) FiniteSampleAngle(cellX, sampleWidth float64) float64 {
	ratio := (in.CellWidth/2 - sampleWidth/2) / in.CellExit(cellX)
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return ratio
	}
	return math.Atan(ratio)
}

// FiniteSampleCoverage returns the width illuminated on a detector at
// detX by a sample of the given width. Each edge ray leaves one sample edge
// and passes the cell corner on the same side; the result is the distance
// between the two rays at the detector plane.
func (in Instrument) FiniteSampleCoverage(cellX, detX, sampleWidth float64) float64 {
	top := edgeAtDetector(sampleWidth/2, in.CellExit(cellX), in.CellWidth/2, detX)
	bottom := edgeAtDetector(-sampleWidth/2, in.CellExit(cellX), -in.CellWidth/2, detX)
	return math.Abs(top - bottom)
}

// edgeAtDetector extends the ray from (0, sampleY) through (cornerX, cornerY)
// to the plane x = detX and returns its height there.
func edgeAtDetector(sampleY, cornerX, cornerY, detX float64) float64 {
	theta := math.Atan2(cornerY-sampleY, cornerX)
	return sampleY + detX*math.Tan(theta)
}
