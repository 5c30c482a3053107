// Package layout turns an instrument and a set of axial positions into a
// [Scene]: the rectangles, rays, annotation text and axis window of the
// schematic. It does no drawing; see package sink for output formats.
//
// Only the half-plane Y ≥ 0 is described. The instrument is symmetric about
// the beam axis, so every rectangle starts at Y = 0 and its height is a
// half-width.
//
// # Usage
//
//	scene := layout.Build(geometry.Default(), 200, layout.WithDetector(800))
//	fmt.Println(scene.Annotation)
//	// [Scattering angle: 5.0° Detector coverage: 140.0 mm]
//
// Build never validates its input. Degenerate geometry produces a degenerate
// scene; [Scene.Degenerate] reports which elements have non-finite
// coordinates so callers can warn before drawing.
package layout
