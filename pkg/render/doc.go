// Package render groups the output stages for scattering schematics.
//
// # Overview
//
// Rendering is split in two steps. [layout.Build] turns an instrument and
// positions into a [layout.Scene]: plain rectangles, line segments, bounds
// and annotation text in millimetres. The [sink] subpackage then writes a
// scene out:
//
//   - [sink.RenderPlot]: SVG, PNG, PDF and EPS figures via gonum.org/v1/plot
//   - [sink.RenderJSON]: the scene as JSON for external tools
//
//	scene := layout.Build(geometry.Default(), 200, layout.WithDetector(800))
//	png, err := sink.RenderPlot(scene, sink.FormatPNG, sink.WithWidth(8*vg.Inch))
package render
