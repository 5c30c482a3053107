// Package sink provides output format renderers for scattering schematics.
//
// # Overview
//
// A "sink" transforms a computed [layout.Scene] into a final output format.
// This package provides renderers for:
//
//   - SVG, PNG, PDF and EPS figures drawn with gonum.org/v1/plot
//   - JSON: scene data export for external tools
//
// # Figures
//
// [RenderPlot] draws the cell and coil outlines, the translucent detector
// marker, the dashed rays from the sample and the annotation block in the top
// left corner of the axes:
//
//	svg, err := sink.RenderPlot(scene, sink.FormatSVG,
//	    sink.WithWidth(10*vg.Inch),
//	    sink.WithTitle("Beamline B"),
//	)
//
// The figure height follows the aspect ratio of the scene's bounds so one
// millimetre spans the same distance on both axes. Elements with non-finite
// coordinates are skipped rather than reported as errors, matching the
// permissive behaviour of [layout.Build].
//
// # JSON Output
//
// [RenderJSON] exports the complete scene. Non-finite numbers, which plain
// JSON cannot represent, are written as the strings "+Inf", "-Inf" and "NaN".
//
// [layout.Scene]: github.com/matzehuels/scatterangle/pkg/layout.Scene
// [layout.Build]: github.com/matzehuels/scatterangle/pkg/layout.Build
package sink
