// Package pkg provides the core libraries for Scatterangle.
//
// # Overview
//
// Scatterangle computes the half-angle of the cone a glass cell subtends as
// seen from a point sample, projects that cone onto a downstream detector,
// and draws a side view of the optical layout. The pkg directory is organized
// into three areas:
//
//  1. [geometry] - Closed-form calculations (scattering angle, detector coverage)
//  2. [layout] and [render/sink] - Scene construction and output formats
//  3. [config], [errors], [buildinfo] - Configuration, coded errors, version
//
// # Architecture
//
// The typical data flow through Scatterangle:
//
//	defaults → TOML → .env → SCATTER_* → flags
//	         ↓
//	    [config] package (resolved instrument and positions)
//	         ↓
//	    [geometry] package (angle and coverage)
//	         ↓
//	    [layout] package (rectangles, rays, bounds, annotation)
//	         ↓
//	    [render/sink] package (SVG/PNG/PDF/EPS/JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/scatterangle/pkg/geometry"
//	    "github.com/matzehuels/scatterangle/pkg/layout"
//	    "github.com/matzehuels/scatterangle/pkg/render/sink"
//	)
//
//	inst := geometry.Default()
//	angle := inst.ScatteringAngle(200) // ≈ 0.0873 rad
//	width := inst.Coverage(200, 800)   // ≈ 140 mm
//
//	scene := layout.Build(inst, 200, layout.WithDetector(800))
//	svg, err := sink.RenderPlot(scene, sink.FormatSVG)
//
// # Numeric Edge Cases
//
// None of the calculation or layout functions return errors. Degenerate input
// such as a cell whose exit face sits on the sample produces IEEE infinities
// and NaNs, which flow through to the scene. [layout.Scene.Degenerate] lists
// the affected elements and the sinks skip them.
package pkg
