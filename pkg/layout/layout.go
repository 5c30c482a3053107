package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/scatterangle/pkg/geometry"
)

const (
	// Margin is added around the drawn extent on every bounded side (mm).
	Margin = 50.0

	// DetectorMarkerWidth is the drawn thickness of the detector. It is a
	// marker, not the physical thickness.
	DetectorMarkerWidth = 1.0
)

// Element kinds, also used as legend labels.
const (
	KindCell     = "Glass cell"
	KindCoil     = "Coil"
	KindDetector = "Detector"
	KindSample   = "Sample"
)

// Axis labels.
const (
	LabelX = "X (mm)"
	LabelY = "Y (mm)"
)

// RGBA is an 8-bit colour with straight alpha.
type RGBA struct {
	R, G, B, A uint8
}

var (
	colorBlue     = RGBA{0, 0, 255, 255}
	colorGreen    = RGBA{0, 128, 0, 255}
	colorDetector = RGBA{255, 0, 0, 77}
	colorRay      = RGBA{0, 0, 0, 77}
	colorSample   = RGBA{128, 0, 128, 255}
)

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	Kind   string
	X, Y   float64 // lower-left corner
	W, H   float64
	Filled bool
	Color  RGBA
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Corners returns the four corners counter-clockwise from the lower left.
func (r Rect) Corners() [4][2]float64 {
	return [4][2]float64{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Top()},
		{r.X, r.Top()},
	}
}

// Finite reports whether every coordinate of r is finite.
func (r Rect) Finite() bool {
	return finite(r.X, r.Y, r.W, r.H)
}

// Segment is a straight line between two points.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Dashed         bool
	Color          RGBA
}

// Finite reports whether both endpoints are finite.
func (s Segment) Finite() bool {
	return finite(s.X1, s.Y1, s.X2, s.Y2)
}

// Bounds is the visible data window.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

// Finite reports whether all four limits are finite.
func (b Bounds) Finite() bool {
	return finite(b.XMin, b.XMax, b.YMin, b.YMax)
}

// Scene is everything needed to draw the schematic.
type Scene struct {
	CellPosition float64
	// Detector is nil when no detector position was given.
	Detector *float64
	// SampleWidth is zero for a point sample.
	SampleWidth float64

	Angle   float64 // radians
	Degrees float64
	// Coverage is the illuminated detector width; nil without a detector.
	Coverage *float64
	// SampleCoverage is the finite-sample detector width; nil unless both a
	// detector and a positive sample width were given.
	SampleCoverage *float64

	Rects      []Rect // drawing order: cell, coil, detector
	Rays       []Segment
	Sample     *Segment
	Annotation []string
	Bounds     Bounds
}

// HasDetector reports whether the scene includes a detector.
func (s Scene) HasDetector() bool { return s.Detector != nil }

// Rect returns the first rectangle of the given kind.
func (s Scene) Rect(kind string) (Rect, bool) {
	for _, r := range s.Rects {
		if r.Kind == kind {
			return r, true
		}
	}
	return Rect{}, false
}

// Degenerate lists the elements of s whose coordinates are not finite.
func (s Scene) Degenerate() []string {
	var out []string
	for _, r := range s.Rects {
		if !r.Finite() {
			out = append(out, r.Kind)
		}
	}
	for i, r := range s.Rays {
		if !r.Finite() {
			out = append(out, fmt.Sprintf("ray %d", i+1))
		}
	}
	if s.Sample != nil && !s.Sample.Finite() {
		out = append(out, KindSample)
	}
	if !s.Bounds.Finite() {
		out = append(out, "bounds")
	}
	return out
}

// Option configures [Build].
type Option func(*options)

type options struct {
	detector    *float64
	sampleWidth float64
}

// WithDetector places the detector plane at detX.
func WithDetector(detX float64) Option {
	return func(o *options) { o.detector = &detX }
}

// WithSample draws a sample of the given full width at the origin. Widths
// that are not positive leave the point-sample layout unchanged.
func WithSample(width float64) Option {
	return func(o *options) { o.sampleWidth = width }
}

// Build lays out the schematic for a cell (and coil) centred at cellX.
func Build(inst geometry.Instrument, cellX float64, opts ...Option) Scene {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	angle := inst.ScatteringAngle(cellX)
	s := Scene{
		CellPosition: cellX,
		Detector:     o.detector,
		Angle:        angle,
		Degrees:      geometry.Degrees(angle),
	}

	s.Rects = append(s.Rects,
		Rect{Kind: KindCell, X: cellX - inst.CellLength/2, W: inst.CellLength, H: inst.CellWidth / 2, Color: colorBlue},
		Rect{Kind: KindCoil, X: cellX - inst.CoilLength/2, W: inst.CoilLength, H: inst.CoilWidth / 2, Color: colorGreen},
	)

	if o.detector != nil {
		detX := *o.detector
		s.Rects = append(s.Rects, Rect{
			Kind:   KindDetector,
			X:      detX,
			W:      DetectorMarkerWidth,
			H:      inst.DetectorWidth / 2,
			Filled: true,
			Color:  colorDetector,
		})
		coverage := inst.Coverage(cellX, detX)
		s.Coverage = &coverage
	}

	if o.sampleWidth > 0 {
		s.SampleWidth = o.sampleWidth
		s.Sample = &Segment{X2: 0, Y2: o.sampleWidth / 2, Color: colorSample}
		if o.detector != nil {
			sc := inst.FiniteSampleCoverage(cellX, *o.detector, o.sampleWidth)
			s.SampleCoverage = &sc
		}
	}

	s.Rays = buildRays(inst, cellX, o.detector)
	s.Annotation = annotate(s)
	s.Bounds = bounds(inst, cellX, o.detector)
	return s
}

// buildRays traces the origin to the two upper-right reference corners of
// the cell, projecting each onto the detector plane when there is one. Rays
// whose end point falls below the beam axis are dropped.
func buildRays(inst geometry.Instrument, cellX float64, detector *float64) []Segment {
	exit := inst.CellExit(cellX)
	corners := [2][2]float64{
		{exit, 0},
		{exit, inst.CellWidth / 2},
	}

	var rays []Segment
	for _, c := range corners {
		x, y := c[0], c[1]
		if detector != nil {
			y = y / x * *detector
			x = *detector
		}
		if !(y >= 0) {
			continue
		}
		rays = append(rays, Segment{X2: x, Y2: y, Dashed: true, Color: colorRay})
	}
	return rays
}

func annotate(s Scene) []string {
	lines := []string{fmt.Sprintf("Scattering angle: %.1f°", s.Degrees)}
	if s.Coverage != nil {
		lines = append(lines, fmt.Sprintf("Detector coverage: %.1f mm", *s.Coverage))
	}
	if s.SampleCoverage != nil {
		lines = append(lines, fmt.Sprintf("Finite-sample coverage: %.1f mm", *s.SampleCoverage))
	}
	return lines
}

func bounds(inst geometry.Instrument, cellX float64, detector *float64) Bounds {
	farthest := 0.0
	if detector != nil {
		farthest = *detector
	}
	return Bounds{
		XMin: -Margin,
		XMax: max(inst.CellExit(cellX), farthest) + Margin,
		YMin: 0,
		YMax: inst.DetectorWidth/2 + Margin,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
