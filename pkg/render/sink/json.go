package sink

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/matzehuels/scatterangle/pkg/geometry"
	"github.com/matzehuels/scatterangle/pkg/layout"
)

// FormatJSON is the scene export format handled by [RenderJSON].
const FormatJSON = "json"

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	instrument *geometry.Instrument
}

// WithJSONInstrument records the instrument dimensions the scene was built
// from, so the export is self-describing.
func WithJSONInstrument(in geometry.Instrument) JSONOption {
	return func(r *jsonRenderer) { r.instrument = &in }
}

// Number is a float64 that survives JSON encoding when it is not finite.
type Number float64

// MarshalJSON writes finite values as numbers and the rest as "+Inf", "-Inf"
// or "NaN".
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON accepts both forms written by MarshalJSON.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

type jsonOutput struct {
	Instrument     *jsonInstrument `json:"instrument,omitempty"`
	CellPosition   Number          `json:"cell_position"`
	Detector       *Number         `json:"detector_position,omitempty"`
	SampleWidth    Number          `json:"sample_width,omitempty"`
	AngleRadians   Number          `json:"angle_radians"`
	AngleDegrees   Number          `json:"angle_degrees"`
	Coverage       *Number         `json:"detector_coverage_mm,omitempty"`
	SampleCoverage *Number         `json:"sample_coverage_mm,omitempty"`
	Bounds         jsonBounds      `json:"bounds"`
	Rects          []jsonRect      `json:"rects"`
	Rays           []jsonSegment   `json:"rays"`
	Sample         *jsonSegment    `json:"sample,omitempty"`
	Annotation     []string        `json:"annotation"`
}

type jsonInstrument struct {
	CellLength    Number `json:"cell_length"`
	CellWidth     Number `json:"cell_width"`
	CoilLength    Number `json:"coil_length"`
	CoilWidth     Number `json:"coil_width"`
	DetectorWidth Number `json:"detector_width"`
}

type jsonBounds struct {
	XMin Number `json:"x_min"`
	XMax Number `json:"x_max"`
	YMin Number `json:"y_min"`
	YMax Number `json:"y_max"`
}

type jsonRect struct {
	Kind   string `json:"kind"`
	X      Number `json:"x"`
	Y      Number `json:"y"`
	Width  Number `json:"width"`
	Height Number `json:"height"`
	Filled bool   `json:"filled,omitempty"`
}

type jsonSegment struct {
	X1 Number `json:"x1"`
	Y1 Number `json:"y1"`
	X2 Number `json:"x2"`
	Y2 Number `json:"y2"`
}

// RenderJSON exports the scene as indented JSON.
func RenderJSON(s layout.Scene, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		CellPosition:   Number(s.CellPosition),
		Detector:       optNumber(s.Detector),
		SampleWidth:    Number(s.SampleWidth),
		AngleRadians:   Number(s.Angle),
		AngleDegrees:   Number(s.Degrees),
		Coverage:       optNumber(s.Coverage),
		SampleCoverage: optNumber(s.SampleCoverage),
		Bounds: jsonBounds{
			XMin: Number(s.Bounds.XMin), XMax: Number(s.Bounds.XMax),
			YMin: Number(s.Bounds.YMin), YMax: Number(s.Bounds.YMax),
		},
		Rects:      make([]jsonRect, len(s.Rects)),
		Rays:       make([]jsonSegment, len(s.Rays)),
		Annotation: s.Annotation,
	}
	if in := r.instrument; in != nil {
		out.Instrument = &jsonInstrument{
			CellLength:    Number(in.CellLength),
			CellWidth:     Number(in.CellWidth),
			CoilLength:    Number(in.CoilLength),
			CoilWidth:     Number(in.CoilWidth),
			DetectorWidth: Number(in.DetectorWidth),
		}
	}
	for i, rect := range s.Rects {
		out.Rects[i] = jsonRect{
			Kind: rect.Kind,
			X:    Number(rect.X), Y: Number(rect.Y),
			Width: Number(rect.W), Height: Number(rect.H),
			Filled: rect.Filled,
		}
	}
	for i, ray := range s.Rays {
		out.Rays[i] = toJSONSegment(ray)
	}
	if s.Sample != nil {
		seg := toJSONSegment(*s.Sample)
		out.Sample = &seg
	}

	return json.MarshalIndent(out, "", "  ")
}

func toJSONSegment(s layout.Segment) jsonSegment {
	return jsonSegment{X1: Number(s.X1), Y1: Number(s.Y1), X2: Number(s.X2), Y2: Number(s.Y2)}
}

func optNumber(f *float64) *Number {
	if f == nil {
		return nil
	}
	n := Number(*f)
	return &n
}
