package sink

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/matzehuels/scatterangle/pkg/geometry"
	"github.com/matzehuels/scatterangle/pkg/layout"
)

func TestRenderJSON(t *testing.T) {
	inst := geometry.Default()
	scene := layout.Build(inst, 200, layout.WithDetector(800))

	data, err := RenderJSON(scene, WithJSONInstrument(inst))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Instrument == nil || out.Instrument.CellLength != 80 {
		t.Errorf("Instrument = %+v, want cell_length 80", out.Instrument)
	}
	if out.Coverage == nil || math.Abs(float64(*out.Coverage)-140) > 1e-9 {
		t.Errorf("Coverage = %v, want 140", out.Coverage)
	}
	if len(out.Rects) != 3 {
		t.Errorf("len(Rects) = %d, want 3", len(out.Rects))
	}
	if len(out.Rays) != 2 {
		t.Errorf("len(Rays) = %d, want 2", len(out.Rays))
	}
	if out.Bounds.XMax != 850 {
		t.Errorf("Bounds.XMax = %v, want 850", out.Bounds.XMax)
	}
}

func TestRenderJSONWithoutDetector(t *testing.T) {
	data, err := RenderJSON(layout.Build(geometry.Default(), 200))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"detector_position", "detector_coverage_mm", "instrument", "sample"} {
		if _, ok := raw[key]; ok {
			t.Errorf("key %q present, want omitted", key)
		}
	}
}

func TestRenderJSONNonFinite(t *testing.T) {
	inst := geometry.Default()
	scene := layout.Build(inst, -inst.CellLength/2, layout.WithDetector(800))

	data, err := RenderJSON(scene)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := raw["angle_radians"]; got != "+Inf" {
		t.Errorf("angle_radians = %v, want \"+Inf\"", got)
	}
	if got := raw["detector_coverage_mm"]; got != "NaN" {
		t.Errorf("detector_coverage_mm = %v, want \"NaN\"", got)
	}
}

func TestNumberRoundTrip(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, `1.5`},
		{0, `0`},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
		{math.NaN(), `"NaN"`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(Number(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", tt.in, err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.in, data, tt.want)
		}

		var back Number
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if math.IsNaN(tt.in) {
			if !math.IsNaN(float64(back)) {
				t.Errorf("Unmarshal(%s) = %v, want NaN", data, back)
			}
			continue
		}
		if float64(back) != tt.in {
			t.Errorf("Unmarshal(%s) = %v, want %v", data, back, tt.in)
		}
	}
}
