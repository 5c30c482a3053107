package cli

import (
	"math"
	"testing"

	"github.com/matzehuels/scatterangle/pkg/config"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*config.Config)
		wantAngle    float64
		wantCoverage float64 // NaN means no detector
		wantSample   bool
	}{
		{
			name:         "defaults",
			mutate:       func(*config.Config) {},
			wantAngle:    math.Atan(21.0 / 240),
			wantCoverage: 2 * 800 * 21.0 / 240,
		},
		{
			name:         "cell at sample",
			mutate:       func(c *config.Config) { c.Layout.CellPosition = 0 },
			wantAngle:    math.Atan(21.0 / 40),
			wantCoverage: 2 * 800 * 21.0 / 40,
		},
		{
			name:         "no detector",
			mutate:       func(c *config.Config) { c.Layout.NoDetector = true },
			wantAngle:    math.Atan(21.0 / 240),
			wantCoverage: math.NaN(),
		},
		{
			name:         "finite sample",
			mutate:       func(c *config.Config) { c.Layout.SampleWidth = 10 },
			wantAngle:    math.Atan(21.0 / 240),
			wantCoverage: 2 * 800 * 21.0 / 240,
			wantSample:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			r := calculate(cfg)

			if got := float64(r.AngleRadians); math.Abs(got-tt.wantAngle) > 1e-12 {
				t.Errorf("AngleRadians = %v, want %v", got, tt.wantAngle)
			}
			if math.IsNaN(tt.wantCoverage) {
				if r.Coverage != nil || r.DetectorPosition != nil {
					t.Errorf("Coverage = %v, want nil", r.Coverage)
				}
			} else if r.Coverage == nil || math.Abs(float64(*r.Coverage)-tt.wantCoverage) > 1e-9 {
				t.Errorf("Coverage = %v, want %v", r.Coverage, tt.wantCoverage)
			}
			if (r.SampleCoverage != nil) != tt.wantSample || (r.SampleAngle != nil) != tt.wantSample {
				t.Errorf("sample results present = %v, want %v", r.SampleCoverage != nil, tt.wantSample)
			}
		})
	}
}
