package cli

import (
	"testing"

	"github.com/matzehuels/scatterangle/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"whitespace and case", " SVG , eps ", []string{"svg", "eps"}},
		{"empty entries", "svg,,json,", []string{"svg", "json"}},
		{"only commas", ",,", []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid eps", []string{"eps"}, false},
		{"valid all", []string{"svg", "png", "pdf", "eps", "json"}, false},
		{"invalid format", []string{"gif"}, true},
		{"mixed valid invalid", []string{"svg", "gif"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("validateFormats(%v) code = %s, want %s", tt.formats, errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "scattering"},
		{"out/beam", "out/beam"},
		{"out/beam.svg", "out/beam"},
		{"out/beam.PNG", "out/beam"},
		{"out/beam.v2", "out/beam.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			if got := basePath(tt.output); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    []string
	}{
		{"default single", "", []string{"svg"}, []string{"scattering.svg"}},
		{"explicit single kept verbatim", "figure.out", []string{"png"}, []string{"figure.out"}},
		{"default multiple", "", []string{"svg", "json"}, []string{"scattering.svg", "scattering.json"}},
		{"explicit multiple", "out/beam.svg", []string{"svg", "pdf"}, []string{"out/beam.svg", "out/beam.pdf"}},
		{"stdout", "-", []string{"json"}, []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("outputPaths()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
