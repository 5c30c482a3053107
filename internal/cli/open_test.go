package cli

import (
	"path/filepath"
	"testing"
)

func TestOpenerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantErr  bool
	}{
		{"darwin", "open", false},
		{"linux", "xdg-open", false},
		{"windows", "cmd", false},
		{"plan9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, _, err := openerCommand(tt.goos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("openerCommand(%q) error = %v, wantErr %v", tt.goos, err, tt.wantErr)
			}
			if name != tt.wantName {
				t.Errorf("openerCommand(%q) = %q, want %q", tt.goos, name, tt.wantName)
			}
		})
	}
}

func TestOpenFileMissing(t *testing.T) {
	if err := openFile(filepath.Join(t.TempDir(), "missing.svg")); err == nil {
		t.Error("openFile(missing) error = nil, want error")
	}
}
