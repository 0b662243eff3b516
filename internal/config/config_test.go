package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/core.report/internal/borehole"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, "proc.json", `{
		"orientation_line": "bottom",
		"precision": 4,
		"stereonet_max_points": 500
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Line() != borehole.Bottom {
		t.Errorf("Line() = %v, want Bottom", cfg.Line())
	}
	if cfg.GetPrecision() != 4 {
		t.Errorf("GetPrecision() = %d, want 4", cfg.GetPrecision())
	}
	if cfg.GetStereonetMaxPoints() != 500 {
		t.Errorf("GetStereonetMaxPoints() = %d, want 500", cfg.GetStereonetMaxPoints())
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "proc.json", `{"precision": 3}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Line() != borehole.Top {
		t.Errorf("Line() = %v, want Top default", cfg.Line())
	}
	if cfg.GetPrecision() != 3 {
		t.Errorf("GetPrecision() = %d, want 3", cfg.GetPrecision())
	}
	if cfg.GetStereonetMaxPoints() != DefaultStereonetMaxPoints {
		t.Errorf("GetStereonetMaxPoints() = %d, want default", cfg.GetStereonetMaxPoints())
	}
}

func TestNilConfigDefaults(t *testing.T) {
	var cfg *ProcessingConfig
	if cfg.Line() != borehole.Top {
		t.Error("nil config should default to Top")
	}
	if cfg.GetPrecision() != DefaultPrecision {
		t.Error("nil config should use default precision")
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "proc.yaml", `{}`, ".json extension"},
		{"bad json", "proc.json", `{not json`, "parse config JSON"},
		{"unknown convention", "proc.json", `{"orientation_line": "side"}`, "orientation_line"},
		{"negative precision", "proc.json", `{"precision": -1}`, "precision"},
		{"zero max points", "proc.json", `{"stereonet_max_points": 0}`, "stereonet_max_points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseOrientationLine(t *testing.T) {
	if line, err := ParseOrientationLine("top"); err != nil || line != borehole.Top {
		t.Errorf("ParseOrientationLine(top) = %v, %v", line, err)
	}
	if line, err := ParseOrientationLine("bottom"); err != nil || line != borehole.Bottom {
		t.Errorf("ParseOrientationLine(bottom) = %v, %v", line, err)
	}
	if _, err := ParseOrientationLine("Top"); err == nil {
		t.Error("convention values are case sensitive")
	}
}
