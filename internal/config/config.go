// Package config loads optional JSON processing configuration for the
// core-report CLI. All fields are pointers so partial files are safe:
// anything omitted keeps its built-in default or command-line value.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/core.report/internal/borehole"
)

// Built-in defaults for fields absent from both the config file and the
// command line.
const (
	DefaultPrecision          = 2
	DefaultStereonetMaxPoints = 8000
)

// ProcessingConfig is the root configuration for borehole processing.
type ProcessingConfig struct {
	// OrientationLine is the beta reference-line convention, "top" or
	// "bottom".
	OrientationLine *string `json:"orientation_line,omitempty"`
	// Precision is the number of decimals written to the output table.
	Precision *int `json:"precision,omitempty"`
	// StereonetMaxPoints caps the number of poles rendered into the HTML
	// stereonet.
	StereonetMaxPoints *int `json:"stereonet_max_points,omitempty"`
}

// Load reads and validates a ProcessingConfig from a JSON file. Fields
// omitted from the file stay nil, so partial configs are safe.
func Load(path string) (*ProcessingConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &ProcessingConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *ProcessingConfig) Validate() error {
	if c.OrientationLine != nil {
		if _, err := ParseOrientationLine(*c.OrientationLine); err != nil {
			return err
		}
	}
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > 12) {
		return fmt.Errorf("precision must be between 0 and 12, got %d", *c.Precision)
	}
	if c.StereonetMaxPoints != nil && *c.StereonetMaxPoints < 1 {
		return fmt.Errorf("stereonet_max_points must be positive, got %d", *c.StereonetMaxPoints)
	}
	return nil
}

// Line returns the configured orientation-line convention, or Top when the
// field is absent. Load has already validated the value.
func (c *ProcessingConfig) Line() borehole.OrientationLine {
	if c == nil || c.OrientationLine == nil {
		return borehole.Top
	}
	line, _ := ParseOrientationLine(*c.OrientationLine)
	return line
}

// GetPrecision returns the configured output precision or the default.
func (c *ProcessingConfig) GetPrecision() int {
	if c == nil || c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// GetStereonetMaxPoints returns the configured pole cap or the default.
func (c *ProcessingConfig) GetStereonetMaxPoints() int {
	if c == nil || c.StereonetMaxPoints == nil {
		return DefaultStereonetMaxPoints
	}
	return *c.StereonetMaxPoints
}

// ParseOrientationLine maps a config or flag value to a convention.
func ParseOrientationLine(s string) (borehole.OrientationLine, error) {
	switch s {
	case "top":
		return borehole.Top, nil
	case "bottom":
		return borehole.Bottom, nil
	default:
		return borehole.Top, fmt.Errorf("orientation_line must be \"top\" or \"bottom\", got %q", s)
	}
}
