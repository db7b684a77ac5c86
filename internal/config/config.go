// Package config loads the recognizer configuration from a YAML file.
// Every tuning parameter of the pipeline is exposed here so deployments can
// adjust thresholds per alphabet without rebuilding.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the root configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// DBPath is the SQLite database location. Empty selects
	// ~/.fingerspell/fingerspell.db.
	DBPath string `yaml:"db"`

	// StaticDir serves the web UI when non-empty.
	StaticDir string `yaml:"static_dir"`

	Camera     Camera     `yaml:"camera"`
	Recognizer Recognizer `yaml:"recognizer"`
	Stabilizer Stabilizer `yaml:"stabilizer"`
	Word       Word       `yaml:"word"`
}

// Camera configures the capture device and pipeline frame rates.
type Camera struct {
	Device          int     `yaml:"device"`
	IdleFPS         int     `yaml:"idle_fps"`
	ActiveFPS       int     `yaml:"active_fps"`
	MotionThreshold float64 `yaml:"motion_threshold"` // percent of changed pixels
}

// Recognizer configures feature extraction and template matching.
type Recognizer struct {
	// Alphabet selects the template dictionary by name.
	Alphabet string `yaml:"alphabet"`

	// NormDistance divides raw wrist-to-fingertip distances.
	NormDistance float64 `yaml:"norm_distance"`

	// SecondaryFeatures enables spread/height extraction.
	SecondaryFeatures bool `yaml:"secondary_features"`

	// MinConfidence is the classification floor; scores at or below it
	// report no letter.
	MinConfidence float64 `yaml:"min_confidence"`
}

// Stabilizer configures the temporal debounce thresholds.
type Stabilizer struct {
	InstantAccept    float64 `yaml:"instant_accept"`
	DelayedAccept    float64 `yaml:"delayed_accept"`
	DwellMs          int     `yaml:"dwell_ms"`
	Reaffirm         float64 `yaml:"reaffirm"`
	DisplayTimeoutMs int     `yaml:"display_timeout_ms"`
}

// Word configures the word assembler, the consumer-side filter layered on
// top of the stabilizer.
type Word struct {
	MinConfidence float64 `yaml:"min_confidence"`
}

// Default returns the configuration with the stock thresholds.
func Default() Config {
	return Config{
		Addr: ":8080",
		Camera: Camera{
			Device:          0,
			IdleFPS:         5,
			ActiveFPS:       30,
			MotionThreshold: 1.0,
		},
		Recognizer: Recognizer{
			Alphabet:          "spanish-full",
			NormDistance:      0.4,
			SecondaryFeatures: true,
			MinConfidence:     0.60,
		},
		Stabilizer: Stabilizer{
			InstantAccept:    0.80,
			DelayedAccept:    0.70,
			DwellMs:          500,
			Reaffirm:         0.65,
			DisplayTimeoutMs: 1000,
		},
		Word: Word{
			MinConfidence: 0.75,
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
