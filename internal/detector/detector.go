// Package detector is the boundary to the external hand-landmark model.
// The recognizer consumes it as an opaque source of 21-point hand poses.
package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/fingerspell/internal/landmark"
)

// Detector extracts hand poses from video frames.
type Detector interface {
	// Detect analyzes a frame and returns the detected hand poses. An
	// empty slice is a valid "no hand visible" result, not an error.
	Detect(frame *gocv.Mat) ([]landmark.HandPose, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds detection options passed to the landmark model.
type Config struct {
	// MaxHands is the maximum number of hands to detect. Finger-spelling
	// reads a single hand, so the default is 1.
	MaxHands int

	// MinConfidence is the minimum detection confidence (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns detection defaults for one-handed finger-spelling.
func DefaultConfig() Config {
	return Config{
		MaxHands:        1,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
