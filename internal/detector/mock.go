package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/fingerspell/internal/landmark"
)

// MockDetector is a test implementation of Detector that returns scripted
// poses. With a non-empty script, each Detect call consumes the next entry
// and the last entry repeats; otherwise the fixed poses are returned.
type MockDetector struct {
	poses  []landmark.HandPose
	script [][]landmark.HandPose
	calls  int
	err    error
}

// NewMockDetector creates a MockDetector with no hands visible.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetPoses sets the poses returned by every subsequent Detect call.
func (m *MockDetector) SetPoses(poses ...landmark.HandPose) {
	m.poses = poses
	m.script = nil
	m.calls = 0
}

// SetScript sets a per-call sequence of detection results. A nil entry
// simulates a frame with no hand visible.
func (m *MockDetector) SetScript(script ...[]landmark.HandPose) {
	m.script = script
	m.calls = 0
}

// SetError makes Detect fail, simulating a broken landmark service.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the scripted result for this call.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]landmark.HandPose, error) {
	if m.err != nil {
		return nil, m.err
	}

	if len(m.script) > 0 {
		i := m.calls
		if i >= len(m.script) {
			i = len(m.script) - 1
		}
		m.calls++
		return m.script[i], nil
	}

	return m.poses, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
