package detector

import (
	"errors"
	"testing"

	"github.com/ayusman/fingerspell/internal/landmark"
)

func TestMockDetector_DefaultIsNoHands(t *testing.T) {
	m := NewMockDetector()

	poses, err := m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(poses) != 0 {
		t.Errorf("expected no hands, got %d", len(poses))
	}
}

func TestMockDetector_FixedPoses(t *testing.T) {
	m := NewMockDetector()
	m.SetPoses(*landmark.OpenPalm())

	for i := 0; i < 3; i++ {
		poses, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if len(poses) != 1 {
			t.Fatalf("call %d: expected 1 pose, got %d", i, len(poses))
		}
	}
}

func TestMockDetector_Script(t *testing.T) {
	m := NewMockDetector()
	m.SetScript(
		[]landmark.HandPose{*landmark.OpenPalm()},
		nil,
		[]landmark.HandPose{*landmark.ClosedFist()},
	)

	wantCounts := []int{1, 0, 1, 1} // last entry repeats
	for i, want := range wantCounts {
		poses, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("call %d: Detect() error = %v", i, err)
		}
		if len(poses) != want {
			t.Errorf("call %d: got %d poses, want %d", i, len(poses), want)
		}
	}
}

func TestMockDetector_Error(t *testing.T) {
	m := NewMockDetector()
	wantErr := errors.New("service down")
	m.SetError(wantErr)

	if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
}

func TestJSONHand_ToPose(t *testing.T) {
	h := jsonHand{Handedness: "Left", Score: 0.9}
	for i := 0; i < landmark.NumLandmarks; i++ {
		h.Points = append(h.Points, jsonPoint{X: 0.1, Y: 0.2, Z: 0.0})
	}

	pose, err := h.toPose()
	if err != nil {
		t.Fatalf("toPose() error = %v", err)
	}
	if pose.Handedness != "Left" || pose.Score != 0.9 {
		t.Errorf("pose metadata = %q/%f, want Left/0.9", pose.Handedness, pose.Score)
	}
}

func TestJSONHand_ToPose_Incomplete(t *testing.T) {
	h := jsonHand{Points: make([]jsonPoint, 10)}

	if _, err := h.toPose(); err == nil {
		t.Error("expected error for an incomplete landmark set")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.5 || cfg.MinTrackingConf != 0.5 {
		t.Errorf("confidence defaults = %f/%f, want 0.5/0.5", cfg.MinConfidence, cfg.MinTrackingConf)
	}
}
