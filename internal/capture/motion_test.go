package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMotionDetector_FirstFramePrimesBaseline(t *testing.T) {
	if testing.Short() {
		t.Skip("requires OpenCV")
	}

	m := NewMotionDetector(5)
	defer m.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	detected, percent := m.Detect(&frame)
	if detected {
		t.Error("first frame must not report motion")
	}
	if percent != 0 {
		t.Errorf("first frame change percent = %f, want 0", percent)
	}
}

func TestMotionDetector_ReportsChangePercent(t *testing.T) {
	if testing.Short() {
		t.Skip("requires OpenCV")
	}

	m := NewMotionDetector(5)
	defer m.Close()

	black := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer black.Close()
	white := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer white.Close()

	m.Detect(&black)

	detected, percent := m.Detect(&white)
	if !detected {
		t.Error("black-to-white flip must report motion")
	}
	if percent < 99 {
		t.Errorf("change percent = %f, want ~100", percent)
	}
}

func TestMotionDetector_StaticScene(t *testing.T) {
	if testing.Short() {
		t.Skip("requires OpenCV")
	}

	m := NewMotionDetector(5)
	defer m.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	m.Detect(&frame)

	detected, percent := m.Detect(&frame)
	if detected {
		t.Error("identical frames must not report motion")
	}
	if percent != 0 {
		t.Errorf("change percent = %f, want 0", percent)
	}
}

func TestMotionDetector_EmptyFrame(t *testing.T) {
	if testing.Short() {
		t.Skip("requires OpenCV")
	}

	m := NewMotionDetector(5)
	defer m.Close()

	if detected, percent := m.Detect(nil); detected || percent != 0 {
		t.Errorf("Detect(nil) = %v, %f, want false, 0", detected, percent)
	}

	empty := gocv.NewMat()
	defer empty.Close()
	if detected, percent := m.Detect(&empty); detected || percent != 0 {
		t.Errorf("Detect(empty) = %v, %f, want false, 0", detected, percent)
	}
}
