package stabilize

import (
	"testing"
	"time"

	"github.com/ayusman/fingerspell/internal/classify"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return t0.Add(d) }

func result(letter string, confidence float64) classify.Result {
	return classify.Result{Letter: letter, Confidence: confidence}
}

func TestStabilizer_InstantAcceptFirstFrame(t *testing.T) {
	s := New(DefaultConfig())

	c, ok := s.Process(result("A", 0.9), t0)
	if !ok {
		t.Fatal("expected instant confirmation for confidence 0.9")
	}
	if c.Letter != "A" || c.Repeat {
		t.Errorf("confirmed = %+v, want new letter A", c)
	}
}

func TestStabilizer_MediumConfidenceFirstFrame(t *testing.T) {
	// The dwell clock starts at zero, so a fresh stream accepts a
	// medium-confidence letter through the delayed path immediately.
	s := New(DefaultConfig())

	if _, ok := s.Process(result("A", 0.75), t0); !ok {
		t.Fatal("expected delayed-path confirmation on a fresh stream")
	}
}

func TestStabilizer_SuppressesTransientFlicker(t *testing.T) {
	s := New(DefaultConfig())

	if _, ok := s.Process(result("A", 0.9), t0); !ok {
		t.Fatal("expected A to confirm")
	}

	// A single noisy B frame inside the dwell window must not override
	// the held sign.
	if c, ok := s.Process(result("B", 0.5), at(100*time.Millisecond)); ok {
		t.Fatalf("transient B confirmed: %+v", c)
	}

	c, ok := s.Process(result("A", 0.9), at(200*time.Millisecond))
	if !ok {
		t.Fatal("expected continued A to re-emit")
	}
	if c.Letter != "A" || !c.Repeat {
		t.Errorf("confirmed = %+v, want repeated A", c)
	}
}

func TestStabilizer_ConfirmedTransitionAfterDwell(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	c, ok := s.Process(result("B", 0.75), at(600*time.Millisecond))
	if !ok {
		t.Fatal("expected B to confirm via the medium-confidence dwell path")
	}
	if c.Letter != "B" || c.Repeat {
		t.Errorf("confirmed = %+v, want new letter B", c)
	}
}

func TestStabilizer_MediumConfidenceInsideDwellIsRejected(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	if c, ok := s.Process(result("B", 0.75), at(300*time.Millisecond)); ok {
		t.Fatalf("B confirmed inside the dwell window: %+v", c)
	}
}

func TestStabilizer_InstantAcceptBypassesDwell(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	c, ok := s.Process(result("B", 0.85), t0)
	if !ok {
		t.Fatal("expected high-confidence B to confirm with zero elapsed time")
	}
	if c.Letter != "B" {
		t.Errorf("Letter = %q, want B", c.Letter)
	}
}

func TestStabilizer_SameLetterReaffirmThreshold(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	t.Run("above 0.65 re-emits", func(t *testing.T) {
		c, ok := s.Process(result("A", 0.7), at(100*time.Millisecond))
		if !ok {
			t.Fatal("expected re-emission at confidence 0.7")
		}
		if !c.Repeat {
			t.Error("expected Repeat to be set for a held letter")
		}
	})

	t.Run("below 0.65 stays silent", func(t *testing.T) {
		if c, ok := s.Process(result("A", 0.6), at(200*time.Millisecond)); ok {
			t.Fatalf("unexpected emission: %+v", c)
		}
	})
}

func TestStabilizer_HeldLetterRefreshesDwellClock(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	// Low-confidence agreement does not emit but still counts as the
	// sign being held, pushing the dwell window forward.
	s.Process(result("A", 0.5), at(400*time.Millisecond))

	if c, ok := s.Process(result("B", 0.75), at(700*time.Millisecond)); ok {
		t.Fatalf("B confirmed only 300ms after the hold was refreshed: %+v", c)
	}

	if _, ok := s.Process(result("B", 0.75), at(1000*time.Millisecond)); !ok {
		t.Fatal("expected B once the refreshed dwell window elapsed")
	}
}

func TestStabilizer_DisplayTimeout(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	if got := s.Displayed(at(500 * time.Millisecond)); got != "A" {
		t.Errorf("Displayed() = %q, want A before the timeout", got)
	}

	// No detections past the timeout clear the display...
	s.Process(result("", 0), at(1100*time.Millisecond))
	if got := s.Displayed(at(1100 * time.Millisecond)); got != "" {
		t.Errorf("Displayed() = %q, want empty after the timeout", got)
	}

	// ...but duplicate suppression still remembers A: the next A frame
	// is a repeat, not a new-letter transition.
	c, ok := s.Process(result("A", 0.9), at(1200*time.Millisecond))
	if !ok {
		t.Fatal("expected A to re-emit after the display cleared")
	}
	if !c.Repeat {
		t.Error("expected A to still be treated as the held letter")
	}
}

func TestStabilizer_NoDetectionBeforeTimeoutKeepsDisplay(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)

	s.Process(result("", 0), at(800*time.Millisecond))
	if got := s.Displayed(at(800 * time.Millisecond)); got != "A" {
		t.Errorf("Displayed() = %q, want A inside the timeout", got)
	}
}

func TestStabilizer_Reset(t *testing.T) {
	s := New(DefaultConfig())
	s.Process(result("A", 0.9), t0)
	s.Reset()

	if got := s.Displayed(t0); got != "" {
		t.Errorf("Displayed() = %q after reset, want empty", got)
	}

	// After a reset A is a new letter again.
	c, ok := s.Process(result("A", 0.75), at(2*time.Second))
	if !ok {
		t.Fatal("expected confirmation on a reset stream")
	}
	if c.Repeat {
		t.Error("expected a fresh confirmation, not a repeat")
	}
}

func TestStabilizer_CustomThresholds(t *testing.T) {
	s := New(Config{
		InstantAccept:      0.95,
		DelayedAccept:      0.90,
		DwellTime:          time.Second,
		ReaffirmConfidence: 0.85,
		DisplayTimeout:     2 * time.Second,
	})

	s.Process(result("A", 0.96), t0)

	// 0.85 would be instant under the defaults but not here.
	if c, ok := s.Process(result("B", 0.85), at(100*time.Millisecond)); ok {
		t.Fatalf("B confirmed below the custom instant threshold: %+v", c)
	}
}
