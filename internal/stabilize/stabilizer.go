// Package stabilize debounces the noisy per-frame classification stream into
// confirmed letters using hysteresis thresholds and a minimum dwell time.
package stabilize

import (
	"time"

	"github.com/ayusman/fingerspell/internal/classify"
)

// Default thresholds. Switching letters is the risky transition (a wrong
// switch puts a spurious character in the word), so it demands either strong
// single-frame confidence or confirmation over time; re-affirming the held
// letter takes a lower bar.
const (
	DefaultInstantAccept      = 0.80
	DefaultDelayedAccept      = 0.70
	DefaultReaffirmConfidence = 0.65
	DefaultDwellTime          = 500 * time.Millisecond
	DefaultDisplayTimeout     = time.Second
)

// Config holds the stabilizer thresholds. Zero-valued fields fall back to
// the defaults when passed to New.
type Config struct {
	// InstantAccept confirms a new letter on a single frame.
	InstantAccept float64

	// DelayedAccept confirms a new letter only together with DwellTime.
	DelayedAccept float64

	// DwellTime is the minimum gap since the previous confirmation before
	// a medium-confidence candidate may switch the letter.
	DwellTime time.Duration

	// ReaffirmConfidence re-emits the currently held letter.
	ReaffirmConfidence float64

	// DisplayTimeout clears the displayed letter after this long without a
	// detection. Display-only; duplicate suppression is unaffected.
	DisplayTimeout time.Duration
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		InstantAccept:      DefaultInstantAccept,
		DelayedAccept:      DefaultDelayedAccept,
		DwellTime:          DefaultDwellTime,
		ReaffirmConfidence: DefaultReaffirmConfidence,
		DisplayTimeout:     DefaultDisplayTimeout,
	}
}

// Confirmed is one emission of the stabilizer. Repeat marks a re-emission of
// the letter already held (continuous-display refresh) rather than a
// transition to a new letter.
type Confirmed struct {
	Letter     string    `json:"letter"`
	Confidence float64   `json:"confidence"`
	At         time.Time `json:"at"`
	Repeat     bool      `json:"repeat"`
}

// Stabilizer converts per-frame results into confirmed letters. Each camera
// stream owns exactly one instance; it is not safe for concurrent use, and
// frames must arrive in timestamp order.
type Stabilizer struct {
	config Config

	lastLetter      string
	lastConfirmedAt time.Time
	displayed       string
}

// New creates a Stabilizer. Zero-valued config fields take the defaults.
func New(config Config) *Stabilizer {
	if config.InstantAccept <= 0 {
		config.InstantAccept = DefaultInstantAccept
	}
	if config.DelayedAccept <= 0 {
		config.DelayedAccept = DefaultDelayedAccept
	}
	if config.DwellTime <= 0 {
		config.DwellTime = DefaultDwellTime
	}
	if config.ReaffirmConfidence <= 0 {
		config.ReaffirmConfidence = DefaultReaffirmConfidence
	}
	if config.DisplayTimeout <= 0 {
		config.DisplayTimeout = DefaultDisplayTimeout
	}
	return &Stabilizer{config: config}
}

// Process consumes one per-frame result and reports whether it produced a
// confirmed emission.
func (s *Stabilizer) Process(res classify.Result, now time.Time) (Confirmed, bool) {
	if res.Letter == "" {
		// No detection this frame. Clear only the display once the
		// timeout elapses; lastLetter keeps suppressing duplicates.
		if !s.lastConfirmedAt.IsZero() && now.Sub(s.lastConfirmedAt) > s.config.DisplayTimeout {
			s.displayed = ""
		}
		return Confirmed{}, false
	}

	if res.Letter == s.lastLetter {
		// Sustained agreement across frames is corroborating evidence,
		// so the held letter always refreshes the dwell clock and
		// re-emits at a lower bar.
		emit := res.Confidence > s.config.ReaffirmConfidence
		s.lastConfirmedAt = now
		if !emit {
			return Confirmed{}, false
		}
		s.displayed = res.Letter
		return Confirmed{Letter: res.Letter, Confidence: res.Confidence, At: now, Repeat: true}, true
	}

	// Candidate new letter: instant high-confidence acceptance, or a
	// medium-confidence candidate that also satisfied the dwell time
	// since the previous confirmation.
	instant := res.Confidence > s.config.InstantAccept
	dwelled := res.Confidence > s.config.DelayedAccept && now.Sub(s.lastConfirmedAt) > s.config.DwellTime
	if !instant && !dwelled {
		return Confirmed{}, false
	}

	s.lastLetter = res.Letter
	s.lastConfirmedAt = now
	s.displayed = res.Letter
	return Confirmed{Letter: res.Letter, Confidence: res.Confidence, At: now}, true
}

// Displayed returns the letter currently shown to the user, or the empty
// string once DisplayTimeout has elapsed since the last confirmation.
func (s *Stabilizer) Displayed(now time.Time) string {
	if !s.lastConfirmedAt.IsZero() && now.Sub(s.lastConfirmedAt) > s.config.DisplayTimeout {
		return ""
	}
	return s.displayed
}

// Reset returns the stabilizer to its initial state, keeping the config.
// Called when a session ends and the stream restarts.
func (s *Stabilizer) Reset() {
	s.lastLetter = ""
	s.lastConfirmedAt = time.Time{}
	s.displayed = ""
}
