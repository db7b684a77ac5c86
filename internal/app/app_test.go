package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/fingerspell/internal/classify"
	"github.com/ayusman/fingerspell/internal/detector"
	"github.com/ayusman/fingerspell/internal/feature"
	"github.com/ayusman/fingerspell/internal/landmark"
	"github.com/ayusman/fingerspell/internal/stabilize"
	"github.com/ayusman/fingerspell/internal/store"
	"github.com/google/uuid"
)

// poseAlphabet builds a one-letter dictionary whose template is the exact
// feature vector of the given pose, so classifying that pose scores ~1.0.
func poseAlphabet(t *testing.T, letter string, pose *landmark.HandPose) classify.Alphabet {
	t.Helper()

	vec := feature.NewExtractor(feature.Config{}).Extract(pose)
	if vec == nil {
		t.Fatal("extraction failed for test pose")
	}

	return classify.Alphabet{
		Name: "test",
		Templates: []classify.Template{
			{Letter: letter, Category: classify.CategoryConsonant, Features: vec.Extensions, Angles: vec.Angles},
		},
		Weights: classify.Weights{Feature: 0.6, Angle: 0.4},
	}
}

func newTestApp(t *testing.T) (*App, *detector.MockDetector) {
	t.Helper()

	a := New(Config{Alphabet: poseAlphabet(t, "B", landmark.OpenPalm())})

	mock := detector.NewMockDetector()
	a.SetDetector(mock)
	return a, mock
}

func TestProcessFrame_ConfirmsLetterOnFirstFrame(t *testing.T) {
	a, mock := newTestApp(t)
	mock.SetPoses(*landmark.OpenPalm())

	var got []stabilize.Confirmed
	var words []string
	a.OnLetter(func(c stabilize.Confirmed, word string) {
		got = append(got, c)
		words = append(words, word)
	})

	// A pose identical to its template scores ~1.0, which clears the
	// instant-accept bar on the very first frame.
	a.processFrame(nil, time.Now())

	if len(got) != 1 {
		t.Fatalf("callbacks fired = %d, want 1", len(got))
	}
	if got[0].Letter != "B" || words[0] != "B" {
		t.Errorf("emission = %q word %q, want B B", got[0].Letter, words[0])
	}
	if got[0].Repeat {
		t.Error("first confirmation must not be a repeat")
	}
	if got[0].Confidence < 0.999 {
		t.Errorf("confidence = %f, want ~1.0 for an exact template match", got[0].Confidence)
	}
}

func TestProcessFrame_RepeatDoesNotGrowWord(t *testing.T) {
	a, mock := newTestApp(t)
	mock.SetPoses(*landmark.OpenPalm())

	now := time.Now()
	a.processFrame(nil, now)
	a.processFrame(nil, now.Add(100*time.Millisecond))

	if got := a.Word(); got != "B" {
		t.Errorf("word = %q, want B after a repeat", got)
	}
}

func TestProcessFrame_NoHands(t *testing.T) {
	a, mock := newTestApp(t)
	_ = mock // default mock reports no hands

	fired := false
	a.OnLetter(func(stabilize.Confirmed, string) { fired = true })

	a.processFrame(nil, time.Now())

	if fired {
		t.Error("empty frame must not emit a letter")
	}
	if got := a.Word(); got != "" {
		t.Errorf("word = %q, want empty", got)
	}
}

func TestProcessFrame_DetectorErrorIsNonFatal(t *testing.T) {
	a, mock := newTestApp(t)
	mock.SetError(errors.New("camera unplugged"))

	fired := false
	a.OnLetter(func(stabilize.Confirmed, string) { fired = true })

	a.processFrame(nil, time.Now())

	if fired {
		t.Error("detector error must degrade to a no-detection frame")
	}
}

func TestProcessFrame_PersistsTranscript(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "fingerspell.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	alpha := &store.Alphabet{ID: uuid.NewString(), Name: "test"}
	if err := s.Alphabets().Create(alpha); err != nil {
		t.Fatalf("create alphabet: %v", err)
	}
	sess := &store.Session{ID: uuid.NewString(), AlphabetID: alpha.ID}
	if err := s.Sessions().Create(sess); err != nil {
		t.Fatalf("create session: %v", err)
	}

	pose := landmark.OpenPalm()
	a := New(Config{Store: s, Alphabet: poseAlphabet(t, "B", pose)})
	mock := detector.NewMockDetector()
	mock.SetPoses(*pose)
	a.SetDetector(mock)
	a.sessionID = sess.ID

	now := time.Now()
	a.processFrame(nil, now)
	// The held letter re-affirms but must not produce a second row.
	a.processFrame(nil, now.Add(100*time.Millisecond))

	entries, err := s.Sessions().GetTranscript(sess.ID)
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("transcript rows = %d, want 1", len(entries))
	}
	if entries[0].Letter != "B" {
		t.Errorf("letter = %q, want B", entries[0].Letter)
	}
}

func TestSetEnabled(t *testing.T) {
	a, _ := newTestApp(t)

	if a.IsEnabled() {
		t.Error("recognition should start disabled")
	}
	a.SetEnabled(true)
	if !a.IsEnabled() {
		t.Error("SetEnabled(true) did not take")
	}
}

func TestNew_Defaults(t *testing.T) {
	a, _ := newTestApp(t)

	if a.config.IdleFPS != DefaultIdleFPS {
		t.Errorf("IdleFPS = %d, want %d", a.config.IdleFPS, DefaultIdleFPS)
	}
	if a.config.ActiveFPS != DefaultActiveFPS {
		t.Errorf("ActiveFPS = %d, want %d", a.config.ActiveFPS, DefaultActiveFPS)
	}
	if a.config.WordMinConfidence != DefaultWordMinConfidence {
		t.Errorf("WordMinConfidence = %f, want %f", a.config.WordMinConfidence, DefaultWordMinConfidence)
	}
}
