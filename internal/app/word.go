package app

import (
	"strings"
	"sync"

	"github.com/ayusman/fingerspell/internal/stabilize"
)

// DefaultWordMinConfidence is the assembler's own acceptance bar. It is a
// second, independent filter layered on top of the stabilizer: the
// stabilizer decides when a letter is stable, the assembler decides when it
// is trustworthy enough to become permanent text.
const DefaultWordMinConfidence = 0.75

// WordAssembler builds words from confirmed letters. It consumes the
// stabilizer's output as the output-boundary collaborator.
type WordAssembler struct {
	minConfidence float64
	letters       []string
	mu            sync.Mutex
}

// NewWordAssembler creates an assembler that accepts letters confirmed with
// confidence strictly above minConfidence.
func NewWordAssembler(minConfidence float64) *WordAssembler {
	if minConfidence <= 0 {
		minConfidence = DefaultWordMinConfidence
	}
	return &WordAssembler{minConfidence: minConfidence}
}

// Observe consumes one confirmed emission and returns the word so far.
// Repeats (the same letter re-affirmed while held) never append.
func (w *WordAssembler) Observe(c stabilize.Confirmed) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !c.Repeat && c.Confidence > w.minConfidence {
		w.letters = append(w.letters, c.Letter)
	}

	return strings.Join(w.letters, "")
}

// Word returns the word assembled so far.
func (w *WordAssembler) Word() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return strings.Join(w.letters, "")
}

// Backspace removes the last letter.
func (w *WordAssembler) Backspace() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.letters) > 0 {
		w.letters = w.letters[:len(w.letters)-1]
	}
}

// Commit returns the assembled word and clears the buffer for the next one.
func (w *WordAssembler) Commit() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	word := strings.Join(w.letters, "")
	w.letters = w.letters[:0]
	return word
}

// Clear drops the buffer without returning it.
func (w *WordAssembler) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.letters = w.letters[:0]
}
