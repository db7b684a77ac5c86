// Package app wires the finger-spelling pipeline together: camera frames in,
// confirmed letters out.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/fingerspell/internal/capture"
	"github.com/ayusman/fingerspell/internal/classify"
	"github.com/ayusman/fingerspell/internal/detector"
	"github.com/ayusman/fingerspell/internal/feature"
	"github.com/ayusman/fingerspell/internal/stabilize"
	"github.com/ayusman/fingerspell/internal/store"
	"github.com/google/uuid"
)

// Pipeline timing defaults.
const (
	// DefaultIdleFPS is the frame rate while no motion is detected.
	DefaultIdleFPS = 5
	// DefaultActiveFPS is the frame rate during active recognition.
	DefaultActiveFPS = 30
	// IdleTimeoutMs is how long without motion before dropping back to
	// the idle rate.
	IdleTimeoutMs = 2000
)

// LetterFunc receives every confirmed letter along with the word assembled
// so far.
type LetterFunc func(confirmed stabilize.Confirmed, word string)

// Config holds application wiring options.
type Config struct {
	Store             *store.Store
	CameraID          int
	IdleFPS           int
	ActiveFPS         int
	MotionThresh      float64
	Alphabet          classify.Alphabet
	MinConfidence     float64
	Extractor         feature.Config
	Stabilizer        stabilize.Config
	WordMinConfidence float64
}

// App owns one camera stream and its recognition pipeline. The stabilizer
// and word assembler are per-stream state; a second camera needs a second
// App.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	extractor  *feature.Extractor
	classifier *classify.Classifier
	stabilizer *stabilize.Stabilizer
	word       *WordAssembler

	sessionID string
	enabled   bool
	onLetter  []LetterFunc
	mu        sync.RWMutex
	stopCh    chan struct{}
}

// New creates an App. The MediaPipe detector is preferred; when its service
// script is unavailable the mock detector keeps the rest of the system
// runnable.
func New(config Config) *App {
	if config.IdleFPS <= 0 {
		config.IdleFPS = DefaultIdleFPS
	}
	if config.ActiveFPS <= 0 {
		config.ActiveFPS = DefaultActiveFPS
	}
	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0 // 1% pixel change
	}
	if config.WordMinConfidence <= 0 {
		config.WordMinConfidence = DefaultWordMinConfidence
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(config.MotionThresh),
		extractor:  feature.NewExtractor(config.Extractor),
		classifier: classify.NewClassifier(config.Alphabet, config.MinConfidence),
		stabilizer: stabilize.New(config.Stabilizer),
		word:       NewWordAssembler(config.WordMinConfidence),
	}

	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled turns recognition on or off without stopping the camera.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled reports whether recognition is running.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector swaps the landmark source. Used by tests and by deployments
// with a custom model.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera swaps the frame source.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnLetter registers a callback fired on every confirmed emission.
// Callbacks run on the pipeline goroutine and must not block.
func (a *App) OnLetter(fn LetterFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onLetter = append(a.onLetter, fn)
}

// Start opens the camera, begins a recognition session, and launches the
// pipeline loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(a.config.IdleFPS)

	if err := a.startSession(); err != nil {
		log.Printf("Failed to start session: %v", err)
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the pipeline, ends the session, and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if a.sessionID != "" && a.config.Store != nil {
		if err := a.config.Store.Sessions().End(a.sessionID); err != nil {
			log.Printf("Error ending session: %v", err)
		}
		a.sessionID = ""
	}
	a.stabilizer.Reset()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

// startSession records a new session row. Called with the mutex held.
func (a *App) startSession() error {
	if a.config.Store == nil {
		return nil
	}

	alphabet, err := a.config.Store.Alphabets().GetByName(a.config.Alphabet.Name)
	if err != nil {
		return err
	}

	sess := &store.Session{
		ID:         uuid.NewString(),
		AlphabetID: alphabet.ID,
	}
	if err := a.config.Store.Sessions().Create(sess); err != nil {
		return err
	}

	a.sessionID = sess.ID
	return nil
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the landmark source.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Word returns the word assembled so far in this session.
func (a *App) Word() string {
	return a.word.Word()
}

// WordAssembler returns the output-boundary consumer for direct control
// (backspace, commit).
func (a *App) WordAssembler() *WordAssembler {
	return a.word
}

func (a *App) letterCallbacks() []LetterFunc {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.onLetter
}
