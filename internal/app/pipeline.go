package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/fingerspell/internal/classify"
)

// runPipeline is the frame loop. Frames are processed strictly in arrival
// order on this single goroutine: the stabilizer's correctness depends on
// monotonic timestamps, so nothing here may be made concurrent per stream.
//
// Loop shape:
//  1. Start at the idle frame rate.
//  2. On motion, switch to the active rate and run recognition.
//  3. Classify each frame, feed the stabilizer, fan out confirmations.
//  4. After 2s without motion, fall back to the idle rate.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(a.config.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			now := time.Now()

			if motionDetected {
				lastMotionTime = now
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(a.config.ActiveFPS)
					frameInterval = time.Second / time.Duration(a.config.ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && now.Sub(lastMotionTime) > IdleTimeoutMs*time.Millisecond {
				activeMode = false
				a.Camera().SetFPS(a.config.IdleFPS)
				frameInterval = time.Second / time.Duration(a.config.IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				// An idle stretch still drives the display-clear
				// timeout: feed an empty result.
				a.processResult(classify.Result{}, now)
				continue
			}

			a.processFrame(frame, now)
			frame.Close()
		}
	}
}

// processFrame runs one classification cycle. Any single-frame fault
// (detector error, malformed landmarks) degrades to a "no detection" frame;
// the capture loop must never stop on one bad frame.
func (a *App) processFrame(frame *gocv.Mat, now time.Time) {
	poses, err := a.Detector().Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		poses = nil
	}

	var res classify.Result
	if len(poses) > 0 {
		// Finger-spelling reads one hand; the first detection wins.
		vec := a.extractor.Extract(&poses[0])
		res = a.classifier.Classify(vec)
	}

	a.processResult(res, now)
}

// processResult feeds the stabilizer and fans out confirmed letters.
func (a *App) processResult(res classify.Result, now time.Time) {
	confirmed, ok := a.stabilizer.Process(res, now)
	if !ok {
		return
	}

	word := a.word.Observe(confirmed)

	if !confirmed.Repeat {
		a.persistLetter(confirmed.Letter, confirmed.Confidence, confirmed.At)
	}

	for _, fn := range a.letterCallbacks() {
		fn(confirmed, word)
	}
}

func (a *App) persistLetter(letter string, confidence float64, at time.Time) {
	a.mu.RLock()
	st, sessionID := a.config.Store, a.sessionID
	a.mu.RUnlock()

	if st == nil || sessionID == "" {
		return
	}

	if err := st.Sessions().AppendLetter(sessionID, letter, confidence, at); err != nil {
		log.Printf("Failed to persist letter %q: %v", letter, err)
	}
}

// Displayed returns the letter currently shown to the user, subject to the
// display-clear timeout.
func (a *App) Displayed() string {
	return a.stabilizer.Displayed(time.Now())
}
