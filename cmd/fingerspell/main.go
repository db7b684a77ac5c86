package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/fingerspell/internal/app"
	"github.com/ayusman/fingerspell/internal/config"
	"github.com/ayusman/fingerspell/internal/feature"
	"github.com/ayusman/fingerspell/internal/server"
	"github.com/ayusman/fingerspell/internal/stabilize"
	"github.com/ayusman/fingerspell/internal/store"
	"github.com/ayusman/fingerspell/internal/tray"
)

func main() {
	fmt.Println("Fingerspell - Sign Language Letter Recognition")

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dataDir(), "fingerspell.db")
	}
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	if err := app.EnsureBuiltins(st); err != nil {
		log.Fatalf("Failed to seed built-in alphabets: %v", err)
	}

	alphabet, minConfidence, err := app.LoadAlphabet(st, cfg.Recognizer.Alphabet)
	if err != nil {
		log.Fatalf("Failed to load alphabet %q: %v", cfg.Recognizer.Alphabet, err)
	}
	if cfg.Recognizer.MinConfidence > 0 {
		minConfidence = cfg.Recognizer.MinConfidence
	}

	a := app.New(app.Config{
		Store:         st,
		CameraID:      cfg.Camera.Device,
		IdleFPS:       cfg.Camera.IdleFPS,
		ActiveFPS:     cfg.Camera.ActiveFPS,
		MotionThresh:  cfg.Camera.MotionThreshold,
		Alphabet:      alphabet,
		MinConfidence: minConfidence,
		Extractor: feature.Config{
			NormDistance: cfg.Recognizer.NormDistance,
			Secondary:    cfg.Recognizer.SecondaryFeatures,
		},
		Stabilizer: stabilize.Config{
			InstantAccept:      cfg.Stabilizer.InstantAccept,
			DelayedAccept:      cfg.Stabilizer.DelayedAccept,
			DwellTime:          time.Duration(cfg.Stabilizer.DwellMs) * time.Millisecond,
			ReaffirmConfidence: cfg.Stabilizer.Reaffirm,
			DisplayTimeout:     time.Duration(cfg.Stabilizer.DisplayTimeoutMs) * time.Millisecond,
		},
		WordMinConfidence: cfg.Word.MinConfidence,
	})

	letters := server.NewLettersHandler()
	a.OnLetter(letters.Publish)

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
		Camera:    a.Camera(),
		Letters:   letters,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start recognition pipeline: %v", err)
	}
	a.SetEnabled(true)

	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnClearWord(a.WordAssembler().Clear)
	t.OnQuit(a.Stop)
	a.OnLetter(func(confirmed stabilize.Confirmed, word string) {
		t.SetLastLetter(confirmed.Letter)
		t.SetWord(word)
	})

	// Blocks until Quit is selected from the menu.
	t.Run()
}

// dataDir resolves ~/.fingerspell, creating it when missing.
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dir := filepath.Join(homeDir, ".fingerspell")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	return dir
}

// configPath returns the configuration file location, ~/.fingerspell/config.yaml.
func configPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(homeDir, ".fingerspell", "config.yaml")
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.fingerspell/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".fingerspell", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
