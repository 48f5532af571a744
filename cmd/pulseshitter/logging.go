package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/pulseshitter/config"
)

const (
	logFileName = "pulseshitter.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging redirects the standard logger away from the terminal
// Without debug, logs are discarded; with debug they go to <dir>/pulseshitter.log,
// rotating the previous file aside once it exceeds maxLogSize
// Returns the open log file for the caller to close, nil when discarding
func setupLogging(cfg config.LogConfig, runID string) *os.File {
	log.SetPrefix(shortID(runID) + " ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = config.Default().Log.Dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir %s: %v (logging disabled)\n", dir, err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("pulseshitter-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log %s: %v (logging disabled)\n", path, err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.Printf("run %s started", runID)
	return f
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
