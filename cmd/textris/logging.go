package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "textris.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10 MiB
)

// setupLogging routes the standard logger to logs/textris.log when debug is set
// and discards it otherwise; the terminal belongs to the screen
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) *os.File {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("textris-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.Printf("=== textris started (pid %d) ===", os.Getpid())
	return f
}
