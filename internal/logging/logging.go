// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging writes diagnostic output to a file in the data
// directory. The TUI owns the terminal, so nothing is ever logged to
// stdout or stderr; failed sends show a generic fallback message in the
// transcript while the underlying cause lands here.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LogFile is the file name inside the data directory.
const LogFile = "empath.log"

var (
	mu     sync.Mutex
	logger *log.Logger
	file   *os.File
)

// Init opens (or creates) the log file under dataDir. Safe to call more
// than once; later calls replace the destination. On failure logging
// degrades to a no-op rather than breaking the app.
func Init(dataDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dataDir, LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if file != nil {
		file.Close()
	}
	file = f
	logger = log.New(f, "", log.LstdFlags)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
		logger = nil
	}
}

// Infof records an informational line.
func Infof(format string, args ...any) {
	write("INFO  ", format, args...)
}

// Errorf records an error line.
func Errorf(format string, args ...any) {
	write("ERROR ", format, args...)
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Printf(prefix+format, args...)
}
