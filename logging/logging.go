// Package logging routes the standard logger to a rotated file.
// The terminal host owns stdout, so logs never go there.
package logging

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
	logFileName = "museum.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Setup directs log output to logs/museum.log when debug is set and discards it otherwise
// Returns the open file for the caller to close, nil when logging is off or the file cannot be opened
func Setup(debug bool) *os.File {
	return setupIn(logDir, debug)
}

func setupIn(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("logging started")
	return f
}

// rotate renames path with a timestamp suffix once it exceeds maxLogSize
func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	return os.Rename(path, rotated)
}
