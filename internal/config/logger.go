package config

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates the shared structured logger writing to w.
// The level is read from LOG_LEVEL (debug, info, warn, error); unknown
// values fall back to info.
func NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "wormhole",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// NewFileLogger creates a logger for raw-mode frontends, where stdout belongs
// to the game. Output goes to the file named by LOG_FILE, or is discarded.
// The returned close function must be called on exit.
func NewFileLogger() (*log.Logger, func() error, error) {
	path := GetEnv("LOG_FILE", "")
	if path == "" {
		return NewLogger(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(f), f.Close, nil
}
