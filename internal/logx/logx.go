// Package logx configures the zerolog console logger shared by the binaries.
package logx

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger writing human-readable lines to w.
func NewLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	zerolog.CallerMarshalFunc = shortCaller
	return zerolog.New(output).With().Timestamp().Caller().Logger()
}

// shortCaller keeps just the file name and pads it so messages line up.
func shortCaller(_ uintptr, file string, line int) string {
	return fmt.Sprintf("%-28s", fmt.Sprintf("%s:%d", filepath.Base(file), line))
}

// SetLevel parses a level name ("debug", "info", ...) and applies it globally.
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}
