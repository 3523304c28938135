package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configure a logger
type Options struct {
	Level     string
	Output    io.Writer
	Timestamp bool
	Prefix    string
}

// New builds a charmbracelet logger. An unknown level is an error so typos
// in config files surface early.
func New(opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	l := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: opts.Timestamp,
		TimeFormat:      time.TimeOnly,
		Prefix:          opts.Prefix,
	})
	return l, nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel accepts debug, info, warn, error and fatal. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// ToFile opens (appending) a log file for use while the terminal belongs to
// the TUI. The caller closes the returned file.
func ToFile(path string, opts Options) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	opts.Output = f
	opts.Timestamp = true
	l, err := New(opts)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}
