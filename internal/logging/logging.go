// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	Prefix string
	Caller bool
}

// New returns a logger writing to w. Every record carries a "run" field
// identifying this process.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.Caller,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), nil
}

// Open returns a logger for path. An empty path discards output, "-" writes
// to stderr. The returned close func must be called when done.
func Open(path string, opts Options) (*log.Logger, func() error, error) {
	var (
		w       io.Writer
		closeFn = func() error { return nil }
	)
	switch path {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	}

	logger, err := New(w, opts)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
