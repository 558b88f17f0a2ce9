// Package logger provides the process-wide zerolog logger.
//
// Diagnostics go to stderr (or a file) so stdout carries only command
// output.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/berlinclock/internal/config"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures the root logger.
type Options struct {
	Level  string
	Format string    // "console" or "json"
	File   string    // append JSON lines to this file instead of Writer
	Writer io.Writer // defaults to os.Stderr
}

// FromConfig builds Options from the [log] section.
func FromConfig(cfg config.LogConfig) Options {
	return Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		File:   cfg.File,
	}
}

var (
	mu     sync.Mutex
	root   atomic.Pointer[zerolog.Logger]
	closer io.Closer
)

// Init builds the root logger. Calling it again replaces the previous
// logger and closes any file it opened.
func Init(opt Options) error {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}

	var f *os.File
	if opt.File != "" {
		if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		var err error
		f, err = os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = f
	} else if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	log := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp().Logger()

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if f != nil {
		closer = f
	}
	root.Store(&log)
	return nil
}

// Close releases the log file, if any. The logger keeps working but
// discards output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	nop := zerolog.Nop()
	root.Store(&nop)
	err := closer.Close()
	closer = nil
	return err
}

// Get returns the root logger, or a disabled logger before Init.
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

// Named returns a child logger with a component field.
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}

// parseLevel supports string-only levels and defaults to warn.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
