// Package logging installs the process-wide slog logger. The terminal is
// owned by the UI, so records go to a rotating file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Options selects the level and file for Init.
type Options struct {
	Level   string
	File    string
	Version string
}

// Init builds the logger and makes it the slog default. The returned func
// flushes and closes the log file.
func Init(opts Options) (func() error, error) {
	logger, closeFn, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

// New builds a logger without installing it.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, enabled := ParseLevel(opts.Level)
	writer, closeFn, err := resolveWriter(opts.File, enabled)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(
		slog.String("app", "mpl"),
		slog.String("version", opts.Version),
		slog.Int("pid", os.Getpid()),
	)
	return logger, closeFn, nil
}

// ParseLevel maps a config level to slog. "none" and "off" disable logging.
// Unknown values fall back to info.
func ParseLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "none", "off":
		return slog.LevelError, false
	default:
		return slog.LevelInfo, true
	}
}

func resolveWriter(path string, enabled bool) (io.Writer, func() error, error) {
	if !enabled || strings.TrimSpace(path) == "" {
		return io.Discard, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}
	return rot, rot.Close, nil
}
