// Package logging builds the zap logger. The terminal belongs to the UI, so
// log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a level name to a zap level. The empty string means off.
func ParseLevel(level string) (zapcore.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "off", "none":
		return zapcore.InfoLevel, false, nil
	case "debug":
		return zapcore.DebugLevel, true, nil
	case "info":
		return zapcore.InfoLevel, true, nil
	case "warn", "warning":
		return zapcore.WarnLevel, true, nil
	case "error":
		return zapcore.ErrorLevel, true, nil
	default:
		return zapcore.InfoLevel, false, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
}

// New returns a JSON logger at level writing to w. A disabled level yields a
// no-op logger.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, enabled, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return zap.NewNop(), nil
	}
	atomic := zap.NewAtomicLevelAt(lvl)
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), atomic)
	return zap.New(core), nil
}

// NewFile opens path for appending (creating parent directories) and returns
// a logger writing to it. The returned close function syncs and closes the file.
func NewFile(level, path string) (*zap.Logger, func() error, error) {
	_, enabled, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if !enabled || path == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(level, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}
