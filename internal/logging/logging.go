// Package logging builds the session logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultDebugPath is where debug logs go when no path is configured.
const DefaultDebugPath = "daysched-debug.log"

// New returns a logger for the session. With debug disabled it returns a
// no-op logger. With debug enabled it writes JSON lines to path, truncating
// any previous log so the file only holds the last session.
func New(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if path == "" {
		path = DefaultDebugPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating debug log directory: %w", err)
		}
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building debug logger: %w", err)
	}
	return logger, nil
}

// CapacityHook returns a function that logs backing array resizes.
func CapacityHook(log *zap.Logger) func(oldCap, newCap, size int) {
	return func(oldCap, newCap, size int) {
		action := "grow"
		if newCap < oldCap {
			action = "shrink"
		}
		log.Debug("capacity "+action,
			zap.Int("old", oldCap),
			zap.Int("new", newCap),
			zap.Int("size", size),
		)
	}
}
