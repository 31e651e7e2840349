// Package log provides the application-wide zap logger. The terminal is
// owned by the UI, so entries go to a file or nowhere.
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init points the package logger at path. An empty path installs a no-op
// logger. Debug lowers the level to debug and switches to console encoding.
func Init(path string, debug bool) error {
	if path == "" {
		set(zap.NewNop())
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		set(zap.NewNop())
		return fmt.Errorf("creating log directory: %w", err)
	}

	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		set(zap.NewNop())
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	set(zapLogger)
	return nil
}

func set(l *zap.Logger) {
	log = l.Sugar()
}

// GetSugaredLogger returns the sugared logger instance.
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		set(zap.NewNop())
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...interface{}) {
	GetSugaredLogger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Errorw(msg, keysAndValues...)
}

// LogError logs err with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Errorw(context, "error", err)
	}
}
