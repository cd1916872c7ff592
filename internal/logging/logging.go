// Package logging provides a small structured logging facade over zap.
// The default logger writes human-readable output to stderr; commands can
// raise or lower the level globally.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields map[string]interface{}

// Level controls logging verbosity.
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Logger is the logging interface used throughout the module.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

type zapLogger struct {
	base *zap.Logger
}

var (
	mu          sync.Mutex
	atomicLevel = zap.NewAtomicLevelAt(InfoLevel)
	root        Logger
)

func newRoot() Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atomicLevel
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return &zapLogger{base: zap.NewNop()}
	}
	return &zapLogger{base: logger}
}

// NewDefaultLogger returns the process-wide default logger.
func NewDefaultLogger() Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		root = newRoot()
	}
	return root
}

// SetLevel changes the verbosity of every logger derived from the default.
func SetLevel(level Level) {
	atomicLevel.SetLevel(level)
}

// WithFields returns a logger derived from the default with the given
// fields attached to every entry.
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

// Error logs an error through the default logger.
func Error(err error, msg string, fields ...Fields) {
	NewDefaultLogger().Error(err, msg, fields...)
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.base.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.base.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.base.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(err error, msg string, fields ...Fields) {
	zf := zapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.base.Error(msg, zf...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{base: l.base.With(zapFields([]Fields{fields})...)}
}

func zapFields(groups []Fields) []zap.Field {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	if n == 0 {
		return nil
	}
	out := make([]zap.Field, 0, n)
	for _, g := range groups {
		for k, v := range g {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
