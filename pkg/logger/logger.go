// Package logger provides logging functionality for globr.
package logger

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})

	// Warnf logs a formatted warning.
	Warnf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// defaultLogger writes logfmt lines through go-kit.
type defaultLogger struct {
	logger log.Logger
}

// NewDefaultLogger creates a logger writing logfmt lines to w.
// Writes are serialized so the logger can be shared between goroutines.
// When quiet is set only errors pass the level filter, which silences both
// Logf and Warnf.
func NewDefaultLogger(w io.Writer, quiet bool) Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))

	allowed := level.AllowInfo()
	if quiet {
		allowed = level.AllowError()
	}

	return &defaultLogger{logger: level.NewFilter(l, allowed)}
}

// Logf writes a formatted message at info level.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	_ = level.Info(d.logger).Log("msg", fmt.Sprintf(format, args...))
}

// Warnf writes a formatted message at warn level.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	_ = level.Warn(d.logger).Log("msg", fmt.Sprintf(format, args...))
}
