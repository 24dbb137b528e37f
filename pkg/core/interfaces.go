package core

import (
	"fmt"
	"log/slog"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// SlogLogger adapts a structured logger to the Printf-style Logger
type SlogLogger struct {
	Logger *slog.Logger
}

// Printf implements Logger by emitting an info record with the formatted message
func (l SlogLogger) Printf(format string, args ...interface{}) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(fmt.Sprintf(format, args...))
}
