// Package logger provides structured logging for the gv100ad tools
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with gv100ad-specific helpers
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // trace, debug, info, warn, error
	Pretty     bool   // pretty-print for development
	Output     io.Writer
	WithCaller bool
}

// NewLogger creates a new structured logger
func NewLogger(cfg Config) *Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "gv100ad").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// GetZerolog returns the underlying zerolog logger
func (l *Logger) GetZerolog() zerolog.Logger {
	return l.zlog
}

// Info logs an info message
func (l *Logger) Info() *zerolog.Event { return l.zlog.Info() }

// Debug logs a debug message
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }

// Warn logs a warning message
func (l *Logger) Warn() *zerolog.Event { return l.zlog.Warn() }

// Error logs an error message
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }

// Fatal logs a fatal message and exits
func (l *Logger) Fatal() *zerolog.Event { return l.zlog.Fatal() }

// ParserLogger returns a logger scoped to the line parser
func (l *Logger) ParserLogger() zerolog.Logger {
	return l.zlog.With().Str("component", "parser").Logger()
}

// HTTPLogger returns a logger scoped to the HTTP query service
func (l *Logger) HTTPLogger() *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", "http").Logger()}
}

// LogConstruction logs the outcome of one database construction
func (l *Logger) LogConstruction(path string, duration time.Duration, records int, err error) {
	event := l.zlog.Info().
		Str("dataset", path).
		Dur("duration_ms", duration).
		Int("records", records)
	if err != nil {
		event = l.zlog.Error().
			Str("dataset", path).
			Dur("duration_ms", duration).
			Err(err)
	}
	event.Msg("database construction finished")
}

// LogHTTPRequest logs one handled HTTP request
func (l *Logger) LogHTTPRequest(method, path string, status int, duration time.Duration) {
	l.zlog.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration_ms", duration).
		Msg("request completed")
}
