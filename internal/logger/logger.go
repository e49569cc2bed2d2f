// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// backup tool.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer; units of work derive child
// loggers enriched with solution, file and iteration fields.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log output formats accepted by Settings.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Settings selects level, format and destination of a client logger.
// Zero values mean info level, console format and stderr.
type Settings struct {
	Level  string
	Format string
	File   string
}

// NewLogger constructs a JSON *Logger writing to stderr at debug level, with
// "role", timestamp and "func" caller fields on every entry.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	setCallerFormat()

	return newLogger(role, os.Stderr)
}

// NewClientLogger constructs the *Logger used by the command line tool.
//
// Console format writes human readable lines, JSON format writes one
// object per entry. When File is set, entries are appended to it instead
// of stderr; the file stays open for the lifetime of the process.
func NewClientLogger(role string, s Settings) (*Logger, error) {
	level := zerolog.InfoLevel
	if s.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", s.Level, err)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	setCallerFormat()

	var out io.Writer = os.Stderr
	if s.File != "" {
		f, err := os.OpenFile(s.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	switch strings.ToLower(s.Format) {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    s.File != "",
			PartsExclude: []string{
				zerolog.CallerFieldName,
			},
			FieldsExclude: []string{"role"},
		}
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown log format %q", s.Format)
	}

	return newLogger(role, out), nil
}

func newLogger(role string, out io.Writer) *Logger {
	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func setCallerFormat() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRunID returns a child logger tagging every entry with the backup run
// identifier.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{l.With().Str("run_id", runID).Logger()}
}

// WithContext attaches the logger to ctx so that FromContext can find it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
