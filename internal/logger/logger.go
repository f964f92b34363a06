package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// ParseLevel maps a config string to a LogLevel; ok is false for unknown names.
func ParseLevel(s string) (LogLevel, bool) {
	switch l := LogLevel(s); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l, true
	default:
		return "", false
	}
}

// Config represents logger configuration
type Config struct {
	Level LogLevel
	// Pretty selects zerolog's console writer instead of JSON lines.
	Pretty bool
	// Output defaults to os.Stderr so command output on stdout stays clean.
	Output io.Writer
}

// defaultLogger discards everything until Configure runs.
var defaultLogger = zerolog.Nop()

// Configure builds the process logger and installs it as the default.
func Configure(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	defaultLogger = zerolog.New(writer).Level(zerologLevel(config.Level)).With().Timestamp().Logger()
	log.Logger = defaultLogger
	return defaultLogger
}

func zerologLevel(l LogLevel) zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// WithFields returns a child of the default logger carrying fields.
func WithFields(fields map[string]any) zerolog.Logger {
	return defaultLogger.With().Fields(fields).Logger()
}
