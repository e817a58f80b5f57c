package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hdrones8/ortofix/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	Directory  string
	Level      zerolog.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a new context with a logger attached
// For production: provide fs and leave Writer nil for rotated file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    orDefault(config.MaxSizeMB, defaultMaxLogSizeMB),
			MaxBackups: orDefault(config.MaxBackups, defaultMaxLogBackups),
			MaxAge:     orDefault(config.MaxAgeDays, defaultMaxLogAgeDays),
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("directory", config.Directory).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a configured level name to a zerolog level, defaulting
// to info for an empty name.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
