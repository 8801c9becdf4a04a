// Package logger builds the application's zerolog logger from config.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/GHutch55/exlog/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to stdout in the configured format.
func New(cfg config.LoggingConfig, env string) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg, env)
}

func NewWithWriter(w io.Writer, cfg config.LoggingConfig, env string) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "exlog").
		Str("env", env).
		Logger()
}
