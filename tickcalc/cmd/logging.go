package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, level zerolog.Level, runID string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).
		Level(level).
		With().Timestamp().Str("run", runID).
		Logger()
}
