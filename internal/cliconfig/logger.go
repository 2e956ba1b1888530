package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the host's console logger. The minimum level is
// governed globally so SetLevel can change it while a run is in progress.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	SetLevel(level)
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// SetLevel changes the process-wide minimum log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
