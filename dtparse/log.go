package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var logger zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
	setupLogger(os.Stderr, false)
}

// setupLogger writes human readable lines to w, colored only when w is a
// terminal.
func setupLogger(w io.Writer, verbose bool) {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}
	logger = zerolog.New(out).Level(level).With().Timestamp().Stack().Logger()
}

func logDebug() *zerolog.Event {
	return logger.Debug()
}

func logWarn() *zerolog.Event {
	return logger.Warn()
}

func logError() *zerolog.Event {
	return logger.Error()
}
