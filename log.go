package folio

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package logger. Failures in market data fetching, persistence
// scans and CSV imports are reported here and never abort the caller.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetVerbose lowers the package log level to debug.
func SetVerbose() { Log = Log.Level(zerolog.DebugLevel) }
