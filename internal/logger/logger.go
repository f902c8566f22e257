package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. Development uses the human-readable
// console writer; any other environment logs structured JSON.
func New(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
