package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// ParseLevel converts a level name ("debug", "info", ...) into a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	return zerolog.ParseLevel(s)
}

// SetLevel sets the global minimum level.
func SetLevel(level zerolog.Level) {
	base = base.Level(level)
}

// With returns a logger tagged with a component name.
func With(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// L returns the base logger.
func L() zerolog.Logger {
	return base
}
