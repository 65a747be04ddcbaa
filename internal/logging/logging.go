// Package logging builds the zerolog loggers used by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.InfoLevel

// ParseLevel parses a zerolog level name. The empty string yields
// [DefaultLevel].
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: invalid level %q", s)
	}
	return lvl, nil
}

// New returns a logger writing to w at level. With pretty set, records go
// through a [zerolog.ConsoleWriter] instead of being written as JSON lines.
func New(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Setup builds a logger on w, installs it as the package-level logger of
// github.com/rs/zerolog/log and returns it. Process-wide zerolog settings
// such as TimeFieldFormat are left to main.
func Setup(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	l := New(w, level, pretty)
	log.Logger = l
	return l
}
