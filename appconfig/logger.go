package appconfig

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the zerolog.Logger cmd/ltlsynth wires into the search
// packages. LogFormat "console" gets the human-readable ConsoleWriter;
// any other value (including "json") gets zerolog's default JSON
// encoding. An unparsable LogLevel falls back to Info rather than
// failing startup over a typo'd flag.
func NewLogger(cfg *Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if cfg.LogFormat == "console" {
		out := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(out).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
