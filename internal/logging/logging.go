package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/config"
)

// New builds a logger out of the config. Unknown levels fall back to info.
func New(cfg config.Log, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	// the global level is debug by default, which mutes trace events
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
