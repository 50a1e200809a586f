package logger

import (
	"os"

	"github.com/rs/zerolog"

	"todoapi/pkg/config"
)

func New(cfg *config.AppConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)

	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger

	if cfg.Environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "todoapi").
		Logger()
}
