package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Level names follow zerolog
// ("trace", "debug", "info", ...); anything unknown falls back to info.
func New(level string) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Str("service", "tourplan-hub").
		Logger()

	return &logger
}
