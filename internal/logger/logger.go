package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"voltpad-checkout/internal/config"
)

// New builds the root logger. Unknown levels fall back to info rather
// than failing startup.
func New(cfg config.Log) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "checkout-api").
		Logger()
}
