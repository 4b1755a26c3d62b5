// Package obs provides logging setup shared by the API and CLI.
package obs

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger
func InitLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Pretty print in development
	if os.Getenv("ENV") == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Logger returns a new logger with the given component name
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// WithRequest adds the chi request id carried by ctx, if any
func WithRequest(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.With().Str("request_id", id).Logger()
	}
	return logger
}
