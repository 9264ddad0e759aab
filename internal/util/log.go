package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const ctxKeyLogger contextKey = "logger"

// LogFromContext returns the request-scoped logger if one was attached,
// falling back to the global logger.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(*zerolog.Logger); ok {
		return l
	}
	return &log.Logger
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

// LogLevelFromString parses a zerolog level, defaulting to info on garbage
// instead of failing startup.
func LogLevelFromString(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Error().Err(err).Msgf("Failed to parse log level %q, defaulting to info", level)
		return zerolog.InfoLevel
	}
	return parsed
}
