package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey struct{}

// WithLogger returns a context carrying logger. A nil logger stores the
// package default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context's logger, or Default() when there is none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithFields attaches fields to the context's logger.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logCtx := FromContext(ctx).With()
	for key, value := range fields {
		logCtx = addField(logCtx, key, value)
	}
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}

// WithTemplate tags the context's logger with a template name.
func WithTemplate(ctx context.Context, name string) context.Context {
	return WithFields(ctx, map[string]any{"template": name})
}

// WithOperation tags the context's logger with an operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithFields(ctx, map[string]any{"operation": operation})
}
