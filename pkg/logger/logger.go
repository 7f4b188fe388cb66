// Package logger wraps zap with request-scoped fields.
package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ContextKey string

const (
	TraceIDKey ContextKey = "trace_id"
	UserIDKey  ContextKey = "user_id"
)

var defaultLogger = zap.NewNop()

// Init builds the process logger and installs it as the package default.
func Init(level string, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.ToLower(format) == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	defaultLogger = l
	zap.ReplaceGlobals(l)
	return l, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Default() *zap.Logger {
	return defaultLogger
}

// FromContext returns the default logger annotated with the trace and user ids found in ctx.
func FromContext(ctx context.Context) *zap.Logger {
	l := defaultLogger
	if ctx == nil {
		return l
	}
	if v, ok := ctx.Value(TraceIDKey).(string); ok && v != "" {
		l = l.With(zap.String("trace_id", v))
	}
	if v, ok := ctx.Value(UserIDKey).(string); ok && v != "" {
		l = l.With(zap.String("user_id", v))
	}
	return l
}

func WithContext(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}
