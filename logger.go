package optmesh

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with optmesh-specific helpers so encode/decode
// operations log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogEncode logs a container encode operation.
func (l *Logger) LogEncode(ctx context.Context, vertexCount, indexCount, containerSize int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"vertex_count", vertexCount,
			"index_count", indexCount,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"vertex_count", vertexCount,
			"index_count", indexCount,
			"container_size", containerSize,
		)
	}
}

// LogDecode logs a container decode operation.
func (l *Logger) LogDecode(ctx context.Context, vertexCount, indexCount int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"vertex_count", vertexCount,
			"index_count", indexCount,
		)
	}
}
