package unitsel

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/unitsel/cluster"
)

// Logger wraps slog.Logger with unitsel-specific context.
// This provides structured logging with consistent field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogSearch logs a lattice search.
func (l *Logger) LogSearch(ctx context.Context, columns int, totalCost float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"columns", columns,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"columns", columns,
			"total_cost", totalCost,
		)
	}
}

// LogCluster logs a clustering run.
func (l *Logger) LogCluster(ctx context.Context, samples int, stats cluster.Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"samples", samples,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"samples", samples,
			"centroids", stats.Centroids,
			"iterations", stats.Iterations,
			"dropped", stats.Dropped,
			"total_distance", stats.TotalDistance,
		)
	}
}

// LogIndexBuild logs a representative index build.
func (l *Logger) LogIndexBuild(ctx context.Context, centroids int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "representative index build failed",
			"centroids", centroids,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "representative index built",
			"centroids", centroids,
		)
	}
}
