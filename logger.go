package cocoedit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cocoedit-specific helpers.
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
// This is the editor's default; libraries should be quiet unless asked.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLoad logs a dataset load/reset.
func (l *Logger) LogLoad(source string, images, categories, annotations, licenses int) {
	l.Debug("dataset loaded",
		"source", source,
		"images", images,
		"categories", categories,
		"annotations", annotations,
		"licenses", licenses,
	)
}

// LogApply logs a filter application pass.
func (l *Logger) LogApply(images, categories, annotations, licenses int) {
	l.Debug("filters applied",
		"images", images,
		"categories", categories,
		"annotations", annotations,
		"licenses", licenses,
	)
}

// LogCorrect logs a correction pass.
func (l *Logger) LogCorrect(droppedAnnotations, droppedImages, droppedCategories int) {
	l.Debug("correction completed",
		"dropped_annotations", droppedAnnotations,
		"dropped_images", droppedImages,
		"dropped_categories", droppedCategories,
	)
}

// LogExport logs an export operation.
func (l *Logger) LogExport(dest string, bytes int, err error) {
	if err != nil {
		l.Error("export failed",
			"dest", dest,
			"error", err,
		)
	} else {
		l.Info("export completed",
			"dest", dest,
			"bytes", bytes,
		)
	}
}
