package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/grader"
)

// Ensure LoggingResultWriter implements grader.ResultWriter.
var _ grader.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with logging.
type LoggingResultWriter struct {
	next   grader.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next grader.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResults delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) WriteResults(ctx context.Context, data []byte) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write results",
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResults(ctx, data)
}
