package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/grader"
)

// Ensure LoggingDocument implements grader.Document.
var _ grader.Document = (*LoggingDocument)(nil)

// LoggingDocument wraps a Document and logs every selector query.
type LoggingDocument struct {
	next   grader.Document
	logger *slog.Logger
}

// NewLoggingDocument creates a new LoggingDocument.
func NewLoggingDocument(next grader.Document, logger *slog.Logger) *LoggingDocument {
	return &LoggingDocument{next: next, logger: logger}
}

// Count delegates to the wrapped document and logs the match count.
func (d *LoggingDocument) Count(selector string) (n int, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("query",
			"selector", selector,
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Count(selector)
}
