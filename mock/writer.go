package mock

import (
	"context"

	"github.com/fwojciec/grader"
)

var _ grader.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of grader.ResultWriter.
type ResultWriter struct {
	WriteResultsFn func(ctx context.Context, data []byte) error
}

func (w *ResultWriter) WriteResults(ctx context.Context, data []byte) error {
	return w.WriteResultsFn(ctx, data)
}
