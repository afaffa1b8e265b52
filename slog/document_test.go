package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/mock"
	graderslog "github.com/fwojciec/grader/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocument_Count(t *testing.T) {
	t.Parallel()

	t.Run("logs selector and count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Document{
			CountFn: func(selector string) (int, error) {
				return 3, nil
			},
		}

		doc := graderslog.NewLoggingDocument(inner, logger)
		n, err := doc.Count("p")

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=query")
		assert.Contains(t, output, "selector=p")
		assert.Contains(t, output, "count=3")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Document{
			CountFn: func(selector string) (int, error) {
				return 0, nil
			},
		}

		_, err := graderslog.NewLoggingDocument(inner, logger).Count("p")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs and returns selector errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Document{
			CountFn: func(selector string) (int, error) {
				return 0, grader.Errorf(grader.ESELECTOR, "invalid selector %q", selector)
			},
		}

		_, err := graderslog.NewLoggingDocument(inner, logger).Count("a[")

		assert.Equal(t, grader.ESELECTOR, grader.ErrorCode(err))
		assert.Contains(t, buf.String(), "err=")
	})
}
