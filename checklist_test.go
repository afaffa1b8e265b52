package grader_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/grader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChecklist(t *testing.T) {
	t.Parallel()

	t.Run("sorts selectors", func(t *testing.T) {
		t.Parallel()

		checklist, err := grader.ParseChecklist([]byte(`["h2", "h1", "a[href]", "body"]`))

		require.NoError(t, err)
		assert.Equal(t, grader.Checklist{"a[href]", "body", "h1", "h2"}, checklist)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		checklist, err := grader.ParseChecklist([]byte(`["p", "h1", "p"]`))

		require.NoError(t, err)
		assert.Equal(t, grader.Checklist{"h1", "p", "p"}, checklist)
	})

	t.Run("accepts empty array", func(t *testing.T) {
		t.Parallel()

		checklist, err := grader.ParseChecklist([]byte(`[]`))

		require.NoError(t, err)
		assert.Empty(t, checklist)
	})

	tests := []struct {
		name  string
		input string
	}{
		{name: "not JSON", input: "not json"},
		{name: "empty input", input: ""},
		{name: "null", input: "null"},
		{name: "object", input: `{"h1": true}`},
		{name: "bare string", input: `"h1"`},
		{name: "non-string element", input: `["h1", 2]`},
		{name: "null element", input: `["h1", null]`},
		{name: "truncated array", input: `["h1"`},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			checklist, err := grader.ParseChecklist([]byte(tt.input))

			require.Error(t, err)
			assert.Nil(t, checklist)
			assert.Equal(t, grader.EINVALID, grader.ErrorCode(err))
		})
	}
}

func TestReadChecklist(t *testing.T) {
	t.Parallel()

	checklist, err := grader.ReadChecklist(strings.NewReader(`["title", "head"]`))

	require.NoError(t, err)
	assert.Equal(t, grader.Checklist{"head", "title"}, checklist)
}
