// Package fs provides file-based input and output for grading runs.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/grader"
)

// DefaultResultsPath is where results are written when no path is given.
const DefaultResultsPath = "results.txt"

// Ensure ResultFile implements grader.ResultWriter at compile time.
var _ grader.ResultWriter = (*ResultFile)(nil)

// ResultFile writes serialized reports to a single file.
// Each write replaces the previous contents. Data is written to path.tmp
// first and renamed into place, so readers never see a partial file.
type ResultFile struct {
	path string
}

// NewResultFile creates a ResultFile writing to path.
func NewResultFile(path string) *ResultFile {
	if path == "" {
		path = DefaultResultsPath
	}
	return &ResultFile{path: path}
}

// Path returns the file the results are written to.
func (f *ResultFile) Path() string {
	return f.path
}

func (f *ResultFile) tempPath() string {
	return f.path + ".tmp"
}

// WriteResults replaces the contents of the results file with data.
func (f *ResultFile) WriteResults(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(f.tempPath(), data, 0644); err != nil {
		return err
	}

	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}

	return nil
}
