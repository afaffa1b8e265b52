package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/grader"
)

// RequireFile returns ENOTFOUND unless path names an existing regular file.
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return grader.Errorf(grader.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return err
	}

	if info.IsDir() {
		return grader.Errorf(grader.EINVALID, "%s is a directory", path)
	}
	return nil
}

// ReadChecklist loads and sorts the checklist stored at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not a
// JSON array of strings.
func ReadChecklist(path string) (grader.Checklist, error) {
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, grader.Errorf(grader.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	checklist, err := grader.ReadChecklist(f)
	if grader.ErrorCode(err) == grader.EINVALID {
		return nil, grader.Errorf(grader.EINVALID, "%s: %s", path, grader.ErrorMessage(err))
	} else if err != nil {
		return nil, err
	}
	return checklist, nil
}
