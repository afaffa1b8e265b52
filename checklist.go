package grader

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"
)

// Checklist is the sorted list of selectors a document is graded against.
// Duplicates are kept; they evaluate to the same result.
type Checklist []string

// ParseChecklist decodes a JSON array of selector strings and returns it
// sorted in ascending string order.
// Returns EINVALID if data is not a JSON array of strings.
func ParseChecklist(data []byte) (Checklist, error) {
	// Pointers tell a null element apart from an empty string.
	var elems []*string
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, Errorf(EINVALID, "invalid checklist: %v", err)
	}

	// json.Unmarshal accepts a bare null for a slice
	if elems == nil {
		return nil, Errorf(EINVALID, "invalid checklist: expected a JSON array of strings, got %s", bytes.TrimSpace(data))
	}

	selectors := make(Checklist, 0, len(elems))
	for i, elem := range elems {
		if elem == nil {
			return nil, Errorf(EINVALID, "invalid checklist: element %d is null, expected a string", i)
		}
		selectors = append(selectors, *elem)
	}

	slices.Sort(selectors)
	return selectors, nil
}

// ReadChecklist reads all of r and parses it with ParseChecklist.
func ReadChecklist(r io.Reader) (Checklist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseChecklist(data)
}
