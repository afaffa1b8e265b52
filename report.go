package grader

import (
	"bytes"
	"encoding/json"
)

// Report maps each checked selector to whether it was found.
// Keys keep the order in which they were first set.
type Report struct {
	keys    []string
	present map[string]bool
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{present: make(map[string]bool)}
}

// Set records the result for selector. Setting an existing selector
// replaces its value without changing its position.
func (r *Report) Set(selector string, present bool) {
	if r.present == nil {
		r.present = make(map[string]bool)
	}
	if _, ok := r.present[selector]; !ok {
		r.keys = append(r.keys, selector)
	}
	r.present[selector] = present
}

// Get returns the result for selector and whether it was checked at all.
func (r *Report) Get(selector string) (present, ok bool) {
	present, ok = r.present[selector]
	return present, ok
}

// Selectors returns the checked selectors in report order.
func (r *Report) Selectors() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of distinct selectors in the report.
func (r *Report) Len() int {
	return len(r.keys)
}

// Passed reports whether every selector was found.
func (r *Report) Passed() bool {
	for _, k := range r.keys {
		if !r.present[k] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the report as a JSON object with keys in report order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if r.present[k] {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of booleans, keeping key order.
// A JSON null leaves the report unchanged.
func (r *Report) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return Errorf(EINVALID, "invalid report: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Errorf(EINVALID, "invalid report: expected a JSON object")
	}

	out := NewReport()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Errorf(EINVALID, "invalid report: %v", err)
		}
		key := tok.(string)

		var present bool
		if err := dec.Decode(&present); err != nil {
			return Errorf(EINVALID, "invalid report value for %q: %v", key, err)
		}
		out.Set(key, present)
	}
	if _, err := dec.Token(); err != nil {
		return Errorf(EINVALID, "invalid report: %v", err)
	}

	*r = *out
	return nil
}

// marshalString encodes s as a JSON string without HTML escaping, so
// selectors such as "div > p" stay readable.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Serialize encodes the report as indented JSON with keys in report order.
// Equal reports always produce identical bytes.
func Serialize(r *Report) ([]byte, error) {
	compact, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "    "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Evaluate checks every selector of checklist against doc, in checklist
// order, and records whether at least one element matched.
// Evaluation stops at the first selector the document rejects; no partial
// report is returned.
func Evaluate(doc Document, checklist Checklist) (*Report, error) {
	if doc == nil {
		return nil, Errorf(EINVALID, "document required")
	}

	report := NewReport()
	for _, selector := range checklist {
		n, err := doc.Count(selector)
		if err != nil {
			if ErrorCode(err) == ESELECTOR {
				return nil, err
			}
			return nil, Errorf(ESELECTOR, "selector %q: %v", selector, err)
		}
		report.Set(selector, n > 0)
	}
	return report, nil
}
