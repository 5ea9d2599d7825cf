// Package curate provides the record model shared by the dataset
// pipelines: reading JSONL rows into typed records, validating them
// against a schema, and persisting named record sets.
//
// This package knows nothing about splitting or reporting. The split
// and stats packages consume curate.Record and never mutate it.
package curate

import (
	"encoding/json"
	"strings"
)

// Record is one JSONL row. Fields holds the decoded object with numbers
// kept as json.Number; raw holds the compacted source bytes so that the
// row can be written back exactly as it was read.
type Record struct {
	ID     string         `json:"id"`
	Line   int            `json:"line"`
	Fields map[string]any `json:"fields"`

	raw json.RawMessage
}

// Get retrieves a field value. Returns nil and false if absent.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// String returns the field value if it is present and a JSON string.
func (r Record) String(name string) (string, bool) {
	s, ok := r.Fields[name].(string)
	return s, ok
}

// Label returns the string form of the named field for grouping.
// The boolean is false only when the field is absent.
func (r Record) Label(field string) (string, bool) {
	v, ok := r.Fields[field]
	if !ok {
		return "", false
	}
	return LabelString(v), true
}

// Raw returns the compact JSON encoding of the record.
func (r Record) Raw() json.RawMessage {
	return r.raw
}

// LabelString coerces a decoded JSON value to a label key. Strings are
// used verbatim; everything else uses its compact JSON text.
func LabelString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return "null"
	}
	b, err := marshalNoEscape(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func marshalNoEscape(v any) ([]byte, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(sb.String(), "\n")), nil
}

// Dataset is a named collection of records.
type Dataset struct {
	Name    string   `json:"name"`
	Records []Record `json:"records"`
}
