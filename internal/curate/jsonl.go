package curate

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// previewLen caps how much of a malformed line is quoted in a SyntaxError.
const previewLen = 120

// SyntaxError reports a line that is not a single JSON object.
type SyntaxError struct {
	Source  string
	Line    int
	Preview string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: invalid JSON on line: %s...: %v", e.Source, e.Line, e.Preview, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

var errNotObject = errors.New("not a JSON object")

// ReadFile reads every record from a JSONL file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curate: open %q: %w", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses one JSON object per line. Blank lines are skipped; the first
// malformed line aborts the read with a *SyntaxError. source names the
// input in record IDs and errors.
func Read(r io.Reader, source string) ([]Record, error) {
	var records []Record
	br := bufio.NewReader(r)
	ln := 0
	for {
		line, readErr := br.ReadBytes('\n')
		if len(line) > 0 {
			ln++
			trimmed := bytes.TrimSpace(line)
			if len(trimmed) > 0 {
				rec, err := parseLine(trimmed, source, ln)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("curate: read %s: %w", source, readErr)
		}
	}
	return records, nil
}

func parseLine(line []byte, source string, ln int) (Record, error) {
	fail := func(err error) (Record, error) {
		return Record{}, &SyntaxError{Source: source, Line: ln, Preview: preview(line), Err: err}
	}
	if line[0] != '{' {
		return fail(errNotObject)
	}

	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fail(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fail(errors.New("trailing data after object"))
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, line); err != nil {
		return fail(err)
	}
	return Record{
		ID:     fmt.Sprintf("%s:%d", source, ln),
		Line:   ln,
		Fields: fields,
		raw:    buf.Bytes(),
	}, nil
}

func preview(line []byte) string {
	r := []rune(string(line))
	if len(r) > previewLen {
		r = r[:previewLen]
	}
	return string(r)
}

// Write emits records one per line in their raw form. Non-ASCII text is
// written literally.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		raw := rec.raw
		if raw == nil {
			b, err := marshalNoEscape(rec.Fields)
			if err != nil {
				return fmt.Errorf("curate: marshal %s: %w", rec.ID, err)
			}
			raw = b
		}
		if _, err := bw.Write(raw); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
