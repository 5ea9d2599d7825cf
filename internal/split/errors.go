package split

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRatios is returned when ratios are negative or sum to zero or less.
	ErrInvalidRatios = errors.New("split: train+dev+test must be > 0")

	// ErrEmptyInput is returned when there are no records to split.
	ErrEmptyInput = errors.New("split: input is empty")

	// ErrMissingField is returned when a record has no label field.
	ErrMissingField = errors.New("split: missing label field")
)

// MissingFieldError identifies the record that lacks the label field.
type MissingFieldError struct {
	Field    string
	RecordID string
	Raw      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("split: missing label field %q in %s: %s", e.Field, e.RecordID, e.Raw)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }
