package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the preprocessing pipeline.
var (
	ErrMissingColumn  = errors.New("missing column")
	ErrSourceNotFound = errors.New("source not found")
	ErrEmptySource    = errors.New("empty source")
	ErrTransform      = errors.New("transform failure")
)

// MissingColumnError reports a required column absent from a dataset header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// Is makes errors.Is(err, ErrMissingColumn) hold.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// TransformError tags a normalization or encoding failure with the value
// that caused it. Row is -1 when the failure is not tied to a dataset row.
type TransformError struct {
	Row    int
	Column string
	Input  string
	Err    error
}

func (e *TransformError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("transform %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("transform row %d column %q (%q): %v", e.Row, e.Column, e.Input, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransform) hold.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}
