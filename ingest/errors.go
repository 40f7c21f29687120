// SPDX-License-Identifier: MIT
//
// errors.go: sentinel and typed errors for the ingest package.
//
// Callers branch with errors.Is on the sentinels and errors.As on the
// typed errors when they need the offending line or field.

package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFileNotFound indicates that the dataset path does not exist.
	ErrFileNotFound = errors.New("ingest: file not found")

	// ErrHeaderShape indicates a header row different from Columns.
	ErrHeaderShape = errors.New("ingest: incorrect CSV headers")

	// ErrRowValue indicates a data row with a malformed value.
	ErrRowValue = errors.New("ingest: wrong value in CSV file")

	// ErrConsumed indicates a second pass over a Reader's records.
	ErrConsumed = errors.New("ingest: records already consumed")
)

// HeaderError reports the header that was found instead of Columns.
type HeaderError struct {
	Got []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: the following headers are expected: %s",
		ErrHeaderShape, strings.Join(Columns, ", "))
}

func (e *HeaderError) Unwrap() error { return ErrHeaderShape }

// RowError reports the first invalid value of a data row.
type RowError struct {
	// Line is the 1-based line number in the file (the header is line 1).
	Line int

	// Field is the column name; empty when the row shape itself is wrong.
	Field string

	// Reason is a short human-readable explanation.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s at row [%d]: %s", ErrRowValue, e.Line, e.Reason)
	}

	return fmt.Sprintf("%s at row [%d]: %s %s", ErrRowValue, e.Line, e.Field, e.Reason)
}

func (e *RowError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRowValue}
	}

	return []error{ErrRowValue, e.Err}
}
