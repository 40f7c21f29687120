// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"slices"

	"github.com/katalvlaran/flightpath/core"
)

// Reader streams records from one CSV dataset.
type Reader struct {
	src        io.Reader
	closer     io.Closer
	validators []RowValidator
	filters    []Filter
	used       bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithValidator appends v to the validator list. Validators run in the
// order they were added, after FieldValidator.
// Panics if v is nil.
func WithValidator(v RowValidator) Option {
	if v == nil {
		panic("ingest: WithValidator(nil)")
	}
	return func(r *Reader) {
		r.validators = append(r.validators, v)
	}
}

// WithFilter appends f to the filter list. Panics if f is nil.
func WithFilter(f Filter) Option {
	if f == nil {
		panic("ingest: WithFilter(nil)")
	}
	return func(r *Reader) {
		r.filters = append(r.filters, f)
	}
}

// Open opens the dataset at path. A missing file is reported as
// ErrFileNotFound; the caller must Close the returned Reader.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	r := NewReader(f, opts...)
	r.closer = f

	return r, nil
}

// NewReader wraps src. Close is a no-op for readers built this way.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		src:        src,
		validators: []RowValidator{NewFieldValidator()},
	}
	for _, fn := range opts {
		fn(r)
	}

	return r
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil

	return err
}

// Records returns the lazy record stream. The first error ends the stream.
// Rows rejected by a filter are skipped silently.
func (r *Reader) Records() iter.Seq2[core.Record, error] {
	return func(yield func(core.Record, error) bool) {
		if r.used {
			yield(core.Record{}, ErrConsumed)
			return
		}
		r.used = true

		cr := csv.NewReader(r.src)
		header, err := cr.Read()
		if err != nil || !slices.Equal(header, Columns) {
			yield(core.Record{}, &HeaderError{Got: header})
			return
		}

		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(core.Record{}, parseFailure(err))
				return
			}

			line, _ := cr.FieldPos(0)
			rec, err := r.convert(line, fields)
			if err != nil {
				yield(core.Record{}, err)
				return
			}
			if !r.keep(rec) {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// convert runs the validators over one row and converts it.
func (r *Reader) convert(line int, fields []string) (core.Record, error) {
	row := make(Row, len(Columns))
	for i, c := range Columns {
		row[c] = fields[i]
	}
	for _, v := range r.validators {
		if err := v.ValidateRow(line, row); err != nil {
			var re *RowError
			if errors.As(err, &re) {
				return core.Record{}, err
			}

			return core.Record{}, &RowError{Line: line, Reason: err.Error(), Err: err}
		}
	}

	return toRecord(line, row)
}

func (r *Reader) keep(rec core.Record) bool {
	for _, f := range r.filters {
		if !f.Keep(rec) {
			return false
		}
	}

	return true
}

// parseFailure turns a csv decoding error into a *RowError.
func parseFailure(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowError{Line: pe.StartLine, Reason: pe.Err.Error(), Err: err}
	}

	return &RowError{Reason: err.Error(), Err: err}
}

// Source opens a fresh Reader for every query.
type Source interface {
	Open(opts ...Option) (*Reader, error)
}

// File is a Source backed by a dataset path.
type File string

// Open calls Open(string(f), opts...).
func (f File) Open(opts ...Option) (*Reader, error) {
	return Open(string(f), opts...)
}

var _ Source = File("")
