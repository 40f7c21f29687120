// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
)

// Build consumes records fully and returns the populated graph.
//
// Records are trusted: validation and filtering belong upstream. The only
// error Build reports is the first one yielded by the sequence itself,
// returned unchanged (wrapped with %w) so callers can still match the
// ingestion error kinds with errors.Is / errors.As.
//
// Complexity: O(N) for N records.
func Build(records iter.Seq2[Record, error]) (*Graph, error) {
	g := NewGraph()
	for rec, err := range records {
		if err != nil {
			return nil, fmt.Errorf("core: build graph: %w", err)
		}
		if err = g.AddFlight(NewFlight(rec)); err != nil {
			return nil, fmt.Errorf("core: build graph: flight %q: %w", rec.FlightNo, err)
		}
	}

	return g, nil
}

// Records adapts a slice of records to the sequence shape Build expects.
func Records(recs []Record) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for _, rec := range recs {
			if !yield(rec, nil) {
				return
			}
		}
	}
}
