package ingest

import (
	"time"

	"github.com/katalvlaran/flightpath/core"
)

// Filter decides whether a converted record enters the graph.
type Filter interface {
	Keep(rec core.Record) bool
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(rec core.Record) bool

// Keep calls fn(rec).
func (fn FilterFunc) Keep(rec core.Record) bool {
	return fn(rec)
}

// BagFilter keeps flights that accept at least bags checked bags.
func BagFilter(bags int) Filter {
	return FilterFunc(func(rec core.Record) bool {
		return rec.BagsAllowed >= bags
	})
}

// StartDateFilter keeps flights departing at or after start.
func StartDateFilter(start time.Time) Filter {
	return FilterFunc(func(rec core.Record) bool {
		return !rec.Departure.Before(start)
	})
}
