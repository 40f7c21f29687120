// Package route defines types and options for route enumeration,
// including cancellation, layover policy, leg limits and diagnostics.
package route

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/layover"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Find or
	// FindReverse.
	ErrGraphNil = errors.New("route: graph is nil")
)

// Path is an ordered, non-empty sequence of connected legs.
type Path []*core.Flight

// Departure returns the departure time of the first leg.
func (p Path) Departure() time.Time {
	return p[0].Departure
}

// Arrival returns the arrival time of the last leg.
func (p Path) Arrival() time.Time {
	return p[len(p)-1].Arrival
}

// Airports lists the airports along the path: the first origin followed by
// every leg's destination.
func (p Path) Airports() []string {
	if len(p) == 0 {
		return nil
	}
	ids := make([]string, 0, len(p)+1)
	ids = append(ids, p[0].Origin)
	for _, f := range p {
		ids = append(ids, f.Destination)
	}

	return ids
}

// Concat returns a new path made of p followed by q.
func (p Path) Concat(q Path) Path {
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)

	return append(out, q...)
}

// Option configures optional behavior of Find and FindReverse.
type Option func(*Options)

// Options holds configurable parameters for a route search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Rule is consulted for every connection; defaults to layover.Open.
	Rule layover.Rule

	// MaxLegs, if positive, limits the number of legs per path.
	// Default is -1 (no limit).
	MaxLegs int

	// Stats, if non-nil, accumulates diagnostics.
	Stats *Stats
}

// Stats reports how much work a search did. Counters accumulate across
// calls that share the same *Stats.
type Stats struct {
	// Expanded counts legs pushed onto the path prefix.
	Expanded int

	// RejectedLayovers counts connections refused by the layover rule.
	RejectedLayovers int

	// RevisitsAvoided counts connections skipped because their destination
	// was already on the path.
	RevisitsAvoided int

	// Paths counts complete paths recorded.
	Paths int
}

// DefaultOptions returns Options with:
//   - Background context
//   - layover.Open
//   - No leg limit (MaxLegs = -1)
//   - No diagnostics
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Rule:    layover.Open,
		MaxLegs: -1,
		Stats:   nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLayoverRule installs the connection policy. A nil rule keeps
// layover.Open, so every connection is accepted.
func WithLayoverRule(rule layover.Rule) Option {
	return func(o *Options) {
		if rule != nil {
			o.Rule = rule
		}
	}
}

// WithMaxLegs limits paths to at most n legs. Panics if n < 1.
func WithMaxLegs(n int) Option {
	if n < 1 {
		panic("route: WithMaxLegs(n < 1)")
	}
	return func(o *Options) {
		o.MaxLegs = n
	}
}

// WithStats collects search diagnostics into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
