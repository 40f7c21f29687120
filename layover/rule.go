// SPDX-License-Identifier: MIT

// Package layover decides whether the gap between two consecutive legs of
// a route is acceptable.
//
// A Rule is consulted for every pair (prev, next) where
// prev.Destination == next.Origin while a route is being extended. The
// default policy, Window, accepts a connection iff
//
//	Min <= next.Departure - prev.Arrival <= Max
//
// with both bounds inclusive. A negative gap (next leaves before prev
// lands) is always below Min and therefore rejected.
//
// Open accepts every pair; route searches use it when no rule is given.
package layover

import (
	"time"

	"github.com/katalvlaran/flightpath/core"
)

// Rule is a pure predicate over two adjacent flights.
type Rule interface {
	Validate(prev, next *core.Flight) bool
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(prev, next *core.Flight) bool

// Validate calls fn(prev, next).
func (fn RuleFunc) Validate(prev, next *core.Flight) bool {
	return fn(prev, next)
}

// Open accepts every connection.
var Open Rule = RuleFunc(func(_, _ *core.Flight) bool { return true })

// Window accepts connections whose ground time lies in [Min, Max].
type Window struct {
	Min time.Duration
	Max time.Duration
}

// NewWindow returns a Window with bounds given in whole hours.
// Bounds are used as given; Min > Max yields a rule that rejects everything.
func NewWindow(minHours, maxHours int) Window {
	return Window{
		Min: time.Duration(minHours) * time.Hour,
		Max: time.Duration(maxHours) * time.Hour,
	}
}

// Validate reports whether Min <= next.Departure - prev.Arrival <= Max.
func (w Window) Validate(prev, next *core.Flight) bool {
	gap := Gap(prev, next)

	return w.Min <= gap && gap <= w.Max
}

// Gap is the ground time between prev landing and next taking off.
func Gap(prev, next *core.Flight) time.Duration {
	return next.Departure.Sub(prev.Arrival)
}
