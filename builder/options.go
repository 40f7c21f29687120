// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless input; Build and
// the constructors themselves only return errors.

package builder

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Option customizes dataset generation.
type Option func(*builderConfig)

// WithIDScheme sets the airport code generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCarrier sets the flight number prefix. Panics on "".
func WithCarrier(code string) Option {
	if code == "" {
		panic("builder: WithCarrier(\"\")")
	}
	return func(c *builderConfig) {
		c.carrier = code
	}
}

// WithSchedule sets the departure of wave 0, the gap between waves and the
// duration of every leg. Panics unless spacing > 0 and leg > 0.
func WithSchedule(start time.Time, spacing, leg time.Duration) Option {
	if spacing <= 0 || leg <= 0 {
		panic("builder: WithSchedule(spacing<=0 || leg<=0)")
	}
	return func(c *builderConfig) {
		c.start, c.spacing, c.legDuration = start, spacing, leg
	}
}

// WithDays repeats the schedule on d consecutive days. Panics if d < 1.
func WithDays(d int) Option {
	if d < 1 {
		panic("builder: WithDays(d<1)")
	}
	return func(c *builderConfig) {
		c.days = d
	}
}

// WithPriceFn sets the base price generator. fn receives the configured
// RNG, which may be nil. Panics on nil.
func WithPriceFn(fn func(*rand.Rand) decimal.Decimal) Option {
	if fn == nil {
		panic("builder: WithPriceFn(nil)")
	}
	return func(c *builderConfig) {
		c.priceFn = fn
	}
}

// WithBags sets the bag price and the bag allowance of every flight.
// Panics if price is negative or allowed < 0.
func WithBags(price decimal.Decimal, allowed int) Option {
	if price.IsNegative() || allowed < 0 {
		panic("builder: WithBags(price<0 || allowed<0)")
	}
	return func(c *builderConfig) {
		c.bagPrice, c.bagsAllowed = price, allowed
	}
}

// ConstPrice always returns p.
func ConstPrice(p decimal.Decimal) func(*rand.Rand) decimal.Decimal {
	return func(*rand.Rand) decimal.Decimal { return p }
}

// UniformPrice draws whole prices from [lo, hi]. Without an RNG it returns lo.
// Panics unless 0 <= lo <= hi.
func UniformPrice(lo, hi int64) func(*rand.Rand) decimal.Decimal {
	if lo < 0 || lo > hi {
		panic("builder: UniformPrice(lo<0 || lo>hi)")
	}
	return func(r *rand.Rand) decimal.Decimal {
		if r == nil {
			return decimal.NewFromInt(lo)
		}
		return decimal.NewFromInt(lo + r.Int63n(hi-lo+1))
	}
}
