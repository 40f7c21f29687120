// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors never mutate it.
type builderConfig struct {
	idFn    IDFn       // airport index → code
	rng     *rand.Rand // nil means no randomness
	carrier string     // flight number prefix

	start       time.Time     // departure of wave 0
	spacing     time.Duration // gap between waves
	legDuration time.Duration // departure → arrival
	days        int           // schedule repetitions

	priceFn     func(*rand.Rand) decimal.Decimal
	bagPrice    decimal.Decimal
	bagsAllowed int
}

const (
	defaultCarrier     = "FP"
	defaultSpacing     = 3 * time.Hour
	defaultLegDuration = 2 * time.Hour
	defaultDays        = 1
	defaultBasePrice   = 100
	defaultBagPrice    = 10
	defaultBagsAllowed = 2
)

// defaultStart is 2021-09-01T06:00:00 UTC.
var defaultStart = time.Date(2021, 9, 1, 6, 0, 0, 0, time.UTC)

// newBuilderConfig applies opts over deterministic defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:        AirportCode,
		carrier:     defaultCarrier,
		start:       defaultStart,
		spacing:     defaultSpacing,
		legDuration: defaultLegDuration,
		days:        defaultDays,
		priceFn:     ConstPrice(decimal.NewFromInt(defaultBasePrice)),
		bagPrice:    decimal.NewFromInt(defaultBagPrice),
		bagsAllowed: defaultBagsAllowed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
