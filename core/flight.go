// SPDX-License-Identifier: MIT

package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewFlight builds an immutable Flight from a validated record.
func NewFlight(rec Record) *Flight {
	return &Flight{
		FlightNo:    rec.FlightNo,
		Origin:      rec.Origin,
		Destination: rec.Destination,
		Departure:   rec.Departure,
		Arrival:     rec.Arrival,
		BasePrice:   rec.BasePrice,
		BagPrice:    rec.BagPrice,
		BagsAllowed: rec.BagsAllowed,
	}
}

// FullPrice returns the price of this leg for the given number of bags:
// BasePrice + bags × BagPrice.
func (f *Flight) FullPrice(bags int) decimal.Decimal {
	return f.BasePrice.Add(f.BagPrice.Mul(decimal.NewFromInt(int64(bags))))
}

// TravelTime is the time spent in the air on this leg.
func (f *Flight) TravelTime() time.Duration {
	return f.Arrival.Sub(f.Departure)
}
