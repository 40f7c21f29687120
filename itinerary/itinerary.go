// SPDX-License-Identifier: MIT

// Package itinerary turns raw route paths into priced itineraries, orders
// them by total price and serializes them.
//
// Derived fields are computed once, in New, from the flight sequence and
// the requested bag count:
//
//	BagsAllowed = min(leg.BagsAllowed)
//	TotalPrice  = Σ (leg.BasePrice + bags × leg.BagPrice)
//	TravelTime  = last.Arrival − first.Departure
//
// Prices are decimals, so TotalPrice is exact for any bag count.
package itinerary

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/flightpath/core"
)

// ErrEmptyPath indicates an attempt to build an itinerary without legs.
var ErrEmptyPath = errors.New("itinerary: path has no flights")

// Itinerary is one priced origin → destination journey, possibly followed
// by its return legs. Field order is the serialized order.
type Itinerary struct {
	Flights     []*core.Flight
	BagsAllowed int
	BagsCount   int
	Destination string
	Origin      string
	TotalPrice  decimal.Decimal
	TravelTime  time.Duration
}

// New builds an Itinerary and computes its derived fields.
// origin and destination are the query airports, recorded as given.
func New(flights []*core.Flight, bags int, origin, destination string) (Itinerary, error) {
	if len(flights) == 0 {
		return Itinerary{}, ErrEmptyPath
	}

	allowed := flights[0].BagsAllowed
	total := decimal.Zero
	for _, f := range flights {
		allowed = min(allowed, f.BagsAllowed)
		total = total.Add(f.FullPrice(bags))
	}

	return Itinerary{
		Flights:     flights,
		BagsAllowed: allowed,
		BagsCount:   bags,
		Destination: destination,
		Origin:      origin,
		TotalPrice:  total,
		TravelTime:  flights[len(flights)-1].Arrival.Sub(flights[0].Departure),
	}, nil
}

// ByTotalPrice orders itineraries by ascending total price.
// It has no secondary key: use it with a stable sort.
func ByTotalPrice(a, b Itinerary) int {
	return a.TotalPrice.Cmp(b.TotalPrice)
}
