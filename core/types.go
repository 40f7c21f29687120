// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the textual layout of departure and arrival timestamps in
// flight datasets and in serialized itineraries.
const TimeLayout = "2006-01-02T15:04:05"

// Sentinel errors for core graph operations.
var (
	// ErrNilFlight indicates that a nil *Flight was passed to AddFlight.
	ErrNilFlight = errors.New("core: flight is nil")

	// ErrEmptyAirportCode indicates a flight without an origin or destination code.
	ErrEmptyAirportCode = errors.New("core: airport code is empty")
)

// Record is one validated row of a flight dataset, already converted to
// typed values. It is the only shape the graph builder consumes.
type Record struct {
	FlightNo    string
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	BasePrice   decimal.Decimal
	BagPrice    decimal.Decimal
	BagsAllowed int
}

// Flight is one priced, timed leg between two airports.
//
// A Flight is created once per record while the graph is built and is
// never mutated afterwards. Departure is expected to precede Arrival; this
// is not enforced here.
type Flight struct {
	// FlightNo identifies the flight in the dataset.
	FlightNo string

	// Origin is the departure airport code.
	Origin string

	// Destination is the arrival airport code.
	Destination string

	// Departure and Arrival are the leg's timestamps.
	Departure time.Time
	Arrival   time.Time

	// BasePrice is the ticket price without bags.
	BasePrice decimal.Decimal

	// BagPrice is the price of one checked bag.
	BagPrice decimal.Decimal

	// BagsAllowed is the maximum number of bags this flight accepts.
	BagsAllowed int
}

// Graph maps each departure airport to the flights leaving it.
//
// buckets[origin] keeps flights in insertion order; airports also lists
// destination-only codes so that Airports() reports the full vertex set.
type Graph struct {
	mu sync.RWMutex // guards buckets, airports and flightCount

	buckets     map[string][]*Flight // origin → departing flights
	airports    map[string]struct{}  // every code seen as origin or destination
	flightCount int
}

// GraphStats is a read-only snapshot of graph size.
type GraphStats struct {
	AirportCount int // vertices
	FlightCount  int // edges
	OriginCount  int // airports with at least one departing flight
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		buckets:  make(map[string][]*Flight),
		airports: make(map[string]struct{}),
	}
}
