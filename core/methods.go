// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Flight insertion and read-only queries over the adjacency buckets.
// Determinism:
//   - Flights(id) returns flights in insertion order.
//   - Airports() returns codes sorted ascending.
// Concurrency:
//   - AddFlight under write lock, queries under read lock.

package core

import (
	"slices"
)

// AddFlight appends f to the bucket of its origin airport, creating the
// bucket on first use.
//
// Adding the same flight twice stores it twice; the graph does not
// deduplicate.
//
// Complexity: O(1) amortized.
func (g *Graph) AddFlight(f *Flight) error {
	if f == nil {
		return ErrNilFlight
	}
	if f.Origin == "" || f.Destination == "" {
		return ErrEmptyAirportCode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.buckets[f.Origin] = append(g.buckets[f.Origin], f)
	g.airports[f.Origin] = struct{}{}
	g.airports[f.Destination] = struct{}{}
	g.flightCount++

	return nil
}

// Flights returns the flights departing from airport id, in insertion
// order. Unknown airports yield an empty slice.
//
// The returned slice is a copy; the *Flight values are shared.
// Complexity: O(d) where d is the number of departures from id.
func (g *Graph) Flights(id string) []*Flight {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.buckets[id])
}

// Departures is the zero-copy variant of Flights for traversal code.
// The returned slice is the live bucket and must be treated as read-only.
func (g *Graph) Departures(id string) []*Flight {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.buckets[id]
}

// HasAirport reports whether id appears as an origin or destination.
func (g *Graph) HasAirport(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.airports[id]

	return ok
}

// Airports returns every known airport code, sorted.
// Complexity: O(V log V).
func (g *Graph) Airports() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.airports))
	for id := range g.airports {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// FlightCount returns the number of stored flights.
func (g *Graph) FlightCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.flightCount
}

// AirportCount returns the number of known airports.
func (g *Graph) AirportCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.airports)
}

// Stats returns a snapshot of the graph size.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		AirportCount: len(g.airports),
		FlightCount:  g.flightCount,
		OriginCount:  len(g.buckets),
	}
}
