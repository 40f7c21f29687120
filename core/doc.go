// Package core defines the Flight entity and the route Graph: an
// adjacency list of flights keyed by departure airport.
//
// The Graph G = (V,E) is a directed multigraph:
//
//   - V is the set of airport codes seen as an origin or a destination.
//   - E is the set of flights; every flight is stored exactly once, in the
//     bucket of its own origin airport.
//   - Parallel flights between the same airports are normal (different
//     times or prices), so multi-edges are always allowed.
//   - Buckets keep insertion order, so every traversal that walks
//     Flights(airport) is deterministic for a given input stream.
//
// Construction:
//
//	g := core.NewGraph()
//	_ = g.AddFlight(core.NewFlight(rec))
//
// or, from a (possibly lazy) stream of already-validated records:
//
//	g, err := core.Build(reader.Records())
//
// Build does not validate records. It only propagates the first error
// produced by the upstream sequence, which belongs to the ingestion
// layer (see package ingest).
//
// Concurrency:
//
// A single sync.RWMutex guards the adjacency buckets, so AddFlight and the
// read queries may be called from several goroutines. Flights themselves
// are immutable after NewFlight and may be shared freely.
//
// Errors:
//
//	ErrNilFlight        - flight pointer is nil.
//	ErrEmptyAirportCode - origin or destination is the empty string.
package core
