// Package route implements the constrained depth-first route search.
package route

import (
	"time"

	"github.com/katalvlaran/flightpath/core"
)

// walker encapsulates state during one Find call.
type walker struct {
	graph       *core.Graph
	opts        Options
	stats       *Stats
	destination string

	visited map[string]bool // airports on the current prefix
	prefix  Path            // legs taken so far
	paths   []Path          // complete paths, in discovery order
}

// Find returns every simple path from origin to destination whose first
// leg departs at or after start and whose connections satisfy the
// installed layover rule.
//
// Paths are reported in discovery order: departures of origin in bucket
// order, each explored depth-first. The result is empty (not an error)
// for unknown airports, unreachable destinations, or origin == destination.
func Find(g *core.Graph, origin, destination string, start time.Time, opts ...Option) ([]Path, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		graph:       g,
		opts:        o,
		stats:       o.Stats,
		destination: destination,
		visited:     make(map[string]bool),
	}
	if w.stats == nil {
		w.stats = &Stats{}
	}

	// 3. One traversal per eligible first leg, each with fresh state
	for _, f := range g.Departures(origin) {
		if f.Departure.Before(start) {
			continue
		}
		// A leg back into the origin can never start a simple path.
		if f.Destination == f.Origin {
			continue
		}
		clear(w.visited)
		w.visited[f.Origin] = true
		if err := w.explore(f); err != nil {
			return nil, err
		}
	}

	return w.paths, nil
}

// explore pushes f onto the prefix and extends it depth-first.
// The visited marker for f.Destination is released on return.
func (w *walker) explore(f *core.Flight) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push
	w.visited[f.Destination] = true
	w.prefix = append(w.prefix, f)
	w.stats.Expanded++
	defer func() {
		w.prefix = w.prefix[:len(w.prefix)-1]
		delete(w.visited, f.Destination)
	}()

	// 3. Destination reached: record a copy, never expand past it
	if f.Destination == w.destination {
		w.paths = append(w.paths, append(Path(nil), w.prefix...))
		w.stats.Paths++

		return nil
	}

	// 4. Leg limit
	if w.opts.MaxLegs > 0 && len(w.prefix) >= w.opts.MaxLegs {
		return nil
	}

	// 5. Try every departure from here
	for _, next := range w.graph.Departures(f.Destination) {
		if w.visited[next.Destination] {
			w.stats.RevisitsAvoided++
			continue
		}
		if !w.opts.Rule.Validate(f, next) {
			w.stats.RejectedLayovers++
			continue
		}
		if err := w.explore(next); err != nil {
			return err
		}
	}

	return nil
}
