package route

import (
	"time"

	"github.com/katalvlaran/flightpath/core"
)

// FindReverse returns round trips origin → destination → origin.
//
// Outbound paths come from Find(origin, destination, start). For each of
// them a second, independent Find(destination, origin, arrival) runs with
// the outbound arrival as the new start bound. Every outbound/return pair
// yields one combined path (outbound legs, then return legs). The layover
// rule is not applied across the seam: a return leg departing at the very
// minute the outbound lands is accepted.
//
// Outbound paths with no return path contribute nothing. Options apply to
// both halves.
func FindReverse(g *core.Graph, origin, destination string, start time.Time, opts ...Option) ([]Path, error) {
	outbound, err := Find(g, origin, destination, start, opts...)
	if err != nil {
		return nil, err
	}

	var trips []Path
	for _, out := range outbound {
		back, err := Find(g, destination, origin, out.Arrival(), opts...)
		if err != nil {
			return nil, err
		}
		for _, ret := range back {
			trips = append(trips, out.Concat(ret))
		}
	}

	return trips, nil
}
