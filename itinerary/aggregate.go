package itinerary

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/flightpath/route"
)

// Aggregate builds one Itinerary per path and sorts the result by total
// price. The sort is stable: equal prices keep the order of paths.
func Aggregate(paths []route.Path, bags int, origin, destination string) ([]Itinerary, error) {
	its := make([]Itinerary, 0, len(paths))
	for i, p := range paths {
		it, err := New(p, bags, origin, destination)
		if err != nil {
			return nil, fmt.Errorf("itinerary: path %d: %w", i, err)
		}
		its = append(its, it)
	}
	slices.SortStableFunc(its, ByTotalPrice)

	return its, nil
}
