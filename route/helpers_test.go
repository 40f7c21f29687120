package route_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/route"
)

// leg describes one fixture flight; times use core.TimeLayout.
type leg struct {
	no, from, to string
	dep, arr     string
}

func mustTime(s string) time.Time {
	t, err := time.Parse(core.TimeLayout, s)
	if err != nil {
		panic(err)
	}

	return t
}

// buildGraph inserts legs in order; prices are irrelevant to routing.
func buildGraph(legs ...leg) *core.Graph {
	g := core.NewGraph()
	for _, l := range legs {
		_ = g.AddFlight(core.NewFlight(core.Record{
			FlightNo:    l.no,
			Origin:      l.from,
			Destination: l.to,
			Departure:   mustTime(l.dep),
			Arrival:     mustTime(l.arr),
			BasePrice:   decimal.NewFromInt(100),
			BagPrice:    decimal.NewFromInt(10),
			BagsAllowed: 1,
		}))
	}

	return g
}

// flightNos flattens paths to their flight numbers for compact assertions.
func flightNos(paths []route.Path) [][]string {
	out := make([][]string, 0, len(paths))
	for _, p := range paths {
		nos := make([]string, 0, len(p))
		for _, f := range p {
			nos = append(nos, f.FlightNo)
		}
		out = append(out, nos)
	}

	return out
}

// day0 is the start bound used by most tests.
var day0 = mustTime("2021-09-01T00:00:00")

// abc is the two-leg fixture: A→B lands 10:00, B→C leaves 14:00 (4h gap).
var abc = []leg{
	{"AB1", "A", "B", "2021-09-02T08:00:00", "2021-09-02T10:00:00"},
	{"BC1", "B", "C", "2021-09-02T14:00:00", "2021-09-02T16:00:00"},
}
