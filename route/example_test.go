package route_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flightpath/layover"
	"github.com/katalvlaran/flightpath/route"
)

// ExampleFind lists connections A → C with a 1–6 hour layover window.
//
//	A ──08:00–10:00──► B ──14:00–16:00──► C
//	A ──09:00–17:00──────────────────────► C
func ExampleFind() {
	g := buildGraph(
		leg{"AB1", "A", "B", "2021-09-02T08:00:00", "2021-09-02T10:00:00"},
		leg{"AC1", "A", "C", "2021-09-02T09:00:00", "2021-09-02T17:00:00"},
		leg{"BC1", "B", "C", "2021-09-02T14:00:00", "2021-09-02T16:00:00"},
	)

	paths, err := route.Find(g, "A", "C", day0, route.WithLayoverRule(layover.NewWindow(1, 6)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(strings.Join(p.Airports(), " → "))
	}

	// Output:
	// A → B → C
	// A → C
}

// ExampleFindReverse combines the outbound path with a return flight that
// leaves as soon as the traveler lands.
func ExampleFindReverse() {
	g := buildGraph(
		leg{"AB1", "A", "B", "2021-09-02T08:00:00", "2021-09-02T10:00:00"},
		leg{"BA1", "B", "A", "2021-09-02T10:00:00", "2021-09-02T12:00:00"},
	)

	trips, err := route.FindReverse(g, "A", "B", day0, route.WithLayoverRule(layover.NewWindow(1, 6)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range trips {
		fmt.Println(len(p), "legs, back at", p.Arrival().Format("15:04"))
	}

	// Output:
	// 2 legs, back at 12:00
}
