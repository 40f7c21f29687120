package core_test

import (
	"fmt"

	"github.com/katalvlaran/flightpath/core"
)

// ExampleBuild builds a tiny graph and lists departures per airport.
//
//	WIW ──► RFZ ──► ECV
//	 └──────────────►┘
func ExampleBuild() {
	g, err := core.Build(core.Records([]core.Record{
		rec("ZH214", "WIW", "RFZ", "2021-09-01T23:20:00", "2021-09-02T03:50:00"),
		rec("ZH665", "RFZ", "ECV", "2021-09-02T05:05:00", "2021-09-02T06:45:00"),
		rec("ZH151", "WIW", "ECV", "2021-09-01T07:25:00", "2021-09-01T12:35:00"),
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range g.Airports() {
		for _, f := range g.Flights(id) {
			fmt.Printf("%s %s→%s\n", f.FlightNo, f.Origin, f.Destination)
		}
	}

	// Output:
	// ZH665 RFZ→ECV
	// ZH214 WIW→RFZ
	// ZH151 WIW→ECV
}
