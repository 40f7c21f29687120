// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/flightpath/core"
)

// mustTime parses a dataset timestamp or panics; fixtures are constants.
func mustTime(s string) time.Time {
	t, err := time.Parse(core.TimeLayout, s)
	if err != nil {
		panic(err)
	}

	return t
}

// rec builds a record with fixed prices; only the topology and times vary.
func rec(no, from, to, dep, arr string) core.Record {
	return core.Record{
		FlightNo:    no,
		Origin:      from,
		Destination: to,
		Departure:   mustTime(dep),
		Arrival:     mustTime(arr),
		BasePrice:   decimal.RequireFromString("50.5"),
		BagPrice:    decimal.NewFromInt(12),
		BagsAllowed: 2,
	}
}
