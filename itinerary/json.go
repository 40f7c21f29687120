package itinerary

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/flightpath/core"
)

// flightJSON is the wire shape of one leg.
type flightJSON struct {
	FlightNo    string      `json:"flight_no"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Departure   string      `json:"departure"`
	Arrival     string      `json:"arrival"`
	BasePrice   json.Number `json:"base_price"`
	BagPrice    json.Number `json:"bag_price"`
	BagsAllowed int         `json:"bags_allowed"`
}

// itineraryJSON fixes the field order of a serialized Itinerary.
type itineraryJSON struct {
	Flights     []flightJSON `json:"flights"`
	BagsAllowed int          `json:"bags_allowed"`
	BagsCount   int          `json:"bags_count"`
	Destination string       `json:"destination"`
	Origin      string       `json:"origin"`
	TotalPrice  json.Number  `json:"total_price"`
	TravelTime  string       `json:"travel_time"`
}

// MarshalJSON encodes the itinerary with prices as exact JSON numbers,
// timestamps in core.TimeLayout and the travel time as FormatDuration text.
func (it Itinerary) MarshalJSON() ([]byte, error) {
	out := itineraryJSON{
		Flights:     make([]flightJSON, 0, len(it.Flights)),
		BagsAllowed: it.BagsAllowed,
		BagsCount:   it.BagsCount,
		Destination: it.Destination,
		Origin:      it.Origin,
		TotalPrice:  number(it.TotalPrice),
		TravelTime:  FormatDuration(it.TravelTime),
	}
	for _, f := range it.Flights {
		out.Flights = append(out.Flights, toFlightJSON(f))
	}

	return json.Marshal(out)
}

func toFlightJSON(f *core.Flight) flightJSON {
	return flightJSON{
		FlightNo:    f.FlightNo,
		Origin:      f.Origin,
		Destination: f.Destination,
		Departure:   f.Departure.Format(core.TimeLayout),
		Arrival:     f.Arrival.Format(core.TimeLayout),
		BasePrice:   number(f.BasePrice),
		BagPrice:    number(f.BagPrice),
		BagsAllowed: f.BagsAllowed,
	}
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// MarshalIndent encodes its as a JSON array indented with four spaces.
// A nil or empty slice encodes as [].
func MarshalIndent(its []Itinerary) ([]byte, error) {
	if its == nil {
		its = []Itinerary{}
	}

	return json.MarshalIndent(its, "", "    ")
}

// FormatDuration renders d as H:MM:SS, prefixed with "N day, " or
// "N days, " once it reaches 24 hours. Sub-second precision is dropped.
//
//	FormatDuration(5*time.Hour + 30*time.Minute)  // "5:30:00"
//	FormatDuration(26 * time.Hour)                // "1 day, 2:00:00"
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400
	rem := secs % 86400
	if rem < 0 {
		// floor division, so negative spans read "-1 day, 23:00:00"
		days--
		rem += 86400
	}
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, rem%3600/60, rem%60)

	switch days {
	case 0:
		return clock
	case 1, -1:
		return fmt.Sprintf("%d day, %s", days, clock)
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}
