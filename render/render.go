// Package render writes aggregated itineraries for people and programs.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/itinerary"
)

// Format names an output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat accepts "json" and "text".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown format %q (want json or text)", s)
	}
}

// Write renders its in format f.
func Write(w io.Writer, f Format, its []itinerary.Itinerary) error {
	if f == FormatText {
		return Text(w, its)
	}

	return JSON(w, its)
}

// JSON writes its as a four-space indented JSON array followed by a newline.
func JSON(w io.Writer, its []itinerary.Itinerary) error {
	raw, err := itinerary.MarshalIndent(its)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)

	return err
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Text writes its as a table, one row per itinerary, cheapest first.
func Text(w io.Writer, its []itinerary.Itinerary) error {
	if len(its) == 0 {
		_, err := io.WriteString(w, "No itineraries found.\n")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "ROUTE", "FLIGHTS", "DEPARTURE", "ARRIVAL", "TRAVEL TIME", "BAGS", "TOTAL")
	for i, it := range its {
		first, last := it.Flights[0], it.Flights[len(it.Flights)-1]
		t.Row(
			strconv.Itoa(i+1),
			route(it.Flights),
			flightNos(it.Flights),
			first.Departure.Format(core.TimeLayout),
			last.Arrival.Format(core.TimeLayout),
			itinerary.FormatDuration(it.TravelTime),
			fmt.Sprintf("%d/%d", it.BagsCount, it.BagsAllowed),
			it.TotalPrice.StringFixed(2),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

func route(legs []*core.Flight) string {
	stops := make([]string, 0, len(legs)+1)
	stops = append(stops, legs[0].Origin)
	for _, f := range legs {
		stops = append(stops, f.Destination)
	}

	return strings.Join(stops, " → ")
}

func flightNos(legs []*core.Flight) string {
	nos := make([]string, 0, len(legs))
	for _, f := range legs {
		nos = append(nos, f.FlightNo)
	}

	return strings.Join(nos, " ")
}
