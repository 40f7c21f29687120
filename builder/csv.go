package builder

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/ingest"
)

// WriteCSV writes recs in the dataset format accepted by ingest.
func WriteCSV(w io.Writer, recs []core.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ingest.Columns); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			r.FlightNo,
			r.Origin,
			r.Destination,
			r.Departure.Format(core.TimeLayout),
			r.Arrival.Format(core.TimeLayout),
			r.BasePrice.String(),
			r.BagPrice.String(),
			strconv.Itoa(r.BagsAllowed),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
