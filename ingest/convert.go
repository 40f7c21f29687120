package ingest

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/flightpath/core"
)

func parseTime(line int, field, s string) (time.Time, error) {
	t, err := time.Parse(core.TimeLayout, s)
	if err != nil {
		return time.Time{}, &RowError{Line: line, Field: field, Reason: reasons["datetime"], Err: err}
	}

	return t, nil
}

func parseDecimal(line int, field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, &RowError{Line: line, Field: field, Reason: reasons["nonnegdecimal"], Err: err}
	}

	return d, nil
}

// parseCount also catches values that pass the "number" tag but overflow int.
func parseCount(line int, field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &RowError{Line: line, Field: field, Reason: reasons["number"], Err: err}
	}

	return n, nil
}
