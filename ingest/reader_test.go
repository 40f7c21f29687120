package ingest_test

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/ingest"
)

const header = "flight_no,origin,destination,departure,arrival,base_price,bag_price,bags_allowed\n"

// collect drains a stream, returning the records seen before the first error.
func collect(r *ingest.Reader) ([]core.Record, error) {
	var recs []core.Record
	for rec, err := range r.Records() {
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

func flightNos(recs []core.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.FlightNo)
	}

	return out
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := ingest.Open("testdata/findme.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrFileNotFound)
}

func TestRecords_ConvertsEveryRow(t *testing.T) {
	r, err := ingest.Open("testdata/flights.csv")
	require.NoError(t, err)
	defer r.Close()

	recs, err := collect(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZH214", "ZH665", "ZH151", "ZH958"}, flightNos(recs))

	first := recs[0]
	assert.Equal(t, "WIW", first.Origin)
	assert.Equal(t, "RFZ", first.Destination)
	assert.Equal(t, time.Date(2021, 9, 1, 23, 20, 0, 0, time.UTC), first.Departure)
	assert.Equal(t, time.Date(2021, 9, 2, 3, 50, 0, 0, time.UTC), first.Arrival)
	assert.True(t, decimal.NewFromInt(168).Equal(first.BasePrice))
	assert.True(t, decimal.NewFromInt(12).Equal(first.BagPrice))
	assert.Equal(t, 2, first.BagsAllowed)

	assert.True(t, decimal.RequireFromString("58.1").Equal(recs[1].BasePrice))
}

func TestRecords_Filters(t *testing.T) {
	start := time.Date(2021, 9, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		opts []ingest.Option
		want []string
	}{
		{"none", nil, []string{"ZH214", "ZH665", "ZH151", "ZH958"}},
		{"bags", []ingest.Option{ingest.WithFilter(ingest.BagFilter(1))}, []string{"ZH214", "ZH665", "ZH151"}},
		{"too many bags", []ingest.Option{ingest.WithFilter(ingest.BagFilter(5))}, nil},
		{"start date", []ingest.Option{ingest.WithFilter(ingest.StartDateFilter(start))}, []string{"ZH665", "ZH958"}},
		{"all must keep", []ingest.Option{
			ingest.WithFilter(ingest.BagFilter(1)),
			ingest.WithFilter(ingest.StartDateFilter(start)),
		}, []string{"ZH665"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ingest.File("testdata/flights.csv").Open(tc.opts...)
			require.NoError(t, err)
			defer r.Close()

			recs, err := collect(r)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Empty(t, recs)
				return
			}
			assert.Equal(t, tc.want, flightNos(recs))
		})
	}
}

func TestStartDateFilter_Inclusive(t *testing.T) {
	start := time.Date(2021, 9, 1, 7, 25, 0, 0, time.UTC)
	f := ingest.StartDateFilter(start)

	assert.True(t, f.Keep(core.Record{Departure: start}))
	assert.False(t, f.Keep(core.Record{Departure: start.Add(-time.Second)}))
}

func TestRecords_WrongHeader(t *testing.T) {
	r, err := ingest.Open("testdata/wrong_header.csv")
	require.NoError(t, err)
	defer r.Close()

	recs, err := collect(r)
	assert.Empty(t, recs)
	require.ErrorIs(t, err, ingest.ErrHeaderShape)

	var he *ingest.HeaderError
	require.ErrorAs(t, err, &he)
	assert.Len(t, he.Got, 7)
	assert.Contains(t, err.Error(), strings.Join(ingest.Columns, ", "))
}

func TestRecords_HeaderOrderMatters(t *testing.T) {
	swapped := "origin,flight_no,destination,departure,arrival,base_price,bag_price,bags_allowed\n"
	_, err := collect(ingest.NewReader(strings.NewReader(swapped)))
	assert.ErrorIs(t, err, ingest.ErrHeaderShape)
}

func TestRecords_EmptyInput(t *testing.T) {
	_, err := collect(ingest.NewReader(strings.NewReader("")))

	var he *ingest.HeaderError
	require.ErrorAs(t, err, &he)
	assert.Nil(t, he.Got)
}

func TestRecords_HeaderOnly(t *testing.T) {
	recs, err := collect(ingest.NewReader(strings.NewReader(header)))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecords_WrongCell(t *testing.T) {
	r, err := ingest.Open("testdata/wrong_cell.csv")
	require.NoError(t, err)
	defer r.Close()

	recs, err := collect(r)
	assert.Equal(t, []string{"ZH214"}, flightNos(recs), "rows before the bad one are streamed")
	require.ErrorIs(t, err, ingest.ErrRowValue)

	var re *ingest.RowError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, re.Line)
	assert.Equal(t, "departure", re.Field)
	assert.Equal(t,
		"ingest: wrong value in CSV file at row [3]: departure has an invalid date-time format.",
		err.Error())
}

func TestRecords_FieldRules(t *testing.T) {
	valid := []string{"F1", "AAA", "BBB", "2021-09-01T08:00:00", "2021-09-01T09:00:00", "10.5", "3", "2"}

	cases := []struct {
		name   string
		col    int
		value  string
		field  string
		reason string
	}{
		{"empty flight_no", 0, "", "flight_no", "cannot be an empty string."},
		{"empty origin", 1, "", "origin", "cannot be an empty string."},
		{"empty destination", 2, "", "destination", "cannot be an empty string."},
		{"bad departure", 3, "2021-09-01", "departure", "has an invalid date-time format."},
		{"bad arrival", 4, "yesterday", "arrival", "has an invalid date-time format."},
		{"negative base", 5, "-1", "base_price", "is not a non-negative decimal number."},
		{"text base", 5, "cheap", "base_price", "is not a non-negative decimal number."},
		{"negative bag price", 6, "-0.5", "bag_price", "is not a non-negative decimal number."},
		{"negative bags", 7, "-1", "bags_allowed", "is not a non-negative integer number."},
		{"fractional bags", 7, "1.5", "bags_allowed", "is not a non-negative integer number."},
		{"overflowing bags", 7, "99999999999999999999999", "bags_allowed", "is not a non-negative integer number."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := append([]string(nil), valid...)
			fields[tc.col] = tc.value
			in := header + strings.Join(fields, ",") + "\n"

			_, err := collect(ingest.NewReader(strings.NewReader(in)))

			var re *ingest.RowError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, 2, re.Line)
			assert.Equal(t, tc.field, re.Field)
			assert.Equal(t, tc.reason, re.Reason)
		})
	}
}

func TestRecords_ZeroPricesAreValid(t *testing.T) {
	in := header + "F1,AAA,BBB,2021-09-01T08:00:00,2021-09-01T09:00:00,0,0.00,0\n"
	recs, err := collect(ingest.NewReader(strings.NewReader(in)))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].BasePrice.IsZero())
	assert.Equal(t, 0, recs[0].BagsAllowed)
}

func TestRecords_WrongFieldCount(t *testing.T) {
	in := header + "F1,AAA,BBB,2021-09-01T08:00:00,2021-09-01T09:00:00,10,3\n"
	_, err := collect(ingest.NewReader(strings.NewReader(in)))

	var re *ingest.RowError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Line)
	assert.Empty(t, re.Field)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
	assert.ErrorIs(t, err, ingest.ErrRowValue)
}

func TestWithValidator_RunsAfterFieldValidator(t *testing.T) {
	errBlocked := errors.New("carrier blocked")
	var seen []int
	blockZH := ingest.RowValidatorFunc(func(line int, row ingest.Row) error {
		seen = append(seen, line)
		if strings.HasPrefix(row["flight_no"], "ZH6") {
			return errBlocked
		}

		return nil
	})

	r, err := ingest.Open("testdata/flights.csv", ingest.WithValidator(blockZH))
	require.NoError(t, err)
	defer r.Close()

	recs, err := collect(r)
	assert.Equal(t, []string{"ZH214"}, flightNos(recs))
	assert.Equal(t, []int{2, 3}, seen)
	assert.ErrorIs(t, err, errBlocked)
	assert.ErrorIs(t, err, ingest.ErrRowValue)
}

func TestRecords_SinglePass(t *testing.T) {
	r := ingest.NewReader(strings.NewReader(header))
	_, err := collect(r)
	require.NoError(t, err)

	_, err = collect(r)
	assert.ErrorIs(t, err, ingest.ErrConsumed)
}

func TestRecords_EarlyStop(t *testing.T) {
	r, err := ingest.Open("testdata/flights.csv")
	require.NoError(t, err)
	defer r.Close()

	n := 0
	for _, err := range r.Records() {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestBuild_PropagatesIngestErrors(t *testing.T) {
	r, err := ingest.Open("testdata/wrong_cell.csv")
	require.NoError(t, err)
	defer r.Close()

	g, err := core.Build(r.Records())
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ingest.ErrRowValue)
}

func TestBuild_FromFile(t *testing.T) {
	r, err := ingest.Open("testdata/flights.csv", ingest.WithFilter(ingest.BagFilter(1)))
	require.NoError(t, err)
	defer r.Close()

	g, err := core.Build(r.Records())
	require.NoError(t, err)
	assert.Equal(t, 3, g.FlightCount())
	assert.Equal(t, []string{"ECV", "RFZ", "WIW"}, g.Airports())
}

func TestClose_Idempotent(t *testing.T) {
	r, err := ingest.Open("testdata/flights.csv")
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.NoError(t, r.Close())

	assert.NoError(t, ingest.NewReader(strings.NewReader("")).Close())
}
