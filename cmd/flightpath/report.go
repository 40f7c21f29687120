package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/ingest"
)

// report prints one diagnostic line for err, naming its kind.
func report(w io.Writer, err error) {
	var (
		he *ingest.HeaderError
		re *ingest.RowError
	)
	switch {
	case errors.Is(err, ingest.ErrFileNotFound):
		fmt.Fprintf(w, "error: CSV file not found: %v\n", err)
	case errors.As(err, &he):
		fmt.Fprintf(w, "error: incorrect CSV headers. The following headers are expected: %s\n",
			strings.Join(ingest.Columns, ", "))
	case errors.As(err, &re):
		fmt.Fprintf(w, "error: wrong value in CSV file at row [%d]: %s\n",
			re.Line, strings.TrimSpace(re.Field+" "+re.Reason))
	case errors.Is(err, config.ErrInvalid):
		fmt.Fprintf(w, "error: invalid arguments: %v\n", err)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
