package search

import "github.com/prometheus/client_golang/prometheus"

// BadDataQueries exposes the counter of one-way queries rejected for bad data.
func BadDataQueries() prometheus.Counter {
	return queriesTotal.WithLabelValues("oneway", "bad_data")
}
