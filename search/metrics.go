package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts queries by mode and result
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightpath_queries_total",
		Help: "Total route queries by mode and result",
	}, []string{"mode", "result"})

	// queryDuration tracks end-to-end query latency, ingestion included
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flightpath_query_duration_seconds",
		Help:    "Route query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"mode"})

	// queryItineraries tracks the number of itineraries per successful query
	queryItineraries = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightpath_query_itineraries",
		Help:    "Itineraries returned per successful query",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 10000},
	})

	// graphFlights tracks the size of the graph built for each query
	graphFlights = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightpath_graph_flights",
		Help:    "Flights loaded into the graph per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)
