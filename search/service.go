// SPDX-License-Identifier: MIT

// Package search runs one route query end to end:
//
//	ingest (filters) ──► core.Build ──► route.Find / FindReverse ──► itinerary.Aggregate
//
// Every query builds a private graph, so a Service can serve concurrent
// queries without shared mutable state.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/ingest"
	"github.com/katalvlaran/flightpath/itinerary"
	"github.com/katalvlaran/flightpath/logging"
	"github.com/katalvlaran/flightpath/route"
)

// Result is the outcome of one query.
type Result struct {
	// Itineraries are sorted by total price, ascending.
	Itineraries []itinerary.Itinerary

	// Graph describes the graph after filtering.
	Graph core.GraphStats

	// Search holds the traversal counters of both halves of a round trip.
	Search route.Stats

	// Elapsed covers ingestion, search and aggregation.
	Elapsed time.Duration
}

// Service executes queries.
type Service struct {
	log    *slog.Logger
	source func(path string) ingest.Source
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSource replaces how a query's CSV path is opened. The default is
// ingest.File.
func WithSource(fn func(path string) ingest.Source) Option {
	if fn == nil {
		panic("search: WithSource(nil)")
	}
	return func(s *Service) {
		s.source = fn
	}
}

// New returns a Service that discards logs and reads files from disk.
func New(opts ...Option) *Service {
	s := &Service{
		log:    logging.Discard(),
		source: func(path string) ingest.Source { return ingest.File(path) },
	}
	for _, fn := range opts {
		fn(s)
	}

	return s
}

// Run validates q and executes it. Errors keep their kind:
// config.ErrInvalid, ingest.ErrFileNotFound, ingest.ErrHeaderShape,
// ingest.ErrRowValue, or the context's error. Unknown airports and
// over-strict filters produce an empty result, not an error.
func (s *Service) Run(ctx context.Context, q config.Query) (Result, error) {
	mode := "oneway"
	if q.Reverse {
		mode = "roundtrip"
	}
	began := time.Now()

	res, err := s.run(ctx, q)
	res.Elapsed = time.Since(began)

	queriesTotal.WithLabelValues(mode, outcome(err)).Inc()
	queryDuration.WithLabelValues(mode).Observe(res.Elapsed.Seconds())
	if err != nil {
		s.log.Warn("query failed",
			"origin", q.Origin, "destination", q.Destination, "mode", mode, "error", err)

		return Result{}, err
	}
	queryItineraries.Observe(float64(len(res.Itineraries)))
	s.log.Info("query done",
		"origin", q.Origin,
		"destination", q.Destination,
		"mode", mode,
		"bags", q.Bags,
		"flights", res.Graph.FlightCount,
		"expanded", res.Search.Expanded,
		"itineraries", len(res.Itineraries),
		"elapsed", res.Elapsed)

	return res, nil
}

func (s *Service) run(ctx context.Context, q config.Query) (Result, error) {
	// 1. Validate the query
	if err := q.Validate(); err != nil {
		return Result{}, err
	}
	start, err := q.Start()
	if err != nil {
		return Result{}, fmt.Errorf("%w: start_date: %w", config.ErrInvalid, err)
	}
	if q.LayoverInverted() {
		s.log.Warn("min layover exceeds max layover, only direct flights can match",
			"min_layover", q.MinLayover, "max_layover", q.MaxLayover)
	}

	// 2. Load the filtered graph
	g, err := s.load(q, start)
	if err != nil {
		return Result{}, err
	}
	graphFlights.Observe(float64(g.FlightCount()))
	s.log.Debug("graph built", "airports", g.AirportCount(), "flights", g.FlightCount())

	// 3. Search
	var stats route.Stats
	opts := []route.Option{
		route.WithContext(ctx),
		route.WithLayoverRule(q.Window()),
		route.WithStats(&stats),
	}
	find := route.Find
	if q.Reverse {
		find = route.FindReverse
	}
	paths, err := find(g, q.Origin, q.Destination, start, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("search: %w", err)
	}

	// 4. Price and sort
	its, err := itinerary.Aggregate(paths, q.Bags, q.Origin, q.Destination)
	if err != nil {
		return Result{}, fmt.Errorf("search: %w", err)
	}

	return Result{Itineraries: its, Graph: g.Stats(), Search: stats}, nil
}

func (s *Service) load(q config.Query, start time.Time) (*core.Graph, error) {
	r, err := s.source(q.CSV).Open(
		ingest.WithFilter(ingest.BagFilter(q.Bags)),
		ingest.WithFilter(ingest.StartDateFilter(start)),
	)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return core.Build(r.Records())
}

// outcome is the result label of a query.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, config.ErrInvalid):
		return "invalid"
	case errors.Is(err, ingest.ErrFileNotFound):
		return "not_found"
	case errors.Is(err, ingest.ErrHeaderShape), errors.Is(err, ingest.ErrRowValue):
		return "bad_data"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
