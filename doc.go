// Package flightpath finds every valid multi-leg flight combination between
// two airports in a static flight dataset.
//
// It enumerates all simple paths that satisfy the hard constraints (start
// date, layover window, bag allowance) and orders them by total price. It
// is not a shortest-path or fare optimizer.
//
// Packages:
//
//	core/       Flight, Record and the Graph keyed by departure airport
//	layover/    connection rules: Window (inclusive min/max gap), Open
//	route/      constrained depth-first search, round-trip composition
//	itinerary/  pricing, stable sort by total price, JSON output
//	ingest/     CSV reader with header check, row validators, record filters
//	builder/    deterministic synthetic datasets (Path, Star, Layered, …)
//	config/     query and server settings, YAML loading, validation
//	search/     one query end to end, with Prometheus metrics
//	render/     JSON and table output
//	server/     HTTP API (gin)
//	logging/    slog logger construction
//
// Quick start:
//
//	r, _ := ingest.Open("flights.csv", ingest.WithFilter(ingest.BagFilter(1)))
//	defer r.Close()
//	g, _ := core.Build(r.Records())
//	paths, _ := route.Find(g, "WIW", "ECV", time.Time{},
//		route.WithLayoverRule(layover.NewWindow(1, 6)))
//	its, _ := itinerary.Aggregate(paths, 1, "WIW", "ECV")
//
// The command in cmd/flightpath wraps the same pipeline.
package flightpath
