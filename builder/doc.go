// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic flight datasets.
//
// A dataset is assembled by one orchestrator, Build, from an ordered list of
// topology Constructors (Path, Cycle, Star, Complete, Layered,
// RandomSparse). Functional Options choose airport codes, the schedule,
// prices and randomness:
//
//	recs, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithDays(2)},
//		builder.Layered(3, 4),
//	)
//	g, err := core.Build(core.Records(recs))
//
// Schedule model: every constructor emits flights in "waves". A flight of
// wave k departs at Start + k·Spacing and lands LegDuration later. With the
// defaults (2h legs, 3h spacing) consecutive waves connect with exactly one
// hour on the ground, inside the default 1–6h layover window. WithDays
// repeats the whole schedule on the following days.
//
// Determinism: equal options, seed and constructor order yield identical
// records, flight numbers included. WriteCSV renders records in the
// dataset format read by package ingest.
//
// Errors are sentinels (ErrTooFewAirports, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with constructor context;
// branch with errors.Is. Option constructors panic on meaningless input.
package builder
