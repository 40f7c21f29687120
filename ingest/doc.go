// Package ingest reads flight datasets from CSV and streams validated,
// filtered core.Record values to the graph builder.
//
// Pipeline, per data row:
//
//	csv row ──► RowValidator… ──► convert ──► Filter… ──► core.Record
//
//   - The header must equal Columns exactly, in order; anything else is a
//     *HeaderError (errors.Is(err, ErrHeaderShape)).
//   - Every RowValidator runs in order; the first failure stops the stream
//     with a *RowError (errors.Is(err, ErrRowValue)). FieldValidator is
//     always first and checks the shape of every field with
//     go-playground/validator tags.
//   - Filters are an ordered strategy list; a record is kept only when all
//     of them keep it. BagFilter and StartDateFilter mirror the query's bag
//     count and start date.
//
// Usage:
//
//	r, err := ingest.Open(path,
//		ingest.WithFilter(ingest.BagFilter(bags)),
//		ingest.WithFilter(ingest.StartDateFilter(start)),
//	)
//	if err != nil { ... }            // ErrFileNotFound
//	defer r.Close()
//	g, err := core.Build(r.Records()) // *HeaderError or *RowError
//
// A Reader streams lazily and can be consumed once.
package ingest
