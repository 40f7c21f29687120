// Package route enumerates flight routes on a core.Graph.
//
// What:
//
//   - Find: every simple path origin → destination whose first leg departs
//     at or after a start bound and whose consecutive legs satisfy a
//     layover.Rule. A path ends at the first leg that lands at the
//     destination; no airport (the origin included) is visited twice.
//   - FindReverse: round trips. Each outbound path is combined with every
//     return path found by an independent Find(destination, origin,
//     outbound arrival). The layover rule applies inside each half but not
//     across the seam between them.
//
// How:
//
// Depth-first search with explicit backtracking state: a visited set of
// airports and the in-progress path prefix. From the last leg's
// destination the walker tries every departing flight whose destination
// is unvisited and whose connection passes the rule. The visited marker
// of an airport is always released when the walker backtracks out of it,
// so an airport that was a dead end along one predecessor is explored
// again along another (it may be reachable at a different time).
//
// Options:
//
//   - WithLayoverRule(rule)  connection policy; default layover.Open.
//   - WithContext(ctx)       cancellation, checked on every expansion.
//   - WithMaxLegs(n)         cap on legs per path (per half for round trips).
//   - WithStats(s)           collect expansion diagnostics into s.
//
// Complexity:
//
//   - Time: exponential in the worst case (all simple paths are listed).
//   - Memory: O(V) search state plus the size of the result.
//   - FindReverse: Σ over outbound paths of their return paths; the result
//     grows multiplicatively with input size.
//
// Errors:
//
//   - ErrGraphNil    graph pointer is nil.
//   - ctx.Err()      search canceled through WithContext.
//
// Unknown airports and unreachable destinations are not errors: they yield
// an empty result.
package route
