// Package screen runs one query graph against a collection of target graphs
// in parallel, each target driven by its own isomorphism.Enumerator.
//
// Targets are addressed by their position in the input slice. Result.Hits
// and Result.Screened are roaring bitmaps over those positions, so callers
// can intersect hit sets from several queries cheaply.
//
// A per-target failure (step budget, predicate evaluation) is recorded in
// Result.Errors and the run continues. Cancellation of the caller's context
// stops the run and is returned as the error.
package screen
