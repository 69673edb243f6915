// Package isomatch finds structure-preserving mappings of a small query graph
// into a larger target graph: subgraph monomorphism and exact isomorphism,
// with pluggable vertex and edge compatibility predicates.
//
// 🚀 What is in the box?
//
//   - A non-recursive VF2 search with look-ahead pruning, and an Ullmann
//     variant driven by the same enumerator
//   - Lazy enumeration: pull one mapping at a time, or range over All()
//   - Caller-imposed budgets: step limits and context cancellation
//   - Label, wildcard and CEL expression predicates
//   - Parallel one-query-many-targets screening with roaring hit sets
//   - YAML/JSON graph documents and a cobra CLI
//
// Packages:
//
//	isomorphism/ — the engine: Graph, MatchState, Checker, Enumerator
//	core/        — thread-safe labeled graph used to author queries and targets
//	builder/     — deterministic and seeded fixture topologies
//	converters/  — core.Graph and gonum graphs to index space and back
//	predicate/   — label, wildcard and CEL compatibility predicates
//	graphfile/   — YAML/JSON graph documents with generators
//	screen/      — parallel screening with metrics and logging
//	logger/      — zap-backed Logger interface
//	cmd/         — the isomatch command line
//
// Quick start:
//
//	q, _ := builder.BuildGraph(nil, nil, builder.Cycle(3))
//	t, _ := builder.BuildGraph(nil, nil, builder.Complete(4))
//	qx, _ := converters.FromCore(q)
//	tx, _ := converters.FromCore(t)
//	n, _ := isomorphism.Count(qx.Graph, tx.Graph) // 24
package isomatch
