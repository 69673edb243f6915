// Package isomorphism finds structure-preserving vertex mappings between two
// undirected graphs: subgraph embeddings (monomorphisms) and exact
// isomorphisms, optionally constrained by vertex and edge predicates.
//
// What:
//
//   - MatchState: the partial mapping with per-side terminal counts,
//     extended and retracted in strict stack order (Map / Unmap).
//   - Candidate generation: frontier-first choice of the next query vertex
//     and of its target candidates.
//   - Checker: VF2 feasibility (predicates, adjacency to mapped vertices,
//     terminal/fresh look-ahead).
//   - Enumerator: lazy, non-recursive backtracking over an explicit cursor
//     stack, yielding each mapping exactly once in deterministic order.
//   - Ullmann: an alternative state based on a refined compatibility matrix,
//     driven by the same Enumerator.
//
// Why:
//   - Pattern search in molecular, network and dependency graphs
//   - Deduplicating structurally equal graphs
//   - Screening many targets for a fixed query
//
// Modes:
//
//   - Subgraph: injective, every query edge maps onto a target edge; extra
//     target edges and vertices are allowed (non-induced).
//   - Exact: bijective and edge-preserving in both directions.
//
// Complexity:
//
//   - Worst case exponential in the query size; memory O(nQ+nT) per search
//     for VF2, O(nQ*nT) for Ullmann.
//   - Map / Unmap: O(deg(n)+deg(m)).
//   - Feasible:    O(deg(n)+deg(m)) edge look-ups.
//
// Errors:
//
//   - ErrNilGraph            nil query or target
//   - ErrNoMoreMappings      Next after exhaustion
//   - ErrStepBudgetExceeded  WithMaxSteps bound crossed
//   - ErrUnknownMode, ErrUnknownAlgorithm
//   - ErrVertexOutOfRange, ErrDuplicateEdge, ErrAsymmetricAdjacency
//     graph construction
//   - ErrInvalidVertex       wrapped in the panic raised by MatchState misuse
//   - context.Canceled / context.DeadlineExceeded from WithContext
//
// Functions:
//
//   - NewSearch(query, target, opts...) (*Enumerator, error)
//   - Count, First, Matches, Collect, Limit, UniqueVertexSets,
//     UniqueEdgeSets, Verify
//   - NewAdjacencyGraph(n, edges), FromAdjacency(adj)
//   - WithMode, WithAlgorithm, WithVertexMatcher, WithEdgeMatcher,
//     WithMaxSteps, WithContext
package isomorphism
