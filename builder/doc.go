// Package builder provides deterministic "functional-options" constructors
// for labeled core.Graph fixtures: canonical topologies used as query
// patterns and target graphs, plus seeded random families for screening
// and cross-checking the matching engines.
//
// Components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...) creates a graph and applies constructors.
//     – Apply(g, bopts, cons...) extends an existing graph.
//   - Topologies (Constructor):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – PlatonicSolid(Tetrahedron|Cube|Octahedron|Dodecahedron|Icosahedron, withCenter).
//     – RandomSparse(n, p), RandomRegular(n, d) (require WithSeed/WithRand).
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, PrefixIDFn.
//   - Labels (VertexLabelFn / EdgeLabelFn):
//     – ConstantVertexLabel, ConstantEdgeLabel.
//     – RandomVertexLabel, RandomEdgeLabel (uniform over an alphabet).
//
// Guarantees:
//
//   - Idempotent composition: a constructor re-applied to a graph, or two
//     constructors sharing IDs, never duplicate vertices or edges and never
//     relabel existing elements.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrOptionViolation) wrapped
//     with the constructor name.
//   - Same options, seed and constructor order yield identical graphs.
package builder
