// Package converters adapts graph representations to the dense index space
// the isomorphism engine works in, and back.
//
//   - FromCore snapshots a labeled core.Graph into an Indexed view: vertices
//     are numbered by sorted ID, edges by core insertion order.
//   - LabelVertexMatcher / LabelEdgeMatcher compare labels of two snapshots;
//     VertexMatcherFunc / EdgeMatcherFunc lift arbitrary record predicates.
//   - Translate turns an index-level Mapping back into vertex IDs.
//   - FromGonum / ToGonum bridge gonum.org/v1/gonum/graph undirected graphs.
//
// An Indexed value is immutable and safe for concurrent readers; it copies
// labels and metadata maps, so later edits to the source graph are not seen.
package converters
