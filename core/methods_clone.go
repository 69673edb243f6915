// File: methods_clone.go
// Role: Cloning and induced subgraphs.
// Determinism:
//   - Clone carries over nextEdgeID so AddEdge on the clone continues the same
//     textual sequence; edge IDs and order are preserved.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import (
	"maps"
	"sync/atomic"
)

// Clone returns a deep copy of the topology and labels. Metadata maps are
// copied shallowly (values are shared).
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.InducedSubgraph(nil)
}

// InducedSubgraph returns a new graph holding the vertices in keep and every
// edge whose endpoints are both kept. IDs, labels and edge order survive.
// A nil keep set keeps everything; unknown IDs in keep are ignored.
//
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	kept := func(id string) bool { return keep == nil || keep[id] }

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id, v := range g.vertices {
		if !kept(id) {
			continue
		}
		out.vertices[id] = &Vertex{ID: id, Label: v.Label, Metadata: maps.Clone(v.Metadata)}
		out.adjacency[id] = make(map[string]string)
	}
	for eid, e := range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Label: e.Label, Metadata: maps.Clone(e.Metadata), seq: e.seq}
		out.edges[eid] = ne
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}
