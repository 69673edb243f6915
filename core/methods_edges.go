// File: methods_edges.go
// Role: Edge lifecycle & queries. Also: nextEdgeID().
//
// Determinism:
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//   - Edges() is ordered by insertion, which matches numeric ID order.
//
// Concurrency:
//   - Edge catalog and adjacency protected by muEdgeAdj.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge joins from and to with a new undirected edge and returns its ID.
// Missing endpoints are created unlabeled.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure both vertices exist.
//  3. Lock muEdgeAdj, reject a second edge between the same pair.
//  4. Generate the ID, apply options, link adjacency both ways.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// a concurrent RemoveVertex may have run since AddVertex
	if g.adjacency[from] == nil || g.adjacency[to] == nil {
		return "", ErrVertexNotFound
	}
	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: formatEdgeID(seq), From: from, To: to, seq: seq}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e.ID
	g.adjacency[to][from] = e.ID

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether from and to are adjacent, in either order.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the edge joining from and to, in either order.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// GetEdge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetEdgeLabel changes the label of an existing edge.
func (g *Graph) SetEdgeLabel(edgeID, label string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Label = label

	return nil
}

// Edges returns every edge in insertion order ("e1" < "e2" < ... < "e10").
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedEdges(g.edges)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortedEdges(m map[string]*Edge) []*Edge {
	out := make([]*Edge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// formatEdgeID renders "e<seq>" without fmt allocations.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, 'e')
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
