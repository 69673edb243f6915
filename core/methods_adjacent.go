// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors() is ordered by edge insertion; NeighborIDs() by vertex ID.
package core

import "sort"

// Neighbors returns the edges incident to id in insertion order. A
// self-loop is listed once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacency[id]
	out := make([]*Edge, 0, len(bucket))
	for _, eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// NeighborIDs returns the IDs of vertices adjacent to id, sorted ascending.
// A self-loop contributes id itself.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

func (g *Graph) checkVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}

	return nil
}
