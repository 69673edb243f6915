package isomorphism

import "fmt"

// edgeKey is an unordered vertex pair normalised so that u <= v.
type edgeKey struct{ u, v int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{u: u, v: v}
}

// AdjacencyGraph is an immutable Graph backed by adjacency lists and an
// edge-identifier index. It is safe for concurrent readers.
type AdjacencyGraph struct {
	adj   [][]int
	edges map[edgeKey]int
	ends  [][2]int
}

// NewAdjacencyGraph builds an undirected graph on n vertices. Edge i of the
// list receives identifier i. Self-loops are allowed and appear once in the
// neighbor list of their vertex.
//
// Errors:
//   - ErrVertexOutOfRange if n < 0 or an endpoint lies outside 0..n-1.
//   - ErrDuplicateEdge if an unordered pair occurs twice.
func NewAdjacencyGraph(n int, edges [][2]int) (*AdjacencyGraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacencyGraph: n=%d: %w", n, ErrVertexOutOfRange)
	}
	g := &AdjacencyGraph{
		adj:   make([][]int, n),
		edges: make(map[edgeKey]int, len(edges)),
		ends:  make([][2]int, 0, len(edges)),
	}
	for id, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("NewAdjacencyGraph: edge %d (%d,%d) with n=%d: %w", id, u, v, n, ErrVertexOutOfRange)
		}
		k := keyOf(u, v)
		if _, dup := g.edges[k]; dup {
			return nil, fmt.Errorf("NewAdjacencyGraph: edge %d (%d,%d): %w", id, u, v, ErrDuplicateEdge)
		}
		g.edges[k] = id
		g.ends = append(g.ends, [2]int{u, v})
		g.adj[u] = append(g.adj[u], v)
		if u != v {
			g.adj[v] = append(g.adj[v], u)
		}
	}

	return g, nil
}

// FromAdjacency builds a graph from neighbor lists, preserving their order.
// Edge identifiers are assigned by scanning u ascending and, within adj[u],
// each neighbor v >= u in list order.
//
// Errors:
//   - ErrVertexOutOfRange if a neighbor index lies outside 0..len(adj)-1.
//   - ErrDuplicateEdge if a neighbor is listed twice for the same vertex.
//   - ErrAsymmetricAdjacency if v lists u but u does not list v.
func FromAdjacency(adj [][]int) (*AdjacencyGraph, error) {
	n := len(adj)
	g := &AdjacencyGraph{
		adj:   make([][]int, n),
		edges: make(map[edgeKey]int),
	}
	seen := make(map[[2]int]struct{})
	for u, nbrs := range adj {
		g.adj[u] = append([]int(nil), nbrs...)
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("FromAdjacency: vertex %d lists %d with n=%d: %w", u, v, n, ErrVertexOutOfRange)
			}
			if _, dup := seen[[2]int{u, v}]; dup {
				return nil, fmt.Errorf("FromAdjacency: vertex %d lists %d twice: %w", u, v, ErrDuplicateEdge)
			}
			seen[[2]int{u, v}] = struct{}{}
			if v >= u {
				g.edges[keyOf(u, v)] = len(g.ends)
				g.ends = append(g.ends, [2]int{u, v})
			}
		}
	}
	for pair := range seen {
		if _, ok := seen[[2]int{pair[1], pair[0]}]; !ok {
			return nil, fmt.Errorf("FromAdjacency: %d lists %d but not the reverse: %w", pair[0], pair[1], ErrAsymmetricAdjacency)
		}
	}

	return g, nil
}

// VertexCount returns the number of vertices.
func (g *AdjacencyGraph) VertexCount() int { return len(g.adj) }

// Neighbors returns the neighbor list of v. The slice is shared and must not be modified.
func (g *AdjacencyGraph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns len(Neighbors(v)); a self-loop counts once.
func (g *AdjacencyGraph) Degree(v int) int { return len(g.adj[v]) }

// EdgeID returns the identifier of edge {u,v}.
func (g *AdjacencyGraph) EdgeID(u, v int) (int, bool) {
	id, ok := g.edges[keyOf(u, v)]
	if !ok {
		return -1, false
	}

	return id, true
}

// EdgeCount returns the number of edges.
func (g *AdjacencyGraph) EdgeCount() int { return len(g.ends) }

// Endpoints returns the endpoints of edge id as they were supplied.
func (g *AdjacencyGraph) Endpoints(id int) (u, v int) {
	e := g.ends[id]

	return e[0], e[1]
}
