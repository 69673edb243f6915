package converters

import (
	"errors"
	"fmt"
	"maps"

	"github.com/katalvlaran/isomatch/core"
	"github.com/katalvlaran/isomatch/isomorphism"
)

// ErrInconsistentSnapshot reports that the source graph changed while it was
// being indexed (an edge referenced a vertex missing from the vertex pass).
var ErrInconsistentSnapshot = errors.New("converters: graph modified during snapshot")

// Indexed is a dense snapshot of a core.Graph.
type Indexed struct {
	// Graph is the engine-facing adjacency view. Edge identifier i is EdgeAt(i).
	Graph *isomorphism.AdjacencyGraph

	vertices []core.Vertex
	edges    []core.Edge
	index    map[string]int
}

// FromCore indexes g. Vertex i is the i-th vertex in ID order; edge i is the
// i-th edge of g.Edges().
//
// Errors:
//   - isomorphism.ErrNilGraph if g is nil.
//   - ErrInconsistentSnapshot if g was mutated concurrently.
func FromCore(g *core.Graph) (*Indexed, error) {
	if g == nil {
		return nil, fmt.Errorf("converters: FromCore: %w", isomorphism.ErrNilGraph)
	}
	vs := g.Vertices()
	x := &Indexed{
		vertices: make([]core.Vertex, len(vs)),
		index:    make(map[string]int, len(vs)),
	}
	for i, v := range vs {
		x.vertices[i] = *v
		x.vertices[i].Metadata = maps.Clone(v.Metadata)
		x.index[v.ID] = i
	}

	es := g.Edges()
	x.edges = make([]core.Edge, len(es))
	pairs := make([][2]int, len(es))
	for i, e := range es {
		u, okU := x.index[e.From]
		v, okV := x.index[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("converters: FromCore: edge %s (%s-%s): %w", e.ID, e.From, e.To, ErrInconsistentSnapshot)
		}
		x.edges[i] = *e
		x.edges[i].Metadata = maps.Clone(e.Metadata)
		pairs[i] = [2]int{u, v}
	}

	ag, err := isomorphism.NewAdjacencyGraph(len(vs), pairs)
	if err != nil {
		return nil, fmt.Errorf("converters: FromCore: %w", err)
	}
	x.Graph = ag

	return x, nil
}

// VertexCount returns the number of indexed vertices.
func (x *Indexed) VertexCount() int { return len(x.vertices) }

// EdgeCount returns the number of indexed edges.
func (x *Indexed) EdgeCount() int { return len(x.edges) }

// VertexAt returns the vertex record at index i. Panics if i is out of range.
func (x *Indexed) VertexAt(i int) *core.Vertex { return &x.vertices[i] }

// EdgeAt returns the edge record with engine identifier id.
func (x *Indexed) EdgeAt(id int) *core.Edge { return &x.edges[id] }

// Index returns the dense index of vertex id.
func (x *Indexed) Index(id string) (int, bool) {
	i, ok := x.index[id]

	return i, ok
}

// Degree returns the number of distinct neighbors of vertex i.
func (x *Indexed) Degree(i int) int { return x.Graph.Degree(i) }

// Translate renders an index-level mapping of x onto target as
// query-ID -> target-ID pairs. Unmapped slots are skipped.
func (x *Indexed) Translate(m isomorphism.Mapping, target *Indexed) map[string]string {
	out := make(map[string]string, len(m))
	for q, t := range m {
		if t == isomorphism.Unmapped || q >= len(x.vertices) || t >= len(target.vertices) {
			continue
		}
		out[x.vertices[q].ID] = target.vertices[t].ID
	}

	return out
}

// VertexPredicate compares a query vertex record with a target vertex record.
type VertexPredicate func(q, t *core.Vertex) bool

// EdgePredicate compares a query edge record with a target edge record.
type EdgePredicate func(q, t *core.Edge) bool

// VertexMatcherFunc lifts fn to the index space of q and t.
func VertexMatcherFunc(q, t *Indexed, fn VertexPredicate) isomorphism.VertexMatcher {
	return func(qi, ti int) bool {
		return fn(&q.vertices[qi], &t.vertices[ti])
	}
}

// EdgeMatcherFunc lifts fn to the edge identifiers of q and t.
func EdgeMatcherFunc(q, t *Indexed, fn EdgePredicate) isomorphism.EdgeMatcher {
	return func(qe, te int) bool {
		return fn(&q.edges[qe], &t.edges[te])
	}
}

// LabelVertexMatcher accepts vertex pairs with equal labels.
func LabelVertexMatcher(q, t *Indexed) isomorphism.VertexMatcher {
	return func(qi, ti int) bool {
		return q.vertices[qi].Label == t.vertices[ti].Label
	}
}

// LabelEdgeMatcher accepts edge pairs with equal labels.
func LabelEdgeMatcher(q, t *Indexed) isomorphism.EdgeMatcher {
	return func(qe, te int) bool {
		return q.edges[qe].Label == t.edges[te].Label
	}
}
