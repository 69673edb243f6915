package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/isomatch/isomorphism"
)

// ErrSelfLoop is returned by ToGonum because gonum simple graphs reject self edges.
var ErrSelfLoop = errors.New("converters: self-loop not representable")

// FromGonum indexes an undirected gonum graph. The returned slice maps each
// dense index to its gonum node ID; nodes are ordered by ascending ID and
// each vertex's neighbors likewise, so the result is deterministic.
func FromGonum(g graph.Undirected) (*isomorphism.AdjacencyGraph, []int64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("converters: FromGonum: %w", isomorphism.ErrNilGraph)
	}
	nodes := sortedIDs(g.Nodes())
	index := make(map[int64]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	var pairs [][2]int
	for i, id := range nodes {
		for _, nb := range sortedIDs(g.From(id)) {
			j, ok := index[nb]
			if !ok {
				return nil, nil, fmt.Errorf("converters: FromGonum: node %d: %w", nb, isomorphism.ErrVertexOutOfRange)
			}
			if j >= i {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	ag, err := isomorphism.NewAdjacencyGraph(len(nodes), pairs)
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGonum: %w", err)
	}

	return ag, nodes, nil
}

// ToGonum copies an engine graph into a gonum simple.UndirectedGraph whose
// node IDs are the dense indices.
func ToGonum(g isomorphism.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("converters: ToGonum: %w", isomorphism.ErrNilGraph)
	}
	out := simple.NewUndirectedGraph()
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(v))
	}
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			if v == u {
				return nil, fmt.Errorf("converters: ToGonum: vertex %d: %w", u, ErrSelfLoop)
			}
			if v > u {
				out.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	return out, nil
}

func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
