package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/core"
)

// edgeIDs projects edges onto their IDs.
func edgeIDs(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}

	return out
}

func vertexIDs(vs []*core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}

	return out
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "idempotent")
	assert.Equal(t, 1, g.VertexCount())

	require.NoError(t, g.AddLabeledVertex("B", "C"))
	v, err := g.Vertex("B")
	require.NoError(t, err)
	assert.Equal(t, "C", v.Label)
	assert.NotNil(t, v.Metadata)

	require.NoError(t, g.AddLabeledVertex("B", "N"), "relabels an existing vertex")
	v, _ = g.Vertex("B")
	assert.Equal(t, "N", v.Label)

	require.NoError(t, g.SetVertexLabel("A", "O"))
	v, _ = g.Vertex("A")
	assert.Equal(t, "O", v.Label)
	assert.ErrorIs(t, g.SetVertexLabel("Z", "O"), core.ErrVertexNotFound)

	require.NoError(t, g.SetVertexMetadata("A", "charge", -1))
	v, _ = g.Vertex("A")
	assert.Equal(t, -1, v.Metadata["charge"])

	_, err = g.Vertex("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("A", "B", core.WithEdgeLabel("double"), core.WithEdgeMetadata("w", 2))
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	assert.True(t, g.HasVertex("A"), "endpoints auto-created")
	assert.True(t, g.HasEdge("B", "A"), "undirected")

	e, err := g.Edge("B", "A")
	require.NoError(t, err)
	assert.Equal(t, "double", e.Label)
	assert.Equal(t, 2, e.Metadata["w"])
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))

	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "A")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	require.NoError(t, g.SetEdgeLabel(id, "single"))
	e, _ = g.GetEdge(id)
	assert.Equal(t, "single", e.Label)
	assert.ErrorIs(t, g.SetEdgeLabel("e99", "x"), core.ErrEdgeNotFound)
	_, err = g.GetEdge("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Edge("A", "C")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	assert.True(t, g.Looped())
	id, err := g.AddEdge("A", "A")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbs, 2, "loop listed once")
	assert.Equal(t, id, nbs[0].ID)
	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)

	require.NoError(t, g.RemoveVertex("A"))
	assert.Zero(t, g.EdgeCount())
	d, err = g.Degree("B")
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestEdgesNumericOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}
	ids := edgeIDs(g.Edges())
	assert.Equal(t, "e1", ids[0])
	assert.Equal(t, "e2", ids[1])
	assert.Equal(t, "e10", ids[9])
	assert.Equal(t, "e11", ids[10])

	nbs, err := g.Neighbors("hub")
	require.NoError(t, err)
	assert.Equal(t, ids, edgeIDs(nbs))
}

func TestRemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	require.NoError(t, g.RemoveEdge(e1))
	assert.False(t, g.HasEdge("A", "B"))
	assert.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)

	_, err := g.AddEdge("B", "A")
	require.NoError(t, err, "pair is free again")

	require.NoError(t, g.RemoveVertex("C"))
	assert.Equal(t, []string{"A", "B"}, g.VertexIDs())
	assert.Equal(t, 1, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("C"), core.ErrVertexNotFound)

	_, err = g.Neighbors("C")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestVerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"a", "b", "c"}, vertexIDs(g.Vertices()))
	assert.Equal(t, []string{"a", "b", "c"}, g.VertexIDs())
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddLabeledVertex("A", "C"))
	_, _ = g.AddEdge("A", "B", core.WithEdgeLabel("1"))
	_, _ = g.AddEdge("B", "B")

	c := g.Clone()
	assert.True(t, c.Looped())
	assert.Equal(t, edgeIDs(g.Edges()), edgeIDs(c.Edges()))

	id, err := c.AddEdge("A", "Z")
	require.NoError(t, err)
	assert.Equal(t, "e3", id, "clone continues the edge sequence")
	require.NoError(t, c.SetVertexLabel("A", "N"))

	assert.False(t, g.HasVertex("Z"))
	v, _ := g.Vertex("A")
	assert.Equal(t, "C", v.Label)
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "A")

	sub := g.InducedSubgraph(map[string]bool{"A": true, "B": true, "C": true, "X": true})
	assert.Equal(t, []string{"A", "B", "C"}, sub.VertexIDs())
	assert.Equal(t, []string{"e1", "e2"}, edgeIDs(sub.Edges()))
	assert.False(t, sub.HasEdge("A", "D"))
}
