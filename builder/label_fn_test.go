package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/builder"
)

func TestRandomLabels(t *testing.T) {
	t.Parallel()

	vfn := builder.RandomVertexLabel("C", "N")
	assert.Equal(t, "C", vfn("0", nil), "nil rng picks the first symbol")

	rng := rand.New(rand.NewSource(5))
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		seen[vfn("0", rng)] = true
	}
	assert.Equal(t, map[string]bool{"C": true, "N": true}, seen)

	efn := builder.RandomEdgeLabel("single")
	assert.Equal(t, "single", efn("a", "b", rng))

	assert.Panics(t, func() { builder.RandomVertexLabel() })
	assert.Panics(t, func() { builder.RandomEdgeLabel() })
}

func TestLabeledBuild(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithVertexLabelFn(func(id string, _ *rand.Rand) string {
				if id == builder.CenterVertexID {
					return "hub"
				}
				return "rim"
			}),
			builder.WithEdgeLabelFn(func(from, _ string, _ *rand.Rand) string {
				if from == builder.CenterVertexID {
					return "spoke"
				}
				return "ring"
			}),
		},
		builder.Wheel(5),
	)
	require.NoError(t, err)

	c, err := g.Vertex(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, "hub", c.Label)
	v, _ := g.Vertex("2")
	assert.Equal(t, "rim", v.Label)

	counts := map[string]int{}
	for _, e := range g.Edges() {
		counts[e.Label]++
	}
	assert.Equal(t, map[string]int{"ring": 4, "spoke": 4}, counts)
}

func TestAlphabetOptionsSeeded(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{
		builder.WithSeed(11),
		builder.WithVertexAlphabet("C", "N", "O"),
		builder.WithEdgeAlphabet("1", "2"),
	}
	g, err := builder.BuildGraph(nil, opts, builder.Cycle(8))
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.Contains(t, []string{"C", "N", "O"}, v.Label)
	}
	for _, e := range g.Edges() {
		assert.Contains(t, []string{"1", "2"}, e.Label)
	}
}
