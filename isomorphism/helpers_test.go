package isomorphism_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/isomorphism"
)

// mustGraph builds an AdjacencyGraph or fails the test.
func mustGraph(t testing.TB, n int, edges ...[2]int) *isomorphism.AdjacencyGraph {
	t.Helper()
	g, err := isomorphism.NewAdjacencyGraph(n, edges)
	require.NoError(t, err)

	return g
}

// cycle returns C_n on vertices 0..n-1.
func cycle(t testing.TB, n int) *isomorphism.AdjacencyGraph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return mustGraph(t, n, edges...)
}

// path returns P_n on vertices 0..n-1.
func path(t testing.TB, n int) *isomorphism.AdjacencyGraph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return mustGraph(t, n, edges...)
}

// complete returns K_n.
func complete(t testing.TB, n int) *isomorphism.AdjacencyGraph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return mustGraph(t, n, edges...)
}

// randomGraph draws each pair (self-loops included when loopP > 0)
// independently. The result is deterministic for a given rng.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p, loopP float64) *isomorphism.AdjacencyGraph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		if loopP > 0 && rng.Float64() < loopP {
			edges = append(edges, [2]int{i, i})
		}
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return mustGraph(t, n, edges...)
}

// bruteForce enumerates every injective assignment and keeps the valid ones.
func bruteForce(query, target isomorphism.Graph, opts ...isomorphism.Option) map[string]bool {
	nQ, nT := query.VertexCount(), target.VertexCount()
	out := make(map[string]bool)
	m := make(isomorphism.Mapping, nQ)
	used := make([]bool, nT)
	var rec func(i int)
	rec = func(i int) {
		if i == nQ {
			if isomorphism.Verify(query, target, m, opts...) == nil {
				out[key(m)] = true
			}
			return
		}
		for j := 0; j < nT; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			m[i] = j
			rec(i + 1)
			used[j] = false
		}
	}
	if nQ <= nT {
		rec(0)
	}

	return out
}

// collectKeys drains a search and fails on duplicates.
func collectKeys(t testing.TB, query, target isomorphism.Graph, opts ...isomorphism.Option) map[string]bool {
	t.Helper()
	e, err := isomorphism.NewSearch(query, target, opts...)
	require.NoError(t, err)
	out := make(map[string]bool)
	for m := range e.All() {
		k := key(m)
		require.False(t, out[k], "mapping %v emitted twice", m)
		out[k] = true
	}
	require.NoError(t, e.Err())

	return out
}

func key(m isomorphism.Mapping) string {
	b := make([]byte, 0, len(m)*3)
	for _, v := range m {
		b = append(b, byte('a'+v), ',')
	}

	return string(b)
}
