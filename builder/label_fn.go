// Package builder: label generators for vertices and edges.
//
// Label functions run once per newly created element, in the constructor's
// documented emission order, so a seeded RNG yields reproducible labelings.
package builder

import (
	"fmt"
	"math/rand"
)

// VertexLabelFn produces the label of a newly created vertex.
// rng is nil unless WithSeed/WithRand was given.
type VertexLabelFn func(id string, rng *rand.Rand) string

// EdgeLabelFn produces the label of a newly created edge between from and to.
type EdgeLabelFn func(from, to string, rng *rand.Rand) string

// ConstantVertexLabel labels every new vertex with label.
func ConstantVertexLabel(label string) VertexLabelFn {
	return func(string, *rand.Rand) string { return label }
}

// ConstantEdgeLabel labels every new edge with label.
func ConstantEdgeLabel(label string) EdgeLabelFn {
	return func(string, string, *rand.Rand) string { return label }
}

// RandomVertexLabel draws uniformly from alphabet. With a nil rng it
// always returns alphabet[0]. Panics if alphabet is empty.
func RandomVertexLabel(alphabet ...string) VertexLabelFn {
	if len(alphabet) == 0 {
		panic(fmt.Sprintf("RandomVertexLabel: empty alphabet: %v", ErrOptionViolation))
	}
	labels := append([]string(nil), alphabet...)

	return func(_ string, rng *rand.Rand) string {
		return pickLabel(labels, rng)
	}
}

// RandomEdgeLabel draws uniformly from alphabet. With a nil rng it
// always returns alphabet[0]. Panics if alphabet is empty.
func RandomEdgeLabel(alphabet ...string) EdgeLabelFn {
	if len(alphabet) == 0 {
		panic(fmt.Sprintf("RandomEdgeLabel: empty alphabet: %v", ErrOptionViolation))
	}
	labels := append([]string(nil), alphabet...)

	return func(_, _ string, rng *rand.Rand) string {
		return pickLabel(labels, rng)
	}
}

func pickLabel(labels []string, rng *rand.Rand) string {
	if rng == nil || len(labels) == 1 {
		return labels[0]
	}

	return labels[rng.Intn(len(labels))]
}

// WithVertexAlphabet labels vertices via RandomVertexLabel(alphabet...).
func WithVertexAlphabet(alphabet ...string) BuilderOption {
	return WithVertexLabelFn(RandomVertexLabel(alphabet...))
}

// WithEdgeAlphabet labels edges via RandomEdgeLabel(alphabet...).
func WithEdgeAlphabet(alphabet ...string) BuilderOption {
	return WithEdgeLabelFn(RandomEdgeLabel(alphabet...))
}
