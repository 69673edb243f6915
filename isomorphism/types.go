// SPDX-License-Identifier: MIT

// types.go - graph contract, compatibility predicates, search options and
// sentinel errors shared by the matching engine.

package isomorphism

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Unmapped marks a vertex slot that has no partner in the current mapping.
const Unmapped = -1

// Sentinel errors for the matching engine.
var (
	// ErrNilGraph is returned when a nil query or target graph is supplied.
	ErrNilGraph = errors.New("isomorphism: graph is nil")

	// ErrNoMoreMappings is returned by Enumerator.Next once the search is exhausted.
	ErrNoMoreMappings = errors.New("isomorphism: no more mappings")

	// ErrInvalidVertex signals a precondition violation on MatchState
	// (negative, out-of-range or already-mapped index).
	ErrInvalidVertex = errors.New("isomorphism: invalid vertex index")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1 during graph construction.
	ErrVertexOutOfRange = errors.New("isomorphism: vertex out of range")

	// ErrDuplicateEdge indicates the same unordered vertex pair was supplied twice.
	ErrDuplicateEdge = errors.New("isomorphism: duplicate edge")

	// ErrAsymmetricAdjacency indicates u lists v as a neighbor but v does not list u.
	ErrAsymmetricAdjacency = errors.New("isomorphism: adjacency is not symmetric")

	// ErrStepBudgetExceeded is reported when WithMaxSteps is exhausted.
	ErrStepBudgetExceeded = errors.New("isomorphism: step budget exceeded")

	// ErrUnknownMode is returned for a Mode outside {Subgraph, Exact}.
	ErrUnknownMode = errors.New("isomorphism: unknown mode")

	// ErrUnknownAlgorithm is returned for an Algorithm outside {VF2, Ullmann}.
	ErrUnknownAlgorithm = errors.New("isomorphism: unknown algorithm")
)

// Graph is the read-only view of a graph the engine consumes.
//
// Vertices are dense indices 0..VertexCount()-1. Neighbors must be symmetric
// (v in Neighbors(u) iff u in Neighbors(v)); a self-loop appears once in the
// neighbor list of its vertex. The order of Neighbors is significant for
// determinism only. The engine never mutates a Graph and never retains the
// slices returned by Neighbors beyond a single call.
type Graph interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// Neighbors returns the ordered neighbor indices of v.
	Neighbors(v int) []int

	// EdgeID returns the identifier of the edge joining u and v (in either
	// order) and true, or (-1, false) when they are not adjacent.
	EdgeID(u, v int) (int, bool)
}

// VertexMatcher reports whether query vertex q may be mapped onto target vertex t.
type VertexMatcher func(q, t int) bool

// EdgeMatcher reports whether the query edge qEdge may be mapped onto the
// target edge tEdge. Arguments are the identifiers returned by Graph.EdgeID.
type EdgeMatcher func(qEdge, tEdge int) bool

// AnyVertex is the default VertexMatcher: every pair is compatible.
func AnyVertex(int, int) bool { return true }

// AnyEdge is the default EdgeMatcher: every pair is compatible.
func AnyEdge(int, int) bool { return true }

// Mode selects between directional subgraph embedding and exact isomorphism.
type Mode int

const (
	// Subgraph finds injective mappings where every query edge lands on a
	// target edge; the target may carry extra edges and vertices.
	Subgraph Mode = iota

	// Exact finds bijections under which edge sets correspond one-to-one.
	Exact
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Subgraph:
		return "subgraph"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts "subgraph" or "exact" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subgraph", "":
		return Subgraph, nil
	case "exact":
		return Exact, nil
	default:
		return 0, fmt.Errorf("isomorphism: %q: %w", s, ErrUnknownMode)
	}
}

// Algorithm selects the state implementation driven by the Enumerator.
type Algorithm int

const (
	// VF2 uses terminal-set bookkeeping with look-ahead feasibility pruning.
	VF2 Algorithm = iota

	// Ullmann uses a marked compatibility matrix refined on every extension.
	Ullmann
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case VF2:
		return "vf2"
	case Ullmann:
		return "ullmann"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts "vf2" or "ullmann" (case-insensitive) into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vf2", "":
		return VF2, nil
	case "ullmann":
		return Ullmann, nil
	default:
		return 0, fmt.Errorf("isomorphism: %q: %w", s, ErrUnknownAlgorithm)
	}
}

// Mapping assigns each query vertex (by index) its target vertex.
// Mappings handed out by the Enumerator are independent copies.
type Mapping []int

// SearchState is the lifecycle phase of an Enumerator.
type SearchState int

const (
	// Ready means no mapping has been requested yet.
	Ready SearchState = iota
	// Searching means the search has started and may produce more mappings.
	Searching
	// Exhausted means no further mapping will be produced.
	Exhausted
)

// String returns the state name.
func (s SearchState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Searching:
		return "searching"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats counts the work performed by an Enumerator so far.
type Stats struct {
	// Maps is the number of candidate pairs committed to the state.
	Maps int
	// Unmaps is the number of pairs undone while backtracking.
	Unmaps int
	// Emitted is the number of complete mappings produced.
	Emitted int
}

// Option configures a search. Use with NewSearch(query, target, opts...).
type Option func(*Options)

// Options holds the resolved search configuration.
type Options struct {
	// Ctx is polled between steps; cancelling it stops the search with Ctx.Err().
	Ctx context.Context

	// Mode selects Subgraph (default) or Exact matching.
	Mode Mode

	// Algorithm selects VF2 (default) or Ullmann.
	Algorithm Algorithm

	// VertexMatch is the vertex compatibility predicate; nil means AnyVertex.
	VertexMatch VertexMatcher

	// EdgeMatch is the edge compatibility predicate; nil means AnyEdge.
	EdgeMatch EdgeMatcher

	// MaxSteps bounds the number of Map operations; zero or negative means unbounded.
	MaxSteps int
}

// DefaultOptions returns Options with:
//   - Background context
//   - Subgraph mode, VF2 algorithm
//   - accept-all vertex and edge predicates
//   - no step budget
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Mode:        Subgraph,
		Algorithm:   VF2,
		VertexMatch: AnyVertex,
		EdgeMatch:   AnyEdge,
		MaxSteps:    0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects Subgraph or Exact matching.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithAlgorithm selects the VF2 or Ullmann state.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithVertexMatcher installs the vertex compatibility predicate.
// Passing nil restores AnyVertex.
func WithVertexMatcher(fn VertexMatcher) Option {
	return func(o *Options) {
		if fn == nil {
			fn = AnyVertex
		}
		o.VertexMatch = fn
	}
}

// WithEdgeMatcher installs the edge compatibility predicate.
// Passing nil restores AnyEdge.
func WithEdgeMatcher(fn EdgeMatcher) Option {
	return func(o *Options) {
		if fn == nil {
			fn = AnyEdge
		}
		o.EdgeMatch = fn
	}
}

// WithMaxSteps bounds the number of Map operations the search may perform.
// When the bound is crossed Next reports ErrStepBudgetExceeded.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Mode != Subgraph && o.Mode != Exact {
		return o, fmt.Errorf("isomorphism: %v: %w", o.Mode, ErrUnknownMode)
	}
	if o.Algorithm != VF2 && o.Algorithm != Ullmann {
		return o, fmt.Errorf("isomorphism: %v: %w", o.Algorithm, ErrUnknownAlgorithm)
	}

	return o, nil
}
