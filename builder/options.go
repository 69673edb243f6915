// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID strategy. A nil fn is ignored.
// Complexity: O(1).
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand installs a caller-owned RNG. Panics if r is nil.
// The RNG is not safe for concurrent builders; give each BuildGraph its own.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVertexLabelFn sets the generator for new vertex labels. A nil fn
// restores the default (empty labels).
func WithVertexLabelFn(fn VertexLabelFn) BuilderOption {
	return func(c *builderConfig) {
		c.vertexLabelFn = fn
	}
}

// WithEdgeLabelFn sets the generator for new edge labels. A nil fn
// restores the default (empty labels).
func WithEdgeLabelFn(fn EdgeLabelFn) BuilderOption {
	return func(c *builderConfig) {
		c.edgeLabelFn = fn
	}
}

// WithPartitionPrefix sets the bipartite ID prefixes. Empty values fall back
// to "L" / "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix = left
		c.rightPrefix = right
	}
}
