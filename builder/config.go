// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = decimalID  ("0","1","2",...)
//   • rng           = nil        (pure/deterministic unless seeded)
//   • vertexLabelFn = nil        (vertices keep the empty label)
//   • edgeLabelFn   = nil        (edges keep the empty label)
//   • left/right    = "L" / "R"

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Label generators applied to newly created vertices and edges.
	vertexLabelFn VertexLabelFn
	edgeLabelFn   EdgeLabelFn

	// Bipartite ID prefixes (left/right). Empty -> defaults.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
