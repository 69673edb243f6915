// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1.
//   • cfg.rng is required for 0 < p < 1. p==0 adds no edges; p==1 adds all
//     pairs without consuming randomness.
//   • Pairs are visited i ascending, j>i ascending; one Float64 draw per pair
//     (plus any draws made by the label functions of accepted elements).
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that keeps each pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
