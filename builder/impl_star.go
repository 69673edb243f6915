// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center vertex has the fixed ID CenterVertexID ("Center").
//   • Leaves are cfg.idFn(1..n-1); spokes are emitted Center-leaf in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodStar = "Star"

// Star returns a Constructor that builds a star with n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := addVertex(g, cfg, methodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addVertex(g, cfg, methodStar, leaf); err != nil {
				return err
			}
			if err := addEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
