// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices cfg.idFn(0..n-1); edges for every pair i<j, i ascending then j.
//
// Complexity: O(n) vertices + n(n-1)/2 edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := addVertex(g, cfg, methodComplete, ids[i]); err != nil {
				return err
			}
		}

		return addCompleteEdges(g, cfg, methodComplete, ids)
	}
}
