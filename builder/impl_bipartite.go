// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs cfg.leftPrefix+i, right IDs cfg.rightPrefix+j (default "L0".., "R0"..).
//   • Edges L_i-R_j emitted row-major (i ascending, then j).
//
// Complexity: O(n1+n2) vertices + n1*n2 edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				methodCompleteBipartite, MinPartition, n1, n2, ErrTooFewVertices)
		}
		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		for _, id := range append(append([]string(nil), left...), right...) {
			if err := addVertex(g, cfg, methodCompleteBipartite, id); err != nil {
				return err
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
