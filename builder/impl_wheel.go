// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim: Cycle(n-1) over cfg.idFn(0..n-2).
//   • Hub: CenterVertexID with spokes to every rim vertex in index order.
//
// Complexity: O(n) vertices + 2(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := addVertex(g, cfg, methodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
