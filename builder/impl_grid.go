// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are the fixed coordinate scheme "r,c" (cfg.idFn is not used).
//   • Row-major traversal; per cell emit the right edge, then the bottom edge.
//
// Complexity: O(R*C) vertices + R(C-1)+C(R-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertex(g, cfg, methodGrid, gridVertexID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
