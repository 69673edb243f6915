// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   • Unknown name -> ErrOptionViolation.
//   • Shell vertices cfg.idFn(0..V-1); shell edges in the table order of platonic.go.
//   • withCenter adds CenterVertexID and spokes to every shell vertex.
//
// Complexity: O(V+E) for the chosen solid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for a fixed Platonic topology.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		if err := addVertices(g, cfg, methodPlatonicSolid, n); err != nil {
			return err
		}
		for _, ch := range platonicEdgeSets[name] {
			if err := addEdge(g, cfg, methodPlatonicSolid, cfg.idFn(ch.U), cfg.idFn(ch.V)); err != nil {
				return err
			}
		}
		if !withCenter {
			return nil
		}
		if err := addVertex(g, cfg, methodPlatonicSolid, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodPlatonicSolid, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
