// Package builder: shared helpers used by Constructor implementations.
//
// Every constructor funnels vertex and edge creation through addVertex and
// addEdge so labeling and idempotence behave the same across topologies.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/isomatch/core"
)

// addVertex creates id if it is absent, labeling it with cfg.vertexLabelFn.
// An existing vertex is left untouched, so composing constructors over
// shared IDs never relabels earlier work.
func addVertex(g *core.Graph, cfg builderConfig, method, id string) error {
	if g.HasVertex(id) {
		return nil
	}
	var err error
	if cfg.vertexLabelFn != nil {
		err = g.AddLabeledVertex(id, cfg.vertexLabelFn(id, cfg.rng))
	} else {
		err = g.AddVertex(id)
	}
	if err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addVertices adds cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := addVertex(g, cfg, method, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// addEdge connects u and v unless they are already adjacent, labeling the
// new edge with cfg.edgeLabelFn.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if g.HasEdge(u, v) {
		return nil
	}
	var opts []core.EdgeOption
	if cfg.edgeLabelFn != nil {
		opts = append(opts, core.WithEdgeLabel(cfg.edgeLabelFn(u, v, cfg.rng)))
	}
	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids, i<j ascending.
// Complexity: O(m²) for m = len(ids).
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) -> {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
