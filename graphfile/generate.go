package graphfile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/isomatch/builder"
	"github.com/katalvlaran/isomatch/core"
)

// Generator selects a builder topology.
//
//	kind       parameters
//	cycle      n
//	path       n
//	star       n
//	wheel      n
//	complete   n
//	bipartite  n, m
//	grid       n (rows), m (cols)
//	random     n, p, seed
//	regular    n, d, seed
//	platonic   solid, center
type Generator struct {
	Kind   string  `json:"kind"`
	N      int     `json:"n,omitempty"`
	M      int     `json:"m,omitempty"`
	D      int     `json:"d,omitempty"`
	P      float64 `json:"p,omitempty"`
	Seed   *int64  `json:"seed,omitempty"`
	Solid  string  `json:"solid,omitempty"`
	Center bool    `json:"center,omitempty"`

	IDPrefix     string   `json:"idPrefix,omitempty"`
	VertexLabels []string `json:"vertexLabels,omitempty"`
	EdgeLabels   []string `json:"edgeLabels,omitempty"`
}

func (gen *Generator) constructor() (builder.Constructor, error) {
	switch strings.ToLower(gen.Kind) {
	case "cycle":
		return builder.Cycle(gen.N), nil
	case "path":
		return builder.Path(gen.N), nil
	case "star":
		return builder.Star(gen.N), nil
	case "wheel":
		return builder.Wheel(gen.N), nil
	case "complete":
		return builder.Complete(gen.N), nil
	case "bipartite":
		return builder.CompleteBipartite(gen.N, gen.M), nil
	case "grid":
		return builder.Grid(gen.N, gen.M), nil
	case "random":
		return builder.RandomSparse(gen.N, gen.P), nil
	case "regular":
		return builder.RandomRegular(gen.N, gen.D), nil
	case "platonic":
		solid, err := builder.ParsePlatonicName(gen.Solid)
		if err != nil {
			return nil, err
		}
		return builder.PlatonicSolid(solid, gen.Center), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, gen.Kind)
	}
}

func (gen *Generator) options() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if gen.Seed != nil {
		opts = append(opts, builder.WithSeed(*gen.Seed))
	}
	if gen.IDPrefix != "" {
		opts = append(opts, builder.WithPrefixIDs(gen.IDPrefix))
	}
	if len(gen.VertexLabels) > 0 {
		opts = append(opts, builder.WithVertexAlphabet(gen.VertexLabels...))
	}
	if len(gen.EdgeLabels) > 0 {
		opts = append(opts, builder.WithEdgeAlphabet(gen.EdgeLabels...))
	}

	return opts
}

func (gen *Generator) apply(g *core.Graph) error {
	ctor, err := gen.constructor()
	if err != nil {
		return err
	}

	return builder.Apply(g, gen.options(), ctor)
}
