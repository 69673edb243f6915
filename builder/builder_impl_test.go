// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, determinism and labeling.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/isomatch/builder"
	"github.com/katalvlaran/isomatch/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantEdges [][2]string // sample adjacencies that must exist
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, [][2]string{{"0", "1"}, {"4", "0"}}},
		{"Path(4)", builder.Path(4), 4, 3, [][2]string{{"0", "1"}, {"2", "3"}}},
		{"Star(4)", builder.Star(4), 4, 3, [][2]string{{"Center", "1"}, {"Center", "3"}}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, [][2]string{{"0", "1"}, {"3", "0"}, {"Center", "2"}}},
		{"Complete(4)", builder.Complete(4), 4, 6, [][2]string{{"0", "3"}, {"1", "2"}}},
		{"Complete(1)", builder.Complete(1), 1, 0, nil},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, [][2]string{{"L0", "R0"}, {"L1", "R2"}}},
		{"RandomSparse_p0(5)", builder.RandomSparse(5, 0.0), 5, 0, nil},
		{"RandomSparse_p1(5)", builder.RandomSparse(5, 1.0), 5, 10, [][2]string{{"0", "4"}}},
		{"Grid(2x3)", builder.Grid(2, 3), 6, 7, [][2]string{{"0,0", "0,1"}, {"0,0", "1,0"}, {"1,1", "1,2"}}},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron, false), 4, 6, [][2]string{{"0", "1"}}},
		{"Tetrahedron+Center", builder.PlatonicSolid(builder.Tetrahedron, true), 5, 10, [][2]string{{"Center", "0"}}},
		{"Cube", builder.PlatonicSolid(builder.Cube, false), 8, 12, [][2]string{{"0", "4"}, {"6", "7"}}},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron, false), 6, 12, [][2]string{{"0", "2"}}},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), 20, 30, [][2]string{{"0", "10"}}},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron, false), 12, 30, [][2]string{{"10", "11"}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph(%s) returned error: %v", tc.name, err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices: got %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}
			for _, e := range tc.wantEdges {
				if !g.HasEdge(e[0], e[1]) {
					t.Errorf("missing edge %s-%s", e[0], e[1])
				}
			}

			// Re-applying the constructor to the same graph is a no-op.
			if err = builder.Apply(g, nil, tc.ctor); err != nil {
				t.Fatalf("Apply(%s) returned error: %v", tc.name, err)
			}
			if g.VertexCount() != tc.wantV || g.EdgeCount() != tc.wantE {
				t.Errorf("idempotence: counts changed after re-run of %s", tc.name)
			}
		})
	}
}

// TestPlatonicRegularity checks every shell vertex has the solid's degree.
func TestPlatonicRegularity(t *testing.T) {
	t.Parallel()
	degrees := map[builder.PlatonicName]int{
		builder.Tetrahedron:  3,
		builder.Cube:         3,
		builder.Octahedron:   4,
		builder.Dodecahedron: 3,
		builder.Icosahedron:  5,
	}
	for name, want := range degrees {
		g, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(name, false))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, id := range g.VertexIDs() {
			if d, _ := g.Degree(id); d != want {
				t.Errorf("%s: degree(%s) = %d, want %d", name, id, d, want)
			}
		}
	}
}

// TestRandomRegular checks d-regularity and seed determinism.
func TestRandomRegular(t *testing.T) {
	t.Parallel()
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(10, 3))
		if err != nil {
			t.Fatalf("RandomRegular: %v", err)
		}
		return g
	}
	g1, g2 := build(), build()
	if g1.EdgeCount() != 15 {
		t.Fatalf("edges: got %d, want 15", g1.EdgeCount())
	}
	for _, id := range g1.VertexIDs() {
		if d, _ := g1.Degree(id); d != 3 {
			t.Errorf("degree(%s) = %d, want 3", id, d)
		}
	}
	for _, e := range g1.Edges() {
		if !g2.HasEdge(e.From, e.To) {
			t.Errorf("same seed produced a different edge set: %s-%s missing", e.From, e.To)
		}
	}

	g0, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 0))
	if err != nil || g0.EdgeCount() != 0 || g0.VertexCount() != 4 {
		t.Errorf("RandomRegular(4,0): err=%v V=%d E=%d", err, g0.VertexCount(), g0.EdgeCount())
	}
}

// TestRandomSparseDeterminism checks that equal seeds give equal graphs.
func TestRandomSparseDeterminism(t *testing.T) {
	t.Parallel()
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(99), builder.WithVertexAlphabet("C", "N", "O")}
	}
	g1, err := builder.BuildGraph(nil, opts(), builder.RandomSparse(12, 0.3))
	if err != nil {
		t.Fatal(err)
	}
	g2, err := builder.BuildGraph(nil, opts(), builder.RandomSparse(12, 0.3))
	if err != nil {
		t.Fatal(err)
	}
	if g1.EdgeCount() != g2.EdgeCount() {
		t.Fatalf("edge counts differ: %d vs %d", g1.EdgeCount(), g2.EdgeCount())
	}
	for _, v := range g1.Vertices() {
		w, _ := g2.Vertex(v.ID)
		if v.Label != w.Label {
			t.Errorf("label(%s): %q vs %q", v.ID, v.Label, w.Label)
		}
	}
}

// TestBuilderErrors verifies sentinel classification of invalid parameters.
func TestBuilderErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomRegular(odd)", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(d>=n)", builder.RandomRegular(3, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", builder.RandomRegular(4, 2), nil, builder.ErrNeedRandSource},
		{"PlatonicSolid(99)", builder.PlatonicSolid(builder.PlatonicName(99), false), nil, builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want errors.Is %v", err, tc.want)
			}
		})
	}

	if err := builder.Apply(nil, nil, builder.Path(3)); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("Apply(nil): got %v", err)
	}
}

// TestComposition builds a wheel and a pendant path over shared IDs.
func TestComposition(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(
		[]core.GraphOption{},
		[]builder.BuilderOption{builder.WithVertexLabelFn(builder.ConstantVertexLabel("C"))},
		builder.Wheel(5),
		builder.Path(6),
	)
	if err != nil {
		t.Fatal(err)
	}
	// Path(6) reuses 0..3 and the existing rim edges 0-1,1-2,2-3.
	if g.VertexCount() != 7 {
		t.Errorf("vertices: got %d, want 7", g.VertexCount())
	}
	if g.EdgeCount() != 10 {
		t.Errorf("edges: got %d, want 10", g.EdgeCount())
	}
}

func TestParsePlatonicName(t *testing.T) {
	t.Parallel()
	p, err := builder.ParsePlatonicName("cube")
	if err != nil || p != builder.Cube {
		t.Errorf("ParsePlatonicName(cube) = %v, %v", p, err)
	}
	if _, err = builder.ParsePlatonicName("sphere"); !errors.Is(err, builder.ErrOptionViolation) {
		t.Errorf("ParsePlatonicName(sphere): got %v", err)
	}
	if builder.PlatonicName(42).String() != "Unknown" {
		t.Error("unknown name should stringify as Unknown")
	}
}
