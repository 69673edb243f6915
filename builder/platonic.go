// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// platonic.go - canonical shells of the five Platonic solids.
//
// The edge tables are part of the public contract: each is sorted by (U,V)
// with U < V, and vertex indices are mapped through cfg.idFn.

package builder

import (
	"fmt"
	"strings"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  |Aut|=24
	Cube                             // V=8,  E=12, |Aut|=48
	Octahedron                       // V=6,  E=12, |Aut|=48
	Dodecahedron                     // V=20, E=30, |Aut|=120
	Icosahedron                      // V=12, E=30, |Aut|=120
)

func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName resolves a case-insensitive solid name.
func ParsePlatonicName(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("builder: platonic solid %q: %w", s, ErrOptionViolation)
}

type chord struct{ U, V int }

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},
	// Two squares 0-1-2-3 and 4-5-6-7 joined by verticals i-(i+4).
	Cube: {
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
	},
	// Antipodal pairs (0,1), (2,3), (4,5) are the only non-edges.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},
	Dodecahedron: {
		{0, 1}, {0, 4}, {0, 10}, {1, 2}, {1, 12}, {2, 3},
		{2, 14}, {3, 4}, {3, 16}, {4, 18}, {5, 6}, {5, 9},
		{5, 11}, {6, 7}, {6, 13}, {7, 8}, {7, 15}, {8, 9},
		{8, 17}, {9, 19}, {10, 11}, {10, 19}, {11, 12}, {12, 13},
		{13, 14}, {14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
	},
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {1, 6}, {1, 7}, {2, 3},
		{2, 7}, {2, 8}, {3, 4}, {3, 8}, {3, 9},
		{4, 5}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {6, 11}, {7, 8}, {7, 11},
		{8, 9}, {8, 11}, {9, 10}, {9, 11}, {10, 11},
	},
}
