// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// CenterVertexID is the identifier for the hub vertex in Star, Wheel,
// and stellated Platonic solids.
const CenterVertexID = "Center"

// Minimum sizes per topology.
const (
	// MinCycleNodes: a ring needs three vertices without loops or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a cycle of at least 3 nodes plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single isolated vertex.
	MinCompleteNodes = 1
	// MinGridDim: a 1x1 grid has no edges but is valid.
	MinGridDim = 1
	// MinPartition: each side of K_{n1,n2} must be non-empty.
	MinPartition = 1
)

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
