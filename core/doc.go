// Package core provides a thread-safe in-memory labeled graph used as the
// authoring model for query and target graphs.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Every vertex and edge carries a Label and a Metadata map.
//   - Parallel edges are rejected (ErrMultiEdgeNotAllowed).
//   - Self-loops are rejected unless the graph was built WithLoops.
//   - Edge IDs are generated atomically ("e1", "e2", ...).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order muVert -> muEdgeAdj.
//
// Deterministic iteration:
//
//	Vertices(), VertexIDs(), NeighborIDs()  sorted by ID
//	Edges(), Neighbors()                    insertion order
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id) error                     // O(1)
//	AddLabeledVertex(id, label) error       // O(1), relabels existing
//	SetVertexLabel / SetVertexMetadata      // O(1)
//	HasVertex(id) bool, Vertex(id)          // O(1)
//	RemoveVertex(id) error                  // O(deg)
//
//	// Edge lifecycle
//	AddEdge(from, to, opts...) (id, error)  // O(1), WithEdgeLabel, WithEdgeMetadata
//	RemoveEdge(id) error                    // O(1)
//	HasEdge(from, to) bool, Edge(from, to)  // O(1)
//	GetEdge(id), SetEdgeLabel(id, label)    // O(1)
//
//	// Query
//	Neighbors(id) ([]*Edge, error)          // O(d log d)
//	NeighborIDs(id) ([]string, error)       // O(d log d)
//	Degree(id) (int, error)                 // loop counts once
//	VertexCount(), EdgeCount()              // O(1)
//
//	// Copies
//	Clone() *Graph                          // O(V+E)
//	InducedSubgraph(keep) *Graph            // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrEdgeNotFound        - missing edge
//	ErrLoopNotAllowed      - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed - second edge between the same pair
package core
