// File: types.go
// Role: Vertex, Edge, Graph declarations, options and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair of vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a labeled node.
//
// Label is the value compared by label predicates during matching.
// Metadata stores arbitrary key-value data; Clone copies the map shallowly.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Label classifies the vertex (element symbol, node type, ...).
	Label string

	// Metadata stores arbitrary user data.
	Metadata map[string]any
}

// Edge is an undirected labeled connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs in insertion order.
	From string
	To   string

	// Label classifies the edge (bond order, relation type, ...).
	Label string

	// Metadata stores arbitrary user data.
	Metadata map[string]any

	seq uint64 // insertion ordinal, orders Edges() numerically
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph at creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeLabel sets the label of the new edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// WithEdgeMetadata attaches a metadata entry to the new edge.
func WithEdgeMetadata(key string, value any) EdgeOption {
	return func(e *Edge) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}

// Graph is an in-memory undirected simple graph with labeled vertices and
// edges. Parallel edges are never allowed; self-loops only with WithLoops.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[u][v] = edge ID joining u and v, mirrored for u != v.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
