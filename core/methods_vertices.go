// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices sorted by ID ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency bootstrap under muEdgeAdj.
package core

import "sort"

// AddVertex inserts an unlabeled vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	_, err := g.addVertex(id, "", false)

	return err
}

// AddLabeledVertex inserts a vertex with the given label, or relabels it if
// it already exists.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
func (g *Graph) AddLabeledVertex(id, label string) error {
	_, err := g.addVertex(id, label, true)

	return err
}

// addVertex registers id and, when relabel is set, overwrites its label.
//
// Implementation:
//   - Stage 1: Validate non-empty ID.
//   - Stage 2: Under muVert, create or relabel the vertex record.
//   - Stage 3: Under muEdgeAdj, bootstrap the adjacency bucket.
func (g *Graph) addVertex(id, label string, relabel bool) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, exists := g.vertices[id]; exists {
		if relabel {
			v.Label = label
		}

		return v, nil
	}
	v := &Vertex{ID: id, Label: label, Metadata: make(map[string]any)}
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return v, nil
}

// SetVertexLabel changes the label of an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetVertexLabel(id, label string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Label = label

	return nil
}

// SetVertexMetadata stores a metadata entry on an existing vertex.
func (g *Graph) SetVertexMetadata(id, key string, value any) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID => false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored vertex record. The pointer is shared with the
// graph; treat it as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes a vertex and every incident edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	for nb, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		if nb != id {
			delete(g.adjacency[nb], id)
		}
	}
	delete(g.adjacency, id)
	g.muEdgeAdj.Unlock()

	delete(g.vertices, id)

	return nil
}

// Vertices returns every vertex sorted by ID.
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexIDs returns every vertex ID sorted ascending.
func (g *Graph) VertexIDs() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id, a self-loop
// counting once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return 0, ErrEmptyVertexID
		}

		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
