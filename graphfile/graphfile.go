package graphfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	yamlv3 "go.yaml.in/yaml/v3"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/isomatch/core"
)

var (
	// ErrInvalidDocument reports a structurally invalid document.
	ErrInvalidDocument = errors.New("graphfile: invalid document")
	// ErrUnknownGenerator reports an unsupported generate.kind.
	ErrUnknownGenerator = errors.New("graphfile: unknown generator")
)

// Document is the on-disk form of one labeled graph.
type Document struct {
	Name     string       `json:"name,omitempty"`
	Loops    bool         `json:"loops,omitempty"`
	Generate *Generator   `json:"generate,omitempty"`
	Vertices []VertexSpec `json:"vertices,omitempty"`
	Edges    []EdgeSpec   `json:"edges,omitempty"`
}

// VertexSpec describes one vertex.
type VertexSpec struct {
	ID    string         `json:"id"`
	Label string         `json:"label,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// EdgeSpec describes one undirected edge.
type EdgeSpec struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Label string         `json:"label,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// Parse decodes a YAML or JSON document. Unknown fields are rejected.
//
// Scalars resolve under YAML 1.2 rules: only true/false are booleans, so
// keys such as n and labels such as N, Y or on stay strings.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}

	return doc, nil
}

// LoadAll loads every path in order, stopping at the first failure.
func LoadAll(paths []string) ([]*Document, error) {
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Marshal encodes doc as YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (d *Document) validate() error {
	seen := make(map[string]bool, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.ID == "" {
			return fmt.Errorf("%w: vertex %d has no id", ErrInvalidDocument, i)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: vertex %q listed twice", ErrInvalidDocument, v.ID)
		}
		seen[v.ID] = true
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d needs from and to", ErrInvalidDocument, i)
		}
	}

	return nil
}

// Graph materializes the document as a core.Graph.
func (d *Document) Graph() (*core.Graph, error) {
	var gopts []core.GraphOption
	if d.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)
	if d.Generate != nil {
		if err := d.Generate.apply(g); err != nil {
			return nil, fmt.Errorf("graphfile: %s: %w", d.Name, err)
		}
	}

	for _, v := range d.Vertices {
		if err := g.AddLabeledVertex(v.ID, v.Label); err != nil {
			return nil, fmt.Errorf("graphfile: %s: vertex %q: %w", d.Name, v.ID, err)
		}
		for k, val := range v.Meta {
			if err := g.SetVertexMetadata(v.ID, k, val); err != nil {
				return nil, fmt.Errorf("graphfile: %s: vertex %q: %w", d.Name, v.ID, err)
			}
		}
	}

	for _, e := range d.Edges {
		if existing, err := g.Edge(e.From, e.To); err == nil {
			if err = g.SetEdgeLabel(existing.ID, e.Label); err != nil {
				return nil, fmt.Errorf("graphfile: %s: edge %s-%s: %w", d.Name, e.From, e.To, err)
			}
			continue
		}
		opts := []core.EdgeOption{core.WithEdgeLabel(e.Label)}
		for k, val := range e.Meta {
			opts = append(opts, core.WithEdgeMetadata(k, val))
		}
		if _, err := g.AddEdge(e.From, e.To, opts...); err != nil {
			return nil, fmt.Errorf("graphfile: %s: edge %s-%s: %w", d.Name, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as an explicit document (no generator).
func FromGraph(name string, g *core.Graph) *Document {
	doc := &Document{Name: name, Loops: g.Looped()}
	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, VertexSpec{ID: v.ID, Label: v.Label, Meta: nonEmpty(v.Metadata)})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Label: e.Label, Meta: nonEmpty(e.Metadata)})
	}

	return doc
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}

	return m
}
