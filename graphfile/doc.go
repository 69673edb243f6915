// Package graphfile reads and writes labeled graphs as YAML or JSON
// documents. Input is decoded with YAML 1.2 scalar rules (go.yaml.in/yaml/v3)
// and then bound through the JSON field tags; output goes through
// sigs.k8s.io/yaml.
//
//	name: acetaldehyde
//	vertices:
//	  - {id: c1, label: C}
//	  - {id: c2, label: C}
//	  - {id: o1, label: O, meta: {charge: 0}}
//	edges:
//	  - {from: c1, to: c2, label: single}
//	  - {from: c2, to: o1, label: double}
//
// A document may instead (or additionally) describe a generated topology:
//
//	name: ring
//	generate: {kind: cycle, n: 6, vertexLabels: [C], edgeLabels: [aromatic]}
//
// The generator runs first; explicit vertices then set labels and metadata,
// and explicit edges are added or relabeled.
package graphfile
