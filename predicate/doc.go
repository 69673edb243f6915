// Package predicate builds vertex and edge compatibility predicates for the
// matching engine on top of converters.Indexed snapshots.
//
// Label predicates:
//
//	LabelOrWildcard(q, t)      query label "*" matches any target label
//	EdgeLabelOrWildcard(q, t)  same for edges
//
// Expression predicates (CEL, github.com/google/cel-go):
//
//	CompileVertex(`q.label == t.label && t.degree >= q.degree`)
//	CompileEdge(`q.label == "*" || q.label == t.label`)
//
// Vertex expressions see q and t as maps with keys id, label, degree and
// meta. Edge expressions see id, label, from, to and meta. An expression
// must have type bool. A runtime evaluation error makes the predicate
// answer false; the first such error is kept and returned by Err.
package predicate
