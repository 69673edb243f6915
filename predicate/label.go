package predicate

import (
	"github.com/katalvlaran/isomatch/converters"
	"github.com/katalvlaran/isomatch/isomorphism"
)

// Wildcard is the query label that matches every target label.
const Wildcard = "*"

// LabelOrWildcard accepts (q, t) when the query vertex is labeled Wildcard
// or both labels are equal.
func LabelOrWildcard(q, t *converters.Indexed) isomorphism.VertexMatcher {
	return func(qi, ti int) bool {
		ql := q.VertexAt(qi).Label

		return ql == Wildcard || ql == t.VertexAt(ti).Label
	}
}

// EdgeLabelOrWildcard accepts (q, t) when the query edge is labeled Wildcard
// or both labels are equal.
func EdgeLabelOrWildcard(q, t *converters.Indexed) isomorphism.EdgeMatcher {
	return func(qe, te int) bool {
		ql := q.EdgeAt(qe).Label

		return ql == Wildcard || ql == t.EdgeAt(te).Label
	}
}
