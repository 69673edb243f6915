package isomorphism

// Checker decides whether the pair (n, m) may extend the mapping held in s.
// A Checker never mutates s and must not reject a pair that extends to a
// valid complete mapping.
type Checker interface {
	Feasible(s *MatchState, n, m int) bool
}

// NewChecker returns the VF2 feasibility rules for the given graphs,
// predicates and mode. Nil predicates accept every pair.
func NewChecker(query, target Graph, vertexMatch VertexMatcher, edgeMatch EdgeMatcher, mode Mode) Checker {
	if vertexMatch == nil {
		vertexMatch = AnyVertex
	}
	if edgeMatch == nil {
		edgeMatch = AnyEdge
	}

	return &vf2Checker{
		query:       query,
		target:      target,
		vertexMatch: vertexMatch,
		edgeMatch:   edgeMatch,
		exact:       mode == Exact,
	}
}

type vf2Checker struct {
	query, target Graph
	vertexMatch   VertexMatcher
	edgeMatch     EdgeMatcher
	exact         bool
}

// neighborhood classifies the neighbors of one vertex against the state.
type neighborhood struct {
	mapped   int  // neighbors already in the mapping
	terminal int  // unmapped frontier neighbors
	fresh    int  // unmapped neighbors off the frontier
	loop     bool // vertex is its own neighbor
}

// Feasible applies, in order:
//  1. the vertex predicate on (n, m);
//  2. degree equality (Exact only);
//  3. self-loop correspondence;
//  4. every mapped query neighbor n' of n must have M(n') adjacent to m,
//     with a compatible edge;
//  5. in Exact mode the converse: every mapped target neighbor of m must
//     be the image of a query neighbor of n;
//  6. the terminal/fresh look-ahead counts.
func (c *vf2Checker) Feasible(s *MatchState, n, m int) bool {
	if !c.vertexMatch(n, m) {
		return false
	}
	qNbrs := c.query.Neighbors(n)
	tNbrs := c.target.Neighbors(m)
	if c.exact && len(qNbrs) != len(tNbrs) {
		return false
	}

	var q neighborhood
	for _, nb := range qNbrs {
		if nb == n {
			q.loop = true
			continue
		}
		mb := s.mapQT[nb]
		switch {
		case mb != Unmapped:
			te, ok := c.target.EdgeID(m, mb)
			if !ok {
				return false
			}
			qe, _ := c.query.EdgeID(n, nb)
			if !c.edgeMatch(qe, te) {
				return false
			}
			q.mapped++
		case s.termQ[nb] > 0:
			q.terminal++
		default:
			q.fresh++
		}
	}

	var t neighborhood
	for _, nb := range tNbrs {
		if nb == m {
			t.loop = true
			continue
		}
		switch {
		case s.mapTQ[nb] != Unmapped:
			t.mapped++
		case s.termT[nb] > 0:
			t.terminal++
		default:
			t.fresh++
		}
	}

	if q.loop {
		if !t.loop {
			return false
		}
		qe, _ := c.query.EdgeID(n, n)
		te, _ := c.target.EdgeID(m, m)
		if !c.edgeMatch(qe, te) {
			return false
		}
	}

	if c.exact {
		// Mapped neighbors of n already land on distinct mapped neighbors of
		// m, so equal counts make that correspondence a bijection.
		return q.loop == t.loop &&
			q.mapped == t.mapped &&
			q.terminal == t.terminal &&
			q.fresh == t.fresh
	}

	return q.terminal <= t.terminal &&
		q.terminal+q.fresh <= t.terminal+t.fresh
}
