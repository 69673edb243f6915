package isomorphism

// Candidate generation. Both generators are cursor based: they take the last
// index returned at this depth (-1 to start) and yield the next one, or the
// vertex count of their side as a sentinel once nothing is left.

// nextQueryVertex returns the smallest unmapped frontier query vertex above
// prev, otherwise the smallest unmapped query vertex above prev. With an
// empty mapping it simply returns prev+1.
func nextQueryVertex(s *MatchState, prev int) int {
	nQ := len(s.mapQT)
	if s.size == 0 {
		return min(prev+1, nQ)
	}
	for i := prev + 1; i < nQ; i++ {
		if s.queryFrontier(i) {
			return i
		}
	}
	for i := prev + 1; i < nQ; i++ {
		if s.mapQT[i] == Unmapped {
			return i
		}
	}

	return nQ
}

// nextTargetVertex returns the next target candidate for query vertex n
// above prevM. A frontier query vertex can only land on a frontier target
// vertex, so only those are yielded for it. A query vertex off the frontier
// may land anywhere unmapped and every unmapped target is yielded in index
// order.
func nextTargetVertex(s *MatchState, n, prevM int) int {
	nT := len(s.mapTQ)
	if s.size == 0 {
		return min(prevM+1, nT)
	}
	onFrontier := s.queryFrontier(n)
	for i := prevM + 1; i < nT; i++ {
		if s.mapTQ[i] != Unmapped {
			continue
		}
		if !onFrontier || s.termT[i] > 0 {
			return i
		}
	}

	return nT
}
