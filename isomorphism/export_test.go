package isomorphism

// Test hooks for the unexported generators and state internals.

var (
	NextQueryVertex  = nextQueryVertex
	NextTargetVertex = nextTargetVertex
)

// StateSnapshot is a deep copy of every field of a MatchState.
type StateSnapshot struct {
	MapQT, MapTQ []int
	TermQ, TermT []int
	Size         int
}

// Snapshot copies the raw state, including terminal counts of mapped vertices.
func (s *MatchState) Snapshot() StateSnapshot {
	return StateSnapshot{
		MapQT: append([]int(nil), s.mapQT...),
		MapTQ: append([]int(nil), s.mapTQ...),
		TermQ: append([]int(nil), s.termQ...),
		TermT: append([]int(nil), s.termT...),
		Size:  s.size,
	}
}
