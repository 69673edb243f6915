package isomorphism

import "fmt"

// MatchState is the mutable partial mapping explored by the search.
//
// It holds the two inverse maps and, per side, the number of mapped
// neighbors of every unmapped vertex (its terminal count). An unmapped vertex
// with a positive terminal count lies on the frontier. Slots of mapped
// vertices keep whatever count they held when they were mapped; read them
// through QueryTerminal and TargetTerminal, which report 0 for mapped
// vertices. Map and Unmap must be
// used with strict stack discipline: Unmap(n, m) undoes the most recent
// Map(n, m) still in force. Under that discipline every Map followed by the
// matching Unmap restores the state exactly.
type MatchState struct {
	query, target Graph

	mapQT []int // query -> target, Unmapped when free
	mapTQ []int // target -> query
	termQ []int
	termT []int
	size  int
}

// NewMatchState returns an empty state for the given pair of graphs.
func NewMatchState(query, target Graph) *MatchState {
	nQ, nT := query.VertexCount(), target.VertexCount()
	s := &MatchState{
		query:  query,
		target: target,
		mapQT:  make([]int, nQ),
		mapTQ:  make([]int, nT),
		termQ:  make([]int, nQ),
		termT:  make([]int, nT),
	}
	for i := range s.mapQT {
		s.mapQT[i] = Unmapped
	}
	for i := range s.mapTQ {
		s.mapTQ[i] = Unmapped
	}

	return s
}

// Map records n -> m and bumps the terminal count of every unmapped neighbor
// on both sides. Self-loop neighbors are skipped because the vertex itself is
// already mapped when its neighbors are visited.
//
// Map panics with an error wrapping ErrInvalidVertex when either index is out
// of range or already mapped.
func (s *MatchState) Map(n, m int) {
	if n < 0 || n >= len(s.mapQT) || m < 0 || m >= len(s.mapTQ) ||
		s.mapQT[n] != Unmapped || s.mapTQ[m] != Unmapped {
		panic(fmt.Errorf("isomorphism: Map(%d, %d): %w", n, m, ErrInvalidVertex))
	}
	s.mapQT[n] = m
	s.mapTQ[m] = n
	s.size++
	for _, nb := range s.query.Neighbors(n) {
		if s.mapQT[nb] == Unmapped {
			s.termQ[nb]++
		}
	}
	for _, nb := range s.target.Neighbors(m) {
		if s.mapTQ[nb] == Unmapped {
			s.termT[nb]++
		}
	}
}

// Unmap reverses Map(n, m).
//
// Unmap panics with an error wrapping ErrInvalidVertex when n is not
// currently mapped to m.
func (s *MatchState) Unmap(n, m int) {
	if n < 0 || n >= len(s.mapQT) || m < 0 || m >= len(s.mapTQ) || s.mapQT[n] != m {
		panic(fmt.Errorf("isomorphism: Unmap(%d, %d): %w", n, m, ErrInvalidVertex))
	}
	for _, nb := range s.query.Neighbors(n) {
		if s.mapQT[nb] == Unmapped {
			s.termQ[nb]--
		}
	}
	for _, nb := range s.target.Neighbors(m) {
		if s.mapTQ[nb] == Unmapped {
			s.termT[nb]--
		}
	}
	s.mapQT[n] = Unmapped
	s.mapTQ[m] = Unmapped
	s.size--
}

// Size returns the number of mapped pairs.
func (s *MatchState) Size() int { return s.size }

// IsComplete reports whether every query vertex is mapped.
func (s *MatchState) IsComplete() bool { return s.size == len(s.mapQT) }

// QueryCount returns the number of query vertices.
func (s *MatchState) QueryCount() int { return len(s.mapQT) }

// TargetCount returns the number of target vertices.
func (s *MatchState) TargetCount() int { return len(s.mapTQ) }

// QueryTarget returns the target partner of query vertex n, or Unmapped.
func (s *MatchState) QueryTarget(n int) int { return s.mapQT[n] }

// TargetQuery returns the query partner of target vertex m, or Unmapped.
func (s *MatchState) TargetQuery(m int) int { return s.mapTQ[m] }

// QueryTerminal returns the number of mapped neighbors of query vertex n,
// or 0 when n itself is mapped.
func (s *MatchState) QueryTerminal(n int) int {
	if s.mapQT[n] != Unmapped {
		return 0
	}

	return s.termQ[n]
}

// TargetTerminal returns the number of mapped neighbors of target vertex m,
// or 0 when m itself is mapped.
func (s *MatchState) TargetTerminal(m int) int {
	if s.mapTQ[m] != Unmapped {
		return 0
	}

	return s.termT[m]
}

// Mapping returns a copy of the query -> target map.
func (s *MatchState) Mapping() Mapping {
	out := make(Mapping, len(s.mapQT))
	copy(out, s.mapQT)

	return out
}

func (s *MatchState) queryFrontier(n int) bool {
	return s.mapQT[n] == Unmapped && s.termQ[n] > 0
}

func (s *MatchState) targetFrontier(m int) bool {
	return s.mapTQ[m] == Unmapped && s.termT[m] > 0
}
