package isomorphism

// stepper is the contract between the Enumerator's backtracking loop and a
// concrete state implementation.
type stepper interface {
	nextN(prev int) int
	nextM(n, prev int) int
	nMax() int
	mMax() int
	add(n, m int) bool
	remove(n, m int)
	complete() bool
	mapping() Mapping
}

// vf2Stepper couples a MatchState with the VF2 Checker and the
// frontier-first candidate generators.
type vf2Stepper struct {
	s       *MatchState
	checker Checker
}

func (v *vf2Stepper) nextN(prev int) int    { return nextQueryVertex(v.s, prev) }
func (v *vf2Stepper) nextM(n, prev int) int { return nextTargetVertex(v.s, n, prev) }
func (v *vf2Stepper) nMax() int             { return len(v.s.mapQT) }
func (v *vf2Stepper) mMax() int             { return len(v.s.mapTQ) }
func (v *vf2Stepper) complete() bool        { return v.s.IsComplete() }
func (v *vf2Stepper) mapping() Mapping      { return v.s.Mapping() }
func (v *vf2Stepper) remove(n, m int)       { v.s.Unmap(n, m) }

func (v *vf2Stepper) add(n, m int) bool {
	if !v.checker.Feasible(v.s, n, m) {
		return false
	}
	v.s.Map(n, m)

	return true
}

// compatMatrix is a dense nQ x nT matrix of candidate flags. A positive
// cell is a live candidate, zero is never compatible, and a negative cell
// -(row+1) was eliminated while row was being extended.
type compatMatrix struct {
	cells []int32
	cols  int
}

func (x *compatMatrix) get(i, j int) bool      { return x.cells[i*x.cols+j] > 0 }
func (x *compatMatrix) set(i, j int)           { x.cells[i*x.cols+j] = 1 }
func (x *compatMatrix) mark(i, j int, v int32) { x.cells[i*x.cols+j] = v }

func (x *compatMatrix) markRow(i int, v int32) {
	row := x.cells[i*x.cols : (i+1)*x.cols]
	for j := range row {
		if row[j] > 0 {
			row[j] = v
		}
	}
}

// resetRows revives every cell at or below row i carrying marking v.
func (x *compatMatrix) resetRows(i int, v int32) {
	for k := i * x.cols; k < len(x.cells); k++ {
		if x.cells[k] == v {
			x.cells[k] = 1
		}
	}
}

func (x *compatMatrix) hasCandidate(i int) bool {
	for _, c := range x.cells[i*x.cols : (i+1)*x.cols] {
		if c > 0 {
			return true
		}
	}

	return false
}

// ullmannStepper maps query vertices in index order, restricting each
// row of the compatibility matrix and refining the rows below it.
type ullmannStepper struct {
	s             *MatchState
	query, target Graph
	edgeMatch     EdgeMatcher
	matrix        compatMatrix
}

func newUllmannStepper(query, target Graph, o Options) *ullmannStepper {
	nQ, nT := query.VertexCount(), target.VertexCount()
	u := &ullmannStepper{
		s:         NewMatchState(query, target),
		query:     query,
		target:    target,
		edgeMatch: o.EdgeMatch,
		matrix:    compatMatrix{cells: make([]int32, nQ*nT), cols: nT},
	}
	exact := o.Mode == Exact
	for i := 0; i < nQ; i++ {
		di := len(query.Neighbors(i))
		qLoop, hasLoop := query.EdgeID(i, i)
		for j := 0; j < nT; j++ {
			dj := len(target.Neighbors(j))
			if (exact && di != dj) || di > dj {
				continue
			}
			tLoop, tHasLoop := target.EdgeID(j, j)
			if hasLoop && (!tHasLoop || !o.EdgeMatch(qLoop, tLoop)) {
				continue
			}
			if exact && tHasLoop && !hasLoop {
				continue
			}
			if o.VertexMatch(i, j) {
				u.matrix.set(i, j)
			}
		}
	}

	return u
}

func (u *ullmannStepper) nMax() int        { return len(u.s.mapQT) }
func (u *ullmannStepper) mMax() int        { return len(u.s.mapTQ) }
func (u *ullmannStepper) complete() bool   { return u.s.IsComplete() }
func (u *ullmannStepper) mapping() Mapping { return u.s.Mapping() }

// nextN ignores prev: rows are always filled in order.
func (u *ullmannStepper) nextN(int) int { return u.s.size }

func (u *ullmannStepper) nextM(_, prev int) int {
	for j := prev + 1; j < len(u.s.mapTQ); j++ {
		if u.s.mapTQ[j] == Unmapped {
			return j
		}
	}

	return len(u.s.mapTQ)
}

func (u *ullmannStepper) add(n, m int) bool {
	if !u.matrix.get(n, m) {
		return false
	}
	marking := -int32(n + 1)
	u.matrix.markRow(n, marking)
	u.matrix.set(n, m)
	u.s.Map(n, m)
	if !u.refine(n) {
		u.s.Unmap(n, m)
		u.matrix.resetRows(n, marking)

		return false
	}

	return true
}

func (u *ullmannStepper) remove(n, m int) {
	u.s.Unmap(n, m)
	u.matrix.resetRows(n, -int32(n+1))
}

// refine drops candidates below row until a fixpoint is reached. It fails as
// soon as a row loses its last candidate.
func (u *ullmannStepper) refine(row int) bool {
	marking := -int32(row + 1)
	nQ := len(u.s.mapQT)
	for changed := true; changed; {
		changed = false
		for i := row + 1; i < nQ; i++ {
			for j := 0; j < u.matrix.cols; j++ {
				if u.matrix.get(i, j) && !u.verify(i, j) {
					u.matrix.mark(i, j, marking)
					changed = true
					if !u.matrix.hasCandidate(i) {
						return false
					}
				}
			}
		}
	}

	return true
}

// verify checks that every query neighbor of i still has a live candidate
// among the target neighbors of j joined by a compatible edge.
func (u *ullmannStepper) verify(i, j int) bool {
	for _, ni := range u.query.Neighbors(i) {
		if ni == i {
			continue
		}
		qe, _ := u.query.EdgeID(i, ni)
		found := false
		for _, nj := range u.target.Neighbors(j) {
			if nj == j || !u.matrix.get(ni, nj) {
				continue
			}
			te, _ := u.target.EdgeID(j, nj)
			if u.edgeMatch(qe, te) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
