package isomorphism

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ctxPollInterval is the number of Map steps between context checks.
const ctxPollInterval = 1024

// cursor is one frame of the backtracking stack: the pair committed at
// that depth. Its target index doubles as the resume point for the depth.
type cursor struct{ n, m int }

// Enumerator lazily produces every mapping of a query graph into a target
// graph. It is driven by an explicit cursor stack, so recursion depth does
// not grow with the query size. An Enumerator is not safe for concurrent use.
type Enumerator struct {
	opts   Options
	step   stepper
	stack  *arraystack.Stack
	n, m   int
	status SearchState

	pending    Mapping
	hasPending bool
	err        error
	stats      Stats
}

// NewSearch prepares a lazy search of query in target. No work happens until
// the first HasNext or Next call.
//
// Subgraph mode with more query than target vertices, and Exact mode with
// differing vertex counts, return an Enumerator that is already Exhausted.
//
// Errors: ErrNilGraph, ErrUnknownMode, ErrUnknownAlgorithm.
func NewSearch(query, target Graph, opts ...Option) (*Enumerator, error) {
	if query == nil || target == nil {
		return nil, ErrNilGraph
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	e := &Enumerator{opts: o, stack: arraystack.New(), status: Ready}
	nQ, nT := query.VertexCount(), target.VertexCount()
	if (o.Mode == Subgraph && nQ > nT) || (o.Mode == Exact && nQ != nT) {
		e.status = Exhausted

		return e, nil
	}

	switch o.Algorithm {
	case Ullmann:
		e.step = newUllmannStepper(query, target, o)
	default:
		e.step = &vf2Stepper{
			s:       NewMatchState(query, target),
			checker: NewChecker(query, target, o.VertexMatch, o.EdgeMatch, o.Mode),
		}
	}
	e.n, e.m = e.step.nextN(-1), -1

	return e, nil
}

// HasNext reports whether another mapping is available, running the search
// forward if needed. The found mapping is buffered until Next consumes it,
// so repeated HasNext calls do not skip results.
func (e *Enumerator) HasNext() bool {
	if e.hasPending {
		return true
	}
	if e.status == Exhausted {
		return false
	}
	found, err := e.advance()
	if err != nil {
		e.err = err
		e.status = Exhausted

		return false
	}
	if !found {
		e.status = Exhausted

		return false
	}
	e.pending = e.step.mapping()
	e.hasPending = true
	e.stats.Emitted++

	return true
}

// Next returns the next mapping. Once the search is exhausted it returns
// ErrNoMoreMappings, or the error that stopped the search
// (ErrStepBudgetExceeded or the context error).
func (e *Enumerator) Next() (Mapping, error) {
	if !e.HasNext() {
		if e.err != nil {
			return nil, e.err
		}

		return nil, ErrNoMoreMappings
	}
	out := e.pending
	e.pending, e.hasPending = nil, false

	return out, nil
}

// All yields the remaining mappings. Iteration stops silently on error;
// check Err afterwards.
func (e *Enumerator) All() iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		for e.HasNext() {
			m, _ := e.Next()
			if !yield(m) {
				return
			}
		}
	}
}

// Err returns the error that stopped the search early, if any.
func (e *Enumerator) Err() error { return e.err }

// State returns the lifecycle phase.
func (e *Enumerator) State() SearchState { return e.status }

// Stats returns the work counters accumulated so far.
func (e *Enumerator) Stats() Stats { return e.stats }

// advance runs the search until the next complete mapping (true) or until
// the space is exhausted (false).
func (e *Enumerator) advance() (bool, error) {
	if e.status == Ready {
		e.status = Searching
		if err := e.opts.Ctx.Err(); err != nil {
			return false, err
		}
		if e.step.complete() {
			return true, nil // empty query: one empty mapping
		}
	}

	nMax, mMax := e.step.nMax(), e.step.mMax()
search:
	for {
		// depth finished (complete mapping or no candidates left): backtrack
		if e.n >= nMax || e.m >= mMax {
			top, ok := e.stack.Pop()
			if !ok {
				return false, nil
			}
			c := top.(cursor)
			e.step.remove(c.n, c.m)
			e.stats.Unmaps++
			e.n, e.m = c.n, c.m
		}

		for e.m = e.step.nextM(e.n, e.m); e.m < mMax; e.m = e.step.nextM(e.n, e.m) {
			if !e.step.add(e.n, e.m) {
				continue
			}
			e.stats.Maps++
			e.stack.Push(cursor{n: e.n, m: e.m})
			e.n, e.m = e.step.nextN(-1), -1
			if err := e.checkBudget(); err != nil {
				return false, err
			}
			if e.step.complete() {
				return true, nil
			}
			continue search
		}
	}
}

func (e *Enumerator) checkBudget() error {
	if e.opts.MaxSteps > 0 && e.stats.Maps > e.opts.MaxSteps {
		return fmt.Errorf("isomorphism: %d map steps: %w", e.opts.MaxSteps, ErrStepBudgetExceeded)
	}
	if e.stats.Maps%ctxPollInterval == 0 {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}
	}

	return nil
}
