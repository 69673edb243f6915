package isomorphism

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
)

// Count runs a full search and returns the number of mappings.
func Count(query, target Graph, opts ...Option) (int, error) {
	e, err := NewSearch(query, target, opts...)
	if err != nil {
		return 0, err
	}
	total := 0
	for range e.All() {
		total++
	}

	return total, e.Err()
}

// First returns the first mapping in search order. The boolean is false when
// no mapping exists.
func First(query, target Graph, opts ...Option) (Mapping, bool, error) {
	e, err := NewSearch(query, target, opts...)
	if err != nil {
		return nil, false, err
	}
	m, err := e.Next()
	switch {
	case errors.Is(err, ErrNoMoreMappings):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	return m, true, nil
}

// Matches reports whether at least one mapping exists.
func Matches(query, target Graph, opts ...Option) (bool, error) {
	_, ok, err := First(query, target, opts...)

	return ok, err
}

// Collect drains up to limit mappings from e. A non-positive limit drains
// everything. The mappings gathered before an error are returned with it.
func Collect(e *Enumerator, limit int) ([]Mapping, error) {
	var out []Mapping
	for m := range e.All() {
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out, e.Err()
}

// Limit truncates seq after n mappings. A non-positive n passes seq through.
func Limit(seq iter.Seq[Mapping], n int) iter.Seq[Mapping] {
	if n <= 0 {
		return seq
	}

	return func(yield func(Mapping) bool) {
		count := 0
		for m := range seq {
			if !yield(m) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// UniqueVertexSets keeps the first mapping for every distinct set of target
// vertices, dropping mappings that only permute the same image.
func UniqueVertexSets(seq iter.Seq[Mapping]) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		seen := make(map[string]struct{})
		for m := range seq {
			key := setKey(slices.Clone(m))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if !yield(m) {
				return
			}
		}
	}
}

// UniqueEdgeSets keeps the first mapping for every distinct set of target
// edges covered by the query edges.
func UniqueEdgeSets(query, target Graph, seq iter.Seq[Mapping]) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		seen := make(map[string]struct{})
		ids := make([]int, 0)
		for m := range seq {
			ids = ids[:0]
			for u := 0; u < query.VertexCount(); u++ {
				for _, v := range query.Neighbors(u) {
					if v < u {
						continue
					}
					if id, ok := target.EdgeID(m[u], m[v]); ok {
						ids = append(ids, id)
					}
				}
			}
			key := setKey(ids)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if !yield(m) {
				return
			}
		}
	}
}

// setKey sorts xs in place and renders it as a comma separated key.
func setKey(xs []int) string {
	slices.Sort(xs)
	buf := make([]byte, 0, len(xs)*4)
	for i, x := range xs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(x), 10)
	}

	return string(buf)
}

// Verify checks that m is a valid mapping of query into target under the
// given options: injective, edge preserving, predicate compatible and, in
// Exact mode, bijective with matching edge counts.
func Verify(query, target Graph, m Mapping, opts ...Option) error {
	if query == nil || target == nil {
		return ErrNilGraph
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	nQ, nT := query.VertexCount(), target.VertexCount()
	if len(m) != nQ {
		return fmt.Errorf("isomorphism: mapping has %d entries for %d query vertices: %w", len(m), nQ, ErrInvalidVertex)
	}
	if o.Mode == Exact && nQ != nT {
		return fmt.Errorf("isomorphism: exact mapping between %d and %d vertices: %w", nQ, nT, ErrInvalidVertex)
	}
	used := make(map[int]int, nQ)
	for q, t := range m {
		if t < 0 || t >= nT {
			return fmt.Errorf("isomorphism: query %d -> %d: %w", q, t, ErrVertexOutOfRange)
		}
		if prev, dup := used[t]; dup {
			return fmt.Errorf("isomorphism: query %d and %d both map to %d: %w", prev, q, t, ErrInvalidVertex)
		}
		used[t] = q
		if !o.VertexMatch(q, t) {
			return fmt.Errorf("isomorphism: query %d -> %d rejected by vertex predicate", q, t)
		}
	}

	qEdges := 0
	for u := 0; u < nQ; u++ {
		for _, v := range query.Neighbors(u) {
			if v < u {
				continue
			}
			qEdges++
			qe, _ := query.EdgeID(u, v)
			te, ok := target.EdgeID(m[u], m[v])
			if !ok {
				return fmt.Errorf("isomorphism: query edge (%d,%d) has no image (%d,%d)", u, v, m[u], m[v])
			}
			if !o.EdgeMatch(qe, te) {
				return fmt.Errorf("isomorphism: query edge (%d,%d) rejected by edge predicate", u, v)
			}
		}
	}
	if o.Mode == Exact {
		tEdges := 0
		for u := 0; u < nT; u++ {
			for _, v := range target.Neighbors(u) {
				if v >= u {
					tEdges++
				}
			}
		}
		if tEdges != qEdges {
			return fmt.Errorf("isomorphism: exact mapping with %d query edges and %d target edges", qEdges, tEdges)
		}
	}

	return nil
}
