package screen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isomatch/converters"
	"github.com/katalvlaran/isomatch/isomorphism"
)

// Result collects the outcome of a screening run.
type Result struct {
	// Hits holds the positions of targets with at least one mapping.
	Hits *roaring.Bitmap
	// Screened holds the positions that were actually searched.
	Screened *roaring.Bitmap
	// Counts[i] is the (possibly capped) mapping count of target i.
	Counts []int
	// Errors maps target positions to their per-target failure.
	Errors map[int]error
}

// Prefilter returns the target positions that can possibly host query under
// mode: enough vertices and edges for Subgraph, equal counts for Exact.
func Prefilter(query *converters.Indexed, targets []*converters.Indexed, mode isomorphism.Mode) *roaring.Bitmap {
	bm := roaring.New()
	nQ, eQ := query.VertexCount(), query.EdgeCount()
	for i, t := range targets {
		if t == nil {
			continue
		}
		nT, eT := t.VertexCount(), t.EdgeCount()
		if mode == isomorphism.Exact {
			if nT == nQ && eT == eQ {
				bm.Add(uint32(i))
			}
			continue
		}
		if nT >= nQ && eT >= eQ {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Run screens query against every target.
//
// Errors:
//   - isomorphism.ErrNilGraph if query is nil.
//   - isomorphism.ErrUnknownMode / ErrUnknownAlgorithm from the search options.
//   - ctx.Err() when the caller cancels; the partial Result is returned too.
func Run(ctx context.Context, query *converters.Indexed, targets []*converters.Indexed, opts ...Option) (*Result, error) {
	if query == nil {
		return nil, fmt.Errorf("screen: query: %w", isomorphism.ErrNilGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	resolved := isomorphism.DefaultOptions()
	for _, opt := range o.Search {
		if opt != nil {
			opt(&resolved)
		}
	}
	if resolved.Mode != isomorphism.Subgraph && resolved.Mode != isomorphism.Exact {
		return nil, fmt.Errorf("screen: %v: %w", resolved.Mode, isomorphism.ErrUnknownMode)
	}
	if resolved.Algorithm != isomorphism.VF2 && resolved.Algorithm != isomorphism.Ullmann {
		return nil, fmt.Errorf("screen: %v: %w", resolved.Algorithm, isomorphism.ErrUnknownAlgorithm)
	}

	candidates := Prefilter(query, targets, resolved.Mode)
	if o.Candidates != nil {
		candidates.And(o.Candidates)
	}

	res := &Result{
		Hits:     roaring.New(),
		Screened: roaring.New(),
		Counts:   make([]int, len(targets)),
		Errors:   make(map[int]error),
	}
	var mu sync.Mutex
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	it := candidates.Iterator()
	for it.HasNext() {
		if gctx.Err() != nil {
			break
		}
		i := int(it.Next())
		g.Go(func() error {
			began := time.Now()
			n, err := searchOne(gctx, query, targets[i], o)
			o.Observer.ObserveTarget(time.Since(began), n, err)

			mu.Lock()
			defer mu.Unlock()
			res.Screened.Add(uint32(i))
			res.Counts[i] = n
			if n > 0 {
				res.Hits.Add(uint32(i))
			}
			if err == nil {
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			res.Errors[i] = err
			o.Logger.WarnWithContext(ctx, "screen target failed", zap.Int("target", i), zap.Error(err))

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	o.Logger.DebugWithContext(ctx, "screen run finished",
		zap.Uint64("screened", res.Screened.GetCardinality()),
		zap.Uint64("hits", res.Hits.GetCardinality()),
		zap.Int("errors", len(res.Errors)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		return res, fmt.Errorf("screen: %w", err)
	}

	return res, nil
}

// searchOne counts mappings of query into target, up to o.CountLimit.
// A count reached before a failure is returned alongside the error.
func searchOne(ctx context.Context, query, target *converters.Indexed, o Options) (int, error) {
	sopts := make([]isomorphism.Option, 0, len(o.Search)+3)
	sopts = append(sopts, o.Search...)
	sopts = append(sopts, isomorphism.WithContext(ctx))
	if o.Matchers != nil {
		sopts = append(sopts, o.Matchers(query, target)...)
	}

	e, err := isomorphism.NewSearch(query.Graph, target.Graph, sopts...)
	if err != nil {
		return 0, err
	}
	n := 0
	for e.HasNext() {
		if _, err = e.Next(); err != nil {
			return n, err
		}
		n++
		if o.CountLimit > 0 && n >= o.CountLimit {
			return n, nil
		}
	}

	return n, e.Err()
}
