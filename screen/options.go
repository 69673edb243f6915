package screen

import (
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/isomatch/converters"
	"github.com/katalvlaran/isomatch/isomorphism"
	"github.com/katalvlaran/isomatch/logger"
)

// MatcherFactory builds per-target search options, typically vertex and edge
// predicates bound to the query/target snapshots.
type MatcherFactory func(query, target *converters.Indexed) []isomorphism.Option

// LabelMatchers binds label-equality predicates for vertices and edges.
func LabelMatchers(query, target *converters.Indexed) []isomorphism.Option {
	return []isomorphism.Option{
		isomorphism.WithVertexMatcher(converters.LabelVertexMatcher(query, target)),
		isomorphism.WithEdgeMatcher(converters.LabelEdgeMatcher(query, target)),
	}
}

// Options configures Run.
type Options struct {
	// Concurrency bounds the number of targets searched at once.
	Concurrency int
	// Search is applied to every per-target search before Matchers.
	Search []isomorphism.Option
	// Matchers derives predicates per target; nil accepts every pair.
	Matchers MatcherFactory
	// Candidates, when set, restricts the run to these target positions.
	Candidates *roaring.Bitmap
	// CountLimit stops counting a target after this many mappings; 0 counts all.
	CountLimit int

	Logger   logger.Logger
	Observer Observer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS concurrency, no limits, a no-op logger
// and a no-op observer.
func DefaultOptions() Options {
	return Options{
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      logger.NewNoopLogger(),
		Observer:    NoopObserver{},
	}
}

// WithConcurrency sets the parallelism; values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Concurrency = n
	}
}

// WithSearchOptions appends engine options shared by every target.
func WithSearchOptions(opts ...isomorphism.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithMatchers sets the per-target predicate factory.
func WithMatchers(f MatcherFactory) Option {
	return func(o *Options) { o.Matchers = f }
}

// WithCandidates restricts the run to the given target positions.
func WithCandidates(bm *roaring.Bitmap) Option {
	return func(o *Options) { o.Candidates = bm }
}

// WithCountLimit caps the mappings counted per target (0 = unlimited).
func WithCountLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.CountLimit = n
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver sets the per-target observer; nil keeps the no-op observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}
