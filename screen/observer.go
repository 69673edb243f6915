package screen

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer receives one call per searched target.
type Observer interface {
	ObserveTarget(elapsed time.Duration, matches int, err error)
}

// NoopObserver discards observations.
type NoopObserver struct{}

func (NoopObserver) ObserveTarget(time.Duration, int, error) {}

const metricsNamespace = "isomatch"

// Outcome label values of isomatch_screen_targets_total.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// PrometheusObserver exports per-target screening metrics.
type PrometheusObserver struct {
	duration prometheus.Histogram
	matches  prometheus.Counter
	targets  *prometheus.CounterVec
}

// NewPrometheusObserver registers the screening metrics with reg. It panics
// if the metrics are already registered there.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	f := promauto.With(reg)

	return &PrometheusObserver{
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "screen",
			Name:      "target_duration_seconds",
			Help:      "Time spent enumerating mappings into one target.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		matches: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "screen",
			Name:      "matches_total",
			Help:      "Mappings counted across all screened targets.",
		}),
		targets: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "screen",
			Name:      "targets_total",
			Help:      "Screened targets by outcome.",
		}, []string{"outcome"}),
	}
}

func (p *PrometheusObserver) ObserveTarget(elapsed time.Duration, matches int, err error) {
	p.duration.Observe(elapsed.Seconds())
	p.matches.Add(float64(matches))
	switch {
	case err != nil:
		p.targets.WithLabelValues(OutcomeError).Inc()
	case matches > 0:
		p.targets.WithLabelValues(OutcomeHit).Inc()
	default:
		p.targets.WithLabelValues(OutcomeMiss).Inc()
	}
}
