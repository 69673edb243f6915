package screen

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	p := NewPrometheusObserver(reg)

	p.ObserveTarget(time.Millisecond, 6, nil)
	p.ObserveTarget(time.Millisecond, 0, nil)
	p.ObserveTarget(time.Millisecond, 2, errors.New("budget"))

	require.InDelta(t, 1, testutil.ToFloat64(p.targets.WithLabelValues(OutcomeHit)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.targets.WithLabelValues(OutcomeMiss)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.targets.WithLabelValues(OutcomeError)), 0)
	require.InDelta(t, 8, testutil.ToFloat64(p.matches), 0)
	require.Equal(t, 1, testutil.CollectAndCount(p.duration))

	require.Panics(t, func() { NewPrometheusObserver(reg) }, "duplicate registration")
}

func TestOptionsDefaults(t *testing.T) {
	o := DefaultOptions()
	require.GreaterOrEqual(t, o.Concurrency, 1)
	require.NotNil(t, o.Logger)
	require.NotNil(t, o.Observer)

	for _, opt := range []Option{WithConcurrency(0), WithCountLimit(-3), WithLogger(nil), WithObserver(nil)} {
		opt(&o)
	}
	require.Equal(t, 1, o.Concurrency)
	require.Zero(t, o.CountLimit)
	require.NotNil(t, o.Logger)
	require.IsType(t, NoopObserver{}, o.Observer)
}
