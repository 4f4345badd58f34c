package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveMutation(t *testing.T) {
	initialSuccess := testutil.ToFloat64(MutationsTotal.WithLabelValues("comment", "create", "success"))
	initialError := testutil.ToFloat64(MutationsTotal.WithLabelValues("comment", "create", "error"))

	ObserveMutation("comment", "create", nil)
	ObserveMutation("comment", "create", errors.New("insert failed"))
	ObserveMutation("comment", "create", nil)

	assert.Equal(t, initialSuccess+2, testutil.ToFloat64(MutationsTotal.WithLabelValues("comment", "create", "success")))
	assert.Equal(t, initialError+1, testutil.ToFloat64(MutationsTotal.WithLabelValues("comment", "create", "error")))
}

func TestObserveBootstrap(t *testing.T) {
	t.Run("success sets the schema version", func(t *testing.T) {
		initial := testutil.ToFloat64(SchemaBootstrapTotal.WithLabelValues("migrate", "success"))

		ObserveBootstrap("migrate", 3, nil)

		assert.Equal(t, initial+1, testutil.ToFloat64(SchemaBootstrapTotal.WithLabelValues("migrate", "success")))
		assert.Equal(t, float64(3), testutil.ToFloat64(SchemaVersion))
	})

	t.Run("failure leaves the schema version alone", func(t *testing.T) {
		SchemaVersion.Set(1)
		initial := testutil.ToFloat64(SchemaBootstrapTotal.WithLabelValues("reset", "error"))

		ObserveBootstrap("reset", 7, errors.New("boom"))

		assert.Equal(t, initial+1, testutil.ToFloat64(SchemaBootstrapTotal.WithLabelValues("reset", "error")))
		assert.Equal(t, float64(1), testutil.ToFloat64(SchemaVersion))
	})
}

func TestObserveQuery(t *testing.T) {
	timer := NewTimer()
	ObserveQuery("comment", "list", timer)

	count := testutil.CollectAndCount(DBQueryDuration)
	assert.GreaterOrEqual(t, count, 1, "DBQueryDuration should have observations")
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(20 * time.Millisecond)

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	timer.ObserveDuration(histogram)

	assert.Equal(t, 1, testutil.CollectAndCount(histogram))
}

type fakePoolStats struct {
	total, idle, acquired, constructing, max int32
}

func (f fakePoolStats) TotalConns() int32        { return f.total }
func (f fakePoolStats) IdleConns() int32         { return f.idle }
func (f fakePoolStats) AcquiredConns() int32     { return f.acquired }
func (f fakePoolStats) ConstructingConns() int32 { return f.constructing }
func (f fakePoolStats) MaxConns() int32          { return f.max }

// countingProvider is only called from the collector goroutine; tests read calls after Stop.
type countingProvider struct {
	stats fakePoolStats
	calls int
}

func (p *countingProvider) Stat() PoolStats {
	p.calls++
	return p.stats
}

func poolGauge(state string) float64 {
	return testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues(state))
}

func TestPoolStatsCollector(t *testing.T) {
	t.Run("publishes every state", func(t *testing.T) {
		provider := &countingProvider{stats: fakePoolStats{total: 8, idle: 3, acquired: 4, constructing: 1, max: 10}}
		collector := NewPoolStatsCollectorWithProvider(provider)

		collector.Start(context.Background(), time.Hour)
		collector.Stop()

		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, float64(8), poolGauge("total"))
		assert.Equal(t, float64(3), poolGauge("idle"))
		assert.Equal(t, float64(4), poolGauge("in_use"))
		assert.Equal(t, float64(1), poolGauge("constructing"))
		assert.Equal(t, float64(10), poolGauge("max"))
	})

	t.Run("collects on every tick", func(t *testing.T) {
		provider := &countingProvider{}
		collector := NewPoolStatsCollectorWithProvider(provider)

		collector.Start(context.Background(), 5*time.Millisecond)
		time.Sleep(30 * time.Millisecond)
		collector.Stop()

		assert.GreaterOrEqual(t, provider.calls, 2)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		provider := &countingProvider{}
		collector := NewPoolStatsCollectorWithProvider(provider)

		ctx, cancel := context.WithCancel(context.Background())
		collector.Start(ctx, time.Millisecond)
		cancel()

		done := make(chan struct{})
		go func() {
			collector.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("collector did not stop after cancel")
		}

		collector.Stop()
		collector.Stop()
	})
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}
