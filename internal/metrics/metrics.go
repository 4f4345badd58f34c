// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, content mutations, schema bootstrap, and database operations.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"blog-publisher/internal/logger"
)

const (
	namespace = "blog"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Content metrics - track article and comment mutations
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "mutations_total",
			Help:      "Total number of article and comment mutations by entity, operation, and result",
		},
		[]string{"entity", "operation", "result"},
	)

	// Schema metrics - track bootstrap runs
	SchemaBootstrapTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schema",
			Name:      "bootstrap_total",
			Help:      "Total number of schema bootstrap runs by mode and result",
		},
		[]string{"mode", "result"},
	)

	SchemaVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "schema",
			Name:      "version",
			Help:      "Schema migration version applied at startup",
		},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool connections by state",
		},
		[]string{"state"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds by repository and operation",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"repository", "operation"},
	)
)

// PoolStats is the subset of *pgxpool.Stat the collector publishes.
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
	ConstructingConns() int32
	MaxConns() int32
}

// PoolStatsProvider returns a fresh stats snapshot on every call.
type PoolStatsProvider interface {
	Stat() PoolStats
}

type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector publishes pool gauges on a fixed interval until its
// context is cancelled or Stop is called.
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a collector for a pgx pool.
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a collector over any stats source.
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stop:     make(chan struct{}),
	}
}

// Start collects once immediately and then every interval.
func (c *PoolStatsCollector) Start(ctx context.Context, interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
	DBConnectionPoolSize.WithLabelValues("constructing").Set(float64(stats.ConstructingConns()))
	DBConnectionPoolSize.WithLabelValues("max").Set(float64(stats.MaxConns()))
}

// Stop halts collection and waits for the goroutine. It may be called more than once.
func (c *PoolStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	c.wg.Wait()
}

// ObserveMutation records the outcome of an article or comment write.
func ObserveMutation(entity, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	MutationsTotal.WithLabelValues(entity, operation, result).Inc()
}

// ObserveBootstrap records a schema bootstrap run and the resulting version.
func ObserveBootstrap(mode string, version uint, err error) {
	if err != nil {
		SchemaBootstrapTotal.WithLabelValues(mode, "error").Inc()
		return
	}
	SchemaBootstrapTotal.WithLabelValues(mode, "success").Inc()
	SchemaVersion.Set(float64(version))
}

// ObserveQuery records the duration of a repository query since the timer started.
func ObserveQuery(repository, operation string, t *Timer) {
	t.ObserveDuration(DBQueryDuration.WithLabelValues(repository, operation))
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// LogHealthCheckMetrics logs the pool counters at debug level.
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	logger.DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}
