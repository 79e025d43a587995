package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	redisOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tstnode",
		Subsystem: "redis_store",
		Name:      "operations_total",
		Help:      "Count of state store operations.",
	}, []string{"operation", "status"})
	redisOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tstnode",
		Subsystem: "redis_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of state store operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "status"})
)

// RedisStore tracks metrics for the fast state store operations.
type RedisStore struct{}

// NewRedisStore creates a RedisStore metrics collector.
func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

// Observe records duration and status of a state store operation.
func (m RedisStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	redisOperationsTotal.WithLabelValues(operation, status).Inc()
	redisOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
