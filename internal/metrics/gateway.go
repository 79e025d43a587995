package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewaySessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tstnode",
		Subsystem: "gateway",
		Name:      "sessions",
		Help:      "Number of live WebSocket sessions.",
	})
	gatewayEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tstnode",
		Subsystem: "gateway",
		Name:      "events_total",
		Help:      "Count of events broadcast to sessions.",
	}, []string{"category"})
	gatewayDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tstnode",
		Subsystem: "gateway",
		Name:      "events_dropped_total",
		Help:      "Count of events dropped on slow sessions.",
	})
)

// Gateway tracks metrics for WebSocket gateway activity.
type Gateway struct{}

// NewGateway creates a Gateway metrics collector.
func NewGateway() *Gateway {
	return &Gateway{}
}

// SessionOpened records a new live session.
func (m Gateway) SessionOpened() {
	gatewaySessions.Inc()
}

// SessionClosed records a closed session.
func (m Gateway) SessionClosed() {
	gatewaySessions.Dec()
}

// EventBroadcast records an event published to the hub.
func (m Gateway) EventBroadcast(category string) {
	gatewayEventsTotal.WithLabelValues(category).Inc()
}

// EventDropped records an event a slow session missed.
func (m Gateway) EventDropped() {
	gatewayDroppedTotal.Inc()
}
