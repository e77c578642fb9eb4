// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WSConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "helpdesk",
		Name:      "ws_connections",
		Help:      "Open websocket connections.",
	})

	WSRooms = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "helpdesk",
		Name:      "ws_rooms",
		Help:      "Rooms with at least one member.",
	})

	WSFrames = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "helpdesk",
		Name:      "ws_frames_total",
		Help:      "Inbound websocket frames by event and outcome.",
	}, []string{"event", "status"})

	NotificationsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "helpdesk",
		Name:      "notifications_created_total",
		Help:      "Durable notifications written, by kind.",
	}, []string{"kind"})

	NotificationPushFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "helpdesk",
		Name:      "notification_push_failures_total",
		Help:      "Best-effort realtime pushes that failed.",
	})

	HTTPRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "helpdesk",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

var registerOnce sync.Once

// Init registers every collector in the default registry. Safe to call twice.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			WSConnections,
			WSRooms,
			WSFrames,
			NotificationsCreated,
			NotificationPushFailures,
			HTTPRequests,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
