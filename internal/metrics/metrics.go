package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors. The default registry is left untouched.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_booking",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "furniture_booking",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route"},
	)

	collectionWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_booking",
			Subsystem: "store",
			Name:      "collection_writes_total",
			Help:      "Full-collection rewrites, by collection and outcome.",
		},
		[]string{"collection", "result"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, collectionWrites)
}

// Handler exposes the application registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest observes one finished request. route is the matched pattern, not the raw path.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCollectionWrite counts one save attempt of a collection.
func RecordCollectionWrite(collection string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	collectionWrites.WithLabelValues(collection, result).Inc()
}
