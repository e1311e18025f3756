package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Books
	BookMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "books_mutations_total",
			Help: "Book writes that changed a record.",
		},
		[]string{"op"}, // create|update|delete
	)

	// Auth
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Login attempts by result.",
		},
		[]string{"result"}, // success|failure
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Call once.
func Init() {
	prometheus.MustRegister(RequestLatency, BookMutations, Logins)
}
