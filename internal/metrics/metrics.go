package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dugunsalon",
			Name:      "reservation_created_total",
			Help:      "Count of reservations successfully created.",
		},
	)

	reservationRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dugunsalon",
			Name:      "reservation_rejected_total",
			Help:      "Count of rejected reservation attempts by reason.",
		},
		[]string{"reason"},
	)

	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dugunsalon",
			Name:      "cache_hits_total",
			Help:      "Count of reservation cache hits by tier.",
		},
		[]string{"tier"},
	)

	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dugunsalon",
			Name:      "cache_misses_total",
			Help:      "Count of reservation cache misses by tier.",
		},
		[]string{"tier"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dugunsalon",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationRejected, cacheHits, cacheMisses, httpRequests)
	})
}

func IncReservationCreated() {
	reservationCreated.Inc()
}

func IncReservationRejected(reason string) {
	reservationRejected.WithLabelValues(reason).Inc()
}

func IncCacheHit(tier string) {
	cacheHits.WithLabelValues(tier).Inc()
}

func IncCacheMiss(tier string) {
	cacheMisses.WithLabelValues(tier).Inc()
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}
