package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShopClientMetrics records request metadata for calls against the remote shop API.
type ShopClientMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewShopClientMetrics registers the shop client metrics on the provided registerer.
func NewShopClientMetrics(reg prometheus.Registerer) *ShopClientMetrics {
	if reg == nil {
		return &ShopClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shop_request_duration_seconds",
		Help:    "Duration of remote shop API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_requests_total",
		Help: "Remote shop API requests by operation and status code.",
	}, []string{"operation", "status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_request_failures_total",
		Help: "Remote shop API requests that failed at the transport level.",
	}, []string{"operation"})
	reg.MustRegister(duration, requests, failures)
	return &ShopClientMetrics{
		duration: duration,
		requests: requests,
		failures: failures,
	}
}

// ObserveRequest records one completed request with its HTTP status.
func (s *ShopClientMetrics) ObserveRequest(operation string, status int, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	op := normalizeLabel(operation)
	s.duration.WithLabelValues(op).Observe(duration.Seconds())
	s.requests.WithLabelValues(op, strconv.Itoa(status)).Inc()
}

// IncFailure counts a request that never produced an HTTP response.
func (s *ShopClientMetrics) IncFailure(operation string) {
	if s == nil || s.failures == nil {
		return
	}
	s.failures.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
