// Package metrics provides Prometheus instrumentation for the Solvi backend.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path pattern, and status bucket.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solvi",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "solvi",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ProfilesAssembledTotal counts full scoring pipeline runs by platform.
	ProfilesAssembledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solvi",
			Name:      "profiles_assembled_total",
			Help:      "Total merchant profiles assembled by payment platform.",
		},
		[]string{"platform"},
	)

	// ProfileCacheHits counts profile cache hits.
	ProfileCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "solvi",
		Name:      "profile_cache_hits_total",
		Help:      "Total profile cache hits.",
	})

	// ProfileCacheMisses counts profile cache misses.
	ProfileCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "solvi",
		Name:      "profile_cache_misses_total",
		Help:      "Total profile cache misses.",
	})

	// LoanRequestsTotal counts loan request transitions by status.
	LoanRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solvi",
			Name:      "loan_requests_total",
			Help:      "Total loan request transitions by status.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ProfilesAssembledTotal,
		ProfileCacheHits,
		ProfileCacheMisses,
		LoanRequestsTotal,
	)
}

// Middleware returns a gin middleware that records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(), // route pattern, not raw path (avoids cardinality explosion)
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler returns the Prometheus metrics HTTP handler for the /metrics endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// statusBucket groups HTTP status codes into buckets (2xx, 3xx, 4xx, 5xx).
func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
