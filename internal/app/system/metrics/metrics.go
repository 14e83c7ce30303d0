// Package metrics exposes Prometheus collectors for the content API.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal       *prometheus.CounterVec
	rateLimitRejectedTotal  prometheus.Counter
	contentCacheTotal       *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus collectors. Safe to call more than once.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studiohub_http_requests_total",
				Help: "Total HTTP requests, labeled by method and status code.",
			},
			[]string{"method", "code"},
		)

		rateLimitRejectedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "studiohub_rate_limit_rejected_total",
				Help: "Requests rejected by the per-IP rate limiter.",
			},
		)

		contentCacheTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studiohub_content_cache_total",
				Help: "Public read cache lookups, labeled by outcome (hit/miss).",
			},
			[]string{"outcome"},
		)
	})
}

// Handler returns the /metrics scrape handler.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}

// RequestObserved counts one served request.
func RequestObserved(method string, code int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, statusLabel(code)).Inc()
}

// RateLimitRejected counts one 429 from the limiter.
func RateLimitRejected() {
	if rateLimitRejectedTotal == nil {
		return
	}
	rateLimitRejectedTotal.Inc()
}

// CacheHit counts a public-read cache hit.
func CacheHit() { cacheObserved("hit") }

// CacheMiss counts a public-read cache miss.
func CacheMiss() { cacheObserved("miss") }

func cacheObserved(outcome string) {
	if contentCacheTotal == nil {
		return
	}
	contentCacheTotal.WithLabelValues(outcome).Inc()
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
