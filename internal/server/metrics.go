package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	movesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cubeengine",
		Name:      "moves_applied_total",
		Help:      "Moves applied to stored cubes, by operation.",
	}, []string{"op"})

	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cubeengine",
		Name:      "sessions_created_total",
		Help:      "Sessions created or imported.",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cubeengine",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cubeengine",
		Name:      "http_rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})
)
