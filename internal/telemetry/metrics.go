package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Game-level counters. The API layer increments these; everything
// request-shaped is covered by HTTPMetrics instead.
var (
	GamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pord_games_started_total",
		Help: "Games started, by mode and league.",
	}, []string{"mode", "league"})

	AnswersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pord_answers_submitted_total",
		Help: "Answers submitted, by outcome.",
	}, []string{"outcome"})

	BonusRounds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pord_bonus_rounds_total",
		Help: "Bonus rounds played, by mini-game type.",
	}, []string{"type"})
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pord_http_requests_total",
		Help: "HTTP requests, by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pord_http_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// HTTPMetrics records per-route request counts and latency.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequests.WithLabelValues(route, c.Request.Method, statusClass(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func statusClass(code int) string {
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
