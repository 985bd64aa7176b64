package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "restaurant_api"

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method, status class and caller role.",
	}, []string{"route", "method", "class", "role"})
	requestSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"route", "method"})
	requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served.",
	})
)

func init() { prometheus.MustRegister(requestsTotal, requestSeconds, requestsInFlight) }

// Metrics records requests per route template. Unknown paths share the
// "unmatched" route and statuses are bucketed by class to keep series bounded.
// The role label is read after the chain so it reflects the token, if any.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		role := string(PrincipalFrom(c).Role)
		if role == "" {
			role = "anonymous"
		}
		requestsTotal.WithLabelValues(route, c.Request.Method, statusClass(c.Writer.Status()), role).Inc()
		requestSeconds.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
