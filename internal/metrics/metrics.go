// Package metrics holds the Prometheus collectors of the scoreboard API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes recorded by ObserveLogin.
const (
	LoginSuccess  = "success"
	LoginFailure  = "failure"
	LoginLimited  = "rate_limited"
	unmatchedPath = "unmatched"
)

// Metrics owns a private registry so several instances can coexist in tests.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	inFlight        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	scoreUpdates    *prometheus.CounterVec
	feedClients     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_login_attempts_total",
			Help: "Login attempts by outcome.",
		}, []string{"result"}),
		scoreUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_score_updates_total",
			Help: "Successful score updates by house.",
		}, []string{"house"}),
		feedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreboard_feed_clients",
			Help: "Connected websocket score feed clients.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.inFlight, m.requestsTotal, m.requestDuration,
		m.logins, m.scoreUpdates, m.feedClients,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records RPS, latency and in-flight requests. The path label is
// the matched route template so ids do not explode cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		m.inFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.inFlight.Dec()
	}
}

func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveScoreUpdate(house string) {
	if m == nil {
		return
	}
	m.scoreUpdates.WithLabelValues(house).Inc()
}

// FeedConnected tracks a websocket client; call the returned func on disconnect.
func (m *Metrics) FeedConnected() func() {
	if m == nil {
		return func() {}
	}
	m.feedClients.Inc()
	return m.feedClients.Dec
}
