package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	timersStarted   prometheus.Counter
	timersStopped   prometheus.Counter
}

// NewMetrics creates and registers all service metrics
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timetrack_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "timetrack_http_request_duration_seconds",
				Help:    "Latency of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		timersStarted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "timetrack_timers_started_total",
				Help: "Total number of project timers started",
			},
		),
		timersStopped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "timetrack_timers_stopped_total",
				Help: "Total number of project timers stopped",
			},
		),
	}
}

// Middleware returns a Fiber handler that records request counts and latency.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		path := c.Route().Path

		m.requestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// IncrementTimersStarted increments the started-timers counter
func (m *Metrics) IncrementTimersStarted() {
	m.timersStarted.Inc()
}

// IncrementTimersStopped increments the stopped-timers counter
func (m *Metrics) IncrementTimersStopped() {
	m.timersStopped.Inc()
}
