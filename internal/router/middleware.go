package router

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware stores the API URL in the context so that handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

// httpMetrics are the Prometheus metrics for HTTP requests.
type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newHTTPMetrics() httpMetrics {
	labels := []string{"code", "method", "url"}

	return httpMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finsight",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "How many HTTP requests processed, partitioned by status code, HTTP method and route.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "finsight",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "The HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}
}

// register registers the metrics with the default registry.
//
// If another engine in the same process registered them already, the
// existing collectors are used.
func (m *httpMetrics) register() error {
	var already prometheus.AlreadyRegisteredError

	if err := prometheus.Register(m.requests); err != nil {
		if !errors.As(err, &already) {
			return err
		}
		m.requests = already.ExistingCollector.(*prometheus.CounterVec)
	}

	if err := prometheus.Register(m.duration); err != nil {
		if !errors.As(err, &already) {
			return err
		}
		m.duration = already.ExistingCollector.(*prometheus.HistogramVec)
	}

	return nil
}

func (m httpMetrics) unregister() {
	prometheus.Unregister(m.requests)
	prometheus.Unregister(m.duration)
}

// middleware records count and duration of every request.
func (m httpMetrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Parameters are replaced by their name to keep the label cardinality low
		route := c.Request.URL.Path
		for _, p := range c.Params {
			route = strings.Replace(route, p.Value, ":"+p.Key, 1)
		}

		status := strconv.Itoa(c.Writer.Status())
		m.duration.WithLabelValues(status, c.Request.Method, route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(status, c.Request.Method, route).Inc()
	}
}
