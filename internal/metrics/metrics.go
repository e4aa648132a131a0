// server/internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry  *prometheus.Registry
	records   prometheus.Gauge
	mutations *prometheus.CounterVec
	requests  *prometheus.HistogramVec
	exports   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dcdir",
			Name:      "records",
			Help:      "Number of data center records in the directory.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dcdir",
			Name:      "store_mutations_total",
			Help:      "Committed store mutations by operation.",
		}, []string{"op"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dcdir",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dcdir",
			Name:      "catalog_exports_total",
			Help:      "Catalog exports by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.records, m.mutations, m.requests, m.exports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveStore is a store.Observer.
func (m *Metrics) ObserveStore(op store.Op, _ string, size int) {
	m.mutations.WithLabelValues(string(op)).Inc()
	m.records.Set(float64(size))
}

func (m *Metrics) ObserveExport(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(result).Inc()
}

// Middleware records request latency under the matched route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
