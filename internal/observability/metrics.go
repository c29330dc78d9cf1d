package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memberbar",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "memberbar",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	toolbarBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memberbar",
			Subsystem: "toolbar",
			Name:      "builds_total",
			Help:      "Toolbar renders by viewer state.",
		},
		[]string{"viewer"},
	)
	toolbarNodes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "memberbar",
			Subsystem: "toolbar",
			Name:      "nodes",
			Help:      "Nodes per toolbar render.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
		[]string{"viewer"},
	)
	toolbarDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "memberbar",
			Subsystem: "toolbar",
			Name:      "build_duration_seconds",
			Help:      "Toolbar composition duration in seconds.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, toolbarBuilds, toolbarNodes, toolbarDuration)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordToolbarBuild tracks one render. viewer is "member" or "anonymous".
func RecordToolbarBuild(viewer string, nodes int, duration time.Duration) {
	RegisterMetrics()
	toolbarBuilds.WithLabelValues(viewer).Inc()
	toolbarNodes.WithLabelValues(viewer).Observe(float64(nodes))
	toolbarDuration.Observe(duration.Seconds())
}
