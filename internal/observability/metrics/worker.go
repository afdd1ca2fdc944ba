package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkerMetrics tracks reindex replay processing in the worker process.
type WorkerMetrics struct {
	registry *prometheus.Registry

	replayTotal    *prometheus.CounterVec
	replayDuration *prometheus.HistogramVec
	replayInFlight prometheus.Gauge
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	replayTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "caseflow",
			Subsystem: "reindex",
			Name:      "replays_total",
			Help:      "Total reindex replays by status.",
		},
		[]string{"service", "status"},
	)
	replayDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "caseflow",
			Subsystem: "reindex",
			Name:      "replay_duration_seconds",
			Help:      "Reindex replay duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	replayInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "caseflow",
			Subsystem: "reindex",
			Name:      "in_flight_replays",
			Help:      "Number of reindex replays currently running.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(replayTotal, replayDuration, replayInFlight)

	return &WorkerMetrics{
		registry:       registry,
		replayTotal:    replayTotal,
		replayDuration: replayDuration,
		replayInFlight: replayInFlight,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) ObserveReplay(service, status string, duration time.Duration) {
	if status == "" {
		status = "unknown"
	}
	m.replayTotal.WithLabelValues(service, status).Inc()
	m.replayDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ReplayStarted()  { m.replayInFlight.Inc() }
func (m *WorkerMetrics) ReplayFinished() { m.replayInFlight.Dec() }
