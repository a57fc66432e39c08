package lsp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeError     = "error"
	outcomeCancelled = "cancelled"
)

var (
	// requestsTotal counts answered requests by method and outcome
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "texlsp_requests_total",
		Help: "Total answered requests by method and outcome",
	}, []string{"method", "outcome"})

	// requestDuration tracks the time from receipt to reply
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "texlsp_request_duration_seconds",
		Help:    "Request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"method"})

	// cancellationsTotal counts $/cancelRequest notifications that hit a
	// running request
	cancellationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "texlsp_cancellations_total",
		Help: "Total cancel notifications that reached a running request",
	})

	// openDocuments tracks the number of documents in the workspace
	openDocuments = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "texlsp_open_documents",
		Help: "Number of documents known to the workspace",
	})
)

func observeRequest(method, outcome string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, outcome).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
