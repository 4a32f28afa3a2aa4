package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce              sync.Once
	documentOperationsTotal  *prometheus.CounterVec
	documentOperationSeconds *prometheus.HistogramVec
	builderMutationsTotal    *prometheus.CounterVec
	builderSessionsActive    prometheus.Gauge
)

func initMetrics() {
	metricsOnce.Do(func() {
		documentOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "documents",
			Name:      "operations_total",
			Help:      "Total page document loads and saves",
		}, []string{"operation", "status"})

		documentOperationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "landing_builder",
			Subsystem: "documents",
			Name:      "operation_duration_seconds",
			Help:      "Duration of page document loads and saves",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"})

		builderMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "sessions",
			Name:      "mutations_total",
			Help:      "Total builder operations applied to session documents",
		}, []string{"operation"})

		builderSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "landing_builder",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Number of open builder sessions",
		})
	})
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
