// Package metrics exposes what the error handler reports as Prometheus
// metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

const namespace = "errorhandler"

type countingLogger struct {
	next    contracts.Logger
	records *prometheus.CounterVec
}

// NewCountingLogger decorates next so every record it receives is
// counted in errorhandler_log_records_total by level. A nil registerer
// means the default one. A nil next only counts.
func NewCountingLogger(next contracts.Logger, reg prometheus.Registerer) contracts.Logger {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	records := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_records_total",
			Help:      "Total number of records reported to the logger by level",
		},
		[]string{"level"},
	)
	return &countingLogger{next: next, records: records}
}

func (l *countingLogger) Log(level contracts.LogLevel, message string, context map[string]any) {
	l.records.WithLabelValues(string(level)).Inc()
	if l.next != nil {
		l.next.Log(level, message, context)
	}
}

// Handler serves the metrics gathered by g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
