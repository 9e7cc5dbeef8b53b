package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"llm-council/councilconf/pkg/config"
)

// SourceMetrics tracks reloads of watched configuration files.
//
// Metrics:
//   - <ns>_<sub>_reloads_total: reloads by trigger and outcome
//   - <ns>_<sub>_last_reload_success_timestamp_seconds: time of the last good reload
type SourceMetrics struct {
	reloadsTotal      *prometheus.CounterVec
	lastReloadSuccess prometheus.Gauge
}

// NewSourceMetrics creates and registers source metrics.
func NewSourceMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *SourceMetrics {
	sm := &SourceMetrics{
		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reloads_total",
				Help:      "Total number of configuration reloads",
			},
			[]string{"trigger", "outcome"},
		),
		lastReloadSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "last_reload_success_timestamp_seconds",
				Help:      "Unix time of the last successful configuration reload",
			},
		),
	}

	registry.MustRegister(sm.reloadsTotal, sm.lastReloadSuccess)
	return sm
}

// RecordReload records one reload.
func (sm *SourceMetrics) RecordReload(trigger string, err error) {
	if err != nil {
		sm.reloadsTotal.WithLabelValues(trigger, "error").Inc()
		return
	}
	sm.reloadsTotal.WithLabelValues(trigger, "success").Inc()
	sm.lastReloadSuccess.SetToCurrentTime()
}
