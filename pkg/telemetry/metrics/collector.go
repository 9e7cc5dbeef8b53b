package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"llm-council/councilconf/pkg/config"
)

// Collector owns the Prometheus registry and every metric councilconf
// exports. A disabled collector records nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	parseMetrics  *ParseMetrics
	sourceMetrics *SourceMetrics
}

// NewCollector creates a collector and registers its metrics with registry.
// If registry is nil a fresh one is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true}
//	collector := metrics.NewCollector(cfg, nil)
//	p := collector.Instrument(parser.Native{})
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg == nil {
		cfg = &config.MetricsConfig{}
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:        cfg,
		registry:      registry,
		parseMetrics:  NewParseMetrics(cfg, registry),
		sourceMetrics: NewSourceMetrics(cfg, registry),
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordParse records one parse attempt.
func (c *Collector) RecordParse(backend string, duration time.Duration, warnings int, err error) {
	if !c.config.Enabled {
		return
	}
	c.parseMetrics.Record(backend, duration, warnings, err)
}

// RecordReload records one reload of a watched configuration file.
// trigger is "initial", "watch", "resync" or "manual".
func (c *Collector) RecordReload(trigger string, err error) {
	if !c.config.Enabled {
		return
	}
	c.sourceMetrics.RecordReload(trigger, err)
}
