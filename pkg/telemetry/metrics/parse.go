package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"llm-council/councilconf/pkg/config"
	"llm-council/councilconf/pkg/parser"
)

// ParseMetrics tracks configuration parsing.
//
// Metrics:
//   - <ns>_<sub>_parses_total: parse attempts by backend and outcome
//   - <ns>_<sub>_parse_duration_seconds: parse latency by backend
//   - <ns>_<sub>_parse_warnings_total: non-fatal parse warnings by backend
type ParseMetrics struct {
	parsesTotal   *prometheus.CounterVec
	parseDuration *prometheus.HistogramVec
	warningsTotal *prometheus.CounterVec
}

// NewParseMetrics creates and registers parse metrics.
func NewParseMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ParseMetrics {
	pm := &ParseMetrics{
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parses_total",
				Help:      "Total number of configuration parses",
			},
			[]string{"backend", "outcome"},
		),

		parseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of configuration parsing in seconds",
				// Config files are small; most parses finish well under 10ms
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
			},
			[]string{"backend"},
		),

		warningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_warnings_total",
				Help:      "Total number of non-fatal parse warnings",
			},
			[]string{"backend"},
		),
	}

	registry.MustRegister(
		pm.parsesTotal,
		pm.parseDuration,
		pm.warningsTotal,
	)

	return pm
}

// Record records one parse attempt.
func (pm *ParseMetrics) Record(backend string, duration time.Duration, warnings int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	pm.parsesTotal.WithLabelValues(backend, outcome).Inc()
	pm.parseDuration.WithLabelValues(backend).Observe(duration.Seconds())
	if warnings > 0 {
		pm.warningsTotal.WithLabelValues(backend).Add(float64(warnings))
	}
}

// instrumented decorates a parser with metric recording.
type instrumented struct {
	next      parser.Parser
	collector *Collector
}

// Instrument wraps p so every parse is recorded. The wrapper keeps p's name.
func (c *Collector) Instrument(p parser.Parser) parser.Parser {
	return &instrumented{next: p, collector: c}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Parse(text string) (*parser.Result, error) {
	start := time.Now()
	res, err := i.next.Parse(text)

	warnings := 0
	if res != nil {
		warnings = len(res.Warnings)
	}
	i.collector.RecordParse(i.next.Name(), time.Since(start), warnings, err)
	return res, err
}
