// Package metrics exports Prometheus metrics for configuration parsing and
// reloading.
//
// A Collector owns a registry. Parsers are instrumented by wrapping them:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	p := collector.Instrument(selected)
//
// The wrapped parser behaves exactly like the original and records the
// backend, outcome, duration and warning count of every call. Source
// reloads are recorded through RecordReload. When metrics are disabled in
// the configuration every Record call is a no-op.
package metrics
