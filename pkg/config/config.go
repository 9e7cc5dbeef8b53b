package config

import "time"

// Config is the root configuration of the councilconf tool itself. It is
// read from a file in the same dialect the tool parses.
type Config struct {
	// Parser selects the parsing backend.
	Parser ParserConfig

	// Source describes the configuration document to serve and how to
	// keep it fresh.
	Source SourceConfig

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig
}

// ParserConfig contains parser backend settings.
type ParserConfig struct {
	// Backend is "auto", "native" or "yaml". "auto" uses the yaml.v3
	// backend when it passes the startup probe.
	// Default: "native"
	Backend string
}

// SourceConfig describes the watched configuration document.
type SourceConfig struct {
	// Path is the document to load.
	// Default: "protocols/standard.yaml"
	Path string

	// Watch enables reloading on file system events in the watch command.
	// With Watch off only ResyncSchedule triggers reloads.
	// Default: true
	Watch bool

	// Debounce is the quiet period after a file event before reloading.
	// Default: 100ms
	Debounce time.Duration

	// ResyncSchedule is a standard cron expression that forces a reload
	// regardless of file events. Empty disables it.
	// Default: ""
	ResyncSchedule string
}

// TelemetryConfig contains observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig
	Metrics MetricsConfig
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	// Default: "info"
	Level string

	// Format is "json", "text" or "console".
	// Default: "text"
	Format string

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled turns metric recording and the metrics endpoint on.
	// Default: false
	Enabled bool

	// Namespace and Subsystem prefix every metric name.
	// Defaults: "councilconf", "parser"
	Namespace string
	Subsystem string

	// ListenAddress is where the watch command serves metrics.
	// Default: "127.0.0.1:9464"
	ListenAddress string

	// Path is the HTTP path of the metrics endpoint.
	// Default: "/metrics"
	Path string
}
