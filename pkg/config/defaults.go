package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultParserBackend = "native"

	// Source defaults
	DefaultSourcePath           = "protocols/standard.yaml"
	DefaultSourceWatch          = true
	DefaultSourceDebounce       = 100 * time.Millisecond
	DefaultSourceResyncSchedule = ""

	// Telemetry defaults
	DefaultLoggingLevel         = "info"
	DefaultLoggingFormat        = "text"
	DefaultLoggingAddSource     = false
	DefaultMetricsEnabled       = false
	DefaultMetricsNamespace     = "councilconf"
	DefaultMetricsSubsystem     = "parser"
	DefaultMetricsListenAddress = "127.0.0.1:9464"
	DefaultMetricsPath          = "/metrics"
)

// Default returns a configuration populated entirely with defaults.
func Default() *Config {
	cfg := &Config{
		Source: SourceConfig{Watch: DefaultSourceWatch},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields of cfg with their defaults.
// Boolean fields are left alone since false cannot be told apart from
// unset; Default and FromTree set them.
func ApplyDefaults(cfg *Config) {
	if cfg.Parser.Backend == "" {
		cfg.Parser.Backend = DefaultParserBackend
	}

	if cfg.Source.Path == "" {
		cfg.Source.Path = DefaultSourcePath
	}
	if cfg.Source.Debounce == 0 {
		cfg.Source.Debounce = DefaultSourceDebounce
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
}
