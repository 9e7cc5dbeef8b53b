package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/tree"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "COUNCILCONF_"

// LoadConfig loads configuration from the file at path. The file is parsed
// with the native dialect parser, missing settings take their defaults and
// the result is validated. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from path and then applies
// COUNCILCONF_* environment variables, which take precedence over the file.
//
// The loading sequence is:
// 1. Parse the file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate the final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return withEnvOverrides(cfg)
}

// DefaultWithEnvOverrides returns the default configuration with
// environment variable overrides applied. It is used when no configuration
// file exists.
func DefaultWithEnvOverrides() (*Config, error) {
	return withEnvOverrides(Default())
}

func withEnvOverrides(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// Parse builds a validated configuration from configuration text.
func Parse(text string) (*Config, error) {
	root, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg, decodeErr := FromTree(root)
	ApplyDefaults(cfg)

	var verr ValidationError
	if decodeErr != nil {
		errors.As(decodeErr, &verr)
	}
	if err := Validate(cfg); err != nil {
		var more ValidationError
		if errors.As(err, &more) {
			verr.Errors = append(verr.Errors, more.Errors...)
		}
	}
	if len(verr.Errors) > 0 {
		return nil, verr
	}
	return cfg, nil
}

// FromTree reads a configuration out of a parsed tree. Absent settings are
// left at their defaults. A setting present with the wrong kind is reported
// in the returned ValidationError and also left at its default.
func FromTree(root *tree.Value) (*Config, error) {
	d := &decoder{root: root}

	cfg := &Config{
		Parser: ParserConfig{
			Backend: d.str("parser.backend", DefaultParserBackend),
		},
		Source: SourceConfig{
			Path:           d.str("source.path", DefaultSourcePath),
			Watch:          d.boolean("source.watch", DefaultSourceWatch),
			Debounce:       d.duration("source.debounce", DefaultSourceDebounce),
			ResyncSchedule: d.str("source.resync_schedule", DefaultSourceResyncSchedule),
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:     d.str("telemetry.logging.level", DefaultLoggingLevel),
				Format:    d.str("telemetry.logging.format", DefaultLoggingFormat),
				AddSource: d.boolean("telemetry.logging.add_source", DefaultLoggingAddSource),
			},
			Metrics: MetricsConfig{
				Enabled:       d.boolean("telemetry.metrics.enabled", DefaultMetricsEnabled),
				Namespace:     d.str("telemetry.metrics.namespace", DefaultMetricsNamespace),
				Subsystem:     d.str("telemetry.metrics.subsystem", DefaultMetricsSubsystem),
				ListenAddress: d.str("telemetry.metrics.listen_address", DefaultMetricsListenAddress),
				Path:          d.str("telemetry.metrics.path", DefaultMetricsPath),
			},
		},
	}

	if len(d.errs) > 0 {
		return cfg, ValidationError{Errors: d.errs}
	}
	return cfg, nil
}

// decoder reads typed settings and collects kind mismatches.
type decoder struct {
	root *tree.Value
	errs []FieldError
}

func (d *decoder) lookup(path string, want tree.Kind) (*tree.Value, bool) {
	v, ok := tree.Lookup(d.root, path)
	if !ok || v.IsNull() {
		return nil, false
	}
	if v.Kind() != want {
		d.errs = append(d.errs, FieldError{
			Field:   path,
			Message: fmt.Sprintf("expected %s, got %s", want, v.Kind()),
		})
		return nil, false
	}
	return v, true
}

func (d *decoder) str(path, def string) string {
	if v, ok := d.lookup(path, tree.KindString); ok {
		s, _ := v.AsString()
		return s
	}
	return def
}

func (d *decoder) boolean(path string, def bool) bool {
	if v, ok := d.lookup(path, tree.KindBool); ok {
		b, _ := v.AsBool()
		return b
	}
	return def
}

// duration accepts Go duration strings ("250ms", "2s") or a bare number of
// seconds.
func (d *decoder) duration(path string, def time.Duration) time.Duration {
	v, ok := tree.Lookup(d.root, path)
	if !ok || v.IsNull() {
		return def
	}
	if f, ok := v.AsFloat(); ok {
		return time.Duration(f * float64(time.Second))
	}
	if s, ok := v.AsString(); ok {
		dur, err := time.ParseDuration(s)
		if err == nil {
			return dur
		}
		d.errs = append(d.errs, FieldError{Field: path, Message: fmt.Sprintf("invalid duration %q", s)})
		return def
	}
	d.errs = append(d.errs, FieldError{
		Field:   path,
		Message: fmt.Sprintf("expected duration, got %s", v.Kind()),
	})
	return def
}

// applyEnvOverrides applies COUNCILCONF_SECTION_FIELD environment variables.
func applyEnvOverrides(cfg *Config) {
	// Parser overrides
	if val := os.Getenv(EnvPrefix + "PARSER_BACKEND"); val != "" {
		cfg.Parser.Backend = val
	}

	// Source overrides
	if val := os.Getenv(EnvPrefix + "SOURCE_PATH"); val != "" {
		cfg.Source.Path = val
	}
	if val := os.Getenv(EnvPrefix + "SOURCE_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Source.Watch = b
		}
	}
	if val := os.Getenv(EnvPrefix + "SOURCE_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Source.Debounce = d
		}
	}
	if val := os.Getenv(EnvPrefix + "SOURCE_RESYNC_SCHEDULE"); val != "" {
		cfg.Source.ResyncSchedule = val
	}

	// Telemetry overrides
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
}
