// Package config provides configuration management for the councilconf
// tool.
//
// The tool's own settings file is written in the same dialect the tool
// parses, and is read with the native parser so it never depends on the
// backend it configures.
//
// # Configuration Loading
//
//  1. From a file only:
//     cfg, err := config.LoadConfig("councilconf.yaml")
//
//  2. From a file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("councilconf.yaml")
//
//  3. Without a file:
//     cfg, err := config.DefaultWithEnvOverrides()
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention COUNCILCONF_SECTION_FIELD:
//
//   - COUNCILCONF_PARSER_BACKEND overrides parser.backend
//   - COUNCILCONF_SOURCE_PATH overrides source.path
//   - COUNCILCONF_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from the file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// Absent sections are never an error; they take their documented default.
//
// # No Global Instance
//
// There is no package-level configuration. The loaded *Config is created
// once at startup and passed explicitly to the components that need it.
//
// # Example Configuration
//
//	parser:
//	  backend: native
//
//	source:
//	  path: protocols/standard.yaml
//	  watch: true
//	  debounce: 250ms
//	  resync_schedule: "*/10 * * * *"
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: json
//	  metrics:
//	    enabled: true
//	    listen_address: 127.0.0.1:9464
package config
