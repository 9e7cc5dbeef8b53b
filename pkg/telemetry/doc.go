// Package telemetry groups the observability packages of councilconf.
//
// # Components
//
//   - logging: slog loggers writing to stderr in json, text or console form
//   - metrics: Prometheus counters and histograms for parses and reloads
//   - health: liveness and readiness probes for the watch command
//
// Stdout is reserved for command output, so every component writes either
// to stderr or to the telemetry HTTP endpoint served by package server.
package telemetry
