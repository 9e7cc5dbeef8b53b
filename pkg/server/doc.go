// Package server runs the telemetry HTTP endpoint of long-running councilconf
// commands.
//
// # Routes
//
//   - <metrics path> (default /metrics): Prometheus exposition
//   - /healthz: liveness
//   - /readyz: readiness, 503 until every registered check passes
//
// # Basic Usage
//
//	srv := server.New(&cfg.Telemetry.Metrics, collector.Handler(), checker, logger)
//	go func() {
//		if err := srv.Start(ctx); err != nil {
//			logger.Error("telemetry server failed", "error", err)
//		}
//	}()
//
// Start blocks until ctx is cancelled and then shuts the listener down
// gracefully, waiting at most ShutdownTimeout for in-flight requests.
package server
