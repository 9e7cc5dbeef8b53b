// Package health serves liveness and readiness probes for long-running
// councilconf processes such as "councilconf watch".
//
// Liveness reports that the process is up. Readiness runs every registered
// check; the watch command registers one that fails until a configuration
// snapshot has been loaded.
//
//	checker := health.New(time.Second)
//	checker.RegisterCheck("config", func(ctx context.Context) error {
//		if store.Current() == nil {
//			return source.ErrNotLoaded
//		}
//		return nil
//	})
//	mux.Handle("/healthz", checker.LivenessHandler())
//	mux.Handle("/readyz", checker.ReadinessHandler())
package health
