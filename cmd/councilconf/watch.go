package main

import (
	"context"

	"github.com/spf13/cobra"

	"llm-council/councilconf/pkg/cli"
	"llm-council/councilconf/pkg/server"
	"llm-council/councilconf/pkg/source"
	"llm-council/councilconf/pkg/telemetry/health"
)

var watchFlags struct {
	events bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the configuration document loaded and reload it on change",
	Long: `Load the configuration document and reload it whenever it changes on
disk, and on the source.resync_schedule cron schedule when one is set. A
reload that fails keeps the previous document.

When telemetry.metrics.enabled is set, an HTTP endpoint serves Prometheus
metrics together with /healthz and /readyz probes.

The command prints the initial snapshot as JSON and then logs reloads to
stderr until interrupted.

Examples:
  councilconf watch --file protocols/standard.yaml
  COUNCILCONF_TELEMETRY_METRICS_ENABLED=true councilconf watch`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

// snapshotInfo is the JSON printed when watching starts.
type snapshotInfo struct {
	SnapshotID string `json:"snapshot_id"`
	Path       string `json:"path"`
	Backend    string `json:"backend"`
	Warnings   int    `json:"warnings"`
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchFlags.events, "events", true, "reload on file system events (overrides source.watch)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	store := a.newStore()
	snap, err := store.Reload(source.TriggerInitial)
	if err != nil {
		return a.userError(err)
	}

	events := a.cfg.Source.Watch
	if cmd.Flags().Changed("events") {
		events = watchFlags.events
	}
	watcher, err := source.NewWatcher(store, &source.WatcherConfig{
		Events:         events,
		Debounce:       a.cfg.Source.Debounce,
		ResyncSchedule: a.cfg.Source.ResyncSchedule,
	}, a.logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	if err := cli.NewFormatter(cli.FormatCompact).FormatTo(cmd.OutOrStdout(), snapshotInfo{
		SnapshotID: snap.ID,
		Path:       snap.Path,
		Backend:    snap.Backend,
		Warnings:   len(snap.Warnings),
	}); err != nil {
		return err
	}

	if a.cfg.Telemetry.Metrics.Enabled {
		checker := health.New(0)
		checker.RegisterCheck("config", func(context.Context) error {
			if store.Current() == nil {
				return source.ErrNotLoaded
			}
			return nil
		})
		srv := server.New(&a.cfg.Telemetry.Metrics, a.metrics.Handler(), checker, a.logger)
		srvDone := make(chan struct{})
		go func() {
			defer close(srvDone)
			if err := srv.Start(ctx); err != nil {
				a.logger.Error("telemetry server failed", "error", err)
			}
		}()
		defer func() {
			stop()
			<-srvDone
		}()
	}

	if err := watcher.Run(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}
