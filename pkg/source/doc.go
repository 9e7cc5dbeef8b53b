// Package source loads configuration documents from disk and keeps the
// current parse available to readers.
//
// A Snapshot is one immutable parse of a file. A Store holds the most
// recent good Snapshot and replaces it on Reload; a failed reload leaves the
// previous Snapshot in place. A Watcher drives reloads from file system
// events and an optional cron schedule.
//
// Basic usage:
//
//	store := source.NewStore(path, parser.Native{}, logger, nil)
//	if _, err := store.Reload(source.TriggerInitial); err != nil {
//		return err
//	}
//	budget, err := store.Section("resource_budget.time")
//
// There is no package-level store. Create one at startup and pass it to
// whatever needs it.
package source
