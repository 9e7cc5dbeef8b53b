// Package logging builds the structured loggers used across councilconf.
//
// It wraps log/slog with the level and format vocabulary of the
// configuration file:
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "text",
//	})
//	if err != nil {
//	    return err
//	}
//	logger.Info("configuration loaded", "path", path, "backend", "native")
//
// Loggers write to stderr by default. The CLI prints its results as JSON on
// stdout, so log output must never share that stream.
package logging
