package main

import (
	"errors"
	"log/slog"

	"llm-council/councilconf/pkg/cli"
	"llm-council/councilconf/pkg/config"
	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/source"
	"llm-council/councilconf/pkg/telemetry/logging"
	"llm-council/councilconf/pkg/telemetry/metrics"
)

// app is the wiring shared by every command, built once per invocation
// from the settings file and the global flags.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Collector
	parser  parser.Parser
}

func newApp() (*app, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}

	if docFile != "" {
		cfg.Source.Path = docFile
	}
	if backend != "" {
		cfg.Parser.Backend = backend
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	})
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}

	p, err := parser.Select(cfg.Parser.Backend, logger)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	logger.Debug("parser selected", "backend", p.Name(), "path", cfg.Source.Path)

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		parser:  collector.Instrument(p),
	}, nil
}

func loadSettings() (*config.Config, error) {
	if cfgFile == "" {
		cfg, err := config.DefaultWithEnvOverrides()
		if err != nil {
			return nil, cli.NewConfigError("", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}
	return cfg, nil
}

// newStore creates the document store. Nothing is read yet.
func (a *app) newStore() *source.Store {
	return source.NewStore(a.cfg.Source.Path, a.parser, a.logger, a.metrics)
}

// load reads the document once.
func (a *app) load() (*source.Snapshot, error) {
	snap, err := a.newStore().Reload(source.TriggerInitial)
	if err != nil {
		return nil, a.userError(err)
	}
	return snap, nil
}

// userError maps well-known failures onto the messages callers match on.
func (a *app) userError(err error) error {
	var section *source.SectionError
	switch {
	case errors.As(err, &section):
		return cli.Errorf("Config section not found: %s", section.Path)
	case errors.Is(err, source.ErrFileNotFound):
		return cli.Errorf("Config file not found: %s", a.cfg.Source.Path)
	}
	return err
}
