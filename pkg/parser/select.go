package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"llm-council/councilconf/pkg/tree"
)

// BackendAuto selects the yaml.v3 backend when it passes the startup probe
// and the native parser otherwise.
const BackendAuto = "auto"

// probeDocument exercises the subset of the dialect on which both backends
// must agree for the yaml.v3 backend to be trusted.
const probeDocument = `# probe
name: "council"
limits:
  ratio: 0.8
  retries: 3
  strict: false
  enabled: yes
  mode: on
  size: 1_000
  color: 0x1F
empty:
modes: [deep, standard, quick]
weights: {accuracy: 2, cost: 1}
members:
  - id: a
    enabled: true
  - id: b
    enabled: false
note: |
  first line
  second line
`

// Select returns the parser for backend. It is called once at startup so
// call sites only ever see the Parser interface.
func Select(backend string, logger *slog.Logger) (Parser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "parser.select")

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendNative:
		return Native{}, nil
	case BackendYAML:
		return YAMLv3{}, nil
	case "", BackendAuto:
		if err := Probe(YAMLv3{}); err != nil {
			logger.Warn("yaml backend failed probe, using native parser", "error", err)
			return Native{}, nil
		}
		logger.Debug("yaml backend passed probe")
		return YAMLv3{}, nil
	default:
		return nil, fmt.Errorf("unknown parser backend %q (want %s, %s or %s)",
			backend, BackendAuto, BackendNative, BackendYAML)
	}
}

// Probe checks that candidate parses the probe document into the same tree
// as the native parser.
func Probe(candidate Parser) error {
	want, err := Native{}.Parse(probeDocument)
	if err != nil {
		return fmt.Errorf("native parser rejected probe document: %w", err)
	}
	got, err := candidate.Parse(probeDocument)
	if err != nil {
		return fmt.Errorf("%s parser rejected probe document: %w", candidate.Name(), err)
	}
	if !tree.Equal(want.Root, got.Root) {
		return fmt.Errorf("%s parser disagrees with native parser on probe document", candidate.Name())
	}
	return nil
}
