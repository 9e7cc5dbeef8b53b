package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"llm-council/councilconf/pkg/cli"
)

var (
	// Global flags
	cfgFile string
	docFile string
	backend string
	verbose bool
)

// errReported marks a failure whose output has already been written.
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   "councilconf",
	Short: "Council protocol configuration reader",
	Long: `Councilconf parses council protocol configuration files written in a
restricted YAML dialect and answers dotted-path queries against them.

It supports:
  - Nested mappings and sequences by indentation
  - Inline [lists] and {maps}, block scalars and typed scalars
  - A native parser and a yaml.v3 backend behind one interface
  - Reloading on file change with optional scheduled resync`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			_ = cli.WriteError(os.Stdout, errorMessage(err))
		}
		os.Exit(1)
	}
}

// errorMessage returns the text shown for err in the {"error": ...} object.
func errorMessage(err error) string {
	var msg *cli.MessageError
	if errors.As(err, &msg) {
		return msg.Message
	}
	return err.Error()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "councilconf settings file (defaults and COUNCILCONF_* variables when empty)")
	rootCmd.PersistentFlags().StringVarP(&docFile, "file", "f", "", "configuration document to read (overrides source.path)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "parser backend: auto, native, yaml (overrides parser.backend)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}
