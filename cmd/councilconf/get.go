package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"llm-council/councilconf/pkg/cli"
	"llm-council/councilconf/pkg/tree"
)

var getFlags struct {
	format string
}

var getCmd = &cobra.Command{
	Use:   "get <dotpath>",
	Short: "Print one section of the configuration document",
	Long: `Resolve a dot-separated path against the configuration document and
print the value found there as JSON.

A path that does not exist, or that leads to null, is an error:

  {"error": "Config section not found: <dotpath>"}

Examples:
  # Nested mapping
  councilconf get resource_budget.time.total

  # Plain text for string values
  councilconf get council.name --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

var dumpFlags struct {
	format string
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the whole configuration document as JSON",
	Long: `Parse the configuration document and print the resulting tree as JSON.
Mapping keys are sorted so the output is stable across runs.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(dumpCmd)

	getCmd.Flags().StringVar(&getFlags.format, "format", "json", "output format: json, compact, text")
	dumpCmd.Flags().StringVar(&dumpFlags.format, "format", "json", "output format: json, compact")
}

func runGet(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(getFlags.format)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	snap, err := a.load()
	if err != nil {
		return err
	}

	v, err := snap.Section(args[0])
	if err != nil {
		return a.userError(err)
	}
	return writeValue(cmd.OutOrStdout(), format, v)
}

func runDump(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(dumpFlags.format)
	if err != nil {
		return err
	}
	if format == cli.FormatText {
		return fmt.Errorf("dump does not support text output")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	snap, err := a.load()
	if err != nil {
		return err
	}
	return writeValue(cmd.OutOrStdout(), format, snap.Root)
}

// writeValue prints v. Text output prints strings bare and falls back to
// compact JSON for everything else.
func writeValue(w io.Writer, format cli.OutputFormat, v *tree.Value) error {
	if format == cli.FormatText {
		if s, ok := v.AsString(); ok {
			return cli.NewFormatter(cli.FormatText).FormatTo(w, s)
		}
		format = cli.FormatCompact
	}
	return cli.NewFormatter(format).FormatTo(w, v)
}
