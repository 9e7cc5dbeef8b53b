package main

import (
	"errors"

	"github.com/spf13/cobra"

	"llm-council/councilconf/pkg/cli"
	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/source"
)

var checkFlags struct {
	strict bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the configuration document parses",
	Long: `Parse the configuration document and report the outcome as JSON.

A structural error makes the document invalid and exits with status 1.
Warnings, such as a block scalar closed by the end of the file, are listed
but do not fail the check unless --strict is given.

Examples:
  councilconf check --file protocols/standard.yaml
  councilconf check --backend yaml --strict`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// checkReport is the JSON printed by check.
type checkReport struct {
	Valid    bool    `json:"valid"`
	Path     string  `json:"path"`
	Backend  string  `json:"backend"`
	Warnings []issue `json:"warnings"`
	Error    *issue  `json:"error,omitempty"`
}

type issue struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

func newIssue(e *parser.Error) issue {
	return issue{Kind: string(e.Kind), Line: e.Line, Message: e.Message}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false, "treat warnings as errors")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	report := checkReport{
		Path:     a.cfg.Source.Path,
		Backend:  a.parser.Name(),
		Warnings: []issue{},
	}

	snap, err := a.newStore().Reload(source.TriggerManual)
	if err != nil {
		var perr *parser.Error
		if !errors.As(err, &perr) {
			return a.userError(err)
		}
		e := newIssue(perr)
		report.Error = &e
	} else {
		for _, w := range snap.Warnings {
			report.Warnings = append(report.Warnings, newIssue(w))
		}
		report.Valid = !checkFlags.strict || len(report.Warnings) == 0
	}

	if err := cli.NewFormatter(cli.FormatJSON).FormatTo(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if !report.Valid {
		return errReported
	}
	return nil
}
