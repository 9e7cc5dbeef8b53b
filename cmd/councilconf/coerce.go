package main

import (
	"github.com/spf13/cobra"

	"llm-council/councilconf/pkg/cli"
	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/tree"
)

var coerceCmd = &cobra.Command{
	Use:   "coerce <text>...",
	Short: "Show how scalar text is typed",
	Long: `Apply the scalar typing rules to each argument and print the result.

Quoted text stays a string, true/yes/on and false/no/off become booleans,
null, ~ and the empty string become null, and decimal numbers become
integers or floats.

Example:
  councilconf coerce 42 3.14 yes '"42"' 0x1F`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCoerce,
}

type coercion struct {
	Input string      `json:"input"`
	Kind  string      `json:"kind"`
	Value *tree.Value `json:"value"`
}

func init() {
	rootCmd.AddCommand(coerceCmd)
}

func runCoerce(cmd *cobra.Command, args []string) error {
	out := make([]coercion, 0, len(args))
	for _, arg := range args {
		v := parser.Coerce(arg)
		out = append(out, coercion{Input: arg, Kind: v.Kind().String(), Value: v})
	}
	return cli.NewFormatter(cli.FormatJSON).FormatTo(cmd.OutOrStdout(), out)
}
