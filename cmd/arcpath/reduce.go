package main

import (
	"fmt"

	"github.com/arcpath/arcpath/internal/fuzzy"
	"github.com/spf13/cobra"
)

func newReduceCmd() *cobra.Command {
	var showRule bool

	cmd := &cobra.Command{
		Use:   "reduce [path...]",
		Short: "Reduce entry paths through the fuzzy rules",
		Long: "Reduce applies the fuzzy rule list to entry paths (scheme-less,\n" +
			"prefix-less resource locators) without any URL resolution. Paths are\n" +
			"read from arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(cmd, args, func(input string) error {
				out, rule := fuzzy.Match(input)
				if showRule && rule != nil {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out, rule.Name)
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&showRule, "show-rule", false, "Append the fuzzy rule that fired, if any")

	return cmd
}
