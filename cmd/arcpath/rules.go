package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/arcpath/arcpath/internal/fuzzy"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the fuzzy rule list in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "", "text":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for i := range fuzzy.Rules {
					rule := &fuzzy.Rules[i]
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, rule.Name, rule.Pattern, rule.Template)
				}
				return w.Flush()
			case "json":
				type ruleInfo struct {
					Name     string `json:"name"`
					Pattern  string `json:"pattern"`
					Template string `json:"template"`
				}
				rules := make([]ruleInfo, 0, len(fuzzy.Rules))
				for i := range fuzzy.Rules {
					rules = append(rules, ruleInfo{fuzzy.Rules[i].Name, fuzzy.Rules[i].Pattern, fuzzy.Rules[i].Template})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json")

	return cmd
}
