package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newRewriteCmd() *cobra.Command {
	flags := &contextFlags{}
	var showRule bool

	cmd := &cobra.Command{
		Use:   "rewrite [url...]",
		Short: "Rewrite request URLs onto archive-served paths",
		Long: "Rewrite resolves each URL against the archival context, reduces it\n" +
			"through the fuzzy rules and prints the archive-served path. URLs are\n" +
			"read from arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := flags.build()
			if err != nil {
				return err
			}

			return eachInput(cmd, args, func(input string) error {
				res, err := ctx.RewriteDetail(input)
				if err != nil {
					return err
				}
				if showRule && res.Rule != "" {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.URL, res.Rule)
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.URL)
				return err
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showRule, "show-rule", false, "Append the fuzzy rule that fired, if any")

	return cmd
}

// eachInput feeds args, or stdin lines when args is empty, to fn.
func eachInput(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
