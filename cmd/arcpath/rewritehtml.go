package main

import (
	"fmt"
	"os"

	"github.com/arcpath/arcpath/internal/htmlrewrite"
	"github.com/spf13/cobra"
)

func newRewriteHTMLCmd() *cobra.Command {
	flags := &contextFlags{}
	var inPath string
	var outPath string
	var css bool

	cmd := &cobra.Command{
		Use:   "rewrite-html",
		Short: "Rewrite URL references inside an HTML or CSS document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := flags.build()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if inPath != "" {
				file, err := os.Open(inPath)
				if err != nil {
					return err
				}
				defer func() { _ = file.Close() }()
				in = file
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer func() { _ = file.Close() }()
				out = file
			}

			if css {
				if err := htmlrewrite.Stylesheet(in, out, ctx.Rewrite); err != nil {
					return fmt.Errorf("rewrite stylesheet: %w", err)
				}
				return nil
			}
			if err := htmlrewrite.Document(in, out, ctx.Rewrite); err != nil {
				return fmt.Errorf("rewrite document: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&inPath, "in", "", "Input file (default stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&css, "css", false, "Treat the input as a stylesheet")

	return cmd
}
