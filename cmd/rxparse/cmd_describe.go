package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clarete/rxparse"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "describe <pattern>",
		Short:        "Print the combinator tree a pattern compiles to",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := compilePattern(args[0])
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rxparse.Describe(pattern))
			return nil
		},
	}
}
