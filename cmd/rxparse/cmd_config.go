package main

import (
	"github.com/spf13/cobra"

	"github.com/clarete/rxparse"
)

func newConfigCmd(cfg *rxparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "config",
		Short:        "Print the effective configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cfg.Debug(cmd.OutOrStdout())
		},
	}
}
