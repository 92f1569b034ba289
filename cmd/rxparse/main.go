package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "github.com/tliron/commonlog/simple"

	"github.com/clarete/rxparse"
	"github.com/clarete/rxparse/ascii"
)

func main() {
	var (
		configPath string
		verbose    int
		trace      bool
	)

	cfg := rxparse.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "rxparse",
		Short:         "Search inputs with parser combinators",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("read config: %w", err)
				}
				if err := cfg.LoadYAML(data); err != nil {
					return err
				}
			}
			if verbose > 0 {
				cfg.SetInt("log.verbosity", verbose)
			}
			if trace {
				cfg.SetBool("trace.parsers", true)
			}
			rxparse.ConfigureLogging(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeat for more)")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log every parse attempt (written at debug verbosity, -vvvv)")

	rootCmd.AddCommand(newFindCmd(cfg))
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		theme := ascii.PlainTheme
		if cfg.GetBool("output.color") {
			theme = ascii.DefaultTheme
		}
		fmt.Fprintln(os.Stderr, ascii.Color(theme.Error, "error: %s", err))
		os.Exit(1)
	}
}
