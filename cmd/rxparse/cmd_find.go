package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/clarete/rxparse"
	"github.com/clarete/rxparse/ascii"
)

type match = rxparse.Ranged[iter.Seq[rune]]

func newFindCmd(cfg *rxparse.Config) *cobra.Command {
	var (
		maxCount int
		until    string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "find <pattern> [file]",
		Short: "Print every match of a pattern at every position of the input",
		Long: `Reads the input as a stream and tries the pattern at each position,
one rune at a time, printing every match with its range.  Matches may
overlap.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := compilePattern(args[0])
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			if !cmd.Flags().Changed("max") {
				maxCount = cfg.GetInt("find.max_count")
			}
			theme := ascii.DefaultTheme
			if noColor || !cfg.GetBool("output.color") {
				theme = ascii.PlainTheme
			}

			var finder rxparse.Parser[rune, iter.Seq[match]]
			located := rxparse.WithRange(pattern)
			switch {
			case until != "":
				finder = rxparse.AmbiguousUntil(located, rxparse.String(until))
			case maxCount >= 0:
				finder = rxparse.AmbiguousCount(located, maxCount)
			default:
				finder = rxparse.Ambiguous(located)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return find(ctx, finder, rxparse.FromReader(bufio.NewReader(in)), cmd.OutOrStdout(), theme)
		},
	}

	cmd.Flags().IntVar(&maxCount, "max", -1, "stop after this many matches (-1 for no limit)")
	cmd.Flags().StringVar(&until, "until", "", "stop at the first position where this text starts")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "don't highlight the output")

	return cmd
}

// find pushes the matches of finder over src to w as they are found
func find(
	ctx context.Context,
	finder rxparse.Parser[rune, iter.Seq[match]],
	src rxparse.Source[rune],
	w io.Writer,
	theme ascii.Theme,
) error {
	var failure error
	sub := rxparse.Subscribe(ctx, finder, src, 0, rxparse.ObserverFuncs[rxparse.Result[iter.Seq[match]]]{
		Next: func(r rxparse.Result[iter.Seq[match]]) {
			for m := range r.Value {
				fmt.Fprintf(w, "%s: %s\n",
					ascii.Color(theme.Range, "%s", m.Range),
					ascii.Color(theme.Match, "%s", rxparse.Text(m.Value)))
			}
		},
		Error: func(err error) { failure = err },
	})
	sub.Wait()
	if failure != nil && ctx.Err() != nil && errors.Is(failure, ctx.Err()) {
		return fmt.Errorf("interrupted: %w", failure)
	}
	if failure != nil {
		return fmt.Errorf("read input: %w", failure)
	}
	return nil
}
