// Command replay resolves encounter log lines to the artifact held afterwards.
//
// Usage:
//
//	replay "ASTEROID | EnergyCrystal:POWER=5 | EnergyCrystal:POWER=10"
//	replay --file encounters.log
//	cat encounters.log | replay
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/random"
)

var errLinesFailed = errors.New("one or more lines could not be replayed")

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var (
		file string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "replay [line...]",
		Short: "Replay encounter log lines",
		Long: `Each line has the form "<ASTEROID|TRADING_POST> | <owned> | <other>".
Lines come from the arguments, from --file, or from stdin when neither is given.
Prints the artifact held after each line, one per line.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" && len(args) > 0 {
				return fmt.Errorf("pass log lines or --file, not both")
			}

			rng, err := random.NewFromSeed(seed)
			if err != nil {
				return err
			}
			replayer := codec.NewReplayer(rng)

			var src io.Reader
			switch {
			case len(args) > 0:
				src = strings.NewReader(strings.Join(args, "\n"))
			case file == "" || file == "-":
				src = stdin
			default:
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open replay log: %w", err)
				}
				defer f.Close()
				src = f
			}

			return replayLines(replayer, src, stdout, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `read log lines from a file ("-" for stdin)`)
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the trading post rock gamble (0 picks a random seed)")
	return cmd
}

// replayLines writes the held artifact for each line to out, or a line-numbered
// error to errOut. Lines read before a read failure are still written. Returns
// errLinesFailed if any line failed.
func replayLines(replayer *codec.Replayer, src io.Reader, out, errOut io.Writer) error {
	results, readErr := replayer.ReplayAll(src)

	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			fmt.Fprintf(errOut, "line %d: %v\n", res.LineNumber, res.Err)
			continue
		}
		fmt.Fprintln(out, codec.Describe(res.Held))
	}

	if readErr != nil {
		return readErr
	}
	if failed {
		return errLinesFailed
	}
	return nil
}
