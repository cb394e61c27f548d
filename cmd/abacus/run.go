package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gophersatwork/abacus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runHistory bool
	runMemory  bool
	runDump    bool
	runSteps   bool
)

// runCmd replays a key script and prints the resulting display
var runCmd = &cobra.Command{
	Use:   "run KEYS...",
	Short: "Press a sequence of keys and print the result",
	Long: `Presses each key in order and prints the trail and main display.

Numbers are split into single digits, so "12 + 3.5 =" presses 1 2 + 3 . 5 =.
Other keys: + - * / = % sqrt sqr 1/x neg C CE back MS M+ M- MR MC pi e.`,
	Example: `  abacus run 200 + 50 = %
  abacus run --steps 4 sqrt sqrt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		keys := abacus.ParseKeys(strings.Join(args, " "))
		out := cmd.OutOrStdout()

		for _, k := range keys {
			if err := s.Dispatch(k); err != nil {
				return err
			}
			logger.Debug("key", zap.String("key", k), zap.String("display", s.Display()))
			if runSteps {
				fmt.Fprintf(out, "%-6s %s | %s\n", k, s.Trail(), s.Display())
			}
		}

		printSnapshot(out, s.Snapshot())
		if runDump {
			fmt.Fprint(out, s.Dump())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runHistory, "history", false, "Print the history list")
	runCmd.Flags().BoolVar(&runMemory, "memory", false, "Print the memory list")
	runCmd.Flags().BoolVar(&runDump, "dump", false, "Print the internal session state")
	runCmd.Flags().BoolVar(&runSteps, "steps", false, "Print the display after every key")
}

func printSnapshot(w io.Writer, snap abacus.Snapshot) {
	if snap.Trail != "" {
		fmt.Fprintln(w, snap.Trail)
	}
	fmt.Fprintln(w, snap.Display)

	if runHistory {
		fmt.Fprintln(w, "History:")
		for _, h := range snap.History {
			fmt.Fprintf(w, "  %s\n", h)
		}
	}
	if runMemory {
		fmt.Fprintln(w, "Memory:")
		for _, m := range snap.Memory {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}
