package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/johnqh/sudojo-lib/internal/board"
	"github.com/johnqh/sudojo-lib/internal/game"
)

var inspectProgress string

var inspectCmd = &cobra.Command{
	Use:   "inspect BOARD",
	Short: "Print a board with fill statistics",
	Long: `Inspect parses an 81-character board string, optionally layers player
inputs on top of it, and prints the grid together with given, input, and
progress counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectProgress, "progress", "", "81-character string of player inputs to layer on")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	b, err := board.Parse(args[0])
	if err != nil {
		return err
	}
	if inspectProgress != "" {
		if err := b.ApplyProgress(inspectProgress); err != nil {
			return err
		}
	}

	if cfg.DisplayMode == game.DisplayCompact {
		fmt.Fprintln(cmd.OutOrStdout(), b.Serialize(board.ModeState))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), b.Format())
	}

	if !b.IsValid() {
		fmt.Fprintln(cmd.OutOrStdout(), "warning: board contains conflicting digits")
	}

	open := board.CellCount - b.GivenCount()
	pct := 100
	if open > 0 {
		pct = int(math.Round(100 * float64(b.InputCount()) / float64(open)))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "givens: %d  inputs: %d/%d  progress: %d%%\n",
		b.GivenCount(), b.InputCount(), open, pct)
	return nil
}
