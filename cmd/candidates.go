package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnqh/sudojo-lib/internal/board"
	"github.com/johnqh/sudojo-lib/internal/infer"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates BOARD",
	Short: "Compute peer-derived candidates for every empty cell",
	Long: `Candidates prints, for each empty cell, the digits not yet placed in
the cell's row, column, or block. The output is 81 comma-separated
segments; filled cells produce an empty segment.`,
	Args: cobra.ExactArgs(1),
	RunE: runCandidates,
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	b, err := board.Parse(args[0])
	if err != nil {
		return err
	}

	marked := infer.Candidates(&b)
	fmt.Fprintln(cmd.OutOrStdout(), marked.Serialize(board.ModeMarks))
	return nil
}
