package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnqh/sudojo-lib/internal/board"
	"github.com/johnqh/sudojo-lib/internal/game"
	"github.com/johnqh/sudojo-lib/internal/scramble"
	"github.com/johnqh/sudojo-lib/internal/storage"
)

var (
	sessionSaveProgress string
	sessionSaveMarks    string
	sessionSaveKind     string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage saved play sessions",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show SESSION",
	Short: "Print a stored session's board and progress",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save PUZZLE SOLUTION",
	Short: "Store a session from board strings",
	Args:  cobra.ExactArgs(2),
	RunE:  runSessionSave,
}

func init() {
	sessionSaveCmd.Flags().StringVar(&sessionSaveProgress, "progress", "", "81-character string of player inputs")
	sessionSaveCmd.Flags().StringVar(&sessionSaveMarks, "marks", "", "Comma-separated pencil mark segments")
	sessionSaveCmd.Flags().StringVar(&sessionSaveKind, "kind", "", "Session kind: level, daily, or custom")

	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionSaveCmd)
	rootCmd.AddCommand(sessionCmd)
}

func openStore() (*storage.FS, error) {
	return storage.NewFS(cfg.DataDir, log)
}

func runSessionList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	recs, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no sessions stored")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s  saved %s\n",
			rec.SessionID, rec.Kind, rec.SavedAt.Format(time.RFC3339))
	}
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	rec, err := store.Load(cmd.Context(), "", args[0])
	if err != nil {
		return err
	}

	st, err := game.Restore(rec)
	if err != nil {
		return err
	}
	st, err = game.Reduce(st, game.UpdateSettings{
		Patch: game.SettingsPatch{ShowErrors: &cfg.ShowErrors},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), st.Play.Board.Format())
	fmt.Fprintf(cmd.OutOrStdout(), "progress: %d%%  mistakes: %d\n",
		st.Progress(), st.Mistakes())
	if cells := st.ErrorCells(); len(cells) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "wrong cells: %v\n", cells)
	}
	if st.Play.Board.Completed() {
		fmt.Fprintln(cmd.OutOrStdout(), "completed")
	}
	return nil
}

func runSessionSave(cmd *cobra.Command, args []string) error {
	st, err := game.Reduce(game.NewState(), game.Load{
		Puzzle:   args[0],
		Solution: args[1],
		Shuffle:  scramble.Identity{},
		Kind:     game.SourceCustom,
	})
	if err != nil {
		return err
	}

	if sessionSaveProgress != "" {
		if err := st.Play.Board.ApplyProgress(sessionSaveProgress); err != nil {
			return err
		}
	}
	if sessionSaveMarks != "" {
		marks, err := board.ParseMarks(sessionSaveMarks)
		if err != nil {
			return err
		}
		st.Play.Board.ApplyMarks(marks)
	}

	rec := st.Export()
	if sessionSaveKind != "" {
		rec.Kind = sessionSaveKind
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Save(cmd.Context(), rec); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rec.SessionID)
	return nil
}
