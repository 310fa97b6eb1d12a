package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state, err := session.Load(cmd.Context(), st.SnapshotRepo(), st.AttemptRepo())
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		attempts, err := st.AttemptRepo().Recent(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}

		for _, a := range attempts {
			title := fmt.Sprintf("lesson %d", a.LessonID)
			if l, err := state.Catalog.ByID(a.LessonID); err == nil {
				title = l.Title
			}
			fmt.Printf("%s  %3d%% (%d/%d)  %s\n",
				a.CreatedAt.Format("2006-01-02 15:04"),
				a.Score, a.CorrectAnswers, a.TotalQuestions, title)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of attempts to show")
}
