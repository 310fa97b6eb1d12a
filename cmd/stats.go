package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the weekly progress report",
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

		rec := state.Tracker.Snapshot()
		weekly := state.Tracker.WeeklyStats()

		fmt.Printf("Streak:               %d day(s)\n", rec.Streak)
		fmt.Printf("Lessons completed:    %d\n", rec.TotalLessons)
		fmt.Printf("Preferred difficulty: %.1f\n", rec.PreferredDifficulty)
		fmt.Println()
		fmt.Printf("This week:            %d of %d lessons (%.0f%%)\n",
			weekly.WeeklyLessonsCompleted, progress.WeeklyLessonGoal, weekly.WeeklyGoalProgress)
		fmt.Printf("Quiz average:         %.0f%%\n", weekly.WeeklyQuizAverage)
		fmt.Printf("Topics mastered:      %d\n", weekly.TopicsMastered)

		if len(rec.CategoryScores) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Categories:")
		for i := range rec.CategoryScores {
			cs := &rec.CategoryScores[i]
			mastered := ""
			if cs.Average() >= progress.MasteryThreshold {
				mastered = "  (mastered)"
			}
			fmt.Printf("  %-14s %.0f%% over %d quiz(es)%s\n",
				cs.Category, cs.Average(), len(cs.Scores), mastered)
		}
		return nil
	},
}
