package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apper-canvas/fast-microlearn-frost/internal/catalog"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
)

var (
	lessonsCategory string
	lessonsSearch   string
	lessonsToday    bool
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons in the catalog",
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

		var lessons []catalog.Lesson
		switch {
		case lessonsToday:
			lessons = state.Catalog.Todays()
		case lessonsSearch != "":
			lessons = state.Catalog.Search(lessonsSearch)
		case lessonsCategory != "":
			lessons = state.Catalog.ByCategory(lessonsCategory)
		default:
			lessons = state.Catalog.All()
		}

		if len(lessons) == 0 {
			fmt.Println("No lessons match.")
			return nil
		}

		for i := range lessons {
			l := &lessons[i]
			done := " "
			if l.Completed() {
				done = "✓"
			}
			fmt.Printf("%s %3d  %-13s %d min  %s\n",
				done, l.ID, l.Category, l.DurationMinutes(), l.Title)
			if len(l.Tags) > 0 {
				fmt.Printf("         #%s\n", strings.Join(l.Tags, " #"))
			}
		}
		return nil
	},
}

func init() {
	lessonsCmd.Flags().StringVarP(&lessonsCategory, "category", "c", "", "Filter by category name")
	lessonsCmd.Flags().StringVarP(&lessonsSearch, "search", "s", "", "Search title, content, and tags")
	lessonsCmd.Flags().BoolVarP(&lessonsToday, "today", "t", false, "Show only today's picks")
}
