package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/apper-canvas/fast-microlearn-frost/internal/app"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
	"github.com/apper-canvas/fast-microlearn-frost/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "microlearn",
	Short: "Bite-sized learning in your terminal",
	Long:  "Microlearn — short daily lessons with quizzes, streaks, and a weekly progress report.",
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

		return app.Run(state)
	},
}

func Execute() error {
	// Optional .env for MICROLEARN_DB and friends; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MICROLEARN_DB env var)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MICROLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
