package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"leksika/internal/store"
	"leksika/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "leksika",
	Short: "Bulgarian-German vocabulary trainer",
	Long:  "Leksika — a terminal flashcard trainer with spaced repetition for Bulgarian-German vocabulary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEKSIKA_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to vocabulary JSON file (overrides LEKSIKA_DATA env var)")

	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(directionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEKSIKA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the review store for a command.
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

// loadPool loads the vocabulary honoring the --data flag.
func loadPool(cmd *cobra.Command) ([]vocab.Item, error) {
	path, _ := cmd.Flags().GetString("data")
	return vocab.LoadDefault(path)
}
