// Package cmd wires the paperforge CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anvaya/paperforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "paperforge",
	Short: "Exam question paper composition engine",
	Long:  "Paperforge assembles board-style exam papers from a question bank,\nallocating questions across difficulty bands and sections.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAPERFORGE_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(papersCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PAPERFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
