package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anvaya/paperforge/internal/paper"
	"github.com/anvaya/paperforge/internal/store"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "Manage saved papers",
}

var papersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved papers, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		papers, err := s.Papers().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(papers) == 0 {
			fmt.Println("No papers saved yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-40s  %5s  %5s\n", "ID", "Created", "Title", "Qs", "Marks")
		fmt.Println(strings.Repeat("─", 112))
		for _, p := range papers {
			fmt.Printf("%-36s  %-19s  %-40s  %5d  %5d\n",
				p.ID,
				p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(p.Title, 40),
				paper.QuestionCount(p),
				p.TotalMarks,
			)
		}
		return nil
	},
}

var papersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		p, err := s.Papers().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("paper %s not found", args[0])
		}
		renderPaper(cmd.OutOrStdout(), p)
		return nil
	},
}

var papersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Papers().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted paper %s.\n", args[0])
		return nil
	},
}

func init() {
	papersCmd.AddCommand(papersListCmd)
	papersCmd.AddCommand(papersShowCmd)
	papersCmd.AddCommand(papersDeleteCmd)
}
