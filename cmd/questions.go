package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anvaya/paperforge/internal/question"
	"github.com/anvaya/paperforge/internal/store"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage the question bank",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, _ := cmd.Flags().GetString("board")
		class, _ := cmd.Flags().GetString("class")
		subject, _ := cmd.Flags().GetString("subject")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		qType, _ := cmd.Flags().GetString("type")
		search, _ := cmd.Flags().GetString("search")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.Questions().List(cmd.Context(), 0)
		if err != nil {
			return err
		}

		shown := 0
		fmt.Printf("%-36s  %-6s  %-5s  %-12s  %-20s  %-6s  %s\n",
			"ID", "Board", "Class", "Subject", "Type", "Diff", "Text")
		fmt.Println(strings.Repeat("─", 120))
		for _, r := range records {
			if board != "" && string(r.Board) != board {
				continue
			}
			if class != "" && r.Class != class {
				continue
			}
			if subject != "" && r.Subject != subject {
				continue
			}
			if difficulty != "" && string(r.Difficulty) != difficulty {
				continue
			}
			if qType != "" && string(r.Type) != qType {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(r.Text), strings.ToLower(search)) {
				continue
			}
			text := r.Text
			if i := strings.IndexByte(text, '\n'); i >= 0 {
				text = text[:i]
			}
			if len(text) > 48 {
				text = text[:48]
			}
			fmt.Printf("%-36s  %-6s  %-5s  %-12s  %-20s  %-6s  %s\n",
				r.ID, r.Board, r.Class, truncate(r.Subject, 12), truncate(string(r.Type), 20), firstWord(string(r.Difficulty)), text)
			shown++
			if limit > 0 && shown >= limit {
				break
			}
		}
		if shown == 0 {
			fmt.Println("No questions found.")
		}
		return nil
	},
}

var questionsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import questions from a JSON array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		var records []question.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo := s.Questions()
		for i, rec := range records {
			if _, err := repo.Create(cmd.Context(), rec); err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
		}
		fmt.Printf("Imported %d questions.\n", len(records))
		return nil
	},
}

var questionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a question by id",
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

		if err := s.Questions().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted question %s.\n", args[0])
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	questionsListCmd.Flags().String("board", "", "Filter by board")
	questionsListCmd.Flags().String("class", "", "Filter by class")
	questionsListCmd.Flags().String("subject", "", "Filter by subject")
	questionsListCmd.Flags().String("difficulty", "", "Filter by difficulty (Easy, Medium, Hard)")
	questionsListCmd.Flags().String("type", "", "Filter by question type")
	questionsListCmd.Flags().String("search", "", "Case-insensitive text search")
	questionsListCmd.Flags().IntP("limit", "n", 50, "Maximum rows to show (0 = all)")

	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsImportCmd)
	questionsCmd.AddCommand(questionsDeleteCmd)
}
