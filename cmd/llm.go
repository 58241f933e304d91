package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anvaya/paperforge/internal/llm"
	"github.com/anvaya/paperforge/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and test the LLM integration",
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a minimal request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLLMConfig()
		if err != nil {
			return err
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

		ctx := llm.WithPurpose(cmd.Context(), "connectivity-test")
		provider, err := llm.NewProvider(ctx, cfg, s.UsageLog())
		if err != nil {
			return err
		}

		resp, err := provider.Generate(ctx, llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("provider test failed: %w", err)
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", resp.Model)
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Printf("Reply:    %s\n", strings.TrimSpace(string(resp.Content)))
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		calls, err := s.UsageLog().Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(calls) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-10s  %-28s  %-20s  %6s  %6s  %7s  %s\n",
			"Timestamp", "Provider", "Model", "Purpose", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 110))
		for _, c := range calls {
			ok := "✓"
			if !c.Success {
				ok = "✗"
			}
			fmt.Printf("%-19s  %-10s  %-28s  %-20s  %6d  %6d  %7d  %s\n",
				c.Timestamp.Local().Format("2006-01-02 15:04:05"),
				c.Provider,
				truncate(c.Model, 28),
				truncate(c.Purpose, 20),
				c.InputTokens,
				c.OutputTokens,
				c.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage",
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

		stats, err := s.UsageLog().Stats(cmd.Context())
		if err != nil {
			return err
		}
		if stats.Calls == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Printf("Calls:          %d\n", stats.Calls)
		fmt.Printf("Failures:       %d\n", stats.Failures)
		fmt.Printf("Input tokens:   %d\n", stats.InputTokens)
		fmt.Printf("Output tokens:  %d\n", stats.OutputTokens)
		fmt.Printf("Total tokens:   %d\n", stats.InputTokens+stats.OutputTokens)
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")

	llmCmd.AddCommand(llmTestCmd)
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
