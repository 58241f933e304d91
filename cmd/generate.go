package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/anvaya/paperforge/internal/allocate"
	"github.com/anvaya/paperforge/internal/engine"
	"github.com/anvaya/paperforge/internal/llm"
	"github.com/anvaya/paperforge/internal/question"
	"github.com/anvaya/paperforge/internal/store"
	"github.com/anvaya/paperforge/internal/synth"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question paper from the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, _ := cmd.Flags().GetString("board")
		class, _ := cmd.Flags().GetString("class")
		subject, _ := cmd.Flags().GetString("subject")
		chapters, _ := cmd.Flags().GetStringSlice("chapter")
		topics, _ := cmd.Flags().GetStringSlice("topic")
		easy, _ := cmd.Flags().GetInt("easy")
		medium, _ := cmd.Flags().GetInt("medium")
		hard, _ := cmd.Flags().GetInt("hard")
		totalMarks, _ := cmd.Flags().GetInt("marks")
		duration, _ := cmd.Flags().GetInt("duration")
		useAI, _ := cmd.Flags().GetBool("ai")
		noSave, _ := cmd.Flags().GetBool("no-save")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()

		var synthesizer synth.Synthesizer
		if useAI {
			cfg, err := loadLLMConfig()
			if err != nil {
				return err
			}
			provider, err := llm.NewProvider(ctx, cfg, s.UsageLog())
			if err != nil {
				return err
			}
			synthesizer = synth.NewAISynthesizer(provider, synth.DefaultAIConfig())
		} else {
			rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			synthesizer = synth.NewTemplateSynthesizer(rng)
		}

		eng := engine.New(s.Questions(), synthesizer, engine.DefaultEngineConfig())
		p, err := eng.GeneratePaper(ctx, engine.GenerateParams{
			Board:        question.Board(board),
			Class:        class,
			Subject:      subject,
			Chapters:     chapters,
			Topics:       topics,
			Distribution: allocate.Distribution{Easy: easy, Medium: medium, Hard: hard},
			TotalMarks:   totalMarks,
			Duration:     duration,
		})
		if err != nil {
			return err
		}

		renderPaper(cmd.OutOrStdout(), p)

		if !noSave {
			if err := s.Papers().Save(ctx, p); err != nil {
				return fmt.Errorf("save paper: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved paper %s\n", p.ID)
		}
		return nil
	},
}

// loadLLMConfig resolves provider settings from PAPERFORGE_* variables,
// falling back to the vendors' standard API key variables.
func loadLLMConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}
	return llm.Config{}, fmt.Errorf("no LLM API key found; set PAPERFORGE_ANTHROPIC_API_KEY, PAPERFORGE_OPENAI_API_KEY, or PAPERFORGE_GEMINI_API_KEY")
}

func init() {
	generateCmd.Flags().String("board", "CBSE", "Examination board (CBSE, ICSE, State)")
	generateCmd.Flags().String("class", "10", "Class level")
	generateCmd.Flags().String("subject", "", "Subject (required)")
	generateCmd.Flags().StringSlice("chapter", nil, "Restrict to chapters (repeatable)")
	generateCmd.Flags().StringSlice("topic", nil, "Restrict to topics (repeatable)")
	generateCmd.Flags().Int("easy", 40, "Easy percentage")
	generateCmd.Flags().Int("medium", 40, "Medium percentage")
	generateCmd.Flags().Int("hard", 20, "Hard percentage")
	generateCmd.Flags().Int("marks", 0, "Requested total marks (fallback snapshot)")
	generateCmd.Flags().Int("duration", 180, "Exam duration in minutes")
	generateCmd.Flags().Bool("ai", false, "Synthesize missing questions with an LLM instead of templates")
	generateCmd.Flags().Bool("no-save", false, "Print the paper without saving it")
	_ = generateCmd.MarkFlagRequired("subject")
}
