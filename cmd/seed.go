package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/anvaya/paperforge/internal/seed"
	"github.com/anvaya/paperforge/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the question bank with sample questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seedVal, _ := cmd.Flags().GetUint64("seed")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if seedVal == 0 {
			seedVal = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seedVal, 0))

		n, err := seed.Run(cmd.Context(), s.Questions(), rng, count)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %d questions into %s\n", n, dbPath)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntP("count", "n", seed.DefaultCount, "Number of questions to insert")
	seedCmd.Flags().Uint64("seed", 0, "Random seed for reproducible content (0 = random)")
}
