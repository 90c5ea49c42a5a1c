package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codifymate/caprep/internal/config"
	"github.com/codifymate/caprep/internal/llm"
	"github.com/codifymate/caprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show locally recorded study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		attempts, err := repo.AttemptStats(ctx, topic)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		scope := "all topics"
		if topic != "" {
			scope = topic
		}
		fmt.Printf("Practice (%s)\n", scope)
		fmt.Println(strings.Repeat("─", 48))
		if attempts.Total == 0 {
			fmt.Println("No practice recorded yet.")
		} else {
			fmt.Printf("Questions answered:  %d\n", attempts.Total)
			fmt.Printf("Correct:             %d\n", attempts.Correct)
			fmt.Printf("Accuracy:            %.1f%%\n", attempts.Accuracy()*100)
		}

		exams, err := repo.ExamSummary(ctx)
		if err != nil {
			return fmt.Errorf("query exams: %w", err)
		}

		fmt.Println()
		fmt.Println("Exam simulations")
		fmt.Println(strings.Repeat("─", 48))
		if exams.Attempts == 0 {
			fmt.Println("No exams recorded yet.")
		} else {
			fmt.Printf("Exams taken:  %d\n", exams.Attempts)
			fmt.Printf("Passed:       %d\n", exams.Passed)
			fmt.Printf("Best score:   %.1f%%\n", exams.BestScore)
			fmt.Printf("Avg score:    %.1f%%\n", exams.AvgScore)
		}

		usage, err := repo.LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if usage.Requests > 0 {
			fmt.Println()
			fmt.Println("AI explanations")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("Requests:  %d (%d failed)\n", usage.Requests, usage.Failures)
			fmt.Printf("Tokens:    %d in / %d out\n", usage.InputTokens, usage.OutputTokens)
			printCostEstimate(ctx, repo)
		}

		return nil
	},
}

// printCostEstimate prints per-model estimated spend where pricing is known.
func printCostEstimate(ctx context.Context, repo store.EventRepo) {
	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil || len(byModel) == 0 {
		return
	}

	var total float64
	var unknown []string
	for _, mu := range byModel {
		cost := llm.LookupCost(mu.Model)
		if cost == nil {
			unknown = append(unknown, mu.Model)
			continue
		}
		total += cost.Cost(mu.InputTokens, mu.OutputTokens)
	}

	fmt.Printf("Est. cost: %s\n", formatCost(total))
	if len(unknown) > 0 {
		fmt.Printf("Pricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	statsCmd.Flags().StringP("topic", "t", "", "Scope practice stats to one topic code")
}
