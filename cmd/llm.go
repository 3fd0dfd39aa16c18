package cmd

import (
	"fmt"
	"strings"

	"github.com/adina/skillpilot/internal/llm"
	"github.com/adina/skillpilot/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage by purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %8s  %8s  %10s  %10s\n",
			"Purpose", "Requests", "Failures", "Input", "Output")
		fmt.Println(strings.Repeat("─", 60))

		var totalReq, totalFail, totalIn, totalOut int
		for _, s := range stats {
			fmt.Printf("%-16s  %8d  %8d  %10d  %10d\n",
				s.Purpose, s.Requests, s.Failures, s.InputTokens, s.OutputTokens)
			totalReq += s.Requests
			totalFail += s.Failures
			totalIn += s.InputTokens
			totalOut += s.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-16s  %8d  %8d  %10d  %10d\n",
			"TOTAL", totalReq, totalFail, totalIn, totalOut)

		byModel, err := st.EventRepo().LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage by model: %w", err)
		}
		if len(byModel) > 0 {
			printCostEstimates(byModel)
		}
		return nil
	},
}

// printCostEstimates renders per-model cost rows from the pricing table.
// Models without a known price show "?" and are listed under the total.
func printCostEstimates(byModel []store.LLMModelUsage) {
	fmt.Println()
	fmt.Println("Estimated Cost (USD)")
	fmt.Printf("%-28s  %8s  %10s  %10s  %10s\n",
		"Model", "Requests", "Input", "Output", "Cost")
	fmt.Println(strings.Repeat("─", 74))

	var total float64
	var unpriced []string
	for _, mu := range byModel {
		mc := llm.LookupCost(mu.Model)
		if mc == nil {
			fmt.Printf("%-28s  %8d  %10d  %10d  %10s\n",
				truncate(mu.Model, 28), mu.Requests, mu.InputTokens, mu.OutputTokens, "?")
			unpriced = append(unpriced, mu.Model)
			continue
		}
		cost := mc.Cost(mu.InputTokens, mu.OutputTokens)
		fmt.Printf("%-28s  %8d  %10d  %10d  %10s\n",
			truncate(mu.Model, 28), mu.Requests, mu.InputTokens, mu.OutputTokens, formatCost(cost))
		total += cost
	}

	fmt.Println(strings.Repeat("─", 74))
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf("%-28s  %8s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Printf("Pricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func formatCost(usd float64) string {
	if usd > 0 && usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
}
