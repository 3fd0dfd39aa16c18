package cmd

import (
	"fmt"
	"strings"

	"github.com/adina/skillpilot/internal/catalog"
	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show job market demand by skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetInt("top")

		var trends []catalog.MarketTrend
		if top > 0 {
			trends = catalog.TopTrends(top)
		} else {
			trends = catalog.Trends()
		}

		fmt.Printf("%-20s  %-6s  %s\n", "Skill", "Demand", "Growth YoY")
		fmt.Println(strings.Repeat("─", 48))
		for _, t := range trends {
			bar := strings.Repeat("█", t.DemandIndex/10)
			fmt.Printf("%-20s  %-6d  %+5.1f%%  %s\n",
				t.Skill, t.DemandIndex, t.GrowthYoY*100, bar)
		}
		return nil
	},
}

func init() {
	trendsCmd.Flags().IntP("top", "n", 0, "Show only the N most in-demand skills")
}
