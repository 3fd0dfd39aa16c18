package cmd

import (
	"fmt"
	"strings"

	"github.com/adina/skillpilot/internal/gaps"
	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Analyze skill gaps against a target role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := activeProfile(ctx, st.ProfileRepo())
		if err != nil {
			return err
		}
		if role == "" {
			role = p.Role
		}

		analysis := gaps.Analyze(p, role)

		fmt.Printf("Gap analysis for %s (target: %s)\n\n", p.Name, role)
		fmt.Printf("%-20s  %-7s  %-7s  %-4s  %s\n",
			"Skill", "Current", "Desired", "Gap", "Suggested")
		fmt.Println(strings.Repeat("─", 64))

		for _, g := range analysis {
			marker := " "
			if g.Gap > 0 {
				marker = "!"
			}
			fmt.Printf("%-20s  %-7d  %-7d  %-4d  %s %s\n",
				g.Skill, g.Current, g.Desired, g.Gap, g.SuggestedLevel.Label(), marker)
		}
		return nil
	},
}

func init() {
	gapsCmd.Flags().String("role", "", "Target role (defaults to the profile's role)")
}
