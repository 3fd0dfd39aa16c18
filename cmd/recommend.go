package cmd

import (
	"fmt"
	"strings"

	"github.com/adina/skillpilot/internal/recommend"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for your skill gaps",
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

		recs := recommend.Generate(p, role)
		if len(recs) == 0 {
			fmt.Printf("No skill gaps for role %q. Nothing to recommend.\n", role)
			return nil
		}

		fmt.Printf("Recommendations for %s (target: %s)\n", p.Name, role)
		for _, r := range recs {
			fmt.Println()
			fmt.Printf("%s  (gap %d, aim for %s)\n", r.Skill, r.Gap, r.SuggestedLevel.Label())
			fmt.Println(strings.Repeat("─", 72))
			for _, c := range r.Courses {
				fmt.Printf("  %-6s  %-34s  %-12s  %3dh  %s\n",
					c.ID, c.Title, c.Difficulty, c.Hours, c.Provider)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("role", "", "Target role (defaults to the profile's role)")
}
