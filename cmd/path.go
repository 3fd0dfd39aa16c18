package cmd

import (
	"fmt"
	"strings"

	"github.com/adina/skillpilot/internal/learningpath"
	"github.com/adina/skillpilot/internal/store"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Build and track learning paths",
}

var pathBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a new learning path from the current profile",
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

		lp := learningpath.Build(p, role)
		if len(lp.Steps) == 0 {
			fmt.Printf("No skill gaps for role %q. Nothing to learn.\n", role)
			return nil
		}

		pathID, err := st.PathRepo().Save(ctx, lp)
		if err != nil {
			return fmt.Errorf("save path: %w", err)
		}

		fmt.Printf("Built path %s toward %q: %d steps, %d hours total.\n",
			pathID, role, len(lp.Steps), lp.TotalHours())
		printPath(lp)
		return nil
	},
}

var pathListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved learning paths",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		summaries, err := st.PathRepo().List(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("list paths: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No saved paths. Run `skillpilot path build` first.")
			return nil
		}

		fmt.Printf("%-38s  %-24s  %-19s  %s\n", "ID", "Target Role", "Created", "Progress")
		fmt.Println(strings.Repeat("─", 96))
		for _, s := range summaries {
			fmt.Printf("%-38s  %-24s  %-19s  %d/%d\n",
				s.PathID, s.TargetRole,
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				s.CompletedCount, s.StepCount)
		}
		return nil
	},
}

var pathShowCmd = &cobra.Command{
	Use:   "show [path-id]",
	Short: "Show a path's steps (latest path when no ID given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		var stored *store.StoredPath
		if len(args) == 1 {
			stored, err = st.PathRepo().Get(ctx, args[0])
		} else {
			p, perr := activeProfile(ctx, st.ProfileRepo())
			if perr != nil {
				return perr
			}
			stored, err = st.PathRepo().Latest(ctx, p.ID)
		}
		if err != nil {
			return fmt.Errorf("load path: %w", err)
		}
		if stored == nil {
			fmt.Println("No saved paths. Run `skillpilot path build` first.")
			return nil
		}

		lp := stored.Path
		fmt.Printf("Path %s toward %q (%d/%d done, %d hours total)\n\n",
			stored.PathID, lp.TargetRole, lp.CompletedCount(), len(lp.Steps), lp.TotalHours())
		printPath(lp)
		return nil
	},
}

var pathToggleCmd = &cobra.Command{
	Use:   "toggle <step-id>",
	Short: "Toggle a step's completion on the latest path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stepID := args[0]

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

		latest, err := st.PathRepo().Latest(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("load path: %w", err)
		}
		if latest == nil {
			fmt.Println("No saved paths. Run `skillpilot path build` first.")
			return nil
		}

		updated, err := st.PathRepo().ToggleStep(ctx, latest.PathID, stepID)
		if err != nil {
			return fmt.Errorf("toggle step: %w", err)
		}

		lp := updated.Path
		fmt.Printf("Path %s: %d/%d done.\n\n", updated.PathID, lp.CompletedCount(), len(lp.Steps))
		printPath(lp)
		return nil
	},
}

// printPath renders the steps of a path as a numbered checklist.
func printPath(lp learningpath.LearningPath) {
	for i, s := range lp.Steps {
		mark := "[ ]"
		if s.Completed {
			mark = "[x]"
		}
		fmt.Printf("  %2d. %s %-20s  %-34s  %3dh  (%s)\n",
			i+1, mark, s.Skill, s.Title, s.Hours, s.ID)
	}
}

func init() {
	pathBuildCmd.Flags().String("role", "", "Target role (defaults to the profile's role)")

	pathCmd.AddCommand(pathBuildCmd)
	pathCmd.AddCommand(pathListCmd)
	pathCmd.AddCommand(pathShowCmd)
	pathCmd.AddCommand(pathToggleCmd)
}
