package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/adina/skillpilot/internal/llm"
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/resume"
	"github.com/adina/skillpilot/internal/resumeai"
	"github.com/adina/skillpilot/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your skill profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		email, _ := cmd.Flags().GetString("email")

		var p profile.Profile
		if email != "" {
			stored, err := st.ProfileRepo().GetByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if stored == nil {
				return fmt.Errorf("no profile stored for %s", email)
			}
			p = *stored
		} else {
			p, err = activeProfile(ctx, st.ProfileRepo())
			if err != nil {
				return err
			}
		}

		fmt.Printf("Name:        %s\n", p.Name)
		fmt.Printf("Email:       %s\n", p.Email)
		fmt.Printf("Target role: %s\n", p.Role)
		fmt.Printf("Experience:  %d years\n", p.ExperienceYears)
		fmt.Println()

		skills := make([]string, 0, len(p.Skills))
		for s := range p.Skills {
			skills = append(skills, s)
		}
		sort.Strings(skills)

		fmt.Printf("%-20s  %-5s  %s\n", "Skill", "Level", "")
		fmt.Println(strings.Repeat("─", 48))
		for _, s := range skills {
			lvl := p.Skills[s]
			fmt.Printf("%-20s  %-5d  %s\n", s, lvl, lvl.Label())
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")
		years, _ := cmd.Flags().GetInt("years")
		skillFlags, _ := cmd.Flags().GetStringArray("skill")
		removeFlags, _ := cmd.Flags().GetStringArray("remove-skill")

		upd := profile.Partial{
			Name:            name,
			Email:           email,
			Role:            role,
			ExperienceYears: years,
		}
		if len(skillFlags) > 0 {
			upd.Skills = make(map[string]profile.SkillLevel, len(skillFlags))
			for _, sf := range skillFlags {
				skill, lvl, err := parseSkillFlag(sf)
				if err != nil {
					return err
				}
				upd.Skills[skill] = lvl
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		base, err := activeProfile(ctx, st.ProfileRepo())
		if err != nil {
			return err
		}

		merged := profile.Merge(base, upd)
		if len(removeFlags) > 0 {
			for _, name := range removeFlags {
				if _, ok := merged.Skills[name]; !ok {
					return fmt.Errorf("skill %q not in profile", name)
				}
			}
			merged = profile.RemoveSkills(merged, removeFlags...)
		}
		saved, err := st.ProfileRepo().Upsert(ctx, merged, "")
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		fmt.Printf("Saved profile for %s (%s), target role %q.\n", saved.Name, saved.Email, saved.Role)
		return nil
	},
}

var profileImportCmd = &cobra.Command{
	Use:   "import [resume-file]",
	Short: "Extract skills from a resume and merge them into the profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useAI, _ := cmd.Flags().GetBool("ai")
		reparse, _ := cmd.Flags().GetBool("reparse")

		if reparse == (len(args) == 1) {
			return fmt.Errorf("pass a resume file or --reparse, not both")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		var text string
		if reparse {
			stored, err := st.ProfileRepo().Latest(ctx)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if stored == nil {
				return fmt.Errorf("no stored profile to reparse")
			}
			text, err = st.ProfileRepo().ResumeText(ctx, stored.ID)
			if err != nil {
				return fmt.Errorf("load resume text: %w", err)
			}
			if text == "" {
				return fmt.Errorf("no resume stored for %s; import a file first", stored.Email)
			}
		} else {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			text = string(data)
		}

		var extracted profile.Partial
		if useAI {
			provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
			if err != nil {
				return fmt.Errorf("LLM provider: %w", err)
			}
			parser := resumeai.NewParser(provider, resumeai.DefaultParserConfig())
			extracted, err = parser.Parse(ctx, text)
			if err != nil {
				return fmt.Errorf("AI extraction: %w", err)
			}
		} else {
			extracted = resume.Extract(text)
		}

		base, err := activeProfile(ctx, st.ProfileRepo())
		if err != nil {
			return err
		}

		merged := profile.Merge(base, extracted)
		if _, err := st.ProfileRepo().Upsert(ctx, merged, text); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		fmt.Printf("Imported %d skills", len(extracted.Skills))
		if extracted.Role != "" {
			fmt.Printf(", detected role %q", extracted.Role)
		}
		fmt.Printf(", %d years experience.\n", extracted.ExperienceYears)
		return nil
	},
}

// activeProfile loads the most recent stored profile, falling back to the
// built-in demo profile when the database is empty.
func activeProfile(ctx context.Context, repo store.ProfileRepo) (profile.Profile, error) {
	p, err := repo.Latest(ctx)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if p != nil {
		return *p, nil
	}
	return profile.Build(profile.Partial{}), nil
}

// parseSkillFlag parses a "Skill=Level" flag value, e.g. "React=4".
func parseSkillFlag(s string) (string, profile.SkillLevel, error) {
	name, val, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid skill %q: expected Skill=Level", s)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return "", 0, fmt.Errorf("invalid level in %q: %w", s, err)
	}
	lvl := profile.SkillLevel(n)
	if !lvl.Valid() {
		return "", 0, fmt.Errorf("invalid level %d in %q: must be 1-5", n, s)
	}
	return name, lvl, nil
}

func init() {
	profileSetCmd.Flags().String("name", "", "Display name")
	profileSetCmd.Flags().String("email", "", "Email address (profile key)")
	profileSetCmd.Flags().String("role", "", "Target role, e.g. \"Full Stack Developer\"")
	profileSetCmd.Flags().Int("years", 0, "Years of professional experience")
	profileSetCmd.Flags().StringArray("skill", nil, "Skill rating as Skill=Level (repeatable)")
	profileSetCmd.Flags().StringArray("remove-skill", nil, "Skill to drop from the profile (repeatable)")

	profileShowCmd.Flags().String("email", "", "Show the profile stored under this email")

	profileImportCmd.Flags().Bool("ai", false, "Use the LLM parser instead of the keyword scanner")
	profileImportCmd.Flags().Bool("reparse", false, "Re-run extraction on the stored resume text")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileImportCmd)
}
