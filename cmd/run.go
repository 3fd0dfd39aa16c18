package cmd

import (
	"fmt"
	"os"

	"github.com/adina/skillpilot/internal/app"
	"github.com/adina/skillpilot/internal/llm"
	"github.com/adina/skillpilot/internal/resumeai"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		ProfileRepo: st.ProfileRepo(),
		PathRepo:    st.PathRepo(),
	}

	// AI resume parsing is optional, the keyword scanner covers the rest.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI resume parsing will be unavailable.")
	} else {
		opts.ResumeParser = resumeai.NewParser(provider, resumeai.DefaultParserConfig())
	}

	return app.Run(opts)
}
