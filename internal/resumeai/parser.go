// Package resumeai extracts a partial skill profile from resume text with an
// LLM. It is the richer sibling of the keyword scanner in internal/resume:
// the model estimates per-skill proficiency instead of assigning a flat
// level, but its output is constrained to the same skill vocabulary.
package resumeai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/adina/skillpilot/internal/llm"
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/resume"
)

// ParserConfig holds configuration for the LLM resume parser.
type ParserConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultParserConfig returns sensible defaults.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// Parser performs LLM-based resume extraction.
type Parser struct {
	provider llm.Provider
	cfg      ParserConfig
}

// NewParser creates an LLM-based resume parser.
func NewParser(provider llm.Provider, cfg ParserConfig) *Parser {
	return &Parser{provider: provider, cfg: cfg}
}

// extractionOutput is the raw LLM response.
type extractionOutput struct {
	Role            *string `json:"role"`
	ExperienceYears *int    `json:"experience_years"`
	Skills          []struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	} `json:"skills"`
}

// Parse sends resume text to the LLM and returns a partial profile. Skills
// outside the allowed vocabulary are dropped, levels are clamped to the 1-5
// range, and a missing experience figure falls back to the scanner default.
func (p *Parser) Parse(ctx context.Context, resumeText string) (profile.Partial, error) {
	ctx = llm.WithPurpose(ctx, "resume-parse")

	userMsg, err := buildExtractionMessage(resumeText)
	if err != nil {
		return profile.Partial{}, fmt.Errorf("build extraction prompt: %w", err)
	}

	llmReq := llm.Request{
		System: extractionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ExtractionSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, llmReq)
	if err != nil {
		return profile.Partial{}, fmt.Errorf("LLM resume extraction failed: %w", err)
	}
	if resp.StopReason == "max_tokens" {
		return profile.Partial{}, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	var raw extractionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return profile.Partial{}, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	allowed := make(map[string]bool)
	for _, s := range resume.Vocabulary() {
		allowed[s] = true
	}

	skills := make(map[string]profile.SkillLevel)
	for _, s := range raw.Skills {
		if !allowed[s.Name] {
			// LLM returned a skill outside the allowed list, drop it.
			continue
		}
		skills[s.Name] = profile.SkillLevel(s.Level).Clamp()
	}

	out := profile.Partial{
		ExperienceYears: resume.DefaultExperienceYears,
		Skills:          skills,
	}
	if raw.Role != nil {
		out.Role = *raw.Role
	}
	if raw.ExperienceYears != nil && *raw.ExperienceYears >= 0 {
		out.ExperienceYears = *raw.ExperienceYears
	}
	return out, nil
}

const extractionSystemPrompt = `You are a resume screening assistant for a career upskilling tool. Extract the candidate's role, total experience, and demonstrated skills from the resume text.

Instructions:
- Only report skills from the allowed list. Do NOT invent skill names or report variants.
- Estimate each skill's proficiency on a 1-5 scale from the resume's evidence (1 = mentioned in passing, 3 = solid working experience, 5 = deep expertise).
- Report the job title closest to the candidate's current position, or null if none is stated.
- Report total professional experience in whole years, or null if not stated.`

var extractionUserTemplate = template.Must(template.New("extraction").Parse(`Allowed skills:
{{range .Skills}}- {{.}}
{{end}}
Resume:
{{.Resume}}`))

func buildExtractionMessage(resumeText string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Skills []string
		Resume string
	}{
		Skills: resume.Vocabulary(),
		Resume: resumeText,
	}
	if err := extractionUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
