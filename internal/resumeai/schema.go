package resumeai

import "github.com/adina/skillpilot/internal/llm"

// ExtractionSchema defines the JSON schema for LLM resume extraction
// responses.
var ExtractionSchema = &llm.Schema{
	Name:        "resume-extraction",
	Description: "Skills, role, and experience extracted from resume text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"role": map[string]any{
				"type":        []any{"string", "null"},
				"description": "The candidate's current or most recent job title, or null if none is stated",
			},
			"experience_years": map[string]any{
				"type":        []any{"integer", "null"},
				"minimum":     0,
				"description": "Total years of professional experience, or null if not stated",
			},
			"skills": map[string]any{
				"type":        "array",
				"description": "Skills from the allowed list that the resume demonstrates",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Skill name, exactly as it appears in the allowed list",
						},
						"level": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Estimated proficiency from 1 (novice) to 5 (expert)",
						},
					},
					"required":             []any{"name", "level"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"role", "experience_years", "skills"},
		"additionalProperties": false,
	},
}
