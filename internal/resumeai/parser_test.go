package resumeai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adina/skillpilot/internal/llm"
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/resume"
)

func TestParser_ExtractsProfile(t *testing.T) {
	resp := json.RawMessage(`{"role":"Frontend Engineer","experience_years":5,"skills":[{"name":"React","level":4},{"name":"SQL","level":2}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	p := NewParser(mock, DefaultParserConfig())

	got, err := p.Parse(context.Background(), "Senior frontend engineer, 5 years of React and some SQL.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Role != "Frontend Engineer" {
		t.Errorf("role = %q, want Frontend Engineer", got.Role)
	}
	if got.ExperienceYears != 5 {
		t.Errorf("experience_years = %d, want 5", got.ExperienceYears)
	}
	if got.Skills["React"] != profile.LevelAdvanced {
		t.Errorf("React = %d, want %d", got.Skills["React"], profile.LevelAdvanced)
	}
	if got.Skills["SQL"] != profile.LevelBeginner {
		t.Errorf("SQL = %d, want %d", got.Skills["SQL"], profile.LevelBeginner)
	}
}

func TestParser_NullFieldsUseDefaults(t *testing.T) {
	resp := json.RawMessage(`{"role":null,"experience_years":null,"skills":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	p := NewParser(mock, DefaultParserConfig())

	got, err := p.Parse(context.Background(), "Career fair flyer with no useful content.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Role != "" {
		t.Errorf("role = %q, want empty", got.Role)
	}
	if got.ExperienceYears != resume.DefaultExperienceYears {
		t.Errorf("experience_years = %d, want %d", got.ExperienceYears, resume.DefaultExperienceYears)
	}
	if len(got.Skills) != 0 {
		t.Errorf("skills = %v, want empty", got.Skills)
	}
}

func TestParser_UnknownSkillsDropped(t *testing.T) {
	resp := json.RawMessage(`{"role":"Software Engineer","experience_years":3,"skills":[{"name":"COBOL","level":5},{"name":"Python","level":3}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	p := NewParser(mock, DefaultParserConfig())

	got, err := p.Parse(context.Background(), "Mainframe veteran moving into Python.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := got.Skills["COBOL"]; ok {
		t.Error("COBOL should have been dropped, it is not in the vocabulary")
	}
	if got.Skills["Python"] != profile.LevelIntermediate {
		t.Errorf("Python = %d, want %d", got.Skills["Python"], profile.LevelIntermediate)
	}
}

func TestParser_LevelsClamped(t *testing.T) {
	resp := json.RawMessage(`{"role":"Software Engineer","experience_years":3,"skills":[{"name":"React","level":9},{"name":"SQL","level":0}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	p := NewParser(mock, DefaultParserConfig())

	got, err := p.Parse(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Skills["React"] != profile.LevelExpert {
		t.Errorf("React = %d, want clamped to %d", got.Skills["React"], profile.LevelExpert)
	}
	if got.Skills["SQL"] != profile.LevelNovice {
		t.Errorf("SQL = %d, want clamped to %d", got.Skills["SQL"], profile.LevelNovice)
	}
}

func TestParser_PromptIncludesVocabularyAndResume(t *testing.T) {
	resp := json.RawMessage(`{"role":null,"experience_years":null,"skills":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	p := NewParser(mock, DefaultParserConfig())

	const text = "Ten years herding Kubernetes clusters."
	if _, err := p.Parse(context.Background(), text); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, text) {
		t.Error("prompt does not contain the resume text")
	}
	for _, skill := range resume.Vocabulary() {
		if !strings.Contains(sent, skill) {
			t.Errorf("prompt does not list allowed skill %q", skill)
		}
	}
	if mock.Calls[0].Schema != ExtractionSchema {
		t.Error("request did not carry the extraction schema")
	}
}

func TestParser_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := NewParser(mock, DefaultParserConfig())

	_, err := p.Parse(context.Background(), "resume text")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}
