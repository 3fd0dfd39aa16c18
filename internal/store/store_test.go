package store

import (
	"context"
	"testing"

	"github.com/adina/skillpilot/internal/learningpath"
	"github.com/adina/skillpilot/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestProfileUpsertAndFetch(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// Empty store.
	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile, got %+v", got)
	}

	p := profile.Build(profile.Partial{Email: "sam@example.com", Name: "Sam"})
	saved, err := repo.Upsert(ctx, p, "resume body")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if saved.ID == "" || saved.ID == profile.DefaultID {
		t.Errorf("Upsert did not mint an ID, got %q", saved.ID)
	}

	byEmail, err := repo.GetByEmail(ctx, "sam@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail == nil || byEmail.Name != "Sam" {
		t.Fatalf("GetByEmail = %+v, want Sam", byEmail)
	}
	if byEmail.Skills["React"] != 3 {
		t.Errorf("Skills[React] = %d, want 3", byEmail.Skills["React"])
	}

	text, err := repo.ResumeText(ctx, saved.ID)
	if err != nil {
		t.Fatalf("ResumeText: %v", err)
	}
	if text != "resume body" {
		t.Errorf("ResumeText = %q, want %q", text, "resume body")
	}

	// Second upsert with the same email updates in place.
	byEmail.Role = "Full Stack Developer"
	if _, err := repo.Upsert(ctx, *byEmail, ""); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	updated, err := repo.GetByEmail(ctx, "sam@example.com")
	if err != nil || updated == nil {
		t.Fatalf("GetByEmail after update: %v", err)
	}
	if updated.Role != "Full Stack Developer" {
		t.Errorf("Role = %q after update, want %q", updated.Role, "Full Stack Developer")
	}
}

func TestPathSaveToggleRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	lp := learningpath.Build(profile.Build(profile.Partial{}), "Full Stack Developer")
	if len(lp.Steps) == 0 {
		t.Fatal("built path has no steps")
	}

	pathID, err := repo.Save(ctx, lp)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	stored, err := repo.Get(ctx, pathID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored == nil {
		t.Fatal("saved path not found")
	}
	if len(stored.Path.Steps) != len(lp.Steps) {
		t.Fatalf("got %d steps, want %d", len(stored.Path.Steps), len(lp.Steps))
	}
	for i := range lp.Steps {
		if stored.Path.Steps[i] != lp.Steps[i] {
			t.Errorf("step[%d] = %+v, want %+v", i, stored.Path.Steps[i], lp.Steps[i])
		}
	}

	stepID := lp.Steps[1].ID
	toggled, err := repo.ToggleStep(ctx, pathID, stepID)
	if err != nil {
		t.Fatalf("ToggleStep: %v", err)
	}
	if !toggled.Path.Steps[1].Completed {
		t.Error("step not completed after toggle")
	}

	// Unknown step ID is a no-op.
	same, err := repo.ToggleStep(ctx, pathID, "nope")
	if err != nil {
		t.Fatalf("ToggleStep unknown: %v", err)
	}
	if same.Path.CompletedCount() != 1 {
		t.Errorf("completed count = %d after no-op toggle, want 1", same.Path.CompletedCount())
	}

	sums, err := repo.List(ctx, lp.UserID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sums) != 1 || sums[0].StepCount != len(lp.Steps) || sums[0].CompletedCount != 1 {
		t.Errorf("List = %+v, want 1 path with %d steps and 1 completed", sums, len(lp.Steps))
	}
}

func TestEventAppendAndAggregate(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "resume-parse", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "resume-parse", Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d purposes, want 1", len(stats))
	}
	st := stats[0]
	if st.Purpose != "resume-parse" || st.Requests != 2 || st.Failures != 1 || st.InputTokens != 100 {
		t.Errorf("stats = %+v", st)
	}
}

func TestEventUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "resume-parse", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "resume-parse", InputTokens: 100, OutputTokens: 40, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "resume-parse", InputTokens: 300, OutputTokens: 90, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "resume-parse", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d models, want 2", len(usage))
	}
	haiku := usage[0]
	if haiku.Model != "claude-haiku-4-5-20251001" || haiku.Requests != 2 || haiku.InputTokens != 300 || haiku.OutputTokens != 120 {
		t.Errorf("haiku usage = %+v", haiku)
	}
	mini := usage[1]
	if mini.Model != "gpt-4o-mini" || mini.Requests != 1 || mini.InputTokens != 300 {
		t.Errorf("mini usage = %+v", mini)
	}
}
