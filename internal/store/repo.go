package store

import (
	"context"
	"time"

	"github.com/adina/skillpilot/internal/learningpath"
	"github.com/adina/skillpilot/internal/profile"
)

// ProfileRepo persists user profiles. The engine itself never touches
// persistence; callers load a profile here, run engine functions on it, and
// save the result back.
type ProfileRepo interface {
	// Upsert saves the profile, keyed by email. A profile without an ID gets
	// a freshly minted one. Returns the stored profile.
	Upsert(ctx context.Context, p profile.Profile, resumeText string) (profile.Profile, error)

	// Latest returns the most recently updated profile, or nil if none exist.
	Latest(ctx context.Context) (*profile.Profile, error)

	// GetByEmail returns the profile with the given email, or nil if absent.
	GetByEmail(ctx context.Context, email string) (*profile.Profile, error)

	// ResumeText returns the stored resume text for a profile ID ("" if none).
	ResumeText(ctx context.Context, profileID string) (string, error)
}

// PathSummary is a lightweight listing row for saved learning paths.
type PathSummary struct {
	PathID         string
	TargetRole     string
	CreatedAt      time.Time
	StepCount      int
	CompletedCount int
}

// StoredPath is a persisted learning path with its storage identity.
type StoredPath struct {
	PathID    string
	CreatedAt time.Time
	Path      learningpath.LearningPath
}

// PathRepo persists learning paths and their steps.
type PathRepo interface {
	// Save stores a path with its steps in order and returns the new path ID.
	Save(ctx context.Context, lp learningpath.LearningPath) (string, error)

	// List returns summaries of a user's paths, newest first.
	List(ctx context.Context, userID string) ([]PathSummary, error)

	// Get returns a stored path with steps in order, or nil if absent.
	Get(ctx context.Context, pathID string) (*StoredPath, error)

	// Latest returns the user's most recent path, or nil if none exist.
	Latest(ctx context.Context, userID string) (*StoredPath, error)

	// ToggleStep inverts the completed flag of every step in the path whose
	// step ID matches, returning the updated path. A missing step ID is a
	// no-op, mirroring the engine's toggle semantics.
	ToggleStep(ctx context.Context, pathID, stepID string) (*StoredPath, error)
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStats aggregates LLM usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMModelUsage aggregates LLM usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsageByPurpose aggregates recorded events per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates successful requests per model ID, the shape
	// cost estimation needs.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
