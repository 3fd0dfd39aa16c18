package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adina/skillpilot/ent"
	entpath "github.com/adina/skillpilot/ent/learningpath"
	entstep "github.com/adina/skillpilot/ent/learningstep"
	"github.com/adina/skillpilot/internal/learningpath"
)

// pathRepo implements PathRepo using the ent client.
type pathRepo struct {
	client *ent.Client
}

func (r *pathRepo) Save(ctx context.Context, lp learningpath.LearningPath) (string, error) {
	pathID := uuid.New().String()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.LearningPath.Create().
		SetPathID(pathID).
		SetUserID(lp.UserID).
		SetTargetRole(lp.TargetRole).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("create path: %w", err)
	}

	bulk := make([]*ent.LearningStepCreate, len(lp.Steps))
	for i, s := range lp.Steps {
		bulk[i] = tx.LearningStep.Create().
			SetPathID(pathID).
			SetStepID(s.ID).
			SetSkill(s.Skill).
			SetCourseID(s.CourseID).
			SetTitle(s.Title).
			SetHours(s.Hours).
			SetCompleted(s.Completed).
			SetOrderIndex(i)
	}
	if _, err := tx.LearningStep.CreateBulk(bulk...).Save(ctx); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("create steps: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit path: %w", err)
	}
	return pathID, nil
}

func (r *pathRepo) List(ctx context.Context, userID string) ([]PathSummary, error) {
	rows, err := r.client.LearningPath.Query().
		Where(entpath.UserIDEQ(userID)).
		Order(ent.Desc(entpath.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query paths: %w", err)
	}

	out := make([]PathSummary, 0, len(rows))
	for _, row := range rows {
		steps, err := r.client.LearningStep.Query().
			Where(entstep.PathIDEQ(row.PathID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("count steps: %w", err)
		}
		completed := 0
		for _, s := range steps {
			if s.Completed {
				completed++
			}
		}
		out = append(out, PathSummary{
			PathID:         row.PathID,
			TargetRole:     row.TargetRole,
			CreatedAt:      row.CreatedAt,
			StepCount:      len(steps),
			CompletedCount: completed,
		})
	}
	return out, nil
}

func (r *pathRepo) Get(ctx context.Context, pathID string) (*StoredPath, error) {
	row, err := r.client.LearningPath.Query().
		Where(entpath.PathIDEQ(pathID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query path: %w", err)
	}
	return r.load(ctx, row)
}

func (r *pathRepo) Latest(ctx context.Context, userID string) (*StoredPath, error) {
	row, err := r.client.LearningPath.Query().
		Where(entpath.UserIDEQ(userID)).
		Order(ent.Desc(entpath.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest path: %w", err)
	}
	return r.load(ctx, row)
}

func (r *pathRepo) ToggleStep(ctx context.Context, pathID, stepID string) (*StoredPath, error) {
	// Matching rows all flip together, same duplicate-tolerant semantics as
	// the in-memory toggle. No match means no rows updated, not an error.
	rows, err := r.client.LearningStep.Query().
		Where(entstep.PathIDEQ(pathID), entstep.StepIDEQ(stepID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	for _, row := range rows {
		if _, err := row.Update().SetCompleted(!row.Completed).Save(ctx); err != nil {
			return nil, fmt.Errorf("toggle step: %w", err)
		}
	}
	return r.Get(ctx, pathID)
}

// load assembles a StoredPath from a path row and its ordered steps.
func (r *pathRepo) load(ctx context.Context, row *ent.LearningPath) (*StoredPath, error) {
	stepRows, err := r.client.LearningStep.Query().
		Where(entstep.PathIDEQ(row.PathID)).
		Order(ent.Asc(entstep.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}

	steps := make([]learningpath.Step, len(stepRows))
	for i, s := range stepRows {
		steps[i] = learningpath.Step{
			ID:        s.StepID,
			Skill:     s.Skill,
			CourseID:  s.CourseID,
			Title:     s.Title,
			Hours:     s.Hours,
			Completed: s.Completed,
		}
	}

	return &StoredPath{
		PathID:    row.PathID,
		CreatedAt: row.CreatedAt,
		Path: learningpath.LearningPath{
			UserID:     row.UserID,
			TargetRole: row.TargetRole,
			Steps:      steps,
		},
	}, nil
}
