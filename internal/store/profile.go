package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adina/skillpilot/ent"
	"github.com/adina/skillpilot/ent/userprofile"
	"github.com/adina/skillpilot/internal/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Upsert(ctx context.Context, p profile.Profile, resumeText string) (profile.Profile, error) {
	if p.ID == "" || p.ID == profile.DefaultID {
		p.ID = uuid.New().String()
	}

	existing, err := r.client.UserProfile.Query().
		Where(userprofile.EmailEQ(p.Email)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return profile.Profile{}, fmt.Errorf("query profile by email: %w", err)
	}

	skills := skillsToInts(p.Skills)

	if existing != nil {
		upd := existing.Update().
			SetName(p.Name).
			SetTargetRole(p.Role).
			SetExperienceYears(p.ExperienceYears).
			SetSkills(skills)
		if resumeText != "" {
			upd.SetResumeText(resumeText)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("update profile: %w", err)
		}
		return entProfileToProfile(saved), nil
	}

	saved, err := r.client.UserProfile.Create().
		SetProfileID(p.ID).
		SetName(p.Name).
		SetEmail(p.Email).
		SetTargetRole(p.Role).
		SetExperienceYears(p.ExperienceYears).
		SetSkills(skills).
		SetResumeText(resumeText).
		Save(ctx)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return entProfileToProfile(saved), nil
}

func (r *profileRepo) Latest(ctx context.Context) (*profile.Profile, error) {
	row, err := r.client.UserProfile.Query().
		Order(ent.Desc(userprofile.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest profile: %w", err)
	}
	p := entProfileToProfile(row)
	return &p, nil
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile by email: %w", err)
	}
	p := entProfileToProfile(row)
	return &p, nil
}

func (r *profileRepo) ResumeText(ctx context.Context, profileID string) (string, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.ProfileIDEQ(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query profile: %w", err)
	}
	return row.ResumeText, nil
}

func skillsToInts(skills map[string]profile.SkillLevel) map[string]int {
	out := make(map[string]int, len(skills))
	for k, v := range skills {
		out[k] = int(v)
	}
	return out
}

func entProfileToProfile(row *ent.UserProfile) profile.Profile {
	skills := make(map[string]profile.SkillLevel, len(row.Skills))
	for k, v := range row.Skills {
		// Stored levels are clamped on read so a hand-edited database can't
		// push out-of-range values into the engine.
		skills[k] = profile.SkillLevel(v).Clamp()
	}
	return profile.Profile{
		ID:              row.ProfileID,
		Name:            row.Name,
		Email:           row.Email,
		Role:            row.TargetRole,
		ExperienceYears: row.ExperienceYears,
		Skills:          skills,
	}
}
