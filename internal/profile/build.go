package profile

// Default identity used when the caller supplies no base values. These mirror
// the demo profile the rest of the app seeds with.
const (
	DefaultID    = "u1"
	DefaultName  = "Alex Developer"
	DefaultEmail = "alex@example.com"
	DefaultRole  = "Frontend Engineer"

	DefaultExperienceYears = 3
)

// defaultSkills returns the baseline skill map for a new profile.
func defaultSkills() map[string]SkillLevel {
	return map[string]SkillLevel{
		"React":      3,
		"TypeScript": 2,
		"Node.js":    2,
		"SQL":        2,
	}
}

// Build constructs a complete Profile from a partial one, filling every
// missing field with defaults. Skills from the partial overlay the baseline
// skill map key-by-key, partial values winning on collision.
func Build(base Partial) Profile {
	p := Profile{
		ID:              base.ID,
		Name:            base.Name,
		Email:           base.Email,
		Role:            base.Role,
		ExperienceYears: base.ExperienceYears,
		Skills:          defaultSkills(),
	}
	if p.ID == "" {
		p.ID = DefaultID
	}
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Email == "" {
		p.Email = DefaultEmail
	}
	if p.Role == "" {
		p.Role = DefaultRole
	}
	if p.ExperienceYears == 0 {
		p.ExperienceYears = DefaultExperienceYears
	}
	for skill, lvl := range base.Skills {
		p.Skills[skill] = lvl
	}
	return p
}

// Merge returns a copy of base with every field present in the partial
// overwritten. Skill maps are unioned key-by-key, the partial's value winning
// on collision. Neither input is mutated.
func Merge(base Profile, upd Partial) Profile {
	out := base
	out.Skills = base.CloneSkills()

	if upd.ID != "" {
		out.ID = upd.ID
	}
	if upd.Name != "" {
		out.Name = upd.Name
	}
	if upd.Email != "" {
		out.Email = upd.Email
	}
	if upd.Role != "" {
		out.Role = upd.Role
	}
	if upd.ExperienceYears != 0 {
		out.ExperienceYears = upd.ExperienceYears
	}
	for skill, lvl := range upd.Skills {
		out.Skills[skill] = lvl
	}
	return out
}

// RemoveSkills returns a copy of base without the named skills. Names absent
// from the skill map are ignored. Neither input is mutated.
func RemoveSkills(base Profile, names ...string) Profile {
	out := base
	out.Skills = base.CloneSkills()
	for _, name := range names {
		delete(out.Skills, name)
	}
	return out
}
