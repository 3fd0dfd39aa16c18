package profile

// SkillLevel is an ordinal proficiency rating from Novice (1) to Expert (5).
type SkillLevel int

const (
	LevelNovice       SkillLevel = 1
	LevelBeginner     SkillLevel = 2
	LevelIntermediate SkillLevel = 3
	LevelAdvanced     SkillLevel = 4
	LevelExpert       SkillLevel = 5
)

// Valid reports whether the level is within the 1-5 range.
func (l SkillLevel) Valid() bool {
	return l >= LevelNovice && l <= LevelExpert
}

// Clamp forces the level into the 1-5 range.
func (l SkillLevel) Clamp() SkillLevel {
	if l < LevelNovice {
		return LevelNovice
	}
	if l > LevelExpert {
		return LevelExpert
	}
	return l
}

// Label returns the display name for a level.
func (l SkillLevel) Label() string {
	switch l {
	case LevelNovice:
		return "Novice"
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// Profile is a user's skill profile. It is a value type: functions in this
// module never mutate a Profile in place, they return new copies.
type Profile struct {
	ID              string
	Name            string
	Email           string
	Role            string
	ExperienceYears int
	Skills          map[string]SkillLevel
}

// Partial is a sparse profile update. Zero-valued fields mean "not provided"
// and leave the corresponding base field untouched on merge.
type Partial struct {
	ID              string
	Name            string
	Email           string
	Role            string
	ExperienceYears int
	Skills          map[string]SkillLevel
}

// CloneSkills returns a copy of the profile's skill map.
func (p Profile) CloneSkills() map[string]SkillLevel {
	out := make(map[string]SkillLevel, len(p.Skills))
	for k, v := range p.Skills {
		out[k] = v
	}
	return out
}

// Level returns the profile's level for a skill, defaulting to Novice when
// the skill is not listed. Absence never means "zero".
func (p Profile) Level(skill string) SkillLevel {
	if lvl, ok := p.Skills[skill]; ok {
		return lvl
	}
	return LevelNovice
}
