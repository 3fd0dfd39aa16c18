package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile stores a user's skill profile: identity, target role, and the
// skill→level map. Skills are embedded as JSON rather than a junction table;
// the engine always consumes the whole map at once.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Unique().
			Immutable().
			Comment("Opaque profile identity, minted as a UUID on first save"),
		field.String("name"),
		field.String("email").
			Unique(),
		field.String("target_role").
			Default("").
			Comment("Free-text role the user is working toward"),
		field.Int("experience_years").
			Default(0),
		field.JSON("skills", map[string]int{}).
			Comment("Skill name to level (1-5)"),
		field.Text("resume_text").
			Default("").
			Comment("Raw resume text from the last import, kept for re-parsing"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("profile_id"),
	}
}
