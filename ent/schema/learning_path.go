package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPath is a saved path toward a target role. Steps live in their own
// table keyed by path_id, ordered by order_index.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			Unique().
			Immutable().
			Comment("Opaque path identity, minted as a UUID on save"),
		field.String("user_id").
			Comment("Owning profile's profile_id"),
		field.String("target_role"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
