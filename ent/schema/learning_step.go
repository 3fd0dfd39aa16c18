package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningStep is one course within a saved learning path. The completed
// flag is the only field ever updated after insert.
type LearningStep struct {
	ent.Schema
}

func (LearningStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			Immutable().
			Comment("Owning path's path_id"),
		field.String("step_id").
			Immutable().
			Comment("Deterministic step identity: <skill>-<courseID>. May repeat within a path"),
		field.String("skill"),
		field.String("course_id"),
		field.String("title"),
		field.Int("hours"),
		field.Bool("completed").
			Default(false),
		field.Int("order_index").
			Immutable().
			Comment("Position within the path; presentation depends on it"),
	}
}

func (LearningStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id"),
		index.Fields("path_id", "order_index"),
	}
}
