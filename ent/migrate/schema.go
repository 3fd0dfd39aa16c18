// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "target_role", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpath_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[2]},
			},
			{
				Name:    "learningpath_created_at",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[4]},
			},
		},
	}
	// LearningStepsColumns holds the columns for the "learning_steps" table.
	LearningStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "hours", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "order_index", Type: field.TypeInt},
	}
	// LearningStepsTable holds the schema information for the "learning_steps" table.
	LearningStepsTable = &schema.Table{
		Name:       "learning_steps",
		Columns:    LearningStepsColumns,
		PrimaryKey: []*schema.Column{LearningStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningstep_path_id",
				Unique:  false,
				Columns: []*schema.Column{LearningStepsColumns[1]},
			},
			{
				Name:    "learningstep_path_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{LearningStepsColumns[1], LearningStepsColumns[8]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "target_role", Type: field.TypeString, Default: ""},
		{Name: "experience_years", Type: field.TypeInt, Default: 0},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "resume_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_email",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[3]},
			},
			{
				Name:    "userprofile_profile_id",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearningPathsTable,
		LearningStepsTable,
		UserProfilesTable,
	}
)

func init() {
}
