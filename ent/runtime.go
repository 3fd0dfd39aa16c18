// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adina/skillpilot/ent/learningpath"
	"github.com/adina/skillpilot/ent/learningstep"
	"github.com/adina/skillpilot/ent/llmrequestevent"
	"github.com/adina/skillpilot/ent/schema"
	"github.com/adina/skillpilot/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescCreatedAt is the schema descriptor for created_at field.
	learningpathDescCreatedAt := learningpathFields[3].Descriptor()
	// learningpath.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningpath.DefaultCreatedAt = learningpathDescCreatedAt.Default.(func() time.Time)
	learningstepFields := schema.LearningStep{}.Fields()
	_ = learningstepFields
	// learningstepDescCompleted is the schema descriptor for completed field.
	learningstepDescCompleted := learningstepFields[6].Descriptor()
	// learningstep.DefaultCompleted holds the default value on creation for the completed field.
	learningstep.DefaultCompleted = learningstepDescCompleted.Default.(bool)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescTargetRole is the schema descriptor for target_role field.
	userprofileDescTargetRole := userprofileFields[3].Descriptor()
	// userprofile.DefaultTargetRole holds the default value on creation for the target_role field.
	userprofile.DefaultTargetRole = userprofileDescTargetRole.Default.(string)
	// userprofileDescExperienceYears is the schema descriptor for experience_years field.
	userprofileDescExperienceYears := userprofileFields[4].Descriptor()
	// userprofile.DefaultExperienceYears holds the default value on creation for the experience_years field.
	userprofile.DefaultExperienceYears = userprofileDescExperienceYears.Default.(int)
	// userprofileDescResumeText is the schema descriptor for resume_text field.
	userprofileDescResumeText := userprofileFields[6].Descriptor()
	// userprofile.DefaultResumeText holds the default value on creation for the resume_text field.
	userprofile.DefaultResumeText = userprofileDescResumeText.Default.(string)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[7].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
