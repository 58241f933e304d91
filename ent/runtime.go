// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anvaya/paperforge/ent/llmcall"
	"github.com/anvaya/paperforge/ent/paper"
	"github.com/anvaya/paperforge/ent/question"
	"github.com/anvaya/paperforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescTimestamp is the schema descriptor for timestamp field.
	llmcallDescTimestamp := llmcallFields[0].Descriptor()
	// llmcall.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmcall.DefaultTimestamp = llmcallDescTimestamp.Default.(func() time.Time)
	// llmcallDescInputTokens is the schema descriptor for input_tokens field.
	llmcallDescInputTokens := llmcallFields[4].Descriptor()
	// llmcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcall.DefaultInputTokens = llmcallDescInputTokens.Default.(int)
	// llmcallDescOutputTokens is the schema descriptor for output_tokens field.
	llmcallDescOutputTokens := llmcallFields[5].Descriptor()
	// llmcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcall.DefaultOutputTokens = llmcallDescOutputTokens.Default.(int)
	// llmcallDescLatencyMs is the schema descriptor for latency_ms field.
	llmcallDescLatencyMs := llmcallFields[6].Descriptor()
	// llmcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcall.DefaultLatencyMs = llmcallDescLatencyMs.Default.(int64)
	paperFields := schema.Paper{}.Fields()
	_ = paperFields
	// paperDescCreatedAt is the schema descriptor for created_at field.
	paperDescCreatedAt := paperFields[6].Descriptor()
	// paper.DefaultCreatedAt holds the default value on creation for the created_at field.
	paper.DefaultCreatedAt = paperDescCreatedAt.Default.(func() time.Time)
	// paperDescDuration is the schema descriptor for duration field.
	paperDescDuration := paperFields[7].Descriptor()
	// paper.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	paper.DurationValidator = paperDescDuration.Validators[0].(func(int) error)
	// paperDescTotalMarks is the schema descriptor for total_marks field.
	paperDescTotalMarks := paperFields[8].Descriptor()
	// paper.TotalMarksValidator is a validator for the "total_marks" field. It is called by the builders before save.
	paper.TotalMarksValidator = paperDescTotalMarks.Validators[0].(func(int) error)
	// paperDescIsSectionless is the schema descriptor for is_sectionless field.
	paperDescIsSectionless := paperFields[9].Descriptor()
	// paper.DefaultIsSectionless holds the default value on creation for the is_sectionless field.
	paper.DefaultIsSectionless = paperDescIsSectionless.Default.(bool)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescMarks is the schema descriptor for marks field.
	questionDescMarks := questionFields[10].Descriptor()
	// question.MarksValidator is a validator for the "marks" field. It is called by the builders before save.
	question.MarksValidator = questionDescMarks.Validators[0].(func(int) error)
	// questionDescHasImage is the schema descriptor for has_image field.
	questionDescHasImage := questionFields[12].Descriptor()
	// question.DefaultHasImage holds the default value on creation for the has_image field.
	question.DefaultHasImage = questionDescHasImage.Default.(bool)
	// questionDescIsGenerated is the schema descriptor for is_generated field.
	questionDescIsGenerated := questionFields[14].Descriptor()
	// question.DefaultIsGenerated holds the default value on creation for the is_generated field.
	question.DefaultIsGenerated = questionDescIsGenerated.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[16].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
}
