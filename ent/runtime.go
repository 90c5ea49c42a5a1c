// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codifymate/caprep/ent/attemptevent"
	"github.com/codifymate/caprep/ent/examevent"
	"github.com/codifymate/caprep/ent/llmrequestevent"
	"github.com/codifymate/caprep/ent/schema"
	"github.com/codifymate/caprep/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescMode is the schema descriptor for mode field.
	attempteventDescMode := attempteventFields[1].Descriptor()
	// attemptevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attemptevent.ModeValidator = attempteventDescMode.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[2].Descriptor()
	// attemptevent.DefaultTopic holds the default value on creation for the topic field.
	attemptevent.DefaultTopic = attempteventDescTopic.Default.(string)
	// attempteventDescSubtopic is the schema descriptor for subtopic field.
	attempteventDescSubtopic := attempteventFields[3].Descriptor()
	// attemptevent.DefaultSubtopic holds the default value on creation for the subtopic field.
	attemptevent.DefaultSubtopic = attempteventDescSubtopic.Default.(string)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[4].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescUserAnswer is the schema descriptor for user_answer field.
	attempteventDescUserAnswer := attempteventFields[5].Descriptor()
	// attemptevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	attemptevent.UserAnswerValidator = attempteventDescUserAnswer.Validators[0].(func(string) error)
	// attempteventDescTimeSecs is the schema descriptor for time_secs field.
	attempteventDescTimeSecs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultTimeSecs holds the default value on creation for the time_secs field.
	attemptevent.DefaultTimeSecs = attempteventDescTimeSecs.Default.(int)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescAttemptID is the schema descriptor for attempt_id field.
	exameventDescAttemptID := exameventFields[0].Descriptor()
	// examevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	examevent.AttemptIDValidator = exameventDescAttemptID.Validators[0].(func(string) error)
	// exameventDescCorrectAnswers is the schema descriptor for correct_answers field.
	exameventDescCorrectAnswers := exameventFields[3].Descriptor()
	// examevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	examevent.DefaultCorrectAnswers = exameventDescCorrectAnswers.Default.(int)
	// exameventDescIncorrectAnswers is the schema descriptor for incorrect_answers field.
	exameventDescIncorrectAnswers := exameventFields[4].Descriptor()
	// examevent.DefaultIncorrectAnswers holds the default value on creation for the incorrect_answers field.
	examevent.DefaultIncorrectAnswers = exameventDescIncorrectAnswers.Default.(int)
	// exameventDescTotalQuestions is the schema descriptor for total_questions field.
	exameventDescTotalQuestions := exameventFields[5].Descriptor()
	// examevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	examevent.DefaultTotalQuestions = exameventDescTotalQuestions.Default.(int)
	// exameventDescTotalTimeSecs is the schema descriptor for total_time_secs field.
	exameventDescTotalTimeSecs := exameventFields[6].Descriptor()
	// examevent.DefaultTotalTimeSecs holds the default value on creation for the total_time_secs field.
	examevent.DefaultTotalTimeSecs = exameventDescTotalTimeSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
