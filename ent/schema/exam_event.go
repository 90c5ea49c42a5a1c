package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records a graded exam submission.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Run this result belongs to"),
		field.Float("score_percentage").
			Comment("Graded score, 0-100"),
		field.Bool("passed").
			Comment("Whether the score met the passing bar"),
		field.Int("correct_answers").
			Default(0),
		field.Int("incorrect_answers").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Int("total_time_secs").
			Default(0).
			Comment("Wall-clock seconds for the whole exam"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("passed"),
	}
}
