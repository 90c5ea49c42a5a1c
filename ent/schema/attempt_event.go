package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered question, in either mode. The
// backend keeps its own attempt log; this local copy powers the offline
// stats command and survives account switches.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Run this answer belongs to"),
		field.String("mode").
			NotEmpty().
			Comment("practice or exam"),
		field.String("topic").
			Default("").
			Comment("Topic code, empty for mixed exam sets"),
		field.String("subtopic").
			Default("").
			Comment("Subtopic code when drilled down"),
		field.String("question_id").
			NotEmpty().
			Comment("Server-side question identifier"),
		field.String("user_answer").
			NotEmpty().
			Comment("The choice the user selected"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_secs").
			Default(0).
			Comment("Seconds spent on the question"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
