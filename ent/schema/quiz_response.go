package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResponse is one question-level row written alongside a QuizResult,
// for drill-down analytics across sessions.
type QuizResponse struct {
	ent.Schema
}

func (QuizResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to QuizResult"),
		field.Int("question_index").
			Comment("Position within the session"),
		field.String("question_id").
			NotEmpty(),
		field.String("domain").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.Int("selected_index").
			Optional().
			Nillable().
			Comment("Nil when the question was left unanswered"),
		field.Int("correct_index"),
		field.Bool("is_correct"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("domain"),
		index.Fields("is_correct"),
	}
}
