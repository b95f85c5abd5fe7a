package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceCell is the serialized per-domain or per-difficulty tally.
type PerformanceCell struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// AnswerDetail is the serialized per-question outcome embedded in a result.
type AnswerDetail struct {
	QuestionID    string `json:"question_id"`
	Domain        string `json:"domain"`
	Difficulty    string `json:"difficulty"`
	SelectedIndex *int   `json:"selected_index"`
	CorrectIndex  int    `json:"correct_index"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	LegalRef      string `json:"legal_reference,omitempty"`
}

// QuizResult is the immutable graded outcome of a quiz session.
// Created exactly once at finalize time and retained indefinitely.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("Matches the originating quiz session"),
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("Nil for anonymous results"),
		field.String("user_type").
			Default("anonymous").
			Comment("authenticated or anonymous"),
		field.String("mode").
			NotEmpty().
			Comment("quick_practice, domain_focus, or exam_simulation"),
		field.String("domain_focus").
			Optional(),
		field.String("difficulty_level").
			Optional(),
		field.Int("total_questions"),
		field.Int("answered_questions"),
		field.Int("correct_answers"),
		field.Float("score").
			Comment("correct/total*100"),
		field.Float("completion_rate").
			Comment("answered/total*100"),
		field.Float("time_taken_minutes").
			Comment("Wall clock from session start to finalize"),
		field.Bool("passed").
			Comment("score >= 70.0"),
		field.JSON("domain_performance", map[string]PerformanceCell{}).
			Optional(),
		field.JSON("difficulty_performance", map[string]PerformanceCell{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.JSON("detailed_answers", []AnswerDetail{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").Unique(),
		index.Fields("user_id"),
		index.Fields("user_type", "created_at"),
	}
}
