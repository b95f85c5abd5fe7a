package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note is free text attached to a curriculum week. Exactly one of user_id
// or student_name is set: authenticated notes are keyed by user id,
// anonymous notes by a free-text name. Anonymous names carry no identity
// guarantee — two people typing the same name share notes.
type Note struct {
	ent.Schema
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("Owner for authenticated notes"),
		field.String("student_name").
			Optional().
			Comment("Owner for anonymous notes"),
		field.Int("week_number").
			Min(1).
			Max(12),
		field.String("title").
			NotEmpty(),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "week_number"),
		index.Fields("student_name", "week_number"),
	}
}
