package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord marks one curriculum week complete for one identifier.
// The (identifier, week_number) pair is unique; re-marking is a no-op at
// the service layer, and completed_at keeps the first completion time.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("identifier").
			NotEmpty().
			Comment("User id or anonymous marker scoping this record"),
		field.Int("week_number").
			Min(1).
			Max(12),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identifier", "week_number").Unique(),
	}
}
