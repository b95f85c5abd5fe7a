package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuthSession is an ephemeral login session. Rows past expires_at are
// treated as absent; logout deletes the row.
type AuthSession struct {
	ent.Schema
}

func (AuthSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			Unique().
			NotEmpty().
			Sensitive().
			Comment("Unguessable URL-safe token"),
		field.Int("user_id").
			Comment("Owning user"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Comment("created_at + session TTL"),
	}
}

func (AuthSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token").Unique(),
		index.Fields("user_id"),
		index.Fields("expires_at"),
	}
}
