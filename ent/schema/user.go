package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is an identity record. Rows are never deleted, only deactivated,
// so historical quiz results and notes keep a valid owner.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Login identifier, unique across all users"),
		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("Hex-encoded PBKDF2-SHA256 digest"),
		field.String("salt").
			NotEmpty().
			Sensitive().
			Comment("Hex-encoded random salt"),
		field.String("role").
			Default("student").
			Comment("student or admin"),
		field.JSON("profile", map[string]string{}).
			Optional().
			Comment("Free-form profile data (display name, institution, ...)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Set on each successful authentication"),
		field.Bool("is_active").
			Default(true).
			Comment("Deactivated users fail authentication"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
	}
}
