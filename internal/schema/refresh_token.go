package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RefreshToken is the durable audit record of a doctor session. The live
// session lives in Redis; this row lets us revoke and inspect sessions.
type RefreshToken struct {
	ent.Schema
}

func (RefreshToken) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (RefreshToken) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("session_id").
			MaxLen(36).
			Unique(),

		field.String("token_hash").
			MaxLen(64).
			Sensitive().
			Comment("SHA-256 hex of the refresh token; the raw token is never stored"),

		field.Time("expires_at"),

		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

func (RefreshToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("refresh_tokens").
			Unique().
			Required().
			Field("user_id"),
	}
}

func (RefreshToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
