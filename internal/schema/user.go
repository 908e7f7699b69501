package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a doctor account. Every patient record is scoped to exactly one user.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			MaxLen(255).
			Comment("Stored lowercased; login identifier"),

		field.String("password_hash").
			Sensitive(),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("practice_name").
			MaxLen(255),

		field.String("title").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("e.g. MD, DO, NP"),

		// login audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patients", Patient.Type),
		edge.To("refresh_tokens", RefreshToken.Type),
	}
}
