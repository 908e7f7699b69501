package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// IntakeLink is a single-use, time-limited invitation token. The token grants
// an unauthenticated patient access to submit exactly one intake form.
//
// Status is never stored; it is derived on read: used wins over expired,
// otherwise the link is active until expires_at.
type IntakeLink struct {
	ent.Schema
}

func (IntakeLink) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (IntakeLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("token").
			Unique().
			Immutable().
			MinLen(64).
			MaxLen(64).
			Comment("64 lowercase hex chars (32 random bytes); uniqueness enforced here, not by the generator"),

		field.Time("expires_at"),

		field.Bool("is_used").
			Default(false),

		field.Time("used_at").
			Optional().
			Nillable(),
	}
}

func (IntakeLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("intake_links").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("intake", Intake.Type).
			Unique(),
	}
}

func (IntakeLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
