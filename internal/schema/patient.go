package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a clinic patient record, owned by exactly one doctor.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (owning doctor)"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 formatted"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("patients").
			Unique().
			Required().
			Field("user_id"),
		edge.To("intake_links", IntakeLink.Type),
		edge.To("intakes", Intake.Type),
		edge.To("appointments", Appointment.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
