package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a scheduled visit for a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("scheduled_at"),

		field.Int("duration_minutes").
			Default(30).
			Positive(),

		field.String("reason").
			Optional().
			Nillable().
			MaxLen(500),

		field.Enum("status").
			Values("SCHEDULED", "COMPLETED", "CANCELLED").
			Default("SCHEDULED"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("patient_id", "scheduled_at"),
	}
}
