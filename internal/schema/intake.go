package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Intake is one completed form submission. Responses are immutable after
// creation; only the status may change (COMPLETED → FLAGGED when a generated
// summary finds red flags).
type Intake struct {
	ent.Schema
}

func (Intake) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Intake) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("intake_link_id", uuid.UUID{}).
			Unique().
			Immutable().
			Comment("FK → intake_links.id; unique makes the link/intake relation 1:1"),

		field.Enum("status").
			Values("COMPLETED", "FLAGGED").
			Default("COMPLETED"),

		field.JSON("responses", map[string]string{}).
			Immutable().
			Comment("question id → answer text, as submitted"),

		field.Int("schema_version").
			Immutable().
			Comment("Version of the question set the responses were collected with"),

		field.Time("completed_at").
			Immutable(),
	}
}

func (Intake) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("intakes").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("intake_link", IntakeLink.Type).
			Ref("intake").
			Unique().
			Required().
			Immutable().
			Field("intake_link_id"),
		edge.To("summary", Summary.Type).
			Unique(),
	}
}

func (Intake) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("patient_id", "status"),
	}
}
