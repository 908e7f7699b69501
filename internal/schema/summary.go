package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/intakeai/intakeai_backend/internal/clinical"
)

// Summary is the AI-derived digest of one Intake. At most one exists per
// intake; regeneration deletes the old row and writes a new one.
type Summary struct {
	ent.Schema
}

func (Summary) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("intake_id", uuid.UUID{}).
			Unique().
			Immutable().
			Comment("FK → intakes.id; unique makes the relation 1:0..1"),

		field.Text("chief_complaint"),

		field.JSON("medications", []clinical.Medication{}).
			Default([]clinical.Medication{}),

		field.JSON("systems_review", map[string]string{}).
			Comment("All ten body-system categories are always present"),

		field.Text("relevant_history"),

		field.Text("lifestyle"),

		field.JSON("red_flags", []clinical.RedFlag{}).
			Default([]clinical.RedFlag{}),

		field.Bool("has_red_flags").
			Default(false).
			Comment("Derived from red_flags length, never taken from the generator"),

		field.Int("red_flag_count").
			Default(0).
			NonNegative(),
	}
}

func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intake", Intake.Type).
			Ref("summary").
			Unique().
			Required().
			Immutable().
			Field("intake_id"),
	}
}
