// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntakeID applies equality check predicate on the "intake_id" field. It's identical to IntakeIDEQ.
func IntakeID(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldIntakeID, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldChiefComplaint, v))
}

// RelevantHistory applies equality check predicate on the "relevant_history" field. It's identical to RelevantHistoryEQ.
func RelevantHistory(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRelevantHistory, v))
}

// Lifestyle applies equality check predicate on the "lifestyle" field. It's identical to LifestyleEQ.
func Lifestyle(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldLifestyle, v))
}

// HasRedFlags applies equality check predicate on the "has_red_flags" field. It's identical to HasRedFlagsEQ.
func HasRedFlags(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldHasRedFlags, v))
}

// RedFlagCount applies equality check predicate on the "red_flag_count" field. It's identical to RedFlagCountEQ.
func RedFlagCount(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRedFlagCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldUpdatedAt, v))
}

// IntakeIDEQ applies the EQ predicate on the "intake_id" field.
func IntakeIDEQ(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldIntakeID, v))
}

// IntakeIDNEQ applies the NEQ predicate on the "intake_id" field.
func IntakeIDNEQ(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldIntakeID, v))
}

// IntakeIDIn applies the In predicate on the "intake_id" field.
func IntakeIDIn(vs ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldIntakeID, vs...))
}

// IntakeIDNotIn applies the NotIn predicate on the "intake_id" field.
func IntakeIDNotIn(vs ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldIntakeID, vs...))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// RelevantHistoryEQ applies the EQ predicate on the "relevant_history" field.
func RelevantHistoryEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRelevantHistory, v))
}

// RelevantHistoryNEQ applies the NEQ predicate on the "relevant_history" field.
func RelevantHistoryNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldRelevantHistory, v))
}

// RelevantHistoryIn applies the In predicate on the "relevant_history" field.
func RelevantHistoryIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldRelevantHistory, vs...))
}

// RelevantHistoryNotIn applies the NotIn predicate on the "relevant_history" field.
func RelevantHistoryNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldRelevantHistory, vs...))
}

// RelevantHistoryGT applies the GT predicate on the "relevant_history" field.
func RelevantHistoryGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldRelevantHistory, v))
}

// RelevantHistoryGTE applies the GTE predicate on the "relevant_history" field.
func RelevantHistoryGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldRelevantHistory, v))
}

// RelevantHistoryLT applies the LT predicate on the "relevant_history" field.
func RelevantHistoryLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldRelevantHistory, v))
}

// RelevantHistoryLTE applies the LTE predicate on the "relevant_history" field.
func RelevantHistoryLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldRelevantHistory, v))
}

// RelevantHistoryContains applies the Contains predicate on the "relevant_history" field.
func RelevantHistoryContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldRelevantHistory, v))
}

// RelevantHistoryHasPrefix applies the HasPrefix predicate on the "relevant_history" field.
func RelevantHistoryHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldRelevantHistory, v))
}

// RelevantHistoryHasSuffix applies the HasSuffix predicate on the "relevant_history" field.
func RelevantHistoryHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldRelevantHistory, v))
}

// RelevantHistoryEqualFold applies the EqualFold predicate on the "relevant_history" field.
func RelevantHistoryEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldRelevantHistory, v))
}

// RelevantHistoryContainsFold applies the ContainsFold predicate on the "relevant_history" field.
func RelevantHistoryContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldRelevantHistory, v))
}

// LifestyleEQ applies the EQ predicate on the "lifestyle" field.
func LifestyleEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldLifestyle, v))
}

// LifestyleNEQ applies the NEQ predicate on the "lifestyle" field.
func LifestyleNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldLifestyle, v))
}

// LifestyleIn applies the In predicate on the "lifestyle" field.
func LifestyleIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldLifestyle, vs...))
}

// LifestyleNotIn applies the NotIn predicate on the "lifestyle" field.
func LifestyleNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldLifestyle, vs...))
}

// LifestyleGT applies the GT predicate on the "lifestyle" field.
func LifestyleGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldLifestyle, v))
}

// LifestyleGTE applies the GTE predicate on the "lifestyle" field.
func LifestyleGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldLifestyle, v))
}

// LifestyleLT applies the LT predicate on the "lifestyle" field.
func LifestyleLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldLifestyle, v))
}

// LifestyleLTE applies the LTE predicate on the "lifestyle" field.
func LifestyleLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldLifestyle, v))
}

// LifestyleContains applies the Contains predicate on the "lifestyle" field.
func LifestyleContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldLifestyle, v))
}

// LifestyleHasPrefix applies the HasPrefix predicate on the "lifestyle" field.
func LifestyleHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldLifestyle, v))
}

// LifestyleHasSuffix applies the HasSuffix predicate on the "lifestyle" field.
func LifestyleHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldLifestyle, v))
}

// LifestyleEqualFold applies the EqualFold predicate on the "lifestyle" field.
func LifestyleEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldLifestyle, v))
}

// LifestyleContainsFold applies the ContainsFold predicate on the "lifestyle" field.
func LifestyleContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldLifestyle, v))
}

// HasRedFlagsEQ applies the EQ predicate on the "has_red_flags" field.
func HasRedFlagsEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldHasRedFlags, v))
}

// HasRedFlagsNEQ applies the NEQ predicate on the "has_red_flags" field.
func HasRedFlagsNEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldHasRedFlags, v))
}

// RedFlagCountEQ applies the EQ predicate on the "red_flag_count" field.
func RedFlagCountEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRedFlagCount, v))
}

// RedFlagCountNEQ applies the NEQ predicate on the "red_flag_count" field.
func RedFlagCountNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldRedFlagCount, v))
}

// RedFlagCountIn applies the In predicate on the "red_flag_count" field.
func RedFlagCountIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldRedFlagCount, vs...))
}

// RedFlagCountNotIn applies the NotIn predicate on the "red_flag_count" field.
func RedFlagCountNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldRedFlagCount, vs...))
}

// RedFlagCountGT applies the GT predicate on the "red_flag_count" field.
func RedFlagCountGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldRedFlagCount, v))
}

// RedFlagCountGTE applies the GTE predicate on the "red_flag_count" field.
func RedFlagCountGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldRedFlagCount, v))
}

// RedFlagCountLT applies the LT predicate on the "red_flag_count" field.
func RedFlagCountLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldRedFlagCount, v))
}

// RedFlagCountLTE applies the LTE predicate on the "red_flag_count" field.
func RedFlagCountLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldRedFlagCount, v))
}

// HasIntake applies the HasEdge predicate on the "intake" edge.
func HasIntake() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, IntakeTable, IntakeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntakeWith applies the HasEdge predicate on the "intake" edge with a given conditions (other predicates).
func HasIntakeWith(preds ...predicate.Intake) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newIntakeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
