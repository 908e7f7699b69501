// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/clinical"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldIntakeID holds the string denoting the intake_id field in the database.
	FieldIntakeID = "intake_id"
	// FieldChiefComplaint holds the string denoting the chief_complaint field in the database.
	FieldChiefComplaint = "chief_complaint"
	// FieldMedications holds the string denoting the medications field in the database.
	FieldMedications = "medications"
	// FieldSystemsReview holds the string denoting the systems_review field in the database.
	FieldSystemsReview = "systems_review"
	// FieldRelevantHistory holds the string denoting the relevant_history field in the database.
	FieldRelevantHistory = "relevant_history"
	// FieldLifestyle holds the string denoting the lifestyle field in the database.
	FieldLifestyle = "lifestyle"
	// FieldRedFlags holds the string denoting the red_flags field in the database.
	FieldRedFlags = "red_flags"
	// FieldHasRedFlags holds the string denoting the has_red_flags field in the database.
	FieldHasRedFlags = "has_red_flags"
	// FieldRedFlagCount holds the string denoting the red_flag_count field in the database.
	FieldRedFlagCount = "red_flag_count"
	// EdgeIntake holds the string denoting the intake edge name in mutations.
	EdgeIntake = "intake"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
	// IntakeTable is the table that holds the intake relation/edge.
	IntakeTable = "summaries"
	// IntakeInverseTable is the table name for the Intake entity.
	// It exists in this package in order to avoid circular dependency with the "intake" package.
	IntakeInverseTable = "intakes"
	// IntakeColumn is the table column denoting the intake relation/edge.
	IntakeColumn = "intake_id"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldIntakeID,
	FieldChiefComplaint,
	FieldMedications,
	FieldSystemsReview,
	FieldRelevantHistory,
	FieldLifestyle,
	FieldRedFlags,
	FieldHasRedFlags,
	FieldRedFlagCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultMedications holds the default value on creation for the "medications" field.
	DefaultMedications []clinical.Medication
	// DefaultRedFlags holds the default value on creation for the "red_flags" field.
	DefaultRedFlags []clinical.RedFlag
	// DefaultHasRedFlags holds the default value on creation for the "has_red_flags" field.
	DefaultHasRedFlags bool
	// DefaultRedFlagCount holds the default value on creation for the "red_flag_count" field.
	DefaultRedFlagCount int
	// RedFlagCountValidator is a validator for the "red_flag_count" field. It is called by the builders before save.
	RedFlagCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIntakeID orders the results by the intake_id field.
func ByIntakeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntakeID, opts...).ToFunc()
}

// ByChiefComplaint orders the results by the chief_complaint field.
func ByChiefComplaint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChiefComplaint, opts...).ToFunc()
}

// ByRelevantHistory orders the results by the relevant_history field.
func ByRelevantHistory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevantHistory, opts...).ToFunc()
}

// ByLifestyle orders the results by the lifestyle field.
func ByLifestyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLifestyle, opts...).ToFunc()
}

// ByHasRedFlags orders the results by the has_red_flags field.
func ByHasRedFlags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasRedFlags, opts...).ToFunc()
}

// ByRedFlagCount orders the results by the red_flag_count field.
func ByRedFlagCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRedFlagCount, opts...).ToFunc()
}

// ByIntakeField orders the results by intake field.
func ByIntakeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIntakeStep(), sql.OrderByField(field, opts...))
	}
}
func newIntakeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IntakeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, IntakeTable, IntakeColumn),
	)
}
