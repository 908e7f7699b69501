// Code generated by ent, DO NOT EDIT.

package intake

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the intake type in the database.
	Label = "intake"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldIntakeLinkID holds the string denoting the intake_link_id field in the database.
	FieldIntakeLinkID = "intake_link_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResponses holds the string denoting the responses field in the database.
	FieldResponses = "responses"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeIntakeLink holds the string denoting the intake_link edge name in mutations.
	EdgeIntakeLink = "intake_link"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// Table holds the table name of the intake in the database.
	Table = "intakes"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "intakes"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// IntakeLinkTable is the table that holds the intake_link relation/edge.
	IntakeLinkTable = "intakes"
	// IntakeLinkInverseTable is the table name for the IntakeLink entity.
	// It exists in this package in order to avoid circular dependency with the "intakelink" package.
	IntakeLinkInverseTable = "intake_links"
	// IntakeLinkColumn is the table column denoting the intake_link relation/edge.
	IntakeLinkColumn = "intake_link_id"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "summaries"
	// SummaryInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummaryInverseTable = "summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "intake_id"
)

// Columns holds all SQL columns for intake fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldIntakeLinkID,
	FieldStatus,
	FieldResponses,
	FieldSchemaVersion,
	FieldCompletedAt,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCOMPLETED is the default value of the Status enum.
const DefaultStatus = StatusCOMPLETED

// Status values.
const (
	StatusCOMPLETED Status = "COMPLETED"
	StatusFLAGGED   Status = "FLAGGED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCOMPLETED, StatusFLAGGED:
		return nil
	default:
		return fmt.Errorf("intake: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Intake queries.
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

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByIntakeLinkID orders the results by the intake_link_id field.
func ByIntakeLinkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntakeLinkID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByIntakeLinkField orders the results by intake_link field.
func ByIntakeLinkField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIntakeLinkStep(), sql.OrderByField(field, opts...))
	}
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newIntakeLinkStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IntakeLinkInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, IntakeLinkTable, IntakeLinkColumn),
	)
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
	)
}
