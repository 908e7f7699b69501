// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/clinical"
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// Summary is the model entity for the Summary schema.
type Summary struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → intakes.id; unique makes the relation 1:0..1
	IntakeID uuid.UUID `json:"intake_id,omitempty"`
	// ChiefComplaint holds the value of the "chief_complaint" field.
	ChiefComplaint string `json:"chief_complaint,omitempty"`
	// Medications holds the value of the "medications" field.
	Medications []clinical.Medication `json:"medications,omitempty"`
	// All ten body-system categories are always present
	SystemsReview map[string]string `json:"systems_review,omitempty"`
	// RelevantHistory holds the value of the "relevant_history" field.
	RelevantHistory string `json:"relevant_history,omitempty"`
	// Lifestyle holds the value of the "lifestyle" field.
	Lifestyle string `json:"lifestyle,omitempty"`
	// RedFlags holds the value of the "red_flags" field.
	RedFlags []clinical.RedFlag `json:"red_flags,omitempty"`
	// Derived from red_flags length, never taken from the generator
	HasRedFlags bool `json:"has_red_flags,omitempty"`
	// RedFlagCount holds the value of the "red_flag_count" field.
	RedFlagCount int `json:"red_flag_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SummaryQuery when eager-loading is set.
	Edges        SummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SummaryEdges holds the relations/edges for other nodes in the graph.
type SummaryEdges struct {
	// Intake holds the value of the intake edge.
	Intake *Intake `json:"intake,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntakeOrErr returns the Intake value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SummaryEdges) IntakeOrErr() (*Intake, error) {
	if e.Intake != nil {
		return e.Intake, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: intake.Label}
	}
	return nil, &NotLoadedError{edge: "intake"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Summary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summary.FieldMedications, summary.FieldSystemsReview, summary.FieldRedFlags:
			values[i] = new([]byte)
		case summary.FieldHasRedFlags:
			values[i] = new(sql.NullBool)
		case summary.FieldRedFlagCount:
			values[i] = new(sql.NullInt64)
		case summary.FieldChiefComplaint, summary.FieldRelevantHistory, summary.FieldLifestyle:
			values[i] = new(sql.NullString)
		case summary.FieldCreatedAt, summary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case summary.FieldID, summary.FieldIntakeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Summary fields.
func (_m *Summary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summary.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case summary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case summary.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case summary.FieldIntakeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field intake_id", values[i])
			} else if value != nil {
				_m.IntakeID = *value
			}
		case summary.FieldChiefComplaint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chief_complaint", values[i])
			} else if value.Valid {
				_m.ChiefComplaint = value.String
			}
		case summary.FieldMedications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Medications); err != nil {
					return fmt.Errorf("unmarshal field medications: %w", err)
				}
			}
		case summary.FieldSystemsReview:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field systems_review", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SystemsReview); err != nil {
					return fmt.Errorf("unmarshal field systems_review: %w", err)
				}
			}
		case summary.FieldRelevantHistory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relevant_history", values[i])
			} else if value.Valid {
				_m.RelevantHistory = value.String
			}
		case summary.FieldLifestyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lifestyle", values[i])
			} else if value.Valid {
				_m.Lifestyle = value.String
			}
		case summary.FieldRedFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field red_flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RedFlags); err != nil {
					return fmt.Errorf("unmarshal field red_flags: %w", err)
				}
			}
		case summary.FieldHasRedFlags:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_red_flags", values[i])
			} else if value.Valid {
				_m.HasRedFlags = value.Bool
			}
		case summary.FieldRedFlagCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field red_flag_count", values[i])
			} else if value.Valid {
				_m.RedFlagCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Summary.
// This includes values selected through modifiers, order, etc.
func (_m *Summary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntake queries the "intake" edge of the Summary entity.
func (_m *Summary) QueryIntake() *IntakeQuery {
	return NewSummaryClient(_m.config).QueryIntake(_m)
}

// Update returns a builder for updating this Summary.
// Note that you need to call Summary.Unwrap() before calling this method if this Summary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Summary) Update() *SummaryUpdateOne {
	return NewSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Summary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Summary) Unwrap() *Summary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Summary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Summary) String() string {
	var builder strings.Builder
	builder.WriteString("Summary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("intake_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntakeID))
	builder.WriteString(", ")
	builder.WriteString("chief_complaint=")
	builder.WriteString(_m.ChiefComplaint)
	builder.WriteString(", ")
	builder.WriteString("medications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Medications))
	builder.WriteString(", ")
	builder.WriteString("systems_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.SystemsReview))
	builder.WriteString(", ")
	builder.WriteString("relevant_history=")
	builder.WriteString(_m.RelevantHistory)
	builder.WriteString(", ")
	builder.WriteString("lifestyle=")
	builder.WriteString(_m.Lifestyle)
	builder.WriteString(", ")
	builder.WriteString("red_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.RedFlags))
	builder.WriteString(", ")
	builder.WriteString("has_red_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasRedFlags))
	builder.WriteString(", ")
	builder.WriteString("red_flag_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RedFlagCount))
	builder.WriteByte(')')
	return builder.String()
}

// Summaries is a parsable slice of Summary.
type Summaries []*Summary
