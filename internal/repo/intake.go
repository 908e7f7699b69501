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
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	"github.com/intakeai/intakeai_backend/internal/repo/patient"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// Intake is the model entity for the Intake schema.
type Intake struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → intake_links.id; unique makes the link/intake relation 1:1
	IntakeLinkID uuid.UUID `json:"intake_link_id,omitempty"`
	// Status holds the value of the "status" field.
	Status intake.Status `json:"status,omitempty"`
	// question id → answer text, as submitted
	Responses map[string]string `json:"responses,omitempty"`
	// Version of the question set the responses were collected with
	SchemaVersion int `json:"schema_version,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntakeQuery when eager-loading is set.
	Edges        IntakeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntakeEdges holds the relations/edges for other nodes in the graph.
type IntakeEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// IntakeLink holds the value of the intake_link edge.
	IntakeLink *IntakeLink `json:"intake_link,omitempty"`
	// Summary holds the value of the summary edge.
	Summary *Summary `json:"summary,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// IntakeLinkOrErr returns the IntakeLink value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeEdges) IntakeLinkOrErr() (*IntakeLink, error) {
	if e.IntakeLink != nil {
		return e.IntakeLink, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: intakelink.Label}
	}
	return nil, &NotLoadedError{edge: "intake_link"}
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeEdges) SummaryOrErr() (*Summary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: summary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Intake) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intake.FieldResponses:
			values[i] = new([]byte)
		case intake.FieldSchemaVersion:
			values[i] = new(sql.NullInt64)
		case intake.FieldStatus:
			values[i] = new(sql.NullString)
		case intake.FieldCreatedAt, intake.FieldUpdatedAt, intake.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case intake.FieldID, intake.FieldPatientID, intake.FieldIntakeLinkID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Intake fields.
func (_m *Intake) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intake.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case intake.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case intake.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case intake.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case intake.FieldIntakeLinkID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field intake_link_id", values[i])
			} else if value != nil {
				_m.IntakeLinkID = *value
			}
		case intake.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = intake.Status(value.String)
			}
		case intake.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case intake.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case intake.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Intake.
// This includes values selected through modifiers, order, etc.
func (_m *Intake) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Intake entity.
func (_m *Intake) QueryPatient() *PatientQuery {
	return NewIntakeClient(_m.config).QueryPatient(_m)
}

// QueryIntakeLink queries the "intake_link" edge of the Intake entity.
func (_m *Intake) QueryIntakeLink() *IntakeLinkQuery {
	return NewIntakeClient(_m.config).QueryIntakeLink(_m)
}

// QuerySummary queries the "summary" edge of the Intake entity.
func (_m *Intake) QuerySummary() *SummaryQuery {
	return NewIntakeClient(_m.config).QuerySummary(_m)
}

// Update returns a builder for updating this Intake.
// Note that you need to call Intake.Unwrap() before calling this method if this Intake
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Intake) Update() *IntakeUpdateOne {
	return NewIntakeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Intake entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Intake) Unwrap() *Intake {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Intake is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Intake) String() string {
	var builder strings.Builder
	builder.WriteString("Intake(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("intake_link_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntakeLinkID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Intakes is a parsable slice of Intake.
type Intakes []*Intake
