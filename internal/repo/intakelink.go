// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	"github.com/intakeai/intakeai_backend/internal/repo/patient"
)

// IntakeLink is the model entity for the IntakeLink schema.
type IntakeLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// 64 lowercase hex chars (32 random bytes); uniqueness enforced here, not by the generator
	Token string `json:"token,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// IsUsed holds the value of the "is_used" field.
	IsUsed bool `json:"is_used,omitempty"`
	// UsedAt holds the value of the "used_at" field.
	UsedAt *time.Time `json:"used_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntakeLinkQuery when eager-loading is set.
	Edges        IntakeLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntakeLinkEdges holds the relations/edges for other nodes in the graph.
type IntakeLinkEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Intake holds the value of the intake edge.
	Intake *Intake `json:"intake,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeLinkEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// IntakeOrErr returns the Intake value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeLinkEdges) IntakeOrErr() (*Intake, error) {
	if e.Intake != nil {
		return e.Intake, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: intake.Label}
	}
	return nil, &NotLoadedError{edge: "intake"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntakeLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intakelink.FieldIsUsed:
			values[i] = new(sql.NullBool)
		case intakelink.FieldToken:
			values[i] = new(sql.NullString)
		case intakelink.FieldCreatedAt, intakelink.FieldExpiresAt, intakelink.FieldUsedAt:
			values[i] = new(sql.NullTime)
		case intakelink.FieldID, intakelink.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntakeLink fields.
func (_m *IntakeLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intakelink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case intakelink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case intakelink.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case intakelink.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case intakelink.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case intakelink.FieldIsUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_used", values[i])
			} else if value.Valid {
				_m.IsUsed = value.Bool
			}
		case intakelink.FieldUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field used_at", values[i])
			} else if value.Valid {
				_m.UsedAt = new(time.Time)
				*_m.UsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntakeLink.
// This includes values selected through modifiers, order, etc.
func (_m *IntakeLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the IntakeLink entity.
func (_m *IntakeLink) QueryPatient() *PatientQuery {
	return NewIntakeLinkClient(_m.config).QueryPatient(_m)
}

// QueryIntake queries the "intake" edge of the IntakeLink entity.
func (_m *IntakeLink) QueryIntake() *IntakeQuery {
	return NewIntakeLinkClient(_m.config).QueryIntake(_m)
}

// Update returns a builder for updating this IntakeLink.
// Note that you need to call IntakeLink.Unwrap() before calling this method if this IntakeLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntakeLink) Update() *IntakeLinkUpdateOne {
	return NewIntakeLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntakeLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntakeLink) Unwrap() *IntakeLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: IntakeLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntakeLink) String() string {
	var builder strings.Builder
	builder.WriteString("IntakeLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("token=")
	builder.WriteString(_m.Token)
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsUsed))
	builder.WriteString(", ")
	if v := _m.UsedAt; v != nil {
		builder.WriteString("used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// IntakeLinks is a parsable slice of IntakeLink.
type IntakeLinks []*IntakeLink
