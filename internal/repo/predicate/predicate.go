// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Intake is the predicate function for intake builders.
type Intake func(*sql.Selector)

// IntakeLink is the predicate function for intakelink builders.
type IntakeLink func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// RefreshToken is the predicate function for refreshtoken builders.
type RefreshToken func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
