// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	"github.com/intakeai/intakeai_backend/internal/repo/patient"
	"github.com/intakeai/intakeai_backend/internal/repo/predicate"
)

// IntakeLinkUpdate is the builder for updating IntakeLink entities.
type IntakeLinkUpdate struct {
	config
	hooks    []Hook
	mutation *IntakeLinkMutation
}

// Where appends a list predicates to the IntakeLinkUpdate builder.
func (_u *IntakeLinkUpdate) Where(ps ...predicate.IntakeLink) *IntakeLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *IntakeLinkUpdate) SetPatientID(v uuid.UUID) *IntakeLinkUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *IntakeLinkUpdate) SetNillablePatientID(v *uuid.UUID) *IntakeLinkUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntakeLinkUpdate) SetExpiresAt(v time.Time) *IntakeLinkUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntakeLinkUpdate) SetNillableExpiresAt(v *time.Time) *IntakeLinkUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetIsUsed sets the "is_used" field.
func (_u *IntakeLinkUpdate) SetIsUsed(v bool) *IntakeLinkUpdate {
	_u.mutation.SetIsUsed(v)
	return _u
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_u *IntakeLinkUpdate) SetNillableIsUsed(v *bool) *IntakeLinkUpdate {
	if v != nil {
		_u.SetIsUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *IntakeLinkUpdate) SetUsedAt(v time.Time) *IntakeLinkUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *IntakeLinkUpdate) SetNillableUsedAt(v *time.Time) *IntakeLinkUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *IntakeLinkUpdate) ClearUsedAt() *IntakeLinkUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *IntakeLinkUpdate) SetPatient(v *Patient) *IntakeLinkUpdate {
	return _u.SetPatientID(v.ID)
}

// SetIntakeID sets the "intake" edge to the Intake entity by ID.
func (_u *IntakeLinkUpdate) SetIntakeID(id uuid.UUID) *IntakeLinkUpdate {
	_u.mutation.SetIntakeID(id)
	return _u
}

// SetNillableIntakeID sets the "intake" edge to the Intake entity by ID if the given value is not nil.
func (_u *IntakeLinkUpdate) SetNillableIntakeID(id *uuid.UUID) *IntakeLinkUpdate {
	if id != nil {
		_u = _u.SetIntakeID(*id)
	}
	return _u
}

// SetIntake sets the "intake" edge to the Intake entity.
func (_u *IntakeLinkUpdate) SetIntake(v *Intake) *IntakeLinkUpdate {
	return _u.SetIntakeID(v.ID)
}

// Mutation returns the IntakeLinkMutation object of the builder.
func (_u *IntakeLinkUpdate) Mutation() *IntakeLinkMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *IntakeLinkUpdate) ClearPatient() *IntakeLinkUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearIntake clears the "intake" edge to the Intake entity.
func (_u *IntakeLinkUpdate) ClearIntake() *IntakeLinkUpdate {
	_u.mutation.ClearIntake()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntakeLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntakeLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeLinkUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "IntakeLink.patient"`)
	}
	return nil
}

func (_u *IntakeLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakelink.Table, intakelink.Columns, sqlgraph.NewFieldSpec(intakelink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intakelink.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsUsed(); ok {
		_spec.SetField(intakelink.FieldIsUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(intakelink.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(intakelink.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intakelink.PatientTable,
			Columns: []string{intakelink.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intakelink.PatientTable,
			Columns: []string{intakelink.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IntakeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intakelink.IntakeTable,
			Columns: []string{intakelink.IntakeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntakeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intakelink.IntakeTable,
			Columns: []string{intakelink.IntakeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntakeLinkUpdateOne is the builder for updating a single IntakeLink entity.
type IntakeLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntakeLinkMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *IntakeLinkUpdateOne) SetPatientID(v uuid.UUID) *IntakeLinkUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *IntakeLinkUpdateOne) SetNillablePatientID(v *uuid.UUID) *IntakeLinkUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntakeLinkUpdateOne) SetExpiresAt(v time.Time) *IntakeLinkUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntakeLinkUpdateOne) SetNillableExpiresAt(v *time.Time) *IntakeLinkUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetIsUsed sets the "is_used" field.
func (_u *IntakeLinkUpdateOne) SetIsUsed(v bool) *IntakeLinkUpdateOne {
	_u.mutation.SetIsUsed(v)
	return _u
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_u *IntakeLinkUpdateOne) SetNillableIsUsed(v *bool) *IntakeLinkUpdateOne {
	if v != nil {
		_u.SetIsUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *IntakeLinkUpdateOne) SetUsedAt(v time.Time) *IntakeLinkUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *IntakeLinkUpdateOne) SetNillableUsedAt(v *time.Time) *IntakeLinkUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *IntakeLinkUpdateOne) ClearUsedAt() *IntakeLinkUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *IntakeLinkUpdateOne) SetPatient(v *Patient) *IntakeLinkUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetIntakeID sets the "intake" edge to the Intake entity by ID.
func (_u *IntakeLinkUpdateOne) SetIntakeID(id uuid.UUID) *IntakeLinkUpdateOne {
	_u.mutation.SetIntakeID(id)
	return _u
}

// SetNillableIntakeID sets the "intake" edge to the Intake entity by ID if the given value is not nil.
func (_u *IntakeLinkUpdateOne) SetNillableIntakeID(id *uuid.UUID) *IntakeLinkUpdateOne {
	if id != nil {
		_u = _u.SetIntakeID(*id)
	}
	return _u
}

// SetIntake sets the "intake" edge to the Intake entity.
func (_u *IntakeLinkUpdateOne) SetIntake(v *Intake) *IntakeLinkUpdateOne {
	return _u.SetIntakeID(v.ID)
}

// Mutation returns the IntakeLinkMutation object of the builder.
func (_u *IntakeLinkUpdateOne) Mutation() *IntakeLinkMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *IntakeLinkUpdateOne) ClearPatient() *IntakeLinkUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearIntake clears the "intake" edge to the Intake entity.
func (_u *IntakeLinkUpdateOne) ClearIntake() *IntakeLinkUpdateOne {
	_u.mutation.ClearIntake()
	return _u
}

// Where appends a list predicates to the IntakeLinkUpdate builder.
func (_u *IntakeLinkUpdateOne) Where(ps ...predicate.IntakeLink) *IntakeLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntakeLinkUpdateOne) Select(field string, fields ...string) *IntakeLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntakeLink entity.
func (_u *IntakeLinkUpdateOne) Save(ctx context.Context) (*IntakeLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeLinkUpdateOne) SaveX(ctx context.Context) *IntakeLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntakeLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeLinkUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "IntakeLink.patient"`)
	}
	return nil
}

func (_u *IntakeLinkUpdateOne) sqlSave(ctx context.Context) (_node *IntakeLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakelink.Table, intakelink.Columns, sqlgraph.NewFieldSpec(intakelink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "IntakeLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intakelink.FieldID)
		for _, f := range fields {
			if !intakelink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != intakelink.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intakelink.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsUsed(); ok {
		_spec.SetField(intakelink.FieldIsUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(intakelink.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(intakelink.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intakelink.PatientTable,
			Columns: []string{intakelink.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intakelink.PatientTable,
			Columns: []string{intakelink.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IntakeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intakelink.IntakeTable,
			Columns: []string{intakelink.IntakeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntakeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intakelink.IntakeTable,
			Columns: []string{intakelink.IntakeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IntakeLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
