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
	"github.com/intakeai/intakeai_backend/internal/repo/patient"
	"github.com/intakeai/intakeai_backend/internal/repo/predicate"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// IntakeUpdate is the builder for updating Intake entities.
type IntakeUpdate struct {
	config
	hooks    []Hook
	mutation *IntakeMutation
}

// Where appends a list predicates to the IntakeUpdate builder.
func (_u *IntakeUpdate) Where(ps ...predicate.Intake) *IntakeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntakeUpdate) SetUpdatedAt(v time.Time) *IntakeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *IntakeUpdate) SetPatientID(v uuid.UUID) *IntakeUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *IntakeUpdate) SetNillablePatientID(v *uuid.UUID) *IntakeUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntakeUpdate) SetStatus(v intake.Status) *IntakeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntakeUpdate) SetNillableStatus(v *intake.Status) *IntakeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *IntakeUpdate) SetPatient(v *Patient) *IntakeUpdate {
	return _u.SetPatientID(v.ID)
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_u *IntakeUpdate) SetSummaryID(id uuid.UUID) *IntakeUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_u *IntakeUpdate) SetNillableSummaryID(id *uuid.UUID) *IntakeUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_u *IntakeUpdate) SetSummary(v *Summary) *IntakeUpdate {
	return _u.SetSummaryID(v.ID)
}

// Mutation returns the IntakeMutation object of the builder.
func (_u *IntakeUpdate) Mutation() *IntakeMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *IntakeUpdate) ClearPatient() *IntakeUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (_u *IntakeUpdate) ClearSummary() *IntakeUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntakeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntakeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntakeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intake.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intake.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Intake.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Intake.patient"`)
	}
	if _u.mutation.IntakeLinkCleared() && len(_u.mutation.IntakeLinkIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Intake.intake_link"`)
	}
	return nil
}

func (_u *IntakeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intake.Table, intake.Columns, sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intake.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intake.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intake.PatientTable,
			Columns: []string{intake.PatientColumn},
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
			Table:   intake.PatientTable,
			Columns: []string{intake.PatientColumn},
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
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intake.SummaryTable,
			Columns: []string{intake.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intake.SummaryTable,
			Columns: []string{intake.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntakeUpdateOne is the builder for updating a single Intake entity.
type IntakeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntakeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntakeUpdateOne) SetUpdatedAt(v time.Time) *IntakeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *IntakeUpdateOne) SetPatientID(v uuid.UUID) *IntakeUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *IntakeUpdateOne) SetNillablePatientID(v *uuid.UUID) *IntakeUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntakeUpdateOne) SetStatus(v intake.Status) *IntakeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntakeUpdateOne) SetNillableStatus(v *intake.Status) *IntakeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *IntakeUpdateOne) SetPatient(v *Patient) *IntakeUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_u *IntakeUpdateOne) SetSummaryID(id uuid.UUID) *IntakeUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_u *IntakeUpdateOne) SetNillableSummaryID(id *uuid.UUID) *IntakeUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_u *IntakeUpdateOne) SetSummary(v *Summary) *IntakeUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// Mutation returns the IntakeMutation object of the builder.
func (_u *IntakeUpdateOne) Mutation() *IntakeMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *IntakeUpdateOne) ClearPatient() *IntakeUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (_u *IntakeUpdateOne) ClearSummary() *IntakeUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Where appends a list predicates to the IntakeUpdate builder.
func (_u *IntakeUpdateOne) Where(ps ...predicate.Intake) *IntakeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntakeUpdateOne) Select(field string, fields ...string) *IntakeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Intake entity.
func (_u *IntakeUpdateOne) Save(ctx context.Context) (*Intake, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeUpdateOne) SaveX(ctx context.Context) *Intake {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntakeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntakeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intake.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intake.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Intake.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Intake.patient"`)
	}
	if _u.mutation.IntakeLinkCleared() && len(_u.mutation.IntakeLinkIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Intake.intake_link"`)
	}
	return nil
}

func (_u *IntakeUpdateOne) sqlSave(ctx context.Context) (_node *Intake, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intake.Table, intake.Columns, sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Intake.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intake.FieldID)
		for _, f := range fields {
			if !intake.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != intake.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intake.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intake.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intake.PatientTable,
			Columns: []string{intake.PatientColumn},
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
			Table:   intake.PatientTable,
			Columns: []string{intake.PatientColumn},
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
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intake.SummaryTable,
			Columns: []string{intake.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intake.SummaryTable,
			Columns: []string{intake.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Intake{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
