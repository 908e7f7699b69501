// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/intakelink"
	"github.com/intakeai/intakeai_backend/internal/repo/patient"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// IntakeCreate is the builder for creating a Intake entity.
type IntakeCreate struct {
	config
	mutation *IntakeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntakeCreate) SetCreatedAt(v time.Time) *IntakeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntakeCreate) SetNillableCreatedAt(v *time.Time) *IntakeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntakeCreate) SetUpdatedAt(v time.Time) *IntakeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntakeCreate) SetNillableUpdatedAt(v *time.Time) *IntakeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *IntakeCreate) SetPatientID(v uuid.UUID) *IntakeCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetIntakeLinkID sets the "intake_link_id" field.
func (_c *IntakeCreate) SetIntakeLinkID(v uuid.UUID) *IntakeCreate {
	_c.mutation.SetIntakeLinkID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntakeCreate) SetStatus(v intake.Status) *IntakeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IntakeCreate) SetNillableStatus(v *intake.Status) *IntakeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResponses sets the "responses" field.
func (_c *IntakeCreate) SetResponses(v map[string]string) *IntakeCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *IntakeCreate) SetSchemaVersion(v int) *IntakeCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *IntakeCreate) SetCompletedAt(v time.Time) *IntakeCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IntakeCreate) SetID(v uuid.UUID) *IntakeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IntakeCreate) SetNillableID(v *uuid.UUID) *IntakeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *IntakeCreate) SetPatient(v *Patient) *IntakeCreate {
	return _c.SetPatientID(v.ID)
}

// SetIntakeLink sets the "intake_link" edge to the IntakeLink entity.
func (_c *IntakeCreate) SetIntakeLink(v *IntakeLink) *IntakeCreate {
	return _c.SetIntakeLinkID(v.ID)
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_c *IntakeCreate) SetSummaryID(id uuid.UUID) *IntakeCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_c *IntakeCreate) SetNillableSummaryID(id *uuid.UUID) *IntakeCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_c *IntakeCreate) SetSummary(v *Summary) *IntakeCreate {
	return _c.SetSummaryID(v.ID)
}

// Mutation returns the IntakeMutation object of the builder.
func (_c *IntakeCreate) Mutation() *IntakeMutation {
	return _c.mutation
}

// Save creates the Intake in the database.
func (_c *IntakeCreate) Save(ctx context.Context) (*Intake, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntakeCreate) SaveX(ctx context.Context) *Intake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntakeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intake.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := intake.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := intake.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := intake.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntakeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Intake.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Intake.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Intake.patient_id"`)}
	}
	if _, ok := _c.mutation.IntakeLinkID(); !ok {
		return &ValidationError{Name: "intake_link_id", err: errors.New(`repo: missing required field "Intake.intake_link_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Intake.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := intake.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Intake.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Responses(); !ok {
		return &ValidationError{Name: "responses", err: errors.New(`repo: missing required field "Intake.responses"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`repo: missing required field "Intake.schema_version"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`repo: missing required field "Intake.completed_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Intake.patient"`)}
	}
	if len(_c.mutation.IntakeLinkIDs()) == 0 {
		return &ValidationError{Name: "intake_link", err: errors.New(`repo: missing required edge "Intake.intake_link"`)}
	}
	return nil
}

func (_c *IntakeCreate) sqlSave(ctx context.Context) (*Intake, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntakeCreate) createSpec() (*Intake, *sqlgraph.CreateSpec) {
	var (
		_node = &Intake{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intake.Table, sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intake.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(intake.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(intake.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(intake.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(intake.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(intake.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IntakeLinkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   intake.IntakeLinkTable,
			Columns: []string{intake.IntakeLinkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intakelink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IntakeLinkID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IntakeCreateBulk is the builder for creating many Intake entities in bulk.
type IntakeCreateBulk struct {
	config
	err      error
	builders []*IntakeCreate
}

// Save creates the Intake entities in the database.
func (_c *IntakeCreateBulk) Save(ctx context.Context) ([]*Intake, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Intake, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntakeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IntakeCreateBulk) SaveX(ctx context.Context) []*Intake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
