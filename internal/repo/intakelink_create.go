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
)

// IntakeLinkCreate is the builder for creating a IntakeLink entity.
type IntakeLinkCreate struct {
	config
	mutation *IntakeLinkMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntakeLinkCreate) SetCreatedAt(v time.Time) *IntakeLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntakeLinkCreate) SetNillableCreatedAt(v *time.Time) *IntakeLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *IntakeLinkCreate) SetPatientID(v uuid.UUID) *IntakeLinkCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *IntakeLinkCreate) SetToken(v string) *IntakeLinkCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *IntakeLinkCreate) SetExpiresAt(v time.Time) *IntakeLinkCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetIsUsed sets the "is_used" field.
func (_c *IntakeLinkCreate) SetIsUsed(v bool) *IntakeLinkCreate {
	_c.mutation.SetIsUsed(v)
	return _c
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_c *IntakeLinkCreate) SetNillableIsUsed(v *bool) *IntakeLinkCreate {
	if v != nil {
		_c.SetIsUsed(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *IntakeLinkCreate) SetUsedAt(v time.Time) *IntakeLinkCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *IntakeLinkCreate) SetNillableUsedAt(v *time.Time) *IntakeLinkCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntakeLinkCreate) SetID(v uuid.UUID) *IntakeLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IntakeLinkCreate) SetNillableID(v *uuid.UUID) *IntakeLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *IntakeLinkCreate) SetPatient(v *Patient) *IntakeLinkCreate {
	return _c.SetPatientID(v.ID)
}

// SetIntakeID sets the "intake" edge to the Intake entity by ID.
func (_c *IntakeLinkCreate) SetIntakeID(id uuid.UUID) *IntakeLinkCreate {
	_c.mutation.SetIntakeID(id)
	return _c
}

// SetNillableIntakeID sets the "intake" edge to the Intake entity by ID if the given value is not nil.
func (_c *IntakeLinkCreate) SetNillableIntakeID(id *uuid.UUID) *IntakeLinkCreate {
	if id != nil {
		_c = _c.SetIntakeID(*id)
	}
	return _c
}

// SetIntake sets the "intake" edge to the Intake entity.
func (_c *IntakeLinkCreate) SetIntake(v *Intake) *IntakeLinkCreate {
	return _c.SetIntakeID(v.ID)
}

// Mutation returns the IntakeLinkMutation object of the builder.
func (_c *IntakeLinkCreate) Mutation() *IntakeLinkMutation {
	return _c.mutation
}

// Save creates the IntakeLink in the database.
func (_c *IntakeLinkCreate) Save(ctx context.Context) (*IntakeLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntakeLinkCreate) SaveX(ctx context.Context) *IntakeLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntakeLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intakelink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsUsed(); !ok {
		v := intakelink.DefaultIsUsed
		_c.mutation.SetIsUsed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := intakelink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntakeLinkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "IntakeLink.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "IntakeLink.patient_id"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`repo: missing required field "IntakeLink.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := intakelink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`repo: validator failed for field "IntakeLink.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`repo: missing required field "IntakeLink.expires_at"`)}
	}
	if _, ok := _c.mutation.IsUsed(); !ok {
		return &ValidationError{Name: "is_used", err: errors.New(`repo: missing required field "IntakeLink.is_used"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "IntakeLink.patient"`)}
	}
	return nil
}

func (_c *IntakeLinkCreate) sqlSave(ctx context.Context) (*IntakeLink, error) {
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

func (_c *IntakeLinkCreate) createSpec() (*IntakeLink, *sqlgraph.CreateSpec) {
	var (
		_node = &IntakeLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intakelink.Table, sqlgraph.NewFieldSpec(intakelink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intakelink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(intakelink.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(intakelink.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.IsUsed(); ok {
		_spec.SetField(intakelink.FieldIsUsed, field.TypeBool, value)
		_node.IsUsed = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(intakelink.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IntakeIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IntakeLinkCreateBulk is the builder for creating many IntakeLink entities in bulk.
type IntakeLinkCreateBulk struct {
	config
	err      error
	builders []*IntakeLinkCreate
}

// Save creates the IntakeLink entities in the database.
func (_c *IntakeLinkCreateBulk) Save(ctx context.Context) ([]*IntakeLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntakeLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntakeLinkMutation)
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
func (_c *IntakeLinkCreateBulk) SaveX(ctx context.Context) []*IntakeLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
