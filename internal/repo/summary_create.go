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
	"github.com/intakeai/intakeai_backend/internal/clinical"
	"github.com/intakeai/intakeai_backend/internal/repo/intake"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SummaryCreate) SetUpdatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableUpdatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIntakeID sets the "intake_id" field.
func (_c *SummaryCreate) SetIntakeID(v uuid.UUID) *SummaryCreate {
	_c.mutation.SetIntakeID(v)
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *SummaryCreate) SetChiefComplaint(v string) *SummaryCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetMedications sets the "medications" field.
func (_c *SummaryCreate) SetMedications(v []clinical.Medication) *SummaryCreate {
	_c.mutation.SetMedications(v)
	return _c
}

// SetSystemsReview sets the "systems_review" field.
func (_c *SummaryCreate) SetSystemsReview(v map[string]string) *SummaryCreate {
	_c.mutation.SetSystemsReview(v)
	return _c
}

// SetRelevantHistory sets the "relevant_history" field.
func (_c *SummaryCreate) SetRelevantHistory(v string) *SummaryCreate {
	_c.mutation.SetRelevantHistory(v)
	return _c
}

// SetLifestyle sets the "lifestyle" field.
func (_c *SummaryCreate) SetLifestyle(v string) *SummaryCreate {
	_c.mutation.SetLifestyle(v)
	return _c
}

// SetRedFlags sets the "red_flags" field.
func (_c *SummaryCreate) SetRedFlags(v []clinical.RedFlag) *SummaryCreate {
	_c.mutation.SetRedFlags(v)
	return _c
}

// SetHasRedFlags sets the "has_red_flags" field.
func (_c *SummaryCreate) SetHasRedFlags(v bool) *SummaryCreate {
	_c.mutation.SetHasRedFlags(v)
	return _c
}

// SetNillableHasRedFlags sets the "has_red_flags" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableHasRedFlags(v *bool) *SummaryCreate {
	if v != nil {
		_c.SetHasRedFlags(*v)
	}
	return _c
}

// SetRedFlagCount sets the "red_flag_count" field.
func (_c *SummaryCreate) SetRedFlagCount(v int) *SummaryCreate {
	_c.mutation.SetRedFlagCount(v)
	return _c
}

// SetNillableRedFlagCount sets the "red_flag_count" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableRedFlagCount(v *int) *SummaryCreate {
	if v != nil {
		_c.SetRedFlagCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCreate) SetID(v uuid.UUID) *SummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableID(v *uuid.UUID) *SummaryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetIntake sets the "intake" edge to the Intake entity.
func (_c *SummaryCreate) SetIntake(v *Intake) *SummaryCreate {
	return _c.SetIntakeID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := summary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Medications(); !ok {
		v := summary.DefaultMedications
		_c.mutation.SetMedications(v)
	}
	if _, ok := _c.mutation.RedFlags(); !ok {
		v := summary.DefaultRedFlags
		_c.mutation.SetRedFlags(v)
	}
	if _, ok := _c.mutation.HasRedFlags(); !ok {
		v := summary.DefaultHasRedFlags
		_c.mutation.SetHasRedFlags(v)
	}
	if _, ok := _c.mutation.RedFlagCount(); !ok {
		v := summary.DefaultRedFlagCount
		_c.mutation.SetRedFlagCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := summary.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Summary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Summary.updated_at"`)}
	}
	if _, ok := _c.mutation.IntakeID(); !ok {
		return &ValidationError{Name: "intake_id", err: errors.New(`repo: missing required field "Summary.intake_id"`)}
	}
	if _, ok := _c.mutation.ChiefComplaint(); !ok {
		return &ValidationError{Name: "chief_complaint", err: errors.New(`repo: missing required field "Summary.chief_complaint"`)}
	}
	if _, ok := _c.mutation.Medications(); !ok {
		return &ValidationError{Name: "medications", err: errors.New(`repo: missing required field "Summary.medications"`)}
	}
	if _, ok := _c.mutation.SystemsReview(); !ok {
		return &ValidationError{Name: "systems_review", err: errors.New(`repo: missing required field "Summary.systems_review"`)}
	}
	if _, ok := _c.mutation.RelevantHistory(); !ok {
		return &ValidationError{Name: "relevant_history", err: errors.New(`repo: missing required field "Summary.relevant_history"`)}
	}
	if _, ok := _c.mutation.Lifestyle(); !ok {
		return &ValidationError{Name: "lifestyle", err: errors.New(`repo: missing required field "Summary.lifestyle"`)}
	}
	if _, ok := _c.mutation.RedFlags(); !ok {
		return &ValidationError{Name: "red_flags", err: errors.New(`repo: missing required field "Summary.red_flags"`)}
	}
	if _, ok := _c.mutation.HasRedFlags(); !ok {
		return &ValidationError{Name: "has_red_flags", err: errors.New(`repo: missing required field "Summary.has_red_flags"`)}
	}
	if _, ok := _c.mutation.RedFlagCount(); !ok {
		return &ValidationError{Name: "red_flag_count", err: errors.New(`repo: missing required field "Summary.red_flag_count"`)}
	}
	if v, ok := _c.mutation.RedFlagCount(); ok {
		if err := summary.RedFlagCountValidator(v); err != nil {
			return &ValidationError{Name: "red_flag_count", err: fmt.Errorf(`repo: validator failed for field "Summary.red_flag_count": %w`, err)}
		}
	}
	if len(_c.mutation.IntakeIDs()) == 0 {
		return &ValidationError{Name: "intake", err: errors.New(`repo: missing required edge "Summary.intake"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(summary.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = value
	}
	if value, ok := _c.mutation.Medications(); ok {
		_spec.SetField(summary.FieldMedications, field.TypeJSON, value)
		_node.Medications = value
	}
	if value, ok := _c.mutation.SystemsReview(); ok {
		_spec.SetField(summary.FieldSystemsReview, field.TypeJSON, value)
		_node.SystemsReview = value
	}
	if value, ok := _c.mutation.RelevantHistory(); ok {
		_spec.SetField(summary.FieldRelevantHistory, field.TypeString, value)
		_node.RelevantHistory = value
	}
	if value, ok := _c.mutation.Lifestyle(); ok {
		_spec.SetField(summary.FieldLifestyle, field.TypeString, value)
		_node.Lifestyle = value
	}
	if value, ok := _c.mutation.RedFlags(); ok {
		_spec.SetField(summary.FieldRedFlags, field.TypeJSON, value)
		_node.RedFlags = value
	}
	if value, ok := _c.mutation.HasRedFlags(); ok {
		_spec.SetField(summary.FieldHasRedFlags, field.TypeBool, value)
		_node.HasRedFlags = value
	}
	if value, ok := _c.mutation.RedFlagCount(); ok {
		_spec.SetField(summary.FieldRedFlagCount, field.TypeInt, value)
		_node.RedFlagCount = value
	}
	if nodes := _c.mutation.IntakeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   summary.IntakeTable,
			Columns: []string{summary.IntakeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intake.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IntakeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
