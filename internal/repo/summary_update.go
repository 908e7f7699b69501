// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/intakeai/intakeai_backend/internal/clinical"
	"github.com/intakeai/intakeai_backend/internal/repo/predicate"
	"github.com/intakeai/intakeai_backend/internal/repo/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryUpdate) SetUpdatedAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *SummaryUpdate) SetChiefComplaint(v string) *SummaryUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableChiefComplaint(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// SetMedications sets the "medications" field.
func (_u *SummaryUpdate) SetMedications(v []clinical.Medication) *SummaryUpdate {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *SummaryUpdate) AppendMedications(v []clinical.Medication) *SummaryUpdate {
	_u.mutation.AppendMedications(v)
	return _u
}

// SetSystemsReview sets the "systems_review" field.
func (_u *SummaryUpdate) SetSystemsReview(v map[string]string) *SummaryUpdate {
	_u.mutation.SetSystemsReview(v)
	return _u
}

// SetRelevantHistory sets the "relevant_history" field.
func (_u *SummaryUpdate) SetRelevantHistory(v string) *SummaryUpdate {
	_u.mutation.SetRelevantHistory(v)
	return _u
}

// SetNillableRelevantHistory sets the "relevant_history" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableRelevantHistory(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetRelevantHistory(*v)
	}
	return _u
}

// SetLifestyle sets the "lifestyle" field.
func (_u *SummaryUpdate) SetLifestyle(v string) *SummaryUpdate {
	_u.mutation.SetLifestyle(v)
	return _u
}

// SetNillableLifestyle sets the "lifestyle" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableLifestyle(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetLifestyle(*v)
	}
	return _u
}

// SetRedFlags sets the "red_flags" field.
func (_u *SummaryUpdate) SetRedFlags(v []clinical.RedFlag) *SummaryUpdate {
	_u.mutation.SetRedFlags(v)
	return _u
}

// AppendRedFlags appends value to the "red_flags" field.
func (_u *SummaryUpdate) AppendRedFlags(v []clinical.RedFlag) *SummaryUpdate {
	_u.mutation.AppendRedFlags(v)
	return _u
}

// SetHasRedFlags sets the "has_red_flags" field.
func (_u *SummaryUpdate) SetHasRedFlags(v bool) *SummaryUpdate {
	_u.mutation.SetHasRedFlags(v)
	return _u
}

// SetNillableHasRedFlags sets the "has_red_flags" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableHasRedFlags(v *bool) *SummaryUpdate {
	if v != nil {
		_u.SetHasRedFlags(*v)
	}
	return _u
}

// SetRedFlagCount sets the "red_flag_count" field.
func (_u *SummaryUpdate) SetRedFlagCount(v int) *SummaryUpdate {
	_u.mutation.ResetRedFlagCount()
	_u.mutation.SetRedFlagCount(v)
	return _u
}

// SetNillableRedFlagCount sets the "red_flag_count" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableRedFlagCount(v *int) *SummaryUpdate {
	if v != nil {
		_u.SetRedFlagCount(*v)
	}
	return _u
}

// AddRedFlagCount adds value to the "red_flag_count" field.
func (_u *SummaryUpdate) AddRedFlagCount(v int) *SummaryUpdate {
	_u.mutation.AddRedFlagCount(v)
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdate) check() error {
	if v, ok := _u.mutation.RedFlagCount(); ok {
		if err := summary.RedFlagCountValidator(v); err != nil {
			return &ValidationError{Name: "red_flag_count", err: fmt.Errorf(`repo: validator failed for field "Summary.red_flag_count": %w`, err)}
		}
	}
	if _u.mutation.IntakeCleared() && len(_u.mutation.IntakeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Summary.intake"`)
	}
	return nil
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(summary.FieldChiefComplaint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(summary.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldMedications, value)
		})
	}
	if value, ok := _u.mutation.SystemsReview(); ok {
		_spec.SetField(summary.FieldSystemsReview, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RelevantHistory(); ok {
		_spec.SetField(summary.FieldRelevantHistory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lifestyle(); ok {
		_spec.SetField(summary.FieldLifestyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.RedFlags(); ok {
		_spec.SetField(summary.FieldRedFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldRedFlags, value)
		})
	}
	if value, ok := _u.mutation.HasRedFlags(); ok {
		_spec.SetField(summary.FieldHasRedFlags, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RedFlagCount(); ok {
		_spec.SetField(summary.FieldRedFlagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRedFlagCount(); ok {
		_spec.AddField(summary.FieldRedFlagCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryUpdateOne) SetUpdatedAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *SummaryUpdateOne) SetChiefComplaint(v string) *SummaryUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableChiefComplaint(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// SetMedications sets the "medications" field.
func (_u *SummaryUpdateOne) SetMedications(v []clinical.Medication) *SummaryUpdateOne {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *SummaryUpdateOne) AppendMedications(v []clinical.Medication) *SummaryUpdateOne {
	_u.mutation.AppendMedications(v)
	return _u
}

// SetSystemsReview sets the "systems_review" field.
func (_u *SummaryUpdateOne) SetSystemsReview(v map[string]string) *SummaryUpdateOne {
	_u.mutation.SetSystemsReview(v)
	return _u
}

// SetRelevantHistory sets the "relevant_history" field.
func (_u *SummaryUpdateOne) SetRelevantHistory(v string) *SummaryUpdateOne {
	_u.mutation.SetRelevantHistory(v)
	return _u
}

// SetNillableRelevantHistory sets the "relevant_history" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableRelevantHistory(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetRelevantHistory(*v)
	}
	return _u
}

// SetLifestyle sets the "lifestyle" field.
func (_u *SummaryUpdateOne) SetLifestyle(v string) *SummaryUpdateOne {
	_u.mutation.SetLifestyle(v)
	return _u
}

// SetNillableLifestyle sets the "lifestyle" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableLifestyle(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetLifestyle(*v)
	}
	return _u
}

// SetRedFlags sets the "red_flags" field.
func (_u *SummaryUpdateOne) SetRedFlags(v []clinical.RedFlag) *SummaryUpdateOne {
	_u.mutation.SetRedFlags(v)
	return _u
}

// AppendRedFlags appends value to the "red_flags" field.
func (_u *SummaryUpdateOne) AppendRedFlags(v []clinical.RedFlag) *SummaryUpdateOne {
	_u.mutation.AppendRedFlags(v)
	return _u
}

// SetHasRedFlags sets the "has_red_flags" field.
func (_u *SummaryUpdateOne) SetHasRedFlags(v bool) *SummaryUpdateOne {
	_u.mutation.SetHasRedFlags(v)
	return _u
}

// SetNillableHasRedFlags sets the "has_red_flags" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableHasRedFlags(v *bool) *SummaryUpdateOne {
	if v != nil {
		_u.SetHasRedFlags(*v)
	}
	return _u
}

// SetRedFlagCount sets the "red_flag_count" field.
func (_u *SummaryUpdateOne) SetRedFlagCount(v int) *SummaryUpdateOne {
	_u.mutation.ResetRedFlagCount()
	_u.mutation.SetRedFlagCount(v)
	return _u
}

// SetNillableRedFlagCount sets the "red_flag_count" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableRedFlagCount(v *int) *SummaryUpdateOne {
	if v != nil {
		_u.SetRedFlagCount(*v)
	}
	return _u
}

// AddRedFlagCount adds value to the "red_flag_count" field.
func (_u *SummaryUpdateOne) AddRedFlagCount(v int) *SummaryUpdateOne {
	_u.mutation.AddRedFlagCount(v)
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdateOne) check() error {
	if v, ok := _u.mutation.RedFlagCount(); ok {
		if err := summary.RedFlagCountValidator(v); err != nil {
			return &ValidationError{Name: "red_flag_count", err: fmt.Errorf(`repo: validator failed for field "Summary.red_flag_count": %w`, err)}
		}
	}
	if _u.mutation.IntakeCleared() && len(_u.mutation.IntakeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Summary.intake"`)
	}
	return nil
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(summary.FieldChiefComplaint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(summary.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldMedications, value)
		})
	}
	if value, ok := _u.mutation.SystemsReview(); ok {
		_spec.SetField(summary.FieldSystemsReview, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RelevantHistory(); ok {
		_spec.SetField(summary.FieldRelevantHistory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lifestyle(); ok {
		_spec.SetField(summary.FieldLifestyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.RedFlags(); ok {
		_spec.SetField(summary.FieldRedFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldRedFlags, value)
		})
	}
	if value, ok := _u.mutation.HasRedFlags(); ok {
		_spec.SetField(summary.FieldHasRedFlags, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RedFlagCount(); ok {
		_spec.SetField(summary.FieldRedFlagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRedFlagCount(); ok {
		_spec.AddField(summary.FieldRedFlagCount, field.TypeInt, value)
	}
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
