// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/department"
	"CivicPulseAPI/ent/predicate"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// DepartmentUpdate is the builder for updating Department entities.
type DepartmentUpdate struct {
	config
	hooks    []Hook
	mutation *DepartmentMutation
}

// Where appends a list predicates to the DepartmentUpdate builder.
func (_u *DepartmentUpdate) Where(ps ...predicate.Department) *DepartmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DepartmentUpdate) SetUpdatedAt(v time.Time) *DepartmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *DepartmentUpdate) SetCode(v string) *DepartmentUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableCode(v *string) *DepartmentUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DepartmentUpdate) SetName(v string) *DepartmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableName(v *string) *DepartmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DepartmentUpdate) SetDescription(v string) *DepartmentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableDescription(v *string) *DepartmentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DepartmentUpdate) ClearDescription() *DepartmentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *DepartmentUpdate) SetCategories(v []string) *DepartmentUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *DepartmentUpdate) AppendCategories(v []string) *DepartmentUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *DepartmentUpdate) ClearCategories() *DepartmentUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetResponseHours sets the "response_hours" field.
func (_u *DepartmentUpdate) SetResponseHours(v float64) *DepartmentUpdate {
	_u.mutation.ResetResponseHours()
	_u.mutation.SetResponseHours(v)
	return _u
}

// SetNillableResponseHours sets the "response_hours" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableResponseHours(v *float64) *DepartmentUpdate {
	if v != nil {
		_u.SetResponseHours(*v)
	}
	return _u
}

// AddResponseHours adds value to the "response_hours" field.
func (_u *DepartmentUpdate) AddResponseHours(v float64) *DepartmentUpdate {
	_u.mutation.AddResponseHours(v)
	return _u
}

// SetResolutionHours sets the "resolution_hours" field.
func (_u *DepartmentUpdate) SetResolutionHours(v float64) *DepartmentUpdate {
	_u.mutation.ResetResolutionHours()
	_u.mutation.SetResolutionHours(v)
	return _u
}

// SetNillableResolutionHours sets the "resolution_hours" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableResolutionHours(v *float64) *DepartmentUpdate {
	if v != nil {
		_u.SetResolutionHours(*v)
	}
	return _u
}

// AddResolutionHours adds value to the "resolution_hours" field.
func (_u *DepartmentUpdate) AddResolutionHours(v float64) *DepartmentUpdate {
	_u.mutation.AddResolutionHours(v)
	return _u
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (_u *DepartmentUpdate) SetEscalationThresholdHours(v float64) *DepartmentUpdate {
	_u.mutation.ResetEscalationThresholdHours()
	_u.mutation.SetEscalationThresholdHours(v)
	return _u
}

// SetNillableEscalationThresholdHours sets the "escalation_threshold_hours" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableEscalationThresholdHours(v *float64) *DepartmentUpdate {
	if v != nil {
		_u.SetEscalationThresholdHours(*v)
	}
	return _u
}

// AddEscalationThresholdHours adds value to the "escalation_threshold_hours" field.
func (_u *DepartmentUpdate) AddEscalationThresholdHours(v float64) *DepartmentUpdate {
	_u.mutation.AddEscalationThresholdHours(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DepartmentUpdate) SetIsActive(v bool) *DepartmentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DepartmentUpdate) SetNillableIsActive(v *bool) *DepartmentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DepartmentMutation object of the builder.
func (_u *DepartmentUpdate) Mutation() *DepartmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DepartmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DepartmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DepartmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DepartmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DepartmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := department.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DepartmentUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := department.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Department.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := department.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Department.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DepartmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(department.Table, department.Columns, sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(department.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(department.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(department.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(department.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(department.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(department.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, department.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(department.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseHours(); ok {
		_spec.SetField(department.FieldResponseHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseHours(); ok {
		_spec.AddField(department.FieldResponseHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResolutionHours(); ok {
		_spec.SetField(department.FieldResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResolutionHours(); ok {
		_spec.AddField(department.FieldResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EscalationThresholdHours(); ok {
		_spec.SetField(department.FieldEscalationThresholdHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEscalationThresholdHours(); ok {
		_spec.AddField(department.FieldEscalationThresholdHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(department.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{department.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DepartmentUpdateOne is the builder for updating a single Department entity.
type DepartmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DepartmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DepartmentUpdateOne) SetUpdatedAt(v time.Time) *DepartmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *DepartmentUpdateOne) SetCode(v string) *DepartmentUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableCode(v *string) *DepartmentUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DepartmentUpdateOne) SetName(v string) *DepartmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableName(v *string) *DepartmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DepartmentUpdateOne) SetDescription(v string) *DepartmentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableDescription(v *string) *DepartmentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DepartmentUpdateOne) ClearDescription() *DepartmentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *DepartmentUpdateOne) SetCategories(v []string) *DepartmentUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *DepartmentUpdateOne) AppendCategories(v []string) *DepartmentUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *DepartmentUpdateOne) ClearCategories() *DepartmentUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetResponseHours sets the "response_hours" field.
func (_u *DepartmentUpdateOne) SetResponseHours(v float64) *DepartmentUpdateOne {
	_u.mutation.ResetResponseHours()
	_u.mutation.SetResponseHours(v)
	return _u
}

// SetNillableResponseHours sets the "response_hours" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableResponseHours(v *float64) *DepartmentUpdateOne {
	if v != nil {
		_u.SetResponseHours(*v)
	}
	return _u
}

// AddResponseHours adds value to the "response_hours" field.
func (_u *DepartmentUpdateOne) AddResponseHours(v float64) *DepartmentUpdateOne {
	_u.mutation.AddResponseHours(v)
	return _u
}

// SetResolutionHours sets the "resolution_hours" field.
func (_u *DepartmentUpdateOne) SetResolutionHours(v float64) *DepartmentUpdateOne {
	_u.mutation.ResetResolutionHours()
	_u.mutation.SetResolutionHours(v)
	return _u
}

// SetNillableResolutionHours sets the "resolution_hours" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableResolutionHours(v *float64) *DepartmentUpdateOne {
	if v != nil {
		_u.SetResolutionHours(*v)
	}
	return _u
}

// AddResolutionHours adds value to the "resolution_hours" field.
func (_u *DepartmentUpdateOne) AddResolutionHours(v float64) *DepartmentUpdateOne {
	_u.mutation.AddResolutionHours(v)
	return _u
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (_u *DepartmentUpdateOne) SetEscalationThresholdHours(v float64) *DepartmentUpdateOne {
	_u.mutation.ResetEscalationThresholdHours()
	_u.mutation.SetEscalationThresholdHours(v)
	return _u
}

// SetNillableEscalationThresholdHours sets the "escalation_threshold_hours" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableEscalationThresholdHours(v *float64) *DepartmentUpdateOne {
	if v != nil {
		_u.SetEscalationThresholdHours(*v)
	}
	return _u
}

// AddEscalationThresholdHours adds value to the "escalation_threshold_hours" field.
func (_u *DepartmentUpdateOne) AddEscalationThresholdHours(v float64) *DepartmentUpdateOne {
	_u.mutation.AddEscalationThresholdHours(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DepartmentUpdateOne) SetIsActive(v bool) *DepartmentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DepartmentUpdateOne) SetNillableIsActive(v *bool) *DepartmentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DepartmentMutation object of the builder.
func (_u *DepartmentUpdateOne) Mutation() *DepartmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DepartmentUpdate builder.
func (_u *DepartmentUpdateOne) Where(ps ...predicate.Department) *DepartmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DepartmentUpdateOne) Select(field string, fields ...string) *DepartmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Department entity.
func (_u *DepartmentUpdateOne) Save(ctx context.Context) (*Department, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DepartmentUpdateOne) SaveX(ctx context.Context) *Department {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DepartmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DepartmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DepartmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := department.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DepartmentUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := department.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Department.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := department.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Department.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DepartmentUpdateOne) sqlSave(ctx context.Context) (_node *Department, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(department.Table, department.Columns, sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Department.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, department.FieldID)
		for _, f := range fields {
			if !department.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != department.FieldID {
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
		_spec.SetField(department.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(department.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(department.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(department.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(department.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(department.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, department.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(department.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseHours(); ok {
		_spec.SetField(department.FieldResponseHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseHours(); ok {
		_spec.AddField(department.FieldResponseHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResolutionHours(); ok {
		_spec.SetField(department.FieldResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResolutionHours(); ok {
		_spec.AddField(department.FieldResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EscalationThresholdHours(); ok {
		_spec.SetField(department.FieldEscalationThresholdHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEscalationThresholdHours(); ok {
		_spec.AddField(department.FieldEscalationThresholdHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(department.FieldIsActive, field.TypeBool, value)
	}
	_node = &Department{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{department.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
