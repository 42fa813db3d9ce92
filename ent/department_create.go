// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/department"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DepartmentCreate is the builder for creating a Department entity.
type DepartmentCreate struct {
	config
	mutation *DepartmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DepartmentCreate) SetCreatedAt(v time.Time) *DepartmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableCreatedAt(v *time.Time) *DepartmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DepartmentCreate) SetUpdatedAt(v time.Time) *DepartmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableUpdatedAt(v *time.Time) *DepartmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCode sets the "code" field.
func (_c *DepartmentCreate) SetCode(v string) *DepartmentCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DepartmentCreate) SetName(v string) *DepartmentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DepartmentCreate) SetDescription(v string) *DepartmentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableDescription(v *string) *DepartmentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *DepartmentCreate) SetCategories(v []string) *DepartmentCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetResponseHours sets the "response_hours" field.
func (_c *DepartmentCreate) SetResponseHours(v float64) *DepartmentCreate {
	_c.mutation.SetResponseHours(v)
	return _c
}

// SetNillableResponseHours sets the "response_hours" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableResponseHours(v *float64) *DepartmentCreate {
	if v != nil {
		_c.SetResponseHours(*v)
	}
	return _c
}

// SetResolutionHours sets the "resolution_hours" field.
func (_c *DepartmentCreate) SetResolutionHours(v float64) *DepartmentCreate {
	_c.mutation.SetResolutionHours(v)
	return _c
}

// SetNillableResolutionHours sets the "resolution_hours" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableResolutionHours(v *float64) *DepartmentCreate {
	if v != nil {
		_c.SetResolutionHours(*v)
	}
	return _c
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (_c *DepartmentCreate) SetEscalationThresholdHours(v float64) *DepartmentCreate {
	_c.mutation.SetEscalationThresholdHours(v)
	return _c
}

// SetNillableEscalationThresholdHours sets the "escalation_threshold_hours" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableEscalationThresholdHours(v *float64) *DepartmentCreate {
	if v != nil {
		_c.SetEscalationThresholdHours(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DepartmentCreate) SetIsActive(v bool) *DepartmentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableIsActive(v *bool) *DepartmentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DepartmentCreate) SetID(v uuid.UUID) *DepartmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DepartmentCreate) SetNillableID(v *uuid.UUID) *DepartmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DepartmentMutation object of the builder.
func (_c *DepartmentCreate) Mutation() *DepartmentMutation {
	return _c.mutation
}

// Save creates the Department in the database.
func (_c *DepartmentCreate) Save(ctx context.Context) (*Department, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DepartmentCreate) SaveX(ctx context.Context) *Department {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DepartmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DepartmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DepartmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := department.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := department.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ResponseHours(); !ok {
		v := department.DefaultResponseHours
		_c.mutation.SetResponseHours(v)
	}
	if _, ok := _c.mutation.ResolutionHours(); !ok {
		v := department.DefaultResolutionHours
		_c.mutation.SetResolutionHours(v)
	}
	if _, ok := _c.mutation.EscalationThresholdHours(); !ok {
		v := department.DefaultEscalationThresholdHours
		_c.mutation.SetEscalationThresholdHours(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := department.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := department.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DepartmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Department.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Department.updated_at"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Department.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := department.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Department.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Department.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := department.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Department.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseHours(); !ok {
		return &ValidationError{Name: "response_hours", err: errors.New(`ent: missing required field "Department.response_hours"`)}
	}
	if _, ok := _c.mutation.ResolutionHours(); !ok {
		return &ValidationError{Name: "resolution_hours", err: errors.New(`ent: missing required field "Department.resolution_hours"`)}
	}
	if _, ok := _c.mutation.EscalationThresholdHours(); !ok {
		return &ValidationError{Name: "escalation_threshold_hours", err: errors.New(`ent: missing required field "Department.escalation_threshold_hours"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Department.is_active"`)}
	}
	return nil
}

func (_c *DepartmentCreate) sqlSave(ctx context.Context) (*Department, error) {
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

func (_c *DepartmentCreate) createSpec() (*Department, *sqlgraph.CreateSpec) {
	var (
		_node = &Department{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(department.Table, sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(department.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(department.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(department.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(department.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(department.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(department.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.ResponseHours(); ok {
		_spec.SetField(department.FieldResponseHours, field.TypeFloat64, value)
		_node.ResponseHours = value
	}
	if value, ok := _c.mutation.ResolutionHours(); ok {
		_spec.SetField(department.FieldResolutionHours, field.TypeFloat64, value)
		_node.ResolutionHours = value
	}
	if value, ok := _c.mutation.EscalationThresholdHours(); ok {
		_spec.SetField(department.FieldEscalationThresholdHours, field.TypeFloat64, value)
		_node.EscalationThresholdHours = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(department.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Department.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DepartmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DepartmentCreate) OnConflict(opts ...sql.ConflictOption) *DepartmentUpsertOne {
	_c.conflict = opts
	return &DepartmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Department.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DepartmentCreate) OnConflictColumns(columns ...string) *DepartmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DepartmentUpsertOne{
		create: _c,
	}
}

type (
	// DepartmentUpsertOne is the builder for "upsert"-ing
	//  one Department node.
	DepartmentUpsertOne struct {
		create *DepartmentCreate
	}

	// DepartmentUpsert is the "OnConflict" setter.
	DepartmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DepartmentUpsert) SetUpdatedAt(v time.Time) *DepartmentUpsert {
	u.Set(department.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateUpdatedAt() *DepartmentUpsert {
	u.SetExcluded(department.FieldUpdatedAt)
	return u
}

// SetCode sets the "code" field.
func (u *DepartmentUpsert) SetCode(v string) *DepartmentUpsert {
	u.Set(department.FieldCode, v)
	return u
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateCode() *DepartmentUpsert {
	u.SetExcluded(department.FieldCode)
	return u
}

// SetName sets the "name" field.
func (u *DepartmentUpsert) SetName(v string) *DepartmentUpsert {
	u.Set(department.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateName() *DepartmentUpsert {
	u.SetExcluded(department.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *DepartmentUpsert) SetDescription(v string) *DepartmentUpsert {
	u.Set(department.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateDescription() *DepartmentUpsert {
	u.SetExcluded(department.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *DepartmentUpsert) ClearDescription() *DepartmentUpsert {
	u.SetNull(department.FieldDescription)
	return u
}

// SetCategories sets the "categories" field.
func (u *DepartmentUpsert) SetCategories(v []string) *DepartmentUpsert {
	u.Set(department.FieldCategories, v)
	return u
}

// UpdateCategories sets the "categories" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateCategories() *DepartmentUpsert {
	u.SetExcluded(department.FieldCategories)
	return u
}

// ClearCategories clears the value of the "categories" field.
func (u *DepartmentUpsert) ClearCategories() *DepartmentUpsert {
	u.SetNull(department.FieldCategories)
	return u
}

// SetResponseHours sets the "response_hours" field.
func (u *DepartmentUpsert) SetResponseHours(v float64) *DepartmentUpsert {
	u.Set(department.FieldResponseHours, v)
	return u
}

// UpdateResponseHours sets the "response_hours" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateResponseHours() *DepartmentUpsert {
	u.SetExcluded(department.FieldResponseHours)
	return u
}

// AddResponseHours adds v to the "response_hours" field.
func (u *DepartmentUpsert) AddResponseHours(v float64) *DepartmentUpsert {
	u.Add(department.FieldResponseHours, v)
	return u
}

// SetResolutionHours sets the "resolution_hours" field.
func (u *DepartmentUpsert) SetResolutionHours(v float64) *DepartmentUpsert {
	u.Set(department.FieldResolutionHours, v)
	return u
}

// UpdateResolutionHours sets the "resolution_hours" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateResolutionHours() *DepartmentUpsert {
	u.SetExcluded(department.FieldResolutionHours)
	return u
}

// AddResolutionHours adds v to the "resolution_hours" field.
func (u *DepartmentUpsert) AddResolutionHours(v float64) *DepartmentUpsert {
	u.Add(department.FieldResolutionHours, v)
	return u
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (u *DepartmentUpsert) SetEscalationThresholdHours(v float64) *DepartmentUpsert {
	u.Set(department.FieldEscalationThresholdHours, v)
	return u
}

// UpdateEscalationThresholdHours sets the "escalation_threshold_hours" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateEscalationThresholdHours() *DepartmentUpsert {
	u.SetExcluded(department.FieldEscalationThresholdHours)
	return u
}

// AddEscalationThresholdHours adds v to the "escalation_threshold_hours" field.
func (u *DepartmentUpsert) AddEscalationThresholdHours(v float64) *DepartmentUpsert {
	u.Add(department.FieldEscalationThresholdHours, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *DepartmentUpsert) SetIsActive(v bool) *DepartmentUpsert {
	u.Set(department.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *DepartmentUpsert) UpdateIsActive() *DepartmentUpsert {
	u.SetExcluded(department.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Department.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(department.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DepartmentUpsertOne) UpdateNewValues() *DepartmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(department.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(department.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Department.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DepartmentUpsertOne) Ignore() *DepartmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DepartmentUpsertOne) DoNothing() *DepartmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DepartmentCreate.OnConflict
// documentation for more info.
func (u *DepartmentUpsertOne) Update(set func(*DepartmentUpsert)) *DepartmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DepartmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DepartmentUpsertOne) SetUpdatedAt(v time.Time) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateUpdatedAt() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCode sets the "code" field.
func (u *DepartmentUpsertOne) SetCode(v string) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateCode() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateCode()
	})
}

// SetName sets the "name" field.
func (u *DepartmentUpsertOne) SetName(v string) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateName() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *DepartmentUpsertOne) SetDescription(v string) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateDescription() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DepartmentUpsertOne) ClearDescription() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.ClearDescription()
	})
}

// SetCategories sets the "categories" field.
func (u *DepartmentUpsertOne) SetCategories(v []string) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetCategories(v)
	})
}

// UpdateCategories sets the "categories" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateCategories() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateCategories()
	})
}

// ClearCategories clears the value of the "categories" field.
func (u *DepartmentUpsertOne) ClearCategories() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.ClearCategories()
	})
}

// SetResponseHours sets the "response_hours" field.
func (u *DepartmentUpsertOne) SetResponseHours(v float64) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetResponseHours(v)
	})
}

// AddResponseHours adds v to the "response_hours" field.
func (u *DepartmentUpsertOne) AddResponseHours(v float64) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.AddResponseHours(v)
	})
}

// UpdateResponseHours sets the "response_hours" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateResponseHours() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateResponseHours()
	})
}

// SetResolutionHours sets the "resolution_hours" field.
func (u *DepartmentUpsertOne) SetResolutionHours(v float64) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetResolutionHours(v)
	})
}

// AddResolutionHours adds v to the "resolution_hours" field.
func (u *DepartmentUpsertOne) AddResolutionHours(v float64) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.AddResolutionHours(v)
	})
}

// UpdateResolutionHours sets the "resolution_hours" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateResolutionHours() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateResolutionHours()
	})
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (u *DepartmentUpsertOne) SetEscalationThresholdHours(v float64) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetEscalationThresholdHours(v)
	})
}

// AddEscalationThresholdHours adds v to the "escalation_threshold_hours" field.
func (u *DepartmentUpsertOne) AddEscalationThresholdHours(v float64) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.AddEscalationThresholdHours(v)
	})
}

// UpdateEscalationThresholdHours sets the "escalation_threshold_hours" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateEscalationThresholdHours() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateEscalationThresholdHours()
	})
}

// SetIsActive sets the "is_active" field.
func (u *DepartmentUpsertOne) SetIsActive(v bool) *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *DepartmentUpsertOne) UpdateIsActive() *DepartmentUpsertOne {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *DepartmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DepartmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DepartmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DepartmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DepartmentUpsertOne.ID is not supported by MySQL driver. Use DepartmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DepartmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DepartmentCreateBulk is the builder for creating many Department entities in bulk.
type DepartmentCreateBulk struct {
	config
	err      error
	builders []*DepartmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Department entities in the database.
func (_c *DepartmentCreateBulk) Save(ctx context.Context) ([]*Department, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Department, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DepartmentMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *DepartmentCreateBulk) SaveX(ctx context.Context) []*Department {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DepartmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DepartmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Department.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DepartmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DepartmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DepartmentUpsertBulk {
	_c.conflict = opts
	return &DepartmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Department.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DepartmentCreateBulk) OnConflictColumns(columns ...string) *DepartmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DepartmentUpsertBulk{
		create: _c,
	}
}

// DepartmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Department nodes.
type DepartmentUpsertBulk struct {
	create *DepartmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Department.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(department.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DepartmentUpsertBulk) UpdateNewValues() *DepartmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(department.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(department.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Department.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DepartmentUpsertBulk) Ignore() *DepartmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DepartmentUpsertBulk) DoNothing() *DepartmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DepartmentCreateBulk.OnConflict
// documentation for more info.
func (u *DepartmentUpsertBulk) Update(set func(*DepartmentUpsert)) *DepartmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DepartmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DepartmentUpsertBulk) SetUpdatedAt(v time.Time) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateUpdatedAt() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCode sets the "code" field.
func (u *DepartmentUpsertBulk) SetCode(v string) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateCode() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateCode()
	})
}

// SetName sets the "name" field.
func (u *DepartmentUpsertBulk) SetName(v string) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateName() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *DepartmentUpsertBulk) SetDescription(v string) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateDescription() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DepartmentUpsertBulk) ClearDescription() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.ClearDescription()
	})
}

// SetCategories sets the "categories" field.
func (u *DepartmentUpsertBulk) SetCategories(v []string) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetCategories(v)
	})
}

// UpdateCategories sets the "categories" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateCategories() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateCategories()
	})
}

// ClearCategories clears the value of the "categories" field.
func (u *DepartmentUpsertBulk) ClearCategories() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.ClearCategories()
	})
}

// SetResponseHours sets the "response_hours" field.
func (u *DepartmentUpsertBulk) SetResponseHours(v float64) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetResponseHours(v)
	})
}

// AddResponseHours adds v to the "response_hours" field.
func (u *DepartmentUpsertBulk) AddResponseHours(v float64) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.AddResponseHours(v)
	})
}

// UpdateResponseHours sets the "response_hours" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateResponseHours() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateResponseHours()
	})
}

// SetResolutionHours sets the "resolution_hours" field.
func (u *DepartmentUpsertBulk) SetResolutionHours(v float64) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetResolutionHours(v)
	})
}

// AddResolutionHours adds v to the "resolution_hours" field.
func (u *DepartmentUpsertBulk) AddResolutionHours(v float64) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.AddResolutionHours(v)
	})
}

// UpdateResolutionHours sets the "resolution_hours" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateResolutionHours() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateResolutionHours()
	})
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (u *DepartmentUpsertBulk) SetEscalationThresholdHours(v float64) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetEscalationThresholdHours(v)
	})
}

// AddEscalationThresholdHours adds v to the "escalation_threshold_hours" field.
func (u *DepartmentUpsertBulk) AddEscalationThresholdHours(v float64) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.AddEscalationThresholdHours(v)
	})
}

// UpdateEscalationThresholdHours sets the "escalation_threshold_hours" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateEscalationThresholdHours() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateEscalationThresholdHours()
	})
}

// SetIsActive sets the "is_active" field.
func (u *DepartmentUpsertBulk) SetIsActive(v bool) *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *DepartmentUpsertBulk) UpdateIsActive() *DepartmentUpsertBulk {
	return u.Update(func(s *DepartmentUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *DepartmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DepartmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DepartmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DepartmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
