// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/predicate"
	"CivicPulseAPI/ent/statusupdate"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// StatusUpdateUpdate is the builder for updating StatusUpdate entities.
type StatusUpdateUpdate struct {
	config
	hooks    []Hook
	mutation *StatusUpdateMutation
}

// Where appends a list predicates to the StatusUpdateUpdate builder.
func (_u *StatusUpdateUpdate) Where(ps ...predicate.StatusUpdate) *StatusUpdateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the StatusUpdateMutation object of the builder.
func (_u *StatusUpdateUpdate) Mutation() *StatusUpdateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatusUpdateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatusUpdateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatusUpdateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatusUpdateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatusUpdateUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StatusUpdate.report"`)
	}
	return nil
}

func (_u *StatusUpdateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statusupdate.Table, statusupdate.Columns, sqlgraph.NewFieldSpec(statusupdate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(statusupdate.FieldMessage, field.TypeString)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(statusupdate.FieldUpdatedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statusupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatusUpdateUpdateOne is the builder for updating a single StatusUpdate entity.
type StatusUpdateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatusUpdateMutation
}

// Mutation returns the StatusUpdateMutation object of the builder.
func (_u *StatusUpdateUpdateOne) Mutation() *StatusUpdateMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatusUpdateUpdate builder.
func (_u *StatusUpdateUpdateOne) Where(ps ...predicate.StatusUpdate) *StatusUpdateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatusUpdateUpdateOne) Select(field string, fields ...string) *StatusUpdateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StatusUpdate entity.
func (_u *StatusUpdateUpdateOne) Save(ctx context.Context) (*StatusUpdate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatusUpdateUpdateOne) SaveX(ctx context.Context) *StatusUpdate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatusUpdateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatusUpdateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatusUpdateUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StatusUpdate.report"`)
	}
	return nil
}

func (_u *StatusUpdateUpdateOne) sqlSave(ctx context.Context) (_node *StatusUpdate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statusupdate.Table, statusupdate.Columns, sqlgraph.NewFieldSpec(statusupdate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StatusUpdate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statusupdate.FieldID)
		for _, f := range fields {
			if !statusupdate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statusupdate.FieldID {
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
	if _u.mutation.MessageCleared() {
		_spec.ClearField(statusupdate.FieldMessage, field.TypeString)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(statusupdate.FieldUpdatedBy, field.TypeUUID)
	}
	_node = &StatusUpdate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statusupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
