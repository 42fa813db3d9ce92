// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/predicate"
	"CivicPulseAPI/ent/statusupdate"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// StatusUpdateDelete is the builder for deleting a StatusUpdate entity.
type StatusUpdateDelete struct {
	config
	hooks    []Hook
	mutation *StatusUpdateMutation
}

// Where appends a list predicates to the StatusUpdateDelete builder.
func (_d *StatusUpdateDelete) Where(ps ...predicate.StatusUpdate) *StatusUpdateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StatusUpdateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StatusUpdateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StatusUpdateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(statusupdate.Table, sqlgraph.NewFieldSpec(statusupdate.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// StatusUpdateDeleteOne is the builder for deleting a single StatusUpdate entity.
type StatusUpdateDeleteOne struct {
	_d *StatusUpdateDelete
}

// Where appends a list predicates to the StatusUpdateDelete builder.
func (_d *StatusUpdateDeleteOne) Where(ps ...predicate.StatusUpdate) *StatusUpdateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StatusUpdateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{statusupdate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StatusUpdateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
