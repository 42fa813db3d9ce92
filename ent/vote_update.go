// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/predicate"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// VoteUpdate is the builder for updating Vote entities.
type VoteUpdate struct {
	config
	hooks    []Hook
	mutation *VoteMutation
}

// Where appends a list predicates to the VoteUpdate builder.
func (_u *VoteUpdate) Where(ps ...predicate.Vote) *VoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoteUpdate) SetUpdatedAt(v time.Time) *VoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VoteUpdate) SetUserID(v uuid.UUID) *VoteUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableUserID(v *uuid.UUID) *VoteUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *VoteUpdate) SetReportID(v uuid.UUID) *VoteUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableReportID(v *uuid.UUID) *VoteUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetVoteType sets the "vote_type" field.
func (_u *VoteUpdate) SetVoteType(v vote.VoteType) *VoteUpdate {
	_u.mutation.SetVoteType(v)
	return _u
}

// SetNillableVoteType sets the "vote_type" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableVoteType(v *vote.VoteType) *VoteUpdate {
	if v != nil {
		_u.SetVoteType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *VoteUpdate) SetReason(v string) *VoteUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableReason(v *string) *VoteUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *VoteUpdate) ClearReason() *VoteUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetVoterID sets the "voter" edge to the User entity by ID.
func (_u *VoteUpdate) SetVoterID(id uuid.UUID) *VoteUpdate {
	_u.mutation.SetVoterID(id)
	return _u
}

// SetVoter sets the "voter" edge to the User entity.
func (_u *VoteUpdate) SetVoter(v *User) *VoteUpdate {
	return _u.SetVoterID(v.ID)
}

// SetReport sets the "report" edge to the Report entity.
func (_u *VoteUpdate) SetReport(v *Report) *VoteUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the VoteMutation object of the builder.
func (_u *VoteUpdate) Mutation() *VoteMutation {
	return _u.mutation
}

// ClearVoter clears the "voter" edge to the User entity.
func (_u *VoteUpdate) ClearVoter() *VoteUpdate {
	_u.mutation.ClearVoter()
	return _u
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *VoteUpdate) ClearReport() *VoteUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoteUpdate) check() error {
	if v, ok := _u.mutation.VoteType(); ok {
		if err := vote.VoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "vote_type", err: fmt.Errorf(`ent: validator failed for field "Vote.vote_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := vote.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Vote.reason": %w`, err)}
		}
	}
	if _u.mutation.VoterCleared() && len(_u.mutation.VoterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.voter"`)
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.report"`)
	}
	return nil
}

func (_u *VoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vote.Table, vote.Columns, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VoteType(); ok {
		_spec.SetField(vote.FieldVoteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(vote.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(vote.FieldReason, field.TypeString)
	}
	if _u.mutation.VoterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.VoterTable,
			Columns: []string{vote.VoterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VoterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.VoterTable,
			Columns: []string{vote.VoterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.ReportTable,
			Columns: []string{vote.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.ReportTable,
			Columns: []string{vote.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoteUpdateOne is the builder for updating a single Vote entity.
type VoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoteUpdateOne) SetUpdatedAt(v time.Time) *VoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VoteUpdateOne) SetUserID(v uuid.UUID) *VoteUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableUserID(v *uuid.UUID) *VoteUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *VoteUpdateOne) SetReportID(v uuid.UUID) *VoteUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableReportID(v *uuid.UUID) *VoteUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetVoteType sets the "vote_type" field.
func (_u *VoteUpdateOne) SetVoteType(v vote.VoteType) *VoteUpdateOne {
	_u.mutation.SetVoteType(v)
	return _u
}

// SetNillableVoteType sets the "vote_type" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableVoteType(v *vote.VoteType) *VoteUpdateOne {
	if v != nil {
		_u.SetVoteType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *VoteUpdateOne) SetReason(v string) *VoteUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableReason(v *string) *VoteUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *VoteUpdateOne) ClearReason() *VoteUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetVoterID sets the "voter" edge to the User entity by ID.
func (_u *VoteUpdateOne) SetVoterID(id uuid.UUID) *VoteUpdateOne {
	_u.mutation.SetVoterID(id)
	return _u
}

// SetVoter sets the "voter" edge to the User entity.
func (_u *VoteUpdateOne) SetVoter(v *User) *VoteUpdateOne {
	return _u.SetVoterID(v.ID)
}

// SetReport sets the "report" edge to the Report entity.
func (_u *VoteUpdateOne) SetReport(v *Report) *VoteUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the VoteMutation object of the builder.
func (_u *VoteUpdateOne) Mutation() *VoteMutation {
	return _u.mutation
}

// ClearVoter clears the "voter" edge to the User entity.
func (_u *VoteUpdateOne) ClearVoter() *VoteUpdateOne {
	_u.mutation.ClearVoter()
	return _u
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *VoteUpdateOne) ClearReport() *VoteUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the VoteUpdate builder.
func (_u *VoteUpdateOne) Where(ps ...predicate.Vote) *VoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoteUpdateOne) Select(field string, fields ...string) *VoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vote entity.
func (_u *VoteUpdateOne) Save(ctx context.Context) (*Vote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoteUpdateOne) SaveX(ctx context.Context) *Vote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoteUpdateOne) check() error {
	if v, ok := _u.mutation.VoteType(); ok {
		if err := vote.VoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "vote_type", err: fmt.Errorf(`ent: validator failed for field "Vote.vote_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := vote.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Vote.reason": %w`, err)}
		}
	}
	if _u.mutation.VoterCleared() && len(_u.mutation.VoterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.voter"`)
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.report"`)
	}
	return nil
}

func (_u *VoteUpdateOne) sqlSave(ctx context.Context) (_node *Vote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vote.Table, vote.Columns, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vote.FieldID)
		for _, f := range fields {
			if !vote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vote.FieldID {
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
		_spec.SetField(vote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VoteType(); ok {
		_spec.SetField(vote.FieldVoteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(vote.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(vote.FieldReason, field.TypeString)
	}
	if _u.mutation.VoterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.VoterTable,
			Columns: []string{vote.VoterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VoterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.VoterTable,
			Columns: []string{vote.VoterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.ReportTable,
			Columns: []string{vote.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vote.ReportTable,
			Columns: []string{vote.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
