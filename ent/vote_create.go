// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
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

// VoteCreate is the builder for creating a Vote entity.
type VoteCreate struct {
	config
	mutation *VoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VoteCreate) SetCreatedAt(v time.Time) *VoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VoteCreate) SetNillableCreatedAt(v *time.Time) *VoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VoteCreate) SetUpdatedAt(v time.Time) *VoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VoteCreate) SetNillableUpdatedAt(v *time.Time) *VoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *VoteCreate) SetUserID(v uuid.UUID) *VoteCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *VoteCreate) SetReportID(v uuid.UUID) *VoteCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetVoteType sets the "vote_type" field.
func (_c *VoteCreate) SetVoteType(v vote.VoteType) *VoteCreate {
	_c.mutation.SetVoteType(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *VoteCreate) SetReason(v string) *VoteCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *VoteCreate) SetNillableReason(v *string) *VoteCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VoteCreate) SetID(v uuid.UUID) *VoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VoteCreate) SetNillableID(v *uuid.UUID) *VoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVoterID sets the "voter" edge to the User entity by ID.
func (_c *VoteCreate) SetVoterID(id uuid.UUID) *VoteCreate {
	_c.mutation.SetVoterID(id)
	return _c
}

// SetVoter sets the "voter" edge to the User entity.
func (_c *VoteCreate) SetVoter(v *User) *VoteCreate {
	return _c.SetVoterID(v.ID)
}

// SetReport sets the "report" edge to the Report entity.
func (_c *VoteCreate) SetReport(v *Report) *VoteCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the VoteMutation object of the builder.
func (_c *VoteCreate) Mutation() *VoteMutation {
	return _c.mutation
}

// Save creates the Vote in the database.
func (_c *VoteCreate) Save(ctx context.Context) (*Vote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoteCreate) SaveX(ctx context.Context) *Vote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vote.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Vote.user_id"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Vote.report_id"`)}
	}
	if _, ok := _c.mutation.VoteType(); !ok {
		return &ValidationError{Name: "vote_type", err: errors.New(`ent: missing required field "Vote.vote_type"`)}
	}
	if v, ok := _c.mutation.VoteType(); ok {
		if err := vote.VoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "vote_type", err: fmt.Errorf(`ent: validator failed for field "Vote.vote_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := vote.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Vote.reason": %w`, err)}
		}
	}
	if len(_c.mutation.VoterIDs()) == 0 {
		return &ValidationError{Name: "voter", err: errors.New(`ent: missing required edge "Vote.voter"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Vote.report"`)}
	}
	return nil
}

func (_c *VoteCreate) sqlSave(ctx context.Context) (*Vote, error) {
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

func (_c *VoteCreate) createSpec() (*Vote, *sqlgraph.CreateSpec) {
	var (
		_node = &Vote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vote.Table, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.VoteType(); ok {
		_spec.SetField(vote.FieldVoteType, field.TypeEnum, value)
		_node.VoteType = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(vote.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if nodes := _c.mutation.VoterIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vote.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VoteCreate) OnConflict(opts ...sql.ConflictOption) *VoteUpsertOne {
	_c.conflict = opts
	return &VoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VoteCreate) OnConflictColumns(columns ...string) *VoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VoteUpsertOne{
		create: _c,
	}
}

type (
	// VoteUpsertOne is the builder for "upsert"-ing
	//  one Vote node.
	VoteUpsertOne struct {
		create *VoteCreate
	}

	// VoteUpsert is the "OnConflict" setter.
	VoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VoteUpsert) SetUpdatedAt(v time.Time) *VoteUpsert {
	u.Set(vote.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VoteUpsert) UpdateUpdatedAt() *VoteUpsert {
	u.SetExcluded(vote.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *VoteUpsert) SetUserID(v uuid.UUID) *VoteUpsert {
	u.Set(vote.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VoteUpsert) UpdateUserID() *VoteUpsert {
	u.SetExcluded(vote.FieldUserID)
	return u
}

// SetReportID sets the "report_id" field.
func (u *VoteUpsert) SetReportID(v uuid.UUID) *VoteUpsert {
	u.Set(vote.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *VoteUpsert) UpdateReportID() *VoteUpsert {
	u.SetExcluded(vote.FieldReportID)
	return u
}

// SetVoteType sets the "vote_type" field.
func (u *VoteUpsert) SetVoteType(v vote.VoteType) *VoteUpsert {
	u.Set(vote.FieldVoteType, v)
	return u
}

// UpdateVoteType sets the "vote_type" field to the value that was provided on create.
func (u *VoteUpsert) UpdateVoteType() *VoteUpsert {
	u.SetExcluded(vote.FieldVoteType)
	return u
}

// SetReason sets the "reason" field.
func (u *VoteUpsert) SetReason(v string) *VoteUpsert {
	u.Set(vote.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *VoteUpsert) UpdateReason() *VoteUpsert {
	u.SetExcluded(vote.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *VoteUpsert) ClearReason() *VoteUpsert {
	u.SetNull(vote.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VoteUpsertOne) UpdateNewValues() *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vote.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(vote.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VoteUpsertOne) Ignore() *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VoteUpsertOne) DoNothing() *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VoteCreate.OnConflict
// documentation for more info.
func (u *VoteUpsertOne) Update(set func(*VoteUpsert)) *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VoteUpsertOne) SetUpdatedAt(v time.Time) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateUpdatedAt() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *VoteUpsertOne) SetUserID(v uuid.UUID) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateUserID() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateUserID()
	})
}

// SetReportID sets the "report_id" field.
func (u *VoteUpsertOne) SetReportID(v uuid.UUID) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateReportID() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateReportID()
	})
}

// SetVoteType sets the "vote_type" field.
func (u *VoteUpsertOne) SetVoteType(v vote.VoteType) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetVoteType(v)
	})
}

// UpdateVoteType sets the "vote_type" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateVoteType() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateVoteType()
	})
}

// SetReason sets the "reason" field.
func (u *VoteUpsertOne) SetReason(v string) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateReason() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *VoteUpsertOne) ClearReason() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *VoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VoteUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VoteUpsertOne.ID is not supported by MySQL driver. Use VoteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VoteUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VoteCreateBulk is the builder for creating many Vote entities in bulk.
type VoteCreateBulk struct {
	config
	err      error
	builders []*VoteCreate
	conflict []sql.ConflictOption
}

// Save creates the Vote entities in the database.
func (_c *VoteCreateBulk) Save(ctx context.Context) ([]*Vote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoteMutation)
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
func (_c *VoteCreateBulk) SaveX(ctx context.Context) []*Vote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *VoteUpsertBulk {
	_c.conflict = opts
	return &VoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VoteCreateBulk) OnConflictColumns(columns ...string) *VoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VoteUpsertBulk{
		create: _c,
	}
}

// VoteUpsertBulk is the builder for "upsert"-ing
// a bulk of Vote nodes.
type VoteUpsertBulk struct {
	create *VoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VoteUpsertBulk) UpdateNewValues() *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vote.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(vote.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VoteUpsertBulk) Ignore() *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VoteUpsertBulk) DoNothing() *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VoteCreateBulk.OnConflict
// documentation for more info.
func (u *VoteUpsertBulk) Update(set func(*VoteUpsert)) *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VoteUpsertBulk) SetUpdatedAt(v time.Time) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateUpdatedAt() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *VoteUpsertBulk) SetUserID(v uuid.UUID) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateUserID() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateUserID()
	})
}

// SetReportID sets the "report_id" field.
func (u *VoteUpsertBulk) SetReportID(v uuid.UUID) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateReportID() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateReportID()
	})
}

// SetVoteType sets the "vote_type" field.
func (u *VoteUpsertBulk) SetVoteType(v vote.VoteType) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetVoteType(v)
	})
}

// UpdateVoteType sets the "vote_type" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateVoteType() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateVoteType()
	})
}

// SetReason sets the "reason" field.
func (u *VoteUpsertBulk) SetReason(v string) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateReason() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *VoteUpsertBulk) ClearReason() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *VoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
