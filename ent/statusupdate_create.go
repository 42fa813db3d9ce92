// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
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

// StatusUpdateCreate is the builder for creating a StatusUpdate entity.
type StatusUpdateCreate struct {
	config
	mutation *StatusUpdateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReportID sets the "report_id" field.
func (_c *StatusUpdateCreate) SetReportID(v uuid.UUID) *StatusUpdateCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StatusUpdateCreate) SetStatus(v statusupdate.Status) *StatusUpdateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *StatusUpdateCreate) SetMessage(v string) *StatusUpdateCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *StatusUpdateCreate) SetNillableMessage(v *string) *StatusUpdateCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *StatusUpdateCreate) SetUpdatedBy(v uuid.UUID) *StatusUpdateCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *StatusUpdateCreate) SetNillableUpdatedBy(v *uuid.UUID) *StatusUpdateCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *StatusUpdateCreate) SetIsPublic(v bool) *StatusUpdateCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *StatusUpdateCreate) SetNillableIsPublic(v *bool) *StatusUpdateCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StatusUpdateCreate) SetCreatedAt(v time.Time) *StatusUpdateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StatusUpdateCreate) SetNillableCreatedAt(v *time.Time) *StatusUpdateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StatusUpdateCreate) SetID(v uuid.UUID) *StatusUpdateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StatusUpdateCreate) SetNillableID(v *uuid.UUID) *StatusUpdateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *StatusUpdateCreate) SetReport(v *Report) *StatusUpdateCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the StatusUpdateMutation object of the builder.
func (_c *StatusUpdateCreate) Mutation() *StatusUpdateMutation {
	return _c.mutation
}

// Save creates the StatusUpdate in the database.
func (_c *StatusUpdateCreate) Save(ctx context.Context) (*StatusUpdate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusUpdateCreate) SaveX(ctx context.Context) *StatusUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusUpdateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusUpdateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusUpdateCreate) defaults() {
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := statusupdate.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statusupdate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := statusupdate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusUpdateCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "StatusUpdate.report_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StatusUpdate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := statusupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StatusUpdate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`ent: missing required field "StatusUpdate.is_public"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StatusUpdate.created_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "StatusUpdate.report"`)}
	}
	return nil
}

func (_c *StatusUpdateCreate) sqlSave(ctx context.Context) (*StatusUpdate, error) {
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

func (_c *StatusUpdateCreate) createSpec() (*StatusUpdate, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusUpdate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statusupdate.Table, sqlgraph.NewFieldSpec(statusupdate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(statusupdate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(statusupdate.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(statusupdate.FieldUpdatedBy, field.TypeUUID, value)
		_node.UpdatedBy = &value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(statusupdate.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statusupdate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   statusupdate.ReportTable,
			Columns: []string{statusupdate.ReportColumn},
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
//	client.StatusUpdate.Create().
//		SetReportID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatusUpdateUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *StatusUpdateCreate) OnConflict(opts ...sql.ConflictOption) *StatusUpdateUpsertOne {
	_c.conflict = opts
	return &StatusUpdateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StatusUpdate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StatusUpdateCreate) OnConflictColumns(columns ...string) *StatusUpdateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StatusUpdateUpsertOne{
		create: _c,
	}
}

type (
	// StatusUpdateUpsertOne is the builder for "upsert"-ing
	//  one StatusUpdate node.
	StatusUpdateUpsertOne struct {
		create *StatusUpdateCreate
	}

	// StatusUpdateUpsert is the "OnConflict" setter.
	StatusUpdateUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StatusUpdate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(statusupdate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StatusUpdateUpsertOne) UpdateNewValues() *StatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(statusupdate.FieldID)
		}
		if _, exists := u.create.mutation.ReportID(); exists {
			s.SetIgnore(statusupdate.FieldReportID)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(statusupdate.FieldStatus)
		}
		if _, exists := u.create.mutation.Message(); exists {
			s.SetIgnore(statusupdate.FieldMessage)
		}
		if _, exists := u.create.mutation.UpdatedBy(); exists {
			s.SetIgnore(statusupdate.FieldUpdatedBy)
		}
		if _, exists := u.create.mutation.IsPublic(); exists {
			s.SetIgnore(statusupdate.FieldIsPublic)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(statusupdate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StatusUpdate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StatusUpdateUpsertOne) Ignore() *StatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatusUpdateUpsertOne) DoNothing() *StatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatusUpdateCreate.OnConflict
// documentation for more info.
func (u *StatusUpdateUpsertOne) Update(set func(*StatusUpdateUpsert)) *StatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatusUpdateUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *StatusUpdateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatusUpdateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatusUpdateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StatusUpdateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StatusUpdateUpsertOne.ID is not supported by MySQL driver. Use StatusUpdateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StatusUpdateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StatusUpdateCreateBulk is the builder for creating many StatusUpdate entities in bulk.
type StatusUpdateCreateBulk struct {
	config
	err      error
	builders []*StatusUpdateCreate
	conflict []sql.ConflictOption
}

// Save creates the StatusUpdate entities in the database.
func (_c *StatusUpdateCreateBulk) Save(ctx context.Context) ([]*StatusUpdate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusUpdate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusUpdateMutation)
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
func (_c *StatusUpdateCreateBulk) SaveX(ctx context.Context) []*StatusUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusUpdateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusUpdateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StatusUpdate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatusUpdateUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *StatusUpdateCreateBulk) OnConflict(opts ...sql.ConflictOption) *StatusUpdateUpsertBulk {
	_c.conflict = opts
	return &StatusUpdateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StatusUpdate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StatusUpdateCreateBulk) OnConflictColumns(columns ...string) *StatusUpdateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StatusUpdateUpsertBulk{
		create: _c,
	}
}

// StatusUpdateUpsertBulk is the builder for "upsert"-ing
// a bulk of StatusUpdate nodes.
type StatusUpdateUpsertBulk struct {
	create *StatusUpdateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StatusUpdate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(statusupdate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StatusUpdateUpsertBulk) UpdateNewValues() *StatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(statusupdate.FieldID)
			}
			if _, exists := b.mutation.ReportID(); exists {
				s.SetIgnore(statusupdate.FieldReportID)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(statusupdate.FieldStatus)
			}
			if _, exists := b.mutation.Message(); exists {
				s.SetIgnore(statusupdate.FieldMessage)
			}
			if _, exists := b.mutation.UpdatedBy(); exists {
				s.SetIgnore(statusupdate.FieldUpdatedBy)
			}
			if _, exists := b.mutation.IsPublic(); exists {
				s.SetIgnore(statusupdate.FieldIsPublic)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(statusupdate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StatusUpdate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StatusUpdateUpsertBulk) Ignore() *StatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatusUpdateUpsertBulk) DoNothing() *StatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatusUpdateCreateBulk.OnConflict
// documentation for more info.
func (u *StatusUpdateUpsertBulk) Update(set func(*StatusUpdateUpsert)) *StatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatusUpdateUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *StatusUpdateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StatusUpdateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatusUpdateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatusUpdateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
