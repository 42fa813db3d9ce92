// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/comment"
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

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *UserCreate) SetFullName(v string) *UserCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *UserCreate) SetNillableFullName(v *string) *UserCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v user.Role) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *UserCreate) SetNillableRole(v *user.Role) *UserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetDepartmentCode sets the "department_code" field.
func (_c *UserCreate) SetDepartmentCode(v string) *UserCreate {
	_c.mutation.SetDepartmentCode(v)
	return _c
}

// SetNillableDepartmentCode sets the "department_code" field if the given value is not nil.
func (_c *UserCreate) SetNillableDepartmentCode(v *string) *UserCreate {
	if v != nil {
		_c.SetDepartmentCode(*v)
	}
	return _c
}

// SetTrustScore sets the "trust_score" field.
func (_c *UserCreate) SetTrustScore(v int) *UserCreate {
	_c.mutation.SetTrustScore(v)
	return _c
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_c *UserCreate) SetNillableTrustScore(v *int) *UserCreate {
	if v != nil {
		_c.SetTrustScore(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *UserCreate) SetPoints(v int) *UserCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *UserCreate) SetNillablePoints(v *int) *UserCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *UserCreate) SetLevel(v int) *UserCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *UserCreate) SetNillableLevel(v *int) *UserCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetBadges sets the "badges" field.
func (_c *UserCreate) SetBadges(v []string) *UserCreate {
	_c.mutation.SetBadges(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *UserCreate) SetStreak(v int) *UserCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *UserCreate) SetNillableStreak(v *int) *UserCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastReportDate sets the "last_report_date" field.
func (_c *UserCreate) SetLastReportDate(v time.Time) *UserCreate {
	_c.mutation.SetLastReportDate(v)
	return _c
}

// SetNillableLastReportDate sets the "last_report_date" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastReportDate(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastReportDate(*v)
	}
	return _c
}

// SetReportsSubmitted sets the "reports_submitted" field.
func (_c *UserCreate) SetReportsSubmitted(v int) *UserCreate {
	_c.mutation.SetReportsSubmitted(v)
	return _c
}

// SetNillableReportsSubmitted sets the "reports_submitted" field if the given value is not nil.
func (_c *UserCreate) SetNillableReportsSubmitted(v *int) *UserCreate {
	if v != nil {
		_c.SetReportsSubmitted(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *UserCreate) SetIsActive(v bool) *UserCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *UserCreate) SetNillableIsActive(v *bool) *UserCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v uuid.UUID) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserCreate) SetNillableID(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_c *UserCreate) AddReportIDs(ids ...uuid.UUID) *UserCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the Report entity.
func (_c *UserCreate) AddReports(v ...*Report) *UserCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_c *UserCreate) AddVoteIDs(ids ...uuid.UUID) *UserCreate {
	_c.mutation.AddVoteIDs(ids...)
	return _c
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_c *UserCreate) AddVotes(v ...*Vote) *UserCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVoteIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_c *UserCreate) AddCommentIDs(ids ...uuid.UUID) *UserCreate {
	_c.mutation.AddCommentIDs(ids...)
	return _c
}

// AddComments adds the "comments" edges to the Comment entity.
func (_c *UserCreate) AddComments(v ...*Comment) *UserCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommentIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := user.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.TrustScore(); !ok {
		v := user.DefaultTrustScore
		_c.mutation.SetTrustScore(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := user.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := user.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := user.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.ReportsSubmitted(); !ok {
		v := user.DefaultReportsSubmitted
		_c.mutation.SetReportsSubmitted(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := user.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := user.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := user.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "User.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "User.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DepartmentCode(); ok {
		if err := user.DepartmentCodeValidator(v); err != nil {
			return &ValidationError{Name: "department_code", err: fmt.Errorf(`ent: validator failed for field "User.department_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrustScore(); !ok {
		return &ValidationError{Name: "trust_score", err: errors.New(`ent: missing required field "User.trust_score"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "User.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := user.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "User.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "User.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := user.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "User.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "User.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := user.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "User.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReportsSubmitted(); !ok {
		return &ValidationError{Name: "reports_submitted", err: errors.New(`ent: missing required field "User.reports_submitted"`)}
	}
	if v, ok := _c.mutation.ReportsSubmitted(); ok {
		if err := user.ReportsSubmittedValidator(v); err != nil {
			return &ValidationError{Name: "reports_submitted", err: fmt.Errorf(`ent: validator failed for field "User.reports_submitted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "User.is_active"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(user.FieldFullName, field.TypeString, value)
		_node.FullName = &value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.DepartmentCode(); ok {
		_spec.SetField(user.FieldDepartmentCode, field.TypeString, value)
		_node.DepartmentCode = &value
	}
	if value, ok := _c.mutation.TrustScore(); ok {
		_spec.SetField(user.FieldTrustScore, field.TypeInt, value)
		_node.TrustScore = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(user.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Badges(); ok {
		_spec.SetField(user.FieldBadges, field.TypeJSON, value)
		_node.Badges = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(user.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastReportDate(); ok {
		_spec.SetField(user.FieldLastReportDate, field.TypeTime, value)
		_node.LastReportDate = &value
	}
	if value, ok := _c.mutation.ReportsSubmitted(); ok {
		_spec.SetField(user.FieldReportsSubmitted, field.TypeInt, value)
		_node.ReportsSubmitted = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ReportsTable,
			Columns: []string{user.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.VotesTable,
			Columns: []string{user.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CommentsTable,
			Columns: []string{user.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsert) SetUpdatedAt(v time.Time) *UserUpsert {
	u.Set(user.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateUpdatedAt() *UserUpsert {
	u.SetExcluded(user.FieldUpdatedAt)
	return u
}

// SetEmail sets the "email" field.
func (u *UserUpsert) SetEmail(v string) *UserUpsert {
	u.Set(user.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmail() *UserUpsert {
	u.SetExcluded(user.FieldEmail)
	return u
}

// SetFullName sets the "full_name" field.
func (u *UserUpsert) SetFullName(v string) *UserUpsert {
	u.Set(user.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *UserUpsert) UpdateFullName() *UserUpsert {
	u.SetExcluded(user.FieldFullName)
	return u
}

// ClearFullName clears the value of the "full_name" field.
func (u *UserUpsert) ClearFullName() *UserUpsert {
	u.SetNull(user.FieldFullName)
	return u
}

// SetRole sets the "role" field.
func (u *UserUpsert) SetRole(v user.Role) *UserUpsert {
	u.Set(user.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsert) UpdateRole() *UserUpsert {
	u.SetExcluded(user.FieldRole)
	return u
}

// SetDepartmentCode sets the "department_code" field.
func (u *UserUpsert) SetDepartmentCode(v string) *UserUpsert {
	u.Set(user.FieldDepartmentCode, v)
	return u
}

// UpdateDepartmentCode sets the "department_code" field to the value that was provided on create.
func (u *UserUpsert) UpdateDepartmentCode() *UserUpsert {
	u.SetExcluded(user.FieldDepartmentCode)
	return u
}

// ClearDepartmentCode clears the value of the "department_code" field.
func (u *UserUpsert) ClearDepartmentCode() *UserUpsert {
	u.SetNull(user.FieldDepartmentCode)
	return u
}

// SetTrustScore sets the "trust_score" field.
func (u *UserUpsert) SetTrustScore(v int) *UserUpsert {
	u.Set(user.FieldTrustScore, v)
	return u
}

// UpdateTrustScore sets the "trust_score" field to the value that was provided on create.
func (u *UserUpsert) UpdateTrustScore() *UserUpsert {
	u.SetExcluded(user.FieldTrustScore)
	return u
}

// AddTrustScore adds v to the "trust_score" field.
func (u *UserUpsert) AddTrustScore(v int) *UserUpsert {
	u.Add(user.FieldTrustScore, v)
	return u
}

// SetPoints sets the "points" field.
func (u *UserUpsert) SetPoints(v int) *UserUpsert {
	u.Set(user.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *UserUpsert) UpdatePoints() *UserUpsert {
	u.SetExcluded(user.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *UserUpsert) AddPoints(v int) *UserUpsert {
	u.Add(user.FieldPoints, v)
	return u
}

// SetLevel sets the "level" field.
func (u *UserUpsert) SetLevel(v int) *UserUpsert {
	u.Set(user.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserUpsert) UpdateLevel() *UserUpsert {
	u.SetExcluded(user.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *UserUpsert) AddLevel(v int) *UserUpsert {
	u.Add(user.FieldLevel, v)
	return u
}

// SetBadges sets the "badges" field.
func (u *UserUpsert) SetBadges(v []string) *UserUpsert {
	u.Set(user.FieldBadges, v)
	return u
}

// UpdateBadges sets the "badges" field to the value that was provided on create.
func (u *UserUpsert) UpdateBadges() *UserUpsert {
	u.SetExcluded(user.FieldBadges)
	return u
}

// ClearBadges clears the value of the "badges" field.
func (u *UserUpsert) ClearBadges() *UserUpsert {
	u.SetNull(user.FieldBadges)
	return u
}

// SetStreak sets the "streak" field.
func (u *UserUpsert) SetStreak(v int) *UserUpsert {
	u.Set(user.FieldStreak, v)
	return u
}

// UpdateStreak sets the "streak" field to the value that was provided on create.
func (u *UserUpsert) UpdateStreak() *UserUpsert {
	u.SetExcluded(user.FieldStreak)
	return u
}

// AddStreak adds v to the "streak" field.
func (u *UserUpsert) AddStreak(v int) *UserUpsert {
	u.Add(user.FieldStreak, v)
	return u
}

// SetLastReportDate sets the "last_report_date" field.
func (u *UserUpsert) SetLastReportDate(v time.Time) *UserUpsert {
	u.Set(user.FieldLastReportDate, v)
	return u
}

// UpdateLastReportDate sets the "last_report_date" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastReportDate() *UserUpsert {
	u.SetExcluded(user.FieldLastReportDate)
	return u
}

// ClearLastReportDate clears the value of the "last_report_date" field.
func (u *UserUpsert) ClearLastReportDate() *UserUpsert {
	u.SetNull(user.FieldLastReportDate)
	return u
}

// SetReportsSubmitted sets the "reports_submitted" field.
func (u *UserUpsert) SetReportsSubmitted(v int) *UserUpsert {
	u.Set(user.FieldReportsSubmitted, v)
	return u
}

// UpdateReportsSubmitted sets the "reports_submitted" field to the value that was provided on create.
func (u *UserUpsert) UpdateReportsSubmitted() *UserUpsert {
	u.SetExcluded(user.FieldReportsSubmitted)
	return u
}

// AddReportsSubmitted adds v to the "reports_submitted" field.
func (u *UserUpsert) AddReportsSubmitted(v int) *UserUpsert {
	u.Add(user.FieldReportsSubmitted, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *UserUpsert) SetIsActive(v bool) *UserUpsert {
	u.Set(user.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UserUpsert) UpdateIsActive() *UserUpsert {
	u.SetExcluded(user.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(user.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsertOne) SetUpdatedAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateUpdatedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertOne) SetEmail(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmail() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetFullName sets the "full_name" field.
func (u *UserUpsertOne) SetFullName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateFullName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFullName()
	})
}

// ClearFullName clears the value of the "full_name" field.
func (u *UserUpsertOne) ClearFullName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearFullName()
	})
}

// SetRole sets the "role" field.
func (u *UserUpsertOne) SetRole(v user.Role) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateRole() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateRole()
	})
}

// SetDepartmentCode sets the "department_code" field.
func (u *UserUpsertOne) SetDepartmentCode(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetDepartmentCode(v)
	})
}

// UpdateDepartmentCode sets the "department_code" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateDepartmentCode() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDepartmentCode()
	})
}

// ClearDepartmentCode clears the value of the "department_code" field.
func (u *UserUpsertOne) ClearDepartmentCode() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearDepartmentCode()
	})
}

// SetTrustScore sets the "trust_score" field.
func (u *UserUpsertOne) SetTrustScore(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetTrustScore(v)
	})
}

// AddTrustScore adds v to the "trust_score" field.
func (u *UserUpsertOne) AddTrustScore(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddTrustScore(v)
	})
}

// UpdateTrustScore sets the "trust_score" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateTrustScore() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTrustScore()
	})
}

// SetPoints sets the "points" field.
func (u *UserUpsertOne) SetPoints(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *UserUpsertOne) AddPoints(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePoints() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePoints()
	})
}

// SetLevel sets the "level" field.
func (u *UserUpsertOne) SetLevel(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *UserUpsertOne) AddLevel(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLevel() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLevel()
	})
}

// SetBadges sets the "badges" field.
func (u *UserUpsertOne) SetBadges(v []string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetBadges(v)
	})
}

// UpdateBadges sets the "badges" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateBadges() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateBadges()
	})
}

// ClearBadges clears the value of the "badges" field.
func (u *UserUpsertOne) ClearBadges() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearBadges()
	})
}

// SetStreak sets the "streak" field.
func (u *UserUpsertOne) SetStreak(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetStreak(v)
	})
}

// AddStreak adds v to the "streak" field.
func (u *UserUpsertOne) AddStreak(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddStreak(v)
	})
}

// UpdateStreak sets the "streak" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateStreak() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateStreak()
	})
}

// SetLastReportDate sets the "last_report_date" field.
func (u *UserUpsertOne) SetLastReportDate(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastReportDate(v)
	})
}

// UpdateLastReportDate sets the "last_report_date" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastReportDate() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastReportDate()
	})
}

// ClearLastReportDate clears the value of the "last_report_date" field.
func (u *UserUpsertOne) ClearLastReportDate() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastReportDate()
	})
}

// SetReportsSubmitted sets the "reports_submitted" field.
func (u *UserUpsertOne) SetReportsSubmitted(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetReportsSubmitted(v)
	})
}

// AddReportsSubmitted adds v to the "reports_submitted" field.
func (u *UserUpsertOne) AddReportsSubmitted(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddReportsSubmitted(v)
	})
}

// UpdateReportsSubmitted sets the "reports_submitted" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateReportsSubmitted() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateReportsSubmitted()
	})
}

// SetIsActive sets the "is_active" field.
func (u *UserUpsertOne) SetIsActive(v bool) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateIsActive() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserUpsertOne.ID is not supported by MySQL driver. Use UserUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(user.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsertBulk) SetUpdatedAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateUpdatedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertBulk) SetEmail(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmail() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetFullName sets the "full_name" field.
func (u *UserUpsertBulk) SetFullName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateFullName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFullName()
	})
}

// ClearFullName clears the value of the "full_name" field.
func (u *UserUpsertBulk) ClearFullName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearFullName()
	})
}

// SetRole sets the "role" field.
func (u *UserUpsertBulk) SetRole(v user.Role) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateRole() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateRole()
	})
}

// SetDepartmentCode sets the "department_code" field.
func (u *UserUpsertBulk) SetDepartmentCode(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetDepartmentCode(v)
	})
}

// UpdateDepartmentCode sets the "department_code" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateDepartmentCode() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDepartmentCode()
	})
}

// ClearDepartmentCode clears the value of the "department_code" field.
func (u *UserUpsertBulk) ClearDepartmentCode() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearDepartmentCode()
	})
}

// SetTrustScore sets the "trust_score" field.
func (u *UserUpsertBulk) SetTrustScore(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetTrustScore(v)
	})
}

// AddTrustScore adds v to the "trust_score" field.
func (u *UserUpsertBulk) AddTrustScore(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddTrustScore(v)
	})
}

// UpdateTrustScore sets the "trust_score" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateTrustScore() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTrustScore()
	})
}

// SetPoints sets the "points" field.
func (u *UserUpsertBulk) SetPoints(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *UserUpsertBulk) AddPoints(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePoints() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePoints()
	})
}

// SetLevel sets the "level" field.
func (u *UserUpsertBulk) SetLevel(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *UserUpsertBulk) AddLevel(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLevel() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLevel()
	})
}

// SetBadges sets the "badges" field.
func (u *UserUpsertBulk) SetBadges(v []string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetBadges(v)
	})
}

// UpdateBadges sets the "badges" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateBadges() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateBadges()
	})
}

// ClearBadges clears the value of the "badges" field.
func (u *UserUpsertBulk) ClearBadges() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearBadges()
	})
}

// SetStreak sets the "streak" field.
func (u *UserUpsertBulk) SetStreak(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetStreak(v)
	})
}

// AddStreak adds v to the "streak" field.
func (u *UserUpsertBulk) AddStreak(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddStreak(v)
	})
}

// UpdateStreak sets the "streak" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateStreak() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateStreak()
	})
}

// SetLastReportDate sets the "last_report_date" field.
func (u *UserUpsertBulk) SetLastReportDate(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastReportDate(v)
	})
}

// UpdateLastReportDate sets the "last_report_date" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastReportDate() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastReportDate()
	})
}

// ClearLastReportDate clears the value of the "last_report_date" field.
func (u *UserUpsertBulk) ClearLastReportDate() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastReportDate()
	})
}

// SetReportsSubmitted sets the "reports_submitted" field.
func (u *UserUpsertBulk) SetReportsSubmitted(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetReportsSubmitted(v)
	})
}

// AddReportsSubmitted adds v to the "reports_submitted" field.
func (u *UserUpsertBulk) AddReportsSubmitted(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddReportsSubmitted(v)
	})
}

// UpdateReportsSubmitted sets the "reports_submitted" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateReportsSubmitted() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateReportsSubmitted()
	})
}

// SetIsActive sets the "is_active" field.
func (u *UserUpsertBulk) SetIsActive(v bool) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateIsActive() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
