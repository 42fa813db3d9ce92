// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/comment"
	"CivicPulseAPI/ent/department"
	"CivicPulseAPI/ent/predicate"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
	"CivicPulseAPI/internal/model"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeComment      = "Comment"
	TypeDepartment   = "Department"
	TypeReport       = "Report"
	TypeStatusUpdate = "StatusUpdate"
	TypeUser         = "User"
	TypeVote         = "Vote"
)

// CommentMutation represents an operation that mutates the Comment nodes in the graph.
type CommentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	message       *string
	is_public     *bool
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	author        *uuid.UUID
	clearedauthor bool
	done          bool
	oldValue      func(context.Context) (*Comment, error)
	predicates    []predicate.Comment
}

var _ ent.Mutation = (*CommentMutation)(nil)

// commentOption allows management of the mutation configuration using functional options.
type commentOption func(*CommentMutation)

// newCommentMutation creates new mutation for the Comment entity.
func newCommentMutation(c config, op Op, opts ...commentOption) *CommentMutation {
	m := &CommentMutation{
		config:        c,
		op:            op,
		typ:           TypeComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommentID sets the ID field of the mutation.
func withCommentID(id uuid.UUID) commentOption {
	return func(m *CommentMutation) {
		var (
			err   error
			once  sync.Once
			value *Comment
		)
		m.oldValue = func(ctx context.Context) (*Comment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComment sets the old Comment of the mutation.
func withComment(node *Comment) commentOption {
	return func(m *CommentMutation) {
		m.oldValue = func(context.Context) (*Comment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comment entities.
func (m *CommentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReportID sets the "report_id" field.
func (m *CommentMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *CommentMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *CommentMutation) ResetReportID() {
	m.report = nil
}

// SetUserID sets the "user_id" field.
func (m *CommentMutation) SetUserID(u uuid.UUID) {
	m.author = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CommentMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldUserID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *CommentMutation) ClearUserID() {
	m.author = nil
	m.clearedFields[comment.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *CommentMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[comment.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CommentMutation) ResetUserID() {
	m.author = nil
	delete(m.clearedFields, comment.FieldUserID)
}

// SetMessage sets the "message" field.
func (m *CommentMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *CommentMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *CommentMutation) ResetMessage() {
	m.message = nil
}

// SetIsPublic sets the "is_public" field.
func (m *CommentMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *CommentMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *CommentMutation) ResetIsPublic() {
	m.is_public = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *CommentMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[comment.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *CommentMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *CommentMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *CommentMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// SetAuthorID sets the "author" edge to the User entity by id.
func (m *CommentMutation) SetAuthorID(id uuid.UUID) {
	m.author = &id
}

// ClearAuthor clears the "author" edge to the User entity.
func (m *CommentMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[comment.FieldUserID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the User entity was cleared.
func (m *CommentMutation) AuthorCleared() bool {
	return m.UserIDCleared() || m.clearedauthor
}

// AuthorID returns the "author" edge ID in the mutation.
func (m *CommentMutation) AuthorID() (id uuid.UUID, exists bool) {
	if m.author != nil {
		return *m.author, true
	}
	return
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *CommentMutation) AuthorIDs() (ids []uuid.UUID) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *CommentMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// Where appends a list predicates to the CommentMutation builder.
func (m *CommentMutation) Where(ps ...predicate.Comment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comment).
func (m *CommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, comment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, comment.FieldUpdatedAt)
	}
	if m.report != nil {
		fields = append(fields, comment.FieldReportID)
	}
	if m.author != nil {
		fields = append(fields, comment.FieldUserID)
	}
	if m.message != nil {
		fields = append(fields, comment.FieldMessage)
	}
	if m.is_public != nil {
		fields = append(fields, comment.FieldIsPublic)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldCreatedAt:
		return m.CreatedAt()
	case comment.FieldUpdatedAt:
		return m.UpdatedAt()
	case comment.FieldReportID:
		return m.ReportID()
	case comment.FieldUserID:
		return m.UserID()
	case comment.FieldMessage:
		return m.Message()
	case comment.FieldIsPublic:
		return m.IsPublic()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case comment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case comment.FieldReportID:
		return m.OldReportID(ctx)
	case comment.FieldUserID:
		return m.OldUserID(ctx)
	case comment.FieldMessage:
		return m.OldMessage(ctx)
	case comment.FieldIsPublic:
		return m.OldIsPublic(ctx)
	}
	return nil, fmt.Errorf("unknown Comment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case comment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case comment.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case comment.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case comment.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case comment.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Comment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comment.FieldUserID) {
		fields = append(fields, comment.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommentMutation) ClearField(name string) error {
	switch name {
	case comment.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown Comment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommentMutation) ResetField(name string) error {
	switch name {
	case comment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case comment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case comment.FieldReportID:
		m.ResetReportID()
		return nil
	case comment.FieldUserID:
		m.ResetUserID()
		return nil
	case comment.FieldMessage:
		m.ResetMessage()
		return nil
	case comment.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, comment.EdgeReport)
	}
	if m.author != nil {
		edges = append(edges, comment.EdgeAuthor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case comment.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case comment.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, comment.EdgeReport)
	}
	if m.clearedauthor {
		edges = append(edges, comment.EdgeAuthor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommentMutation) EdgeCleared(name string) bool {
	switch name {
	case comment.EdgeReport:
		return m.clearedreport
	case comment.EdgeAuthor:
		return m.clearedauthor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommentMutation) ClearEdge(name string) error {
	switch name {
	case comment.EdgeReport:
		m.ClearReport()
		return nil
	case comment.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown Comment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommentMutation) ResetEdge(name string) error {
	switch name {
	case comment.EdgeReport:
		m.ResetReport()
		return nil
	case comment.EdgeAuthor:
		m.ResetAuthor()
		return nil
	}
	return fmt.Errorf("unknown Comment edge %s", name)
}

// DepartmentMutation represents an operation that mutates the Department nodes in the graph.
type DepartmentMutation struct {
	config
	op                            Op
	typ                           string
	id                            *uuid.UUID
	created_at                    *time.Time
	updated_at                    *time.Time
	code                          *string
	name                          *string
	description                   *string
	categories                    *[]string
	appendcategories              []string
	response_hours                *float64
	addresponse_hours             *float64
	resolution_hours              *float64
	addresolution_hours           *float64
	escalation_threshold_hours    *float64
	addescalation_threshold_hours *float64
	is_active                     *bool
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*Department, error)
	predicates                    []predicate.Department
}

var _ ent.Mutation = (*DepartmentMutation)(nil)

// departmentOption allows management of the mutation configuration using functional options.
type departmentOption func(*DepartmentMutation)

// newDepartmentMutation creates new mutation for the Department entity.
func newDepartmentMutation(c config, op Op, opts ...departmentOption) *DepartmentMutation {
	m := &DepartmentMutation{
		config:        c,
		op:            op,
		typ:           TypeDepartment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDepartmentID sets the ID field of the mutation.
func withDepartmentID(id uuid.UUID) departmentOption {
	return func(m *DepartmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Department
		)
		m.oldValue = func(ctx context.Context) (*Department, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Department.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDepartment sets the old Department of the mutation.
func withDepartment(node *Department) departmentOption {
	return func(m *DepartmentMutation) {
		m.oldValue = func(context.Context) (*Department, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DepartmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DepartmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Department entities.
func (m *DepartmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DepartmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DepartmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Department.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DepartmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DepartmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DepartmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DepartmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DepartmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DepartmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCode sets the "code" field.
func (m *DepartmentMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *DepartmentMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *DepartmentMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *DepartmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DepartmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DepartmentMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *DepartmentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DepartmentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DepartmentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[department.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DepartmentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[department.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DepartmentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, department.FieldDescription)
}

// SetCategories sets the "categories" field.
func (m *DepartmentMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *DepartmentMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *DepartmentMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *DepartmentMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *DepartmentMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[department.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *DepartmentMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[department.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *DepartmentMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, department.FieldCategories)
}

// SetResponseHours sets the "response_hours" field.
func (m *DepartmentMutation) SetResponseHours(f float64) {
	m.response_hours = &f
	m.addresponse_hours = nil
}

// ResponseHours returns the value of the "response_hours" field in the mutation.
func (m *DepartmentMutation) ResponseHours() (r float64, exists bool) {
	v := m.response_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseHours returns the old "response_hours" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldResponseHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseHours: %w", err)
	}
	return oldValue.ResponseHours, nil
}

// AddResponseHours adds f to the "response_hours" field.
func (m *DepartmentMutation) AddResponseHours(f float64) {
	if m.addresponse_hours != nil {
		*m.addresponse_hours += f
	} else {
		m.addresponse_hours = &f
	}
}

// AddedResponseHours returns the value that was added to the "response_hours" field in this mutation.
func (m *DepartmentMutation) AddedResponseHours() (r float64, exists bool) {
	v := m.addresponse_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseHours resets all changes to the "response_hours" field.
func (m *DepartmentMutation) ResetResponseHours() {
	m.response_hours = nil
	m.addresponse_hours = nil
}

// SetResolutionHours sets the "resolution_hours" field.
func (m *DepartmentMutation) SetResolutionHours(f float64) {
	m.resolution_hours = &f
	m.addresolution_hours = nil
}

// ResolutionHours returns the value of the "resolution_hours" field in the mutation.
func (m *DepartmentMutation) ResolutionHours() (r float64, exists bool) {
	v := m.resolution_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionHours returns the old "resolution_hours" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldResolutionHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionHours: %w", err)
	}
	return oldValue.ResolutionHours, nil
}

// AddResolutionHours adds f to the "resolution_hours" field.
func (m *DepartmentMutation) AddResolutionHours(f float64) {
	if m.addresolution_hours != nil {
		*m.addresolution_hours += f
	} else {
		m.addresolution_hours = &f
	}
}

// AddedResolutionHours returns the value that was added to the "resolution_hours" field in this mutation.
func (m *DepartmentMutation) AddedResolutionHours() (r float64, exists bool) {
	v := m.addresolution_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetResolutionHours resets all changes to the "resolution_hours" field.
func (m *DepartmentMutation) ResetResolutionHours() {
	m.resolution_hours = nil
	m.addresolution_hours = nil
}

// SetEscalationThresholdHours sets the "escalation_threshold_hours" field.
func (m *DepartmentMutation) SetEscalationThresholdHours(f float64) {
	m.escalation_threshold_hours = &f
	m.addescalation_threshold_hours = nil
}

// EscalationThresholdHours returns the value of the "escalation_threshold_hours" field in the mutation.
func (m *DepartmentMutation) EscalationThresholdHours() (r float64, exists bool) {
	v := m.escalation_threshold_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationThresholdHours returns the old "escalation_threshold_hours" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldEscalationThresholdHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationThresholdHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationThresholdHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationThresholdHours: %w", err)
	}
	return oldValue.EscalationThresholdHours, nil
}

// AddEscalationThresholdHours adds f to the "escalation_threshold_hours" field.
func (m *DepartmentMutation) AddEscalationThresholdHours(f float64) {
	if m.addescalation_threshold_hours != nil {
		*m.addescalation_threshold_hours += f
	} else {
		m.addescalation_threshold_hours = &f
	}
}

// AddedEscalationThresholdHours returns the value that was added to the "escalation_threshold_hours" field in this mutation.
func (m *DepartmentMutation) AddedEscalationThresholdHours() (r float64, exists bool) {
	v := m.addescalation_threshold_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationThresholdHours resets all changes to the "escalation_threshold_hours" field.
func (m *DepartmentMutation) ResetEscalationThresholdHours() {
	m.escalation_threshold_hours = nil
	m.addescalation_threshold_hours = nil
}

// SetIsActive sets the "is_active" field.
func (m *DepartmentMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DepartmentMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Department entity.
// If the Department object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DepartmentMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the DepartmentMutation builder.
func (m *DepartmentMutation) Where(ps ...predicate.Department) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DepartmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DepartmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Department, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DepartmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DepartmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Department).
func (m *DepartmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DepartmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, department.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, department.FieldUpdatedAt)
	}
	if m.code != nil {
		fields = append(fields, department.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, department.FieldName)
	}
	if m.description != nil {
		fields = append(fields, department.FieldDescription)
	}
	if m.categories != nil {
		fields = append(fields, department.FieldCategories)
	}
	if m.response_hours != nil {
		fields = append(fields, department.FieldResponseHours)
	}
	if m.resolution_hours != nil {
		fields = append(fields, department.FieldResolutionHours)
	}
	if m.escalation_threshold_hours != nil {
		fields = append(fields, department.FieldEscalationThresholdHours)
	}
	if m.is_active != nil {
		fields = append(fields, department.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DepartmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case department.FieldCreatedAt:
		return m.CreatedAt()
	case department.FieldUpdatedAt:
		return m.UpdatedAt()
	case department.FieldCode:
		return m.Code()
	case department.FieldName:
		return m.Name()
	case department.FieldDescription:
		return m.Description()
	case department.FieldCategories:
		return m.Categories()
	case department.FieldResponseHours:
		return m.ResponseHours()
	case department.FieldResolutionHours:
		return m.ResolutionHours()
	case department.FieldEscalationThresholdHours:
		return m.EscalationThresholdHours()
	case department.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DepartmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case department.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case department.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case department.FieldCode:
		return m.OldCode(ctx)
	case department.FieldName:
		return m.OldName(ctx)
	case department.FieldDescription:
		return m.OldDescription(ctx)
	case department.FieldCategories:
		return m.OldCategories(ctx)
	case department.FieldResponseHours:
		return m.OldResponseHours(ctx)
	case department.FieldResolutionHours:
		return m.OldResolutionHours(ctx)
	case department.FieldEscalationThresholdHours:
		return m.OldEscalationThresholdHours(ctx)
	case department.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Department field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case department.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case department.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case department.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case department.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case department.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case department.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case department.FieldResponseHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseHours(v)
		return nil
	case department.FieldResolutionHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionHours(v)
		return nil
	case department.FieldEscalationThresholdHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationThresholdHours(v)
		return nil
	case department.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DepartmentMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_hours != nil {
		fields = append(fields, department.FieldResponseHours)
	}
	if m.addresolution_hours != nil {
		fields = append(fields, department.FieldResolutionHours)
	}
	if m.addescalation_threshold_hours != nil {
		fields = append(fields, department.FieldEscalationThresholdHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DepartmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case department.FieldResponseHours:
		return m.AddedResponseHours()
	case department.FieldResolutionHours:
		return m.AddedResolutionHours()
	case department.FieldEscalationThresholdHours:
		return m.AddedEscalationThresholdHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case department.FieldResponseHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseHours(v)
		return nil
	case department.FieldResolutionHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResolutionHours(v)
		return nil
	case department.FieldEscalationThresholdHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationThresholdHours(v)
		return nil
	}
	return fmt.Errorf("unknown Department numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DepartmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(department.FieldDescription) {
		fields = append(fields, department.FieldDescription)
	}
	if m.FieldCleared(department.FieldCategories) {
		fields = append(fields, department.FieldCategories)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DepartmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DepartmentMutation) ClearField(name string) error {
	switch name {
	case department.FieldDescription:
		m.ClearDescription()
		return nil
	case department.FieldCategories:
		m.ClearCategories()
		return nil
	}
	return fmt.Errorf("unknown Department nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DepartmentMutation) ResetField(name string) error {
	switch name {
	case department.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case department.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case department.FieldCode:
		m.ResetCode()
		return nil
	case department.FieldName:
		m.ResetName()
		return nil
	case department.FieldDescription:
		m.ResetDescription()
		return nil
	case department.FieldCategories:
		m.ResetCategories()
		return nil
	case department.FieldResponseHours:
		m.ResetResponseHours()
		return nil
	case department.FieldResolutionHours:
		m.ResetResolutionHours()
		return nil
	case department.FieldEscalationThresholdHours:
		m.ResetEscalationThresholdHours()
		return nil
	case department.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Department field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DepartmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DepartmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DepartmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DepartmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DepartmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DepartmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DepartmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Department unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DepartmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Department edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	report_number                *string
	title                        *string
	description                  *string
	category                     *report.Category
	subcategory                  *string
	priority                     *report.Priority
	ai_priority_score            *float64
	addai_priority_score         *float64
	longitude                    *float64
	addlongitude                 *float64
	latitude                     *float64
	addlatitude                  *float64
	street                       *string
	city                         *string
	state                        *string
	zip_code                     *string
	country                      *string
	landmark                     *string
	media                        *[]model.MediaRef
	appendmedia                  []model.MediaRef
	tags                         *[]string
	appendtags                   []string
	is_anonymous                 *bool
	is_public                    *bool
	is_featured                  *bool
	status                       *report.Status
	status_changed_at            *time.Time
	assigned_department_code     *string
	is_validated                 *bool
	validated_by                 *uuid.UUID
	validated_at                 *time.Time
	validation_notes             *string
	upvotes                      *int
	addupvotes                   *int
	downvotes                    *int
	adddownvotes                 *int
	total_votes                  *int
	addtotal_votes               *int
	views                        *int
	addviews                     *int
	shares                       *int
	addshares                    *int
	expected_resolution_hours    *float64
	addexpected_resolution_hours *float64
	actual_resolution_hours      *float64
	addactual_resolution_hours   *float64
	is_overdue                   *bool
	escalation_level             *int
	addescalation_level          *int
	last_escalated_at            *time.Time
	resolved_at                  *time.Time
	resolved_by                  *uuid.UUID
	resolution_notes             *string
	satisfaction_rating          *int
	addsatisfaction_rating       *int
	clearedFields                map[string]struct{}
	reporter                     *uuid.UUID
	clearedreporter              bool
	duplicate_of                 *uuid.UUID
	clearedduplicate_of          bool
	duplicates                   map[uuid.UUID]struct{}
	removedduplicates            map[uuid.UUID]struct{}
	clearedduplicates            bool
	votes                        map[uuid.UUID]struct{}
	removedvotes                 map[uuid.UUID]struct{}
	clearedvotes                 bool
	status_updates               map[uuid.UUID]struct{}
	removedstatus_updates        map[uuid.UUID]struct{}
	clearedstatus_updates        bool
	comments                     map[uuid.UUID]struct{}
	removedcomments              map[uuid.UUID]struct{}
	clearedcomments              bool
	done                         bool
	oldValue                     func(context.Context) (*Report, error)
	predicates                   []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReportNumber sets the "report_number" field.
func (m *ReportMutation) SetReportNumber(s string) {
	m.report_number = &s
}

// ReportNumber returns the value of the "report_number" field in the mutation.
func (m *ReportMutation) ReportNumber() (r string, exists bool) {
	v := m.report_number
	if v == nil {
		return
	}
	return *v, true
}

// OldReportNumber returns the old "report_number" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReportNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportNumber: %w", err)
	}
	return oldValue.ReportNumber, nil
}

// ResetReportNumber resets all changes to the "report_number" field.
func (m *ReportMutation) ResetReportNumber() {
	m.report_number = nil
}

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ReportMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ReportMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ReportMutation) ResetDescription() {
	m.description = nil
}

// SetCategory sets the "category" field.
func (m *ReportMutation) SetCategory(r report.Category) {
	m.category = &r
}

// Category returns the value of the "category" field in the mutation.
func (m *ReportMutation) Category() (r report.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCategory(ctx context.Context) (v report.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ReportMutation) ResetCategory() {
	m.category = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *ReportMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *ReportMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSubcategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *ReportMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[report.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *ReportMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[report.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *ReportMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, report.FieldSubcategory)
}

// SetPriority sets the "priority" field.
func (m *ReportMutation) SetPriority(r report.Priority) {
	m.priority = &r
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ReportMutation) Priority() (r report.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldPriority(ctx context.Context) (v report.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ReportMutation) ResetPriority() {
	m.priority = nil
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (m *ReportMutation) SetAiPriorityScore(f float64) {
	m.ai_priority_score = &f
	m.addai_priority_score = nil
}

// AiPriorityScore returns the value of the "ai_priority_score" field in the mutation.
func (m *ReportMutation) AiPriorityScore() (r float64, exists bool) {
	v := m.ai_priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAiPriorityScore returns the old "ai_priority_score" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldAiPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiPriorityScore: %w", err)
	}
	return oldValue.AiPriorityScore, nil
}

// AddAiPriorityScore adds f to the "ai_priority_score" field.
func (m *ReportMutation) AddAiPriorityScore(f float64) {
	if m.addai_priority_score != nil {
		*m.addai_priority_score += f
	} else {
		m.addai_priority_score = &f
	}
}

// AddedAiPriorityScore returns the value that was added to the "ai_priority_score" field in this mutation.
func (m *ReportMutation) AddedAiPriorityScore() (r float64, exists bool) {
	v := m.addai_priority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiPriorityScore resets all changes to the "ai_priority_score" field.
func (m *ReportMutation) ResetAiPriorityScore() {
	m.ai_priority_score = nil
	m.addai_priority_score = nil
}

// SetLongitude sets the "longitude" field.
func (m *ReportMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *ReportMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *ReportMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *ReportMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *ReportMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetLatitude sets the "latitude" field.
func (m *ReportMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *ReportMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *ReportMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *ReportMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *ReportMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetStreet sets the "street" field.
func (m *ReportMutation) SetStreet(s string) {
	m.street = &s
}

// Street returns the value of the "street" field in the mutation.
func (m *ReportMutation) Street() (r string, exists bool) {
	v := m.street
	if v == nil {
		return
	}
	return *v, true
}

// OldStreet returns the old "street" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStreet(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreet: %w", err)
	}
	return oldValue.Street, nil
}

// ClearStreet clears the value of the "street" field.
func (m *ReportMutation) ClearStreet() {
	m.street = nil
	m.clearedFields[report.FieldStreet] = struct{}{}
}

// StreetCleared returns if the "street" field was cleared in this mutation.
func (m *ReportMutation) StreetCleared() bool {
	_, ok := m.clearedFields[report.FieldStreet]
	return ok
}

// ResetStreet resets all changes to the "street" field.
func (m *ReportMutation) ResetStreet() {
	m.street = nil
	delete(m.clearedFields, report.FieldStreet)
}

// SetCity sets the "city" field.
func (m *ReportMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ReportMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *ReportMutation) ResetCity() {
	m.city = nil
}

// SetState sets the "state" field.
func (m *ReportMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ReportMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ReportMutation) ClearState() {
	m.state = nil
	m.clearedFields[report.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ReportMutation) StateCleared() bool {
	_, ok := m.clearedFields[report.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ReportMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, report.FieldState)
}

// SetZipCode sets the "zip_code" field.
func (m *ReportMutation) SetZipCode(s string) {
	m.zip_code = &s
}

// ZipCode returns the value of the "zip_code" field in the mutation.
func (m *ReportMutation) ZipCode() (r string, exists bool) {
	v := m.zip_code
	if v == nil {
		return
	}
	return *v, true
}

// OldZipCode returns the old "zip_code" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldZipCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZipCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZipCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZipCode: %w", err)
	}
	return oldValue.ZipCode, nil
}

// ClearZipCode clears the value of the "zip_code" field.
func (m *ReportMutation) ClearZipCode() {
	m.zip_code = nil
	m.clearedFields[report.FieldZipCode] = struct{}{}
}

// ZipCodeCleared returns if the "zip_code" field was cleared in this mutation.
func (m *ReportMutation) ZipCodeCleared() bool {
	_, ok := m.clearedFields[report.FieldZipCode]
	return ok
}

// ResetZipCode resets all changes to the "zip_code" field.
func (m *ReportMutation) ResetZipCode() {
	m.zip_code = nil
	delete(m.clearedFields, report.FieldZipCode)
}

// SetCountry sets the "country" field.
func (m *ReportMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *ReportMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *ReportMutation) ResetCountry() {
	m.country = nil
}

// SetLandmark sets the "landmark" field.
func (m *ReportMutation) SetLandmark(s string) {
	m.landmark = &s
}

// Landmark returns the value of the "landmark" field in the mutation.
func (m *ReportMutation) Landmark() (r string, exists bool) {
	v := m.landmark
	if v == nil {
		return
	}
	return *v, true
}

// OldLandmark returns the old "landmark" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLandmark(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLandmark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLandmark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLandmark: %w", err)
	}
	return oldValue.Landmark, nil
}

// ClearLandmark clears the value of the "landmark" field.
func (m *ReportMutation) ClearLandmark() {
	m.landmark = nil
	m.clearedFields[report.FieldLandmark] = struct{}{}
}

// LandmarkCleared returns if the "landmark" field was cleared in this mutation.
func (m *ReportMutation) LandmarkCleared() bool {
	_, ok := m.clearedFields[report.FieldLandmark]
	return ok
}

// ResetLandmark resets all changes to the "landmark" field.
func (m *ReportMutation) ResetLandmark() {
	m.landmark = nil
	delete(m.clearedFields, report.FieldLandmark)
}

// SetMedia sets the "media" field.
func (m *ReportMutation) SetMedia(mr []model.MediaRef) {
	m.media = &mr
	m.appendmedia = nil
}

// Media returns the value of the "media" field in the mutation.
func (m *ReportMutation) Media() (r []model.MediaRef, exists bool) {
	v := m.media
	if v == nil {
		return
	}
	return *v, true
}

// OldMedia returns the old "media" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldMedia(ctx context.Context) (v []model.MediaRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedia: %w", err)
	}
	return oldValue.Media, nil
}

// AppendMedia adds mr to the "media" field.
func (m *ReportMutation) AppendMedia(mr []model.MediaRef) {
	m.appendmedia = append(m.appendmedia, mr...)
}

// AppendedMedia returns the list of values that were appended to the "media" field in this mutation.
func (m *ReportMutation) AppendedMedia() ([]model.MediaRef, bool) {
	if len(m.appendmedia) == 0 {
		return nil, false
	}
	return m.appendmedia, true
}

// ClearMedia clears the value of the "media" field.
func (m *ReportMutation) ClearMedia() {
	m.media = nil
	m.appendmedia = nil
	m.clearedFields[report.FieldMedia] = struct{}{}
}

// MediaCleared returns if the "media" field was cleared in this mutation.
func (m *ReportMutation) MediaCleared() bool {
	_, ok := m.clearedFields[report.FieldMedia]
	return ok
}

// ResetMedia resets all changes to the "media" field.
func (m *ReportMutation) ResetMedia() {
	m.media = nil
	m.appendmedia = nil
	delete(m.clearedFields, report.FieldMedia)
}

// SetTags sets the "tags" field.
func (m *ReportMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ReportMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ReportMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ReportMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ReportMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[report.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ReportMutation) TagsCleared() bool {
	_, ok := m.clearedFields[report.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ReportMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, report.FieldTags)
}

// SetReporterID sets the "reporter_id" field.
func (m *ReportMutation) SetReporterID(u uuid.UUID) {
	m.reporter = &u
}

// ReporterID returns the value of the "reporter_id" field in the mutation.
func (m *ReportMutation) ReporterID() (r uuid.UUID, exists bool) {
	v := m.reporter
	if v == nil {
		return
	}
	return *v, true
}

// OldReporterID returns the old "reporter_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReporterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReporterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReporterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReporterID: %w", err)
	}
	return oldValue.ReporterID, nil
}

// ResetReporterID resets all changes to the "reporter_id" field.
func (m *ReportMutation) ResetReporterID() {
	m.reporter = nil
}

// SetIsAnonymous sets the "is_anonymous" field.
func (m *ReportMutation) SetIsAnonymous(b bool) {
	m.is_anonymous = &b
}

// IsAnonymous returns the value of the "is_anonymous" field in the mutation.
func (m *ReportMutation) IsAnonymous() (r bool, exists bool) {
	v := m.is_anonymous
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAnonymous returns the old "is_anonymous" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldIsAnonymous(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAnonymous is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAnonymous requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAnonymous: %w", err)
	}
	return oldValue.IsAnonymous, nil
}

// ResetIsAnonymous resets all changes to the "is_anonymous" field.
func (m *ReportMutation) ResetIsAnonymous() {
	m.is_anonymous = nil
}

// SetIsPublic sets the "is_public" field.
func (m *ReportMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *ReportMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *ReportMutation) ResetIsPublic() {
	m.is_public = nil
}

// SetIsFeatured sets the "is_featured" field.
func (m *ReportMutation) SetIsFeatured(b bool) {
	m.is_featured = &b
}

// IsFeatured returns the value of the "is_featured" field in the mutation.
func (m *ReportMutation) IsFeatured() (r bool, exists bool) {
	v := m.is_featured
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFeatured returns the old "is_featured" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldIsFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFeatured: %w", err)
	}
	return oldValue.IsFeatured, nil
}

// ResetIsFeatured resets all changes to the "is_featured" field.
func (m *ReportMutation) ResetIsFeatured() {
	m.is_featured = nil
}

// SetStatus sets the "status" field.
func (m *ReportMutation) SetStatus(r report.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportMutation) Status() (r report.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStatus(ctx context.Context) (v report.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReportMutation) ResetStatus() {
	m.status = nil
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *ReportMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *ReportMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *ReportMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (m *ReportMutation) SetAssignedDepartmentCode(s string) {
	m.assigned_department_code = &s
}

// AssignedDepartmentCode returns the value of the "assigned_department_code" field in the mutation.
func (m *ReportMutation) AssignedDepartmentCode() (r string, exists bool) {
	v := m.assigned_department_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedDepartmentCode returns the old "assigned_department_code" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldAssignedDepartmentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedDepartmentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedDepartmentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedDepartmentCode: %w", err)
	}
	return oldValue.AssignedDepartmentCode, nil
}

// ClearAssignedDepartmentCode clears the value of the "assigned_department_code" field.
func (m *ReportMutation) ClearAssignedDepartmentCode() {
	m.assigned_department_code = nil
	m.clearedFields[report.FieldAssignedDepartmentCode] = struct{}{}
}

// AssignedDepartmentCodeCleared returns if the "assigned_department_code" field was cleared in this mutation.
func (m *ReportMutation) AssignedDepartmentCodeCleared() bool {
	_, ok := m.clearedFields[report.FieldAssignedDepartmentCode]
	return ok
}

// ResetAssignedDepartmentCode resets all changes to the "assigned_department_code" field.
func (m *ReportMutation) ResetAssignedDepartmentCode() {
	m.assigned_department_code = nil
	delete(m.clearedFields, report.FieldAssignedDepartmentCode)
}

// SetIsValidated sets the "is_validated" field.
func (m *ReportMutation) SetIsValidated(b bool) {
	m.is_validated = &b
}

// IsValidated returns the value of the "is_validated" field in the mutation.
func (m *ReportMutation) IsValidated() (r bool, exists bool) {
	v := m.is_validated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValidated returns the old "is_validated" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldIsValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValidated: %w", err)
	}
	return oldValue.IsValidated, nil
}

// ResetIsValidated resets all changes to the "is_validated" field.
func (m *ReportMutation) ResetIsValidated() {
	m.is_validated = nil
}

// SetValidatedBy sets the "validated_by" field.
func (m *ReportMutation) SetValidatedBy(u uuid.UUID) {
	m.validated_by = &u
}

// ValidatedBy returns the value of the "validated_by" field in the mutation.
func (m *ReportMutation) ValidatedBy() (r uuid.UUID, exists bool) {
	v := m.validated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedBy returns the old "validated_by" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldValidatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedBy: %w", err)
	}
	return oldValue.ValidatedBy, nil
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (m *ReportMutation) ClearValidatedBy() {
	m.validated_by = nil
	m.clearedFields[report.FieldValidatedBy] = struct{}{}
}

// ValidatedByCleared returns if the "validated_by" field was cleared in this mutation.
func (m *ReportMutation) ValidatedByCleared() bool {
	_, ok := m.clearedFields[report.FieldValidatedBy]
	return ok
}

// ResetValidatedBy resets all changes to the "validated_by" field.
func (m *ReportMutation) ResetValidatedBy() {
	m.validated_by = nil
	delete(m.clearedFields, report.FieldValidatedBy)
}

// SetValidatedAt sets the "validated_at" field.
func (m *ReportMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *ReportMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *ReportMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[report.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *ReportMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[report.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *ReportMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, report.FieldValidatedAt)
}

// SetValidationNotes sets the "validation_notes" field.
func (m *ReportMutation) SetValidationNotes(s string) {
	m.validation_notes = &s
}

// ValidationNotes returns the value of the "validation_notes" field in the mutation.
func (m *ReportMutation) ValidationNotes() (r string, exists bool) {
	v := m.validation_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationNotes returns the old "validation_notes" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldValidationNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationNotes: %w", err)
	}
	return oldValue.ValidationNotes, nil
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (m *ReportMutation) ClearValidationNotes() {
	m.validation_notes = nil
	m.clearedFields[report.FieldValidationNotes] = struct{}{}
}

// ValidationNotesCleared returns if the "validation_notes" field was cleared in this mutation.
func (m *ReportMutation) ValidationNotesCleared() bool {
	_, ok := m.clearedFields[report.FieldValidationNotes]
	return ok
}

// ResetValidationNotes resets all changes to the "validation_notes" field.
func (m *ReportMutation) ResetValidationNotes() {
	m.validation_notes = nil
	delete(m.clearedFields, report.FieldValidationNotes)
}

// SetUpvotes sets the "upvotes" field.
func (m *ReportMutation) SetUpvotes(i int) {
	m.upvotes = &i
	m.addupvotes = nil
}

// Upvotes returns the value of the "upvotes" field in the mutation.
func (m *ReportMutation) Upvotes() (r int, exists bool) {
	v := m.upvotes
	if v == nil {
		return
	}
	return *v, true
}

// OldUpvotes returns the old "upvotes" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpvotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpvotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpvotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpvotes: %w", err)
	}
	return oldValue.Upvotes, nil
}

// AddUpvotes adds i to the "upvotes" field.
func (m *ReportMutation) AddUpvotes(i int) {
	if m.addupvotes != nil {
		*m.addupvotes += i
	} else {
		m.addupvotes = &i
	}
}

// AddedUpvotes returns the value that was added to the "upvotes" field in this mutation.
func (m *ReportMutation) AddedUpvotes() (r int, exists bool) {
	v := m.addupvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpvotes resets all changes to the "upvotes" field.
func (m *ReportMutation) ResetUpvotes() {
	m.upvotes = nil
	m.addupvotes = nil
}

// SetDownvotes sets the "downvotes" field.
func (m *ReportMutation) SetDownvotes(i int) {
	m.downvotes = &i
	m.adddownvotes = nil
}

// Downvotes returns the value of the "downvotes" field in the mutation.
func (m *ReportMutation) Downvotes() (r int, exists bool) {
	v := m.downvotes
	if v == nil {
		return
	}
	return *v, true
}

// OldDownvotes returns the old "downvotes" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDownvotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownvotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownvotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownvotes: %w", err)
	}
	return oldValue.Downvotes, nil
}

// AddDownvotes adds i to the "downvotes" field.
func (m *ReportMutation) AddDownvotes(i int) {
	if m.adddownvotes != nil {
		*m.adddownvotes += i
	} else {
		m.adddownvotes = &i
	}
}

// AddedDownvotes returns the value that was added to the "downvotes" field in this mutation.
func (m *ReportMutation) AddedDownvotes() (r int, exists bool) {
	v := m.adddownvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDownvotes resets all changes to the "downvotes" field.
func (m *ReportMutation) ResetDownvotes() {
	m.downvotes = nil
	m.adddownvotes = nil
}

// SetTotalVotes sets the "total_votes" field.
func (m *ReportMutation) SetTotalVotes(i int) {
	m.total_votes = &i
	m.addtotal_votes = nil
}

// TotalVotes returns the value of the "total_votes" field in the mutation.
func (m *ReportMutation) TotalVotes() (r int, exists bool) {
	v := m.total_votes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalVotes returns the old "total_votes" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTotalVotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalVotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalVotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalVotes: %w", err)
	}
	return oldValue.TotalVotes, nil
}

// AddTotalVotes adds i to the "total_votes" field.
func (m *ReportMutation) AddTotalVotes(i int) {
	if m.addtotal_votes != nil {
		*m.addtotal_votes += i
	} else {
		m.addtotal_votes = &i
	}
}

// AddedTotalVotes returns the value that was added to the "total_votes" field in this mutation.
func (m *ReportMutation) AddedTotalVotes() (r int, exists bool) {
	v := m.addtotal_votes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalVotes resets all changes to the "total_votes" field.
func (m *ReportMutation) ResetTotalVotes() {
	m.total_votes = nil
	m.addtotal_votes = nil
}

// SetViews sets the "views" field.
func (m *ReportMutation) SetViews(i int) {
	m.views = &i
	m.addviews = nil
}

// Views returns the value of the "views" field in the mutation.
func (m *ReportMutation) Views() (r int, exists bool) {
	v := m.views
	if v == nil {
		return
	}
	return *v, true
}

// OldViews returns the old "views" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldViews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViews: %w", err)
	}
	return oldValue.Views, nil
}

// AddViews adds i to the "views" field.
func (m *ReportMutation) AddViews(i int) {
	if m.addviews != nil {
		*m.addviews += i
	} else {
		m.addviews = &i
	}
}

// AddedViews returns the value that was added to the "views" field in this mutation.
func (m *ReportMutation) AddedViews() (r int, exists bool) {
	v := m.addviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetViews resets all changes to the "views" field.
func (m *ReportMutation) ResetViews() {
	m.views = nil
	m.addviews = nil
}

// SetShares sets the "shares" field.
func (m *ReportMutation) SetShares(i int) {
	m.shares = &i
	m.addshares = nil
}

// Shares returns the value of the "shares" field in the mutation.
func (m *ReportMutation) Shares() (r int, exists bool) {
	v := m.shares
	if v == nil {
		return
	}
	return *v, true
}

// OldShares returns the old "shares" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldShares(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShares is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShares requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShares: %w", err)
	}
	return oldValue.Shares, nil
}

// AddShares adds i to the "shares" field.
func (m *ReportMutation) AddShares(i int) {
	if m.addshares != nil {
		*m.addshares += i
	} else {
		m.addshares = &i
	}
}

// AddedShares returns the value that was added to the "shares" field in this mutation.
func (m *ReportMutation) AddedShares() (r int, exists bool) {
	v := m.addshares
	if v == nil {
		return
	}
	return *v, true
}

// ResetShares resets all changes to the "shares" field.
func (m *ReportMutation) ResetShares() {
	m.shares = nil
	m.addshares = nil
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (m *ReportMutation) SetExpectedResolutionHours(f float64) {
	m.expected_resolution_hours = &f
	m.addexpected_resolution_hours = nil
}

// ExpectedResolutionHours returns the value of the "expected_resolution_hours" field in the mutation.
func (m *ReportMutation) ExpectedResolutionHours() (r float64, exists bool) {
	v := m.expected_resolution_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedResolutionHours returns the old "expected_resolution_hours" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldExpectedResolutionHours(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedResolutionHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedResolutionHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedResolutionHours: %w", err)
	}
	return oldValue.ExpectedResolutionHours, nil
}

// AddExpectedResolutionHours adds f to the "expected_resolution_hours" field.
func (m *ReportMutation) AddExpectedResolutionHours(f float64) {
	if m.addexpected_resolution_hours != nil {
		*m.addexpected_resolution_hours += f
	} else {
		m.addexpected_resolution_hours = &f
	}
}

// AddedExpectedResolutionHours returns the value that was added to the "expected_resolution_hours" field in this mutation.
func (m *ReportMutation) AddedExpectedResolutionHours() (r float64, exists bool) {
	v := m.addexpected_resolution_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearExpectedResolutionHours clears the value of the "expected_resolution_hours" field.
func (m *ReportMutation) ClearExpectedResolutionHours() {
	m.expected_resolution_hours = nil
	m.addexpected_resolution_hours = nil
	m.clearedFields[report.FieldExpectedResolutionHours] = struct{}{}
}

// ExpectedResolutionHoursCleared returns if the "expected_resolution_hours" field was cleared in this mutation.
func (m *ReportMutation) ExpectedResolutionHoursCleared() bool {
	_, ok := m.clearedFields[report.FieldExpectedResolutionHours]
	return ok
}

// ResetExpectedResolutionHours resets all changes to the "expected_resolution_hours" field.
func (m *ReportMutation) ResetExpectedResolutionHours() {
	m.expected_resolution_hours = nil
	m.addexpected_resolution_hours = nil
	delete(m.clearedFields, report.FieldExpectedResolutionHours)
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (m *ReportMutation) SetActualResolutionHours(f float64) {
	m.actual_resolution_hours = &f
	m.addactual_resolution_hours = nil
}

// ActualResolutionHours returns the value of the "actual_resolution_hours" field in the mutation.
func (m *ReportMutation) ActualResolutionHours() (r float64, exists bool) {
	v := m.actual_resolution_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldActualResolutionHours returns the old "actual_resolution_hours" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldActualResolutionHours(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualResolutionHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualResolutionHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualResolutionHours: %w", err)
	}
	return oldValue.ActualResolutionHours, nil
}

// AddActualResolutionHours adds f to the "actual_resolution_hours" field.
func (m *ReportMutation) AddActualResolutionHours(f float64) {
	if m.addactual_resolution_hours != nil {
		*m.addactual_resolution_hours += f
	} else {
		m.addactual_resolution_hours = &f
	}
}

// AddedActualResolutionHours returns the value that was added to the "actual_resolution_hours" field in this mutation.
func (m *ReportMutation) AddedActualResolutionHours() (r float64, exists bool) {
	v := m.addactual_resolution_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearActualResolutionHours clears the value of the "actual_resolution_hours" field.
func (m *ReportMutation) ClearActualResolutionHours() {
	m.actual_resolution_hours = nil
	m.addactual_resolution_hours = nil
	m.clearedFields[report.FieldActualResolutionHours] = struct{}{}
}

// ActualResolutionHoursCleared returns if the "actual_resolution_hours" field was cleared in this mutation.
func (m *ReportMutation) ActualResolutionHoursCleared() bool {
	_, ok := m.clearedFields[report.FieldActualResolutionHours]
	return ok
}

// ResetActualResolutionHours resets all changes to the "actual_resolution_hours" field.
func (m *ReportMutation) ResetActualResolutionHours() {
	m.actual_resolution_hours = nil
	m.addactual_resolution_hours = nil
	delete(m.clearedFields, report.FieldActualResolutionHours)
}

// SetIsOverdue sets the "is_overdue" field.
func (m *ReportMutation) SetIsOverdue(b bool) {
	m.is_overdue = &b
}

// IsOverdue returns the value of the "is_overdue" field in the mutation.
func (m *ReportMutation) IsOverdue() (r bool, exists bool) {
	v := m.is_overdue
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOverdue returns the old "is_overdue" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldIsOverdue(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOverdue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOverdue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOverdue: %w", err)
	}
	return oldValue.IsOverdue, nil
}

// ResetIsOverdue resets all changes to the "is_overdue" field.
func (m *ReportMutation) ResetIsOverdue() {
	m.is_overdue = nil
}

// SetEscalationLevel sets the "escalation_level" field.
func (m *ReportMutation) SetEscalationLevel(i int) {
	m.escalation_level = &i
	m.addescalation_level = nil
}

// EscalationLevel returns the value of the "escalation_level" field in the mutation.
func (m *ReportMutation) EscalationLevel() (r int, exists bool) {
	v := m.escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationLevel returns the old "escalation_level" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldEscalationLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationLevel: %w", err)
	}
	return oldValue.EscalationLevel, nil
}

// AddEscalationLevel adds i to the "escalation_level" field.
func (m *ReportMutation) AddEscalationLevel(i int) {
	if m.addescalation_level != nil {
		*m.addescalation_level += i
	} else {
		m.addescalation_level = &i
	}
}

// AddedEscalationLevel returns the value that was added to the "escalation_level" field in this mutation.
func (m *ReportMutation) AddedEscalationLevel() (r int, exists bool) {
	v := m.addescalation_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationLevel resets all changes to the "escalation_level" field.
func (m *ReportMutation) ResetEscalationLevel() {
	m.escalation_level = nil
	m.addescalation_level = nil
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (m *ReportMutation) SetLastEscalatedAt(t time.Time) {
	m.last_escalated_at = &t
}

// LastEscalatedAt returns the value of the "last_escalated_at" field in the mutation.
func (m *ReportMutation) LastEscalatedAt() (r time.Time, exists bool) {
	v := m.last_escalated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEscalatedAt returns the old "last_escalated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLastEscalatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEscalatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEscalatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEscalatedAt: %w", err)
	}
	return oldValue.LastEscalatedAt, nil
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (m *ReportMutation) ClearLastEscalatedAt() {
	m.last_escalated_at = nil
	m.clearedFields[report.FieldLastEscalatedAt] = struct{}{}
}

// LastEscalatedAtCleared returns if the "last_escalated_at" field was cleared in this mutation.
func (m *ReportMutation) LastEscalatedAtCleared() bool {
	_, ok := m.clearedFields[report.FieldLastEscalatedAt]
	return ok
}

// ResetLastEscalatedAt resets all changes to the "last_escalated_at" field.
func (m *ReportMutation) ResetLastEscalatedAt() {
	m.last_escalated_at = nil
	delete(m.clearedFields, report.FieldLastEscalatedAt)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ReportMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ReportMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ReportMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[report.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ReportMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[report.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ReportMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, report.FieldResolvedAt)
}

// SetResolvedBy sets the "resolved_by" field.
func (m *ReportMutation) SetResolvedBy(u uuid.UUID) {
	m.resolved_by = &u
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *ReportMutation) ResolvedBy() (r uuid.UUID, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldResolvedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *ReportMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[report.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *ReportMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[report.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *ReportMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, report.FieldResolvedBy)
}

// SetResolutionNotes sets the "resolution_notes" field.
func (m *ReportMutation) SetResolutionNotes(s string) {
	m.resolution_notes = &s
}

// ResolutionNotes returns the value of the "resolution_notes" field in the mutation.
func (m *ReportMutation) ResolutionNotes() (r string, exists bool) {
	v := m.resolution_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionNotes returns the old "resolution_notes" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldResolutionNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionNotes: %w", err)
	}
	return oldValue.ResolutionNotes, nil
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (m *ReportMutation) ClearResolutionNotes() {
	m.resolution_notes = nil
	m.clearedFields[report.FieldResolutionNotes] = struct{}{}
}

// ResolutionNotesCleared returns if the "resolution_notes" field was cleared in this mutation.
func (m *ReportMutation) ResolutionNotesCleared() bool {
	_, ok := m.clearedFields[report.FieldResolutionNotes]
	return ok
}

// ResetResolutionNotes resets all changes to the "resolution_notes" field.
func (m *ReportMutation) ResetResolutionNotes() {
	m.resolution_notes = nil
	delete(m.clearedFields, report.FieldResolutionNotes)
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (m *ReportMutation) SetSatisfactionRating(i int) {
	m.satisfaction_rating = &i
	m.addsatisfaction_rating = nil
}

// SatisfactionRating returns the value of the "satisfaction_rating" field in the mutation.
func (m *ReportMutation) SatisfactionRating() (r int, exists bool) {
	v := m.satisfaction_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldSatisfactionRating returns the old "satisfaction_rating" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSatisfactionRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSatisfactionRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSatisfactionRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSatisfactionRating: %w", err)
	}
	return oldValue.SatisfactionRating, nil
}

// AddSatisfactionRating adds i to the "satisfaction_rating" field.
func (m *ReportMutation) AddSatisfactionRating(i int) {
	if m.addsatisfaction_rating != nil {
		*m.addsatisfaction_rating += i
	} else {
		m.addsatisfaction_rating = &i
	}
}

// AddedSatisfactionRating returns the value that was added to the "satisfaction_rating" field in this mutation.
func (m *ReportMutation) AddedSatisfactionRating() (r int, exists bool) {
	v := m.addsatisfaction_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (m *ReportMutation) ClearSatisfactionRating() {
	m.satisfaction_rating = nil
	m.addsatisfaction_rating = nil
	m.clearedFields[report.FieldSatisfactionRating] = struct{}{}
}

// SatisfactionRatingCleared returns if the "satisfaction_rating" field was cleared in this mutation.
func (m *ReportMutation) SatisfactionRatingCleared() bool {
	_, ok := m.clearedFields[report.FieldSatisfactionRating]
	return ok
}

// ResetSatisfactionRating resets all changes to the "satisfaction_rating" field.
func (m *ReportMutation) ResetSatisfactionRating() {
	m.satisfaction_rating = nil
	m.addsatisfaction_rating = nil
	delete(m.clearedFields, report.FieldSatisfactionRating)
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (m *ReportMutation) SetDuplicateOfID(u uuid.UUID) {
	m.duplicate_of = &u
}

// DuplicateOfID returns the value of the "duplicate_of_id" field in the mutation.
func (m *ReportMutation) DuplicateOfID() (r uuid.UUID, exists bool) {
	v := m.duplicate_of
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateOfID returns the old "duplicate_of_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDuplicateOfID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateOfID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateOfID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateOfID: %w", err)
	}
	return oldValue.DuplicateOfID, nil
}

// ClearDuplicateOfID clears the value of the "duplicate_of_id" field.
func (m *ReportMutation) ClearDuplicateOfID() {
	m.duplicate_of = nil
	m.clearedFields[report.FieldDuplicateOfID] = struct{}{}
}

// DuplicateOfIDCleared returns if the "duplicate_of_id" field was cleared in this mutation.
func (m *ReportMutation) DuplicateOfIDCleared() bool {
	_, ok := m.clearedFields[report.FieldDuplicateOfID]
	return ok
}

// ResetDuplicateOfID resets all changes to the "duplicate_of_id" field.
func (m *ReportMutation) ResetDuplicateOfID() {
	m.duplicate_of = nil
	delete(m.clearedFields, report.FieldDuplicateOfID)
}

// ClearReporter clears the "reporter" edge to the User entity.
func (m *ReportMutation) ClearReporter() {
	m.clearedreporter = true
	m.clearedFields[report.FieldReporterID] = struct{}{}
}

// ReporterCleared reports if the "reporter" edge to the User entity was cleared.
func (m *ReportMutation) ReporterCleared() bool {
	return m.clearedreporter
}

// ReporterIDs returns the "reporter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReporterID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) ReporterIDs() (ids []uuid.UUID) {
	if id := m.reporter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReporter resets all changes to the "reporter" edge.
func (m *ReportMutation) ResetReporter() {
	m.reporter = nil
	m.clearedreporter = false
}

// ClearDuplicateOf clears the "duplicate_of" edge to the Report entity.
func (m *ReportMutation) ClearDuplicateOf() {
	m.clearedduplicate_of = true
	m.clearedFields[report.FieldDuplicateOfID] = struct{}{}
}

// DuplicateOfCleared reports if the "duplicate_of" edge to the Report entity was cleared.
func (m *ReportMutation) DuplicateOfCleared() bool {
	return m.DuplicateOfIDCleared() || m.clearedduplicate_of
}

// DuplicateOfIDs returns the "duplicate_of" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DuplicateOfID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) DuplicateOfIDs() (ids []uuid.UUID) {
	if id := m.duplicate_of; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDuplicateOf resets all changes to the "duplicate_of" edge.
func (m *ReportMutation) ResetDuplicateOf() {
	m.duplicate_of = nil
	m.clearedduplicate_of = false
}

// AddDuplicateIDs adds the "duplicates" edge to the Report entity by ids.
func (m *ReportMutation) AddDuplicateIDs(ids ...uuid.UUID) {
	if m.duplicates == nil {
		m.duplicates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.duplicates[ids[i]] = struct{}{}
	}
}

// ClearDuplicates clears the "duplicates" edge to the Report entity.
func (m *ReportMutation) ClearDuplicates() {
	m.clearedduplicates = true
}

// DuplicatesCleared reports if the "duplicates" edge to the Report entity was cleared.
func (m *ReportMutation) DuplicatesCleared() bool {
	return m.clearedduplicates
}

// RemoveDuplicateIDs removes the "duplicates" edge to the Report entity by IDs.
func (m *ReportMutation) RemoveDuplicateIDs(ids ...uuid.UUID) {
	if m.removedduplicates == nil {
		m.removedduplicates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.duplicates, ids[i])
		m.removedduplicates[ids[i]] = struct{}{}
	}
}

// RemovedDuplicates returns the removed IDs of the "duplicates" edge to the Report entity.
func (m *ReportMutation) RemovedDuplicatesIDs() (ids []uuid.UUID) {
	for id := range m.removedduplicates {
		ids = append(ids, id)
	}
	return
}

// DuplicatesIDs returns the "duplicates" edge IDs in the mutation.
func (m *ReportMutation) DuplicatesIDs() (ids []uuid.UUID) {
	for id := range m.duplicates {
		ids = append(ids, id)
	}
	return
}

// ResetDuplicates resets all changes to the "duplicates" edge.
func (m *ReportMutation) ResetDuplicates() {
	m.duplicates = nil
	m.clearedduplicates = false
	m.removedduplicates = nil
}

// AddVoteIDs adds the "votes" edge to the Vote entity by ids.
func (m *ReportMutation) AddVoteIDs(ids ...uuid.UUID) {
	if m.votes == nil {
		m.votes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.votes[ids[i]] = struct{}{}
	}
}

// ClearVotes clears the "votes" edge to the Vote entity.
func (m *ReportMutation) ClearVotes() {
	m.clearedvotes = true
}

// VotesCleared reports if the "votes" edge to the Vote entity was cleared.
func (m *ReportMutation) VotesCleared() bool {
	return m.clearedvotes
}

// RemoveVoteIDs removes the "votes" edge to the Vote entity by IDs.
func (m *ReportMutation) RemoveVoteIDs(ids ...uuid.UUID) {
	if m.removedvotes == nil {
		m.removedvotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.votes, ids[i])
		m.removedvotes[ids[i]] = struct{}{}
	}
}

// RemovedVotes returns the removed IDs of the "votes" edge to the Vote entity.
func (m *ReportMutation) RemovedVotesIDs() (ids []uuid.UUID) {
	for id := range m.removedvotes {
		ids = append(ids, id)
	}
	return
}

// VotesIDs returns the "votes" edge IDs in the mutation.
func (m *ReportMutation) VotesIDs() (ids []uuid.UUID) {
	for id := range m.votes {
		ids = append(ids, id)
	}
	return
}

// ResetVotes resets all changes to the "votes" edge.
func (m *ReportMutation) ResetVotes() {
	m.votes = nil
	m.clearedvotes = false
	m.removedvotes = nil
}

// AddStatusUpdateIDs adds the "status_updates" edge to the StatusUpdate entity by ids.
func (m *ReportMutation) AddStatusUpdateIDs(ids ...uuid.UUID) {
	if m.status_updates == nil {
		m.status_updates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.status_updates[ids[i]] = struct{}{}
	}
}

// ClearStatusUpdates clears the "status_updates" edge to the StatusUpdate entity.
func (m *ReportMutation) ClearStatusUpdates() {
	m.clearedstatus_updates = true
}

// StatusUpdatesCleared reports if the "status_updates" edge to the StatusUpdate entity was cleared.
func (m *ReportMutation) StatusUpdatesCleared() bool {
	return m.clearedstatus_updates
}

// RemoveStatusUpdateIDs removes the "status_updates" edge to the StatusUpdate entity by IDs.
func (m *ReportMutation) RemoveStatusUpdateIDs(ids ...uuid.UUID) {
	if m.removedstatus_updates == nil {
		m.removedstatus_updates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.status_updates, ids[i])
		m.removedstatus_updates[ids[i]] = struct{}{}
	}
}

// RemovedStatusUpdates returns the removed IDs of the "status_updates" edge to the StatusUpdate entity.
func (m *ReportMutation) RemovedStatusUpdatesIDs() (ids []uuid.UUID) {
	for id := range m.removedstatus_updates {
		ids = append(ids, id)
	}
	return
}

// StatusUpdatesIDs returns the "status_updates" edge IDs in the mutation.
func (m *ReportMutation) StatusUpdatesIDs() (ids []uuid.UUID) {
	for id := range m.status_updates {
		ids = append(ids, id)
	}
	return
}

// ResetStatusUpdates resets all changes to the "status_updates" edge.
func (m *ReportMutation) ResetStatusUpdates() {
	m.status_updates = nil
	m.clearedstatus_updates = false
	m.removedstatus_updates = nil
}

// AddCommentIDs adds the "comments" edge to the Comment entity by ids.
func (m *ReportMutation) AddCommentIDs(ids ...uuid.UUID) {
	if m.comments == nil {
		m.comments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.comments[ids[i]] = struct{}{}
	}
}

// ClearComments clears the "comments" edge to the Comment entity.
func (m *ReportMutation) ClearComments() {
	m.clearedcomments = true
}

// CommentsCleared reports if the "comments" edge to the Comment entity was cleared.
func (m *ReportMutation) CommentsCleared() bool {
	return m.clearedcomments
}

// RemoveCommentIDs removes the "comments" edge to the Comment entity by IDs.
func (m *ReportMutation) RemoveCommentIDs(ids ...uuid.UUID) {
	if m.removedcomments == nil {
		m.removedcomments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.comments, ids[i])
		m.removedcomments[ids[i]] = struct{}{}
	}
}

// RemovedComments returns the removed IDs of the "comments" edge to the Comment entity.
func (m *ReportMutation) RemovedCommentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomments {
		ids = append(ids, id)
	}
	return
}

// CommentsIDs returns the "comments" edge IDs in the mutation.
func (m *ReportMutation) CommentsIDs() (ids []uuid.UUID) {
	for id := range m.comments {
		ids = append(ids, id)
	}
	return
}

// ResetComments resets all changes to the "comments" edge.
func (m *ReportMutation) ResetComments() {
	m.comments = nil
	m.clearedcomments = false
	m.removedcomments = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 45)
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	if m.report_number != nil {
		fields = append(fields, report.FieldReportNumber)
	}
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, report.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, report.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, report.FieldSubcategory)
	}
	if m.priority != nil {
		fields = append(fields, report.FieldPriority)
	}
	if m.ai_priority_score != nil {
		fields = append(fields, report.FieldAiPriorityScore)
	}
	if m.longitude != nil {
		fields = append(fields, report.FieldLongitude)
	}
	if m.latitude != nil {
		fields = append(fields, report.FieldLatitude)
	}
	if m.street != nil {
		fields = append(fields, report.FieldStreet)
	}
	if m.city != nil {
		fields = append(fields, report.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, report.FieldState)
	}
	if m.zip_code != nil {
		fields = append(fields, report.FieldZipCode)
	}
	if m.country != nil {
		fields = append(fields, report.FieldCountry)
	}
	if m.landmark != nil {
		fields = append(fields, report.FieldLandmark)
	}
	if m.media != nil {
		fields = append(fields, report.FieldMedia)
	}
	if m.tags != nil {
		fields = append(fields, report.FieldTags)
	}
	if m.reporter != nil {
		fields = append(fields, report.FieldReporterID)
	}
	if m.is_anonymous != nil {
		fields = append(fields, report.FieldIsAnonymous)
	}
	if m.is_public != nil {
		fields = append(fields, report.FieldIsPublic)
	}
	if m.is_featured != nil {
		fields = append(fields, report.FieldIsFeatured)
	}
	if m.status != nil {
		fields = append(fields, report.FieldStatus)
	}
	if m.status_changed_at != nil {
		fields = append(fields, report.FieldStatusChangedAt)
	}
	if m.assigned_department_code != nil {
		fields = append(fields, report.FieldAssignedDepartmentCode)
	}
	if m.is_validated != nil {
		fields = append(fields, report.FieldIsValidated)
	}
	if m.validated_by != nil {
		fields = append(fields, report.FieldValidatedBy)
	}
	if m.validated_at != nil {
		fields = append(fields, report.FieldValidatedAt)
	}
	if m.validation_notes != nil {
		fields = append(fields, report.FieldValidationNotes)
	}
	if m.upvotes != nil {
		fields = append(fields, report.FieldUpvotes)
	}
	if m.downvotes != nil {
		fields = append(fields, report.FieldDownvotes)
	}
	if m.total_votes != nil {
		fields = append(fields, report.FieldTotalVotes)
	}
	if m.views != nil {
		fields = append(fields, report.FieldViews)
	}
	if m.shares != nil {
		fields = append(fields, report.FieldShares)
	}
	if m.expected_resolution_hours != nil {
		fields = append(fields, report.FieldExpectedResolutionHours)
	}
	if m.actual_resolution_hours != nil {
		fields = append(fields, report.FieldActualResolutionHours)
	}
	if m.is_overdue != nil {
		fields = append(fields, report.FieldIsOverdue)
	}
	if m.escalation_level != nil {
		fields = append(fields, report.FieldEscalationLevel)
	}
	if m.last_escalated_at != nil {
		fields = append(fields, report.FieldLastEscalatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, report.FieldResolvedAt)
	}
	if m.resolved_by != nil {
		fields = append(fields, report.FieldResolvedBy)
	}
	if m.resolution_notes != nil {
		fields = append(fields, report.FieldResolutionNotes)
	}
	if m.satisfaction_rating != nil {
		fields = append(fields, report.FieldSatisfactionRating)
	}
	if m.duplicate_of != nil {
		fields = append(fields, report.FieldDuplicateOfID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	case report.FieldReportNumber:
		return m.ReportNumber()
	case report.FieldTitle:
		return m.Title()
	case report.FieldDescription:
		return m.Description()
	case report.FieldCategory:
		return m.Category()
	case report.FieldSubcategory:
		return m.Subcategory()
	case report.FieldPriority:
		return m.Priority()
	case report.FieldAiPriorityScore:
		return m.AiPriorityScore()
	case report.FieldLongitude:
		return m.Longitude()
	case report.FieldLatitude:
		return m.Latitude()
	case report.FieldStreet:
		return m.Street()
	case report.FieldCity:
		return m.City()
	case report.FieldState:
		return m.State()
	case report.FieldZipCode:
		return m.ZipCode()
	case report.FieldCountry:
		return m.Country()
	case report.FieldLandmark:
		return m.Landmark()
	case report.FieldMedia:
		return m.Media()
	case report.FieldTags:
		return m.Tags()
	case report.FieldReporterID:
		return m.ReporterID()
	case report.FieldIsAnonymous:
		return m.IsAnonymous()
	case report.FieldIsPublic:
		return m.IsPublic()
	case report.FieldIsFeatured:
		return m.IsFeatured()
	case report.FieldStatus:
		return m.Status()
	case report.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case report.FieldAssignedDepartmentCode:
		return m.AssignedDepartmentCode()
	case report.FieldIsValidated:
		return m.IsValidated()
	case report.FieldValidatedBy:
		return m.ValidatedBy()
	case report.FieldValidatedAt:
		return m.ValidatedAt()
	case report.FieldValidationNotes:
		return m.ValidationNotes()
	case report.FieldUpvotes:
		return m.Upvotes()
	case report.FieldDownvotes:
		return m.Downvotes()
	case report.FieldTotalVotes:
		return m.TotalVotes()
	case report.FieldViews:
		return m.Views()
	case report.FieldShares:
		return m.Shares()
	case report.FieldExpectedResolutionHours:
		return m.ExpectedResolutionHours()
	case report.FieldActualResolutionHours:
		return m.ActualResolutionHours()
	case report.FieldIsOverdue:
		return m.IsOverdue()
	case report.FieldEscalationLevel:
		return m.EscalationLevel()
	case report.FieldLastEscalatedAt:
		return m.LastEscalatedAt()
	case report.FieldResolvedAt:
		return m.ResolvedAt()
	case report.FieldResolvedBy:
		return m.ResolvedBy()
	case report.FieldResolutionNotes:
		return m.ResolutionNotes()
	case report.FieldSatisfactionRating:
		return m.SatisfactionRating()
	case report.FieldDuplicateOfID:
		return m.DuplicateOfID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case report.FieldReportNumber:
		return m.OldReportNumber(ctx)
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldDescription:
		return m.OldDescription(ctx)
	case report.FieldCategory:
		return m.OldCategory(ctx)
	case report.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case report.FieldPriority:
		return m.OldPriority(ctx)
	case report.FieldAiPriorityScore:
		return m.OldAiPriorityScore(ctx)
	case report.FieldLongitude:
		return m.OldLongitude(ctx)
	case report.FieldLatitude:
		return m.OldLatitude(ctx)
	case report.FieldStreet:
		return m.OldStreet(ctx)
	case report.FieldCity:
		return m.OldCity(ctx)
	case report.FieldState:
		return m.OldState(ctx)
	case report.FieldZipCode:
		return m.OldZipCode(ctx)
	case report.FieldCountry:
		return m.OldCountry(ctx)
	case report.FieldLandmark:
		return m.OldLandmark(ctx)
	case report.FieldMedia:
		return m.OldMedia(ctx)
	case report.FieldTags:
		return m.OldTags(ctx)
	case report.FieldReporterID:
		return m.OldReporterID(ctx)
	case report.FieldIsAnonymous:
		return m.OldIsAnonymous(ctx)
	case report.FieldIsPublic:
		return m.OldIsPublic(ctx)
	case report.FieldIsFeatured:
		return m.OldIsFeatured(ctx)
	case report.FieldStatus:
		return m.OldStatus(ctx)
	case report.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case report.FieldAssignedDepartmentCode:
		return m.OldAssignedDepartmentCode(ctx)
	case report.FieldIsValidated:
		return m.OldIsValidated(ctx)
	case report.FieldValidatedBy:
		return m.OldValidatedBy(ctx)
	case report.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case report.FieldValidationNotes:
		return m.OldValidationNotes(ctx)
	case report.FieldUpvotes:
		return m.OldUpvotes(ctx)
	case report.FieldDownvotes:
		return m.OldDownvotes(ctx)
	case report.FieldTotalVotes:
		return m.OldTotalVotes(ctx)
	case report.FieldViews:
		return m.OldViews(ctx)
	case report.FieldShares:
		return m.OldShares(ctx)
	case report.FieldExpectedResolutionHours:
		return m.OldExpectedResolutionHours(ctx)
	case report.FieldActualResolutionHours:
		return m.OldActualResolutionHours(ctx)
	case report.FieldIsOverdue:
		return m.OldIsOverdue(ctx)
	case report.FieldEscalationLevel:
		return m.OldEscalationLevel(ctx)
	case report.FieldLastEscalatedAt:
		return m.OldLastEscalatedAt(ctx)
	case report.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case report.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	case report.FieldResolutionNotes:
		return m.OldResolutionNotes(ctx)
	case report.FieldSatisfactionRating:
		return m.OldSatisfactionRating(ctx)
	case report.FieldDuplicateOfID:
		return m.OldDuplicateOfID(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case report.FieldReportNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportNumber(v)
		return nil
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case report.FieldCategory:
		v, ok := value.(report.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case report.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case report.FieldPriority:
		v, ok := value.(report.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case report.FieldAiPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiPriorityScore(v)
		return nil
	case report.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case report.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case report.FieldStreet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreet(v)
		return nil
	case report.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case report.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case report.FieldZipCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZipCode(v)
		return nil
	case report.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case report.FieldLandmark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLandmark(v)
		return nil
	case report.FieldMedia:
		v, ok := value.([]model.MediaRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedia(v)
		return nil
	case report.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case report.FieldReporterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReporterID(v)
		return nil
	case report.FieldIsAnonymous:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAnonymous(v)
		return nil
	case report.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	case report.FieldIsFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFeatured(v)
		return nil
	case report.FieldStatus:
		v, ok := value.(report.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case report.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case report.FieldAssignedDepartmentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedDepartmentCode(v)
		return nil
	case report.FieldIsValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValidated(v)
		return nil
	case report.FieldValidatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedBy(v)
		return nil
	case report.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case report.FieldValidationNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationNotes(v)
		return nil
	case report.FieldUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpvotes(v)
		return nil
	case report.FieldDownvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownvotes(v)
		return nil
	case report.FieldTotalVotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalVotes(v)
		return nil
	case report.FieldViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViews(v)
		return nil
	case report.FieldShares:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShares(v)
		return nil
	case report.FieldExpectedResolutionHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedResolutionHours(v)
		return nil
	case report.FieldActualResolutionHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualResolutionHours(v)
		return nil
	case report.FieldIsOverdue:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOverdue(v)
		return nil
	case report.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationLevel(v)
		return nil
	case report.FieldLastEscalatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEscalatedAt(v)
		return nil
	case report.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case report.FieldResolvedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	case report.FieldResolutionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionNotes(v)
		return nil
	case report.FieldSatisfactionRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSatisfactionRating(v)
		return nil
	case report.FieldDuplicateOfID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateOfID(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addai_priority_score != nil {
		fields = append(fields, report.FieldAiPriorityScore)
	}
	if m.addlongitude != nil {
		fields = append(fields, report.FieldLongitude)
	}
	if m.addlatitude != nil {
		fields = append(fields, report.FieldLatitude)
	}
	if m.addupvotes != nil {
		fields = append(fields, report.FieldUpvotes)
	}
	if m.adddownvotes != nil {
		fields = append(fields, report.FieldDownvotes)
	}
	if m.addtotal_votes != nil {
		fields = append(fields, report.FieldTotalVotes)
	}
	if m.addviews != nil {
		fields = append(fields, report.FieldViews)
	}
	if m.addshares != nil {
		fields = append(fields, report.FieldShares)
	}
	if m.addexpected_resolution_hours != nil {
		fields = append(fields, report.FieldExpectedResolutionHours)
	}
	if m.addactual_resolution_hours != nil {
		fields = append(fields, report.FieldActualResolutionHours)
	}
	if m.addescalation_level != nil {
		fields = append(fields, report.FieldEscalationLevel)
	}
	if m.addsatisfaction_rating != nil {
		fields = append(fields, report.FieldSatisfactionRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldAiPriorityScore:
		return m.AddedAiPriorityScore()
	case report.FieldLongitude:
		return m.AddedLongitude()
	case report.FieldLatitude:
		return m.AddedLatitude()
	case report.FieldUpvotes:
		return m.AddedUpvotes()
	case report.FieldDownvotes:
		return m.AddedDownvotes()
	case report.FieldTotalVotes:
		return m.AddedTotalVotes()
	case report.FieldViews:
		return m.AddedViews()
	case report.FieldShares:
		return m.AddedShares()
	case report.FieldExpectedResolutionHours:
		return m.AddedExpectedResolutionHours()
	case report.FieldActualResolutionHours:
		return m.AddedActualResolutionHours()
	case report.FieldEscalationLevel:
		return m.AddedEscalationLevel()
	case report.FieldSatisfactionRating:
		return m.AddedSatisfactionRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldAiPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiPriorityScore(v)
		return nil
	case report.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case report.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case report.FieldUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpvotes(v)
		return nil
	case report.FieldDownvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDownvotes(v)
		return nil
	case report.FieldTotalVotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalVotes(v)
		return nil
	case report.FieldViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViews(v)
		return nil
	case report.FieldShares:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShares(v)
		return nil
	case report.FieldExpectedResolutionHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedResolutionHours(v)
		return nil
	case report.FieldActualResolutionHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualResolutionHours(v)
		return nil
	case report.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationLevel(v)
		return nil
	case report.FieldSatisfactionRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSatisfactionRating(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldSubcategory) {
		fields = append(fields, report.FieldSubcategory)
	}
	if m.FieldCleared(report.FieldStreet) {
		fields = append(fields, report.FieldStreet)
	}
	if m.FieldCleared(report.FieldState) {
		fields = append(fields, report.FieldState)
	}
	if m.FieldCleared(report.FieldZipCode) {
		fields = append(fields, report.FieldZipCode)
	}
	if m.FieldCleared(report.FieldLandmark) {
		fields = append(fields, report.FieldLandmark)
	}
	if m.FieldCleared(report.FieldMedia) {
		fields = append(fields, report.FieldMedia)
	}
	if m.FieldCleared(report.FieldTags) {
		fields = append(fields, report.FieldTags)
	}
	if m.FieldCleared(report.FieldAssignedDepartmentCode) {
		fields = append(fields, report.FieldAssignedDepartmentCode)
	}
	if m.FieldCleared(report.FieldValidatedBy) {
		fields = append(fields, report.FieldValidatedBy)
	}
	if m.FieldCleared(report.FieldValidatedAt) {
		fields = append(fields, report.FieldValidatedAt)
	}
	if m.FieldCleared(report.FieldValidationNotes) {
		fields = append(fields, report.FieldValidationNotes)
	}
	if m.FieldCleared(report.FieldExpectedResolutionHours) {
		fields = append(fields, report.FieldExpectedResolutionHours)
	}
	if m.FieldCleared(report.FieldActualResolutionHours) {
		fields = append(fields, report.FieldActualResolutionHours)
	}
	if m.FieldCleared(report.FieldLastEscalatedAt) {
		fields = append(fields, report.FieldLastEscalatedAt)
	}
	if m.FieldCleared(report.FieldResolvedAt) {
		fields = append(fields, report.FieldResolvedAt)
	}
	if m.FieldCleared(report.FieldResolvedBy) {
		fields = append(fields, report.FieldResolvedBy)
	}
	if m.FieldCleared(report.FieldResolutionNotes) {
		fields = append(fields, report.FieldResolutionNotes)
	}
	if m.FieldCleared(report.FieldSatisfactionRating) {
		fields = append(fields, report.FieldSatisfactionRating)
	}
	if m.FieldCleared(report.FieldDuplicateOfID) {
		fields = append(fields, report.FieldDuplicateOfID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	case report.FieldStreet:
		m.ClearStreet()
		return nil
	case report.FieldState:
		m.ClearState()
		return nil
	case report.FieldZipCode:
		m.ClearZipCode()
		return nil
	case report.FieldLandmark:
		m.ClearLandmark()
		return nil
	case report.FieldMedia:
		m.ClearMedia()
		return nil
	case report.FieldTags:
		m.ClearTags()
		return nil
	case report.FieldAssignedDepartmentCode:
		m.ClearAssignedDepartmentCode()
		return nil
	case report.FieldValidatedBy:
		m.ClearValidatedBy()
		return nil
	case report.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	case report.FieldValidationNotes:
		m.ClearValidationNotes()
		return nil
	case report.FieldExpectedResolutionHours:
		m.ClearExpectedResolutionHours()
		return nil
	case report.FieldActualResolutionHours:
		m.ClearActualResolutionHours()
		return nil
	case report.FieldLastEscalatedAt:
		m.ClearLastEscalatedAt()
		return nil
	case report.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case report.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	case report.FieldResolutionNotes:
		m.ClearResolutionNotes()
		return nil
	case report.FieldSatisfactionRating:
		m.ClearSatisfactionRating()
		return nil
	case report.FieldDuplicateOfID:
		m.ClearDuplicateOfID()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case report.FieldReportNumber:
		m.ResetReportNumber()
		return nil
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldDescription:
		m.ResetDescription()
		return nil
	case report.FieldCategory:
		m.ResetCategory()
		return nil
	case report.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case report.FieldPriority:
		m.ResetPriority()
		return nil
	case report.FieldAiPriorityScore:
		m.ResetAiPriorityScore()
		return nil
	case report.FieldLongitude:
		m.ResetLongitude()
		return nil
	case report.FieldLatitude:
		m.ResetLatitude()
		return nil
	case report.FieldStreet:
		m.ResetStreet()
		return nil
	case report.FieldCity:
		m.ResetCity()
		return nil
	case report.FieldState:
		m.ResetState()
		return nil
	case report.FieldZipCode:
		m.ResetZipCode()
		return nil
	case report.FieldCountry:
		m.ResetCountry()
		return nil
	case report.FieldLandmark:
		m.ResetLandmark()
		return nil
	case report.FieldMedia:
		m.ResetMedia()
		return nil
	case report.FieldTags:
		m.ResetTags()
		return nil
	case report.FieldReporterID:
		m.ResetReporterID()
		return nil
	case report.FieldIsAnonymous:
		m.ResetIsAnonymous()
		return nil
	case report.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	case report.FieldIsFeatured:
		m.ResetIsFeatured()
		return nil
	case report.FieldStatus:
		m.ResetStatus()
		return nil
	case report.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case report.FieldAssignedDepartmentCode:
		m.ResetAssignedDepartmentCode()
		return nil
	case report.FieldIsValidated:
		m.ResetIsValidated()
		return nil
	case report.FieldValidatedBy:
		m.ResetValidatedBy()
		return nil
	case report.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case report.FieldValidationNotes:
		m.ResetValidationNotes()
		return nil
	case report.FieldUpvotes:
		m.ResetUpvotes()
		return nil
	case report.FieldDownvotes:
		m.ResetDownvotes()
		return nil
	case report.FieldTotalVotes:
		m.ResetTotalVotes()
		return nil
	case report.FieldViews:
		m.ResetViews()
		return nil
	case report.FieldShares:
		m.ResetShares()
		return nil
	case report.FieldExpectedResolutionHours:
		m.ResetExpectedResolutionHours()
		return nil
	case report.FieldActualResolutionHours:
		m.ResetActualResolutionHours()
		return nil
	case report.FieldIsOverdue:
		m.ResetIsOverdue()
		return nil
	case report.FieldEscalationLevel:
		m.ResetEscalationLevel()
		return nil
	case report.FieldLastEscalatedAt:
		m.ResetLastEscalatedAt()
		return nil
	case report.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case report.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	case report.FieldResolutionNotes:
		m.ResetResolutionNotes()
		return nil
	case report.FieldSatisfactionRating:
		m.ResetSatisfactionRating()
		return nil
	case report.FieldDuplicateOfID:
		m.ResetDuplicateOfID()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.reporter != nil {
		edges = append(edges, report.EdgeReporter)
	}
	if m.duplicate_of != nil {
		edges = append(edges, report.EdgeDuplicateOf)
	}
	if m.duplicates != nil {
		edges = append(edges, report.EdgeDuplicates)
	}
	if m.votes != nil {
		edges = append(edges, report.EdgeVotes)
	}
	if m.status_updates != nil {
		edges = append(edges, report.EdgeStatusUpdates)
	}
	if m.comments != nil {
		edges = append(edges, report.EdgeComments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeReporter:
		if id := m.reporter; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeDuplicateOf:
		if id := m.duplicate_of; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeDuplicates:
		ids := make([]ent.Value, 0, len(m.duplicates))
		for id := range m.duplicates {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.votes))
		for id := range m.votes {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeStatusUpdates:
		ids := make([]ent.Value, 0, len(m.status_updates))
		for id := range m.status_updates {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeComments:
		ids := make([]ent.Value, 0, len(m.comments))
		for id := range m.comments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedduplicates != nil {
		edges = append(edges, report.EdgeDuplicates)
	}
	if m.removedvotes != nil {
		edges = append(edges, report.EdgeVotes)
	}
	if m.removedstatus_updates != nil {
		edges = append(edges, report.EdgeStatusUpdates)
	}
	if m.removedcomments != nil {
		edges = append(edges, report.EdgeComments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeDuplicates:
		ids := make([]ent.Value, 0, len(m.removedduplicates))
		for id := range m.removedduplicates {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.removedvotes))
		for id := range m.removedvotes {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeStatusUpdates:
		ids := make([]ent.Value, 0, len(m.removedstatus_updates))
		for id := range m.removedstatus_updates {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeComments:
		ids := make([]ent.Value, 0, len(m.removedcomments))
		for id := range m.removedcomments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedreporter {
		edges = append(edges, report.EdgeReporter)
	}
	if m.clearedduplicate_of {
		edges = append(edges, report.EdgeDuplicateOf)
	}
	if m.clearedduplicates {
		edges = append(edges, report.EdgeDuplicates)
	}
	if m.clearedvotes {
		edges = append(edges, report.EdgeVotes)
	}
	if m.clearedstatus_updates {
		edges = append(edges, report.EdgeStatusUpdates)
	}
	if m.clearedcomments {
		edges = append(edges, report.EdgeComments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeReporter:
		return m.clearedreporter
	case report.EdgeDuplicateOf:
		return m.clearedduplicate_of
	case report.EdgeDuplicates:
		return m.clearedduplicates
	case report.EdgeVotes:
		return m.clearedvotes
	case report.EdgeStatusUpdates:
		return m.clearedstatus_updates
	case report.EdgeComments:
		return m.clearedcomments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeReporter:
		m.ClearReporter()
		return nil
	case report.EdgeDuplicateOf:
		m.ClearDuplicateOf()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeReporter:
		m.ResetReporter()
		return nil
	case report.EdgeDuplicateOf:
		m.ResetDuplicateOf()
		return nil
	case report.EdgeDuplicates:
		m.ResetDuplicates()
		return nil
	case report.EdgeVotes:
		m.ResetVotes()
		return nil
	case report.EdgeStatusUpdates:
		m.ResetStatusUpdates()
		return nil
	case report.EdgeComments:
		m.ResetComments()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// StatusUpdateMutation represents an operation that mutates the StatusUpdate nodes in the graph.
type StatusUpdateMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	status        *statusupdate.Status
	message       *string
	updated_by    *uuid.UUID
	is_public     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*StatusUpdate, error)
	predicates    []predicate.StatusUpdate
}

var _ ent.Mutation = (*StatusUpdateMutation)(nil)

// statusupdateOption allows management of the mutation configuration using functional options.
type statusupdateOption func(*StatusUpdateMutation)

// newStatusUpdateMutation creates new mutation for the StatusUpdate entity.
func newStatusUpdateMutation(c config, op Op, opts ...statusupdateOption) *StatusUpdateMutation {
	m := &StatusUpdateMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusUpdate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusUpdateID sets the ID field of the mutation.
func withStatusUpdateID(id uuid.UUID) statusupdateOption {
	return func(m *StatusUpdateMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusUpdate
		)
		m.oldValue = func(ctx context.Context) (*StatusUpdate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusUpdate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusUpdate sets the old StatusUpdate of the mutation.
func withStatusUpdate(node *StatusUpdate) statusupdateOption {
	return func(m *StatusUpdateMutation) {
		m.oldValue = func(context.Context) (*StatusUpdate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusUpdateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusUpdateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatusUpdate entities.
func (m *StatusUpdateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusUpdateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusUpdateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusUpdate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *StatusUpdateMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *StatusUpdateMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *StatusUpdateMutation) ResetReportID() {
	m.report = nil
}

// SetStatus sets the "status" field.
func (m *StatusUpdateMutation) SetStatus(s statusupdate.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StatusUpdateMutation) Status() (r statusupdate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldStatus(ctx context.Context) (v statusupdate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StatusUpdateMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *StatusUpdateMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *StatusUpdateMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *StatusUpdateMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[statusupdate.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *StatusUpdateMutation) MessageCleared() bool {
	_, ok := m.clearedFields[statusupdate.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *StatusUpdateMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, statusupdate.FieldMessage)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *StatusUpdateMutation) SetUpdatedBy(u uuid.UUID) {
	m.updated_by = &u
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *StatusUpdateMutation) UpdatedBy() (r uuid.UUID, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldUpdatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *StatusUpdateMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[statusupdate.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *StatusUpdateMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[statusupdate.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *StatusUpdateMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, statusupdate.FieldUpdatedBy)
}

// SetIsPublic sets the "is_public" field.
func (m *StatusUpdateMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *StatusUpdateMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *StatusUpdateMutation) ResetIsPublic() {
	m.is_public = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StatusUpdateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StatusUpdateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StatusUpdate entity.
// If the StatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusUpdateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StatusUpdateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *StatusUpdateMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[statusupdate.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *StatusUpdateMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *StatusUpdateMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *StatusUpdateMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the StatusUpdateMutation builder.
func (m *StatusUpdateMutation) Where(ps ...predicate.StatusUpdate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusUpdateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusUpdateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusUpdate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusUpdateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusUpdateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusUpdate).
func (m *StatusUpdateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusUpdateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.report != nil {
		fields = append(fields, statusupdate.FieldReportID)
	}
	if m.status != nil {
		fields = append(fields, statusupdate.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, statusupdate.FieldMessage)
	}
	if m.updated_by != nil {
		fields = append(fields, statusupdate.FieldUpdatedBy)
	}
	if m.is_public != nil {
		fields = append(fields, statusupdate.FieldIsPublic)
	}
	if m.created_at != nil {
		fields = append(fields, statusupdate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusUpdateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statusupdate.FieldReportID:
		return m.ReportID()
	case statusupdate.FieldStatus:
		return m.Status()
	case statusupdate.FieldMessage:
		return m.Message()
	case statusupdate.FieldUpdatedBy:
		return m.UpdatedBy()
	case statusupdate.FieldIsPublic:
		return m.IsPublic()
	case statusupdate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusUpdateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statusupdate.FieldReportID:
		return m.OldReportID(ctx)
	case statusupdate.FieldStatus:
		return m.OldStatus(ctx)
	case statusupdate.FieldMessage:
		return m.OldMessage(ctx)
	case statusupdate.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case statusupdate.FieldIsPublic:
		return m.OldIsPublic(ctx)
	case statusupdate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StatusUpdate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusUpdateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statusupdate.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case statusupdate.FieldStatus:
		v, ok := value.(statusupdate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case statusupdate.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case statusupdate.FieldUpdatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case statusupdate.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	case statusupdate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusUpdateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusUpdateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusUpdateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StatusUpdate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusUpdateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statusupdate.FieldMessage) {
		fields = append(fields, statusupdate.FieldMessage)
	}
	if m.FieldCleared(statusupdate.FieldUpdatedBy) {
		fields = append(fields, statusupdate.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusUpdateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusUpdateMutation) ClearField(name string) error {
	switch name {
	case statusupdate.FieldMessage:
		m.ClearMessage()
		return nil
	case statusupdate.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusUpdateMutation) ResetField(name string) error {
	switch name {
	case statusupdate.FieldReportID:
		m.ResetReportID()
		return nil
	case statusupdate.FieldStatus:
		m.ResetStatus()
		return nil
	case statusupdate.FieldMessage:
		m.ResetMessage()
		return nil
	case statusupdate.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case statusupdate.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	case statusupdate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusUpdateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, statusupdate.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusUpdateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case statusupdate.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusUpdateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusUpdateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusUpdateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, statusupdate.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusUpdateMutation) EdgeCleared(name string) bool {
	switch name {
	case statusupdate.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusUpdateMutation) ClearEdge(name string) error {
	switch name {
	case statusupdate.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusUpdateMutation) ResetEdge(name string) error {
	switch name {
	case statusupdate.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown StatusUpdate edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	email                *string
	full_name            *string
	role                 *user.Role
	department_code      *string
	trust_score          *int
	addtrust_score       *int
	points               *int
	addpoints            *int
	level                *int
	addlevel             *int
	badges               *[]string
	appendbadges         []string
	streak               *int
	addstreak            *int
	last_report_date     *time.Time
	reports_submitted    *int
	addreports_submitted *int
	is_active            *bool
	clearedFields        map[string]struct{}
	reports              map[uuid.UUID]struct{}
	removedreports       map[uuid.UUID]struct{}
	clearedreports       bool
	votes                map[uuid.UUID]struct{}
	removedvotes         map[uuid.UUID]struct{}
	clearedvotes         bool
	comments             map[uuid.UUID]struct{}
	removedcomments      map[uuid.UUID]struct{}
	clearedcomments      bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *UserMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[user.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *UserMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, user.FieldFullName)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetDepartmentCode sets the "department_code" field.
func (m *UserMutation) SetDepartmentCode(s string) {
	m.department_code = &s
}

// DepartmentCode returns the value of the "department_code" field in the mutation.
func (m *UserMutation) DepartmentCode() (r string, exists bool) {
	v := m.department_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartmentCode returns the old "department_code" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDepartmentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartmentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartmentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartmentCode: %w", err)
	}
	return oldValue.DepartmentCode, nil
}

// ClearDepartmentCode clears the value of the "department_code" field.
func (m *UserMutation) ClearDepartmentCode() {
	m.department_code = nil
	m.clearedFields[user.FieldDepartmentCode] = struct{}{}
}

// DepartmentCodeCleared returns if the "department_code" field was cleared in this mutation.
func (m *UserMutation) DepartmentCodeCleared() bool {
	_, ok := m.clearedFields[user.FieldDepartmentCode]
	return ok
}

// ResetDepartmentCode resets all changes to the "department_code" field.
func (m *UserMutation) ResetDepartmentCode() {
	m.department_code = nil
	delete(m.clearedFields, user.FieldDepartmentCode)
}

// SetTrustScore sets the "trust_score" field.
func (m *UserMutation) SetTrustScore(i int) {
	m.trust_score = &i
	m.addtrust_score = nil
}

// TrustScore returns the value of the "trust_score" field in the mutation.
func (m *UserMutation) TrustScore() (r int, exists bool) {
	v := m.trust_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTrustScore returns the old "trust_score" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTrustScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrustScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrustScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrustScore: %w", err)
	}
	return oldValue.TrustScore, nil
}

// AddTrustScore adds i to the "trust_score" field.
func (m *UserMutation) AddTrustScore(i int) {
	if m.addtrust_score != nil {
		*m.addtrust_score += i
	} else {
		m.addtrust_score = &i
	}
}

// AddedTrustScore returns the value that was added to the "trust_score" field in this mutation.
func (m *UserMutation) AddedTrustScore() (r int, exists bool) {
	v := m.addtrust_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrustScore resets all changes to the "trust_score" field.
func (m *UserMutation) ResetTrustScore() {
	m.trust_score = nil
	m.addtrust_score = nil
}

// SetPoints sets the "points" field.
func (m *UserMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *UserMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *UserMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *UserMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *UserMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetLevel sets the "level" field.
func (m *UserMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *UserMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *UserMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *UserMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *UserMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetBadges sets the "badges" field.
func (m *UserMutation) SetBadges(s []string) {
	m.badges = &s
	m.appendbadges = nil
}

// Badges returns the value of the "badges" field in the mutation.
func (m *UserMutation) Badges() (r []string, exists bool) {
	v := m.badges
	if v == nil {
		return
	}
	return *v, true
}

// OldBadges returns the old "badges" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBadges(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadges: %w", err)
	}
	return oldValue.Badges, nil
}

// AppendBadges adds s to the "badges" field.
func (m *UserMutation) AppendBadges(s []string) {
	m.appendbadges = append(m.appendbadges, s...)
}

// AppendedBadges returns the list of values that were appended to the "badges" field in this mutation.
func (m *UserMutation) AppendedBadges() ([]string, bool) {
	if len(m.appendbadges) == 0 {
		return nil, false
	}
	return m.appendbadges, true
}

// ClearBadges clears the value of the "badges" field.
func (m *UserMutation) ClearBadges() {
	m.badges = nil
	m.appendbadges = nil
	m.clearedFields[user.FieldBadges] = struct{}{}
}

// BadgesCleared returns if the "badges" field was cleared in this mutation.
func (m *UserMutation) BadgesCleared() bool {
	_, ok := m.clearedFields[user.FieldBadges]
	return ok
}

// ResetBadges resets all changes to the "badges" field.
func (m *UserMutation) ResetBadges() {
	m.badges = nil
	m.appendbadges = nil
	delete(m.clearedFields, user.FieldBadges)
}

// SetStreak sets the "streak" field.
func (m *UserMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *UserMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *UserMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *UserMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *UserMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetLastReportDate sets the "last_report_date" field.
func (m *UserMutation) SetLastReportDate(t time.Time) {
	m.last_report_date = &t
}

// LastReportDate returns the value of the "last_report_date" field in the mutation.
func (m *UserMutation) LastReportDate() (r time.Time, exists bool) {
	v := m.last_report_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReportDate returns the old "last_report_date" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastReportDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReportDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReportDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReportDate: %w", err)
	}
	return oldValue.LastReportDate, nil
}

// ClearLastReportDate clears the value of the "last_report_date" field.
func (m *UserMutation) ClearLastReportDate() {
	m.last_report_date = nil
	m.clearedFields[user.FieldLastReportDate] = struct{}{}
}

// LastReportDateCleared returns if the "last_report_date" field was cleared in this mutation.
func (m *UserMutation) LastReportDateCleared() bool {
	_, ok := m.clearedFields[user.FieldLastReportDate]
	return ok
}

// ResetLastReportDate resets all changes to the "last_report_date" field.
func (m *UserMutation) ResetLastReportDate() {
	m.last_report_date = nil
	delete(m.clearedFields, user.FieldLastReportDate)
}

// SetReportsSubmitted sets the "reports_submitted" field.
func (m *UserMutation) SetReportsSubmitted(i int) {
	m.reports_submitted = &i
	m.addreports_submitted = nil
}

// ReportsSubmitted returns the value of the "reports_submitted" field in the mutation.
func (m *UserMutation) ReportsSubmitted() (r int, exists bool) {
	v := m.reports_submitted
	if v == nil {
		return
	}
	return *v, true
}

// OldReportsSubmitted returns the old "reports_submitted" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldReportsSubmitted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportsSubmitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportsSubmitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportsSubmitted: %w", err)
	}
	return oldValue.ReportsSubmitted, nil
}

// AddReportsSubmitted adds i to the "reports_submitted" field.
func (m *UserMutation) AddReportsSubmitted(i int) {
	if m.addreports_submitted != nil {
		*m.addreports_submitted += i
	} else {
		m.addreports_submitted = &i
	}
}

// AddedReportsSubmitted returns the value that was added to the "reports_submitted" field in this mutation.
func (m *UserMutation) AddedReportsSubmitted() (r int, exists bool) {
	v := m.addreports_submitted
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportsSubmitted resets all changes to the "reports_submitted" field.
func (m *UserMutation) ResetReportsSubmitted() {
	m.reports_submitted = nil
	m.addreports_submitted = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *UserMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *UserMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *UserMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *UserMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *UserMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *UserMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *UserMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// AddVoteIDs adds the "votes" edge to the Vote entity by ids.
func (m *UserMutation) AddVoteIDs(ids ...uuid.UUID) {
	if m.votes == nil {
		m.votes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.votes[ids[i]] = struct{}{}
	}
}

// ClearVotes clears the "votes" edge to the Vote entity.
func (m *UserMutation) ClearVotes() {
	m.clearedvotes = true
}

// VotesCleared reports if the "votes" edge to the Vote entity was cleared.
func (m *UserMutation) VotesCleared() bool {
	return m.clearedvotes
}

// RemoveVoteIDs removes the "votes" edge to the Vote entity by IDs.
func (m *UserMutation) RemoveVoteIDs(ids ...uuid.UUID) {
	if m.removedvotes == nil {
		m.removedvotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.votes, ids[i])
		m.removedvotes[ids[i]] = struct{}{}
	}
}

// RemovedVotes returns the removed IDs of the "votes" edge to the Vote entity.
func (m *UserMutation) RemovedVotesIDs() (ids []uuid.UUID) {
	for id := range m.removedvotes {
		ids = append(ids, id)
	}
	return
}

// VotesIDs returns the "votes" edge IDs in the mutation.
func (m *UserMutation) VotesIDs() (ids []uuid.UUID) {
	for id := range m.votes {
		ids = append(ids, id)
	}
	return
}

// ResetVotes resets all changes to the "votes" edge.
func (m *UserMutation) ResetVotes() {
	m.votes = nil
	m.clearedvotes = false
	m.removedvotes = nil
}

// AddCommentIDs adds the "comments" edge to the Comment entity by ids.
func (m *UserMutation) AddCommentIDs(ids ...uuid.UUID) {
	if m.comments == nil {
		m.comments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.comments[ids[i]] = struct{}{}
	}
}

// ClearComments clears the "comments" edge to the Comment entity.
func (m *UserMutation) ClearComments() {
	m.clearedcomments = true
}

// CommentsCleared reports if the "comments" edge to the Comment entity was cleared.
func (m *UserMutation) CommentsCleared() bool {
	return m.clearedcomments
}

// RemoveCommentIDs removes the "comments" edge to the Comment entity by IDs.
func (m *UserMutation) RemoveCommentIDs(ids ...uuid.UUID) {
	if m.removedcomments == nil {
		m.removedcomments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.comments, ids[i])
		m.removedcomments[ids[i]] = struct{}{}
	}
}

// RemovedComments returns the removed IDs of the "comments" edge to the Comment entity.
func (m *UserMutation) RemovedCommentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomments {
		ids = append(ids, id)
	}
	return
}

// CommentsIDs returns the "comments" edge IDs in the mutation.
func (m *UserMutation) CommentsIDs() (ids []uuid.UUID) {
	for id := range m.comments {
		ids = append(ids, id)
	}
	return
}

// ResetComments resets all changes to the "comments" edge.
func (m *UserMutation) ResetComments() {
	m.comments = nil
	m.clearedcomments = false
	m.removedcomments = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.department_code != nil {
		fields = append(fields, user.FieldDepartmentCode)
	}
	if m.trust_score != nil {
		fields = append(fields, user.FieldTrustScore)
	}
	if m.points != nil {
		fields = append(fields, user.FieldPoints)
	}
	if m.level != nil {
		fields = append(fields, user.FieldLevel)
	}
	if m.badges != nil {
		fields = append(fields, user.FieldBadges)
	}
	if m.streak != nil {
		fields = append(fields, user.FieldStreak)
	}
	if m.last_report_date != nil {
		fields = append(fields, user.FieldLastReportDate)
	}
	if m.reports_submitted != nil {
		fields = append(fields, user.FieldReportsSubmitted)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldRole:
		return m.Role()
	case user.FieldDepartmentCode:
		return m.DepartmentCode()
	case user.FieldTrustScore:
		return m.TrustScore()
	case user.FieldPoints:
		return m.Points()
	case user.FieldLevel:
		return m.Level()
	case user.FieldBadges:
		return m.Badges()
	case user.FieldStreak:
		return m.Streak()
	case user.FieldLastReportDate:
		return m.LastReportDate()
	case user.FieldReportsSubmitted:
		return m.ReportsSubmitted()
	case user.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldDepartmentCode:
		return m.OldDepartmentCode(ctx)
	case user.FieldTrustScore:
		return m.OldTrustScore(ctx)
	case user.FieldPoints:
		return m.OldPoints(ctx)
	case user.FieldLevel:
		return m.OldLevel(ctx)
	case user.FieldBadges:
		return m.OldBadges(ctx)
	case user.FieldStreak:
		return m.OldStreak(ctx)
	case user.FieldLastReportDate:
		return m.OldLastReportDate(ctx)
	case user.FieldReportsSubmitted:
		return m.OldReportsSubmitted(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldDepartmentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartmentCode(v)
		return nil
	case user.FieldTrustScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrustScore(v)
		return nil
	case user.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case user.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case user.FieldBadges:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadges(v)
		return nil
	case user.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case user.FieldLastReportDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReportDate(v)
		return nil
	case user.FieldReportsSubmitted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportsSubmitted(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addtrust_score != nil {
		fields = append(fields, user.FieldTrustScore)
	}
	if m.addpoints != nil {
		fields = append(fields, user.FieldPoints)
	}
	if m.addlevel != nil {
		fields = append(fields, user.FieldLevel)
	}
	if m.addstreak != nil {
		fields = append(fields, user.FieldStreak)
	}
	if m.addreports_submitted != nil {
		fields = append(fields, user.FieldReportsSubmitted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldTrustScore:
		return m.AddedTrustScore()
	case user.FieldPoints:
		return m.AddedPoints()
	case user.FieldLevel:
		return m.AddedLevel()
	case user.FieldStreak:
		return m.AddedStreak()
	case user.FieldReportsSubmitted:
		return m.AddedReportsSubmitted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldTrustScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrustScore(v)
		return nil
	case user.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case user.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case user.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case user.FieldReportsSubmitted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportsSubmitted(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldFullName) {
		fields = append(fields, user.FieldFullName)
	}
	if m.FieldCleared(user.FieldDepartmentCode) {
		fields = append(fields, user.FieldDepartmentCode)
	}
	if m.FieldCleared(user.FieldBadges) {
		fields = append(fields, user.FieldBadges)
	}
	if m.FieldCleared(user.FieldLastReportDate) {
		fields = append(fields, user.FieldLastReportDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldFullName:
		m.ClearFullName()
		return nil
	case user.FieldDepartmentCode:
		m.ClearDepartmentCode()
		return nil
	case user.FieldBadges:
		m.ClearBadges()
		return nil
	case user.FieldLastReportDate:
		m.ClearLastReportDate()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldDepartmentCode:
		m.ResetDepartmentCode()
		return nil
	case user.FieldTrustScore:
		m.ResetTrustScore()
		return nil
	case user.FieldPoints:
		m.ResetPoints()
		return nil
	case user.FieldLevel:
		m.ResetLevel()
		return nil
	case user.FieldBadges:
		m.ResetBadges()
		return nil
	case user.FieldStreak:
		m.ResetStreak()
		return nil
	case user.FieldLastReportDate:
		m.ResetLastReportDate()
		return nil
	case user.FieldReportsSubmitted:
		m.ResetReportsSubmitted()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.reports != nil {
		edges = append(edges, user.EdgeReports)
	}
	if m.votes != nil {
		edges = append(edges, user.EdgeVotes)
	}
	if m.comments != nil {
		edges = append(edges, user.EdgeComments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.votes))
		for id := range m.votes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeComments:
		ids := make([]ent.Value, 0, len(m.comments))
		for id := range m.comments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedreports != nil {
		edges = append(edges, user.EdgeReports)
	}
	if m.removedvotes != nil {
		edges = append(edges, user.EdgeVotes)
	}
	if m.removedcomments != nil {
		edges = append(edges, user.EdgeComments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.removedvotes))
		for id := range m.removedvotes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeComments:
		ids := make([]ent.Value, 0, len(m.removedcomments))
		for id := range m.removedcomments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreports {
		edges = append(edges, user.EdgeReports)
	}
	if m.clearedvotes {
		edges = append(edges, user.EdgeVotes)
	}
	if m.clearedcomments {
		edges = append(edges, user.EdgeComments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeReports:
		return m.clearedreports
	case user.EdgeVotes:
		return m.clearedvotes
	case user.EdgeComments:
		return m.clearedcomments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeReports:
		m.ResetReports()
		return nil
	case user.EdgeVotes:
		m.ResetVotes()
		return nil
	case user.EdgeComments:
		m.ResetComments()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// VoteMutation represents an operation that mutates the Vote nodes in the graph.
type VoteMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	vote_type     *vote.VoteType
	reason        *string
	clearedFields map[string]struct{}
	voter         *uuid.UUID
	clearedvoter  bool
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*Vote, error)
	predicates    []predicate.Vote
}

var _ ent.Mutation = (*VoteMutation)(nil)

// voteOption allows management of the mutation configuration using functional options.
type voteOption func(*VoteMutation)

// newVoteMutation creates new mutation for the Vote entity.
func newVoteMutation(c config, op Op, opts ...voteOption) *VoteMutation {
	m := &VoteMutation{
		config:        c,
		op:            op,
		typ:           TypeVote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoteID sets the ID field of the mutation.
func withVoteID(id uuid.UUID) voteOption {
	return func(m *VoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Vote
		)
		m.oldValue = func(ctx context.Context) (*Vote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVote sets the old Vote of the mutation.
func withVote(node *Vote) voteOption {
	return func(m *VoteMutation) {
		m.oldValue = func(context.Context) (*Vote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vote entities.
func (m *VoteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *VoteMutation) SetUserID(u uuid.UUID) {
	m.voter = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VoteMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.voter
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VoteMutation) ResetUserID() {
	m.voter = nil
}

// SetReportID sets the "report_id" field.
func (m *VoteMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *VoteMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *VoteMutation) ResetReportID() {
	m.report = nil
}

// SetVoteType sets the "vote_type" field.
func (m *VoteMutation) SetVoteType(vt vote.VoteType) {
	m.vote_type = &vt
}

// VoteType returns the value of the "vote_type" field in the mutation.
func (m *VoteMutation) VoteType() (r vote.VoteType, exists bool) {
	v := m.vote_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteType returns the old "vote_type" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldVoteType(ctx context.Context) (v vote.VoteType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteType: %w", err)
	}
	return oldValue.VoteType, nil
}

// ResetVoteType resets all changes to the "vote_type" field.
func (m *VoteMutation) ResetVoteType() {
	m.vote_type = nil
}

// SetReason sets the "reason" field.
func (m *VoteMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *VoteMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *VoteMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[vote.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *VoteMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[vote.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *VoteMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, vote.FieldReason)
}

// SetVoterID sets the "voter" edge to the User entity by id.
func (m *VoteMutation) SetVoterID(id uuid.UUID) {
	m.voter = &id
}

// ClearVoter clears the "voter" edge to the User entity.
func (m *VoteMutation) ClearVoter() {
	m.clearedvoter = true
	m.clearedFields[vote.FieldUserID] = struct{}{}
}

// VoterCleared reports if the "voter" edge to the User entity was cleared.
func (m *VoteMutation) VoterCleared() bool {
	return m.clearedvoter
}

// VoterID returns the "voter" edge ID in the mutation.
func (m *VoteMutation) VoterID() (id uuid.UUID, exists bool) {
	if m.voter != nil {
		return *m.voter, true
	}
	return
}

// VoterIDs returns the "voter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VoterID instead. It exists only for internal usage by the builders.
func (m *VoteMutation) VoterIDs() (ids []uuid.UUID) {
	if id := m.voter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVoter resets all changes to the "voter" edge.
func (m *VoteMutation) ResetVoter() {
	m.voter = nil
	m.clearedvoter = false
}

// ClearReport clears the "report" edge to the Report entity.
func (m *VoteMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[vote.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *VoteMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *VoteMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *VoteMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the VoteMutation builder.
func (m *VoteMutation) Where(ps ...predicate.Vote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vote).
func (m *VoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, vote.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vote.FieldUpdatedAt)
	}
	if m.voter != nil {
		fields = append(fields, vote.FieldUserID)
	}
	if m.report != nil {
		fields = append(fields, vote.FieldReportID)
	}
	if m.vote_type != nil {
		fields = append(fields, vote.FieldVoteType)
	}
	if m.reason != nil {
		fields = append(fields, vote.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldCreatedAt:
		return m.CreatedAt()
	case vote.FieldUpdatedAt:
		return m.UpdatedAt()
	case vote.FieldUserID:
		return m.UserID()
	case vote.FieldReportID:
		return m.ReportID()
	case vote.FieldVoteType:
		return m.VoteType()
	case vote.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vote.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case vote.FieldUserID:
		return m.OldUserID(ctx)
	case vote.FieldReportID:
		return m.OldReportID(ctx)
	case vote.FieldVoteType:
		return m.OldVoteType(ctx)
	case vote.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown Vote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vote.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case vote.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case vote.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case vote.FieldVoteType:
		v, ok := value.(vote.VoteType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteType(v)
		return nil
	case vote.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vote.FieldReason) {
		fields = append(fields, vote.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoteMutation) ClearField(name string) error {
	switch name {
	case vote.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Vote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoteMutation) ResetField(name string) error {
	switch name {
	case vote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vote.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case vote.FieldUserID:
		m.ResetUserID()
		return nil
	case vote.FieldReportID:
		m.ResetReportID()
		return nil
	case vote.FieldVoteType:
		m.ResetVoteType()
		return nil
	case vote.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.voter != nil {
		edges = append(edges, vote.EdgeVoter)
	}
	if m.report != nil {
		edges = append(edges, vote.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vote.EdgeVoter:
		if id := m.voter; id != nil {
			return []ent.Value{*id}
		}
	case vote.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedvoter {
		edges = append(edges, vote.EdgeVoter)
	}
	if m.clearedreport {
		edges = append(edges, vote.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoteMutation) EdgeCleared(name string) bool {
	switch name {
	case vote.EdgeVoter:
		return m.clearedvoter
	case vote.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoteMutation) ClearEdge(name string) error {
	switch name {
	case vote.EdgeVoter:
		m.ClearVoter()
		return nil
	case vote.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Vote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoteMutation) ResetEdge(name string) error {
	switch name {
	case vote.EdgeVoter:
		m.ResetVoter()
		return nil
	case vote.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown Vote edge %s", name)
}
