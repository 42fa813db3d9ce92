// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/comment"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
	"CivicPulseAPI/internal/model"
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

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportCreate) SetUpdatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReportNumber sets the "report_number" field.
func (_c *ReportCreate) SetReportNumber(v string) *ReportCreate {
	_c.mutation.SetReportNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReportCreate) SetTitle(v string) *ReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ReportCreate) SetDescription(v string) *ReportCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ReportCreate) SetCategory(v report.Category) *ReportCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *ReportCreate) SetSubcategory(v string) *ReportCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *ReportCreate) SetNillableSubcategory(v *string) *ReportCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ReportCreate) SetPriority(v report.Priority) *ReportCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ReportCreate) SetNillablePriority(v *report.Priority) *ReportCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (_c *ReportCreate) SetAiPriorityScore(v float64) *ReportCreate {
	_c.mutation.SetAiPriorityScore(v)
	return _c
}

// SetNillableAiPriorityScore sets the "ai_priority_score" field if the given value is not nil.
func (_c *ReportCreate) SetNillableAiPriorityScore(v *float64) *ReportCreate {
	if v != nil {
		_c.SetAiPriorityScore(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *ReportCreate) SetLongitude(v float64) *ReportCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *ReportCreate) SetLatitude(v float64) *ReportCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetStreet sets the "street" field.
func (_c *ReportCreate) SetStreet(v string) *ReportCreate {
	_c.mutation.SetStreet(v)
	return _c
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStreet(v *string) *ReportCreate {
	if v != nil {
		_c.SetStreet(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ReportCreate) SetCity(v string) *ReportCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ReportCreate) SetState(v string) *ReportCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ReportCreate) SetNillableState(v *string) *ReportCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetZipCode sets the "zip_code" field.
func (_c *ReportCreate) SetZipCode(v string) *ReportCreate {
	_c.mutation.SetZipCode(v)
	return _c
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_c *ReportCreate) SetNillableZipCode(v *string) *ReportCreate {
	if v != nil {
		_c.SetZipCode(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *ReportCreate) SetCountry(v string) *ReportCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCountry(v *string) *ReportCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetLandmark sets the "landmark" field.
func (_c *ReportCreate) SetLandmark(v string) *ReportCreate {
	_c.mutation.SetLandmark(v)
	return _c
}

// SetNillableLandmark sets the "landmark" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLandmark(v *string) *ReportCreate {
	if v != nil {
		_c.SetLandmark(*v)
	}
	return _c
}

// SetMedia sets the "media" field.
func (_c *ReportCreate) SetMedia(v []model.MediaRef) *ReportCreate {
	_c.mutation.SetMedia(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *ReportCreate) SetTags(v []string) *ReportCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetReporterID sets the "reporter_id" field.
func (_c *ReportCreate) SetReporterID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetReporterID(v)
	return _c
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_c *ReportCreate) SetIsAnonymous(v bool) *ReportCreate {
	_c.mutation.SetIsAnonymous(v)
	return _c
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_c *ReportCreate) SetNillableIsAnonymous(v *bool) *ReportCreate {
	if v != nil {
		_c.SetIsAnonymous(*v)
	}
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *ReportCreate) SetIsPublic(v bool) *ReportCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *ReportCreate) SetNillableIsPublic(v *bool) *ReportCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetIsFeatured sets the "is_featured" field.
func (_c *ReportCreate) SetIsFeatured(v bool) *ReportCreate {
	_c.mutation.SetIsFeatured(v)
	return _c
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_c *ReportCreate) SetNillableIsFeatured(v *bool) *ReportCreate {
	if v != nil {
		_c.SetIsFeatured(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportCreate) SetStatus(v report.Status) *ReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStatus(v *report.Status) *ReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_c *ReportCreate) SetStatusChangedAt(v time.Time) *ReportCreate {
	_c.mutation.SetStatusChangedAt(v)
	return _c
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStatusChangedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetStatusChangedAt(*v)
	}
	return _c
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (_c *ReportCreate) SetAssignedDepartmentCode(v string) *ReportCreate {
	_c.mutation.SetAssignedDepartmentCode(v)
	return _c
}

// SetNillableAssignedDepartmentCode sets the "assigned_department_code" field if the given value is not nil.
func (_c *ReportCreate) SetNillableAssignedDepartmentCode(v *string) *ReportCreate {
	if v != nil {
		_c.SetAssignedDepartmentCode(*v)
	}
	return _c
}

// SetIsValidated sets the "is_validated" field.
func (_c *ReportCreate) SetIsValidated(v bool) *ReportCreate {
	_c.mutation.SetIsValidated(v)
	return _c
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_c *ReportCreate) SetNillableIsValidated(v *bool) *ReportCreate {
	if v != nil {
		_c.SetIsValidated(*v)
	}
	return _c
}

// SetValidatedBy sets the "validated_by" field.
func (_c *ReportCreate) SetValidatedBy(v uuid.UUID) *ReportCreate {
	_c.mutation.SetValidatedBy(v)
	return _c
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_c *ReportCreate) SetNillableValidatedBy(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetValidatedBy(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *ReportCreate) SetValidatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableValidatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetValidationNotes sets the "validation_notes" field.
func (_c *ReportCreate) SetValidationNotes(v string) *ReportCreate {
	_c.mutation.SetValidationNotes(v)
	return _c
}

// SetNillableValidationNotes sets the "validation_notes" field if the given value is not nil.
func (_c *ReportCreate) SetNillableValidationNotes(v *string) *ReportCreate {
	if v != nil {
		_c.SetValidationNotes(*v)
	}
	return _c
}

// SetUpvotes sets the "upvotes" field.
func (_c *ReportCreate) SetUpvotes(v int) *ReportCreate {
	_c.mutation.SetUpvotes(v)
	return _c
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpvotes(v *int) *ReportCreate {
	if v != nil {
		_c.SetUpvotes(*v)
	}
	return _c
}

// SetDownvotes sets the "downvotes" field.
func (_c *ReportCreate) SetDownvotes(v int) *ReportCreate {
	_c.mutation.SetDownvotes(v)
	return _c
}

// SetNillableDownvotes sets the "downvotes" field if the given value is not nil.
func (_c *ReportCreate) SetNillableDownvotes(v *int) *ReportCreate {
	if v != nil {
		_c.SetDownvotes(*v)
	}
	return _c
}

// SetTotalVotes sets the "total_votes" field.
func (_c *ReportCreate) SetTotalVotes(v int) *ReportCreate {
	_c.mutation.SetTotalVotes(v)
	return _c
}

// SetNillableTotalVotes sets the "total_votes" field if the given value is not nil.
func (_c *ReportCreate) SetNillableTotalVotes(v *int) *ReportCreate {
	if v != nil {
		_c.SetTotalVotes(*v)
	}
	return _c
}

// SetViews sets the "views" field.
func (_c *ReportCreate) SetViews(v int) *ReportCreate {
	_c.mutation.SetViews(v)
	return _c
}

// SetNillableViews sets the "views" field if the given value is not nil.
func (_c *ReportCreate) SetNillableViews(v *int) *ReportCreate {
	if v != nil {
		_c.SetViews(*v)
	}
	return _c
}

// SetShares sets the "shares" field.
func (_c *ReportCreate) SetShares(v int) *ReportCreate {
	_c.mutation.SetShares(v)
	return _c
}

// SetNillableShares sets the "shares" field if the given value is not nil.
func (_c *ReportCreate) SetNillableShares(v *int) *ReportCreate {
	if v != nil {
		_c.SetShares(*v)
	}
	return _c
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (_c *ReportCreate) SetExpectedResolutionHours(v float64) *ReportCreate {
	_c.mutation.SetExpectedResolutionHours(v)
	return _c
}

// SetNillableExpectedResolutionHours sets the "expected_resolution_hours" field if the given value is not nil.
func (_c *ReportCreate) SetNillableExpectedResolutionHours(v *float64) *ReportCreate {
	if v != nil {
		_c.SetExpectedResolutionHours(*v)
	}
	return _c
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (_c *ReportCreate) SetActualResolutionHours(v float64) *ReportCreate {
	_c.mutation.SetActualResolutionHours(v)
	return _c
}

// SetNillableActualResolutionHours sets the "actual_resolution_hours" field if the given value is not nil.
func (_c *ReportCreate) SetNillableActualResolutionHours(v *float64) *ReportCreate {
	if v != nil {
		_c.SetActualResolutionHours(*v)
	}
	return _c
}

// SetIsOverdue sets the "is_overdue" field.
func (_c *ReportCreate) SetIsOverdue(v bool) *ReportCreate {
	_c.mutation.SetIsOverdue(v)
	return _c
}

// SetNillableIsOverdue sets the "is_overdue" field if the given value is not nil.
func (_c *ReportCreate) SetNillableIsOverdue(v *bool) *ReportCreate {
	if v != nil {
		_c.SetIsOverdue(*v)
	}
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *ReportCreate) SetEscalationLevel(v int) *ReportCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_c *ReportCreate) SetNillableEscalationLevel(v *int) *ReportCreate {
	if v != nil {
		_c.SetEscalationLevel(*v)
	}
	return _c
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (_c *ReportCreate) SetLastEscalatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetLastEscalatedAt(v)
	return _c
}

// SetNillableLastEscalatedAt sets the "last_escalated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLastEscalatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetLastEscalatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ReportCreate) SetResolvedAt(v time.Time) *ReportCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableResolvedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *ReportCreate) SetResolvedBy(v uuid.UUID) *ReportCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *ReportCreate) SetNillableResolvedBy(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_c *ReportCreate) SetResolutionNotes(v string) *ReportCreate {
	_c.mutation.SetResolutionNotes(v)
	return _c
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_c *ReportCreate) SetNillableResolutionNotes(v *string) *ReportCreate {
	if v != nil {
		_c.SetResolutionNotes(*v)
	}
	return _c
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (_c *ReportCreate) SetSatisfactionRating(v int) *ReportCreate {
	_c.mutation.SetSatisfactionRating(v)
	return _c
}

// SetNillableSatisfactionRating sets the "satisfaction_rating" field if the given value is not nil.
func (_c *ReportCreate) SetNillableSatisfactionRating(v *int) *ReportCreate {
	if v != nil {
		_c.SetSatisfactionRating(*v)
	}
	return _c
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (_c *ReportCreate) SetDuplicateOfID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetDuplicateOfID(v)
	return _c
}

// SetNillableDuplicateOfID sets the "duplicate_of_id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableDuplicateOfID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetDuplicateOfID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReporter sets the "reporter" edge to the User entity.
func (_c *ReportCreate) SetReporter(v *User) *ReportCreate {
	return _c.SetReporterID(v.ID)
}

// SetDuplicateOf sets the "duplicate_of" edge to the Report entity.
func (_c *ReportCreate) SetDuplicateOf(v *Report) *ReportCreate {
	return _c.SetDuplicateOfID(v.ID)
}

// AddDuplicateIDs adds the "duplicates" edge to the Report entity by IDs.
func (_c *ReportCreate) AddDuplicateIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddDuplicateIDs(ids...)
	return _c
}

// AddDuplicates adds the "duplicates" edges to the Report entity.
func (_c *ReportCreate) AddDuplicates(v ...*Report) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDuplicateIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_c *ReportCreate) AddVoteIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddVoteIDs(ids...)
	return _c
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_c *ReportCreate) AddVotes(v ...*Vote) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVoteIDs(ids...)
}

// AddStatusUpdateIDs adds the "status_updates" edge to the StatusUpdate entity by IDs.
func (_c *ReportCreate) AddStatusUpdateIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddStatusUpdateIDs(ids...)
	return _c
}

// AddStatusUpdates adds the "status_updates" edges to the StatusUpdate entity.
func (_c *ReportCreate) AddStatusUpdates(v ...*StatusUpdate) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusUpdateIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_c *ReportCreate) AddCommentIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddCommentIDs(ids...)
	return _c
}

// AddComments adds the "comments" edges to the Comment entity.
func (_c *ReportCreate) AddComments(v ...*Comment) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommentIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := report.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.AiPriorityScore(); !ok {
		v := report.DefaultAiPriorityScore
		_c.mutation.SetAiPriorityScore(v)
	}
	if _, ok := _c.mutation.Country(); !ok {
		v := report.DefaultCountry
		_c.mutation.SetCountry(v)
	}
	if _, ok := _c.mutation.IsAnonymous(); !ok {
		v := report.DefaultIsAnonymous
		_c.mutation.SetIsAnonymous(v)
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := report.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		v := report.DefaultIsFeatured
		_c.mutation.SetIsFeatured(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := report.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		v := report.DefaultStatusChangedAt()
		_c.mutation.SetStatusChangedAt(v)
	}
	if _, ok := _c.mutation.IsValidated(); !ok {
		v := report.DefaultIsValidated
		_c.mutation.SetIsValidated(v)
	}
	if _, ok := _c.mutation.Upvotes(); !ok {
		v := report.DefaultUpvotes
		_c.mutation.SetUpvotes(v)
	}
	if _, ok := _c.mutation.Downvotes(); !ok {
		v := report.DefaultDownvotes
		_c.mutation.SetDownvotes(v)
	}
	if _, ok := _c.mutation.TotalVotes(); !ok {
		v := report.DefaultTotalVotes
		_c.mutation.SetTotalVotes(v)
	}
	if _, ok := _c.mutation.Views(); !ok {
		v := report.DefaultViews
		_c.mutation.SetViews(v)
	}
	if _, ok := _c.mutation.Shares(); !ok {
		v := report.DefaultShares
		_c.mutation.SetShares(v)
	}
	if _, ok := _c.mutation.IsOverdue(); !ok {
		v := report.DefaultIsOverdue
		_c.mutation.SetIsOverdue(v)
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		v := report.DefaultEscalationLevel
		_c.mutation.SetEscalationLevel(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := report.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Report.updated_at"`)}
	}
	if _, ok := _c.mutation.ReportNumber(); !ok {
		return &ValidationError{Name: "report_number", err: errors.New(`ent: missing required field "Report.report_number"`)}
	}
	if v, ok := _c.mutation.ReportNumber(); ok {
		if err := report.ReportNumberValidator(v); err != nil {
			return &ValidationError{Name: "report_number", err: fmt.Errorf(`ent: validator failed for field "Report.report_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Report.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Report.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Report.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Subcategory(); ok {
		if err := report.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Report.subcategory": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Report.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiPriorityScore(); !ok {
		return &ValidationError{Name: "ai_priority_score", err: errors.New(`ent: missing required field "Report.ai_priority_score"`)}
	}
	if v, ok := _c.mutation.AiPriorityScore(); ok {
		if err := report.AiPriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "ai_priority_score", err: fmt.Errorf(`ent: validator failed for field "Report.ai_priority_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`ent: missing required field "Report.longitude"`)}
	}
	if v, ok := _c.mutation.Longitude(); ok {
		if err := report.LongitudeValidator(v); err != nil {
			return &ValidationError{Name: "longitude", err: fmt.Errorf(`ent: validator failed for field "Report.longitude": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`ent: missing required field "Report.latitude"`)}
	}
	if v, ok := _c.mutation.Latitude(); ok {
		if err := report.LatitudeValidator(v); err != nil {
			return &ValidationError{Name: "latitude", err: fmt.Errorf(`ent: validator failed for field "Report.latitude": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Street(); ok {
		if err := report.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "Report.street": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Report.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := report.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Report.city": %w`, err)}
		}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := report.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Report.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ZipCode(); ok {
		if err := report.ZipCodeValidator(v); err != nil {
			return &ValidationError{Name: "zip_code", err: fmt.Errorf(`ent: validator failed for field "Report.zip_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "Report.country"`)}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := report.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Report.country": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Landmark(); ok {
		if err := report.LandmarkValidator(v); err != nil {
			return &ValidationError{Name: "landmark", err: fmt.Errorf(`ent: validator failed for field "Report.landmark": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReporterID(); !ok {
		return &ValidationError{Name: "reporter_id", err: errors.New(`ent: missing required field "Report.reporter_id"`)}
	}
	if _, ok := _c.mutation.IsAnonymous(); !ok {
		return &ValidationError{Name: "is_anonymous", err: errors.New(`ent: missing required field "Report.is_anonymous"`)}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`ent: missing required field "Report.is_public"`)}
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		return &ValidationError{Name: "is_featured", err: errors.New(`ent: missing required field "Report.is_featured"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Report.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		return &ValidationError{Name: "status_changed_at", err: errors.New(`ent: missing required field "Report.status_changed_at"`)}
	}
	if v, ok := _c.mutation.AssignedDepartmentCode(); ok {
		if err := report.AssignedDepartmentCodeValidator(v); err != nil {
			return &ValidationError{Name: "assigned_department_code", err: fmt.Errorf(`ent: validator failed for field "Report.assigned_department_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsValidated(); !ok {
		return &ValidationError{Name: "is_validated", err: errors.New(`ent: missing required field "Report.is_validated"`)}
	}
	if _, ok := _c.mutation.Upvotes(); !ok {
		return &ValidationError{Name: "upvotes", err: errors.New(`ent: missing required field "Report.upvotes"`)}
	}
	if v, ok := _c.mutation.Upvotes(); ok {
		if err := report.UpvotesValidator(v); err != nil {
			return &ValidationError{Name: "upvotes", err: fmt.Errorf(`ent: validator failed for field "Report.upvotes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Downvotes(); !ok {
		return &ValidationError{Name: "downvotes", err: errors.New(`ent: missing required field "Report.downvotes"`)}
	}
	if v, ok := _c.mutation.Downvotes(); ok {
		if err := report.DownvotesValidator(v); err != nil {
			return &ValidationError{Name: "downvotes", err: fmt.Errorf(`ent: validator failed for field "Report.downvotes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalVotes(); !ok {
		return &ValidationError{Name: "total_votes", err: errors.New(`ent: missing required field "Report.total_votes"`)}
	}
	if v, ok := _c.mutation.TotalVotes(); ok {
		if err := report.TotalVotesValidator(v); err != nil {
			return &ValidationError{Name: "total_votes", err: fmt.Errorf(`ent: validator failed for field "Report.total_votes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Views(); !ok {
		return &ValidationError{Name: "views", err: errors.New(`ent: missing required field "Report.views"`)}
	}
	if _, ok := _c.mutation.Shares(); !ok {
		return &ValidationError{Name: "shares", err: errors.New(`ent: missing required field "Report.shares"`)}
	}
	if _, ok := _c.mutation.IsOverdue(); !ok {
		return &ValidationError{Name: "is_overdue", err: errors.New(`ent: missing required field "Report.is_overdue"`)}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "Report.escalation_level"`)}
	}
	if v, ok := _c.mutation.EscalationLevel(); ok {
		if err := report.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "Report.escalation_level": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SatisfactionRating(); ok {
		if err := report.SatisfactionRatingValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_rating", err: fmt.Errorf(`ent: validator failed for field "Report.satisfaction_rating": %w`, err)}
		}
	}
	if len(_c.mutation.ReporterIDs()) == 0 {
		return &ValidationError{Name: "reporter", err: errors.New(`ent: missing required edge "Report.reporter"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
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

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ReportNumber(); ok {
		_spec.SetField(report.FieldReportNumber, field.TypeString, value)
		_node.ReportNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(report.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.AiPriorityScore(); ok {
		_spec.SetField(report.FieldAiPriorityScore, field.TypeFloat64, value)
		_node.AiPriorityScore = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Street(); ok {
		_spec.SetField(report.FieldStreet, field.TypeString, value)
		_node.Street = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(report.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(report.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.ZipCode(); ok {
		_spec.SetField(report.FieldZipCode, field.TypeString, value)
		_node.ZipCode = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(report.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Landmark(); ok {
		_spec.SetField(report.FieldLandmark, field.TypeString, value)
		_node.Landmark = &value
	}
	if value, ok := _c.mutation.Media(); ok {
		_spec.SetField(report.FieldMedia, field.TypeJSON, value)
		_node.Media = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(report.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.IsAnonymous(); ok {
		_spec.SetField(report.FieldIsAnonymous, field.TypeBool, value)
		_node.IsAnonymous = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(report.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.IsFeatured(); ok {
		_spec.SetField(report.FieldIsFeatured, field.TypeBool, value)
		_node.IsFeatured = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusChangedAt(); ok {
		_spec.SetField(report.FieldStatusChangedAt, field.TypeTime, value)
		_node.StatusChangedAt = value
	}
	if value, ok := _c.mutation.AssignedDepartmentCode(); ok {
		_spec.SetField(report.FieldAssignedDepartmentCode, field.TypeString, value)
		_node.AssignedDepartmentCode = &value
	}
	if value, ok := _c.mutation.IsValidated(); ok {
		_spec.SetField(report.FieldIsValidated, field.TypeBool, value)
		_node.IsValidated = value
	}
	if value, ok := _c.mutation.ValidatedBy(); ok {
		_spec.SetField(report.FieldValidatedBy, field.TypeUUID, value)
		_node.ValidatedBy = &value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(report.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.ValidationNotes(); ok {
		_spec.SetField(report.FieldValidationNotes, field.TypeString, value)
		_node.ValidationNotes = &value
	}
	if value, ok := _c.mutation.Upvotes(); ok {
		_spec.SetField(report.FieldUpvotes, field.TypeInt, value)
		_node.Upvotes = value
	}
	if value, ok := _c.mutation.Downvotes(); ok {
		_spec.SetField(report.FieldDownvotes, field.TypeInt, value)
		_node.Downvotes = value
	}
	if value, ok := _c.mutation.TotalVotes(); ok {
		_spec.SetField(report.FieldTotalVotes, field.TypeInt, value)
		_node.TotalVotes = value
	}
	if value, ok := _c.mutation.Views(); ok {
		_spec.SetField(report.FieldViews, field.TypeInt, value)
		_node.Views = value
	}
	if value, ok := _c.mutation.Shares(); ok {
		_spec.SetField(report.FieldShares, field.TypeInt, value)
		_node.Shares = value
	}
	if value, ok := _c.mutation.ExpectedResolutionHours(); ok {
		_spec.SetField(report.FieldExpectedResolutionHours, field.TypeFloat64, value)
		_node.ExpectedResolutionHours = &value
	}
	if value, ok := _c.mutation.ActualResolutionHours(); ok {
		_spec.SetField(report.FieldActualResolutionHours, field.TypeFloat64, value)
		_node.ActualResolutionHours = &value
	}
	if value, ok := _c.mutation.IsOverdue(); ok {
		_spec.SetField(report.FieldIsOverdue, field.TypeBool, value)
		_node.IsOverdue = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(report.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.LastEscalatedAt(); ok {
		_spec.SetField(report.FieldLastEscalatedAt, field.TypeTime, value)
		_node.LastEscalatedAt = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(report.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(report.FieldResolvedBy, field.TypeUUID, value)
		_node.ResolvedBy = &value
	}
	if value, ok := _c.mutation.ResolutionNotes(); ok {
		_spec.SetField(report.FieldResolutionNotes, field.TypeString, value)
		_node.ResolutionNotes = &value
	}
	if value, ok := _c.mutation.SatisfactionRating(); ok {
		_spec.SetField(report.FieldSatisfactionRating, field.TypeInt, value)
		_node.SatisfactionRating = &value
	}
	if nodes := _c.mutation.ReporterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.ReporterTable,
			Columns: []string{report.ReporterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReporterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DuplicateOfIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.DuplicateOfTable,
			Columns: []string{report.DuplicateOfColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DuplicateOfID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DuplicatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.DuplicatesTable,
			Columns: []string{report.DuplicatesColumn},
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
			Table:   report.VotesTable,
			Columns: []string{report.VotesColumn},
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
	if nodes := _c.mutation.StatusUpdatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusUpdatesTable,
			Columns: []string{report.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusupdate.FieldID, field.TypeUUID),
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
			Table:   report.CommentsTable,
			Columns: []string{report.CommentsColumn},
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
//	client.Report.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreate) OnConflict(opts ...sql.ConflictOption) *ReportUpsertOne {
	_c.conflict = opts
	return &ReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreate) OnConflictColumns(columns ...string) *ReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertOne{
		create: _c,
	}
}

type (
	// ReportUpsertOne is the builder for "upsert"-ing
	//  one Report node.
	ReportUpsertOne struct {
		create *ReportCreate
	}

	// ReportUpsert is the "OnConflict" setter.
	ReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportUpsert) SetUpdatedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateUpdatedAt() *ReportUpsert {
	u.SetExcluded(report.FieldUpdatedAt)
	return u
}

// SetReportNumber sets the "report_number" field.
func (u *ReportUpsert) SetReportNumber(v string) *ReportUpsert {
	u.Set(report.FieldReportNumber, v)
	return u
}

// UpdateReportNumber sets the "report_number" field to the value that was provided on create.
func (u *ReportUpsert) UpdateReportNumber() *ReportUpsert {
	u.SetExcluded(report.FieldReportNumber)
	return u
}

// SetTitle sets the "title" field.
func (u *ReportUpsert) SetTitle(v string) *ReportUpsert {
	u.Set(report.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportUpsert) UpdateTitle() *ReportUpsert {
	u.SetExcluded(report.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ReportUpsert) SetDescription(v string) *ReportUpsert {
	u.Set(report.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ReportUpsert) UpdateDescription() *ReportUpsert {
	u.SetExcluded(report.FieldDescription)
	return u
}

// SetCategory sets the "category" field.
func (u *ReportUpsert) SetCategory(v report.Category) *ReportUpsert {
	u.Set(report.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ReportUpsert) UpdateCategory() *ReportUpsert {
	u.SetExcluded(report.FieldCategory)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *ReportUpsert) SetSubcategory(v string) *ReportUpsert {
	u.Set(report.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *ReportUpsert) UpdateSubcategory() *ReportUpsert {
	u.SetExcluded(report.FieldSubcategory)
	return u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *ReportUpsert) ClearSubcategory() *ReportUpsert {
	u.SetNull(report.FieldSubcategory)
	return u
}

// SetPriority sets the "priority" field.
func (u *ReportUpsert) SetPriority(v report.Priority) *ReportUpsert {
	u.Set(report.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ReportUpsert) UpdatePriority() *ReportUpsert {
	u.SetExcluded(report.FieldPriority)
	return u
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (u *ReportUpsert) SetAiPriorityScore(v float64) *ReportUpsert {
	u.Set(report.FieldAiPriorityScore, v)
	return u
}

// UpdateAiPriorityScore sets the "ai_priority_score" field to the value that was provided on create.
func (u *ReportUpsert) UpdateAiPriorityScore() *ReportUpsert {
	u.SetExcluded(report.FieldAiPriorityScore)
	return u
}

// AddAiPriorityScore adds v to the "ai_priority_score" field.
func (u *ReportUpsert) AddAiPriorityScore(v float64) *ReportUpsert {
	u.Add(report.FieldAiPriorityScore, v)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *ReportUpsert) SetLongitude(v float64) *ReportUpsert {
	u.Set(report.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *ReportUpsert) UpdateLongitude() *ReportUpsert {
	u.SetExcluded(report.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *ReportUpsert) AddLongitude(v float64) *ReportUpsert {
	u.Add(report.FieldLongitude, v)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *ReportUpsert) SetLatitude(v float64) *ReportUpsert {
	u.Set(report.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *ReportUpsert) UpdateLatitude() *ReportUpsert {
	u.SetExcluded(report.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *ReportUpsert) AddLatitude(v float64) *ReportUpsert {
	u.Add(report.FieldLatitude, v)
	return u
}

// SetStreet sets the "street" field.
func (u *ReportUpsert) SetStreet(v string) *ReportUpsert {
	u.Set(report.FieldStreet, v)
	return u
}

// UpdateStreet sets the "street" field to the value that was provided on create.
func (u *ReportUpsert) UpdateStreet() *ReportUpsert {
	u.SetExcluded(report.FieldStreet)
	return u
}

// ClearStreet clears the value of the "street" field.
func (u *ReportUpsert) ClearStreet() *ReportUpsert {
	u.SetNull(report.FieldStreet)
	return u
}

// SetCity sets the "city" field.
func (u *ReportUpsert) SetCity(v string) *ReportUpsert {
	u.Set(report.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ReportUpsert) UpdateCity() *ReportUpsert {
	u.SetExcluded(report.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *ReportUpsert) SetState(v string) *ReportUpsert {
	u.Set(report.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ReportUpsert) UpdateState() *ReportUpsert {
	u.SetExcluded(report.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *ReportUpsert) ClearState() *ReportUpsert {
	u.SetNull(report.FieldState)
	return u
}

// SetZipCode sets the "zip_code" field.
func (u *ReportUpsert) SetZipCode(v string) *ReportUpsert {
	u.Set(report.FieldZipCode, v)
	return u
}

// UpdateZipCode sets the "zip_code" field to the value that was provided on create.
func (u *ReportUpsert) UpdateZipCode() *ReportUpsert {
	u.SetExcluded(report.FieldZipCode)
	return u
}

// ClearZipCode clears the value of the "zip_code" field.
func (u *ReportUpsert) ClearZipCode() *ReportUpsert {
	u.SetNull(report.FieldZipCode)
	return u
}

// SetCountry sets the "country" field.
func (u *ReportUpsert) SetCountry(v string) *ReportUpsert {
	u.Set(report.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ReportUpsert) UpdateCountry() *ReportUpsert {
	u.SetExcluded(report.FieldCountry)
	return u
}

// SetLandmark sets the "landmark" field.
func (u *ReportUpsert) SetLandmark(v string) *ReportUpsert {
	u.Set(report.FieldLandmark, v)
	return u
}

// UpdateLandmark sets the "landmark" field to the value that was provided on create.
func (u *ReportUpsert) UpdateLandmark() *ReportUpsert {
	u.SetExcluded(report.FieldLandmark)
	return u
}

// ClearLandmark clears the value of the "landmark" field.
func (u *ReportUpsert) ClearLandmark() *ReportUpsert {
	u.SetNull(report.FieldLandmark)
	return u
}

// SetMedia sets the "media" field.
func (u *ReportUpsert) SetMedia(v []model.MediaRef) *ReportUpsert {
	u.Set(report.FieldMedia, v)
	return u
}

// UpdateMedia sets the "media" field to the value that was provided on create.
func (u *ReportUpsert) UpdateMedia() *ReportUpsert {
	u.SetExcluded(report.FieldMedia)
	return u
}

// ClearMedia clears the value of the "media" field.
func (u *ReportUpsert) ClearMedia() *ReportUpsert {
	u.SetNull(report.FieldMedia)
	return u
}

// SetTags sets the "tags" field.
func (u *ReportUpsert) SetTags(v []string) *ReportUpsert {
	u.Set(report.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ReportUpsert) UpdateTags() *ReportUpsert {
	u.SetExcluded(report.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *ReportUpsert) ClearTags() *ReportUpsert {
	u.SetNull(report.FieldTags)
	return u
}

// SetReporterID sets the "reporter_id" field.
func (u *ReportUpsert) SetReporterID(v uuid.UUID) *ReportUpsert {
	u.Set(report.FieldReporterID, v)
	return u
}

// UpdateReporterID sets the "reporter_id" field to the value that was provided on create.
func (u *ReportUpsert) UpdateReporterID() *ReportUpsert {
	u.SetExcluded(report.FieldReporterID)
	return u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (u *ReportUpsert) SetIsAnonymous(v bool) *ReportUpsert {
	u.Set(report.FieldIsAnonymous, v)
	return u
}

// UpdateIsAnonymous sets the "is_anonymous" field to the value that was provided on create.
func (u *ReportUpsert) UpdateIsAnonymous() *ReportUpsert {
	u.SetExcluded(report.FieldIsAnonymous)
	return u
}

// SetIsPublic sets the "is_public" field.
func (u *ReportUpsert) SetIsPublic(v bool) *ReportUpsert {
	u.Set(report.FieldIsPublic, v)
	return u
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *ReportUpsert) UpdateIsPublic() *ReportUpsert {
	u.SetExcluded(report.FieldIsPublic)
	return u
}

// SetIsFeatured sets the "is_featured" field.
func (u *ReportUpsert) SetIsFeatured(v bool) *ReportUpsert {
	u.Set(report.FieldIsFeatured, v)
	return u
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *ReportUpsert) UpdateIsFeatured() *ReportUpsert {
	u.SetExcluded(report.FieldIsFeatured)
	return u
}

// SetStatus sets the "status" field.
func (u *ReportUpsert) SetStatus(v report.Status) *ReportUpsert {
	u.Set(report.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsert) UpdateStatus() *ReportUpsert {
	u.SetExcluded(report.FieldStatus)
	return u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (u *ReportUpsert) SetStatusChangedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldStatusChangedAt, v)
	return u
}

// UpdateStatusChangedAt sets the "status_changed_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateStatusChangedAt() *ReportUpsert {
	u.SetExcluded(report.FieldStatusChangedAt)
	return u
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (u *ReportUpsert) SetAssignedDepartmentCode(v string) *ReportUpsert {
	u.Set(report.FieldAssignedDepartmentCode, v)
	return u
}

// UpdateAssignedDepartmentCode sets the "assigned_department_code" field to the value that was provided on create.
func (u *ReportUpsert) UpdateAssignedDepartmentCode() *ReportUpsert {
	u.SetExcluded(report.FieldAssignedDepartmentCode)
	return u
}

// ClearAssignedDepartmentCode clears the value of the "assigned_department_code" field.
func (u *ReportUpsert) ClearAssignedDepartmentCode() *ReportUpsert {
	u.SetNull(report.FieldAssignedDepartmentCode)
	return u
}

// SetIsValidated sets the "is_validated" field.
func (u *ReportUpsert) SetIsValidated(v bool) *ReportUpsert {
	u.Set(report.FieldIsValidated, v)
	return u
}

// UpdateIsValidated sets the "is_validated" field to the value that was provided on create.
func (u *ReportUpsert) UpdateIsValidated() *ReportUpsert {
	u.SetExcluded(report.FieldIsValidated)
	return u
}

// SetValidatedBy sets the "validated_by" field.
func (u *ReportUpsert) SetValidatedBy(v uuid.UUID) *ReportUpsert {
	u.Set(report.FieldValidatedBy, v)
	return u
}

// UpdateValidatedBy sets the "validated_by" field to the value that was provided on create.
func (u *ReportUpsert) UpdateValidatedBy() *ReportUpsert {
	u.SetExcluded(report.FieldValidatedBy)
	return u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (u *ReportUpsert) ClearValidatedBy() *ReportUpsert {
	u.SetNull(report.FieldValidatedBy)
	return u
}

// SetValidatedAt sets the "validated_at" field.
func (u *ReportUpsert) SetValidatedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldValidatedAt, v)
	return u
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateValidatedAt() *ReportUpsert {
	u.SetExcluded(report.FieldValidatedAt)
	return u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *ReportUpsert) ClearValidatedAt() *ReportUpsert {
	u.SetNull(report.FieldValidatedAt)
	return u
}

// SetValidationNotes sets the "validation_notes" field.
func (u *ReportUpsert) SetValidationNotes(v string) *ReportUpsert {
	u.Set(report.FieldValidationNotes, v)
	return u
}

// UpdateValidationNotes sets the "validation_notes" field to the value that was provided on create.
func (u *ReportUpsert) UpdateValidationNotes() *ReportUpsert {
	u.SetExcluded(report.FieldValidationNotes)
	return u
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (u *ReportUpsert) ClearValidationNotes() *ReportUpsert {
	u.SetNull(report.FieldValidationNotes)
	return u
}

// SetUpvotes sets the "upvotes" field.
func (u *ReportUpsert) SetUpvotes(v int) *ReportUpsert {
	u.Set(report.FieldUpvotes, v)
	return u
}

// UpdateUpvotes sets the "upvotes" field to the value that was provided on create.
func (u *ReportUpsert) UpdateUpvotes() *ReportUpsert {
	u.SetExcluded(report.FieldUpvotes)
	return u
}

// AddUpvotes adds v to the "upvotes" field.
func (u *ReportUpsert) AddUpvotes(v int) *ReportUpsert {
	u.Add(report.FieldUpvotes, v)
	return u
}

// SetDownvotes sets the "downvotes" field.
func (u *ReportUpsert) SetDownvotes(v int) *ReportUpsert {
	u.Set(report.FieldDownvotes, v)
	return u
}

// UpdateDownvotes sets the "downvotes" field to the value that was provided on create.
func (u *ReportUpsert) UpdateDownvotes() *ReportUpsert {
	u.SetExcluded(report.FieldDownvotes)
	return u
}

// AddDownvotes adds v to the "downvotes" field.
func (u *ReportUpsert) AddDownvotes(v int) *ReportUpsert {
	u.Add(report.FieldDownvotes, v)
	return u
}

// SetTotalVotes sets the "total_votes" field.
func (u *ReportUpsert) SetTotalVotes(v int) *ReportUpsert {
	u.Set(report.FieldTotalVotes, v)
	return u
}

// UpdateTotalVotes sets the "total_votes" field to the value that was provided on create.
func (u *ReportUpsert) UpdateTotalVotes() *ReportUpsert {
	u.SetExcluded(report.FieldTotalVotes)
	return u
}

// AddTotalVotes adds v to the "total_votes" field.
func (u *ReportUpsert) AddTotalVotes(v int) *ReportUpsert {
	u.Add(report.FieldTotalVotes, v)
	return u
}

// SetViews sets the "views" field.
func (u *ReportUpsert) SetViews(v int) *ReportUpsert {
	u.Set(report.FieldViews, v)
	return u
}

// UpdateViews sets the "views" field to the value that was provided on create.
func (u *ReportUpsert) UpdateViews() *ReportUpsert {
	u.SetExcluded(report.FieldViews)
	return u
}

// AddViews adds v to the "views" field.
func (u *ReportUpsert) AddViews(v int) *ReportUpsert {
	u.Add(report.FieldViews, v)
	return u
}

// SetShares sets the "shares" field.
func (u *ReportUpsert) SetShares(v int) *ReportUpsert {
	u.Set(report.FieldShares, v)
	return u
}

// UpdateShares sets the "shares" field to the value that was provided on create.
func (u *ReportUpsert) UpdateShares() *ReportUpsert {
	u.SetExcluded(report.FieldShares)
	return u
}

// AddShares adds v to the "shares" field.
func (u *ReportUpsert) AddShares(v int) *ReportUpsert {
	u.Add(report.FieldShares, v)
	return u
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (u *ReportUpsert) SetExpectedResolutionHours(v float64) *ReportUpsert {
	u.Set(report.FieldExpectedResolutionHours, v)
	return u
}

// UpdateExpectedResolutionHours sets the "expected_resolution_hours" field to the value that was provided on create.
func (u *ReportUpsert) UpdateExpectedResolutionHours() *ReportUpsert {
	u.SetExcluded(report.FieldExpectedResolutionHours)
	return u
}

// AddExpectedResolutionHours adds v to the "expected_resolution_hours" field.
func (u *ReportUpsert) AddExpectedResolutionHours(v float64) *ReportUpsert {
	u.Add(report.FieldExpectedResolutionHours, v)
	return u
}

// ClearExpectedResolutionHours clears the value of the "expected_resolution_hours" field.
func (u *ReportUpsert) ClearExpectedResolutionHours() *ReportUpsert {
	u.SetNull(report.FieldExpectedResolutionHours)
	return u
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (u *ReportUpsert) SetActualResolutionHours(v float64) *ReportUpsert {
	u.Set(report.FieldActualResolutionHours, v)
	return u
}

// UpdateActualResolutionHours sets the "actual_resolution_hours" field to the value that was provided on create.
func (u *ReportUpsert) UpdateActualResolutionHours() *ReportUpsert {
	u.SetExcluded(report.FieldActualResolutionHours)
	return u
}

// AddActualResolutionHours adds v to the "actual_resolution_hours" field.
func (u *ReportUpsert) AddActualResolutionHours(v float64) *ReportUpsert {
	u.Add(report.FieldActualResolutionHours, v)
	return u
}

// ClearActualResolutionHours clears the value of the "actual_resolution_hours" field.
func (u *ReportUpsert) ClearActualResolutionHours() *ReportUpsert {
	u.SetNull(report.FieldActualResolutionHours)
	return u
}

// SetIsOverdue sets the "is_overdue" field.
func (u *ReportUpsert) SetIsOverdue(v bool) *ReportUpsert {
	u.Set(report.FieldIsOverdue, v)
	return u
}

// UpdateIsOverdue sets the "is_overdue" field to the value that was provided on create.
func (u *ReportUpsert) UpdateIsOverdue() *ReportUpsert {
	u.SetExcluded(report.FieldIsOverdue)
	return u
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *ReportUpsert) SetEscalationLevel(v int) *ReportUpsert {
	u.Set(report.FieldEscalationLevel, v)
	return u
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *ReportUpsert) UpdateEscalationLevel() *ReportUpsert {
	u.SetExcluded(report.FieldEscalationLevel)
	return u
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *ReportUpsert) AddEscalationLevel(v int) *ReportUpsert {
	u.Add(report.FieldEscalationLevel, v)
	return u
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (u *ReportUpsert) SetLastEscalatedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldLastEscalatedAt, v)
	return u
}

// UpdateLastEscalatedAt sets the "last_escalated_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateLastEscalatedAt() *ReportUpsert {
	u.SetExcluded(report.FieldLastEscalatedAt)
	return u
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (u *ReportUpsert) ClearLastEscalatedAt() *ReportUpsert {
	u.SetNull(report.FieldLastEscalatedAt)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ReportUpsert) SetResolvedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateResolvedAt() *ReportUpsert {
	u.SetExcluded(report.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ReportUpsert) ClearResolvedAt() *ReportUpsert {
	u.SetNull(report.FieldResolvedAt)
	return u
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ReportUpsert) SetResolvedBy(v uuid.UUID) *ReportUpsert {
	u.Set(report.FieldResolvedBy, v)
	return u
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ReportUpsert) UpdateResolvedBy() *ReportUpsert {
	u.SetExcluded(report.FieldResolvedBy)
	return u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ReportUpsert) ClearResolvedBy() *ReportUpsert {
	u.SetNull(report.FieldResolvedBy)
	return u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (u *ReportUpsert) SetResolutionNotes(v string) *ReportUpsert {
	u.Set(report.FieldResolutionNotes, v)
	return u
}

// UpdateResolutionNotes sets the "resolution_notes" field to the value that was provided on create.
func (u *ReportUpsert) UpdateResolutionNotes() *ReportUpsert {
	u.SetExcluded(report.FieldResolutionNotes)
	return u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (u *ReportUpsert) ClearResolutionNotes() *ReportUpsert {
	u.SetNull(report.FieldResolutionNotes)
	return u
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (u *ReportUpsert) SetSatisfactionRating(v int) *ReportUpsert {
	u.Set(report.FieldSatisfactionRating, v)
	return u
}

// UpdateSatisfactionRating sets the "satisfaction_rating" field to the value that was provided on create.
func (u *ReportUpsert) UpdateSatisfactionRating() *ReportUpsert {
	u.SetExcluded(report.FieldSatisfactionRating)
	return u
}

// AddSatisfactionRating adds v to the "satisfaction_rating" field.
func (u *ReportUpsert) AddSatisfactionRating(v int) *ReportUpsert {
	u.Add(report.FieldSatisfactionRating, v)
	return u
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (u *ReportUpsert) ClearSatisfactionRating() *ReportUpsert {
	u.SetNull(report.FieldSatisfactionRating)
	return u
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (u *ReportUpsert) SetDuplicateOfID(v uuid.UUID) *ReportUpsert {
	u.Set(report.FieldDuplicateOfID, v)
	return u
}

// UpdateDuplicateOfID sets the "duplicate_of_id" field to the value that was provided on create.
func (u *ReportUpsert) UpdateDuplicateOfID() *ReportUpsert {
	u.SetExcluded(report.FieldDuplicateOfID)
	return u
}

// ClearDuplicateOfID clears the value of the "duplicate_of_id" field.
func (u *ReportUpsert) ClearDuplicateOfID() *ReportUpsert {
	u.SetNull(report.FieldDuplicateOfID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertOne) UpdateNewValues() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(report.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(report.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportUpsertOne) Ignore() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertOne) DoNothing() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreate.OnConflict
// documentation for more info.
func (u *ReportUpsertOne) Update(set func(*ReportUpsert)) *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportUpsertOne) SetUpdatedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateUpdatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetReportNumber sets the "report_number" field.
func (u *ReportUpsertOne) SetReportNumber(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetReportNumber(v)
	})
}

// UpdateReportNumber sets the "report_number" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateReportNumber() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateReportNumber()
	})
}

// SetTitle sets the "title" field.
func (u *ReportUpsertOne) SetTitle(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateTitle() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ReportUpsertOne) SetDescription(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateDescription() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDescription()
	})
}

// SetCategory sets the "category" field.
func (u *ReportUpsertOne) SetCategory(v report.Category) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateCategory() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *ReportUpsertOne) SetSubcategory(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateSubcategory() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *ReportUpsertOne) ClearSubcategory() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearSubcategory()
	})
}

// SetPriority sets the "priority" field.
func (u *ReportUpsertOne) SetPriority(v report.Priority) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdatePriority() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdatePriority()
	})
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (u *ReportUpsertOne) SetAiPriorityScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetAiPriorityScore(v)
	})
}

// AddAiPriorityScore adds v to the "ai_priority_score" field.
func (u *ReportUpsertOne) AddAiPriorityScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddAiPriorityScore(v)
	})
}

// UpdateAiPriorityScore sets the "ai_priority_score" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateAiPriorityScore() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAiPriorityScore()
	})
}

// SetLongitude sets the "longitude" field.
func (u *ReportUpsertOne) SetLongitude(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *ReportUpsertOne) AddLongitude(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateLongitude() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLongitude()
	})
}

// SetLatitude sets the "latitude" field.
func (u *ReportUpsertOne) SetLatitude(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *ReportUpsertOne) AddLatitude(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateLatitude() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLatitude()
	})
}

// SetStreet sets the "street" field.
func (u *ReportUpsertOne) SetStreet(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetStreet(v)
	})
}

// UpdateStreet sets the "street" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateStreet() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStreet()
	})
}

// ClearStreet clears the value of the "street" field.
func (u *ReportUpsertOne) ClearStreet() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearStreet()
	})
}

// SetCity sets the "city" field.
func (u *ReportUpsertOne) SetCity(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateCity() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCity()
	})
}

// SetState sets the "state" field.
func (u *ReportUpsertOne) SetState(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateState() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ReportUpsertOne) ClearState() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearState()
	})
}

// SetZipCode sets the "zip_code" field.
func (u *ReportUpsertOne) SetZipCode(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetZipCode(v)
	})
}

// UpdateZipCode sets the "zip_code" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateZipCode() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateZipCode()
	})
}

// ClearZipCode clears the value of the "zip_code" field.
func (u *ReportUpsertOne) ClearZipCode() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearZipCode()
	})
}

// SetCountry sets the "country" field.
func (u *ReportUpsertOne) SetCountry(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateCountry() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCountry()
	})
}

// SetLandmark sets the "landmark" field.
func (u *ReportUpsertOne) SetLandmark(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetLandmark(v)
	})
}

// UpdateLandmark sets the "landmark" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateLandmark() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLandmark()
	})
}

// ClearLandmark clears the value of the "landmark" field.
func (u *ReportUpsertOne) ClearLandmark() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearLandmark()
	})
}

// SetMedia sets the "media" field.
func (u *ReportUpsertOne) SetMedia(v []model.MediaRef) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetMedia(v)
	})
}

// UpdateMedia sets the "media" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateMedia() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateMedia()
	})
}

// ClearMedia clears the value of the "media" field.
func (u *ReportUpsertOne) ClearMedia() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearMedia()
	})
}

// SetTags sets the "tags" field.
func (u *ReportUpsertOne) SetTags(v []string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateTags() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ReportUpsertOne) ClearTags() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearTags()
	})
}

// SetReporterID sets the "reporter_id" field.
func (u *ReportUpsertOne) SetReporterID(v uuid.UUID) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetReporterID(v)
	})
}

// UpdateReporterID sets the "reporter_id" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateReporterID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateReporterID()
	})
}

// SetIsAnonymous sets the "is_anonymous" field.
func (u *ReportUpsertOne) SetIsAnonymous(v bool) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsAnonymous(v)
	})
}

// UpdateIsAnonymous sets the "is_anonymous" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateIsAnonymous() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsAnonymous()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *ReportUpsertOne) SetIsPublic(v bool) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateIsPublic() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsPublic()
	})
}

// SetIsFeatured sets the "is_featured" field.
func (u *ReportUpsertOne) SetIsFeatured(v bool) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsFeatured(v)
	})
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateIsFeatured() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsFeatured()
	})
}

// SetStatus sets the "status" field.
func (u *ReportUpsertOne) SetStatus(v report.Status) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateStatus() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (u *ReportUpsertOne) SetStatusChangedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatusChangedAt(v)
	})
}

// UpdateStatusChangedAt sets the "status_changed_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateStatusChangedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatusChangedAt()
	})
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (u *ReportUpsertOne) SetAssignedDepartmentCode(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetAssignedDepartmentCode(v)
	})
}

// UpdateAssignedDepartmentCode sets the "assigned_department_code" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateAssignedDepartmentCode() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAssignedDepartmentCode()
	})
}

// ClearAssignedDepartmentCode clears the value of the "assigned_department_code" field.
func (u *ReportUpsertOne) ClearAssignedDepartmentCode() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearAssignedDepartmentCode()
	})
}

// SetIsValidated sets the "is_validated" field.
func (u *ReportUpsertOne) SetIsValidated(v bool) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsValidated(v)
	})
}

// UpdateIsValidated sets the "is_validated" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateIsValidated() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsValidated()
	})
}

// SetValidatedBy sets the "validated_by" field.
func (u *ReportUpsertOne) SetValidatedBy(v uuid.UUID) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetValidatedBy(v)
	})
}

// UpdateValidatedBy sets the "validated_by" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateValidatedBy() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateValidatedBy()
	})
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (u *ReportUpsertOne) ClearValidatedBy() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearValidatedBy()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *ReportUpsertOne) SetValidatedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateValidatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *ReportUpsertOne) ClearValidatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearValidatedAt()
	})
}

// SetValidationNotes sets the "validation_notes" field.
func (u *ReportUpsertOne) SetValidationNotes(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetValidationNotes(v)
	})
}

// UpdateValidationNotes sets the "validation_notes" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateValidationNotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateValidationNotes()
	})
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (u *ReportUpsertOne) ClearValidationNotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearValidationNotes()
	})
}

// SetUpvotes sets the "upvotes" field.
func (u *ReportUpsertOne) SetUpvotes(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetUpvotes(v)
	})
}

// AddUpvotes adds v to the "upvotes" field.
func (u *ReportUpsertOne) AddUpvotes(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddUpvotes(v)
	})
}

// UpdateUpvotes sets the "upvotes" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateUpvotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUpvotes()
	})
}

// SetDownvotes sets the "downvotes" field.
func (u *ReportUpsertOne) SetDownvotes(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetDownvotes(v)
	})
}

// AddDownvotes adds v to the "downvotes" field.
func (u *ReportUpsertOne) AddDownvotes(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddDownvotes(v)
	})
}

// UpdateDownvotes sets the "downvotes" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateDownvotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDownvotes()
	})
}

// SetTotalVotes sets the "total_votes" field.
func (u *ReportUpsertOne) SetTotalVotes(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetTotalVotes(v)
	})
}

// AddTotalVotes adds v to the "total_votes" field.
func (u *ReportUpsertOne) AddTotalVotes(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddTotalVotes(v)
	})
}

// UpdateTotalVotes sets the "total_votes" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateTotalVotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateTotalVotes()
	})
}

// SetViews sets the "views" field.
func (u *ReportUpsertOne) SetViews(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetViews(v)
	})
}

// AddViews adds v to the "views" field.
func (u *ReportUpsertOne) AddViews(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddViews(v)
	})
}

// UpdateViews sets the "views" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateViews() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateViews()
	})
}

// SetShares sets the "shares" field.
func (u *ReportUpsertOne) SetShares(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetShares(v)
	})
}

// AddShares adds v to the "shares" field.
func (u *ReportUpsertOne) AddShares(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddShares(v)
	})
}

// UpdateShares sets the "shares" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateShares() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateShares()
	})
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (u *ReportUpsertOne) SetExpectedResolutionHours(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetExpectedResolutionHours(v)
	})
}

// AddExpectedResolutionHours adds v to the "expected_resolution_hours" field.
func (u *ReportUpsertOne) AddExpectedResolutionHours(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddExpectedResolutionHours(v)
	})
}

// UpdateExpectedResolutionHours sets the "expected_resolution_hours" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateExpectedResolutionHours() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateExpectedResolutionHours()
	})
}

// ClearExpectedResolutionHours clears the value of the "expected_resolution_hours" field.
func (u *ReportUpsertOne) ClearExpectedResolutionHours() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearExpectedResolutionHours()
	})
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (u *ReportUpsertOne) SetActualResolutionHours(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetActualResolutionHours(v)
	})
}

// AddActualResolutionHours adds v to the "actual_resolution_hours" field.
func (u *ReportUpsertOne) AddActualResolutionHours(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddActualResolutionHours(v)
	})
}

// UpdateActualResolutionHours sets the "actual_resolution_hours" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateActualResolutionHours() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateActualResolutionHours()
	})
}

// ClearActualResolutionHours clears the value of the "actual_resolution_hours" field.
func (u *ReportUpsertOne) ClearActualResolutionHours() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearActualResolutionHours()
	})
}

// SetIsOverdue sets the "is_overdue" field.
func (u *ReportUpsertOne) SetIsOverdue(v bool) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsOverdue(v)
	})
}

// UpdateIsOverdue sets the "is_overdue" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateIsOverdue() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsOverdue()
	})
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *ReportUpsertOne) SetEscalationLevel(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetEscalationLevel(v)
	})
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *ReportUpsertOne) AddEscalationLevel(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddEscalationLevel(v)
	})
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateEscalationLevel() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateEscalationLevel()
	})
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (u *ReportUpsertOne) SetLastEscalatedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetLastEscalatedAt(v)
	})
}

// UpdateLastEscalatedAt sets the "last_escalated_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateLastEscalatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLastEscalatedAt()
	})
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (u *ReportUpsertOne) ClearLastEscalatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearLastEscalatedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ReportUpsertOne) SetResolvedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateResolvedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ReportUpsertOne) ClearResolvedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearResolvedAt()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ReportUpsertOne) SetResolvedBy(v uuid.UUID) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateResolvedBy() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ReportUpsertOne) ClearResolvedBy() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearResolvedBy()
	})
}

// SetResolutionNotes sets the "resolution_notes" field.
func (u *ReportUpsertOne) SetResolutionNotes(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetResolutionNotes(v)
	})
}

// UpdateResolutionNotes sets the "resolution_notes" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateResolutionNotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResolutionNotes()
	})
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (u *ReportUpsertOne) ClearResolutionNotes() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearResolutionNotes()
	})
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (u *ReportUpsertOne) SetSatisfactionRating(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetSatisfactionRating(v)
	})
}

// AddSatisfactionRating adds v to the "satisfaction_rating" field.
func (u *ReportUpsertOne) AddSatisfactionRating(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddSatisfactionRating(v)
	})
}

// UpdateSatisfactionRating sets the "satisfaction_rating" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateSatisfactionRating() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSatisfactionRating()
	})
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (u *ReportUpsertOne) ClearSatisfactionRating() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearSatisfactionRating()
	})
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (u *ReportUpsertOne) SetDuplicateOfID(v uuid.UUID) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetDuplicateOfID(v)
	})
}

// UpdateDuplicateOfID sets the "duplicate_of_id" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateDuplicateOfID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDuplicateOfID()
	})
}

// ClearDuplicateOfID clears the value of the "duplicate_of_id" field.
func (u *ReportUpsertOne) ClearDuplicateOfID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearDuplicateOfID()
	})
}

// Exec executes the query.
func (u *ReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportUpsertOne.ID is not supported by MySQL driver. Use ReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
	conflict []sql.ConflictOption
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportUpsertBulk {
	_c.conflict = opts
	return &ReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflictColumns(columns ...string) *ReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertBulk{
		create: _c,
	}
}

// ReportUpsertBulk is the builder for "upsert"-ing
// a bulk of Report nodes.
type ReportUpsertBulk struct {
	create *ReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertBulk) UpdateNewValues() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(report.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(report.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportUpsertBulk) Ignore() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertBulk) DoNothing() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreateBulk.OnConflict
// documentation for more info.
func (u *ReportUpsertBulk) Update(set func(*ReportUpsert)) *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportUpsertBulk) SetUpdatedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateUpdatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetReportNumber sets the "report_number" field.
func (u *ReportUpsertBulk) SetReportNumber(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetReportNumber(v)
	})
}

// UpdateReportNumber sets the "report_number" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateReportNumber() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateReportNumber()
	})
}

// SetTitle sets the "title" field.
func (u *ReportUpsertBulk) SetTitle(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateTitle() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ReportUpsertBulk) SetDescription(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateDescription() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDescription()
	})
}

// SetCategory sets the "category" field.
func (u *ReportUpsertBulk) SetCategory(v report.Category) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateCategory() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *ReportUpsertBulk) SetSubcategory(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateSubcategory() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *ReportUpsertBulk) ClearSubcategory() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearSubcategory()
	})
}

// SetPriority sets the "priority" field.
func (u *ReportUpsertBulk) SetPriority(v report.Priority) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdatePriority() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdatePriority()
	})
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (u *ReportUpsertBulk) SetAiPriorityScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetAiPriorityScore(v)
	})
}

// AddAiPriorityScore adds v to the "ai_priority_score" field.
func (u *ReportUpsertBulk) AddAiPriorityScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddAiPriorityScore(v)
	})
}

// UpdateAiPriorityScore sets the "ai_priority_score" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateAiPriorityScore() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAiPriorityScore()
	})
}

// SetLongitude sets the "longitude" field.
func (u *ReportUpsertBulk) SetLongitude(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *ReportUpsertBulk) AddLongitude(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateLongitude() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLongitude()
	})
}

// SetLatitude sets the "latitude" field.
func (u *ReportUpsertBulk) SetLatitude(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *ReportUpsertBulk) AddLatitude(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateLatitude() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLatitude()
	})
}

// SetStreet sets the "street" field.
func (u *ReportUpsertBulk) SetStreet(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetStreet(v)
	})
}

// UpdateStreet sets the "street" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateStreet() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStreet()
	})
}

// ClearStreet clears the value of the "street" field.
func (u *ReportUpsertBulk) ClearStreet() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearStreet()
	})
}

// SetCity sets the "city" field.
func (u *ReportUpsertBulk) SetCity(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateCity() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCity()
	})
}

// SetState sets the "state" field.
func (u *ReportUpsertBulk) SetState(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateState() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ReportUpsertBulk) ClearState() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearState()
	})
}

// SetZipCode sets the "zip_code" field.
func (u *ReportUpsertBulk) SetZipCode(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetZipCode(v)
	})
}

// UpdateZipCode sets the "zip_code" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateZipCode() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateZipCode()
	})
}

// ClearZipCode clears the value of the "zip_code" field.
func (u *ReportUpsertBulk) ClearZipCode() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearZipCode()
	})
}

// SetCountry sets the "country" field.
func (u *ReportUpsertBulk) SetCountry(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateCountry() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCountry()
	})
}

// SetLandmark sets the "landmark" field.
func (u *ReportUpsertBulk) SetLandmark(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetLandmark(v)
	})
}

// UpdateLandmark sets the "landmark" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateLandmark() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLandmark()
	})
}

// ClearLandmark clears the value of the "landmark" field.
func (u *ReportUpsertBulk) ClearLandmark() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearLandmark()
	})
}

// SetMedia sets the "media" field.
func (u *ReportUpsertBulk) SetMedia(v []model.MediaRef) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetMedia(v)
	})
}

// UpdateMedia sets the "media" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateMedia() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateMedia()
	})
}

// ClearMedia clears the value of the "media" field.
func (u *ReportUpsertBulk) ClearMedia() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearMedia()
	})
}

// SetTags sets the "tags" field.
func (u *ReportUpsertBulk) SetTags(v []string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateTags() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ReportUpsertBulk) ClearTags() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearTags()
	})
}

// SetReporterID sets the "reporter_id" field.
func (u *ReportUpsertBulk) SetReporterID(v uuid.UUID) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetReporterID(v)
	})
}

// UpdateReporterID sets the "reporter_id" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateReporterID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateReporterID()
	})
}

// SetIsAnonymous sets the "is_anonymous" field.
func (u *ReportUpsertBulk) SetIsAnonymous(v bool) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsAnonymous(v)
	})
}

// UpdateIsAnonymous sets the "is_anonymous" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateIsAnonymous() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsAnonymous()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *ReportUpsertBulk) SetIsPublic(v bool) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateIsPublic() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsPublic()
	})
}

// SetIsFeatured sets the "is_featured" field.
func (u *ReportUpsertBulk) SetIsFeatured(v bool) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsFeatured(v)
	})
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateIsFeatured() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsFeatured()
	})
}

// SetStatus sets the "status" field.
func (u *ReportUpsertBulk) SetStatus(v report.Status) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateStatus() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (u *ReportUpsertBulk) SetStatusChangedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatusChangedAt(v)
	})
}

// UpdateStatusChangedAt sets the "status_changed_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateStatusChangedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatusChangedAt()
	})
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (u *ReportUpsertBulk) SetAssignedDepartmentCode(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetAssignedDepartmentCode(v)
	})
}

// UpdateAssignedDepartmentCode sets the "assigned_department_code" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateAssignedDepartmentCode() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAssignedDepartmentCode()
	})
}

// ClearAssignedDepartmentCode clears the value of the "assigned_department_code" field.
func (u *ReportUpsertBulk) ClearAssignedDepartmentCode() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearAssignedDepartmentCode()
	})
}

// SetIsValidated sets the "is_validated" field.
func (u *ReportUpsertBulk) SetIsValidated(v bool) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsValidated(v)
	})
}

// UpdateIsValidated sets the "is_validated" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateIsValidated() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsValidated()
	})
}

// SetValidatedBy sets the "validated_by" field.
func (u *ReportUpsertBulk) SetValidatedBy(v uuid.UUID) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetValidatedBy(v)
	})
}

// UpdateValidatedBy sets the "validated_by" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateValidatedBy() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateValidatedBy()
	})
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (u *ReportUpsertBulk) ClearValidatedBy() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearValidatedBy()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *ReportUpsertBulk) SetValidatedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateValidatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *ReportUpsertBulk) ClearValidatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearValidatedAt()
	})
}

// SetValidationNotes sets the "validation_notes" field.
func (u *ReportUpsertBulk) SetValidationNotes(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetValidationNotes(v)
	})
}

// UpdateValidationNotes sets the "validation_notes" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateValidationNotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateValidationNotes()
	})
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (u *ReportUpsertBulk) ClearValidationNotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearValidationNotes()
	})
}

// SetUpvotes sets the "upvotes" field.
func (u *ReportUpsertBulk) SetUpvotes(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetUpvotes(v)
	})
}

// AddUpvotes adds v to the "upvotes" field.
func (u *ReportUpsertBulk) AddUpvotes(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddUpvotes(v)
	})
}

// UpdateUpvotes sets the "upvotes" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateUpvotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUpvotes()
	})
}

// SetDownvotes sets the "downvotes" field.
func (u *ReportUpsertBulk) SetDownvotes(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetDownvotes(v)
	})
}

// AddDownvotes adds v to the "downvotes" field.
func (u *ReportUpsertBulk) AddDownvotes(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddDownvotes(v)
	})
}

// UpdateDownvotes sets the "downvotes" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateDownvotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDownvotes()
	})
}

// SetTotalVotes sets the "total_votes" field.
func (u *ReportUpsertBulk) SetTotalVotes(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetTotalVotes(v)
	})
}

// AddTotalVotes adds v to the "total_votes" field.
func (u *ReportUpsertBulk) AddTotalVotes(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddTotalVotes(v)
	})
}

// UpdateTotalVotes sets the "total_votes" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateTotalVotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateTotalVotes()
	})
}

// SetViews sets the "views" field.
func (u *ReportUpsertBulk) SetViews(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetViews(v)
	})
}

// AddViews adds v to the "views" field.
func (u *ReportUpsertBulk) AddViews(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddViews(v)
	})
}

// UpdateViews sets the "views" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateViews() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateViews()
	})
}

// SetShares sets the "shares" field.
func (u *ReportUpsertBulk) SetShares(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetShares(v)
	})
}

// AddShares adds v to the "shares" field.
func (u *ReportUpsertBulk) AddShares(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddShares(v)
	})
}

// UpdateShares sets the "shares" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateShares() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateShares()
	})
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (u *ReportUpsertBulk) SetExpectedResolutionHours(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetExpectedResolutionHours(v)
	})
}

// AddExpectedResolutionHours adds v to the "expected_resolution_hours" field.
func (u *ReportUpsertBulk) AddExpectedResolutionHours(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddExpectedResolutionHours(v)
	})
}

// UpdateExpectedResolutionHours sets the "expected_resolution_hours" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateExpectedResolutionHours() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateExpectedResolutionHours()
	})
}

// ClearExpectedResolutionHours clears the value of the "expected_resolution_hours" field.
func (u *ReportUpsertBulk) ClearExpectedResolutionHours() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearExpectedResolutionHours()
	})
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (u *ReportUpsertBulk) SetActualResolutionHours(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetActualResolutionHours(v)
	})
}

// AddActualResolutionHours adds v to the "actual_resolution_hours" field.
func (u *ReportUpsertBulk) AddActualResolutionHours(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddActualResolutionHours(v)
	})
}

// UpdateActualResolutionHours sets the "actual_resolution_hours" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateActualResolutionHours() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateActualResolutionHours()
	})
}

// ClearActualResolutionHours clears the value of the "actual_resolution_hours" field.
func (u *ReportUpsertBulk) ClearActualResolutionHours() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearActualResolutionHours()
	})
}

// SetIsOverdue sets the "is_overdue" field.
func (u *ReportUpsertBulk) SetIsOverdue(v bool) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetIsOverdue(v)
	})
}

// UpdateIsOverdue sets the "is_overdue" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateIsOverdue() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateIsOverdue()
	})
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *ReportUpsertBulk) SetEscalationLevel(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetEscalationLevel(v)
	})
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *ReportUpsertBulk) AddEscalationLevel(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddEscalationLevel(v)
	})
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateEscalationLevel() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateEscalationLevel()
	})
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (u *ReportUpsertBulk) SetLastEscalatedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetLastEscalatedAt(v)
	})
}

// UpdateLastEscalatedAt sets the "last_escalated_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateLastEscalatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLastEscalatedAt()
	})
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (u *ReportUpsertBulk) ClearLastEscalatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearLastEscalatedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ReportUpsertBulk) SetResolvedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateResolvedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ReportUpsertBulk) ClearResolvedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearResolvedAt()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ReportUpsertBulk) SetResolvedBy(v uuid.UUID) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateResolvedBy() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ReportUpsertBulk) ClearResolvedBy() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearResolvedBy()
	})
}

// SetResolutionNotes sets the "resolution_notes" field.
func (u *ReportUpsertBulk) SetResolutionNotes(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetResolutionNotes(v)
	})
}

// UpdateResolutionNotes sets the "resolution_notes" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateResolutionNotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateResolutionNotes()
	})
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (u *ReportUpsertBulk) ClearResolutionNotes() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearResolutionNotes()
	})
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (u *ReportUpsertBulk) SetSatisfactionRating(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetSatisfactionRating(v)
	})
}

// AddSatisfactionRating adds v to the "satisfaction_rating" field.
func (u *ReportUpsertBulk) AddSatisfactionRating(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddSatisfactionRating(v)
	})
}

// UpdateSatisfactionRating sets the "satisfaction_rating" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateSatisfactionRating() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSatisfactionRating()
	})
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (u *ReportUpsertBulk) ClearSatisfactionRating() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearSatisfactionRating()
	})
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (u *ReportUpsertBulk) SetDuplicateOfID(v uuid.UUID) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetDuplicateOfID(v)
	})
}

// UpdateDuplicateOfID sets the "duplicate_of_id" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateDuplicateOfID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDuplicateOfID()
	})
}

// ClearDuplicateOfID clears the value of the "duplicate_of_id" field.
func (u *ReportUpsertBulk) ClearDuplicateOfID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearDuplicateOfID()
	})
}

// Exec executes the query.
func (u *ReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
