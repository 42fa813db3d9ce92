// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/comment"
	"CivicPulseAPI/ent/predicate"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
	"CivicPulseAPI/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportNumber sets the "report_number" field.
func (_u *ReportUpdate) SetReportNumber(v string) *ReportUpdate {
	_u.mutation.SetReportNumber(v)
	return _u
}

// SetNillableReportNumber sets the "report_number" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableReportNumber(v *string) *ReportUpdate {
	if v != nil {
		_u.SetReportNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdate) SetTitle(v string) *ReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTitle(v *string) *ReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReportUpdate) SetDescription(v string) *ReportUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDescription(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReportUpdate) SetCategory(v report.Category) *ReportUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCategory(v *report.Category) *ReportUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *ReportUpdate) SetSubcategory(v string) *ReportUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSubcategory(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *ReportUpdate) ClearSubcategory() *ReportUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReportUpdate) SetPriority(v report.Priority) *ReportUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePriority(v *report.Priority) *ReportUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (_u *ReportUpdate) SetAiPriorityScore(v float64) *ReportUpdate {
	_u.mutation.ResetAiPriorityScore()
	_u.mutation.SetAiPriorityScore(v)
	return _u
}

// SetNillableAiPriorityScore sets the "ai_priority_score" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAiPriorityScore(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetAiPriorityScore(*v)
	}
	return _u
}

// AddAiPriorityScore adds value to the "ai_priority_score" field.
func (_u *ReportUpdate) AddAiPriorityScore(v float64) *ReportUpdate {
	_u.mutation.AddAiPriorityScore(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ReportUpdate) SetLongitude(v float64) *ReportUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLongitude(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ReportUpdate) AddLongitude(v float64) *ReportUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ReportUpdate) SetLatitude(v float64) *ReportUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLatitude(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ReportUpdate) AddLatitude(v float64) *ReportUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetStreet sets the "street" field.
func (_u *ReportUpdate) SetStreet(v string) *ReportUpdate {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStreet(v *string) *ReportUpdate {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// ClearStreet clears the value of the "street" field.
func (_u *ReportUpdate) ClearStreet() *ReportUpdate {
	_u.mutation.ClearStreet()
	return _u
}

// SetCity sets the "city" field.
func (_u *ReportUpdate) SetCity(v string) *ReportUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCity(v *string) *ReportUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ReportUpdate) SetState(v string) *ReportUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableState(v *string) *ReportUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ReportUpdate) ClearState() *ReportUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *ReportUpdate) SetZipCode(v string) *ReportUpdate {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableZipCode(v *string) *ReportUpdate {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// ClearZipCode clears the value of the "zip_code" field.
func (_u *ReportUpdate) ClearZipCode() *ReportUpdate {
	_u.mutation.ClearZipCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ReportUpdate) SetCountry(v string) *ReportUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCountry(v *string) *ReportUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetLandmark sets the "landmark" field.
func (_u *ReportUpdate) SetLandmark(v string) *ReportUpdate {
	_u.mutation.SetLandmark(v)
	return _u
}

// SetNillableLandmark sets the "landmark" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLandmark(v *string) *ReportUpdate {
	if v != nil {
		_u.SetLandmark(*v)
	}
	return _u
}

// ClearLandmark clears the value of the "landmark" field.
func (_u *ReportUpdate) ClearLandmark() *ReportUpdate {
	_u.mutation.ClearLandmark()
	return _u
}

// SetMedia sets the "media" field.
func (_u *ReportUpdate) SetMedia(v []model.MediaRef) *ReportUpdate {
	_u.mutation.SetMedia(v)
	return _u
}

// AppendMedia appends value to the "media" field.
func (_u *ReportUpdate) AppendMedia(v []model.MediaRef) *ReportUpdate {
	_u.mutation.AppendMedia(v)
	return _u
}

// ClearMedia clears the value of the "media" field.
func (_u *ReportUpdate) ClearMedia() *ReportUpdate {
	_u.mutation.ClearMedia()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ReportUpdate) SetTags(v []string) *ReportUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ReportUpdate) AppendTags(v []string) *ReportUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ReportUpdate) ClearTags() *ReportUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetReporterID sets the "reporter_id" field.
func (_u *ReportUpdate) SetReporterID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetReporterID(v)
	return _u
}

// SetNillableReporterID sets the "reporter_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableReporterID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetReporterID(*v)
	}
	return _u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_u *ReportUpdate) SetIsAnonymous(v bool) *ReportUpdate {
	_u.mutation.SetIsAnonymous(v)
	return _u
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableIsAnonymous(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetIsAnonymous(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *ReportUpdate) SetIsPublic(v bool) *ReportUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableIsPublic(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *ReportUpdate) SetIsFeatured(v bool) *ReportUpdate {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableIsFeatured(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v report.Status) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *report.Status) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *ReportUpdate) SetStatusChangedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatusChangedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (_u *ReportUpdate) SetAssignedDepartmentCode(v string) *ReportUpdate {
	_u.mutation.SetAssignedDepartmentCode(v)
	return _u
}

// SetNillableAssignedDepartmentCode sets the "assigned_department_code" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAssignedDepartmentCode(v *string) *ReportUpdate {
	if v != nil {
		_u.SetAssignedDepartmentCode(*v)
	}
	return _u
}

// ClearAssignedDepartmentCode clears the value of the "assigned_department_code" field.
func (_u *ReportUpdate) ClearAssignedDepartmentCode() *ReportUpdate {
	_u.mutation.ClearAssignedDepartmentCode()
	return _u
}

// SetIsValidated sets the "is_validated" field.
func (_u *ReportUpdate) SetIsValidated(v bool) *ReportUpdate {
	_u.mutation.SetIsValidated(v)
	return _u
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableIsValidated(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetIsValidated(*v)
	}
	return _u
}

// SetValidatedBy sets the "validated_by" field.
func (_u *ReportUpdate) SetValidatedBy(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetValidatedBy(v)
	return _u
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableValidatedBy(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetValidatedBy(*v)
	}
	return _u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (_u *ReportUpdate) ClearValidatedBy() *ReportUpdate {
	_u.mutation.ClearValidatedBy()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ReportUpdate) SetValidatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableValidatedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ReportUpdate) ClearValidatedAt() *ReportUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetValidationNotes sets the "validation_notes" field.
func (_u *ReportUpdate) SetValidationNotes(v string) *ReportUpdate {
	_u.mutation.SetValidationNotes(v)
	return _u
}

// SetNillableValidationNotes sets the "validation_notes" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableValidationNotes(v *string) *ReportUpdate {
	if v != nil {
		_u.SetValidationNotes(*v)
	}
	return _u
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (_u *ReportUpdate) ClearValidationNotes() *ReportUpdate {
	_u.mutation.ClearValidationNotes()
	return _u
}

// SetUpvotes sets the "upvotes" field.
func (_u *ReportUpdate) SetUpvotes(v int) *ReportUpdate {
	_u.mutation.ResetUpvotes()
	_u.mutation.SetUpvotes(v)
	return _u
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUpvotes(v *int) *ReportUpdate {
	if v != nil {
		_u.SetUpvotes(*v)
	}
	return _u
}

// AddUpvotes adds value to the "upvotes" field.
func (_u *ReportUpdate) AddUpvotes(v int) *ReportUpdate {
	_u.mutation.AddUpvotes(v)
	return _u
}

// SetDownvotes sets the "downvotes" field.
func (_u *ReportUpdate) SetDownvotes(v int) *ReportUpdate {
	_u.mutation.ResetDownvotes()
	_u.mutation.SetDownvotes(v)
	return _u
}

// SetNillableDownvotes sets the "downvotes" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDownvotes(v *int) *ReportUpdate {
	if v != nil {
		_u.SetDownvotes(*v)
	}
	return _u
}

// AddDownvotes adds value to the "downvotes" field.
func (_u *ReportUpdate) AddDownvotes(v int) *ReportUpdate {
	_u.mutation.AddDownvotes(v)
	return _u
}

// SetTotalVotes sets the "total_votes" field.
func (_u *ReportUpdate) SetTotalVotes(v int) *ReportUpdate {
	_u.mutation.ResetTotalVotes()
	_u.mutation.SetTotalVotes(v)
	return _u
}

// SetNillableTotalVotes sets the "total_votes" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTotalVotes(v *int) *ReportUpdate {
	if v != nil {
		_u.SetTotalVotes(*v)
	}
	return _u
}

// AddTotalVotes adds value to the "total_votes" field.
func (_u *ReportUpdate) AddTotalVotes(v int) *ReportUpdate {
	_u.mutation.AddTotalVotes(v)
	return _u
}

// SetViews sets the "views" field.
func (_u *ReportUpdate) SetViews(v int) *ReportUpdate {
	_u.mutation.ResetViews()
	_u.mutation.SetViews(v)
	return _u
}

// SetNillableViews sets the "views" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableViews(v *int) *ReportUpdate {
	if v != nil {
		_u.SetViews(*v)
	}
	return _u
}

// AddViews adds value to the "views" field.
func (_u *ReportUpdate) AddViews(v int) *ReportUpdate {
	_u.mutation.AddViews(v)
	return _u
}

// SetShares sets the "shares" field.
func (_u *ReportUpdate) SetShares(v int) *ReportUpdate {
	_u.mutation.ResetShares()
	_u.mutation.SetShares(v)
	return _u
}

// SetNillableShares sets the "shares" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableShares(v *int) *ReportUpdate {
	if v != nil {
		_u.SetShares(*v)
	}
	return _u
}

// AddShares adds value to the "shares" field.
func (_u *ReportUpdate) AddShares(v int) *ReportUpdate {
	_u.mutation.AddShares(v)
	return _u
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (_u *ReportUpdate) SetExpectedResolutionHours(v float64) *ReportUpdate {
	_u.mutation.ResetExpectedResolutionHours()
	_u.mutation.SetExpectedResolutionHours(v)
	return _u
}

// SetNillableExpectedResolutionHours sets the "expected_resolution_hours" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableExpectedResolutionHours(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetExpectedResolutionHours(*v)
	}
	return _u
}

// AddExpectedResolutionHours adds value to the "expected_resolution_hours" field.
func (_u *ReportUpdate) AddExpectedResolutionHours(v float64) *ReportUpdate {
	_u.mutation.AddExpectedResolutionHours(v)
	return _u
}

// ClearExpectedResolutionHours clears the value of the "expected_resolution_hours" field.
func (_u *ReportUpdate) ClearExpectedResolutionHours() *ReportUpdate {
	_u.mutation.ClearExpectedResolutionHours()
	return _u
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (_u *ReportUpdate) SetActualResolutionHours(v float64) *ReportUpdate {
	_u.mutation.ResetActualResolutionHours()
	_u.mutation.SetActualResolutionHours(v)
	return _u
}

// SetNillableActualResolutionHours sets the "actual_resolution_hours" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableActualResolutionHours(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetActualResolutionHours(*v)
	}
	return _u
}

// AddActualResolutionHours adds value to the "actual_resolution_hours" field.
func (_u *ReportUpdate) AddActualResolutionHours(v float64) *ReportUpdate {
	_u.mutation.AddActualResolutionHours(v)
	return _u
}

// ClearActualResolutionHours clears the value of the "actual_resolution_hours" field.
func (_u *ReportUpdate) ClearActualResolutionHours() *ReportUpdate {
	_u.mutation.ClearActualResolutionHours()
	return _u
}

// SetIsOverdue sets the "is_overdue" field.
func (_u *ReportUpdate) SetIsOverdue(v bool) *ReportUpdate {
	_u.mutation.SetIsOverdue(v)
	return _u
}

// SetNillableIsOverdue sets the "is_overdue" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableIsOverdue(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetIsOverdue(*v)
	}
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *ReportUpdate) SetEscalationLevel(v int) *ReportUpdate {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableEscalationLevel(v *int) *ReportUpdate {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *ReportUpdate) AddEscalationLevel(v int) *ReportUpdate {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (_u *ReportUpdate) SetLastEscalatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetLastEscalatedAt(v)
	return _u
}

// SetNillableLastEscalatedAt sets the "last_escalated_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLastEscalatedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetLastEscalatedAt(*v)
	}
	return _u
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (_u *ReportUpdate) ClearLastEscalatedAt() *ReportUpdate {
	_u.mutation.ClearLastEscalatedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ReportUpdate) SetResolvedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableResolvedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ReportUpdate) ClearResolvedAt() *ReportUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ReportUpdate) SetResolvedBy(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableResolvedBy(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ReportUpdate) ClearResolvedBy() *ReportUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *ReportUpdate) SetResolutionNotes(v string) *ReportUpdate {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableResolutionNotes(v *string) *ReportUpdate {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *ReportUpdate) ClearResolutionNotes() *ReportUpdate {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (_u *ReportUpdate) SetSatisfactionRating(v int) *ReportUpdate {
	_u.mutation.ResetSatisfactionRating()
	_u.mutation.SetSatisfactionRating(v)
	return _u
}

// SetNillableSatisfactionRating sets the "satisfaction_rating" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSatisfactionRating(v *int) *ReportUpdate {
	if v != nil {
		_u.SetSatisfactionRating(*v)
	}
	return _u
}

// AddSatisfactionRating adds value to the "satisfaction_rating" field.
func (_u *ReportUpdate) AddSatisfactionRating(v int) *ReportUpdate {
	_u.mutation.AddSatisfactionRating(v)
	return _u
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (_u *ReportUpdate) ClearSatisfactionRating() *ReportUpdate {
	_u.mutation.ClearSatisfactionRating()
	return _u
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (_u *ReportUpdate) SetDuplicateOfID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetDuplicateOfID(v)
	return _u
}

// SetNillableDuplicateOfID sets the "duplicate_of_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDuplicateOfID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetDuplicateOfID(*v)
	}
	return _u
}

// ClearDuplicateOfID clears the value of the "duplicate_of_id" field.
func (_u *ReportUpdate) ClearDuplicateOfID() *ReportUpdate {
	_u.mutation.ClearDuplicateOfID()
	return _u
}

// SetReporter sets the "reporter" edge to the User entity.
func (_u *ReportUpdate) SetReporter(v *User) *ReportUpdate {
	return _u.SetReporterID(v.ID)
}

// SetDuplicateOf sets the "duplicate_of" edge to the Report entity.
func (_u *ReportUpdate) SetDuplicateOf(v *Report) *ReportUpdate {
	return _u.SetDuplicateOfID(v.ID)
}

// AddDuplicateIDs adds the "duplicates" edge to the Report entity by IDs.
func (_u *ReportUpdate) AddDuplicateIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddDuplicateIDs(ids...)
	return _u
}

// AddDuplicates adds the "duplicates" edges to the Report entity.
func (_u *ReportUpdate) AddDuplicates(v ...*Report) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDuplicateIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_u *ReportUpdate) AddVoteIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddVoteIDs(ids...)
	return _u
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_u *ReportUpdate) AddVotes(v ...*Vote) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoteIDs(ids...)
}

// AddStatusUpdateIDs adds the "status_updates" edge to the StatusUpdate entity by IDs.
func (_u *ReportUpdate) AddStatusUpdateIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddStatusUpdateIDs(ids...)
	return _u
}

// AddStatusUpdates adds the "status_updates" edges to the StatusUpdate entity.
func (_u *ReportUpdate) AddStatusUpdates(v ...*StatusUpdate) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusUpdateIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_u *ReportUpdate) AddCommentIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the Comment entity.
func (_u *ReportUpdate) AddComments(v ...*Comment) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearReporter clears the "reporter" edge to the User entity.
func (_u *ReportUpdate) ClearReporter() *ReportUpdate {
	_u.mutation.ClearReporter()
	return _u
}

// ClearDuplicateOf clears the "duplicate_of" edge to the Report entity.
func (_u *ReportUpdate) ClearDuplicateOf() *ReportUpdate {
	_u.mutation.ClearDuplicateOf()
	return _u
}

// ClearDuplicates clears all "duplicates" edges to the Report entity.
func (_u *ReportUpdate) ClearDuplicates() *ReportUpdate {
	_u.mutation.ClearDuplicates()
	return _u
}

// RemoveDuplicateIDs removes the "duplicates" edge to Report entities by IDs.
func (_u *ReportUpdate) RemoveDuplicateIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveDuplicateIDs(ids...)
	return _u
}

// RemoveDuplicates removes "duplicates" edges to Report entities.
func (_u *ReportUpdate) RemoveDuplicates(v ...*Report) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDuplicateIDs(ids...)
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (_u *ReportUpdate) ClearVotes() *ReportUpdate {
	_u.mutation.ClearVotes()
	return _u
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (_u *ReportUpdate) RemoveVoteIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveVoteIDs(ids...)
	return _u
}

// RemoveVotes removes "votes" edges to Vote entities.
func (_u *ReportUpdate) RemoveVotes(v ...*Vote) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoteIDs(ids...)
}

// ClearStatusUpdates clears all "status_updates" edges to the StatusUpdate entity.
func (_u *ReportUpdate) ClearStatusUpdates() *ReportUpdate {
	_u.mutation.ClearStatusUpdates()
	return _u
}

// RemoveStatusUpdateIDs removes the "status_updates" edge to StatusUpdate entities by IDs.
func (_u *ReportUpdate) RemoveStatusUpdateIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveStatusUpdateIDs(ids...)
	return _u
}

// RemoveStatusUpdates removes "status_updates" edges to StatusUpdate entities.
func (_u *ReportUpdate) RemoveStatusUpdates(v ...*StatusUpdate) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusUpdateIDs(ids...)
}

// ClearComments clears all "comments" edges to the Comment entity.
func (_u *ReportUpdate) ClearComments() *ReportUpdate {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to Comment entities by IDs.
func (_u *ReportUpdate) RemoveCommentIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to Comment entities.
func (_u *ReportUpdate) RemoveComments(v ...*Comment) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.ReportNumber(); ok {
		if err := report.ReportNumberValidator(v); err != nil {
			return &ValidationError{Name: "report_number", err: fmt.Errorf(`ent: validator failed for field "Report.report_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := report.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Report.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiPriorityScore(); ok {
		if err := report.AiPriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "ai_priority_score", err: fmt.Errorf(`ent: validator failed for field "Report.ai_priority_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Longitude(); ok {
		if err := report.LongitudeValidator(v); err != nil {
			return &ValidationError{Name: "longitude", err: fmt.Errorf(`ent: validator failed for field "Report.longitude": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Latitude(); ok {
		if err := report.LatitudeValidator(v); err != nil {
			return &ValidationError{Name: "latitude", err: fmt.Errorf(`ent: validator failed for field "Report.latitude": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Street(); ok {
		if err := report.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "Report.street": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := report.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Report.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := report.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Report.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ZipCode(); ok {
		if err := report.ZipCodeValidator(v); err != nil {
			return &ValidationError{Name: "zip_code", err: fmt.Errorf(`ent: validator failed for field "Report.zip_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := report.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Report.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Landmark(); ok {
		if err := report.LandmarkValidator(v); err != nil {
			return &ValidationError{Name: "landmark", err: fmt.Errorf(`ent: validator failed for field "Report.landmark": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedDepartmentCode(); ok {
		if err := report.AssignedDepartmentCodeValidator(v); err != nil {
			return &ValidationError{Name: "assigned_department_code", err: fmt.Errorf(`ent: validator failed for field "Report.assigned_department_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Upvotes(); ok {
		if err := report.UpvotesValidator(v); err != nil {
			return &ValidationError{Name: "upvotes", err: fmt.Errorf(`ent: validator failed for field "Report.upvotes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Downvotes(); ok {
		if err := report.DownvotesValidator(v); err != nil {
			return &ValidationError{Name: "downvotes", err: fmt.Errorf(`ent: validator failed for field "Report.downvotes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalVotes(); ok {
		if err := report.TotalVotesValidator(v); err != nil {
			return &ValidationError{Name: "total_votes", err: fmt.Errorf(`ent: validator failed for field "Report.total_votes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := report.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "Report.escalation_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SatisfactionRating(); ok {
		if err := report.SatisfactionRatingValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_rating", err: fmt.Errorf(`ent: validator failed for field "Report.satisfaction_rating": %w`, err)}
		}
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.reporter"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReportNumber(); ok {
		_spec.SetField(report.FieldReportNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(report.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(report.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AiPriorityScore(); ok {
		_spec.SetField(report.FieldAiPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiPriorityScore(); ok {
		_spec.AddField(report.FieldAiPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(report.FieldStreet, field.TypeString, value)
	}
	if _u.mutation.StreetCleared() {
		_spec.ClearField(report.FieldStreet, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(report.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(report.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(report.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(report.FieldZipCode, field.TypeString, value)
	}
	if _u.mutation.ZipCodeCleared() {
		_spec.ClearField(report.FieldZipCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(report.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Landmark(); ok {
		_spec.SetField(report.FieldLandmark, field.TypeString, value)
	}
	if _u.mutation.LandmarkCleared() {
		_spec.ClearField(report.FieldLandmark, field.TypeString)
	}
	if value, ok := _u.mutation.Media(); ok {
		_spec.SetField(report.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldMedia, value)
		})
	}
	if _u.mutation.MediaCleared() {
		_spec.ClearField(report.FieldMedia, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(report.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(report.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsAnonymous(); ok {
		_spec.SetField(report.FieldIsAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(report.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(report.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(report.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedDepartmentCode(); ok {
		_spec.SetField(report.FieldAssignedDepartmentCode, field.TypeString, value)
	}
	if _u.mutation.AssignedDepartmentCodeCleared() {
		_spec.ClearField(report.FieldAssignedDepartmentCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsValidated(); ok {
		_spec.SetField(report.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidatedBy(); ok {
		_spec.SetField(report.FieldValidatedBy, field.TypeUUID, value)
	}
	if _u.mutation.ValidatedByCleared() {
		_spec.ClearField(report.FieldValidatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(report.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(report.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationNotes(); ok {
		_spec.SetField(report.FieldValidationNotes, field.TypeString, value)
	}
	if _u.mutation.ValidationNotesCleared() {
		_spec.ClearField(report.FieldValidationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Upvotes(); ok {
		_spec.SetField(report.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvotes(); ok {
		_spec.AddField(report.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Downvotes(); ok {
		_spec.SetField(report.FieldDownvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDownvotes(); ok {
		_spec.AddField(report.FieldDownvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalVotes(); ok {
		_spec.SetField(report.FieldTotalVotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalVotes(); ok {
		_spec.AddField(report.FieldTotalVotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Views(); ok {
		_spec.SetField(report.FieldViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViews(); ok {
		_spec.AddField(report.FieldViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Shares(); ok {
		_spec.SetField(report.FieldShares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShares(); ok {
		_spec.AddField(report.FieldShares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedResolutionHours(); ok {
		_spec.SetField(report.FieldExpectedResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedResolutionHours(); ok {
		_spec.AddField(report.FieldExpectedResolutionHours, field.TypeFloat64, value)
	}
	if _u.mutation.ExpectedResolutionHoursCleared() {
		_spec.ClearField(report.FieldExpectedResolutionHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ActualResolutionHours(); ok {
		_spec.SetField(report.FieldActualResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualResolutionHours(); ok {
		_spec.AddField(report.FieldActualResolutionHours, field.TypeFloat64, value)
	}
	if _u.mutation.ActualResolutionHoursCleared() {
		_spec.ClearField(report.FieldActualResolutionHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOverdue(); ok {
		_spec.SetField(report.FieldIsOverdue, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(report.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(report.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastEscalatedAt(); ok {
		_spec.SetField(report.FieldLastEscalatedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEscalatedAtCleared() {
		_spec.ClearField(report.FieldLastEscalatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(report.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(report.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(report.FieldResolvedBy, field.TypeUUID, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(report.FieldResolvedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(report.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(report.FieldResolutionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SatisfactionRating(); ok {
		_spec.SetField(report.FieldSatisfactionRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSatisfactionRating(); ok {
		_spec.AddField(report.FieldSatisfactionRating, field.TypeInt, value)
	}
	if _u.mutation.SatisfactionRatingCleared() {
		_spec.ClearField(report.FieldSatisfactionRating, field.TypeInt)
	}
	if _u.mutation.ReporterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReporterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DuplicateOfCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DuplicateOfIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DuplicatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDuplicatesIDs(); len(nodes) > 0 && !_u.mutation.DuplicatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DuplicatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotesIDs(); len(nodes) > 0 && !_u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusUpdatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusUpdatesIDs(); len(nodes) > 0 && !_u.mutation.StatusUpdatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusUpdatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportNumber sets the "report_number" field.
func (_u *ReportUpdateOne) SetReportNumber(v string) *ReportUpdateOne {
	_u.mutation.SetReportNumber(v)
	return _u
}

// SetNillableReportNumber sets the "report_number" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableReportNumber(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetReportNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdateOne) SetTitle(v string) *ReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTitle(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReportUpdateOne) SetDescription(v string) *ReportUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDescription(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReportUpdateOne) SetCategory(v report.Category) *ReportUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCategory(v *report.Category) *ReportUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *ReportUpdateOne) SetSubcategory(v string) *ReportUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSubcategory(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *ReportUpdateOne) ClearSubcategory() *ReportUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReportUpdateOne) SetPriority(v report.Priority) *ReportUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePriority(v *report.Priority) *ReportUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetAiPriorityScore sets the "ai_priority_score" field.
func (_u *ReportUpdateOne) SetAiPriorityScore(v float64) *ReportUpdateOne {
	_u.mutation.ResetAiPriorityScore()
	_u.mutation.SetAiPriorityScore(v)
	return _u
}

// SetNillableAiPriorityScore sets the "ai_priority_score" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAiPriorityScore(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetAiPriorityScore(*v)
	}
	return _u
}

// AddAiPriorityScore adds value to the "ai_priority_score" field.
func (_u *ReportUpdateOne) AddAiPriorityScore(v float64) *ReportUpdateOne {
	_u.mutation.AddAiPriorityScore(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ReportUpdateOne) SetLongitude(v float64) *ReportUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLongitude(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ReportUpdateOne) AddLongitude(v float64) *ReportUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ReportUpdateOne) SetLatitude(v float64) *ReportUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLatitude(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ReportUpdateOne) AddLatitude(v float64) *ReportUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetStreet sets the "street" field.
func (_u *ReportUpdateOne) SetStreet(v string) *ReportUpdateOne {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStreet(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// ClearStreet clears the value of the "street" field.
func (_u *ReportUpdateOne) ClearStreet() *ReportUpdateOne {
	_u.mutation.ClearStreet()
	return _u
}

// SetCity sets the "city" field.
func (_u *ReportUpdateOne) SetCity(v string) *ReportUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCity(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ReportUpdateOne) SetState(v string) *ReportUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableState(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ReportUpdateOne) ClearState() *ReportUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *ReportUpdateOne) SetZipCode(v string) *ReportUpdateOne {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableZipCode(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// ClearZipCode clears the value of the "zip_code" field.
func (_u *ReportUpdateOne) ClearZipCode() *ReportUpdateOne {
	_u.mutation.ClearZipCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ReportUpdateOne) SetCountry(v string) *ReportUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCountry(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetLandmark sets the "landmark" field.
func (_u *ReportUpdateOne) SetLandmark(v string) *ReportUpdateOne {
	_u.mutation.SetLandmark(v)
	return _u
}

// SetNillableLandmark sets the "landmark" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLandmark(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetLandmark(*v)
	}
	return _u
}

// ClearLandmark clears the value of the "landmark" field.
func (_u *ReportUpdateOne) ClearLandmark() *ReportUpdateOne {
	_u.mutation.ClearLandmark()
	return _u
}

// SetMedia sets the "media" field.
func (_u *ReportUpdateOne) SetMedia(v []model.MediaRef) *ReportUpdateOne {
	_u.mutation.SetMedia(v)
	return _u
}

// AppendMedia appends value to the "media" field.
func (_u *ReportUpdateOne) AppendMedia(v []model.MediaRef) *ReportUpdateOne {
	_u.mutation.AppendMedia(v)
	return _u
}

// ClearMedia clears the value of the "media" field.
func (_u *ReportUpdateOne) ClearMedia() *ReportUpdateOne {
	_u.mutation.ClearMedia()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ReportUpdateOne) SetTags(v []string) *ReportUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ReportUpdateOne) AppendTags(v []string) *ReportUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ReportUpdateOne) ClearTags() *ReportUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetReporterID sets the "reporter_id" field.
func (_u *ReportUpdateOne) SetReporterID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetReporterID(v)
	return _u
}

// SetNillableReporterID sets the "reporter_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableReporterID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetReporterID(*v)
	}
	return _u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_u *ReportUpdateOne) SetIsAnonymous(v bool) *ReportUpdateOne {
	_u.mutation.SetIsAnonymous(v)
	return _u
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableIsAnonymous(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetIsAnonymous(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *ReportUpdateOne) SetIsPublic(v bool) *ReportUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableIsPublic(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *ReportUpdateOne) SetIsFeatured(v bool) *ReportUpdateOne {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableIsFeatured(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v report.Status) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *report.Status) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *ReportUpdateOne) SetStatusChangedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatusChangedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetAssignedDepartmentCode sets the "assigned_department_code" field.
func (_u *ReportUpdateOne) SetAssignedDepartmentCode(v string) *ReportUpdateOne {
	_u.mutation.SetAssignedDepartmentCode(v)
	return _u
}

// SetNillableAssignedDepartmentCode sets the "assigned_department_code" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAssignedDepartmentCode(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetAssignedDepartmentCode(*v)
	}
	return _u
}

// ClearAssignedDepartmentCode clears the value of the "assigned_department_code" field.
func (_u *ReportUpdateOne) ClearAssignedDepartmentCode() *ReportUpdateOne {
	_u.mutation.ClearAssignedDepartmentCode()
	return _u
}

// SetIsValidated sets the "is_validated" field.
func (_u *ReportUpdateOne) SetIsValidated(v bool) *ReportUpdateOne {
	_u.mutation.SetIsValidated(v)
	return _u
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableIsValidated(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetIsValidated(*v)
	}
	return _u
}

// SetValidatedBy sets the "validated_by" field.
func (_u *ReportUpdateOne) SetValidatedBy(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetValidatedBy(v)
	return _u
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableValidatedBy(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetValidatedBy(*v)
	}
	return _u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (_u *ReportUpdateOne) ClearValidatedBy() *ReportUpdateOne {
	_u.mutation.ClearValidatedBy()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ReportUpdateOne) SetValidatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableValidatedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ReportUpdateOne) ClearValidatedAt() *ReportUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetValidationNotes sets the "validation_notes" field.
func (_u *ReportUpdateOne) SetValidationNotes(v string) *ReportUpdateOne {
	_u.mutation.SetValidationNotes(v)
	return _u
}

// SetNillableValidationNotes sets the "validation_notes" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableValidationNotes(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetValidationNotes(*v)
	}
	return _u
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (_u *ReportUpdateOne) ClearValidationNotes() *ReportUpdateOne {
	_u.mutation.ClearValidationNotes()
	return _u
}

// SetUpvotes sets the "upvotes" field.
func (_u *ReportUpdateOne) SetUpvotes(v int) *ReportUpdateOne {
	_u.mutation.ResetUpvotes()
	_u.mutation.SetUpvotes(v)
	return _u
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUpvotes(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetUpvotes(*v)
	}
	return _u
}

// AddUpvotes adds value to the "upvotes" field.
func (_u *ReportUpdateOne) AddUpvotes(v int) *ReportUpdateOne {
	_u.mutation.AddUpvotes(v)
	return _u
}

// SetDownvotes sets the "downvotes" field.
func (_u *ReportUpdateOne) SetDownvotes(v int) *ReportUpdateOne {
	_u.mutation.ResetDownvotes()
	_u.mutation.SetDownvotes(v)
	return _u
}

// SetNillableDownvotes sets the "downvotes" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDownvotes(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetDownvotes(*v)
	}
	return _u
}

// AddDownvotes adds value to the "downvotes" field.
func (_u *ReportUpdateOne) AddDownvotes(v int) *ReportUpdateOne {
	_u.mutation.AddDownvotes(v)
	return _u
}

// SetTotalVotes sets the "total_votes" field.
func (_u *ReportUpdateOne) SetTotalVotes(v int) *ReportUpdateOne {
	_u.mutation.ResetTotalVotes()
	_u.mutation.SetTotalVotes(v)
	return _u
}

// SetNillableTotalVotes sets the "total_votes" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTotalVotes(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetTotalVotes(*v)
	}
	return _u
}

// AddTotalVotes adds value to the "total_votes" field.
func (_u *ReportUpdateOne) AddTotalVotes(v int) *ReportUpdateOne {
	_u.mutation.AddTotalVotes(v)
	return _u
}

// SetViews sets the "views" field.
func (_u *ReportUpdateOne) SetViews(v int) *ReportUpdateOne {
	_u.mutation.ResetViews()
	_u.mutation.SetViews(v)
	return _u
}

// SetNillableViews sets the "views" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableViews(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetViews(*v)
	}
	return _u
}

// AddViews adds value to the "views" field.
func (_u *ReportUpdateOne) AddViews(v int) *ReportUpdateOne {
	_u.mutation.AddViews(v)
	return _u
}

// SetShares sets the "shares" field.
func (_u *ReportUpdateOne) SetShares(v int) *ReportUpdateOne {
	_u.mutation.ResetShares()
	_u.mutation.SetShares(v)
	return _u
}

// SetNillableShares sets the "shares" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableShares(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetShares(*v)
	}
	return _u
}

// AddShares adds value to the "shares" field.
func (_u *ReportUpdateOne) AddShares(v int) *ReportUpdateOne {
	_u.mutation.AddShares(v)
	return _u
}

// SetExpectedResolutionHours sets the "expected_resolution_hours" field.
func (_u *ReportUpdateOne) SetExpectedResolutionHours(v float64) *ReportUpdateOne {
	_u.mutation.ResetExpectedResolutionHours()
	_u.mutation.SetExpectedResolutionHours(v)
	return _u
}

// SetNillableExpectedResolutionHours sets the "expected_resolution_hours" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableExpectedResolutionHours(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetExpectedResolutionHours(*v)
	}
	return _u
}

// AddExpectedResolutionHours adds value to the "expected_resolution_hours" field.
func (_u *ReportUpdateOne) AddExpectedResolutionHours(v float64) *ReportUpdateOne {
	_u.mutation.AddExpectedResolutionHours(v)
	return _u
}

// ClearExpectedResolutionHours clears the value of the "expected_resolution_hours" field.
func (_u *ReportUpdateOne) ClearExpectedResolutionHours() *ReportUpdateOne {
	_u.mutation.ClearExpectedResolutionHours()
	return _u
}

// SetActualResolutionHours sets the "actual_resolution_hours" field.
func (_u *ReportUpdateOne) SetActualResolutionHours(v float64) *ReportUpdateOne {
	_u.mutation.ResetActualResolutionHours()
	_u.mutation.SetActualResolutionHours(v)
	return _u
}

// SetNillableActualResolutionHours sets the "actual_resolution_hours" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableActualResolutionHours(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetActualResolutionHours(*v)
	}
	return _u
}

// AddActualResolutionHours adds value to the "actual_resolution_hours" field.
func (_u *ReportUpdateOne) AddActualResolutionHours(v float64) *ReportUpdateOne {
	_u.mutation.AddActualResolutionHours(v)
	return _u
}

// ClearActualResolutionHours clears the value of the "actual_resolution_hours" field.
func (_u *ReportUpdateOne) ClearActualResolutionHours() *ReportUpdateOne {
	_u.mutation.ClearActualResolutionHours()
	return _u
}

// SetIsOverdue sets the "is_overdue" field.
func (_u *ReportUpdateOne) SetIsOverdue(v bool) *ReportUpdateOne {
	_u.mutation.SetIsOverdue(v)
	return _u
}

// SetNillableIsOverdue sets the "is_overdue" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableIsOverdue(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetIsOverdue(*v)
	}
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *ReportUpdateOne) SetEscalationLevel(v int) *ReportUpdateOne {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableEscalationLevel(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *ReportUpdateOne) AddEscalationLevel(v int) *ReportUpdateOne {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (_u *ReportUpdateOne) SetLastEscalatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetLastEscalatedAt(v)
	return _u
}

// SetNillableLastEscalatedAt sets the "last_escalated_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLastEscalatedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetLastEscalatedAt(*v)
	}
	return _u
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (_u *ReportUpdateOne) ClearLastEscalatedAt() *ReportUpdateOne {
	_u.mutation.ClearLastEscalatedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ReportUpdateOne) SetResolvedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableResolvedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ReportUpdateOne) ClearResolvedAt() *ReportUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ReportUpdateOne) SetResolvedBy(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableResolvedBy(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ReportUpdateOne) ClearResolvedBy() *ReportUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *ReportUpdateOne) SetResolutionNotes(v string) *ReportUpdateOne {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableResolutionNotes(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *ReportUpdateOne) ClearResolutionNotes() *ReportUpdateOne {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// SetSatisfactionRating sets the "satisfaction_rating" field.
func (_u *ReportUpdateOne) SetSatisfactionRating(v int) *ReportUpdateOne {
	_u.mutation.ResetSatisfactionRating()
	_u.mutation.SetSatisfactionRating(v)
	return _u
}

// SetNillableSatisfactionRating sets the "satisfaction_rating" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSatisfactionRating(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetSatisfactionRating(*v)
	}
	return _u
}

// AddSatisfactionRating adds value to the "satisfaction_rating" field.
func (_u *ReportUpdateOne) AddSatisfactionRating(v int) *ReportUpdateOne {
	_u.mutation.AddSatisfactionRating(v)
	return _u
}

// ClearSatisfactionRating clears the value of the "satisfaction_rating" field.
func (_u *ReportUpdateOne) ClearSatisfactionRating() *ReportUpdateOne {
	_u.mutation.ClearSatisfactionRating()
	return _u
}

// SetDuplicateOfID sets the "duplicate_of_id" field.
func (_u *ReportUpdateOne) SetDuplicateOfID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetDuplicateOfID(v)
	return _u
}

// SetNillableDuplicateOfID sets the "duplicate_of_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDuplicateOfID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetDuplicateOfID(*v)
	}
	return _u
}

// ClearDuplicateOfID clears the value of the "duplicate_of_id" field.
func (_u *ReportUpdateOne) ClearDuplicateOfID() *ReportUpdateOne {
	_u.mutation.ClearDuplicateOfID()
	return _u
}

// SetReporter sets the "reporter" edge to the User entity.
func (_u *ReportUpdateOne) SetReporter(v *User) *ReportUpdateOne {
	return _u.SetReporterID(v.ID)
}

// SetDuplicateOf sets the "duplicate_of" edge to the Report entity.
func (_u *ReportUpdateOne) SetDuplicateOf(v *Report) *ReportUpdateOne {
	return _u.SetDuplicateOfID(v.ID)
}

// AddDuplicateIDs adds the "duplicates" edge to the Report entity by IDs.
func (_u *ReportUpdateOne) AddDuplicateIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddDuplicateIDs(ids...)
	return _u
}

// AddDuplicates adds the "duplicates" edges to the Report entity.
func (_u *ReportUpdateOne) AddDuplicates(v ...*Report) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDuplicateIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_u *ReportUpdateOne) AddVoteIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddVoteIDs(ids...)
	return _u
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_u *ReportUpdateOne) AddVotes(v ...*Vote) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoteIDs(ids...)
}

// AddStatusUpdateIDs adds the "status_updates" edge to the StatusUpdate entity by IDs.
func (_u *ReportUpdateOne) AddStatusUpdateIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddStatusUpdateIDs(ids...)
	return _u
}

// AddStatusUpdates adds the "status_updates" edges to the StatusUpdate entity.
func (_u *ReportUpdateOne) AddStatusUpdates(v ...*StatusUpdate) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusUpdateIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_u *ReportUpdateOne) AddCommentIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the Comment entity.
func (_u *ReportUpdateOne) AddComments(v ...*Comment) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearReporter clears the "reporter" edge to the User entity.
func (_u *ReportUpdateOne) ClearReporter() *ReportUpdateOne {
	_u.mutation.ClearReporter()
	return _u
}

// ClearDuplicateOf clears the "duplicate_of" edge to the Report entity.
func (_u *ReportUpdateOne) ClearDuplicateOf() *ReportUpdateOne {
	_u.mutation.ClearDuplicateOf()
	return _u
}

// ClearDuplicates clears all "duplicates" edges to the Report entity.
func (_u *ReportUpdateOne) ClearDuplicates() *ReportUpdateOne {
	_u.mutation.ClearDuplicates()
	return _u
}

// RemoveDuplicateIDs removes the "duplicates" edge to Report entities by IDs.
func (_u *ReportUpdateOne) RemoveDuplicateIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveDuplicateIDs(ids...)
	return _u
}

// RemoveDuplicates removes "duplicates" edges to Report entities.
func (_u *ReportUpdateOne) RemoveDuplicates(v ...*Report) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDuplicateIDs(ids...)
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (_u *ReportUpdateOne) ClearVotes() *ReportUpdateOne {
	_u.mutation.ClearVotes()
	return _u
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (_u *ReportUpdateOne) RemoveVoteIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveVoteIDs(ids...)
	return _u
}

// RemoveVotes removes "votes" edges to Vote entities.
func (_u *ReportUpdateOne) RemoveVotes(v ...*Vote) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoteIDs(ids...)
}

// ClearStatusUpdates clears all "status_updates" edges to the StatusUpdate entity.
func (_u *ReportUpdateOne) ClearStatusUpdates() *ReportUpdateOne {
	_u.mutation.ClearStatusUpdates()
	return _u
}

// RemoveStatusUpdateIDs removes the "status_updates" edge to StatusUpdate entities by IDs.
func (_u *ReportUpdateOne) RemoveStatusUpdateIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveStatusUpdateIDs(ids...)
	return _u
}

// RemoveStatusUpdates removes "status_updates" edges to StatusUpdate entities.
func (_u *ReportUpdateOne) RemoveStatusUpdates(v ...*StatusUpdate) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusUpdateIDs(ids...)
}

// ClearComments clears all "comments" edges to the Comment entity.
func (_u *ReportUpdateOne) ClearComments() *ReportUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to Comment entities by IDs.
func (_u *ReportUpdateOne) RemoveCommentIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to Comment entities.
func (_u *ReportUpdateOne) RemoveComments(v ...*Comment) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.ReportNumber(); ok {
		if err := report.ReportNumberValidator(v); err != nil {
			return &ValidationError{Name: "report_number", err: fmt.Errorf(`ent: validator failed for field "Report.report_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := report.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Report.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiPriorityScore(); ok {
		if err := report.AiPriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "ai_priority_score", err: fmt.Errorf(`ent: validator failed for field "Report.ai_priority_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Longitude(); ok {
		if err := report.LongitudeValidator(v); err != nil {
			return &ValidationError{Name: "longitude", err: fmt.Errorf(`ent: validator failed for field "Report.longitude": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Latitude(); ok {
		if err := report.LatitudeValidator(v); err != nil {
			return &ValidationError{Name: "latitude", err: fmt.Errorf(`ent: validator failed for field "Report.latitude": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Street(); ok {
		if err := report.StreetValidator(v); err != nil {
			return &ValidationError{Name: "street", err: fmt.Errorf(`ent: validator failed for field "Report.street": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := report.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Report.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := report.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Report.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ZipCode(); ok {
		if err := report.ZipCodeValidator(v); err != nil {
			return &ValidationError{Name: "zip_code", err: fmt.Errorf(`ent: validator failed for field "Report.zip_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := report.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Report.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Landmark(); ok {
		if err := report.LandmarkValidator(v); err != nil {
			return &ValidationError{Name: "landmark", err: fmt.Errorf(`ent: validator failed for field "Report.landmark": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedDepartmentCode(); ok {
		if err := report.AssignedDepartmentCodeValidator(v); err != nil {
			return &ValidationError{Name: "assigned_department_code", err: fmt.Errorf(`ent: validator failed for field "Report.assigned_department_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Upvotes(); ok {
		if err := report.UpvotesValidator(v); err != nil {
			return &ValidationError{Name: "upvotes", err: fmt.Errorf(`ent: validator failed for field "Report.upvotes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Downvotes(); ok {
		if err := report.DownvotesValidator(v); err != nil {
			return &ValidationError{Name: "downvotes", err: fmt.Errorf(`ent: validator failed for field "Report.downvotes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalVotes(); ok {
		if err := report.TotalVotesValidator(v); err != nil {
			return &ValidationError{Name: "total_votes", err: fmt.Errorf(`ent: validator failed for field "Report.total_votes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := report.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "Report.escalation_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SatisfactionRating(); ok {
		if err := report.SatisfactionRatingValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_rating", err: fmt.Errorf(`ent: validator failed for field "Report.satisfaction_rating": %w`, err)}
		}
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.reporter"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReportNumber(); ok {
		_spec.SetField(report.FieldReportNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(report.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(report.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AiPriorityScore(); ok {
		_spec.SetField(report.FieldAiPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiPriorityScore(); ok {
		_spec.AddField(report.FieldAiPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(report.FieldStreet, field.TypeString, value)
	}
	if _u.mutation.StreetCleared() {
		_spec.ClearField(report.FieldStreet, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(report.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(report.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(report.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(report.FieldZipCode, field.TypeString, value)
	}
	if _u.mutation.ZipCodeCleared() {
		_spec.ClearField(report.FieldZipCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(report.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Landmark(); ok {
		_spec.SetField(report.FieldLandmark, field.TypeString, value)
	}
	if _u.mutation.LandmarkCleared() {
		_spec.ClearField(report.FieldLandmark, field.TypeString)
	}
	if value, ok := _u.mutation.Media(); ok {
		_spec.SetField(report.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldMedia, value)
		})
	}
	if _u.mutation.MediaCleared() {
		_spec.ClearField(report.FieldMedia, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(report.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(report.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsAnonymous(); ok {
		_spec.SetField(report.FieldIsAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(report.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(report.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(report.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedDepartmentCode(); ok {
		_spec.SetField(report.FieldAssignedDepartmentCode, field.TypeString, value)
	}
	if _u.mutation.AssignedDepartmentCodeCleared() {
		_spec.ClearField(report.FieldAssignedDepartmentCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsValidated(); ok {
		_spec.SetField(report.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidatedBy(); ok {
		_spec.SetField(report.FieldValidatedBy, field.TypeUUID, value)
	}
	if _u.mutation.ValidatedByCleared() {
		_spec.ClearField(report.FieldValidatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(report.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(report.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationNotes(); ok {
		_spec.SetField(report.FieldValidationNotes, field.TypeString, value)
	}
	if _u.mutation.ValidationNotesCleared() {
		_spec.ClearField(report.FieldValidationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Upvotes(); ok {
		_spec.SetField(report.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvotes(); ok {
		_spec.AddField(report.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Downvotes(); ok {
		_spec.SetField(report.FieldDownvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDownvotes(); ok {
		_spec.AddField(report.FieldDownvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalVotes(); ok {
		_spec.SetField(report.FieldTotalVotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalVotes(); ok {
		_spec.AddField(report.FieldTotalVotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Views(); ok {
		_spec.SetField(report.FieldViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViews(); ok {
		_spec.AddField(report.FieldViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Shares(); ok {
		_spec.SetField(report.FieldShares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShares(); ok {
		_spec.AddField(report.FieldShares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedResolutionHours(); ok {
		_spec.SetField(report.FieldExpectedResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedResolutionHours(); ok {
		_spec.AddField(report.FieldExpectedResolutionHours, field.TypeFloat64, value)
	}
	if _u.mutation.ExpectedResolutionHoursCleared() {
		_spec.ClearField(report.FieldExpectedResolutionHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ActualResolutionHours(); ok {
		_spec.SetField(report.FieldActualResolutionHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualResolutionHours(); ok {
		_spec.AddField(report.FieldActualResolutionHours, field.TypeFloat64, value)
	}
	if _u.mutation.ActualResolutionHoursCleared() {
		_spec.ClearField(report.FieldActualResolutionHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOverdue(); ok {
		_spec.SetField(report.FieldIsOverdue, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(report.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(report.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastEscalatedAt(); ok {
		_spec.SetField(report.FieldLastEscalatedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEscalatedAtCleared() {
		_spec.ClearField(report.FieldLastEscalatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(report.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(report.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(report.FieldResolvedBy, field.TypeUUID, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(report.FieldResolvedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(report.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(report.FieldResolutionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SatisfactionRating(); ok {
		_spec.SetField(report.FieldSatisfactionRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSatisfactionRating(); ok {
		_spec.AddField(report.FieldSatisfactionRating, field.TypeInt, value)
	}
	if _u.mutation.SatisfactionRatingCleared() {
		_spec.ClearField(report.FieldSatisfactionRating, field.TypeInt)
	}
	if _u.mutation.ReporterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReporterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DuplicateOfCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DuplicateOfIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DuplicatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDuplicatesIDs(); len(nodes) > 0 && !_u.mutation.DuplicatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DuplicatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotesIDs(); len(nodes) > 0 && !_u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusUpdatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusUpdatesIDs(); len(nodes) > 0 && !_u.mutation.StatusUpdatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusUpdatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
