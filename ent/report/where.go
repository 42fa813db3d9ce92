// Code generated by ent, DO NOT EDIT.

package report

import (
	"CivicPulseAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportNumber applies equality check predicate on the "report_number" field. It's identical to ReportNumberEQ.
func ReportNumber(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDescription, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSubcategory, v))
}

// AiPriorityScore applies equality check predicate on the "ai_priority_score" field. It's identical to AiPriorityScoreEQ.
func AiPriorityScore(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAiPriorityScore, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLongitude, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLatitude, v))
}

// Street applies equality check predicate on the "street" field. It's identical to StreetEQ.
func Street(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStreet, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldState, v))
}

// ZipCode applies equality check predicate on the "zip_code" field. It's identical to ZipCodeEQ.
func ZipCode(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldZipCode, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCountry, v))
}

// Landmark applies equality check predicate on the "landmark" field. It's identical to LandmarkEQ.
func Landmark(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLandmark, v))
}

// ReporterID applies equality check predicate on the "reporter_id" field. It's identical to ReporterIDEQ.
func ReporterID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterID, v))
}

// IsAnonymous applies equality check predicate on the "is_anonymous" field. It's identical to IsAnonymousEQ.
func IsAnonymous(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsAnonymous, v))
}

// IsPublic applies equality check predicate on the "is_public" field. It's identical to IsPublicEQ.
func IsPublic(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsPublic, v))
}

// IsFeatured applies equality check predicate on the "is_featured" field. It's identical to IsFeaturedEQ.
func IsFeatured(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsFeatured, v))
}

// StatusChangedAt applies equality check predicate on the "status_changed_at" field. It's identical to StatusChangedAtEQ.
func StatusChangedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatusChangedAt, v))
}

// AssignedDepartmentCode applies equality check predicate on the "assigned_department_code" field. It's identical to AssignedDepartmentCodeEQ.
func AssignedDepartmentCode(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAssignedDepartmentCode, v))
}

// IsValidated applies equality check predicate on the "is_validated" field. It's identical to IsValidatedEQ.
func IsValidated(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsValidated, v))
}

// ValidatedBy applies equality check predicate on the "validated_by" field. It's identical to ValidatedByEQ.
func ValidatedBy(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldValidatedBy, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidationNotes applies equality check predicate on the "validation_notes" field. It's identical to ValidationNotesEQ.
func ValidationNotes(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldValidationNotes, v))
}

// Upvotes applies equality check predicate on the "upvotes" field. It's identical to UpvotesEQ.
func Upvotes(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpvotes, v))
}

// Downvotes applies equality check predicate on the "downvotes" field. It's identical to DownvotesEQ.
func Downvotes(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDownvotes, v))
}

// TotalVotes applies equality check predicate on the "total_votes" field. It's identical to TotalVotesEQ.
func TotalVotes(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTotalVotes, v))
}

// Views applies equality check predicate on the "views" field. It's identical to ViewsEQ.
func Views(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldViews, v))
}

// Shares applies equality check predicate on the "shares" field. It's identical to SharesEQ.
func Shares(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldShares, v))
}

// ExpectedResolutionHours applies equality check predicate on the "expected_resolution_hours" field. It's identical to ExpectedResolutionHoursEQ.
func ExpectedResolutionHours(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldExpectedResolutionHours, v))
}

// ActualResolutionHours applies equality check predicate on the "actual_resolution_hours" field. It's identical to ActualResolutionHoursEQ.
func ActualResolutionHours(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldActualResolutionHours, v))
}

// IsOverdue applies equality check predicate on the "is_overdue" field. It's identical to IsOverdueEQ.
func IsOverdue(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsOverdue, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldEscalationLevel, v))
}

// LastEscalatedAt applies equality check predicate on the "last_escalated_at" field. It's identical to LastEscalatedAtEQ.
func LastEscalatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLastEscalatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolutionNotes applies equality check predicate on the "resolution_notes" field. It's identical to ResolutionNotesEQ.
func ResolutionNotes(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolutionNotes, v))
}

// SatisfactionRating applies equality check predicate on the "satisfaction_rating" field. It's identical to SatisfactionRatingEQ.
func SatisfactionRating(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSatisfactionRating, v))
}

// DuplicateOfID applies equality check predicate on the "duplicate_of_id" field. It's identical to DuplicateOfIDEQ.
func DuplicateOfID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDuplicateOfID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedAt, v))
}

// ReportNumberEQ applies the EQ predicate on the "report_number" field.
func ReportNumberEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportNumber, v))
}

// ReportNumberNEQ applies the NEQ predicate on the "report_number" field.
func ReportNumberNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReportNumber, v))
}

// ReportNumberIn applies the In predicate on the "report_number" field.
func ReportNumberIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReportNumber, vs...))
}

// ReportNumberNotIn applies the NotIn predicate on the "report_number" field.
func ReportNumberNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReportNumber, vs...))
}

// ReportNumberGT applies the GT predicate on the "report_number" field.
func ReportNumberGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldReportNumber, v))
}

// ReportNumberGTE applies the GTE predicate on the "report_number" field.
func ReportNumberGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldReportNumber, v))
}

// ReportNumberLT applies the LT predicate on the "report_number" field.
func ReportNumberLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldReportNumber, v))
}

// ReportNumberLTE applies the LTE predicate on the "report_number" field.
func ReportNumberLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldReportNumber, v))
}

// ReportNumberContains applies the Contains predicate on the "report_number" field.
func ReportNumberContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldReportNumber, v))
}

// ReportNumberHasPrefix applies the HasPrefix predicate on the "report_number" field.
func ReportNumberHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldReportNumber, v))
}

// ReportNumberHasSuffix applies the HasSuffix predicate on the "report_number" field.
func ReportNumberHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldReportNumber, v))
}

// ReportNumberEqualFold applies the EqualFold predicate on the "report_number" field.
func ReportNumberEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldReportNumber, v))
}

// ReportNumberContainsFold applies the ContainsFold predicate on the "report_number" field.
func ReportNumberContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldReportNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCategory, vs...))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldSubcategory, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPriority, vs...))
}

// AiPriorityScoreEQ applies the EQ predicate on the "ai_priority_score" field.
func AiPriorityScoreEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAiPriorityScore, v))
}

// AiPriorityScoreNEQ applies the NEQ predicate on the "ai_priority_score" field.
func AiPriorityScoreNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAiPriorityScore, v))
}

// AiPriorityScoreIn applies the In predicate on the "ai_priority_score" field.
func AiPriorityScoreIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAiPriorityScore, vs...))
}

// AiPriorityScoreNotIn applies the NotIn predicate on the "ai_priority_score" field.
func AiPriorityScoreNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAiPriorityScore, vs...))
}

// AiPriorityScoreGT applies the GT predicate on the "ai_priority_score" field.
func AiPriorityScoreGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldAiPriorityScore, v))
}

// AiPriorityScoreGTE applies the GTE predicate on the "ai_priority_score" field.
func AiPriorityScoreGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldAiPriorityScore, v))
}

// AiPriorityScoreLT applies the LT predicate on the "ai_priority_score" field.
func AiPriorityScoreLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldAiPriorityScore, v))
}

// AiPriorityScoreLTE applies the LTE predicate on the "ai_priority_score" field.
func AiPriorityScoreLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldAiPriorityScore, v))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLongitude, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLatitude, v))
}

// StreetEQ applies the EQ predicate on the "street" field.
func StreetEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStreet, v))
}

// StreetNEQ applies the NEQ predicate on the "street" field.
func StreetNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStreet, v))
}

// StreetIn applies the In predicate on the "street" field.
func StreetIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStreet, vs...))
}

// StreetNotIn applies the NotIn predicate on the "street" field.
func StreetNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStreet, vs...))
}

// StreetGT applies the GT predicate on the "street" field.
func StreetGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldStreet, v))
}

// StreetGTE applies the GTE predicate on the "street" field.
func StreetGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldStreet, v))
}

// StreetLT applies the LT predicate on the "street" field.
func StreetLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldStreet, v))
}

// StreetLTE applies the LTE predicate on the "street" field.
func StreetLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldStreet, v))
}

// StreetContains applies the Contains predicate on the "street" field.
func StreetContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldStreet, v))
}

// StreetHasPrefix applies the HasPrefix predicate on the "street" field.
func StreetHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldStreet, v))
}

// StreetHasSuffix applies the HasSuffix predicate on the "street" field.
func StreetHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldStreet, v))
}

// StreetIsNil applies the IsNil predicate on the "street" field.
func StreetIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldStreet))
}

// StreetNotNil applies the NotNil predicate on the "street" field.
func StreetNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldStreet))
}

// StreetEqualFold applies the EqualFold predicate on the "street" field.
func StreetEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldStreet, v))
}

// StreetContainsFold applies the ContainsFold predicate on the "street" field.
func StreetContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldStreet, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldState, v))
}

// ZipCodeEQ applies the EQ predicate on the "zip_code" field.
func ZipCodeEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldZipCode, v))
}

// ZipCodeNEQ applies the NEQ predicate on the "zip_code" field.
func ZipCodeNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldZipCode, v))
}

// ZipCodeIn applies the In predicate on the "zip_code" field.
func ZipCodeIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldZipCode, vs...))
}

// ZipCodeNotIn applies the NotIn predicate on the "zip_code" field.
func ZipCodeNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldZipCode, vs...))
}

// ZipCodeGT applies the GT predicate on the "zip_code" field.
func ZipCodeGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldZipCode, v))
}

// ZipCodeGTE applies the GTE predicate on the "zip_code" field.
func ZipCodeGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldZipCode, v))
}

// ZipCodeLT applies the LT predicate on the "zip_code" field.
func ZipCodeLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldZipCode, v))
}

// ZipCodeLTE applies the LTE predicate on the "zip_code" field.
func ZipCodeLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldZipCode, v))
}

// ZipCodeContains applies the Contains predicate on the "zip_code" field.
func ZipCodeContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldZipCode, v))
}

// ZipCodeHasPrefix applies the HasPrefix predicate on the "zip_code" field.
func ZipCodeHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldZipCode, v))
}

// ZipCodeHasSuffix applies the HasSuffix predicate on the "zip_code" field.
func ZipCodeHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldZipCode, v))
}

// ZipCodeIsNil applies the IsNil predicate on the "zip_code" field.
func ZipCodeIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldZipCode))
}

// ZipCodeNotNil applies the NotNil predicate on the "zip_code" field.
func ZipCodeNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldZipCode))
}

// ZipCodeEqualFold applies the EqualFold predicate on the "zip_code" field.
func ZipCodeEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldZipCode, v))
}

// ZipCodeContainsFold applies the ContainsFold predicate on the "zip_code" field.
func ZipCodeContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldZipCode, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldCountry, v))
}

// LandmarkEQ applies the EQ predicate on the "landmark" field.
func LandmarkEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLandmark, v))
}

// LandmarkNEQ applies the NEQ predicate on the "landmark" field.
func LandmarkNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLandmark, v))
}

// LandmarkIn applies the In predicate on the "landmark" field.
func LandmarkIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLandmark, vs...))
}

// LandmarkNotIn applies the NotIn predicate on the "landmark" field.
func LandmarkNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLandmark, vs...))
}

// LandmarkGT applies the GT predicate on the "landmark" field.
func LandmarkGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLandmark, v))
}

// LandmarkGTE applies the GTE predicate on the "landmark" field.
func LandmarkGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLandmark, v))
}

// LandmarkLT applies the LT predicate on the "landmark" field.
func LandmarkLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLandmark, v))
}

// LandmarkLTE applies the LTE predicate on the "landmark" field.
func LandmarkLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLandmark, v))
}

// LandmarkContains applies the Contains predicate on the "landmark" field.
func LandmarkContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldLandmark, v))
}

// LandmarkHasPrefix applies the HasPrefix predicate on the "landmark" field.
func LandmarkHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldLandmark, v))
}

// LandmarkHasSuffix applies the HasSuffix predicate on the "landmark" field.
func LandmarkHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldLandmark, v))
}

// LandmarkIsNil applies the IsNil predicate on the "landmark" field.
func LandmarkIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLandmark))
}

// LandmarkNotNil applies the NotNil predicate on the "landmark" field.
func LandmarkNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLandmark))
}

// LandmarkEqualFold applies the EqualFold predicate on the "landmark" field.
func LandmarkEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldLandmark, v))
}

// LandmarkContainsFold applies the ContainsFold predicate on the "landmark" field.
func LandmarkContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldLandmark, v))
}

// MediaIsNil applies the IsNil predicate on the "media" field.
func MediaIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldMedia))
}

// MediaNotNil applies the NotNil predicate on the "media" field.
func MediaNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldMedia))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldTags))
}

// ReporterIDEQ applies the EQ predicate on the "reporter_id" field.
func ReporterIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterID, v))
}

// ReporterIDNEQ applies the NEQ predicate on the "reporter_id" field.
func ReporterIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReporterID, v))
}

// ReporterIDIn applies the In predicate on the "reporter_id" field.
func ReporterIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReporterID, vs...))
}

// ReporterIDNotIn applies the NotIn predicate on the "reporter_id" field.
func ReporterIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReporterID, vs...))
}

// IsAnonymousEQ applies the EQ predicate on the "is_anonymous" field.
func IsAnonymousEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsAnonymous, v))
}

// IsAnonymousNEQ applies the NEQ predicate on the "is_anonymous" field.
func IsAnonymousNEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldIsAnonymous, v))
}

// IsPublicEQ applies the EQ predicate on the "is_public" field.
func IsPublicEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsPublic, v))
}

// IsPublicNEQ applies the NEQ predicate on the "is_public" field.
func IsPublicNEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldIsPublic, v))
}

// IsFeaturedEQ applies the EQ predicate on the "is_featured" field.
func IsFeaturedEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsFeatured, v))
}

// IsFeaturedNEQ applies the NEQ predicate on the "is_featured" field.
func IsFeaturedNEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldIsFeatured, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusChangedAtEQ applies the EQ predicate on the "status_changed_at" field.
func StatusChangedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtNEQ applies the NEQ predicate on the "status_changed_at" field.
func StatusChangedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtIn applies the In predicate on the "status_changed_at" field.
func StatusChangedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtNotIn applies the NotIn predicate on the "status_changed_at" field.
func StatusChangedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtGT applies the GT predicate on the "status_changed_at" field.
func StatusChangedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldStatusChangedAt, v))
}

// StatusChangedAtGTE applies the GTE predicate on the "status_changed_at" field.
func StatusChangedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldStatusChangedAt, v))
}

// StatusChangedAtLT applies the LT predicate on the "status_changed_at" field.
func StatusChangedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldStatusChangedAt, v))
}

// StatusChangedAtLTE applies the LTE predicate on the "status_changed_at" field.
func StatusChangedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldStatusChangedAt, v))
}

// AssignedDepartmentCodeEQ applies the EQ predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeNEQ applies the NEQ predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeIn applies the In predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAssignedDepartmentCode, vs...))
}

// AssignedDepartmentCodeNotIn applies the NotIn predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAssignedDepartmentCode, vs...))
}

// AssignedDepartmentCodeGT applies the GT predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeGTE applies the GTE predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeLT applies the LT predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeLTE applies the LTE predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeContains applies the Contains predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeHasPrefix applies the HasPrefix predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeHasSuffix applies the HasSuffix predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeIsNil applies the IsNil predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldAssignedDepartmentCode))
}

// AssignedDepartmentCodeNotNil applies the NotNil predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldAssignedDepartmentCode))
}

// AssignedDepartmentCodeEqualFold applies the EqualFold predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldAssignedDepartmentCode, v))
}

// AssignedDepartmentCodeContainsFold applies the ContainsFold predicate on the "assigned_department_code" field.
func AssignedDepartmentCodeContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldAssignedDepartmentCode, v))
}

// IsValidatedEQ applies the EQ predicate on the "is_validated" field.
func IsValidatedEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsValidated, v))
}

// IsValidatedNEQ applies the NEQ predicate on the "is_validated" field.
func IsValidatedNEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldIsValidated, v))
}

// ValidatedByEQ applies the EQ predicate on the "validated_by" field.
func ValidatedByEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldValidatedBy, v))
}

// ValidatedByNEQ applies the NEQ predicate on the "validated_by" field.
func ValidatedByNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldValidatedBy, v))
}

// ValidatedByIn applies the In predicate on the "validated_by" field.
func ValidatedByIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldValidatedBy, vs...))
}

// ValidatedByNotIn applies the NotIn predicate on the "validated_by" field.
func ValidatedByNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldValidatedBy, vs...))
}

// ValidatedByGT applies the GT predicate on the "validated_by" field.
func ValidatedByGT(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldValidatedBy, v))
}

// ValidatedByGTE applies the GTE predicate on the "validated_by" field.
func ValidatedByGTE(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldValidatedBy, v))
}

// ValidatedByLT applies the LT predicate on the "validated_by" field.
func ValidatedByLT(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldValidatedBy, v))
}

// ValidatedByLTE applies the LTE predicate on the "validated_by" field.
func ValidatedByLTE(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldValidatedBy, v))
}

// ValidatedByIsNil applies the IsNil predicate on the "validated_by" field.
func ValidatedByIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldValidatedBy))
}

// ValidatedByNotNil applies the NotNil predicate on the "validated_by" field.
func ValidatedByNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldValidatedBy))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldValidatedAt))
}

// ValidationNotesEQ applies the EQ predicate on the "validation_notes" field.
func ValidationNotesEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldValidationNotes, v))
}

// ValidationNotesNEQ applies the NEQ predicate on the "validation_notes" field.
func ValidationNotesNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldValidationNotes, v))
}

// ValidationNotesIn applies the In predicate on the "validation_notes" field.
func ValidationNotesIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldValidationNotes, vs...))
}

// ValidationNotesNotIn applies the NotIn predicate on the "validation_notes" field.
func ValidationNotesNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldValidationNotes, vs...))
}

// ValidationNotesGT applies the GT predicate on the "validation_notes" field.
func ValidationNotesGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldValidationNotes, v))
}

// ValidationNotesGTE applies the GTE predicate on the "validation_notes" field.
func ValidationNotesGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldValidationNotes, v))
}

// ValidationNotesLT applies the LT predicate on the "validation_notes" field.
func ValidationNotesLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldValidationNotes, v))
}

// ValidationNotesLTE applies the LTE predicate on the "validation_notes" field.
func ValidationNotesLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldValidationNotes, v))
}

// ValidationNotesContains applies the Contains predicate on the "validation_notes" field.
func ValidationNotesContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldValidationNotes, v))
}

// ValidationNotesHasPrefix applies the HasPrefix predicate on the "validation_notes" field.
func ValidationNotesHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldValidationNotes, v))
}

// ValidationNotesHasSuffix applies the HasSuffix predicate on the "validation_notes" field.
func ValidationNotesHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldValidationNotes, v))
}

// ValidationNotesIsNil applies the IsNil predicate on the "validation_notes" field.
func ValidationNotesIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldValidationNotes))
}

// ValidationNotesNotNil applies the NotNil predicate on the "validation_notes" field.
func ValidationNotesNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldValidationNotes))
}

// ValidationNotesEqualFold applies the EqualFold predicate on the "validation_notes" field.
func ValidationNotesEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldValidationNotes, v))
}

// ValidationNotesContainsFold applies the ContainsFold predicate on the "validation_notes" field.
func ValidationNotesContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldValidationNotes, v))
}

// UpvotesEQ applies the EQ predicate on the "upvotes" field.
func UpvotesEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpvotes, v))
}

// UpvotesNEQ applies the NEQ predicate on the "upvotes" field.
func UpvotesNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpvotes, v))
}

// UpvotesIn applies the In predicate on the "upvotes" field.
func UpvotesIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpvotes, vs...))
}

// UpvotesNotIn applies the NotIn predicate on the "upvotes" field.
func UpvotesNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpvotes, vs...))
}

// UpvotesGT applies the GT predicate on the "upvotes" field.
func UpvotesGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpvotes, v))
}

// UpvotesGTE applies the GTE predicate on the "upvotes" field.
func UpvotesGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpvotes, v))
}

// UpvotesLT applies the LT predicate on the "upvotes" field.
func UpvotesLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpvotes, v))
}

// UpvotesLTE applies the LTE predicate on the "upvotes" field.
func UpvotesLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpvotes, v))
}

// DownvotesEQ applies the EQ predicate on the "downvotes" field.
func DownvotesEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDownvotes, v))
}

// DownvotesNEQ applies the NEQ predicate on the "downvotes" field.
func DownvotesNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDownvotes, v))
}

// DownvotesIn applies the In predicate on the "downvotes" field.
func DownvotesIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDownvotes, vs...))
}

// DownvotesNotIn applies the NotIn predicate on the "downvotes" field.
func DownvotesNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDownvotes, vs...))
}

// DownvotesGT applies the GT predicate on the "downvotes" field.
func DownvotesGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDownvotes, v))
}

// DownvotesGTE applies the GTE predicate on the "downvotes" field.
func DownvotesGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDownvotes, v))
}

// DownvotesLT applies the LT predicate on the "downvotes" field.
func DownvotesLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDownvotes, v))
}

// DownvotesLTE applies the LTE predicate on the "downvotes" field.
func DownvotesLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDownvotes, v))
}

// TotalVotesEQ applies the EQ predicate on the "total_votes" field.
func TotalVotesEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTotalVotes, v))
}

// TotalVotesNEQ applies the NEQ predicate on the "total_votes" field.
func TotalVotesNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTotalVotes, v))
}

// TotalVotesIn applies the In predicate on the "total_votes" field.
func TotalVotesIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTotalVotes, vs...))
}

// TotalVotesNotIn applies the NotIn predicate on the "total_votes" field.
func TotalVotesNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTotalVotes, vs...))
}

// TotalVotesGT applies the GT predicate on the "total_votes" field.
func TotalVotesGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTotalVotes, v))
}

// TotalVotesGTE applies the GTE predicate on the "total_votes" field.
func TotalVotesGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTotalVotes, v))
}

// TotalVotesLT applies the LT predicate on the "total_votes" field.
func TotalVotesLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTotalVotes, v))
}

// TotalVotesLTE applies the LTE predicate on the "total_votes" field.
func TotalVotesLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTotalVotes, v))
}

// ViewsEQ applies the EQ predicate on the "views" field.
func ViewsEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldViews, v))
}

// ViewsNEQ applies the NEQ predicate on the "views" field.
func ViewsNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldViews, v))
}

// ViewsIn applies the In predicate on the "views" field.
func ViewsIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldViews, vs...))
}

// ViewsNotIn applies the NotIn predicate on the "views" field.
func ViewsNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldViews, vs...))
}

// ViewsGT applies the GT predicate on the "views" field.
func ViewsGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldViews, v))
}

// ViewsGTE applies the GTE predicate on the "views" field.
func ViewsGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldViews, v))
}

// ViewsLT applies the LT predicate on the "views" field.
func ViewsLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldViews, v))
}

// ViewsLTE applies the LTE predicate on the "views" field.
func ViewsLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldViews, v))
}

// SharesEQ applies the EQ predicate on the "shares" field.
func SharesEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldShares, v))
}

// SharesNEQ applies the NEQ predicate on the "shares" field.
func SharesNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldShares, v))
}

// SharesIn applies the In predicate on the "shares" field.
func SharesIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldShares, vs...))
}

// SharesNotIn applies the NotIn predicate on the "shares" field.
func SharesNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldShares, vs...))
}

// SharesGT applies the GT predicate on the "shares" field.
func SharesGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldShares, v))
}

// SharesGTE applies the GTE predicate on the "shares" field.
func SharesGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldShares, v))
}

// SharesLT applies the LT predicate on the "shares" field.
func SharesLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldShares, v))
}

// SharesLTE applies the LTE predicate on the "shares" field.
func SharesLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldShares, v))
}

// ExpectedResolutionHoursEQ applies the EQ predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldExpectedResolutionHours, v))
}

// ExpectedResolutionHoursNEQ applies the NEQ predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldExpectedResolutionHours, v))
}

// ExpectedResolutionHoursIn applies the In predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldExpectedResolutionHours, vs...))
}

// ExpectedResolutionHoursNotIn applies the NotIn predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldExpectedResolutionHours, vs...))
}

// ExpectedResolutionHoursGT applies the GT predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldExpectedResolutionHours, v))
}

// ExpectedResolutionHoursGTE applies the GTE predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldExpectedResolutionHours, v))
}

// ExpectedResolutionHoursLT applies the LT predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldExpectedResolutionHours, v))
}

// ExpectedResolutionHoursLTE applies the LTE predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldExpectedResolutionHours, v))
}

// ExpectedResolutionHoursIsNil applies the IsNil predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldExpectedResolutionHours))
}

// ExpectedResolutionHoursNotNil applies the NotNil predicate on the "expected_resolution_hours" field.
func ExpectedResolutionHoursNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldExpectedResolutionHours))
}

// ActualResolutionHoursEQ applies the EQ predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldActualResolutionHours, v))
}

// ActualResolutionHoursNEQ applies the NEQ predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldActualResolutionHours, v))
}

// ActualResolutionHoursIn applies the In predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldActualResolutionHours, vs...))
}

// ActualResolutionHoursNotIn applies the NotIn predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldActualResolutionHours, vs...))
}

// ActualResolutionHoursGT applies the GT predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldActualResolutionHours, v))
}

// ActualResolutionHoursGTE applies the GTE predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldActualResolutionHours, v))
}

// ActualResolutionHoursLT applies the LT predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldActualResolutionHours, v))
}

// ActualResolutionHoursLTE applies the LTE predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldActualResolutionHours, v))
}

// ActualResolutionHoursIsNil applies the IsNil predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldActualResolutionHours))
}

// ActualResolutionHoursNotNil applies the NotNil predicate on the "actual_resolution_hours" field.
func ActualResolutionHoursNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldActualResolutionHours))
}

// IsOverdueEQ applies the EQ predicate on the "is_overdue" field.
func IsOverdueEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldIsOverdue, v))
}

// IsOverdueNEQ applies the NEQ predicate on the "is_overdue" field.
func IsOverdueNEQ(v bool) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldIsOverdue, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldEscalationLevel, v))
}

// LastEscalatedAtEQ applies the EQ predicate on the "last_escalated_at" field.
func LastEscalatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLastEscalatedAt, v))
}

// LastEscalatedAtNEQ applies the NEQ predicate on the "last_escalated_at" field.
func LastEscalatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLastEscalatedAt, v))
}

// LastEscalatedAtIn applies the In predicate on the "last_escalated_at" field.
func LastEscalatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLastEscalatedAt, vs...))
}

// LastEscalatedAtNotIn applies the NotIn predicate on the "last_escalated_at" field.
func LastEscalatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLastEscalatedAt, vs...))
}

// LastEscalatedAtGT applies the GT predicate on the "last_escalated_at" field.
func LastEscalatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLastEscalatedAt, v))
}

// LastEscalatedAtGTE applies the GTE predicate on the "last_escalated_at" field.
func LastEscalatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLastEscalatedAt, v))
}

// LastEscalatedAtLT applies the LT predicate on the "last_escalated_at" field.
func LastEscalatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLastEscalatedAt, v))
}

// LastEscalatedAtLTE applies the LTE predicate on the "last_escalated_at" field.
func LastEscalatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLastEscalatedAt, v))
}

// LastEscalatedAtIsNil applies the IsNil predicate on the "last_escalated_at" field.
func LastEscalatedAtIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLastEscalatedAt))
}

// LastEscalatedAtNotNil applies the NotNil predicate on the "last_escalated_at" field.
func LastEscalatedAtNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLastEscalatedAt))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldResolvedAt))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldResolvedBy))
}

// ResolutionNotesEQ applies the EQ predicate on the "resolution_notes" field.
func ResolutionNotesEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolutionNotes, v))
}

// ResolutionNotesNEQ applies the NEQ predicate on the "resolution_notes" field.
func ResolutionNotesNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldResolutionNotes, v))
}

// ResolutionNotesIn applies the In predicate on the "resolution_notes" field.
func ResolutionNotesIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesNotIn applies the NotIn predicate on the "resolution_notes" field.
func ResolutionNotesNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesGT applies the GT predicate on the "resolution_notes" field.
func ResolutionNotesGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldResolutionNotes, v))
}

// ResolutionNotesGTE applies the GTE predicate on the "resolution_notes" field.
func ResolutionNotesGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldResolutionNotes, v))
}

// ResolutionNotesLT applies the LT predicate on the "resolution_notes" field.
func ResolutionNotesLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldResolutionNotes, v))
}

// ResolutionNotesLTE applies the LTE predicate on the "resolution_notes" field.
func ResolutionNotesLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldResolutionNotes, v))
}

// ResolutionNotesContains applies the Contains predicate on the "resolution_notes" field.
func ResolutionNotesContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldResolutionNotes, v))
}

// ResolutionNotesHasPrefix applies the HasPrefix predicate on the "resolution_notes" field.
func ResolutionNotesHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldResolutionNotes, v))
}

// ResolutionNotesHasSuffix applies the HasSuffix predicate on the "resolution_notes" field.
func ResolutionNotesHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldResolutionNotes, v))
}

// ResolutionNotesIsNil applies the IsNil predicate on the "resolution_notes" field.
func ResolutionNotesIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldResolutionNotes))
}

// ResolutionNotesNotNil applies the NotNil predicate on the "resolution_notes" field.
func ResolutionNotesNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldResolutionNotes))
}

// ResolutionNotesEqualFold applies the EqualFold predicate on the "resolution_notes" field.
func ResolutionNotesEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldResolutionNotes, v))
}

// ResolutionNotesContainsFold applies the ContainsFold predicate on the "resolution_notes" field.
func ResolutionNotesContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldResolutionNotes, v))
}

// SatisfactionRatingEQ applies the EQ predicate on the "satisfaction_rating" field.
func SatisfactionRatingEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSatisfactionRating, v))
}

// SatisfactionRatingNEQ applies the NEQ predicate on the "satisfaction_rating" field.
func SatisfactionRatingNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSatisfactionRating, v))
}

// SatisfactionRatingIn applies the In predicate on the "satisfaction_rating" field.
func SatisfactionRatingIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSatisfactionRating, vs...))
}

// SatisfactionRatingNotIn applies the NotIn predicate on the "satisfaction_rating" field.
func SatisfactionRatingNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSatisfactionRating, vs...))
}

// SatisfactionRatingGT applies the GT predicate on the "satisfaction_rating" field.
func SatisfactionRatingGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSatisfactionRating, v))
}

// SatisfactionRatingGTE applies the GTE predicate on the "satisfaction_rating" field.
func SatisfactionRatingGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSatisfactionRating, v))
}

// SatisfactionRatingLT applies the LT predicate on the "satisfaction_rating" field.
func SatisfactionRatingLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSatisfactionRating, v))
}

// SatisfactionRatingLTE applies the LTE predicate on the "satisfaction_rating" field.
func SatisfactionRatingLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSatisfactionRating, v))
}

// SatisfactionRatingIsNil applies the IsNil predicate on the "satisfaction_rating" field.
func SatisfactionRatingIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldSatisfactionRating))
}

// SatisfactionRatingNotNil applies the NotNil predicate on the "satisfaction_rating" field.
func SatisfactionRatingNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldSatisfactionRating))
}

// DuplicateOfIDEQ applies the EQ predicate on the "duplicate_of_id" field.
func DuplicateOfIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDuplicateOfID, v))
}

// DuplicateOfIDNEQ applies the NEQ predicate on the "duplicate_of_id" field.
func DuplicateOfIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDuplicateOfID, v))
}

// DuplicateOfIDIn applies the In predicate on the "duplicate_of_id" field.
func DuplicateOfIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDuplicateOfID, vs...))
}

// DuplicateOfIDNotIn applies the NotIn predicate on the "duplicate_of_id" field.
func DuplicateOfIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDuplicateOfID, vs...))
}

// DuplicateOfIDIsNil applies the IsNil predicate on the "duplicate_of_id" field.
func DuplicateOfIDIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldDuplicateOfID))
}

// DuplicateOfIDNotNil applies the NotNil predicate on the "duplicate_of_id" field.
func DuplicateOfIDNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldDuplicateOfID))
}

// HasReporter applies the HasEdge predicate on the "reporter" edge.
func HasReporter() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReporterWith applies the HasEdge predicate on the "reporter" edge with a given conditions (other predicates).
func HasReporterWith(preds ...predicate.User) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newReporterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDuplicateOf applies the HasEdge predicate on the "duplicate_of" edge.
func HasDuplicateOf() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DuplicateOfTable, DuplicateOfColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDuplicateOfWith applies the HasEdge predicate on the "duplicate_of" edge with a given conditions (other predicates).
func HasDuplicateOfWith(preds ...predicate.Report) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newDuplicateOfStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDuplicates applies the HasEdge predicate on the "duplicates" edge.
func HasDuplicates() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DuplicatesTable, DuplicatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDuplicatesWith applies the HasEdge predicate on the "duplicates" edge with a given conditions (other predicates).
func HasDuplicatesWith(preds ...predicate.Report) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newDuplicatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVotes applies the HasEdge predicate on the "votes" edge.
func HasVotes() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVotesWith applies the HasEdge predicate on the "votes" edge with a given conditions (other predicates).
func HasVotesWith(preds ...predicate.Vote) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newVotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusUpdates applies the HasEdge predicate on the "status_updates" edge.
func HasStatusUpdates() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusUpdatesTable, StatusUpdatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusUpdatesWith applies the HasEdge predicate on the "status_updates" edge with a given conditions (other predicates).
func HasStatusUpdatesWith(preds ...predicate.StatusUpdate) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newStatusUpdatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComments applies the HasEdge predicate on the "comments" edge.
func HasComments() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommentsWith applies the HasEdge predicate on the "comments" edge with a given conditions (other predicates).
func HasCommentsWith(preds ...predicate.Comment) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
