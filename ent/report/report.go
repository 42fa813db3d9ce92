// Code generated by ent, DO NOT EDIT.

package report

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldReportNumber holds the string denoting the report_number field in the database.
	FieldReportNumber = "report_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldAiPriorityScore holds the string denoting the ai_priority_score field in the database.
	FieldAiPriorityScore = "ai_priority_score"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldStreet holds the string denoting the street field in the database.
	FieldStreet = "street"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldZipCode holds the string denoting the zip_code field in the database.
	FieldZipCode = "zip_code"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldLandmark holds the string denoting the landmark field in the database.
	FieldLandmark = "landmark"
	// FieldMedia holds the string denoting the media field in the database.
	FieldMedia = "media"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldReporterID holds the string denoting the reporter_id field in the database.
	FieldReporterID = "reporter_id"
	// FieldIsAnonymous holds the string denoting the is_anonymous field in the database.
	FieldIsAnonymous = "is_anonymous"
	// FieldIsPublic holds the string denoting the is_public field in the database.
	FieldIsPublic = "is_public"
	// FieldIsFeatured holds the string denoting the is_featured field in the database.
	FieldIsFeatured = "is_featured"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusChangedAt holds the string denoting the status_changed_at field in the database.
	FieldStatusChangedAt = "status_changed_at"
	// FieldAssignedDepartmentCode holds the string denoting the assigned_department_code field in the database.
	FieldAssignedDepartmentCode = "assigned_department_code"
	// FieldIsValidated holds the string denoting the is_validated field in the database.
	FieldIsValidated = "is_validated"
	// FieldValidatedBy holds the string denoting the validated_by field in the database.
	FieldValidatedBy = "validated_by"
	// FieldValidatedAt holds the string denoting the validated_at field in the database.
	FieldValidatedAt = "validated_at"
	// FieldValidationNotes holds the string denoting the validation_notes field in the database.
	FieldValidationNotes = "validation_notes"
	// FieldUpvotes holds the string denoting the upvotes field in the database.
	FieldUpvotes = "upvotes"
	// FieldDownvotes holds the string denoting the downvotes field in the database.
	FieldDownvotes = "downvotes"
	// FieldTotalVotes holds the string denoting the total_votes field in the database.
	FieldTotalVotes = "total_votes"
	// FieldViews holds the string denoting the views field in the database.
	FieldViews = "views"
	// FieldShares holds the string denoting the shares field in the database.
	FieldShares = "shares"
	// FieldExpectedResolutionHours holds the string denoting the expected_resolution_hours field in the database.
	FieldExpectedResolutionHours = "expected_resolution_hours"
	// FieldActualResolutionHours holds the string denoting the actual_resolution_hours field in the database.
	FieldActualResolutionHours = "actual_resolution_hours"
	// FieldIsOverdue holds the string denoting the is_overdue field in the database.
	FieldIsOverdue = "is_overdue"
	// FieldEscalationLevel holds the string denoting the escalation_level field in the database.
	FieldEscalationLevel = "escalation_level"
	// FieldLastEscalatedAt holds the string denoting the last_escalated_at field in the database.
	FieldLastEscalatedAt = "last_escalated_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolvedBy holds the string denoting the resolved_by field in the database.
	FieldResolvedBy = "resolved_by"
	// FieldResolutionNotes holds the string denoting the resolution_notes field in the database.
	FieldResolutionNotes = "resolution_notes"
	// FieldSatisfactionRating holds the string denoting the satisfaction_rating field in the database.
	FieldSatisfactionRating = "satisfaction_rating"
	// FieldDuplicateOfID holds the string denoting the duplicate_of_id field in the database.
	FieldDuplicateOfID = "duplicate_of_id"
	// EdgeReporter holds the string denoting the reporter edge name in mutations.
	EdgeReporter = "reporter"
	// EdgeDuplicateOf holds the string denoting the duplicate_of edge name in mutations.
	EdgeDuplicateOf = "duplicate_of"
	// EdgeDuplicates holds the string denoting the duplicates edge name in mutations.
	EdgeDuplicates = "duplicates"
	// EdgeVotes holds the string denoting the votes edge name in mutations.
	EdgeVotes = "votes"
	// EdgeStatusUpdates holds the string denoting the status_updates edge name in mutations.
	EdgeStatusUpdates = "status_updates"
	// EdgeComments holds the string denoting the comments edge name in mutations.
	EdgeComments = "comments"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// ReporterTable is the table that holds the reporter relation/edge.
	ReporterTable = "reports"
	// ReporterInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ReporterInverseTable = "users"
	// ReporterColumn is the table column denoting the reporter relation/edge.
	ReporterColumn = "reporter_id"
	// DuplicateOfTable is the table that holds the duplicate_of relation/edge.
	DuplicateOfTable = "reports"
	// DuplicateOfColumn is the table column denoting the duplicate_of relation/edge.
	DuplicateOfColumn = "duplicate_of_id"
	// DuplicatesTable is the table that holds the duplicates relation/edge.
	DuplicatesTable = "reports"
	// DuplicatesColumn is the table column denoting the duplicates relation/edge.
	DuplicatesColumn = "duplicate_of_id"
	// VotesTable is the table that holds the votes relation/edge.
	VotesTable = "votes"
	// VotesInverseTable is the table name for the Vote entity.
	// It exists in this package in order to avoid circular dependency with the "vote" package.
	VotesInverseTable = "votes"
	// VotesColumn is the table column denoting the votes relation/edge.
	VotesColumn = "report_id"
	// StatusUpdatesTable is the table that holds the status_updates relation/edge.
	StatusUpdatesTable = "status_updates"
	// StatusUpdatesInverseTable is the table name for the StatusUpdate entity.
	// It exists in this package in order to avoid circular dependency with the "statusupdate" package.
	StatusUpdatesInverseTable = "status_updates"
	// StatusUpdatesColumn is the table column denoting the status_updates relation/edge.
	StatusUpdatesColumn = "report_id"
	// CommentsTable is the table that holds the comments relation/edge.
	CommentsTable = "comments"
	// CommentsInverseTable is the table name for the Comment entity.
	// It exists in this package in order to avoid circular dependency with the "comment" package.
	CommentsInverseTable = "comments"
	// CommentsColumn is the table column denoting the comments relation/edge.
	CommentsColumn = "report_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldReportNumber,
	FieldTitle,
	FieldDescription,
	FieldCategory,
	FieldSubcategory,
	FieldPriority,
	FieldAiPriorityScore,
	FieldLongitude,
	FieldLatitude,
	FieldStreet,
	FieldCity,
	FieldState,
	FieldZipCode,
	FieldCountry,
	FieldLandmark,
	FieldMedia,
	FieldTags,
	FieldReporterID,
	FieldIsAnonymous,
	FieldIsPublic,
	FieldIsFeatured,
	FieldStatus,
	FieldStatusChangedAt,
	FieldAssignedDepartmentCode,
	FieldIsValidated,
	FieldValidatedBy,
	FieldValidatedAt,
	FieldValidationNotes,
	FieldUpvotes,
	FieldDownvotes,
	FieldTotalVotes,
	FieldViews,
	FieldShares,
	FieldExpectedResolutionHours,
	FieldActualResolutionHours,
	FieldIsOverdue,
	FieldEscalationLevel,
	FieldLastEscalatedAt,
	FieldResolvedAt,
	FieldResolvedBy,
	FieldResolutionNotes,
	FieldSatisfactionRating,
	FieldDuplicateOfID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ReportNumberValidator is a validator for the "report_number" field. It is called by the builders before save.
	ReportNumberValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	SubcategoryValidator func(string) error
	// DefaultAiPriorityScore holds the default value on creation for the "ai_priority_score" field.
	DefaultAiPriorityScore float64
	// AiPriorityScoreValidator is a validator for the "ai_priority_score" field. It is called by the builders before save.
	AiPriorityScoreValidator func(float64) error
	// LongitudeValidator is a validator for the "longitude" field. It is called by the builders before save.
	LongitudeValidator func(float64) error
	// LatitudeValidator is a validator for the "latitude" field. It is called by the builders before save.
	LatitudeValidator func(float64) error
	// StreetValidator is a validator for the "street" field. It is called by the builders before save.
	StreetValidator func(string) error
	// CityValidator is a validator for the "city" field. It is called by the builders before save.
	CityValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// ZipCodeValidator is a validator for the "zip_code" field. It is called by the builders before save.
	ZipCodeValidator func(string) error
	// DefaultCountry holds the default value on creation for the "country" field.
	DefaultCountry string
	// CountryValidator is a validator for the "country" field. It is called by the builders before save.
	CountryValidator func(string) error
	// LandmarkValidator is a validator for the "landmark" field. It is called by the builders before save.
	LandmarkValidator func(string) error
	// DefaultIsAnonymous holds the default value on creation for the "is_anonymous" field.
	DefaultIsAnonymous bool
	// DefaultIsPublic holds the default value on creation for the "is_public" field.
	DefaultIsPublic bool
	// DefaultIsFeatured holds the default value on creation for the "is_featured" field.
	DefaultIsFeatured bool
	// DefaultStatusChangedAt holds the default value on creation for the "status_changed_at" field.
	DefaultStatusChangedAt func() time.Time
	// AssignedDepartmentCodeValidator is a validator for the "assigned_department_code" field. It is called by the builders before save.
	AssignedDepartmentCodeValidator func(string) error
	// DefaultIsValidated holds the default value on creation for the "is_validated" field.
	DefaultIsValidated bool
	// DefaultUpvotes holds the default value on creation for the "upvotes" field.
	DefaultUpvotes int
	// UpvotesValidator is a validator for the "upvotes" field. It is called by the builders before save.
	UpvotesValidator func(int) error
	// DefaultDownvotes holds the default value on creation for the "downvotes" field.
	DefaultDownvotes int
	// DownvotesValidator is a validator for the "downvotes" field. It is called by the builders before save.
	DownvotesValidator func(int) error
	// DefaultTotalVotes holds the default value on creation for the "total_votes" field.
	DefaultTotalVotes int
	// TotalVotesValidator is a validator for the "total_votes" field. It is called by the builders before save.
	TotalVotesValidator func(int) error
	// DefaultViews holds the default value on creation for the "views" field.
	DefaultViews int
	// DefaultShares holds the default value on creation for the "shares" field.
	DefaultShares int
	// DefaultIsOverdue holds the default value on creation for the "is_overdue" field.
	DefaultIsOverdue bool
	// DefaultEscalationLevel holds the default value on creation for the "escalation_level" field.
	DefaultEscalationLevel int
	// EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	EscalationLevelValidator func(int) error
	// SatisfactionRatingValidator is a validator for the "satisfaction_rating" field. It is called by the builders before save.
	SatisfactionRatingValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryRoadsTransport     Category = "roads_transport"
	CategoryWaterSewage        Category = "water_sewage"
	CategoryElectricity        Category = "electricity"
	CategoryWasteManagement    Category = "waste_management"
	CategoryPublicSafety       Category = "public_safety"
	CategoryParksRecreation    Category = "parks_recreation"
	CategoryStreetLighting     Category = "street_lighting"
	CategoryNoisePollution     Category = "noise_pollution"
	CategoryAirPollution       Category = "air_pollution"
	CategoryBuildingViolations Category = "building_violations"
	CategoryOther              Category = "other"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryRoadsTransport, CategoryWaterSewage, CategoryElectricity, CategoryWasteManagement, CategoryPublicSafety, CategoryParksRecreation, CategoryStreetLighting, CategoryNoisePollution, CategoryAirPollution, CategoryBuildingViolations, CategoryOther:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for category field: %q", c)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusSubmitted is the default value of the Status enum.
const DefaultStatus = StatusSubmitted

// Status values.
const (
	StatusSubmitted  Status = "submitted"
	StatusValidated  Status = "validated"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
	StatusDuplicate  Status = "duplicate"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSubmitted, StatusValidated, StatusInProgress, StatusResolved, StatusRejected, StatusDuplicate:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByReportNumber orders the results by the report_number field.
func ByReportNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByAiPriorityScore orders the results by the ai_priority_score field.
func ByAiPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiPriorityScore, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByStreet orders the results by the street field.
func ByStreet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreet, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByZipCode orders the results by the zip_code field.
func ByZipCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZipCode, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByLandmark orders the results by the landmark field.
func ByLandmark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLandmark, opts...).ToFunc()
}

// ByReporterID orders the results by the reporter_id field.
func ByReporterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReporterID, opts...).ToFunc()
}

// ByIsAnonymous orders the results by the is_anonymous field.
func ByIsAnonymous(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAnonymous, opts...).ToFunc()
}

// ByIsPublic orders the results by the is_public field.
func ByIsPublic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPublic, opts...).ToFunc()
}

// ByIsFeatured orders the results by the is_featured field.
func ByIsFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFeatured, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusChangedAt orders the results by the status_changed_at field.
func ByStatusChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusChangedAt, opts...).ToFunc()
}

// ByAssignedDepartmentCode orders the results by the assigned_department_code field.
func ByAssignedDepartmentCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedDepartmentCode, opts...).ToFunc()
}

// ByIsValidated orders the results by the is_validated field.
func ByIsValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValidated, opts...).ToFunc()
}

// ByValidatedBy orders the results by the validated_by field.
func ByValidatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedBy, opts...).ToFunc()
}

// ByValidatedAt orders the results by the validated_at field.
func ByValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedAt, opts...).ToFunc()
}

// ByValidationNotes orders the results by the validation_notes field.
func ByValidationNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationNotes, opts...).ToFunc()
}

// ByUpvotes orders the results by the upvotes field.
func ByUpvotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpvotes, opts...).ToFunc()
}

// ByDownvotes orders the results by the downvotes field.
func ByDownvotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownvotes, opts...).ToFunc()
}

// ByTotalVotes orders the results by the total_votes field.
func ByTotalVotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalVotes, opts...).ToFunc()
}

// ByViews orders the results by the views field.
func ByViews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViews, opts...).ToFunc()
}

// ByShares orders the results by the shares field.
func ByShares(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShares, opts...).ToFunc()
}

// ByExpectedResolutionHours orders the results by the expected_resolution_hours field.
func ByExpectedResolutionHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedResolutionHours, opts...).ToFunc()
}

// ByActualResolutionHours orders the results by the actual_resolution_hours field.
func ByActualResolutionHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualResolutionHours, opts...).ToFunc()
}

// ByIsOverdue orders the results by the is_overdue field.
func ByIsOverdue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOverdue, opts...).ToFunc()
}

// ByEscalationLevel orders the results by the escalation_level field.
func ByEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationLevel, opts...).ToFunc()
}

// ByLastEscalatedAt orders the results by the last_escalated_at field.
func ByLastEscalatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEscalatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolvedBy orders the results by the resolved_by field.
func ByResolvedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedBy, opts...).ToFunc()
}

// ByResolutionNotes orders the results by the resolution_notes field.
func ByResolutionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNotes, opts...).ToFunc()
}

// BySatisfactionRating orders the results by the satisfaction_rating field.
func BySatisfactionRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSatisfactionRating, opts...).ToFunc()
}

// ByDuplicateOfID orders the results by the duplicate_of_id field.
func ByDuplicateOfID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateOfID, opts...).ToFunc()
}

// ByReporterField orders the results by reporter field.
func ByReporterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReporterStep(), sql.OrderByField(field, opts...))
	}
}

// ByDuplicateOfField orders the results by duplicate_of field.
func ByDuplicateOfField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDuplicateOfStep(), sql.OrderByField(field, opts...))
	}
}

// ByDuplicatesCount orders the results by duplicates count.
func ByDuplicatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDuplicatesStep(), opts...)
	}
}

// ByDuplicates orders the results by duplicates terms.
func ByDuplicates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDuplicatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVotesCount orders the results by votes count.
func ByVotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVotesStep(), opts...)
	}
}

// ByVotes orders the results by votes terms.
func ByVotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatusUpdatesCount orders the results by status_updates count.
func ByStatusUpdatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusUpdatesStep(), opts...)
	}
}

// ByStatusUpdates orders the results by status_updates terms.
func ByStatusUpdates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusUpdatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCommentsCount orders the results by comments count.
func ByCommentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommentsStep(), opts...)
	}
}

// ByComments orders the results by comments terms.
func ByComments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReporterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReporterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
	)
}
func newDuplicateOfStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DuplicateOfTable, DuplicateOfColumn),
	)
}
func newDuplicatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DuplicatesTable, DuplicatesColumn),
	)
}
func newVotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
	)
}
func newStatusUpdatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusUpdatesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusUpdatesTable, StatusUpdatesColumn),
	)
}
func newCommentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
	)
}
