// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/internal/model"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ReportNumber holds the value of the "report_number" field.
	ReportNumber string `json:"report_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category holds the value of the "category" field.
	Category report.Category `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory *string `json:"subcategory,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority report.Priority `json:"priority,omitempty"`
	// AiPriorityScore holds the value of the "ai_priority_score" field.
	AiPriorityScore float64 `json:"ai_priority_score,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Street holds the value of the "street" field.
	Street *string `json:"street,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State *string `json:"state,omitempty"`
	// ZipCode holds the value of the "zip_code" field.
	ZipCode *string `json:"zip_code,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// Landmark holds the value of the "landmark" field.
	Landmark *string `json:"landmark,omitempty"`
	// Media holds the value of the "media" field.
	Media []model.MediaRef `json:"media,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// ReporterID holds the value of the "reporter_id" field.
	ReporterID uuid.UUID `json:"reporter_id,omitempty"`
	// IsAnonymous holds the value of the "is_anonymous" field.
	IsAnonymous bool `json:"is_anonymous,omitempty"`
	// IsPublic holds the value of the "is_public" field.
	IsPublic bool `json:"is_public,omitempty"`
	// IsFeatured holds the value of the "is_featured" field.
	IsFeatured bool `json:"is_featured,omitempty"`
	// Status holds the value of the "status" field.
	Status report.Status `json:"status,omitempty"`
	// StatusChangedAt holds the value of the "status_changed_at" field.
	StatusChangedAt time.Time `json:"status_changed_at,omitempty"`
	// AssignedDepartmentCode holds the value of the "assigned_department_code" field.
	AssignedDepartmentCode *string `json:"assigned_department_code,omitempty"`
	// IsValidated holds the value of the "is_validated" field.
	IsValidated bool `json:"is_validated,omitempty"`
	// ValidatedBy holds the value of the "validated_by" field.
	ValidatedBy *uuid.UUID `json:"validated_by,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// ValidationNotes holds the value of the "validation_notes" field.
	ValidationNotes *string `json:"validation_notes,omitempty"`
	// Upvotes holds the value of the "upvotes" field.
	Upvotes int `json:"upvotes,omitempty"`
	// Downvotes holds the value of the "downvotes" field.
	Downvotes int `json:"downvotes,omitempty"`
	// TotalVotes holds the value of the "total_votes" field.
	TotalVotes int `json:"total_votes,omitempty"`
	// Views holds the value of the "views" field.
	Views int `json:"views,omitempty"`
	// Shares holds the value of the "shares" field.
	Shares int `json:"shares,omitempty"`
	// ExpectedResolutionHours holds the value of the "expected_resolution_hours" field.
	ExpectedResolutionHours *float64 `json:"expected_resolution_hours,omitempty"`
	// ActualResolutionHours holds the value of the "actual_resolution_hours" field.
	ActualResolutionHours *float64 `json:"actual_resolution_hours,omitempty"`
	// IsOverdue holds the value of the "is_overdue" field.
	IsOverdue bool `json:"is_overdue,omitempty"`
	// EscalationLevel holds the value of the "escalation_level" field.
	EscalationLevel int `json:"escalation_level,omitempty"`
	// LastEscalatedAt holds the value of the "last_escalated_at" field.
	LastEscalatedAt *time.Time `json:"last_escalated_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy *uuid.UUID `json:"resolved_by,omitempty"`
	// ResolutionNotes holds the value of the "resolution_notes" field.
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
	// SatisfactionRating holds the value of the "satisfaction_rating" field.
	SatisfactionRating *int `json:"satisfaction_rating,omitempty"`
	// DuplicateOfID holds the value of the "duplicate_of_id" field.
	DuplicateOfID *uuid.UUID `json:"duplicate_of_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportQuery when eager-loading is set.
	Edges        ReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEdges holds the relations/edges for other nodes in the graph.
type ReportEdges struct {
	// Reporter holds the value of the reporter edge.
	Reporter *User `json:"reporter,omitempty"`
	// DuplicateOf holds the value of the duplicate_of edge.
	DuplicateOf *Report `json:"duplicate_of,omitempty"`
	// Duplicates holds the value of the duplicates edge.
	Duplicates []*Report `json:"duplicates,omitempty"`
	// Votes holds the value of the votes edge.
	Votes []*Vote `json:"votes,omitempty"`
	// StatusUpdates holds the value of the status_updates edge.
	StatusUpdates []*StatusUpdate `json:"status_updates,omitempty"`
	// Comments holds the value of the comments edge.
	Comments []*Comment `json:"comments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ReporterOrErr returns the Reporter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) ReporterOrErr() (*User, error) {
	if e.Reporter != nil {
		return e.Reporter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "reporter"}
}

// DuplicateOfOrErr returns the DuplicateOf value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) DuplicateOfOrErr() (*Report, error) {
	if e.DuplicateOf != nil {
		return e.DuplicateOf, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "duplicate_of"}
}

// DuplicatesOrErr returns the Duplicates value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) DuplicatesOrErr() ([]*Report, error) {
	if e.loadedTypes[2] {
		return e.Duplicates, nil
	}
	return nil, &NotLoadedError{edge: "duplicates"}
}

// VotesOrErr returns the Votes value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) VotesOrErr() ([]*Vote, error) {
	if e.loadedTypes[3] {
		return e.Votes, nil
	}
	return nil, &NotLoadedError{edge: "votes"}
}

// StatusUpdatesOrErr returns the StatusUpdates value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) StatusUpdatesOrErr() ([]*StatusUpdate, error) {
	if e.loadedTypes[4] {
		return e.StatusUpdates, nil
	}
	return nil, &NotLoadedError{edge: "status_updates"}
}

// CommentsOrErr returns the Comments value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) CommentsOrErr() ([]*Comment, error) {
	if e.loadedTypes[5] {
		return e.Comments, nil
	}
	return nil, &NotLoadedError{edge: "comments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldValidatedBy, report.FieldResolvedBy, report.FieldDuplicateOfID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case report.FieldMedia, report.FieldTags:
			values[i] = new([]byte)
		case report.FieldIsAnonymous, report.FieldIsPublic, report.FieldIsFeatured, report.FieldIsValidated, report.FieldIsOverdue:
			values[i] = new(sql.NullBool)
		case report.FieldAiPriorityScore, report.FieldLongitude, report.FieldLatitude, report.FieldExpectedResolutionHours, report.FieldActualResolutionHours:
			values[i] = new(sql.NullFloat64)
		case report.FieldUpvotes, report.FieldDownvotes, report.FieldTotalVotes, report.FieldViews, report.FieldShares, report.FieldEscalationLevel, report.FieldSatisfactionRating:
			values[i] = new(sql.NullInt64)
		case report.FieldReportNumber, report.FieldTitle, report.FieldDescription, report.FieldCategory, report.FieldSubcategory, report.FieldPriority, report.FieldStreet, report.FieldCity, report.FieldState, report.FieldZipCode, report.FieldCountry, report.FieldLandmark, report.FieldStatus, report.FieldAssignedDepartmentCode, report.FieldValidationNotes, report.FieldResolutionNotes:
			values[i] = new(sql.NullString)
		case report.FieldCreatedAt, report.FieldUpdatedAt, report.FieldStatusChangedAt, report.FieldValidatedAt, report.FieldLastEscalatedAt, report.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case report.FieldID, report.FieldReporterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case report.FieldReportNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_number", values[i])
			} else if value.Valid {
				_m.ReportNumber = value.String
			}
		case report.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case report.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case report.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = report.Category(value.String)
			}
		case report.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = new(string)
				*_m.Subcategory = value.String
			}
		case report.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = report.Priority(value.String)
			}
		case report.FieldAiPriorityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_priority_score", values[i])
			} else if value.Valid {
				_m.AiPriorityScore = value.Float64
			}
		case report.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case report.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case report.FieldStreet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field street", values[i])
			} else if value.Valid {
				_m.Street = new(string)
				*_m.Street = value.String
			}
		case report.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case report.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = new(string)
				*_m.State = value.String
			}
		case report.FieldZipCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zip_code", values[i])
			} else if value.Valid {
				_m.ZipCode = new(string)
				*_m.ZipCode = value.String
			}
		case report.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case report.FieldLandmark:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field landmark", values[i])
			} else if value.Valid {
				_m.Landmark = new(string)
				*_m.Landmark = value.String
			}
		case report.FieldMedia:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field media", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Media); err != nil {
					return fmt.Errorf("unmarshal field media: %w", err)
				}
			}
		case report.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case report.FieldReporterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field reporter_id", values[i])
			} else if value != nil {
				_m.ReporterID = *value
			}
		case report.FieldIsAnonymous:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_anonymous", values[i])
			} else if value.Valid {
				_m.IsAnonymous = value.Bool
			}
		case report.FieldIsPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_public", values[i])
			} else if value.Valid {
				_m.IsPublic = value.Bool
			}
		case report.FieldIsFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_featured", values[i])
			} else if value.Valid {
				_m.IsFeatured = value.Bool
			}
		case report.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = report.Status(value.String)
			}
		case report.FieldStatusChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field status_changed_at", values[i])
			} else if value.Valid {
				_m.StatusChangedAt = value.Time
			}
		case report.FieldAssignedDepartmentCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_department_code", values[i])
			} else if value.Valid {
				_m.AssignedDepartmentCode = new(string)
				*_m.AssignedDepartmentCode = value.String
			}
		case report.FieldIsValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_validated", values[i])
			} else if value.Valid {
				_m.IsValidated = value.Bool
			}
		case report.FieldValidatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field validated_by", values[i])
			} else if value.Valid {
				_m.ValidatedBy = new(uuid.UUID)
				*_m.ValidatedBy = *value.S.(*uuid.UUID)
			}
		case report.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case report.FieldValidationNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_notes", values[i])
			} else if value.Valid {
				_m.ValidationNotes = new(string)
				*_m.ValidationNotes = value.String
			}
		case report.FieldUpvotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field upvotes", values[i])
			} else if value.Valid {
				_m.Upvotes = int(value.Int64)
			}
		case report.FieldDownvotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field downvotes", values[i])
			} else if value.Valid {
				_m.Downvotes = int(value.Int64)
			}
		case report.FieldTotalVotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_votes", values[i])
			} else if value.Valid {
				_m.TotalVotes = int(value.Int64)
			}
		case report.FieldViews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field views", values[i])
			} else if value.Valid {
				_m.Views = int(value.Int64)
			}
		case report.FieldShares:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shares", values[i])
			} else if value.Valid {
				_m.Shares = int(value.Int64)
			}
		case report.FieldExpectedResolutionHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_resolution_hours", values[i])
			} else if value.Valid {
				_m.ExpectedResolutionHours = new(float64)
				*_m.ExpectedResolutionHours = value.Float64
			}
		case report.FieldActualResolutionHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_resolution_hours", values[i])
			} else if value.Valid {
				_m.ActualResolutionHours = new(float64)
				*_m.ActualResolutionHours = value.Float64
			}
		case report.FieldIsOverdue:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_overdue", values[i])
			} else if value.Valid {
				_m.IsOverdue = value.Bool
			}
		case report.FieldEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_level", values[i])
			} else if value.Valid {
				_m.EscalationLevel = int(value.Int64)
			}
		case report.FieldLastEscalatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_escalated_at", values[i])
			} else if value.Valid {
				_m.LastEscalatedAt = new(time.Time)
				*_m.LastEscalatedAt = value.Time
			}
		case report.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case report.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = new(uuid.UUID)
				*_m.ResolvedBy = *value.S.(*uuid.UUID)
			}
		case report.FieldResolutionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_notes", values[i])
			} else if value.Valid {
				_m.ResolutionNotes = new(string)
				*_m.ResolutionNotes = value.String
			}
		case report.FieldSatisfactionRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field satisfaction_rating", values[i])
			} else if value.Valid {
				_m.SatisfactionRating = new(int)
				*_m.SatisfactionRating = int(value.Int64)
			}
		case report.FieldDuplicateOfID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_of_id", values[i])
			} else if value.Valid {
				_m.DuplicateOfID = new(uuid.UUID)
				*_m.DuplicateOfID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReporter queries the "reporter" edge of the Report entity.
func (_m *Report) QueryReporter() *UserQuery {
	return NewReportClient(_m.config).QueryReporter(_m)
}

// QueryDuplicateOf queries the "duplicate_of" edge of the Report entity.
func (_m *Report) QueryDuplicateOf() *ReportQuery {
	return NewReportClient(_m.config).QueryDuplicateOf(_m)
}

// QueryDuplicates queries the "duplicates" edge of the Report entity.
func (_m *Report) QueryDuplicates() *ReportQuery {
	return NewReportClient(_m.config).QueryDuplicates(_m)
}

// QueryVotes queries the "votes" edge of the Report entity.
func (_m *Report) QueryVotes() *VoteQuery {
	return NewReportClient(_m.config).QueryVotes(_m)
}

// QueryStatusUpdates queries the "status_updates" edge of the Report entity.
func (_m *Report) QueryStatusUpdates() *StatusUpdateQuery {
	return NewReportClient(_m.config).QueryStatusUpdates(_m)
}

// QueryComments queries the "comments" edge of the Report entity.
func (_m *Report) QueryComments() *CommentQuery {
	return NewReportClient(_m.config).QueryComments(_m)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("report_number=")
	builder.WriteString(_m.ReportNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	if v := _m.Subcategory; v != nil {
		builder.WriteString("subcategory=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("ai_priority_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiPriorityScore))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	if v := _m.Street; v != nil {
		builder.WriteString("street=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	if v := _m.State; v != nil {
		builder.WriteString("state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ZipCode; v != nil {
		builder.WriteString("zip_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	if v := _m.Landmark; v != nil {
		builder.WriteString("landmark=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("media=")
	builder.WriteString(fmt.Sprintf("%v", _m.Media))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("reporter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReporterID))
	builder.WriteString(", ")
	builder.WriteString("is_anonymous=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAnonymous))
	builder.WriteString(", ")
	builder.WriteString("is_public=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublic))
	builder.WriteString(", ")
	builder.WriteString("is_featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFeatured))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_changed_at=")
	builder.WriteString(_m.StatusChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AssignedDepartmentCode; v != nil {
		builder.WriteString("assigned_department_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValidated))
	builder.WriteString(", ")
	if v := _m.ValidatedBy; v != nil {
		builder.WriteString("validated_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidationNotes; v != nil {
		builder.WriteString("validation_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("upvotes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Upvotes))
	builder.WriteString(", ")
	builder.WriteString("downvotes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Downvotes))
	builder.WriteString(", ")
	builder.WriteString("total_votes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalVotes))
	builder.WriteString(", ")
	builder.WriteString("views=")
	builder.WriteString(fmt.Sprintf("%v", _m.Views))
	builder.WriteString(", ")
	builder.WriteString("shares=")
	builder.WriteString(fmt.Sprintf("%v", _m.Shares))
	builder.WriteString(", ")
	if v := _m.ExpectedResolutionHours; v != nil {
		builder.WriteString("expected_resolution_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ActualResolutionHours; v != nil {
		builder.WriteString("actual_resolution_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_overdue=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOverdue))
	builder.WriteString(", ")
	builder.WriteString("escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationLevel))
	builder.WriteString(", ")
	if v := _m.LastEscalatedAt; v != nil {
		builder.WriteString("last_escalated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedBy; v != nil {
		builder.WriteString("resolved_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResolutionNotes; v != nil {
		builder.WriteString("resolution_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SatisfactionRating; v != nil {
		builder.WriteString("satisfaction_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DuplicateOfID; v != nil {
		builder.WriteString("duplicate_of_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report
