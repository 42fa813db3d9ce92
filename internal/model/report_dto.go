package model

import (
	"time"

	"github.com/google/uuid"
)

type AddressDTO struct {
	Street  string `json:"street,omitempty" validate:"omitempty,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country string `json:"country,omitempty" validate:"omitempty,max=100"`
}

type CreateReportRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"required,max=2000"`
	Category     string `json:"category" validate:"required,report_category"`
	Subcategory  string `json:"subcategory,omitempty" validate:"omitempty,max=100"`
	Priority     string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	ReportNumber string `json:"report_number,omitempty" validate:"omitempty,max=32"`

	// GeoJSON order: [longitude, latitude].
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`

	Address  AddressDTO `json:"address" validate:"required"`
	Landmark string     `json:"landmark,omitempty" validate:"omitempty,max=200"`

	Media []MediaRef `json:"media,omitempty" validate:"omitempty,dive"`
	Tags  []string   `json:"tags,omitempty"`

	IsAnonymous bool `json:"is_anonymous,omitempty"`
}

type ReportResponse struct {
	ID              uuid.UUID `json:"id"`
	ReportNumber    string    `json:"report_number"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Subcategory     string    `json:"subcategory,omitempty"`
	Priority        string    `json:"priority"`
	AIPriorityScore float64   `json:"ai_priority_score"`

	Coordinates []float64  `json:"coordinates"`
	Address     AddressDTO `json:"address"`
	Landmark    string     `json:"landmark,omitempty"`

	Media []MediaRef `json:"media,omitempty"`
	Tags  []string   `json:"tags,omitempty"`

	ReporterID  *uuid.UUID `json:"reporter_id,omitempty"`
	IsAnonymous bool       `json:"is_anonymous"`
	IsPublic    bool       `json:"is_public"`
	IsFeatured  bool       `json:"is_featured"`

	Status                 string `json:"status"`
	AssignedDepartmentCode string `json:"assigned_department_code,omitempty"`

	Votes VoteCounters `json:"votes"`

	SLA        SLADTO         `json:"sla"`
	Resolution *ResolutionDTO `json:"resolution,omitempty"`

	DuplicateOf *uuid.UUID  `json:"duplicate_of,omitempty"`
	Duplicates  []uuid.UUID `json:"duplicates,omitempty"`

	Views  int `json:"views"`
	Shares int `json:"shares"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VoteCounters struct {
	Upvotes    int `json:"upvotes"`
	Downvotes  int `json:"downvotes"`
	TotalVotes int `json:"total_votes"`
}

type SLADTO struct {
	ExpectedResolutionHours *float64   `json:"expected_resolution_hours,omitempty"`
	ActualResolutionHours   *float64   `json:"actual_resolution_hours,omitempty"`
	IsOverdue               bool       `json:"is_overdue"`
	EscalationLevel         int        `json:"escalation_level"`
	LastEscalatedAt         *time.Time `json:"last_escalated_at,omitempty"`
}

type ResolutionDTO struct {
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy         *uuid.UUID `json:"resolved_by,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	SatisfactionRating *int       `json:"satisfaction_rating,omitempty"`
}

type StatusUpdateResponse struct {
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	IsPublic  bool       `json:"is_public"`
	CreatedAt time.Time  `json:"created_at"`
}

type TransitionStatusRequest struct {
	Status  string `json:"status" validate:"required,report_status"`
	Message string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

type LinkDuplicateRequest struct {
	CanonicalID uuid.UUID `json:"canonical_id" validate:"required"`
}

type AddCommentRequest struct {
	Message  string `json:"message" validate:"required,max=2000"`
	IsPublic *bool  `json:"is_public,omitempty"`
}

type CommentResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Message   string     `json:"message"`
	IsPublic  bool       `json:"is_public"`
	CreatedAt time.Time  `json:"created_at"`
}

type NearbyReportResponse struct {
	ReportResponse
	DistanceMeters float64 `json:"distance_meters"`
}

type AnalyticsRow struct {
	Category           string   `json:"category"`
	Status             string   `json:"status"`
	Count              int      `json:"count"`
	AvgResolutionHours *float64 `json:"avg_resolution_hours,omitempty"`
	AvgPriorityScore   *float64 `json:"avg_priority_score,omitempty"`
}
