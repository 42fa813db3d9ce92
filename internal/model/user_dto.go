package model

import (
	"time"

	"github.com/google/uuid"
)

// UserContext is the identity handed to us by the external identity provider.
// The core trusts it and never authenticates credentials itself.
type UserContext struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

func (u *UserContext) IsStaff() bool {
	return u.Role == "department_staff" || u.Role == "admin"
}

type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email,omitempty"`
	FullName   string    `json:"full_name,omitempty"`
	Role       string    `json:"role"`
	TrustScore int       `json:"trust_score"`

	Gamification GamificationDTO `json:"gamification"`
}

type GamificationDTO struct {
	Points         int        `json:"points"`
	Level          int        `json:"level"`
	Badges         []string   `json:"badges"`
	Streak         int        `json:"streak"`
	LastReportDate *time.Time `json:"last_report_date,omitempty"`
}
