package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleType classifies an experience entry
type RoleType string

const (
	RoleTypeFullTime   RoleType = "Full-time"
	RoleTypePartTime   RoleType = "Part-time"
	RoleTypeContract   RoleType = "Contract"
	RoleTypeInternship RoleType = "Internship"
	RoleTypeFreelance  RoleType = "Freelance"
	RoleTypeTemporary  RoleType = "Temporary"
	RoleTypeRemote     RoleType = "Remote"
	RoleTypeOnsite     RoleType = "Onsite"
	RoleTypeHybrid     RoleType = "Hybrid"
)

// ValidRoleType reports whether the given value is a known role type
func ValidRoleType(v string) bool {
	switch RoleType(v) {
	case RoleTypeFullTime, RoleTypePartTime, RoleTypeContract, RoleTypeInternship,
		RoleTypeFreelance, RoleTypeTemporary, RoleTypeRemote, RoleTypeOnsite, RoleTypeHybrid:
		return true
	}
	return false
}

// Experience represents a work experience entry on the portfolio
type Experience struct {
	ID                uuid.UUID  `json:"id"`
	Organization      string     `json:"organization"`
	CurrentPosition   string     `json:"current_position"`
	PreviousPositions []string   `json:"previous_positions"`
	RoleType          RoleType   `json:"role_type"`
	Description       []string   `json:"description"`
	Skills            []string   `json:"skills"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking  bool       `json:"currently_working"`
	Featured          bool       `json:"featured"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
