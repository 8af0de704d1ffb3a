package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeLink represents a hosted resume document. At most one link is
// active across the whole table at any time; the active one is what the
// public /resume redirect serves.
type ResumeLink struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
