package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated admin session. The token is an opaque
// random value handed to the client exactly once, in a cookie.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"-"` // never serialized back to clients
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsValid   bool      `json:"is_valid"`
	CreatedAt time.Time `json:"created_at"`
}

// Usable reports whether the session may authenticate a request: it must be
// valid and not yet expired.
func (s *Session) Usable(now time.Time) bool {
	return s.IsValid && s.ExpiresAt.After(now)
}
