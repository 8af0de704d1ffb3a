package repositories

import (
	"context"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/google/uuid"
)

// UserRepository defines the interface for admin account data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// SessionRepository defines the interface for session data access.
// GetByToken must only return sessions that are valid and unexpired;
// distinguishing why a token missed is intentionally not part of the
// contract.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Invalidate(ctx context.Context, token string) (bool, error)
	InvalidateAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// ExperienceRepository defines the interface for experience data access
type ExperienceRepository interface {
	List(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error)
	Create(ctx context.Context, exp *models.Experience) error
	Update(ctx context.Context, exp *models.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResumeLinkRepository defines the interface for resume link data access.
// SetActive must clear every currently active row and activate the target
// as a single atomic unit.
type ResumeLinkRepository interface {
	List(ctx context.Context) ([]models.ResumeLink, error)
	GetActive(ctx context.Context) (*models.ResumeLink, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error)
	Create(ctx context.Context, link *models.ResumeLink) error
	Update(ctx context.Context, link *models.ResumeLink) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error)
}
