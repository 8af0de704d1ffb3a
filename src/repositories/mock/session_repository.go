package mock

import (
	"context"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
)

// SessionRepository is a mock implementation of repositories.SessionRepository
type SessionRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc               func(ctx context.Context, session *models.Session) error
	GetByTokenFunc           func(ctx context.Context, token string) (*models.Session, error)
	InvalidateFunc           func(ctx context.Context, token string) (bool, error)
	InvalidateAllForUserFunc func(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpiredFunc        func(ctx context.Context) (int64, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewSessionRepository creates a new mock session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	m.Calls["Create"] = append(m.Calls["Create"], session)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	m.Calls["GetByToken"] = append(m.Calls["GetByToken"], token)
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *SessionRepository) Invalidate(ctx context.Context, token string) (bool, error) {
	m.Calls["Invalidate"] = append(m.Calls["Invalidate"], token)
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, token)
	}
	return false, nil
}

func (m *SessionRepository) InvalidateAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	m.Calls["InvalidateAllForUser"] = append(m.Calls["InvalidateAllForUser"], userID)
	if m.InvalidateAllForUserFunc != nil {
		return m.InvalidateAllForUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.Calls["DeleteExpired"] = append(m.Calls["DeleteExpired"], nil)
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

// Ensure SessionRepository implements the interface
var _ repositories.SessionRepository = (*SessionRepository)(nil)
