package mock

import (
	"context"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
)

// UserRepository is a mock implementation of repositories.UserRepository
type UserRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc        func(ctx context.Context, user *models.User) error
	GetByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	CountFunc         func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewUserRepository creates a new mock user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	m.Calls["Create"] = append(m.Calls["Create"], user)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.Calls["GetByUsername"] = append(m.Calls["GetByUsername"], username)
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *UserRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure UserRepository implements the interface
var _ repositories.UserRepository = (*UserRepository)(nil)
