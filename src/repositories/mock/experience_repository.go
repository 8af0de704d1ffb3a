package mock

import (
	"context"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
)

// ExperienceRepository is a mock implementation of repositories.ExperienceRepository
type ExperienceRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc    func(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Experience, error)
	CreateFunc  func(ctx context.Context, exp *models.Experience) error
	UpdateFunc  func(ctx context.Context, exp *models.Experience) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewExperienceRepository creates a new mock experience repository
func NewExperienceRepository() *ExperienceRepository {
	return &ExperienceRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ExperienceRepository) List(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error) {
	m.Calls["List"] = append(m.Calls["List"], filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ExperienceRepository) Create(ctx context.Context, exp *models.Experience) error {
	m.Calls["Create"] = append(m.Calls["Create"], exp)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, exp)
	}
	return nil
}

func (m *ExperienceRepository) Update(ctx context.Context, exp *models.Experience) error {
	m.Calls["Update"] = append(m.Calls["Update"], exp)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, exp)
	}
	return nil
}

func (m *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure ExperienceRepository implements the interface
var _ repositories.ExperienceRepository = (*ExperienceRepository)(nil)
