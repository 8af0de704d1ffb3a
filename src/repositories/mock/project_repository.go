package mock

import (
	"context"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
)

// ProjectRepository is a mock implementation of repositories.ProjectRepository
type ProjectRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc    func(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateFunc  func(ctx context.Context, project *models.Project) error
	UpdateFunc  func(ctx context.Context, project *models.Project) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewProjectRepository creates a new mock project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ProjectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	m.Calls["List"] = append(m.Calls["List"], filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	m.Calls["Create"] = append(m.Calls["Create"], project)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	m.Calls["Update"] = append(m.Calls["Update"], project)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure ProjectRepository implements the interface
var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
