package mock

import (
	"context"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
)

// ResumeLinkRepository is a mock implementation of repositories.ResumeLinkRepository
type ResumeLinkRepository struct {
	// Function stubs that can be overridden in tests
	ListFunc      func(ctx context.Context) ([]models.ResumeLink, error)
	GetActiveFunc func(ctx context.Context) (*models.ResumeLink, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error)
	CreateFunc    func(ctx context.Context, link *models.ResumeLink) error
	UpdateFunc    func(ctx context.Context, link *models.ResumeLink) error
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	SetActiveFunc func(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewResumeLinkRepository creates a new mock resume link repository
func NewResumeLinkRepository() *ResumeLinkRepository {
	return &ResumeLinkRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ResumeLinkRepository) List(ctx context.Context) ([]models.ResumeLink, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *ResumeLinkRepository) GetActive(ctx context.Context) (*models.ResumeLink, error) {
	m.Calls["GetActive"] = append(m.Calls["GetActive"], nil)
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx)
	}
	return nil, nil
}

func (m *ResumeLinkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ResumeLinkRepository) Create(ctx context.Context, link *models.ResumeLink) error {
	m.Calls["Create"] = append(m.Calls["Create"], link)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, link)
	}
	return nil
}

func (m *ResumeLinkRepository) Update(ctx context.Context, link *models.ResumeLink) error {
	m.Calls["Update"] = append(m.Calls["Update"], link)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, link)
	}
	return nil
}

func (m *ResumeLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *ResumeLinkRepository) SetActive(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error) {
	m.Calls["SetActive"] = append(m.Calls["SetActive"], id)
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id)
	}
	return nil, nil
}

// Ensure ResumeLinkRepository implements the interface
var _ repositories.ResumeLinkRepository = (*ResumeLinkRepository)(nil)
