package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultProjectImgURL is used when a project is created without an image
const defaultProjectImgURL = "https://res.cloudinary.com/dmknbak4t/image/upload/v1739515347/pexels-luis-gomes-166706-546819_vr4jlv.jpg"

// ProjectService handles project content operations
type ProjectService struct {
	pool *pgxpool.Pool
	repo repositories.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(pool *pgxpool.Pool) *ProjectService {
	return &ProjectService{pool: pool}
}

// NewProjectServiceWithRepo creates a new project service with repository (for testing)
func NewProjectServiceWithRepo(repo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ProjectInput carries the fields an admin submits when creating a project
type ProjectInput struct {
	Title       string     `json:"title"`
	MadeAt      *string    `json:"made_at"`
	ImgURL      string     `json:"img_url"`
	Description []string   `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Featured    bool       `json:"featured"`
	Completed   bool       `json:"completed"`
	TeamSize    int        `json:"team_size"`
	Skills      []string   `json:"skills"`
	Tags        []string   `json:"tags"`
	GithubURL   *string    `json:"github_url"`
	LiveURL     *string    `json:"live_url"`
}

// ProjectUpdate carries a partial update. Nil fields are left unchanged;
// ClearEndDate removes an existing end date.
type ProjectUpdate struct {
	Title        *string    `json:"title"`
	MadeAt       *string    `json:"made_at"`
	ImgURL       *string    `json:"img_url"`
	Description  *[]string  `json:"description"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	ClearEndDate bool       `json:"clear_end_date"`
	Featured     *bool      `json:"featured"`
	Completed    *bool      `json:"completed"`
	TeamSize     *int       `json:"team_size"`
	Skills       *[]string  `json:"skills"`
	Tags         *[]string  `json:"tags"`
	GithubURL    *string    `json:"github_url"`
	LiveURL      *string    `json:"live_url"`
}

// validateProject enforces the business rules for project entries.
// Runs before any persistence. A completed project needs an end date after
// its start, mirroring the experience rule.
func validateProject(p *models.Project) error {
	title := strings.TrimSpace(p.Title)
	if len(title) < 2 || len(title) > 100 {
		return NewValidationError("title", "must be between 2 and 100 characters")
	}
	if len(p.Description) == 0 {
		return NewValidationError("description", "at least one description point is required")
	}
	if len(p.Skills) == 0 {
		return NewValidationError("skills", "at least one skill is required")
	}
	if p.StartDate.IsZero() {
		return NewValidationError("start_date", "start date is required")
	}
	if p.TeamSize < 1 {
		return NewValidationError("team_size", "team size must be at least 1")
	}
	if p.Completed {
		if p.EndDate == nil {
			return NewValidationError("end_date", "end date is required for a completed project")
		}
		if p.EndDate.Before(p.StartDate) {
			return NewValidationError("end_date", "end date must be after start date")
		}
	}
	return nil
}

// List returns projects matching the filter, featured first, newest first
func (ps *ProjectService) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	if ps.repo != nil {
		return ps.repo.List(ctx, filter)
	}

	query := `
		SELECT id, title, made_at, img_url, description, start_date, end_date,
		       featured, completed, team_size, skills, tags, github_url, live_url,
		       created_at, updated_at
		FROM projects
		WHERE ($1::boolean IS NULL OR featured = $1)
		  AND ($2::boolean IS NULL OR completed = $2)
		  AND ($3::text IS NULL OR title ILIKE '%' || $3 || '%')
		ORDER BY featured DESC, created_at DESC
	`

	var titleContains *string
	if filter.TitleContains != "" {
		titleContains = &filter.TitleContains
	}

	rows, err := ps.pool.Query(ctx, query, filter.Featured, filter.Completed, titleContains)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.MadeAt, &p.ImgURL, &p.Description, &p.StartDate, &p.EndDate,
			&p.Featured, &p.Completed, &p.TeamSize, &p.Skills, &p.Tags, &p.GithubURL, &p.LiveURL,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// GetByID retrieves a single project
func (ps *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if ps.repo != nil {
		project, err := ps.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, ErrNotFound
		}
		return project, nil
	}

	query := `
		SELECT id, title, made_at, img_url, description, start_date, end_date,
		       featured, completed, team_size, skills, tags, github_url, live_url,
		       created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	p := &models.Project{}
	err := ps.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.MadeAt, &p.ImgURL, &p.Description, &p.StartDate, &p.EndDate,
		&p.Featured, &p.Completed, &p.TeamSize, &p.Skills, &p.Tags, &p.GithubURL, &p.LiveURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// Create validates and persists a new project
func (ps *ProjectService) Create(ctx context.Context, input ProjectInput) (*models.Project, error) {
	now := time.Now()
	p := &models.Project{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		MadeAt:      input.MadeAt,
		ImgURL:      input.ImgURL,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Featured:    input.Featured,
		Completed:   input.Completed,
		TeamSize:    input.TeamSize,
		Skills:      input.Skills,
		Tags:        input.Tags,
		GithubURL:   input.GithubURL,
		LiveURL:     input.LiveURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.ImgURL == "" {
		p.ImgURL = defaultProjectImgURL
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	if err := validateProject(p); err != nil {
		return nil, err
	}

	if ps.repo != nil {
		if err := ps.repo.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to create project: %w", err)
		}
		return p, nil
	}

	query := `
		INSERT INTO projects (id, title, made_at, img_url, description, start_date,
		                      end_date, featured, completed, team_size, skills, tags,
		                      github_url, live_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	if _, err := ps.pool.Exec(ctx, query,
		p.ID, p.Title, p.MadeAt, p.ImgURL, p.Description, p.StartDate, p.EndDate,
		p.Featured, p.Completed, p.TeamSize, p.Skills, p.Tags, p.GithubURL, p.LiveURL,
		p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// Update applies a partial update to an existing project. The merged record
// is re-validated before anything is written.
func (ps *ProjectService) Update(ctx context.Context, id uuid.UUID, update ProjectUpdate) (*models.Project, error) {
	p, err := ps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		p.Title = strings.TrimSpace(*update.Title)
	}
	if update.MadeAt != nil {
		p.MadeAt = update.MadeAt
	}
	if update.ImgURL != nil {
		p.ImgURL = *update.ImgURL
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.StartDate != nil {
		p.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		p.EndDate = update.EndDate
	}
	if update.ClearEndDate {
		p.EndDate = nil
	}
	if update.Featured != nil {
		p.Featured = *update.Featured
	}
	if update.Completed != nil {
		p.Completed = *update.Completed
	}
	if update.TeamSize != nil {
		p.TeamSize = *update.TeamSize
	}
	if update.Skills != nil {
		p.Skills = *update.Skills
	}
	if update.Tags != nil {
		p.Tags = *update.Tags
	}
	if update.GithubURL != nil {
		p.GithubURL = update.GithubURL
	}
	if update.LiveURL != nil {
		p.LiveURL = update.LiveURL
	}
	p.UpdatedAt = time.Now()

	if err := validateProject(p); err != nil {
		return nil, err
	}

	if ps.repo != nil {
		if err := ps.repo.Update(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		return p, nil
	}

	query := `
		UPDATE projects
		SET title = $2, made_at = $3, img_url = $4, description = $5, start_date = $6,
		    end_date = $7, featured = $8, completed = $9, team_size = $10, skills = $11,
		    tags = $12, github_url = $13, live_url = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := ps.pool.Exec(ctx, query,
		p.ID, p.Title, p.MadeAt, p.ImgURL, p.Description, p.StartDate, p.EndDate,
		p.Featured, p.Completed, p.TeamSize, p.Skills, p.Tags, p.GithubURL, p.LiveURL,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return p, nil
}

// Delete removes a project
func (ps *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if ps.repo != nil {
		return ps.repo.Delete(ctx, id)
	}

	result, err := ps.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
