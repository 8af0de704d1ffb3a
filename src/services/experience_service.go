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

// ExperienceService handles experience content operations
type ExperienceService struct {
	pool *pgxpool.Pool
	repo repositories.ExperienceRepository
}

// NewExperienceService creates a new experience service
func NewExperienceService(pool *pgxpool.Pool) *ExperienceService {
	return &ExperienceService{pool: pool}
}

// NewExperienceServiceWithRepo creates a new experience service with repository (for testing)
func NewExperienceServiceWithRepo(repo repositories.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

// ExperienceInput carries the fields an admin submits when creating an
// experience entry
type ExperienceInput struct {
	Organization      string     `json:"organization"`
	CurrentPosition   string     `json:"current_position"`
	PreviousPositions []string   `json:"previous_positions"`
	RoleType          string     `json:"role_type"`
	Description       []string   `json:"description"`
	Skills            []string   `json:"skills"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	CurrentlyWorking  bool       `json:"currently_working"`
	Featured          bool       `json:"featured"`
}

// ExperienceUpdate carries a partial update. Nil fields are left unchanged;
// ClearEndDate removes an existing end date.
type ExperienceUpdate struct {
	Organization      *string    `json:"organization"`
	CurrentPosition   *string    `json:"current_position"`
	PreviousPositions *[]string  `json:"previous_positions"`
	RoleType          *string    `json:"role_type"`
	Description       *[]string  `json:"description"`
	Skills            *[]string  `json:"skills"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	ClearEndDate      bool       `json:"clear_end_date"`
	CurrentlyWorking  *bool      `json:"currently_working"`
	Featured          *bool      `json:"featured"`
}

// validateExperience enforces the business rules the admin forms rely on.
// Runs before any persistence.
func validateExperience(e *models.Experience) error {
	org := strings.TrimSpace(e.Organization)
	if len(org) < 2 || len(org) > 100 {
		return NewValidationError("organization", "must be between 2 and 100 characters")
	}
	pos := strings.TrimSpace(e.CurrentPosition)
	if len(pos) < 2 || len(pos) > 100 {
		return NewValidationError("current_position", "must be between 2 and 100 characters")
	}
	if !models.ValidRoleType(string(e.RoleType)) {
		return NewValidationError("role_type", "invalid role type")
	}
	if len(e.Description) == 0 {
		return NewValidationError("description", "at least one description point is required")
	}
	if len(e.Skills) == 0 {
		return NewValidationError("skills", "at least one skill is required")
	}
	if e.StartDate.IsZero() {
		return NewValidationError("start_date", "start date is required")
	}
	if e.CurrentlyWorking && e.EndDate != nil {
		return NewValidationError("end_date", "end date must be empty while currently working")
	}
	if !e.CurrentlyWorking {
		if e.EndDate == nil {
			return NewValidationError("end_date", "end date is required unless currently working")
		}
		if e.EndDate.Before(e.StartDate) {
			return NewValidationError("end_date", "end date must be after start date")
		}
	}
	return nil
}

// List returns experiences matching the filter, sorted with current roles
// first, then by most recent start and end dates.
func (es *ExperienceService) List(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error) {
	if es.repo != nil {
		return es.repo.List(ctx, filter)
	}

	query := `
		SELECT id, organization, current_position, previous_positions, role_type,
		       description, skills, start_date, end_date, currently_working,
		       featured, created_at, updated_at
		FROM experiences
		WHERE ($1::boolean IS NULL OR featured = $1)
		  AND ($2::boolean IS NULL OR currently_working = $2)
		  AND ($3::text IS NULL OR organization ILIKE '%' || $3 || '%')
		  AND ($4::text IS NULL OR role_type = $4)
		ORDER BY currently_working DESC, start_date DESC, end_date DESC NULLS LAST
	`

	var orgContains, roleType *string
	if filter.OrganizationContains != "" {
		orgContains = &filter.OrganizationContains
	}
	if filter.RoleType != nil {
		rt := string(*filter.RoleType)
		roleType = &rt
	}

	rows, err := es.pool.Query(ctx, query, filter.Featured, filter.CurrentlyWorking, orgContains, roleType)
	if err != nil {
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	var experiences []models.Experience
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(
			&e.ID, &e.Organization, &e.CurrentPosition, &e.PreviousPositions, &e.RoleType,
			&e.Description, &e.Skills, &e.StartDate, &e.EndDate, &e.CurrentlyWorking,
			&e.Featured, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, e)
	}

	return experiences, rows.Err()
}

// GetByID retrieves a single experience entry
func (es *ExperienceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	if es.repo != nil {
		exp, err := es.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if exp == nil {
			return nil, ErrNotFound
		}
		return exp, nil
	}

	query := `
		SELECT id, organization, current_position, previous_positions, role_type,
		       description, skills, start_date, end_date, currently_working,
		       featured, created_at, updated_at
		FROM experiences
		WHERE id = $1
	`

	e := &models.Experience{}
	err := es.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Organization, &e.CurrentPosition, &e.PreviousPositions, &e.RoleType,
		&e.Description, &e.Skills, &e.StartDate, &e.EndDate, &e.CurrentlyWorking,
		&e.Featured, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	return e, nil
}

// Create validates and persists a new experience entry
func (es *ExperienceService) Create(ctx context.Context, input ExperienceInput) (*models.Experience, error) {
	now := time.Now()
	e := &models.Experience{
		ID:                uuid.New(),
		Organization:      strings.TrimSpace(input.Organization),
		CurrentPosition:   strings.TrimSpace(input.CurrentPosition),
		PreviousPositions: input.PreviousPositions,
		RoleType:          models.RoleType(input.RoleType),
		Description:       input.Description,
		Skills:            input.Skills,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		CurrentlyWorking:  input.CurrentlyWorking,
		Featured:          input.Featured,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if e.PreviousPositions == nil {
		e.PreviousPositions = []string{}
	}

	if err := validateExperience(e); err != nil {
		return nil, err
	}

	if es.repo != nil {
		if err := es.repo.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("failed to create experience: %w", err)
		}
		return e, nil
	}

	query := `
		INSERT INTO experiences (id, organization, current_position, previous_positions,
		                         role_type, description, skills, start_date, end_date,
		                         currently_working, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if _, err := es.pool.Exec(ctx, query,
		e.ID, e.Organization, e.CurrentPosition, e.PreviousPositions, e.RoleType,
		e.Description, e.Skills, e.StartDate, e.EndDate, e.CurrentlyWorking,
		e.Featured, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}

	return e, nil
}

// Update applies a partial update to an existing entry. The merged record is
// re-validated before anything is written.
func (es *ExperienceService) Update(ctx context.Context, id uuid.UUID, update ExperienceUpdate) (*models.Experience, error) {
	e, err := es.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Organization != nil {
		e.Organization = strings.TrimSpace(*update.Organization)
	}
	if update.CurrentPosition != nil {
		e.CurrentPosition = strings.TrimSpace(*update.CurrentPosition)
	}
	if update.PreviousPositions != nil {
		e.PreviousPositions = *update.PreviousPositions
	}
	if update.RoleType != nil {
		e.RoleType = models.RoleType(*update.RoleType)
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	if update.Skills != nil {
		e.Skills = *update.Skills
	}
	if update.StartDate != nil {
		e.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		e.EndDate = update.EndDate
	}
	if update.ClearEndDate {
		e.EndDate = nil
	}
	if update.CurrentlyWorking != nil {
		e.CurrentlyWorking = *update.CurrentlyWorking
	}
	if update.Featured != nil {
		e.Featured = *update.Featured
	}
	e.UpdatedAt = time.Now()

	if err := validateExperience(e); err != nil {
		return nil, err
	}

	if es.repo != nil {
		if err := es.repo.Update(ctx, e); err != nil {
			return nil, fmt.Errorf("failed to update experience: %w", err)
		}
		return e, nil
	}

	query := `
		UPDATE experiences
		SET organization = $2, current_position = $3, previous_positions = $4,
		    role_type = $5, description = $6, skills = $7, start_date = $8,
		    end_date = $9, currently_working = $10, featured = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := es.pool.Exec(ctx, query,
		e.ID, e.Organization, e.CurrentPosition, e.PreviousPositions, e.RoleType,
		e.Description, e.Skills, e.StartDate, e.EndDate, e.CurrentlyWorking,
		e.Featured, e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return e, nil
}

// Delete removes an experience entry
func (es *ExperienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if es.repo != nil {
		return es.repo.Delete(ctx, id)
	}

	result, err := es.pool.Exec(ctx, "DELETE FROM experiences WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
