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

// ResumeService handles resume link operations, including the
// single-active-link invariant
type ResumeService struct {
	pool *pgxpool.Pool
	repo repositories.ResumeLinkRepository
}

// NewResumeService creates a new resume service
func NewResumeService(pool *pgxpool.Pool) *ResumeService {
	return &ResumeService{pool: pool}
}

// NewResumeServiceWithRepo creates a new resume service with repository (for testing)
func NewResumeServiceWithRepo(repo repositories.ResumeLinkRepository) *ResumeService {
	return &ResumeService{repo: repo}
}

// ResumeLinkInput carries the fields an admin submits for a resume link.
// is_active is deliberately absent: activation goes through SetActiveLink
// only.
type ResumeLinkInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func validateResumeLink(input ResumeLinkInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return NewValidationError("name", "name is required")
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return NewValidationError("url", "url is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return NewValidationError("url", "must be a valid http(s) URL")
	}
	return nil
}

// List returns all resume links, newest first
func (rs *ResumeService) List(ctx context.Context) ([]models.ResumeLink, error) {
	if rs.repo != nil {
		return rs.repo.List(ctx)
	}

	rows, err := rs.pool.Query(ctx, `
		SELECT id, name, url, is_active, created_at, updated_at
		FROM resume_links
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query resume links: %w", err)
	}
	defer rows.Close()

	var links []models.ResumeLink
	for rows.Next() {
		var l models.ResumeLink
		if err := rows.Scan(&l.ID, &l.Name, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume link: %w", err)
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

// GetActive returns the currently active resume link, or ErrNotFound when
// none is active
func (rs *ResumeService) GetActive(ctx context.Context) (*models.ResumeLink, error) {
	if rs.repo != nil {
		link, err := rs.repo.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		if link == nil {
			return nil, ErrNotFound
		}
		return link, nil
	}

	l := &models.ResumeLink{}
	err := rs.pool.QueryRow(ctx, `
		SELECT id, name, url, is_active, created_at, updated_at
		FROM resume_links
		WHERE is_active = true
		LIMIT 1
	`).Scan(&l.ID, &l.Name, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active resume link: %w", err)
	}

	return l, nil
}

// Create persists a new resume link. New links always start inactive.
func (rs *ResumeService) Create(ctx context.Context, input ResumeLinkInput) (*models.ResumeLink, error) {
	if err := validateResumeLink(input); err != nil {
		return nil, err
	}

	now := time.Now()
	l := &models.ResumeLink{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		URL:       strings.TrimSpace(input.URL),
		IsActive:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if rs.repo != nil {
		if err := rs.repo.Create(ctx, l); err != nil {
			return nil, fmt.Errorf("failed to create resume link: %w", err)
		}
		return l, nil
	}

	query := `
		INSERT INTO resume_links (id, name, url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, $5)
	`

	if _, err := rs.pool.Exec(ctx, query, l.ID, l.Name, l.URL, l.CreatedAt, l.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create resume link: %w", err)
	}

	return l, nil
}

// Update changes a link's name and URL. The active flag is never touched
// here; activation is SetActiveLink's job.
func (rs *ResumeService) Update(ctx context.Context, id uuid.UUID, input ResumeLinkInput) (*models.ResumeLink, error) {
	if err := validateResumeLink(input); err != nil {
		return nil, err
	}

	if rs.repo != nil {
		link, err := rs.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if link == nil {
			return nil, ErrNotFound
		}
		link.Name = strings.TrimSpace(input.Name)
		link.URL = strings.TrimSpace(input.URL)
		link.UpdatedAt = time.Now()
		if err := rs.repo.Update(ctx, link); err != nil {
			return nil, fmt.Errorf("failed to update resume link: %w", err)
		}
		return link, nil
	}

	l := &models.ResumeLink{}
	err := rs.pool.QueryRow(ctx, `
		UPDATE resume_links
		SET name = $2, url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, url, is_active, created_at, updated_at
	`, id, strings.TrimSpace(input.Name), strings.TrimSpace(input.URL)).Scan(
		&l.ID, &l.Name, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update resume link: %w", err)
	}

	return l, nil
}

// Delete removes a resume link
func (rs *ResumeService) Delete(ctx context.Context, id uuid.UUID) error {
	if rs.repo != nil {
		return rs.repo.Delete(ctx, id)
	}

	result, err := rs.pool.Exec(ctx, "DELETE FROM resume_links WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete resume link: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SetActiveLink makes the target link the only active one. Runs as a single
// transaction: every active row is cleared (tolerating more than one from
// prior inconsistency), then the target is activated. A missing target
// aborts the transaction so the previous active set survives untouched.
func (rs *ResumeService) SetActiveLink(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error) {
	if rs.repo != nil {
		link, err := rs.repo.SetActive(ctx, id)
		if err != nil {
			return nil, err
		}
		if link == nil {
			return nil, ErrNotFound
		}
		return link, nil
	}

	tx, err := rs.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE resume_links SET is_active = false, updated_at = NOW() WHERE is_active = true`,
	); err != nil {
		return nil, fmt.Errorf("failed to clear active resume links: %w", err)
	}

	l := &models.ResumeLink{}
	err = tx.QueryRow(ctx, `
		UPDATE resume_links
		SET is_active = true, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, url, is_active, created_at, updated_at
	`, id).Scan(&l.ID, &l.Name, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to activate resume link: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return l, nil
}
