package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint hits
const pgUniqueViolation = "23505"

// mapUserCreateError translates a unique-constraint hit on the username
// column into ErrDuplicateUsername
func mapUserCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateUsername
	}
	return fmt.Errorf("failed to create user: %w", err)
}

// UserService handles admin account operations
type UserService struct {
	pool *pgxpool.Pool
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(pool *pgxpool.Pool) *UserService {
	return &UserService{pool: pool}
}

// NewUserServiceWithRepo creates a new user service with repository (for testing)
func NewUserServiceWithRepo(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser creates a new admin account with an argon2id-hashed password
func (us *UserService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	if len(username) < 3 || len(username) > 50 {
		return nil, NewValidationError("username", "must be between 3 and 50 characters")
	}
	if len(password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	// Use repository if available (for testing)
	if us.repo != nil {
		if err := us.repo.Create(ctx, user); err != nil {
			return nil, mapUserCreateError(err)
		}
		return user, nil
	}

	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := us.pool.Exec(ctx, query, user.ID, user.Username, user.PasswordHash, user.CreatedAt); err != nil {
		return nil, mapUserCreateError(err)
	}

	return user, nil
}

// HasUsers checks whether any admin account exists. Used by the first-run
// auto-seed in main.
func (us *UserService) HasUsers(ctx context.Context) (bool, error) {
	if us.repo != nil {
		count, err := us.repo.Count(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to count users: %w", err)
		}
		return count > 0, nil
	}

	var count int
	if err := us.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

// Authenticate verifies username and password. Unknown usernames and wrong
// passwords both yield ErrInvalidCredentials so the caller cannot enumerate
// accounts.
func (us *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := us.getByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := VerifyPassword(user.PasswordHash, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves an admin account by ID
func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if us.repo != nil {
		user, err := us.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrNotFound
		}
		return user, nil
	}

	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	user := &models.User{}
	err := us.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (us *UserService) getByUsername(ctx context.Context, username string) (*models.User, error) {
	if us.repo != nil {
		user, err := us.repo.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrNotFound
		}
		return user, nil
	}

	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	user := &models.User{}
	err := us.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
