package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionService issues, validates, and revokes admin session tokens
type SessionService struct {
	pool *pgxpool.Pool
	repo repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(pool *pgxpool.Pool) *SessionService {
	return &SessionService{pool: pool}
}

// NewSessionServiceWithRepo creates a new session service with repository (for testing)
func NewSessionServiceWithRepo(repo repositories.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// generateSessionToken generates a cryptographically secure opaque token
// (32 random bytes, hex encoded)
func generateSessionToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// CreateSession issues a new session bound to the requesting user agent and
// IP. The returned record carries the plaintext token; it is handed to the
// client exactly once and is never retrievable again.
func (ss *SessionService) CreateSession(ctx context.Context, userID uuid.UUID, userAgent, ipAddress string, ttl time.Duration) (*models.Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(ttl),
		IsValid:   true,
		CreatedAt: now,
	}

	// Use repository if available (for testing)
	if ss.repo != nil {
		if err := ss.repo.Create(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		return session, nil
	}

	query := `
		INSERT INTO sessions (id, user_id, token, user_agent, ip_address, expires_at, is_valid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7)
	`

	if _, err := ss.pool.Exec(ctx, query,
		session.ID, session.UserID, session.Token, session.UserAgent,
		session.IPAddress, session.ExpiresAt, session.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// FindByToken looks up a usable session: valid flag set and expiry strictly
// in the future. Misses return ErrSessionNotFound without distinguishing
// expired, revoked, or unknown tokens.
func (ss *SessionService) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	// Use repository if available (for testing)
	if ss.repo != nil {
		session, err := ss.repo.GetByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if session == nil || !session.Usable(time.Now()) {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	query := `
		SELECT id, user_id, token, user_agent, ip_address, expires_at, is_valid, created_at
		FROM sessions
		WHERE token = $1 AND is_valid = true AND expires_at > NOW()
	`

	session := &models.Session{}
	err := ss.pool.QueryRow(ctx, query, token).Scan(
		&session.ID, &session.UserID, &session.Token, &session.UserAgent,
		&session.IPAddress, &session.ExpiresAt, &session.IsValid, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return session, nil
}

// InvalidateSession revokes the session matching the token. Idempotent:
// unknown or already-invalid tokens are not an error. Returns whether a
// record changed.
func (ss *SessionService) InvalidateSession(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	if ss.repo != nil {
		return ss.repo.Invalidate(ctx, token)
	}

	result, err := ss.pool.Exec(ctx,
		`UPDATE sessions SET is_valid = false WHERE token = $1 AND is_valid = true`,
		token,
	)
	if err != nil {
		return false, fmt.Errorf("failed to invalidate session: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// InvalidateAllUserSessions revokes every session belonging to a user.
// Used on password changes and account removal.
func (ss *SessionService) InvalidateAllUserSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	if ss.repo != nil {
		return ss.repo.InvalidateAllForUser(ctx, userID)
	}

	result, err := ss.pool.Exec(ctx,
		`UPDATE sessions SET is_valid = false WHERE user_id = $1 AND is_valid = true`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate user sessions: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteExpiredSessions removes rows past their expiry. Housekeeping only;
// FindByToken already filters by expiry at read time.
func (ss *SessionService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	if ss.repo != nil {
		return ss.repo.DeleteExpired(ctx)
	}

	result, err := ss.pool.Exec(ctx, "DELETE FROM sessions WHERE expires_at < NOW()")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return result.RowsAffected(), nil
}
