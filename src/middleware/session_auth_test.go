package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories/mock"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newSessionAuthRouter(sessionRepo *mock.SessionRepository, userRepo *mock.UserRepository) (*httptest.ResponseRecorder, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	sessions := services.NewSessionServiceWithRepo(sessionRepo)
	users := services.NewUserServiceWithRepo(userRepo)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(SessionAuth(sessions, users, CookieConfig{}))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserIDKey)})
	})
	return w, router
}

func clearedSessionCookie(w *httptest.ResponseRecorder) bool {
	for _, raw := range w.Header().Values("Set-Cookie") {
		if strings.HasPrefix(raw, SessionCookieName+"=") && strings.Contains(raw, "Max-Age=0") {
			return true
		}
	}
	return false
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	sessionRepo := mock.NewSessionRepository()
	w, router := newSessionAuthRouter(sessionRepo, mock.NewUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	// No cookie means nothing to clear and nothing to look up
	if clearedSessionCookie(w) {
		t.Error("expected no cookie clearing without a presented cookie")
	}
	if len(sessionRepo.Calls["GetByToken"]) != 0 {
		t.Errorf("expected no session lookup, got %d", len(sessionRepo.Calls["GetByToken"]))
	}
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	sessionRepo := mock.NewSessionRepository()
	sessionRepo.GetByTokenFunc = func(ctx context.Context, token string) (*models.Session, error) {
		return nil, nil
	}

	w, router := newSessionAuthRouter(sessionRepo, mock.NewUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "dead-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if !clearedSessionCookie(w) {
		t.Error("expected dead cookie to be cleared")
	}
}

func TestSessionAuth_ExpiredSession(t *testing.T) {
	sessionRepo := mock.NewSessionRepository()
	sessionRepo.GetByTokenFunc = func(ctx context.Context, token string) (*models.Session, error) {
		return &models.Session{
			Token:     token,
			UserID:    uuid.New(),
			IsValid:   true,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil
	}

	w, router := newSessionAuthRouter(sessionRepo, mock.NewUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if !clearedSessionCookie(w) {
		t.Error("expected expired cookie to be cleared")
	}
}

func TestSessionAuth_DeletedUser(t *testing.T) {
	userID := uuid.New()

	sessionRepo := mock.NewSessionRepository()
	sessionRepo.GetByTokenFunc = func(ctx context.Context, token string) (*models.Session, error) {
		return &models.Session{
			Token:     token,
			UserID:    userID,
			IsValid:   true,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	userRepo := mock.NewUserRepository()
	userRepo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.User, error) {
		return nil, nil
	}

	w, router := newSessionAuthRouter(sessionRepo, userRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "orphan-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	// Orphaned session must be revoked in the same branch that drops the cookie
	if len(sessionRepo.Calls["Invalidate"]) != 1 {
		t.Errorf("expected 1 call to Invalidate, got %d", len(sessionRepo.Calls["Invalidate"]))
	}
	if !clearedSessionCookie(w) {
		t.Error("expected orphaned cookie to be cleared")
	}
}

func TestSessionAuth_ValidSession(t *testing.T) {
	userID := uuid.New()

	sessionRepo := mock.NewSessionRepository()
	sessionRepo.GetByTokenFunc = func(ctx context.Context, token string) (*models.Session, error) {
		return &models.Session{
			Token:     token,
			UserID:    userID,
			IsValid:   true,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	userRepo := mock.NewUserRepository()
	userRepo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.User, error) {
		return &models.User{ID: id, Username: "admin"}, nil
	}

	w, router := newSessionAuthRouter(sessionRepo, userRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "live-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), userID.String()) {
		t.Errorf("expected user id %s in response, got %s", userID, w.Body.String())
	}
	if clearedSessionCookie(w) {
		t.Error("expected cookie to survive a valid session")
	}
}
