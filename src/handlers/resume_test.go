package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/repositories/mock"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/google/uuid"
)

func TestResumeHandler_Redirect(t *testing.T) {
	t.Run("redirects to the active link", func(t *testing.T) {
		mockRepo := mock.NewResumeLinkRepository()
		mockRepo.GetActiveFunc = func(ctx context.Context) (*models.ResumeLink, error) {
			return &models.ResumeLink{
				ID:       uuid.New(),
				Name:     "current",
				URL:      "https://example.com/resume.pdf",
				IsActive: true,
			}, nil
		}

		handler := NewResumeHandler(services.NewResumeServiceWithRepo(mockRepo), "/static/resume.pdf")
		w, router := newTestRouter()
		router.GET("/resume", handler.HandleRedirect)

		req := httptest.NewRequest(http.MethodGet, "/resume", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusFound)
		if loc := w.Header().Get("Location"); loc != "https://example.com/resume.pdf" {
			t.Errorf("expected redirect to active link, got %s", loc)
		}
		if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
			t.Errorf("expected Cache-Control no-store, got %s", cc)
		}
	})

	t.Run("falls back to the static URL when nothing is active", func(t *testing.T) {
		mockRepo := mock.NewResumeLinkRepository()
		mockRepo.GetActiveFunc = func(ctx context.Context) (*models.ResumeLink, error) {
			return nil, nil
		}

		handler := NewResumeHandler(services.NewResumeServiceWithRepo(mockRepo), "/static/resume.pdf")
		w, router := newTestRouter()
		router.GET("/resume", handler.HandleRedirect)

		req := httptest.NewRequest(http.MethodGet, "/resume", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusFound)
		if loc := w.Header().Get("Location"); loc != "/static/resume.pdf" {
			t.Errorf("expected fallback redirect, got %s", loc)
		}
	})

	t.Run("404 when nothing is active and no fallback is configured", func(t *testing.T) {
		mockRepo := mock.NewResumeLinkRepository()
		mockRepo.GetActiveFunc = func(ctx context.Context) (*models.ResumeLink, error) {
			return nil, nil
		}

		handler := NewResumeHandler(services.NewResumeServiceWithRepo(mockRepo), "")
		w, router := newTestRouter()
		router.GET("/resume", handler.HandleRedirect)

		req := httptest.NewRequest(http.MethodGet, "/resume", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusNotFound)
	})
}

func TestResumeHandler_List(t *testing.T) {
	t.Run("empty table serializes as an empty array", func(t *testing.T) {
		handler := NewResumeHandler(services.NewResumeServiceWithRepo(mock.NewResumeLinkRepository()), "")
		w, router := newTestRouter()
		router.GET("/resume-links", handler.HandleList)

		req := httptest.NewRequest(http.MethodGet, "/resume-links", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusOK)
		body := parseJSONBody(t, w)
		if _, ok := body["resume_links"].([]interface{}); !ok {
			t.Errorf("expected resume_links to serialize as a JSON array, got %T", body["resume_links"])
		}
	})
}

func TestResumeHandler_SetActive(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		mockRepo := mock.NewResumeLinkRepository()
		mockRepo.SetActiveFunc = func(ctx context.Context, id uuid.UUID) (*models.ResumeLink, error) {
			return nil, nil
		}

		handler := NewResumeHandler(services.NewResumeServiceWithRepo(mockRepo), "")
		w, router := newTestRouter()
		router.POST("/resume-links/:id/activate", handler.HandleSetActive)

		req := httptest.NewRequest(http.MethodPost, "/resume-links/"+uuid.New().String()+"/activate", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusNotFound)
		assertJSONError(t, w, "resume link not found")
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		handler := NewResumeHandler(services.NewResumeServiceWithRepo(mock.NewResumeLinkRepository()), "")
		w, router := newTestRouter()
		router.POST("/resume-links/:id/activate", handler.HandleSetActive)

		req := httptest.NewRequest(http.MethodPost, "/resume-links/not-a-uuid/activate", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusBadRequest)
		assertJSONError(t, w, "invalid id")
	})
}
