package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PerHac13/ashaikh/src/repositories/mock"
	"github.com/PerHac13/ashaikh/src/services"
)

func TestProjectHandler_List(t *testing.T) {
	t.Run("empty table serializes as an empty array", func(t *testing.T) {
		handler := NewProjectHandler(services.NewProjectServiceWithRepo(mock.NewProjectRepository()))
		w, router := newTestRouter()
		router.GET("/api/projects", handler.HandleList)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusOK)
		body := parseJSONBody(t, w)
		if body["count"] != float64(0) {
			t.Errorf("expected count 0, got %v", body["count"])
		}
		if _, ok := body["projects"].([]interface{}); !ok {
			t.Errorf("expected projects to serialize as a JSON array, got %T", body["projects"])
		}
	})

	t.Run("rejects malformed boolean filter", func(t *testing.T) {
		handler := NewProjectHandler(services.NewProjectServiceWithRepo(mock.NewProjectRepository()))
		w, router := newTestRouter()
		router.GET("/api/projects", handler.HandleList)

		req := httptest.NewRequest(http.MethodGet, "/api/projects?completed=maybe", nil)
		router.ServeHTTP(w, req)

		assertStatusCode(t, w, http.StatusBadRequest)
	})
}
