package handlers

import (
	"net/http"
	"strings"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project listing and admin CRUD
type ProjectHandler struct {
	projects *services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// HandleList returns projects matching the optional query filters
func (ph *ProjectHandler) HandleList(c *gin.Context) {
	var filter models.ProjectFilter

	featured, ok := parseBoolQuery(c, "featured")
	if !ok {
		return
	}
	filter.Featured = featured

	completed, ok := parseBoolQuery(c, "completed")
	if !ok {
		return
	}
	filter.Completed = completed

	filter.TitleContains = strings.TrimSpace(c.Query("title"))

	projects, err := ph.projects.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "project")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// HandleGet returns a single project by id
func (ph *ProjectHandler) HandleGet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := ph.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// HandleCreate creates a new project entry
func (ph *ProjectHandler) HandleCreate(c *gin.Context) {
	var input services.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := ph.projects.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// HandleUpdate applies a partial update to a project entry
func (ph *ProjectHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var update services.ProjectUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := ph.projects.Update(c.Request.Context(), id, update)
	if err != nil {
		respondServiceError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// HandleDelete removes a project entry
func (ph *ProjectHandler) HandleDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ph.projects.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
