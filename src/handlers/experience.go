package handlers

import (
	"net/http"
	"strings"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
)

// ExperienceHandler handles experience listing and admin CRUD
type ExperienceHandler struct {
	experiences *services.ExperienceService
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(experiences *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences}
}

// HandleList returns experiences matching the optional query filters
func (eh *ExperienceHandler) HandleList(c *gin.Context) {
	var filter models.ExperienceFilter

	featured, ok := parseBoolQuery(c, "featured")
	if !ok {
		return
	}
	filter.Featured = featured

	currentlyWorking, ok := parseBoolQuery(c, "currently_working")
	if !ok {
		return
	}
	filter.CurrentlyWorking = currentlyWorking

	filter.OrganizationContains = strings.TrimSpace(c.Query("organization"))

	if raw := c.Query("role_type"); raw != "" {
		if !models.ValidRoleType(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role_type"})
			return
		}
		rt := models.RoleType(raw)
		filter.RoleType = &rt
	}

	experiences, err := eh.experiences.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "experience")
		return
	}
	if experiences == nil {
		// An empty table serializes as [] rather than null
		experiences = []models.Experience{}
	}

	c.JSON(http.StatusOK, gin.H{
		"experiences": experiences,
		"count":       len(experiences),
	})
}

// HandleGet returns a single experience by id
func (eh *ExperienceHandler) HandleGet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	experience, err := eh.experiences.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "experience")
		return
	}

	c.JSON(http.StatusOK, experience)
}

// HandleCreate creates a new experience entry
func (eh *ExperienceHandler) HandleCreate(c *gin.Context) {
	var input services.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	experience, err := eh.experiences.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "experience")
		return
	}

	c.JSON(http.StatusCreated, experience)
}

// HandleUpdate applies a partial update to an experience entry
func (eh *ExperienceHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var update services.ExperienceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	experience, err := eh.experiences.Update(c.Request.Context(), id, update)
	if err != nil {
		respondServiceError(c, err, "experience")
		return
	}

	c.JSON(http.StatusOK, experience)
}

// HandleDelete removes an experience entry
func (eh *ExperienceHandler) HandleDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := eh.experiences.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
