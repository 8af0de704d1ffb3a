package handlers

import (
	"net/http"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/PerHac13/ashaikh/src/site"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PortfolioHandler serves the aggregate public portfolio payload
type PortfolioHandler struct {
	profile     *site.Profile
	experiences *services.ExperienceService
	projects    *services.ProjectService
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(profile *site.Profile, experiences *services.ExperienceService, projects *services.ProjectService) *PortfolioHandler {
	return &PortfolioHandler{
		profile:     profile,
		experiences: experiences,
		projects:    projects,
	}
}

// HandlePortfolio returns the profile plus featured experiences and projects
// in a single response so the landing page needs one request
func (ph *PortfolioHandler) HandlePortfolio(c *gin.Context) {
	featured := true

	experiences, err := ph.experiences.List(c.Request.Context(), models.ExperienceFilter{Featured: &featured})
	if err != nil {
		log.Error().Err(err).Msg("failed to load featured experiences")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}

	projects, err := ph.projects.List(c.Request.Context(), models.ProjectFilter{Featured: &featured})
	if err != nil {
		log.Error().Err(err).Msg("failed to load featured projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":     ph.profile,
		"experiences": experiences,
		"projects":    projects,
	})
}
