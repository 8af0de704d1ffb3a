package handlers

import (
	"errors"
	"net/http"

	"github.com/PerHac13/ashaikh/src/models"
	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ResumeHandler handles resume link management and the public redirect
type ResumeHandler struct {
	resumes     *services.ResumeService
	fallbackURL string
}

// NewResumeHandler creates a new resume handler. fallbackURL is served by
// the redirect when no link is active; empty means no fallback.
func NewResumeHandler(resumes *services.ResumeService, fallbackURL string) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, fallbackURL: fallbackURL}
}

// HandleList returns all resume links
func (rh *ResumeHandler) HandleList(c *gin.Context) {
	links, err := rh.resumes.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "resume link")
		return
	}
	if links == nil {
		links = []models.ResumeLink{}
	}

	c.JSON(http.StatusOK, gin.H{
		"resume_links": links,
		"count":        len(links),
	})
}

// HandleGetActive returns the currently active resume link
func (rh *ResumeHandler) HandleGetActive(c *gin.Context) {
	link, err := rh.resumes.GetActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "active resume link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// HandleCreate creates a new resume link. New links always start inactive.
func (rh *ResumeHandler) HandleCreate(c *gin.Context) {
	var input services.ResumeLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := rh.resumes.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "resume link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

// HandleUpdate renames or repoints a resume link. Activation state is not
// editable here.
func (rh *ResumeHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.ResumeLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := rh.resumes.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "resume link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// HandleDelete removes a resume link
func (rh *ResumeHandler) HandleDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rh.resumes.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "resume link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleSetActive makes the given link the single active one
func (rh *ResumeHandler) HandleSetActive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	link, err := rh.resumes.SetActiveLink(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "resume link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// HandleRedirect sends visitors to the active resume. The response is never
// cached so a newly activated link takes effect immediately.
func (rh *ResumeHandler) HandleRedirect(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	link, err := rh.resumes.GetActive(c.Request.Context())
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			log.Error().Err(err).Msg("failed to look up active resume link")
		}
		if rh.fallbackURL != "" {
			c.Redirect(http.StatusFound, rh.fallbackURL)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "no resume available"})
		return
	}

	c.Redirect(http.StatusFound, link.URL)
}
