package handlers

import (
	"errors"
	"net/http"

	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxUploadBytes caps image uploads at 10 MB
const maxUploadBytes = 10 << 20

// UploadHandler handles image uploads to Cloudinary
type UploadHandler struct {
	uploads *services.UploadService
}

// NewUploadHandler creates a new upload handler. uploads may be nil when
// the upload backend is not configured.
func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// HandleUpload accepts a multipart file and returns its hosted URL
func (uh *UploadHandler) HandleUpload(c *gin.Context) {
	if uh.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads are not configured"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10MB limit"})
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}
	defer file.Close()

	url, err := uh.uploads.Upload(c.Request.Context(), file, header.Filename)
	if err != nil {
		if errors.Is(err, services.ErrUploadNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads are not configured"})
			return
		}
		log.Error().Err(err).Str("filename", header.Filename).Msg("upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
