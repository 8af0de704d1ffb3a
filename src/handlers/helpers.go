package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PerHac13/ashaikh/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// respondServiceError translates service-layer failures into HTTP responses.
// Validation and not-found errors carry their own message; anything else is
// logged in full server-side and surfaced only as a generic failure.
func respondServiceError(c *gin.Context, err error, entity string) {
	if ve, ok := services.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": ve.Message,
			"field": ve.Field,
		})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": entity + " not found",
		})
		return
	}

	log.Error().Err(err).Str("entity", entity).Msg("operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "operation failed",
	})
}

// parseIDParam reads and validates the :id path parameter
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// parseBoolQuery reads an optional boolean query parameter. Returns nil when
// the parameter is absent and reports malformed values.
func parseBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a boolean"})
		return nil, false
	}
	return &v, true
}
