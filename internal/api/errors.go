package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/service"
)

// forbidden aborts the request with a 403
func forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
}

// respondServiceError translates service errors into HTTP responses:
// field errors become 400 with the error list, a missing confirmation
// becomes 422 with confirmation_required set, unknown ids become 404.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error) {
	var vf *service.ValidationFailure
	switch {
	case errors.As(err, &vf):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"errors": vf.Errors,
		})
	case errors.Is(err, service.ErrConfirmationRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":                 err.Error(),
			"confirmation_required": true,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
