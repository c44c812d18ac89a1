package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/service"
)

// ActivityHandler handles internal activity management endpoints
type ActivityHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(services *service.Services, log zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		services: services,
		log:      log.With().Str("handler", "activity").Logger(),
	}
}

// ListActivities handles GET /v1/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	activities, err := h.services.Activity.List(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// CreateActivity handles POST /v1/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	activity, err := h.services.Activity.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity handles PATCH /v1/activities/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var req models.ActivityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	activity, err := h.services.Activity.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity handles DELETE /v1/activities/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	if err := h.services.Activity.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
