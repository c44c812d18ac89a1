package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/service"
)

// TimesheetHandler handles week queries and mutations
type TimesheetHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTimesheetHandler creates a new TimesheetHandler
func NewTimesheetHandler(services *service.Services, log zerolog.Logger) *TimesheetHandler {
	return &TimesheetHandler{
		services: services,
		log:      log.With().Str("handler", "timesheet").Logger(),
	}
}

// targetEmployee resolves which employee a read applies to: the caller
// by default, someone else only when the caller can view all
// timesheets.
func (h *TimesheetHandler) targetEmployee(c *gin.Context) (string, bool) {
	id := identityFrom(c)

	requested := c.Query("employee_id")
	if requested == "" || requested == id.EmployeeID {
		return id.EmployeeID, true
	}
	if !id.Timesheet().ViewAll {
		forbidden(c, "viewing other employees' timesheets requires the owner or admin role")
		return "", false
	}
	return requested, true
}

// GetWeek handles GET /v1/timesheets/week?week_start=. A week that has
// not been submitted yet is a null week, not an error.
func (h *TimesheetHandler) GetWeek(c *gin.Context) {
	weekStart := c.Query("week_start")
	if weekStart == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start query parameter is required"})
		return
	}

	employeeID, ok := h.targetEmployee(c)
	if !ok {
		return
	}

	week, err := h.services.Timesheet.WeekFor(c.Request.Context(), weekStart, employeeID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"week": week})
}

// GetHistory handles GET /v1/timesheets/history
func (h *TimesheetHandler) GetHistory(c *gin.Context) {
	employeeID, ok := h.targetEmployee(c)
	if !ok {
		return
	}

	weeks, err := h.services.Timesheet.History(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

// GetTeam handles GET /v1/timesheets/team?week_start=&employee_id=
func (h *TimesheetHandler) GetTeam(c *gin.Context) {
	filters := service.TeamFilters{
		WeekStart:  c.Query("week_start"),
		EmployeeID: c.Query("employee_id"),
	}

	weeks, summary, err := h.services.Timesheet.TeamWeeks(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeks":   weeks,
		"summary": summary,
	})
}

// SubmitWeek handles POST /v1/timesheets. Submitting a week start that
// already has a week replaces it rather than duplicating it.
func (h *TimesheetHandler) SubmitWeek(c *gin.Context) {
	var req models.WeekSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := identityFrom(c)
	week, created, err := h.services.Timesheet.Submit(c.Request.Context(), id.EmployeeID, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, week)
}

// UpdateWeek handles PUT /v1/timesheets/:id
func (h *TimesheetHandler) UpdateWeek(c *gin.Context) {
	weekID := c.Param("id")

	existing, err := h.services.Timesheet.GetWeek(c.Request.Context(), weekID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	id := identityFrom(c)
	if existing.EmployeeID != id.EmployeeID && !id.Timesheet().EditAny {
		forbidden(c, "editing another employee's timesheet requires the timesheet admin role")
		return
	}

	var req models.WeekUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	week, err := h.services.Timesheet.UpdateWeek(c.Request.Context(), weekID, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, week)
}

// DeleteWeek handles DELETE /v1/timesheets/:id
func (h *TimesheetHandler) DeleteWeek(c *gin.Context) {
	weekID := c.Param("id")

	existing, err := h.services.Timesheet.GetWeek(c.Request.Context(), weekID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	id := identityFrom(c)
	if existing.EmployeeID != id.EmployeeID && !id.Timesheet().DeleteAny {
		forbidden(c, "deleting another employee's timesheet requires the timesheet admin role")
		return
	}

	if err := h.services.Timesheet.DeleteWeek(c.Request.Context(), weekID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
