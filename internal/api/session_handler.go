package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/permissions"
	"github.com/timesheet-api/internal/service"
)

// SessionHandler handles the demo session endpoint
type SessionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(services *service.Services, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		services: services,
		log:      log.With().Str("handler", "session").Logger(),
	}
}

// GetSession handles GET /v1/session. It returns the resolved identity
// and both derived capability sets so a client can gate its views
// without re-deriving role rules.
func (h *SessionHandler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()
	id := identityFrom(c)

	employees, err := h.services.Employee.List(ctx)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	employee := models.UnknownEmployee(id.EmployeeID)
	for _, e := range employees {
		if e.ID == id.EmployeeID {
			employee = models.EmployeeSummary{ID: e.ID, Name: e.Name, Initials: e.Initials}
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"employee":              employee,
		"role":                  id.CRMRole,
		"role_label":            permissions.RoleLabel(id.CRMRole),
		"timesheet_role":        id.TimesheetRole,
		"timesheet_role_label":  permissions.TimesheetRoleLabel(id.TimesheetRole),
		"permissions":           id.CRM(),
		"timesheet_permissions": id.Timesheet(),
	})
}
