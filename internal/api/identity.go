package api

import (
	"github.com/gin-gonic/gin"
	"github.com/timesheet-api/internal/config"
	"github.com/timesheet-api/internal/permissions"
)

const identityKey = "identity"

// Identity is the caller resolved for a request. There is no real
// authentication; the configured demo identity applies unless the
// request overrides it with X-Employee-ID / X-Crm-Role /
// X-Timesheet-Role headers, which lets one process exercise every role
// combination.
type Identity struct {
	EmployeeID    string
	CRMRole       string
	TimesheetRole string
}

// Timesheet returns the capability set derived from the timesheet role
func (id Identity) Timesheet() permissions.TimesheetPermissions {
	return permissions.BuildTimesheet(id.TimesheetRole)
}

// CRM returns the capability set derived from the general CRM role
func (id Identity) CRM() permissions.Permissions {
	return permissions.Build(id.CRMRole)
}

// identityMiddleware resolves the request identity and stores it in the
// gin context
func identityMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := Identity{
			EmployeeID:    cfg.Identity.EmployeeID,
			CRMRole:       cfg.Identity.CRMRole,
			TimesheetRole: cfg.Identity.TimesheetRole,
		}
		if v := c.GetHeader("X-Employee-ID"); v != "" {
			id.EmployeeID = v
		}
		if v := c.GetHeader("X-Crm-Role"); v != "" {
			id.CRMRole = v
		}
		if v := c.GetHeader("X-Timesheet-Role"); v != "" {
			id.TimesheetRole = v
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// identityFrom reads the resolved identity back out of the gin context
func identityFrom(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}

// requireActivityManagement gates a route on the manage-activities
// capability
func requireActivityManagement() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identityFrom(c).Timesheet().ManageActivities {
			forbidden(c, "managing internal activities requires the timesheet admin role")
			return
		}
		c.Next()
	}
}

// requireTeamView gates a route on the view-all capability
func requireTeamView() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identityFrom(c).Timesheet().ViewAll {
			forbidden(c, "viewing other employees' timesheets requires the owner or admin role")
			return
		}
		c.Next()
	}
}
