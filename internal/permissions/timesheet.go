package permissions

// Timesheet-specific roles
const (
	TimesheetRoleAdmin = "admin"
	TimesheetRoleOwner = "owner"
	TimesheetRoleUser  = "user"
)

// timesheetHierarchy orders timesheet roles from most to least privileged
var timesheetHierarchy = []string{TimesheetRoleAdmin, TimesheetRoleOwner, TimesheetRoleUser}

// timesheetLabels maps timesheet roles to display labels
var timesheetLabels = map[string]string{
	TimesheetRoleAdmin: "Admin",
	TimesheetRoleOwner: "Owner",
	TimesheetRoleUser:  "User",
}

// TimesheetRoleLabel returns the display label for a timesheet role,
// falling back to the raw role string
func TimesheetRoleLabel(role string) string {
	if label, ok := timesheetLabels[role]; ok {
		return label
	}
	return role
}

func timesheetRoleRank(role string) int {
	for i, r := range timesheetHierarchy {
		if r == role {
			return i
		}
	}
	return len(timesheetHierarchy)
}

func hasMinTimesheetRole(role, minRole string) bool {
	return timesheetRoleRank(role) <= timesheetRoleRank(minRole)
}

// CanViewAllTimesheets reports whether the role can view every
// employee's timesheets (owner or above)
func CanViewAllTimesheets(role string) bool {
	return hasMinTimesheetRole(role, TimesheetRoleOwner)
}

// CanManageInternalActivities reports whether the role can manage the
// internal activity list. Admin only, by strict equality: owner gets
// elevated read but not elevated write.
func CanManageInternalActivities(role string) bool {
	return role == TimesheetRoleAdmin
}

// CanEditAnyTimesheet reports whether the role can edit any employee's
// timesheet. Admin only, by strict equality.
func CanEditAnyTimesheet(role string) bool {
	return role == TimesheetRoleAdmin
}

// CanDeleteTimesheets reports whether the role can delete timesheet
// weeks. Admin only, by strict equality.
func CanDeleteTimesheets(role string) bool {
	return role == TimesheetRoleAdmin
}

// IsTimesheetAdmin reports whether the role is exactly admin
func IsTimesheetAdmin(role string) bool {
	return role == TimesheetRoleAdmin
}

// TimesheetPermissions is the composite capability set derived from a
// timesheet role
type TimesheetPermissions struct {
	Role             string `json:"timesheet_role"`
	ViewAll          bool   `json:"view_all"`
	ManageActivities bool   `json:"manage_activities"`
	EditAny          bool   `json:"edit_any"`
	DeleteAny        bool   `json:"delete_any"`
	IsAdmin          bool   `json:"is_admin"`
}

// BuildTimesheet derives the full capability set for a timesheet role
func BuildTimesheet(role string) TimesheetPermissions {
	return TimesheetPermissions{
		Role:             role,
		ViewAll:          CanViewAllTimesheets(role),
		ManageActivities: CanManageInternalActivities(role),
		EditAny:          CanEditAnyTimesheet(role),
		DeleteAny:        CanDeleteTimesheets(role),
		IsAdmin:          IsTimesheetAdmin(role),
	}
}
