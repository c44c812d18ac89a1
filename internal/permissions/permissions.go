// Package permissions provides the two role-to-capability calculators:
// the general CRM hierarchy (admin > manager > user > viewer) and the
// timesheet-specific hierarchy (admin > owner > user). Both are pure
// rank comparisons over fixed ordered lists.
package permissions

// General CRM roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
	RoleViewer  = "viewer"
)

// roleHierarchy orders general roles from most to least privileged
var roleHierarchy = []string{RoleAdmin, RoleManager, RoleUser, RoleViewer}

// roleLabels maps general roles to display labels
var roleLabels = map[string]string{
	RoleAdmin:   "Admin",
	RoleManager: "Manager",
	RoleUser:    "User",
	RoleViewer:  "Viewer",
}

// RoleLabel returns the display label for a general role, falling back
// to the raw role string
func RoleLabel(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return role
}

// roleRank returns the role's position in the hierarchy. Unrecognized
// roles rank below every known role and are granted nothing.
func roleRank(role string) int {
	for i, r := range roleHierarchy {
		if r == role {
			return i
		}
	}
	return len(roleHierarchy)
}

// hasMinRole reports whether role is at least as privileged as minRole
func hasMinRole(role, minRole string) bool {
	return roleRank(role) <= roleRank(minRole)
}

// CanEdit reports whether the role can create/edit entities (user or above)
func CanEdit(role string) bool {
	return hasMinRole(role, RoleUser)
}

// CanDelete reports whether the role can delete entities (manager or above)
func CanDelete(role string) bool {
	return hasMinRole(role, RoleManager)
}

// CanManageUsers reports whether the role can manage users (admin only)
func CanManageUsers(role string) bool {
	return hasMinRole(role, RoleAdmin)
}

// CanManageGroups reports whether the role can manage groups (admin only)
func CanManageGroups(role string) bool {
	return hasMinRole(role, RoleAdmin)
}

// CanManageInvitations reports whether the role can manage invitations
// (manager or above)
func CanManageInvitations(role string) bool {
	return hasMinRole(role, RoleManager)
}

// CanViewAuditLog reports whether the role can view audit logs
// (manager or above)
func CanViewAuditLog(role string) bool {
	return hasMinRole(role, RoleManager)
}

// CanViewSettings reports whether the role can view the settings page
// (admin only)
func CanViewSettings(role string) bool {
	return hasMinRole(role, RoleAdmin)
}

// IsAdmin reports whether the role is exactly admin
func IsAdmin(role string) bool {
	return role == RoleAdmin
}

// Permissions is the composite capability set derived from a general role
type Permissions struct {
	Role              string `json:"role"`
	Edit              bool   `json:"edit"`
	Delete            bool   `json:"delete"`
	ManageUsers       bool   `json:"manage_users"`
	ManageGroups      bool   `json:"manage_groups"`
	ManageInvitations bool   `json:"manage_invitations"`
	ViewAuditLog      bool   `json:"view_audit_log"`
	ViewSettings      bool   `json:"view_settings"`
	IsAdmin           bool   `json:"is_admin"`
}

// Build derives the full capability set for a general role
func Build(role string) Permissions {
	return Permissions{
		Role:              role,
		Edit:              CanEdit(role),
		Delete:            CanDelete(role),
		ManageUsers:       CanManageUsers(role),
		ManageGroups:      CanManageGroups(role),
		ManageInvitations: CanManageInvitations(role),
		ViewAuditLog:      CanViewAuditLog(role),
		ViewSettings:      CanViewSettings(role),
		IsAdmin:           IsAdmin(role),
	}
}
