package permissions

import (
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		role string
		want Permissions
	}{
		{
			role: "admin",
			want: Permissions{
				Role: "admin", Edit: true, Delete: true,
				ManageUsers: true, ManageGroups: true, ManageInvitations: true,
				ViewAuditLog: true, ViewSettings: true, IsAdmin: true,
			},
		},
		{
			role: "manager",
			want: Permissions{
				Role: "manager", Edit: true, Delete: true,
				ManageInvitations: true, ViewAuditLog: true,
			},
		},
		{
			role: "user",
			want: Permissions{Role: "user", Edit: true},
		},
		{
			role: "viewer",
			want: Permissions{Role: "viewer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := Build(tt.role)
			if got != tt.want {
				t.Errorf("Build(%q) = %+v, want %+v", tt.role, got, tt.want)
			}
		})
	}
}

func TestBuild_UnrecognizedRole(t *testing.T) {
	// An unknown role ranks below every known role and gets nothing
	got := Build("guest")

	if got.Edit || got.Delete || got.ManageUsers || got.ManageGroups ||
		got.ManageInvitations || got.ViewAuditLog || got.ViewSettings || got.IsAdmin {
		t.Errorf("Build(\"guest\") should grant no capabilities, got %+v", got)
	}
}

func TestBuild_EmptyRole(t *testing.T) {
	got := Build("")

	if got.Edit || got.Delete || got.IsAdmin {
		t.Errorf("Build(\"\") should grant no capabilities, got %+v", got)
	}
}

func TestBuildTimesheet_Owner(t *testing.T) {
	// Owner gets elevated read (ViewAll) but none of the admin-only
	// write capabilities
	got := BuildTimesheet("owner")

	if !got.ViewAll {
		t.Error("owner should have ViewAll")
	}
	if got.ManageActivities {
		t.Error("owner should not have ManageActivities")
	}
	if got.EditAny {
		t.Error("owner should not have EditAny")
	}
	if got.DeleteAny {
		t.Error("owner should not have DeleteAny")
	}
	if got.IsAdmin {
		t.Error("owner should not be admin")
	}
}

func TestBuildTimesheet(t *testing.T) {
	tests := []struct {
		role string
		want TimesheetPermissions
	}{
		{
			role: "admin",
			want: TimesheetPermissions{
				Role: "admin", ViewAll: true, ManageActivities: true,
				EditAny: true, DeleteAny: true, IsAdmin: true,
			},
		},
		{
			role: "owner",
			want: TimesheetPermissions{Role: "owner", ViewAll: true},
		},
		{
			role: "user",
			want: TimesheetPermissions{Role: "user"},
		},
		{
			role: "guest",
			want: TimesheetPermissions{Role: "guest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := BuildTimesheet(tt.role)
			if got != tt.want {
				t.Errorf("BuildTimesheet(%q) = %+v, want %+v", tt.role, got, tt.want)
			}
		})
	}
}

func TestRoleLabel(t *testing.T) {
	if got := RoleLabel("manager"); got != "Manager" {
		t.Errorf("RoleLabel(\"manager\") = %q, want \"Manager\"", got)
	}
	// Unknown roles fall back to the raw string
	if got := RoleLabel("guest"); got != "guest" {
		t.Errorf("RoleLabel(\"guest\") = %q, want \"guest\"", got)
	}
	if got := TimesheetRoleLabel("owner"); got != "Owner" {
		t.Errorf("TimesheetRoleLabel(\"owner\") = %q, want \"Owner\"", got)
	}
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Build("manager")
	}
}

func BenchmarkBuildTimesheet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildTimesheet("owner")
	}
}
