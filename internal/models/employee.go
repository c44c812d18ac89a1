package models

// Employee represents a member of the firm's roster
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// EmployeeSummary is the compact identity attached to team view rows
type EmployeeSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// UnknownEmployee is the placeholder identity used when an employee id
// on a stored week no longer resolves against the roster
func UnknownEmployee(id string) EmployeeSummary {
	return EmployeeSummary{ID: id, Name: "Unknown", Initials: "??"}
}
