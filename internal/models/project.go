package models

// Project types. Deal, pitch and idea records come from the fixed CRM
// catalog; internal projects are derived live from active internal
// activities.
const (
	ProjectTypeDeal     = "deal"
	ProjectTypePitch    = "pitch"
	ProjectTypeIdea     = "idea"
	ProjectTypeInternal = "internal"
)

// ProjectTypeOrder is the display ordering for grouped catalogs
var ProjectTypeOrder = []string{
	ProjectTypeDeal,
	ProjectTypePitch,
	ProjectTypeIdea,
	ProjectTypeInternal,
}

// ValidProjectTypes defines allowed project types
var ValidProjectTypes = map[string]bool{
	ProjectTypeDeal:     true,
	ProjectTypePitch:    true,
	ProjectTypeIdea:     true,
	ProjectTypeInternal: true,
}

// ProjectTypeLabels maps project types to display labels
var ProjectTypeLabels = map[string]string{
	ProjectTypeDeal:     "Deal",
	ProjectTypePitch:    "Pitch",
	ProjectTypeIdea:     "Idea",
	ProjectTypeInternal: "Internal",
}

// Project is a read-only reference entity employees log hours against.
// A project is addressed by the composite key (type, id): two types may
// reuse ids without collision because the type is always carried alongside.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Status    string `json:"status,omitempty"`
}

// Ref returns the project's composite key
func (p Project) Ref() ProjectRef {
	return ProjectRef{Type: p.Type, ID: p.ID}
}

// ProjectRef is the composite (type, id) key addressing a project
type ProjectRef struct {
	Type string `json:"project_type"`
	ID   string `json:"project_id"`
}

// Key returns the "type:id" form used for map lookups
func (r ProjectRef) Key() string {
	return r.Type + ":" + r.ID
}

// ProjectCatalog exposes the catalog both flat and grouped by type,
// matching what selection UIs need.
type ProjectCatalog struct {
	All     []Project            `json:"all"`
	Grouped map[string][]Project `json:"grouped"`
}
