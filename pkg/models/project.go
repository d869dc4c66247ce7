package models

// CreateProjectRequest registers the repository a ticket batch executes
// against.
type CreateProjectRequest struct {
	ProjectID     string         `json:"project_id,omitempty"`
	TenantID      string         `json:"tenant_id"`
	Name          string         `json:"name"`
	RepoURL       string         `json:"repo_url,omitempty"`
	DefaultBranch string         `json:"default_branch,omitempty"`
	Settings      map[string]any `json:"settings,omitempty"`
}
