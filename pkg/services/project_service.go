package services

import (
	"context"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/google/uuid"
)

// ProjectService handles project persistence and settings resolution.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject registers a project so tickets can be filed against it.
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.RepoURL == "" {
		return nil, NewValidationError("repo_url", "required")
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(projectID).
		SetTenantID(req.TenantID).
		SetName(req.Name).
		SetRepoURL(req.RepoURL)
	if req.DefaultBranch != "" {
		builder.SetDefaultBranch(req.DefaultBranch)
	}
	if req.Settings != nil {
		builder.SetSettings(req.Settings)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by id.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	p, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects, oldest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// EffectiveSettings merges ticket-level inputs over the project settings.
// Ticket values win on conflict; neither input map is mutated.
func EffectiveSettings(p *ent.Project, overrides map[string]any) (map[string]any, error) {
	merged := map[string]any{}
	if p != nil && p.Settings != nil {
		if err := mergo.Merge(&merged, p.Settings); err != nil {
			return nil, fmt.Errorf("failed to merge project settings: %w", err)
		}
	}
	if overrides != nil {
		if err := mergo.Merge(&merged, overrides, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge ticket overrides: %w", err)
		}
	}
	return merged, nil
}
