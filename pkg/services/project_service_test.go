package services

import (
	"context"
	"testing"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/models"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("creates project with defaults", func(t *testing.T) {
		created, err := service.CreateProject(ctx, models.CreateProjectRequest{
			TenantID: "tenant-1",
			Name:     "checkout-service",
			RepoURL:  "https://github.com/forgeworks/checkout-service",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "main", created.DefaultBranch)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateProjectRequest
		}{
			{
				name: "missing tenant_id",
				req:  models.CreateProjectRequest{Name: "x", RepoURL: "https://example.com/r"},
			},
			{
				name: "missing name",
				req:  models.CreateProjectRequest{TenantID: "tenant-1", RepoURL: "https://example.com/r"},
			},
			{
				name: "missing repo_url",
				req:  models.CreateProjectRequest{TenantID: "tenant-1", Name: "x"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateProject(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate project_id", func(t *testing.T) {
		req := models.CreateProjectRequest{
			ProjectID: uuid.New().String(),
			TenantID:  "tenant-1",
			Name:      "dup",
			RepoURL:   "https://example.com/dup",
		}
		_, err := service.CreateProject(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateProject(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestProjectService_GetProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	seeded := seedProject(t, client.Client)

	t.Run("found", func(t *testing.T) {
		got, err := service.GetProject(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetProject(ctx, "no-such-project")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists oldest first", func(t *testing.T) {
		projects, err := service.ListProjects(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, projects)
		assert.Equal(t, seeded.ID, projects[0].ID)
	})
}

func TestEffectiveSettings(t *testing.T) {
	t.Run("ticket overrides win", func(t *testing.T) {
		p := &ent.Project{
			Settings: map[string]any{
				"linter":       "golangci-lint",
				"coverage_min": 0.7,
			},
		}
		merged, err := EffectiveSettings(p, map[string]any{
			"coverage_min": 0.9,
			"flags":        []any{"-race"},
		})
		require.NoError(t, err)
		assert.Equal(t, "golangci-lint", merged["linter"])
		assert.Equal(t, 0.9, merged["coverage_min"])
		assert.Equal(t, []any{"-race"}, merged["flags"])

		// Inputs are untouched.
		assert.Equal(t, 0.7, p.Settings["coverage_min"])
	})

	t.Run("nil inputs", func(t *testing.T) {
		merged, err := EffectiveSettings(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, merged)

		merged, err = EffectiveSettings(&ent.Project{}, map[string]any{"a": "b"})
		require.NoError(t, err)
		assert.Equal(t, "b", merged["a"])
	})
}
