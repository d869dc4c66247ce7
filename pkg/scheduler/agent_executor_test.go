package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/vmpool"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentExecutor_Execute(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetName("checkout-service").
		SetRepoURL("https://github.com/forgeworks/checkout-service").
		SetDefaultBranch("trunk").
		SetSettings(map[string]any{
			"linter":       "golangci-lint",
			"coverage_min": 0.7,
		}).
		Save(ctx)
	require.NoError(t, err)

	executor := NewAgentExecutor(services.NewProjectService(client))

	newTicket := func(mutate func(*ent.TicketCreate)) *ent.Ticket {
		return seedDirectTicket(t, client, project.ID, ticket.StateInProgress, mutate)
	}

	t.Run("posts the work order and returns the branch", func(t *testing.T) {
		var got executePayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/execute", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(executeResponse{
				BranchName: "forge/" + got.TicketID,
				Outputs:    map[string]any{"files_changed": 3},
			})
		}))
		defer server.Close()

		row := newTicket(func(b *ent.TicketCreate) {
			b.SetTitle("Add retry to payment client").
				SetDescription("Wrap the client.").
				SetAcceptanceCriteria("Retries transient errors.").
				SetMetadata(map[string]any{"coverage_min": 0.9}).
				SetInputs(map[string]any{"parent_branch": "forge/epic-1"})
		})

		result := executor.Execute(ctx, row, &vmpool.Slot{ID: "vm-1", Endpoint: server.URL})
		require.NotNil(t, result)
		require.NoError(t, result.Error)
		assert.Equal(t, "forge/"+row.ID, result.BranchName)
		assert.EqualValues(t, 3, result.Outputs["files_changed"])

		assert.Equal(t, row.ID, got.TicketID)
		assert.Equal(t, "Add retry to payment client", got.Title)
		assert.Equal(t, "https://github.com/forgeworks/checkout-service", got.RepoURL)
		assert.Equal(t, "trunk", got.DefaultBranch)
		assert.EqualValues(t, "forge/epic-1", got.Inputs["parent_branch"])
		// Ticket metadata overrides the project defaults.
		assert.Equal(t, "golangci-lint", got.Settings["linter"])
		assert.EqualValues(t, 0.9, got.Settings["coverage_min"])
	})

	t.Run("agent error field becomes the result error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(executeResponse{
				Error: "tests failed: TestCheckout_Retry",
			})
		}))
		defer server.Close()

		result := executor.Execute(ctx, newTicket(nil), &vmpool.Slot{ID: "vm-1", Endpoint: server.URL})
		require.NotNil(t, result)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "tests failed")
	})

	t.Run("http error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "agent crashed", http.StatusInternalServerError)
		}))
		defer server.Close()

		result := executor.Execute(ctx, newTicket(nil), &vmpool.Slot{ID: "vm-1", Endpoint: server.URL})
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "500")
		assert.Contains(t, result.Error.Error(), "agent crashed")
	})

	t.Run("success without a branch is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(executeResponse{Outputs: map[string]any{"note": "forgot to push"}})
		}))
		defer server.Close()

		result := executor.Execute(ctx, newTicket(nil), &vmpool.Slot{ID: "vm-1", Endpoint: server.URL})
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "without a branch")
	})

	t.Run("missing endpoint is an error", func(t *testing.T) {
		result := executor.Execute(ctx, newTicket(nil), &vmpool.Slot{ID: "vm-1"})
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "no agent endpoint")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))
		defer server.Close()

		execCtx, cancel := context.WithCancel(ctx)
		go func() {
			<-started
			cancel()
		}()

		result := executor.Execute(execCtx, newTicket(nil), &vmpool.Slot{ID: "vm-1", Endpoint: server.URL})
		require.Error(t, result.Error)
		assert.ErrorIs(t, result.Error, context.Canceled)
	})
}
