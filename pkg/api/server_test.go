package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/scheduler"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
)

// newWiredServer builds a server with every injectable dependency present.
// The inner clients are nil; wiring validation never dereferences them.
func newWiredServer() *Server {
	s := NewServer(
		config.Default(),
		&database.Client{},
		services.NewTicketService(nil),
		services.NewProjectService(nil),
		nil, // scheduler optional
		nil, // pipeline optional
	)
	s.SetArtifactService(services.NewArtifactService(nil))
	s.SetEventService(services.NewEventService(nil))
	s.SetFailureRouter(&scheduler.FailureRouter{})
	return s
}

func TestValidateWiring(t *testing.T) {
	t.Run("fully wired passes", func(t *testing.T) {
		assert.NoError(t, newWiredServer().ValidateWiring())
	})

	t.Run("scheduler and pipeline are optional", func(t *testing.T) {
		s := newWiredServer()
		s.sched = nil
		s.pipeline = nil
		assert.NoError(t, s.ValidateWiring())
	})

	tests := []struct {
		name      string
		mutate    func(*Server)
		expectMsg string
	}{
		{
			name:      "missing config",
			mutate:    func(s *Server) { s.cfg = nil },
			expectMsg: "config not set",
		},
		{
			name:      "missing database client",
			mutate:    func(s *Server) { s.dbClient = nil },
			expectMsg: "database client not set",
		},
		{
			name:      "missing ticket service",
			mutate:    func(s *Server) { s.tickets = nil },
			expectMsg: "ticket service not set",
		},
		{
			name:      "missing project service",
			mutate:    func(s *Server) { s.projects = nil },
			expectMsg: "project service not set",
		},
		{
			name:      "missing artifact service",
			mutate:    func(s *Server) { s.artifacts = nil },
			expectMsg: "SetArtifactService",
		},
		{
			name:      "missing event service",
			mutate:    func(s *Server) { s.events = nil },
			expectMsg: "SetEventService",
		},
		{
			name:      "missing failure router",
			mutate:    func(s *Server) { s.failures = nil },
			expectMsg: "SetFailureRouter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newWiredServer()
			tt.mutate(s)
			err := s.ValidateWiring()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectMsg)
		})
	}
}

// newTestServer wires a server against a real test database. Scheduler and
// pipeline stay nil; the handlers under test degrade the way an ingress-only
// deployment does.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	tickets := services.NewTicketService(dbClient.Client)
	projects := services.NewProjectService(dbClient.Client)

	s := NewServer(config.Default(), dbClient, tickets, projects, nil, nil)
	s.SetArtifactService(services.NewArtifactService(dbClient.Client))
	s.SetEventService(services.NewEventService(dbClient.Client))
	s.SetFailureRouter(scheduler.NewFailureRouter(tickets, nil, nil))
	require.NoError(t, s.ValidateWiring())
	return s, dbClient
}

// doJSON drives a request through the full middleware and routing stack.
func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestServerRoutingSmoke(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("health reports healthy without a scheduler", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.NotNil(t, resp.Database)
		assert.Nil(t, resp.Engine)
	})

	t.Run("status reports a non-running engine", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/status", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Engine.Running)
	})

	t.Run("unknown ticket returns 404", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets/no-such-ticket", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("projects round trip", func(t *testing.T) {
		rec := doJSON(s, http.MethodPost, "/api/v1/projects",
			`{"project_id":"checkout-service","tenant_id":"tenant-1","name":"Checkout Service","repo_url":"https://forge.example.com/acme/checkout.git"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(s, http.MethodGet, "/api/v1/projects/checkout-service", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(s, http.MethodGet, "/api/v1/projects", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp ProjectsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Projects, 1)
	})
}
