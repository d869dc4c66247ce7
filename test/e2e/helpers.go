package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/models"
)

// ────────────────────────────────────────────────────────────
// HTTP client helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) do(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// postAs posts body and decodes the response into out (skipped when nil).
func (app *TestApp) postAs(t *testing.T, path string, body, out interface{}, expectedStatus int) {
	t.Helper()
	resp, raw := app.do(t, http.MethodPost, path, body)
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status, body %s", path, raw)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "POST %s: bad response body %s", path, raw)
	}
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	app.postAs(t, path, body, &result, expectedStatus)
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	resp, raw := app.do(t, http.MethodGet, path, nil)
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status, body %s", path, raw)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

// ────────────────────────────────────────────────────────────
// Seeding helpers
// ────────────────────────────────────────────────────────────

// CreateProject registers a project over the API and returns its id.
func (app *TestApp) CreateProject(t *testing.T, projectID string) string {
	t.Helper()
	app.postAs(t, "/api/v1/projects", models.CreateProjectRequest{
		ProjectID:     projectID,
		TenantID:      "tenant-1",
		Name:          "Checkout Service",
		RepoURL:       "https://github.com/forgeworks/checkout-service",
		DefaultBranch: "main",
		Settings:      map[string]any{"linter": "golangci", "base_branch": "main"},
	}, nil, http.StatusCreated)
	return projectID
}

// CreateTicket posts one ticket and returns its id.
func (app *TestApp) CreateTicket(t *testing.T, req models.CreateTicketRequest) string {
	t.Helper()
	if req.TenantID == "" {
		req.TenantID = "tenant-1"
	}
	var created ent.Ticket
	app.postAs(t, "/api/v1/tickets", req, &created, http.StatusCreated)
	require.NotEmpty(t, created.ID)
	return created.ID
}

// ActivateBuild flips a build's drafts live and returns the counts.
func (app *TestApp) ActivateBuild(t *testing.T, buildID string) models.ActivationCounts {
	t.Helper()
	var counts models.ActivationCounts
	app.postAs(t, "/api/v1/builds/"+buildID+"/activate", nil, &counts, http.StatusOK)
	return counts
}

// ────────────────────────────────────────────────────────────
// State helpers
// ────────────────────────────────────────────────────────────

// TicketRow reads the ticket straight from the database.
func (app *TestApp) TicketRow(t *testing.T, ticketID string) *ent.Ticket {
	t.Helper()
	row, err := app.EntClient.Ticket.Get(context.Background(), ticketID)
	require.NoError(t, err)
	return row
}

// WaitForTicketState polls the DB until the ticket reaches one of the
// expected states.
func (app *TestApp) WaitForTicketState(t *testing.T, ticketID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		row, err := app.EntClient.Ticket.Get(context.Background(), ticketID)
		if err != nil {
			return false
		}
		actual = string(row.State)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 50*time.Millisecond,
		"ticket %s did not reach state %v (last: %s)", ticketID, expected, actual)
	return actual
}

// TicketEvents returns the ticket's full event log oldest first.
func (app *TestApp) TicketEvents(t *testing.T, ticketID string) []*ent.TicketEvent {
	t.Helper()
	events, err := app.Events.ListForTicket(context.Background(), ticketID, 0)
	require.NoError(t, err)
	return events
}

// HasEvent reports whether the ticket's log holds an event of the given kind
// whose message contains the substring.
func (app *TestApp) HasEvent(t *testing.T, ticketID string, kind ticketevent.Kind, contains string) bool {
	t.Helper()
	for _, evt := range app.TicketEvents(t, ticketID) {
		if evt.Kind == kind && (contains == "" || strings.Contains(evt.Message, contains)) {
			return true
		}
	}
	return false
}

// ────────────────────────────────────────────────────────────
// Pull agent driver
// ────────────────────────────────────────────────────────────

// PullAgent drives the agent surface the way a coding agent binary does.
type PullAgent struct {
	app *TestApp
	ID  string
}

// Agent returns a driver for the given agent id.
func (app *TestApp) Agent(id string) *PullAgent {
	return &PullAgent{app: app, ID: id}
}

// Claim makes one claim call and returns the parsed response. A null ticket
// with a backoff hint is a valid answer.
func (a *PullAgent) Claim(t *testing.T) *models.ClaimResponse {
	t.Helper()
	var resp models.ClaimResponse
	a.app.postAs(t, "/api/v1/agent/claim", models.ClaimRequest{AgentID: a.ID}, &resp, http.StatusOK)
	return &resp
}

// ClaimTicket polls the claim endpoint until a ticket arrives, honoring the
// not-before gates retried tickets carry.
func (a *PullAgent) ClaimTicket(t *testing.T) *models.ClaimResponse {
	t.Helper()
	var resp *models.ClaimResponse
	require.Eventually(t, func() bool {
		resp = a.Claim(t)
		return resp.Ticket != nil
	}, 10*time.Second, 50*time.Millisecond, "agent %s never got a ticket", a.ID)
	return resp
}

// ClaimReviewTicket polls the sentinel review pool.
func (a *PullAgent) ClaimReviewTicket(t *testing.T) *models.ClaimResponse {
	t.Helper()
	var resp *models.ClaimResponse
	require.Eventually(t, func() bool {
		resp = &models.ClaimResponse{}
		a.app.postAs(t, "/api/v1/agent/claim", models.ClaimRequest{
			AgentID: a.ID,
			Filter:  &models.ClaimFilter{State: "in_review"},
		}, resp, http.StatusOK)
		return resp.Ticket != nil
	}, 10*time.Second, 50*time.Millisecond, "agent %s never got a review ticket", a.ID)
	return resp
}

// Start confirms the working branch.
func (a *PullAgent) Start(t *testing.T, ticketID, branch string) {
	t.Helper()
	a.app.postAs(t, "/api/v1/agent/start", models.StartRequest{
		TicketID:   ticketID,
		AgentID:    a.ID,
		BranchName: branch,
	}, nil, http.StatusOK)
}

// Heartbeat extends the lease with an optional progress line.
func (a *PullAgent) Heartbeat(t *testing.T, ticketID, progress string) {
	t.Helper()
	a.app.postAs(t, "/api/v1/agent/heartbeat", models.HeartbeatRequest{
		AgentID:  a.ID,
		TicketID: ticketID,
		Progress: progress,
	}, nil, http.StatusOK)
}

// Complete reports the pushed branch; the ticket moves to verifying.
func (a *PullAgent) Complete(t *testing.T, ticketID, branch string) {
	t.Helper()
	a.app.postAs(t, "/api/v1/agent/complete", models.CompleteRequest{
		AgentID:       a.ID,
		TicketID:      ticketID,
		BranchName:    branch,
		FilesInvolved: []string{"internal/payment/client.go"},
	}, nil, http.StatusOK)
}

// Fail reports a failed attempt and returns the state the ticket landed in.
func (a *PullAgent) Fail(t *testing.T, ticketID, errorMessage string) string {
	t.Helper()
	result := a.app.postJSON(t, "/api/v1/agent/fail", models.FailRequest{
		TicketID:     ticketID,
		AgentID:      a.ID,
		ErrorMessage: errorMessage,
	}, http.StatusOK)
	status, _ := result["status"].(string)
	return status
}

// Release hands the ticket back without failing it.
func (a *PullAgent) Release(t *testing.T, ticketID, reason string) {
	t.Helper()
	a.app.postAs(t, "/api/v1/agent/release", models.ReleaseRequest{
		TicketID: ticketID,
		AgentID:  a.ID,
		Reason:   reason,
	}, nil, http.StatusOK)
}

// WorkTicket claims the next ticket and drives it through start, one
// progress heartbeat, and completion. Returns the ticket id.
func (a *PullAgent) WorkTicket(t *testing.T) string {
	t.Helper()
	claim := a.ClaimTicket(t)
	id := claim.Ticket.ID
	branch := fmt.Sprintf("forge/%s-work", id)
	a.Start(t, id, branch)
	a.Heartbeat(t, id, "implementation pushed, running local checks")
	a.Complete(t, id, branch)
	return id
}
