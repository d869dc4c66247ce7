package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/models"
)

// seedClaimable files one ticket over HTTP and activates its build, leaving
// the ticket claimable in the ready pool. Returns the ticket id.
func seedClaimable(t *testing.T, s *Server, metadata string) string {
	t.Helper()

	rec := doJSON(s, http.MethodPost, "/api/v1/projects",
		`{"project_id":"checkout-service","tenant_id":"tenant-1","name":"Checkout Service",
		  "repo_url":"https://forge.example.com/acme/checkout.git",
		  "settings":{"linter":"golangci","base_branch":"main"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := `{"ticket_id":"t-1","tenant_id":"tenant-1","project_id":"checkout-service",
	          "build_id":"build-7","title":"Add idempotency key to POST /orders"`
	if metadata != "" {
		body += `,"metadata":` + metadata
	}
	body += `}`
	rec = doJSON(s, http.MethodPost, "/api/v1/tickets", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(s, http.MethodPost, "/api/v1/builds/build-7/activate", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var counts models.ActivationCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	require.Equal(t, 1, counts.Ready)
	return "t-1"
}

func TestClaimRequiresAgentID(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "agent_id is required")
}

func TestClaimEmptyPoolReturnsBackoff(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ClaimResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Ticket)
	assert.Equal(t, int64(1000), resp.RetryAfterMS)
}

func TestAgentLifecycleOverHTTP(t *testing.T) {
	s, dbClient := newTestServer(t)
	ctx := context.Background()
	id := seedClaimable(t, s, `{"linter":"revive"}`)

	// Claim: the ticket goes straight to in_progress with the project
	// payload attached. Ticket metadata wins the settings merge.
	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var claim models.ClaimResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claim))
	require.NotNil(t, claim.Ticket)
	assert.Equal(t, id, claim.Ticket.ID)
	assert.Equal(t, ticket.StateInProgress, claim.Ticket.State)
	require.NotNil(t, claim.Project)
	assert.Equal(t, "revive", claim.Settings["linter"])
	assert.Equal(t, "main", claim.Settings["base_branch"])

	// Start confirms the working branch.
	rec = doJSON(s, http.MethodPost, "/api/v1/agent/start",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1","branch_name":"forge/t-1-idempotency"}`, id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Heartbeat extends the lease and appends progress.
	rec = doJSON(s, http.MethodPost, "/api/v1/agent/heartbeat",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1","progress":"tests green locally"}`, id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Complete lands the ticket in verifying with the report recorded.
	rec = doJSON(s, http.MethodPost, "/api/v1/agent/complete",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1","pr_url":"https://forge.example.com/acme/checkout/pulls/41",
		              "files_involved":["internal/orders/handler.go"]}`, id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	row, err := dbClient.Ticket.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateVerifying, row.State)
	require.NotNil(t, row.BranchName)
	assert.Equal(t, "forge/t-1-idempotency", *row.BranchName)
	require.NotNil(t, row.PrURL)
	assert.NotNil(t, row.VMID, "the slot stays bound until verification lands")
	require.Contains(t, row.Outputs, "files_involved")

	// A duplicate completion report is a no-op, not an error.
	rec = doJSON(s, http.MethodPost, "/api/v1/agent/complete",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1"}`, id))
	require.Equal(t, http.StatusOK, rec.Code)

	var ack AckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "verifying", ack.Status)
}

func TestCompleteWithoutBranchRejected(t *testing.T) {
	s, _ := newTestServer(t)
	id := seedClaimable(t, s, "")

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// No branch confirmed via start, and none in the report: nothing was
	// pushed, so there is nothing to verify.
	rec = doJSON(s, http.MethodPost, "/api/v1/agent/complete",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1"}`, id))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "branch_name is required")
}

func TestCompleteFromWrongAgentForbidden(t *testing.T) {
	s, dbClient := newTestServer(t)
	ctx := context.Background()
	id := seedClaimable(t, s, "")

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/v1/agent/complete",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-2","branch_name":"forge/stolen"}`, id))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	row, err := dbClient.Ticket.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInProgress, row.State, "the owner's work is untouched")
}

func TestHeartbeatWithoutLeaseIs404(t *testing.T) {
	s, _ := newTestServer(t)
	id := seedClaimable(t, s, "")

	// Nobody claimed the ticket; there is no lease to extend.
	rec := doJSON(s, http.MethodPost, "/api/v1/agent/heartbeat",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1"}`, id))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReleaseReturnsTicketToPool(t *testing.T) {
	s, dbClient := newTestServer(t)
	ctx := context.Background()
	id := seedClaimable(t, s, "")

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/v1/agent/release",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1","reason":"shutting down"}`, id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	row, err := dbClient.Ticket.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, row.State)
	assert.Nil(t, row.VMID)
	assert.Nil(t, row.LeaseExpires)
	assert.Equal(t, 0, row.RetryCount, "a voluntary yield spends no retry budget")

	// Another agent can pick the ticket right back up.
	rec = doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var claim models.ClaimResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claim))
	require.NotNil(t, claim.Ticket)
	assert.Equal(t, id, claim.Ticket.ID)
}

func TestFailSchedulesRetryOverHTTP(t *testing.T) {
	s, dbClient := newTestServer(t)
	ctx := context.Background()
	id := seedClaimable(t, s, "")

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/v1/agent/fail",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1","error_message":"git push: connection reset by peer"}`, id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ack AckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, string(ticket.StateReady), ack.Status)

	row, err := dbClient.Ticket.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, row.State)
	assert.Equal(t, 1, row.RetryCount, "the reported attempt is spent")
	assert.Nil(t, row.VMID)
}

func TestFailOnAmbiguityHoldsWithoutSpendingBudget(t *testing.T) {
	s, dbClient := newTestServer(t)
	ctx := context.Background()
	id := seedClaimable(t, s, "")

	rec := doJSON(s, http.MethodPost, "/api/v1/agent/claim", `{"agent_id":"agent-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/v1/agent/fail",
		fmt.Sprintf(`{"ticket_id":%q,"agent_id":"agent-1","error_message":"specification unclear: which currency rounds first?"}`, id))
	require.Equal(t, http.StatusOK, rec.Code)

	var ack AckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, string(ticket.StateOnHold), ack.Status)

	row, err := dbClient.Ticket.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, row.State)
	assert.Equal(t, 0, row.RetryCount)
	require.NotNil(t, row.HoldReason)
	assert.Equal(t, "specification ambiguity reported by agent", *row.HoldReason)
}

func TestFailValidation(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing ticket_id", `{"agent_id":"agent-1","error_message":"x"}`, "ticket_id is required"},
		{"missing agent_id", `{"ticket_id":"t-1","error_message":"x"}`, "agent_id is required"},
		{"missing error_message", `{"ticket_id":"t-1","agent_id":"agent-1"}`, "error_message is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(s, http.MethodPost, "/api/v1/agent/fail", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
