package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/services"
)

// TestE2E_PullAgentLifecycle walks one ticket through the whole happy path
// over the public API: ingest, activation, claim, branch confirmation,
// progress heartbeat, completion, verification, PR submission, sentinel
// review, approval.
func TestE2E_PullAgentLifecycle(t *testing.T) {
	app := NewTestApp(t)

	// Phase 1: ingest and activate.
	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:           "PAY-101",
		ProjectID:          "proj-payments",
		BuildID:            "build-alpha",
		Title:              "Add idempotency keys to the charge endpoint",
		Description:        "Duplicate submissions currently double-charge.",
		AcceptanceCriteria: "POST /charge with a repeated Idempotency-Key returns the original charge.",
		Size:               "small",
	})

	require.Equal(t, "draft", string(app.TicketRow(t, id).State), "tickets must land in draft")

	counts := app.ActivateBuild(t, "build-alpha")
	require.Equal(t, models.ActivationCounts{Ready: 1}, counts)

	row := app.TicketRow(t, id)
	require.Equal(t, "ready", string(row.State))
	require.NotNil(t, row.AssigneeID)
	assert.Equal(t, lifecycle.ForgeAgent, *row.AssigneeID)

	// Activation is idempotent.
	require.Equal(t, models.ActivationCounts{}, app.ActivateBuild(t, "build-alpha"))

	// Phase 2: claim. The response carries the project and the merged
	// settings so the agent needs no second round trip.
	agent := app.Agent("agent-1")
	claim := agent.ClaimTicket(t)
	require.Equal(t, id, claim.Ticket.ID)
	require.NotNil(t, claim.Project)
	assert.Equal(t, "proj-payments", claim.Project.ID)
	assert.Equal(t, "golangci", claim.Settings["linter"])

	row = app.TicketRow(t, id)
	assert.Equal(t, "in_progress", string(row.State))
	require.NotNil(t, row.VMID)
	assert.Equal(t, services.AgentSlotPrefix+"agent-1", *row.VMID, "pull claims bind a surrogate slot id")
	require.NotNil(t, row.LeaseExpires)

	// The pool is now empty: a second agent gets a null ticket and a
	// backoff hint, not an error.
	idle := app.Agent("agent-2").Claim(t)
	require.Nil(t, idle.Ticket)
	assert.Positive(t, idle.RetryAfterMS)

	// Phase 3: work. Branch confirmation and a progress heartbeat.
	agent.Start(t, id, "forge/pay-101-idempotency")
	row = app.TicketRow(t, id)
	require.NotNil(t, row.BranchName)
	assert.Equal(t, "forge/pay-101-idempotency", *row.BranchName)

	agent.Heartbeat(t, id, "charge handler reworked, adding tests")
	assert.True(t, app.HasEvent(t, id, ticketevent.KindProgress, "adding tests"))

	// Phase 4: completion hands the ticket to the verification pipeline.
	// The scripted verifier passes by default, so the pipeline mints a PR
	// and parks the ticket in review.
	agent.Complete(t, id, "forge/pay-101-idempotency")
	app.WaitForTicketState(t, id, "in_review")

	row = app.TicketRow(t, id)
	require.NotNil(t, row.PrURL)
	assert.Equal(t, "https://github.com/forgeworks/checkout-service/pull/1", *row.PrURL)
	require.NotNil(t, row.AssigneeID)
	assert.Equal(t, lifecycle.SentinelAgent, *row.AssigneeID, "review rows belong to the sentinel")
	require.NotNil(t, row.VerificationStatus)
	assert.Equal(t, ticket.VerificationStatusPassed, *row.VerificationStatus)
	assert.Nil(t, row.VMID, "dispatch binding is cleared once verification lands")

	// The verifier saw the branch and the acceptance criteria, first attempt.
	require.Equal(t, 1, app.Verifier.RequestCount())
	vreq := app.Verifier.Requests()[0]
	assert.Equal(t, id, vreq.TicketID)
	assert.Equal(t, 1, vreq.Attempt)
	assert.Equal(t, "forge/pay-101-idempotency", vreq.BranchName)
	assert.Contains(t, vreq.AcceptanceCriteria, "Idempotency-Key")

	// The PR targets the project's default branch.
	require.Equal(t, 1, app.Forge.RequestCount())
	preq := app.Forge.Requests()[0]
	assert.Equal(t, "https://github.com/forgeworks/checkout-service", preq.RepoURL)
	assert.Equal(t, "main", preq.BaseBranch)
	assert.Equal(t, "forge/pay-101-idempotency", preq.Branch)

	// Passing verification leaves an evidence artifact.
	evidence, err := app.Artifacts.ListForTicket(context.Background(), id, ticketartifact.KindVerificationEvidence)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Equal(t, 1, evidence[0].Attempt)

	// Phase 5: sentinel review. The review claim is a read-only lookup:
	// the row already belongs to the sentinel and stays in_review.
	sentinel := app.Agent("sentinel-1")
	review := sentinel.ClaimReviewTicket(t)
	require.Equal(t, id, review.Ticket.ID)
	assert.Equal(t, "in_review", string(app.TicketRow(t, id).State))

	var done ent.Ticket
	app.postAs(t, "/api/v1/tickets/"+id+"/approve", nil, &done, http.StatusOK)
	assert.Equal(t, "done", string(done.State))
	require.NotNil(t, done.CompletedAt)

	// The event log tells the whole story, oldest first.
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "build activation"))
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "claimed via agent surface"))
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "agent reported completion"))
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "verification passed"))
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "review approved"))
}

// TestE2E_DirectModeExecution exercises the scheduler-driven path: the
// engine claims the ticket itself, acquires a VM slot, posts the work order
// to the in-slot agent, and routes the reported branch through verification.
// No pull agent is involved.
func TestE2E_DirectModeExecution(t *testing.T) {
	app := NewTestApp(t)

	agentSrv := StartInSlotAgent(t, func(ticketID string) (branch, errText string) {
		return "forge/" + ticketID + "-auto", ""
	})
	app.Pool.Endpoint = agentSrv.URL

	app.CreateProject(t, "proj-checkout")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:      "CHK-7",
		ProjectID:     "proj-checkout",
		BuildID:       "build-direct",
		Title:         "Bump cart session TTL",
		ExecutionMode: "direct",
	})
	app.ActivateBuild(t, "build-direct")

	// The scheduler does the rest: claim, slot, execute, verify, PR.
	app.WaitForTicketState(t, id, "in_review")

	row := app.TicketRow(t, id)
	require.NotNil(t, row.BranchName)
	assert.Equal(t, "forge/CHK-7-auto", *row.BranchName)
	require.NotNil(t, row.PrURL)
	assert.Nil(t, row.VMID)
	assert.Nil(t, row.EngineID, "engine binding must not outlive the execution")

	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "execution complete"))

	// The slot goes back to the pool once the hand-off to verification
	// lands; release runs concurrently with the pipeline.
	require.Eventually(t, func() bool {
		return len(app.Pool.ReleasedIDs()) == 1
	}, 10*time.Second, 50*time.Millisecond, "slot was not released")
}
