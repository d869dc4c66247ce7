package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/models"
)

// TestE2E_LeaseExpiryReturnsTicket simulates an agent that claims a ticket
// and dies. The reaper returns the row to the pool on the database clock,
// the dead agent's later writes bounce off the ownership guard, and a
// second agent finishes the work. Nothing the first agent logged is lost.
func TestE2E_LeaseExpiryReturnsTicket(t *testing.T) {
	cfg := fastTestConfig()
	cfg.Scheduler.LeaseWindow = time.Second
	app := NewTestApp(t, WithConfig(cfg))

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-301",
		ProjectID: "proj-payments",
		BuildID:   "build-lease",
		Title:     "Retry webhook deliveries with jitter",
	})
	app.ActivateBuild(t, "build-lease")

	// Agent one claims, reports progress once, then goes silent.
	ghost := app.Agent("agent-ghost")
	claim := ghost.ClaimTicket(t)
	require.Equal(t, id, claim.Ticket.ID)
	ghost.Start(t, id, "forge/pay-301-webhooks")
	ghost.Heartbeat(t, id, "delivery worker sketched out")

	// The lease runs out; the reaper puts the ticket back.
	app.WaitForTicketState(t, id, "ready")

	row := app.TicketRow(t, id)
	assert.Nil(t, row.VMID)
	assert.Nil(t, row.LeaseExpires)
	assert.Equal(t, 0, row.RetryCount, "a crash is not a failed attempt")
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "lease expired"))
	assert.True(t, app.HasEvent(t, id, ticketevent.KindProgress, "delivery worker"),
		"progress written before the crash must survive the reap")

	// The ghost's lease is gone: its heartbeat gets a 404 telling it to stop.
	app.postJSON(t, "/api/v1/agent/heartbeat", models.HeartbeatRequest{
		AgentID:  "agent-ghost",
		TicketID: id,
		Progress: "back from the dead",
	}, http.StatusNotFound)

	// A second agent picks the ticket up and finishes it.
	worker := app.Agent("agent-2")
	reclaim := worker.ClaimTicket(t)
	require.Equal(t, id, reclaim.Ticket.ID)
	worker.Start(t, id, "forge/pay-301-webhooks-take2")

	// The ghost coming back mid-flight cannot overwrite the new owner.
	app.postJSON(t, "/api/v1/agent/complete", models.CompleteRequest{
		AgentID:    "agent-ghost",
		TicketID:   id,
		BranchName: "forge/pay-301-webhooks",
	}, http.StatusForbidden)

	worker.Complete(t, id, "forge/pay-301-webhooks-take2")
	app.WaitForTicketState(t, id, "in_review")

	// Verification ran against the new owner's branch.
	require.Equal(t, 1, app.Verifier.RequestCount())
	assert.Equal(t, "forge/pay-301-webhooks-take2", app.Verifier.Requests()[0].BranchName)
}

// TestE2E_VoluntaryRelease lets an agent hand a ticket back explicitly. Like
// a lease expiry this burns no retry budget, but it is immediate and leaves
// a release note in the log.
func TestE2E_VoluntaryRelease(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-302",
		ProjectID: "proj-payments",
		BuildID:   "build-release",
		Title:     "Quarantine flaky settlement test",
	})
	app.ActivateBuild(t, "build-release")

	agent := app.Agent("agent-1")
	claim := agent.ClaimTicket(t)
	require.Equal(t, id, claim.Ticket.ID)

	agent.Release(t, id, "environment missing docker")

	row := app.TicketRow(t, id)
	assert.Equal(t, "ready", string(row.State))
	assert.Nil(t, row.VMID)
	assert.Equal(t, 0, row.RetryCount)
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "voluntary release: environment missing docker"))

	// Released work is immediately claimable, including by the same agent.
	again := agent.ClaimTicket(t)
	require.Equal(t, id, again.Ticket.ID)
}
