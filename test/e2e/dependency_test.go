package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
)

// TestE2E_DependencyGating activates a two-ticket chain: the dependent
// ticket blocks at activation, stays blocked while its dependency is merely
// in review, and is released by the sweep only once the dependency is done.
func TestE2E_DependencyGating(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	base := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-401",
		ProjectID: "proj-payments",
		BuildID:   "build-chain",
		Title:     "Introduce ledger entries table",
	})
	dependent := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-402",
		ProjectID: "proj-payments",
		BuildID:   "build-chain",
		Title:     "Write refunds through the ledger",
		DependsOn: []string{base},
	})
	// A dependency id with no backing row never satisfies the gate.
	orphan := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-403",
		ProjectID: "proj-payments",
		BuildID:   "build-chain",
		Title:     "Backfill ledger from legacy refunds",
		DependsOn: []string{"PAY-999"},
	})

	counts := app.ActivateBuild(t, "build-chain")
	require.Equal(t, models.ActivationCounts{Ready: 1, Blocked: 2}, counts)

	blockedRow := app.TicketRow(t, dependent)
	require.Equal(t, "blocked", string(blockedRow.State))
	require.NotNil(t, blockedRow.AssigneeID, "blocked rows get their assignment up front")
	assert.Equal(t, lifecycle.ForgeAgent, *blockedRow.AssigneeID)

	// Drive the base ticket to done: execute, verify, review, approve.
	agent := app.Agent("agent-1")
	worked := agent.WorkTicket(t)
	require.Equal(t, base, worked, "only the base ticket is claimable while the chain is gated")
	app.WaitForTicketState(t, base, "in_review")

	// In review is not done: the dependent must still be blocked.
	assert.Equal(t, "blocked", string(app.TicketRow(t, dependent).State))

	app.postAs(t, "/api/v1/tickets/"+base+"/approve", nil, nil, http.StatusOK)
	require.Equal(t, "done", string(app.TicketRow(t, base).State))

	// The sweep promotes the dependent on its next pass.
	app.WaitForTicketState(t, dependent, "ready")
	assert.True(t, app.HasEvent(t, dependent, ticketevent.KindTransition, "all dependencies done"))

	// The same pass looked at the orphan and left it alone.
	assert.Equal(t, "blocked", string(app.TicketRow(t, orphan).State))

	// Unblocked means claimable.
	claim := agent.ClaimTicket(t)
	require.Equal(t, dependent, claim.Ticket.ID)
}

// TestE2E_ActivationRoutesDoneDependencies checks the activation-time half
// of the gate: a draft whose dependency already finished in an earlier
// build goes straight to ready.
func TestE2E_ActivationRoutesDoneDependencies(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	first := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-410",
		ProjectID: "proj-payments",
		BuildID:   "build-one",
		Title:     "Ship feature flag plumbing",
	})
	app.ActivateBuild(t, "build-one")

	app.Agent("agent-1").WorkTicket(t)
	app.WaitForTicketState(t, first, "in_review")
	app.postAs(t, "/api/v1/tickets/"+first+"/approve", nil, nil, http.StatusOK)

	// A later build depending on the finished ticket activates ready.
	second := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-411",
		ProjectID: "proj-payments",
		BuildID:   "build-two",
		Title:     "Gate checkout redesign behind the flag",
		DependsOn: []string{first},
	})
	counts := app.ActivateBuild(t, "build-two")
	require.Equal(t, models.ActivationCounts{Ready: 1}, counts)
	assert.Equal(t, "ready", string(app.TicketRow(t, second).State))

	// Activating an unknown build is a 404, not an empty success.
	resp, raw := app.do(t, http.MethodPost, "/api/v1/builds/build-ghost/activate", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode, "body: %s", raw)
}
