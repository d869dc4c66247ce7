package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/retry"
)

// TestE2E_RetryBudgetExhaustion reports the same verification-class failure
// until the budget runs out. Every report consumes an attempt; the last one
// parks the ticket on hold with the reason spelled out, and an operator
// resume returns it to the pool with a clean slate.
func TestE2E_RetryBudgetExhaustion(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-501",
		ProjectID: "proj-payments",
		BuildID:   "build-retry",
		Title:     "Stabilize settlement integration tests",
	})
	app.ActivateBuild(t, "build-retry")

	agent := app.Agent("agent-1")

	// Attempts 1 and 2 are retryable: back to ready with the budget spent
	// and a not-before gate recorded.
	for attempt := 1; attempt <= 2; attempt++ {
		claim := agent.ClaimTicket(t)
		require.Equal(t, id, claim.Ticket.ID)

		landed := agent.Fail(t, id, "integration tests failed: settlement totals drift")
		assert.Equal(t, "ready", landed)

		row := app.TicketRow(t, id)
		assert.Equal(t, attempt, row.RetryCount)
		assert.Equal(t, string(retry.CategoryVerification), row.RetryStrategy["category"])
		assert.NotEmpty(t, row.RetryStrategy["not_before"], "retries are gated, not immediate")
	}

	// Attempt 3 exhausts the budget.
	claim := agent.ClaimTicket(t)
	require.Equal(t, id, claim.Ticket.ID)
	landed := agent.Fail(t, id, "integration tests failed: settlement totals drift")
	assert.Equal(t, "on_hold", landed)

	row := app.TicketRow(t, id)
	assert.Equal(t, 3, row.RetryCount)
	assert.Nil(t, row.VMID)
	require.NotNil(t, row.HoldReason)
	assert.Equal(t, "retry budget exhausted after 3 attempts (verification-failure)", *row.HoldReason)
	require.NotNil(t, row.Error)
	assert.Contains(t, *row.Error, "settlement totals drift")

	// A held ticket is not claimable.
	assert.Nil(t, agent.Claim(t).Ticket)

	// Operator resume: fresh budget, back in the pool.
	var resumed ent.Ticket
	app.postAs(t, "/api/v1/tickets/"+id+"/resume", nil, &resumed, http.StatusOK)
	assert.Equal(t, "ready", string(resumed.State))
	assert.Equal(t, 0, resumed.RetryCount)
	assert.Nil(t, resumed.HoldReason)
	assert.Nil(t, resumed.Error)
	assert.Empty(t, resumed.RetryStrategy)
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "operator resume"))

	reclaim := agent.ClaimTicket(t)
	require.Equal(t, id, reclaim.Ticket.ID)
}

// TestE2E_AmbiguityHoldsWithoutBurningBudget verifies the special case: an
// agent that cannot resolve the specification parks the ticket immediately,
// and the report costs no retry attempt.
func TestE2E_AmbiguityHoldsWithoutBurningBudget(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-502",
		ProjectID: "proj-payments",
		BuildID:   "build-ambiguity",
		Title:     "Normalize currency rounding",
	})
	app.ActivateBuild(t, "build-ambiguity")

	agent := app.Agent("agent-1")
	claim := agent.ClaimTicket(t)
	require.Equal(t, id, claim.Ticket.ID)

	landed := agent.Fail(t, id, "acceptance criteria ambiguous: banker's rounding conflicts with the ledger examples")
	assert.Equal(t, "on_hold", landed)

	row := app.TicketRow(t, id)
	assert.Equal(t, 0, row.RetryCount, "an open question is not a failed attempt")
	require.NotNil(t, row.HoldReason)
	assert.Equal(t, "specification ambiguity reported by agent", *row.HoldReason)
	assert.Equal(t, string(retry.CategoryAmbiguity), row.RetryStrategy["category"])
}

// TestE2E_TransientFailureKeepsItsOwnBudget checks that classification picks
// the policy per category: a network blip draws from the transient budget,
// which is deeper than the verification one.
func TestE2E_TransientFailureKeepsItsOwnBudget(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-503",
		ProjectID: "proj-payments",
		BuildID:   "build-transient",
		Title:     "Bump provider SDK",
	})
	app.ActivateBuild(t, "build-transient")

	agent := app.Agent("agent-1")
	claim := agent.ClaimTicket(t)
	require.Equal(t, id, claim.Ticket.ID)

	landed := agent.Fail(t, id, "connection refused while cloning the repository")
	assert.Equal(t, "ready", landed)

	row := app.TicketRow(t, id)
	assert.Equal(t, 1, row.RetryCount)
	assert.Equal(t, string(retry.CategoryTransient), row.RetryStrategy["category"])
	assert.Equal(t, float64(5), row.RetryStrategy["max_retries"], "transient failures get the 5-attempt budget")
}
