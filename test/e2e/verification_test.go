package e2e

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
)

// TestE2E_VerificationFeedbackLoop drives the failure half of the pipeline:
// a failed verdict parks the ticket in needs_review with the verifier's
// feedback stored for the next attempt, an operator replays it, and the
// second execution passes.
func TestE2E_VerificationFeedbackLoop(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-201",
		ProjectID: "proj-payments",
		BuildID:   "build-beta",
		Title:     "Reject charges with a stale card token",
	})
	app.ActivateBuild(t, "build-beta")

	app.Verifier.FailOnce("charge handler accepts tokens past their expiry")

	// Attempt 1: the agent does its work, verification says no.
	agent := app.Agent("agent-1")
	agent.WorkTicket(t)
	app.WaitForTicketState(t, id, "needs_review")

	row := app.TicketRow(t, id)
	require.NotNil(t, row.VerificationStatus)
	assert.Equal(t, ticket.VerificationStatusFailed, *row.VerificationStatus)
	assert.Nil(t, row.PrURL, "no PR is minted for a failed verdict")
	assert.Zero(t, app.Forge.RequestCount())
	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "verification failed on attempt 1 of 3"))

	// The feedback is retrievable over the API, tagged with the attempt.
	resp := app.getJSON(t, "/api/v1/tickets/"+id+"/artifacts?kind=verification_feedback", http.StatusOK)
	arts, ok := resp["artifacts"].([]interface{})
	require.True(t, ok, "artifacts payload missing: %v", resp)
	require.Len(t, arts, 1)
	feedback := arts[0].(map[string]interface{})
	assert.Contains(t, feedback["content"], "past their expiry")
	assert.Equal(t, float64(1), feedback["attempt"])

	// A failed verdict is a decision for a human, never an automatic retry:
	// the verifier was consulted exactly once.
	require.Equal(t, 1, app.Verifier.RequestCount())

	// Phase 2: replay. The previous outcome is wiped, the ticket is
	// claimable again.
	var replayed ent.Ticket
	app.postAs(t, "/api/v1/tickets/"+id+"/replay", nil, &replayed, http.StatusOK)
	assert.Equal(t, "ready", string(replayed.State))
	assert.Nil(t, replayed.VerificationStatus)
	require.NotNil(t, replayed.AssigneeID)
	assert.Equal(t, lifecycle.ForgeAgent, *replayed.AssigneeID)

	// Attempt 2 passes and reaches review. The attempt counter spans the
	// replay: the verifier sees attempt 2, not a fresh 1.
	agent.WorkTicket(t)
	app.WaitForTicketState(t, id, "in_review")

	require.Equal(t, 2, app.Verifier.RequestCount())
	assert.Equal(t, 2, app.Verifier.Requests()[1].Attempt)
	assert.Equal(t, 1, app.Forge.RequestCount())
	require.NotNil(t, app.TicketRow(t, id).PrURL)
}

// TestE2E_VerificationBudgetSpansReplays burns the whole attempt budget
// through repeated replays. The final failure stores evidence instead of
// agent feedback: the next decision belongs to a human, not an agent.
func TestE2E_VerificationBudgetSpansReplays(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-202",
		ProjectID: "proj-payments",
		BuildID:   "build-gamma",
		Title:     "Migrate refunds to the ledger service",
	})
	app.ActivateBuild(t, "build-gamma")

	agent := app.Agent("agent-1")
	maxAttempts := app.Config.Pipeline.MaxAttempts
	require.Equal(t, 3, maxAttempts)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		app.Verifier.FailOnce(fmt.Sprintf("refund totals drift on attempt %d", attempt))
		agent.WorkTicket(t)
		app.WaitForTicketState(t, id, "needs_review")

		if attempt < maxAttempts {
			var replayed ent.Ticket
			app.postAs(t, "/api/v1/tickets/"+id+"/replay", nil, &replayed, http.StatusOK)
			require.Equal(t, "ready", string(replayed.State))
		}
	}

	// The verifier saw attempts 1..3; attempts within the budget left
	// feedback, the final one left evidence.
	require.Equal(t, maxAttempts, app.Verifier.RequestCount())
	for i, req := range app.Verifier.Requests() {
		assert.Equal(t, i+1, req.Attempt)
	}

	ctx := context.Background()
	feedback, err := app.Artifacts.ListForTicket(ctx, id, ticketartifact.KindVerificationFeedback)
	require.NoError(t, err)
	assert.Len(t, feedback, maxAttempts-1)

	evidence, err := app.Artifacts.ListForTicket(ctx, id, ticketartifact.KindVerificationEvidence)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Equal(t, maxAttempts, evidence[0].Attempt)

	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "verification attempt budget exhausted (3 of 3)"))
	assert.Zero(t, app.Forge.RequestCount())
}

// TestE2E_PipelineErrorCompletesWithWarning covers a broken verifier rather
// than broken code: under the default complete_with_warning policy the
// pushed branch is not lost, the ticket completes and the error is recorded
// as an artifact.
func TestE2E_PipelineErrorCompletesWithWarning(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	id := app.CreateTicket(t, models.CreateTicketRequest{
		TicketID:  "PAY-203",
		ProjectID: "proj-payments",
		BuildID:   "build-delta",
		Title:     "Add audit trail to settlement runs",
	})
	app.ActivateBuild(t, "build-delta")

	app.Verifier.SetError(errors.New("verifier backend unavailable"))

	app.Agent("agent-1").WorkTicket(t)
	app.WaitForTicketState(t, id, "done")

	row := app.TicketRow(t, id)
	require.NotNil(t, row.CompletedAt)
	require.NotNil(t, row.BranchName, "the pushed branch survives a pipeline fault")

	errs, err := app.Artifacts.ListForTicket(context.Background(), id, ticketartifact.KindPipelineError)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Content, "verifier backend unavailable")

	assert.True(t, app.HasEvent(t, id, ticketevent.KindTransition, "completed with warning"))
}
