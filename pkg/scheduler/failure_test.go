package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/retry"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDispatched inserts an in_progress ticket with live dispatch bindings.
func seedDispatched(t *testing.T, client *ent.Client, projectID string, mutate func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	return seedDirectTicket(t, client, projectID, ticket.StateInProgress, func(b *ent.TicketCreate) {
		b.SetVMID("vm-601").
			SetEngineID("engine-1").
			SetStartedAt(time.Now()).
			SetLeaseExpires(time.Now().Add(2 * time.Minute))
		if mutate != nil {
			mutate(b)
		}
	})
}

func TestFailureRouterRetries(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDispatched(t, client, project.ID, nil)

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	state, err := router.Route(ctx, row.ID, "scheduler", "git push: connection reset by peer")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, state)

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, fresh.State)
	assert.Equal(t, 1, fresh.RetryCount)
	assert.Nil(t, fresh.VMID)
	assert.Nil(t, fresh.LeaseExpires)
	require.NotNil(t, fresh.Error)
	assert.Contains(t, *fresh.Error, "connection reset")

	assert.Equal(t, string(retry.CategoryTransient), fresh.RetryStrategy["category"])
	assert.Equal(t, "network", fresh.RetryStrategy["subcategory"])
	notBefore, ok := retry.NotBefore(fresh.RetryStrategy)
	require.True(t, ok, "transient retries carry a backoff gate")
	assert.True(t, notBefore.After(time.Now()), "the gate points into the future")
}

func TestFailureRouterExhaustsBudget(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	// Transient failures retry 5 times; this row has spent them all.
	row := seedDispatched(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetRetryCount(5)
	})

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	state, err := router.Route(ctx, row.ID, "scheduler", "dial tcp: connection refused")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, state)

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, fresh.State)
	assert.Equal(t, 5, fresh.RetryCount, "the hold itself consumes no budget")
	require.NotNil(t, fresh.HoldReason)
	assert.Contains(t, *fresh.HoldReason, "retry budget exhausted after 5 attempts")
	assert.Contains(t, *fresh.HoldReason, string(retry.CategoryTransient))
	assert.Nil(t, fresh.VMID)
}

func TestFailureRouterAmbiguityNeverRetries(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDispatched(t, client, project.ID, nil)

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	state, err := router.Route(ctx, row.ID, "agent-3",
		"specification unclear: endpoint shape conflicts with the schema appendix")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, state)

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.RetryCount, "ambiguity skips the retry loop entirely")
	require.NotNil(t, fresh.HoldReason)
	assert.Equal(t, "specification ambiguity reported by agent", *fresh.HoldReason)
	assert.Equal(t, string(retry.CategoryAmbiguity), fresh.RetryStrategy["category"])
}

func TestFailureRouterGuardConflict(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	// The row already left the dispatched states: the failure is stale.
	row := seedDirectTicket(t, client, project.ID, ticket.StateDone, func(b *ent.TicketCreate) {
		b.SetCompletedAt(time.Now())
	})

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	_, err := router.Route(ctx, row.ID, "scheduler", "connection refused")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrGuardConflict)
	assert.Equal(t, ticket.StateDone, ticketState(t, client, row.ID))
}

func TestFailureRouterVerificationCategoryBudget(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	// Verification failures get 3 retries with a constant 5s backoff.
	row := seedDispatched(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetRetryCount(2)
	})

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	state, err := router.Route(ctx, row.ID, "agent-3", "tests failed: 2 assertions")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, state)

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.RetryCount)
	assert.Equal(t, string(retry.CategoryVerification), fresh.RetryStrategy["category"])
	// json numbers come back as float64
	assert.EqualValues(t, 5000, fresh.RetryStrategy["next_delay_ms"])
}

func TestRouteReportedExhaustsBudgetAcrossReports(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDispatched(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetAssigneeID("agent-3")
	})

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	redispatch := func() {
		_, err := client.Ticket.UpdateOneID(row.ID).
			SetState(ticket.StateInProgress).
			SetVMID("vm-601").
			SetLeaseExpires(time.Now().Add(2 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	// Verification failures carry a budget of 3 attempts. Each report from
	// the agent spends one.
	state, err := router.RouteReported(ctx, row.ID, "agent-3", "tests failed: TestCheckout red")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, state)
	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.RetryCount)

	redispatch()
	state, err = router.RouteReported(ctx, row.ID, "agent-3", "tests failed: TestCheckout still red")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, state)

	redispatch()
	state, err = router.RouteReported(ctx, row.ID, "agent-3", "tests failed: TestCheckout red again")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, state)

	fresh, err = client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, fresh.State)
	assert.Equal(t, 3, fresh.RetryCount, "the final report is an attempt too")
	require.NotNil(t, fresh.HoldReason)
	assert.Contains(t, *fresh.HoldReason, "retry budget exhausted after 3 attempts")
	assert.Nil(t, fresh.VMID)
}

func TestRouteReportedAmbiguitySpendsNothing(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDispatched(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetAssigneeID("agent-3").SetRetryCount(2)
	})

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	state, err := router.RouteReported(ctx, row.ID, "agent-3",
		"conflicting requirements: the acceptance criteria contradict the schema")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, state)

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.RetryCount, "an ambiguity report is a question, not an attempt")
	require.NotNil(t, fresh.HoldReason)
	assert.Equal(t, "specification ambiguity reported by agent", *fresh.HoldReason)
}

func TestRouteReportedRejectsStaleOwner(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	// agent-old was reaped and the ticket reclaimed by agent-new.
	row := seedDispatched(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetAssigneeID("agent-new")
	})

	router := NewFailureRouter(services.NewTicketService(client), nil, nil)

	_, err := router.RouteReported(ctx, row.ID, "agent-old", "tests failed")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrGuardConflict)

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInProgress, fresh.State, "the new owner's work is untouched")
	assert.Equal(t, 0, fresh.RetryCount)
}
