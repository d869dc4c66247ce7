package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
)

func newTestService(client *ent.Client, cfg *config.SweepConfig) *Service {
	if cfg == nil {
		cfg = config.DefaultSweepConfig()
	}
	return NewService(cfg, services.NewTicketService(client), services.NewEventService(client))
}

func seedProject(t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetName("checkout-service").
		SetRepoURL("https://github.com/forgeworks/checkout-service").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func seedTicket(t *testing.T, client *ent.Client, projectID string, state ticket.State, mutate func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	builder := client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetProjectID(projectID).
		SetTitle("Add retry to payment client").
		SetState(state).
		SetAssigneeID(lifecycle.ForgeAgent).
		SetAssigneeType(ticket.AssigneeTypeAgent)
	if mutate != nil {
		mutate(builder)
	}
	row, err := builder.Save(context.Background())
	require.NoError(t, err)
	return row
}

func ticketState(t *testing.T, client *ent.Client, id string) ticket.State {
	t.Helper()
	row, err := client.Ticket.Get(context.Background(), id)
	require.NoError(t, err)
	return row.State
}

func TestSweepUnblocksWhenDependenciesDone(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	depA := seedTicket(t, client, project.ID, ticket.StateDone, nil)
	depB := seedTicket(t, client, project.ID, ticket.StateDone, nil)
	gated := seedTicket(t, client, project.ID, ticket.StateBlocked, func(b *ent.TicketCreate) {
		b.SetDependsOn([]string{depA.ID, depB.ID})
	})

	svc := newTestService(client, nil)
	svc.unblockEligible(ctx)

	assert.Equal(t, ticket.StateReady, ticketState(t, client, gated.ID))

	// The promotion keeps the claimable assignment and leaves a trail.
	row, err := client.Ticket.Get(ctx, gated.ID)
	require.NoError(t, err)
	require.NotNil(t, row.AssigneeID)
	assert.Equal(t, lifecycle.ForgeAgent, *row.AssigneeID)

	events, err := client.TicketEvent.Query().
		Where(
			ticketevent.TicketIDEQ(gated.ID),
			ticketevent.KindEQ(ticketevent.KindTransition),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "sweep", events[0].Actor)
}

func TestSweepHoldsTicketWithPendingDependency(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	done := seedTicket(t, client, project.ID, ticket.StateDone, nil)
	pending := seedTicket(t, client, project.ID, ticket.StateInProgress, nil)
	gated := seedTicket(t, client, project.ID, ticket.StateBlocked, func(b *ent.TicketCreate) {
		b.SetDependsOn([]string{done.ID, pending.ID})
	})

	svc := newTestService(client, nil)
	svc.unblockEligible(ctx)

	assert.Equal(t, ticket.StateBlocked, ticketState(t, client, gated.ID))
}

func TestSweepHoldsTicketWithDanglingDependency(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	// The referenced ticket was never created. The gate must not open, and
	// the pass must not error out for the rest of the batch.
	gated := seedTicket(t, client, project.ID, ticket.StateBlocked, func(b *ent.TicketCreate) {
		b.SetDependsOn([]string{"no-such-ticket"})
	})
	eligible := seedTicket(t, client, project.ID, ticket.StateBlocked, nil)

	svc := newTestService(client, nil)
	svc.unblockEligible(ctx)

	assert.Equal(t, ticket.StateBlocked, ticketState(t, client, gated.ID))
	assert.Equal(t, ticket.StateReady, ticketState(t, client, eligible.ID))
}

func TestSweepCancelledDependencyDoesNotSatisfyGate(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	dep := seedTicket(t, client, project.ID, ticket.StateCancelled, nil)
	gated := seedTicket(t, client, project.ID, ticket.StateBlocked, func(b *ent.TicketCreate) {
		b.SetDependsOn([]string{dep.ID})
	})

	svc := newTestService(client, nil)
	svc.unblockEligible(ctx)

	assert.Equal(t, ticket.StateBlocked, ticketState(t, client, gated.ID))
}

func TestSweepStuckReportLeavesStateAlone(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	idle := seedTicket(t, client, project.ID, ticket.StateInProgress, nil)
	require.NoError(t, client.Ticket.UpdateOneID(idle.ID).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	cfg := config.DefaultSweepConfig()
	cfg.StuckThreshold = 10 * time.Minute
	svc := newTestService(client, cfg)
	svc.reportStuck(ctx)

	assert.Equal(t, ticket.StateInProgress, ticketState(t, client, idle.ID))
}

func TestSweepCompactsTerminalEvents(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	finished := seedTicket(t, client, project.ID, ticket.StateDone, nil)
	running := seedTicket(t, client, project.ID, ticket.StateInProgress, nil)

	old := time.Now().Add(-31 * 24 * time.Hour)
	for _, tk := range []*ent.Ticket{finished, running} {
		_, err := client.TicketEvent.Create().
			SetID(uuid.New().String()).
			SetTicketID(tk.ID).
			SetKind(ticketevent.KindProgress).
			SetActor("forge-agent").
			SetMessage("cloning repository").
			SetCreatedAt(old).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.TicketEvent.Create().
		SetID(uuid.New().String()).
		SetTicketID(finished.ID).
		SetKind(ticketevent.KindProgress).
		SetActor("forge-agent").
		SetMessage("opening pull request").
		Save(ctx)
	require.NoError(t, err)

	cfg := config.DefaultSweepConfig()
	cfg.EventRetention = 30 * 24 * time.Hour
	svc := newTestService(client, cfg)
	svc.compactEvents(ctx)

	// Only the aged event of the terminal ticket is gone.
	finishedCount, err := client.TicketEvent.Query().
		Where(ticketevent.TicketIDEQ(finished.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, finishedCount)

	runningCount, err := client.TicketEvent.Query().
		Where(ticketevent.TicketIDEQ(running.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, runningCount)
}

func TestSweepLoopUnblocksInBackground(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	project := seedProject(t, client)

	dep := seedTicket(t, client, project.ID, ticket.StateInProgress, nil)
	gated := seedTicket(t, client, project.ID, ticket.StateBlocked, func(b *ent.TicketCreate) {
		b.SetDependsOn([]string{dep.ID})
	})

	cfg := config.DefaultSweepConfig()
	cfg.UnblockInterval = 50 * time.Millisecond
	svc := newTestService(client, cfg)
	svc.Start(ctx)
	svc.Start(ctx) // second call is a no-op
	defer svc.Stop()

	// Not eligible yet.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, ticket.StateBlocked, ticketState(t, client, gated.ID))

	// Finish the dependency and wait for the next tick.
	require.NoError(t, client.Ticket.UpdateOneID(dep.ID).
		SetState(ticket.StateDone).
		Exec(ctx))

	deadline := time.After(5 * time.Second)
	for ticketState(t, client, gated.ID) != ticket.StateReady {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the sweep to unblock the ticket")
		default:
			time.Sleep(20 * time.Millisecond)
		}
	}
}
