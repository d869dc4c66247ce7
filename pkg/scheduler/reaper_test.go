package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedExpiredLease inserts an in_progress ticket whose lease ran out,
// simulating an engine that died mid-execution.
func seedExpiredLease(t *testing.T, client *ent.Client, projectID, engineID, vmID string) *ent.Ticket {
	t.Helper()
	now := time.Now()
	return seedDirectTicket(t, client, projectID, ticket.StateInProgress, func(b *ent.TicketCreate) {
		b.SetVMID(vmID).
			SetStartedAt(now.Add(-10 * time.Minute)).
			SetLastHeartbeat(now.Add(-5 * time.Minute)).
			SetLeaseExpires(now.Add(-1 * time.Minute))
		if engineID != "" {
			b.SetEngineID(engineID)
		}
	})
}

func TestReapExpiredLeases(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	dead := seedExpiredLease(t, client, project.ID, "dead-engine", "vm-107")

	// Progress written before the crash must survive the reap.
	_, err := client.TicketEvent.Create().
		SetID(uuid.New().String()).
		SetTicketID(dead.ID).
		SetKind(ticketevent.KindProgress).
		SetActor("forge-agent").
		SetMessage("implemented retry wrapper, writing tests").
		Save(ctx)
	require.NoError(t, err)

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())

	reaped, err := engine.scheduler.reapExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	fresh, err := client.Ticket.Get(ctx, dead.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, fresh.State)
	assert.Nil(t, fresh.VMID)
	assert.Nil(t, fresh.EngineID)
	assert.Nil(t, fresh.LeaseExpires)
	assert.Equal(t, 0, fresh.RetryCount, "lease expiry is not a failure")
	require.NotNil(t, fresh.AssigneeID, "assignment survives so the row stays claimable")

	// The dead engine's slot is killed, not politely released.
	assert.Equal(t, []string{"vm-107"}, engine.pool.killedIDs())

	// The progress log is intact and gained a transition event.
	events, err := client.TicketEvent.Query().
		Where(ticketevent.TicketIDEQ(dead.ID)).
		All(ctx)
	require.NoError(t, err)
	var progress, transitions int
	for _, e := range events {
		switch e.Kind {
		case ticketevent.KindProgress:
			progress++
		case ticketevent.KindTransition:
			transitions++
		}
	}
	assert.Equal(t, 1, progress)
	assert.Equal(t, 1, transitions)
}

func TestReapSkipsLiveLeases(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	live := seedDirectTicket(t, client, project.ID, ticket.StateInProgress, func(b *ent.TicketCreate) {
		b.SetVMID("vm-201").
			SetEngineID("engine-2").
			SetLastHeartbeat(time.Now()).
			SetLeaseExpires(time.Now().Add(2 * time.Minute))
	})

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())

	reaped, err := engine.scheduler.reapExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, reaped)

	assert.Equal(t, ticket.StateInProgress, ticketState(t, client, live.ID))
	assert.Empty(t, engine.pool.killedIDs())
}

func TestReapSkipsAgentSlots(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	// A pull agent that stopped heartbeating: its surrogate vm id names no
	// pool slot, so there is nothing to kill.
	row := seedExpiredLease(t, client, project.ID, "", services.AgentSlotPrefix+"agent-7")

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())

	reaped, err := engine.scheduler.reapExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	assert.Equal(t, ticket.StateReady, ticketState(t, client, row.ID))
	assert.Empty(t, engine.pool.killedIDs(), "surrogate slots must not reach the pool")
}

func TestReaperLoopRecoversStall(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	dead := seedExpiredLease(t, client, project.ID, "dead-engine", "vm-301")

	cfg := intTestSchedulerConfig()
	cfg.ReaperInterval = 100 * time.Millisecond

	engine := newTestEngine(t, client, "engine-1", cfg)
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, &mockExecutor{})

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	// The reaper frees the row, then the claim loop picks it up and runs it
	// through to review.
	awaitCondition(t, 15*time.Second, 50*time.Millisecond,
		"waiting for the stalled ticket to be reaped and re-run",
		func() bool { return ticketState(t, client, dead.ID) == ticket.StateInReview })

	health := engine.scheduler.Health()
	assert.GreaterOrEqual(t, health.TicketsReaped, 1)
	assert.False(t, health.LastReaperScan.IsZero())
}

func TestStartupRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)

	// Rows stranded by this engine's previous run. Leases are still live:
	// restart recovery must not wait them out.
	mine := make([]*ent.Ticket, 0, 2)
	for i := 0; i < 2; i++ {
		row := seedDirectTicket(t, client, project.ID, ticket.StateInProgress, func(b *ent.TicketCreate) {
			b.SetVMID("vm-old").
				SetEngineID("engine-1").
				SetLeaseExpires(time.Now().Add(2 * time.Minute))
		})
		mine = append(mine, row)
	}

	// Another engine's live row must be untouched.
	other := seedDirectTicket(t, client, project.ID, ticket.StateInProgress, func(b *ent.TicketCreate) {
		b.SetVMID("vm-401").
			SetEngineID("engine-2").
			SetLeaseExpires(time.Now().Add(2 * time.Minute))
	})

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())
	executor := &mockExecutor{}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	// Recovered rows rejoin the pool and get re-executed.
	for _, row := range mine {
		id := row.ID
		awaitCondition(t, 15*time.Second, 50*time.Millisecond,
			"waiting for a recovered ticket to be re-run",
			func() bool { return ticketState(t, client, id) == ticket.StateInReview })
	}

	assert.Equal(t, ticket.StateInProgress, ticketState(t, client, other.ID))
}
