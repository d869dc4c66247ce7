package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/gitforge"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/retry"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/verification"
	"github.com/forgeworks/forge/pkg/vmpool"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

// fakePool is an in-memory vmpool.Adapter with optional capacity.
type fakePool struct {
	mu         sync.Mutex
	nextID     int
	capacity   int // 0 = unlimited
	inUse      int
	endpoint   string
	acquired   []string
	released   []string
	killed     []string
	acquireErr error
}

func newFakePool() *fakePool { return &fakePool{} }

func (f *fakePool) Acquire(ctx context.Context, req *vmpool.AcquireRequest) (*vmpool.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	if f.capacity > 0 && f.inUse >= f.capacity {
		return nil, fmt.Errorf("acquire for %s: %w", req.TicketID, vmpool.ErrPoolExhausted)
	}
	f.nextID++
	f.inUse++
	id := fmt.Sprintf("vm-%03d", f.nextID)
	f.acquired = append(f.acquired, id)
	return &vmpool.Slot{ID: id, Endpoint: f.endpoint}, nil
}

func (f *fakePool) Release(ctx context.Context, vmID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, vmID)
	if f.inUse > 0 {
		f.inUse--
	}
	return nil
}

func (f *fakePool) Kill(ctx context.Context, vmID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.killed = append(f.killed, vmID)
	if f.inUse > 0 {
		f.inUse--
	}
	return nil
}

func (f *fakePool) Health(ctx context.Context, vmID string) (*vmpool.SlotHealth, error) {
	return &vmpool.SlotHealth{Alive: true}, nil
}

func (f *fakePool) releasedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.released...)
}

func (f *fakePool) killedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.killed...)
}

// scriptedVerifier pops verdicts in order; the last one repeats.
type scriptedVerifier struct {
	mu       sync.Mutex
	verdicts []*verification.Verdict
	requests []*verification.Request
	err      error
}

func (v *scriptedVerifier) Verify(ctx context.Context, req *verification.Request) (*verification.Verdict, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.requests = append(v.requests, req)
	if v.err != nil {
		return nil, v.err
	}
	if len(v.verdicts) == 0 {
		return &verification.Verdict{Status: verification.StatusPassed, ReadyForPR: true}, nil
	}
	verdict := v.verdicts[0]
	if len(v.verdicts) > 1 {
		v.verdicts = v.verdicts[1:]
	}
	return verdict, nil
}

func (v *scriptedVerifier) requestCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.requests)
}

// scriptedForge records PR requests and returns a fixed URL.
type scriptedForge struct {
	mu   sync.Mutex
	reqs []gitforge.PRRequest
	url  string
	err  error
}

func (f *scriptedForge) CreatePullRequest(ctx context.Context, req gitforge.PRRequest) (*gitforge.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &gitforge.PullRequest{URL: f.url, Number: 7}, nil
}

func (f *scriptedForge) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

// mockExecutor counts executions; releaseCh makes completion deterministic.
type mockExecutor struct {
	executed   atomic.Int64
	inProgress atomic.Int64
	tickets    sync.Map // ticket id → struct{}
	releaseCh  chan struct{}
	result     func(t *ent.Ticket) *ExecutionResult
}

func (m *mockExecutor) Execute(ctx context.Context, t *ent.Ticket, slot *vmpool.Slot) *ExecutionResult {
	m.executed.Add(1)
	m.tickets.Store(t.ID, struct{}{})
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{Error: ctx.Err()}
		}
	}
	if m.result != nil {
		return m.result(t)
	}
	return &ExecutionResult{
		BranchName: "forge/" + t.ID,
		Outputs:    map[string]any{"files_changed": 1},
	}
}

// ─── Harness ─────────────────────────────────────────────────────────────────

func intTestSchedulerConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		MaxConcurrent:           3,
		BasePollInterval:        50 * time.Millisecond,
		PollIntervalJitter:      0,
		BackoffFactor:           1.5,
		BackoffMax:              200 * time.Millisecond,
		LeaseWindow:             30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		TicketTimeout:           30 * time.Second,
		VMAcquireTimeout:        5 * time.Second,
		ReaperInterval:          time.Hour, // scans driven manually unless a test shortens it
		GracefulShutdownTimeout: 10 * time.Second,
	}
}

func intTestPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		MaxAttempts:  3,
		OnError:      config.PipelineErrorCompleteWithWarning,
		ScanInterval: time.Hour,
	}
}

// testEngine bundles a scheduler with its fakes and services.
type testEngine struct {
	scheduler *Scheduler
	pipeline  *Pipeline
	tickets   *services.TicketService
	pool      *fakePool
	verifier  *scriptedVerifier
	forge     *scriptedForge
}

func newTestEngine(t *testing.T, client *ent.Client, engineID string, cfg *config.SchedulerConfig) *testEngine {
	t.Helper()
	tickets := services.NewTicketService(client)
	artifacts := services.NewArtifactService(client)
	projects := services.NewProjectService(client)
	pool := newFakePool()
	verifier := &scriptedVerifier{}
	forge := &scriptedForge{url: "https://github.com/forgeworks/checkout-service/pull/7"}
	pipeline := NewPipeline(tickets, artifacts, projects, verifier, forge, nil, intTestPipelineConfig())
	failures := NewFailureRouter(tickets, retry.NewClassifier(nil), nil)
	t.Cleanup(pipeline.Stop)
	return &testEngine{
		scheduler: NewScheduler(engineID, tickets, pool, pipeline, failures, cfg),
		pipeline:  pipeline,
		tickets:   tickets,
		pool:      pool,
		verifier:  verifier,
		forge:     forge,
	}
}

// seedProject inserts a project for tickets to reference.
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

// seedDirectTicket inserts a direct-mode ticket in the given state, assigned
// so it is claimable.
func seedDirectTicket(t *testing.T, client *ent.Client, projectID string, state ticket.State, mutate func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	builder := client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetProjectID(projectID).
		SetTitle("Add retry to payment client").
		SetState(state).
		SetExecutionMode(ticket.ExecutionModeDirect).
		SetAssigneeID(lifecycle.ForgeAgent).
		SetAssigneeType(ticket.AssigneeTypeAgent)
	if mutate != nil {
		mutate(builder)
	}
	row, err := builder.Save(context.Background())
	require.NoError(t, err)
	return row
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// ticketState re-reads a ticket's state.
func ticketState(t *testing.T, client *ent.Client, id string) ticket.State {
	t.Helper()
	row, err := client.Ticket.Get(context.Background(), id)
	require.NoError(t, err)
	return row.State
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestSchedulerEndToEnd(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)
		ids = append(ids, row.ID)
	}

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())
	executor := &mockExecutor{}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	// Every ticket should run, verify, get a PR, and land in review.
	for _, id := range ids {
		id := id
		awaitCondition(t, 15*time.Second, 50*time.Millisecond,
			fmt.Sprintf("waiting for ticket %s to reach in_review", id),
			func() bool { return ticketState(t, client, id) == ticket.StateInReview })
	}

	assert.Equal(t, int64(3), executor.executed.Load())
	assert.Equal(t, 3, engine.verifier.requestCount())
	assert.Equal(t, 3, engine.forge.requestCount())

	for _, id := range ids {
		row, err := client.Ticket.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, row.PrURL)
		assert.Equal(t, engine.forge.url, *row.PrURL)
		require.NotNil(t, row.AssigneeID)
		assert.Equal(t, lifecycle.SentinelAgent, *row.AssigneeID)
		require.NotNil(t, row.VerificationStatus)
		assert.Equal(t, ticket.VerificationStatusPassed, *row.VerificationStatus)
		require.NotNil(t, row.BranchName)
		assert.Equal(t, "forge/"+id, *row.BranchName)
		assert.Nil(t, row.VMID, "dispatch bindings should be cleared")
		assert.Nil(t, row.LeaseExpires)
	}

	// Each acquired slot went back to the pool exactly once.
	assert.Len(t, engine.pool.releasedIDs(), 3)
}

func TestSchedulerCapacityLimit(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	for i := 0; i < 5; i++ {
		seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)
	}

	cfg := intTestSchedulerConfig()
	cfg.MaxConcurrent = 2

	engine := newTestEngine(t, client, "engine-1", cfg)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for concurrency to fill",
		func() bool { return executor.inProgress.Load() == 2 })

	// Let the loop run a few more cycles; it must not exceed the cap.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(2), executor.inProgress.Load())

	inProgress, err := client.Ticket.Query().
		Where(ticket.StateEQ(ticket.StateInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inProgress)

	close(releaseCh)

	awaitCondition(t, 15*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for all 5 executions, got %d", executor.executed.Load()),
		func() bool { return executor.executed.Load() >= 5 })
}

func TestSchedulerHeartbeatExtendsLease(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	cfg := intTestSchedulerConfig()
	cfg.HeartbeatInterval = 100 * time.Millisecond

	engine := newTestEngine(t, client, "engine-1", cfg)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for the ticket to be claimed",
		func() bool { return ticketState(t, client, row.ID) == ticket.StateInProgress })

	claimed, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.LeaseExpires)
	initialLease := *claimed.LeaseExpires

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for a heartbeat to extend the lease",
		func() bool {
			fresh, err := client.Ticket.Get(ctx, row.ID)
			require.NoError(t, err)
			return fresh.LeaseExpires != nil && fresh.LeaseExpires.After(initialLease)
		})

	close(releaseCh)
}

func TestSchedulerPoolExhaustedReturnsTicket(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	// A slow poll keeps the ticket visibly in ready between claim cycles.
	cfg := intTestSchedulerConfig()
	cfg.BasePollInterval = 300 * time.Millisecond

	engine := newTestEngine(t, client, "engine-1", cfg)
	engine.pool.acquireErr = fmt.Errorf("all slots leased: %w", vmpool.ErrPoolExhausted)
	executor := &mockExecutor{}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))

	// The ticket is claimed, the acquire fails, and the claim is rolled back.
	awaitCondition(t, 5*time.Second, 20*time.Millisecond,
		"waiting for the claim to be returned",
		func() bool {
			fresh, err := client.Ticket.Get(ctx, row.ID)
			require.NoError(t, err)
			return fresh.State == ticket.StateReady && fresh.VMID == nil && len(fresh.RetryStrategy) == 0
		})

	engine.scheduler.Stop()

	assert.Equal(t, int64(0), executor.executed.Load(), "executor must not run without a slot")

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.RetryCount, "pool exhaustion is not a ticket failure")
}

func TestSchedulerFailureSchedulesRetry(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())
	executor := &mockExecutor{result: func(*ent.Ticket) *ExecutionResult {
		return &ExecutionResult{Error: fmt.Errorf("git push: connection refused")}
	}}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))

	awaitCondition(t, 5*time.Second, 20*time.Millisecond,
		"waiting for the failure to be routed",
		func() bool {
			fresh, err := client.Ticket.Get(ctx, row.ID)
			require.NoError(t, err)
			return fresh.State == ticket.StateReady && fresh.RetryCount == 1
		})

	engine.scheduler.Stop()

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.RetryCount)
	require.NotNil(t, fresh.Error)
	assert.Contains(t, *fresh.Error, "connection refused")
	assert.Equal(t, string(retry.CategoryTransient), fresh.RetryStrategy["category"])
	assert.NotEmpty(t, fresh.RetryStrategy["not_before"], "transient failures carry a backoff gate")
	assert.Nil(t, fresh.VMID)

	// The slot must not leak on the failure path.
	assert.Len(t, engine.pool.releasedIDs(), 1)
}

func TestSchedulerAmbiguityHoldsTicket(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())
	executor := &mockExecutor{result: func(*ent.Ticket) *ExecutionResult {
		return &ExecutionResult{Error: fmt.Errorf("cannot determine intent: conflicting requirements in description")}
	}}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))

	awaitCondition(t, 5*time.Second, 20*time.Millisecond,
		"waiting for the hold",
		func() bool { return ticketState(t, client, row.ID) == ticket.StateOnHold })

	engine.scheduler.Stop()

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.RetryCount, "holds do not consume the retry budget")
	require.NotNil(t, fresh.HoldReason)
	assert.Equal(t, "specification ambiguity reported by agent", *fresh.HoldReason)
}

func TestSchedulerDrainReturnsRunningWork(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	cfg := intTestSchedulerConfig()
	cfg.GracefulShutdownTimeout = 200 * time.Millisecond

	engine := newTestEngine(t, client, "engine-1", cfg)
	// Executor blocks until its context is cancelled by the drain.
	executor := &mockExecutor{releaseCh: make(chan struct{})}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for the execution to start",
		func() bool { return executor.inProgress.Load() == 1 })

	engine.scheduler.Stop()

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, fresh.State, "interrupted work goes back to the pool")
	assert.Nil(t, fresh.VMID)
	assert.Equal(t, 0, fresh.RetryCount, "a drain is not a failure")
	assert.Len(t, engine.pool.releasedIDs(), 1, "the slot must be returned")
}

func TestSchedulerIgnoresUnregisteredModes(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	pullRow := seedDirectTicket(t, client, project.ID, ticket.StateReady, func(b *ent.TicketCreate) {
		b.SetExecutionMode(ticket.ExecutionModePull)
	})
	directRow := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	engine := newTestEngine(t, client, "engine-1", intTestSchedulerConfig())
	executor := &mockExecutor{}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	awaitCondition(t, 15*time.Second, 50*time.Millisecond,
		"waiting for the direct ticket to finish",
		func() bool { return ticketState(t, client, directRow.ID) == ticket.StateInReview })

	// The pull-mode ticket stays in the pool for pull agents.
	assert.Equal(t, ticket.StateReady, ticketState(t, client, pullRow.ID))
	_, touched := executor.tickets.Load(pullRow.ID)
	assert.False(t, touched)
}

func TestSchedulerStartRequiresExecutors(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	engine := newTestEngine(t, dbClient.Client, "engine-1", intTestSchedulerConfig())

	err := engine.scheduler.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no executors registered")
}

func TestSchedulerHealth(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)
	seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	cfg := intTestSchedulerConfig()
	cfg.MaxConcurrent = 1

	engine := newTestEngine(t, client, "engine-1", cfg)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	engine.scheduler.RegisterExecutor(ticket.ExecutionModeDirect, executor)

	require.NoError(t, engine.scheduler.Start(ctx))
	defer engine.scheduler.Stop()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for one execution to be active",
		func() bool { return executor.inProgress.Load() == 1 })

	health := engine.scheduler.Health()
	assert.True(t, health.Running)
	assert.Equal(t, "engine-1", health.EngineID)
	assert.Equal(t, 1, health.ActiveExecutions)
	assert.Equal(t, 1, health.MaxConcurrent)
	assert.Equal(t, 1, health.PendingTickets, "the second ticket waits in ready")
	assert.True(t, health.DBReachable)
	require.Len(t, health.ActiveTickets, 1)

	close(releaseCh)
}
