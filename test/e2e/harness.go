// Package e2e boots a complete engine — database, services, scheduler,
// pipeline, sweep, HTTP server — and drives it the way production does:
// planners post ticket batches, pull agents work them over the agent surface,
// operators act on what comes back.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/api"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/retry"
	"github.com/forgeworks/forge/pkg/scheduler"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/sweep"
	testdb "github.com/forgeworks/forge/test/database"
)

// TestApp is one fully wired engine instance under test.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Domain services
	Tickets   *services.TicketService
	Projects  *services.ProjectService
	Artifacts *services.ArtifactService
	Events    *services.EventService

	// Scripted outbound collaborators
	Verifier *ScriptedVerifier
	Forge    *ScriptedForge
	Pool     *FakeSlotPool

	// Engine
	Scheduler *scheduler.Scheduler
	Pipeline  *scheduler.Pipeline
	Sweeper   *sweep.Service
	Failures  *scheduler.FailureRouter
	Server    *api.Server

	// Runtime
	BaseURL  string // e.g. "http://127.0.0.1:54321"
	EngineID string

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg      *config.Config
	dbClient *database.Client // injected DB client (for multi-replica tests)
	engineID string           // custom engine ID (for multi-replica tests)
	verifier *ScriptedVerifier
	forge    *ScriptedForge
	pool     *FakeSlotPool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithEngineID overrides the auto-generated engine ID. Required for
// multi-replica tests so each replica gets a distinct identity for claiming
// and startup lease recovery.
func WithEngineID(id string) TestAppOption {
	return func(c *testAppConfig) { c.engineID = id }
}

// WithVerifier sets a pre-scripted verifier.
func WithVerifier(v *ScriptedVerifier) TestAppOption {
	return func(c *testAppConfig) { c.verifier = v }
}

// WithForge sets a pre-scripted git forge.
func WithForge(f *ScriptedForge) TestAppOption {
	return func(c *testAppConfig) { c.forge = f }
}

// WithPool sets a custom VM slot pool.
func WithPool(p *FakeSlotPool) TestAppOption {
	return func(c *testAppConfig) { c.pool = p }
}

// NewTestApp creates and starts a full engine instance. Shutdown is
// registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = fastTestConfig()
	}
	if tc.verifier == nil {
		tc.verifier = NewScriptedVerifier()
	}
	if tc.forge == nil {
		tc.forge = NewScriptedForge()
	}
	if tc.pool == nil {
		tc.pool = NewFakeSlotPool()
	}
	engineID := tc.engineID
	if engineID == "" {
		engineID = fmt.Sprintf("e2e-%s", t.Name())
	}

	// 1. Database.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Domain services.
	tickets := services.NewTicketService(entClient)
	projects := services.NewProjectService(entClient)
	artifacts := services.NewArtifactService(entClient)
	events := services.NewEventService(entClient)

	// 3. Failure routing and the post-execution pipeline.
	failures := scheduler.NewFailureRouter(tickets, retry.NewClassifier(tc.cfg.Retry), nil)
	pipeline := scheduler.NewPipeline(tickets, artifacts, projects, tc.verifier, tc.forge, nil, tc.cfg.Pipeline)
	ctx := context.Background()
	pipeline.Start(ctx)

	// 4. Scheduler with the direct-mode executor; the claim loop only
	// reserves direct tickets, pull tickets stay in the pool for the agent
	// surface. The lease reaper covers both.
	sched := scheduler.NewScheduler(engineID, tickets, tc.pool, pipeline, failures, tc.cfg.Scheduler)
	sched.RegisterExecutor(ticket.ExecutionModeDirect, scheduler.NewAgentExecutor(projects))
	require.NoError(t, sched.Start(ctx))

	// 5. Background sweep.
	sweeper := sweep.NewService(tc.cfg.Sweep, tickets, events)
	sweeper.Start(ctx)

	// 6. HTTP server on a random port.
	server := api.NewServer(tc.cfg, dbClient, tickets, projects, sched, pipeline)
	server.SetArtifactService(artifacts)
	server.SetEventService(events)
	server.SetFailureRouter(failures)
	require.NoError(t, server.ValidateWiring(), "server wiring incomplete — did you forget a Set* call?")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:    tc.cfg,
		DBClient:  dbClient,
		EntClient: entClient,
		Tickets:   tickets,
		Projects:  projects,
		Artifacts: artifacts,
		Events:    events,
		Verifier:  tc.verifier,
		Forge:     tc.forge,
		Pool:      tc.pool,
		Scheduler: sched,
		Pipeline:  pipeline,
		Sweeper:   sweeper,
		Failures:  failures,
		Server:    server,
		BaseURL:   fmt.Sprintf("http://%s", ln.Addr().String()),
		EngineID:  engineID,
		t:         t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		sched.Stop()
		sweeper.Stop()
		pipeline.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// fastTestConfig tightens every loop interval so scenarios settle in
// milliseconds instead of the production seconds-to-minutes cadence.
func fastTestConfig() *config.Config {
	cfg := config.Default()

	cfg.Scheduler.MaxConcurrent = 3
	cfg.Scheduler.BasePollInterval = 50 * time.Millisecond
	cfg.Scheduler.PollIntervalJitter = 0
	cfg.Scheduler.BackoffMax = 200 * time.Millisecond
	cfg.Scheduler.LeaseWindow = 30 * time.Second
	cfg.Scheduler.HeartbeatInterval = 10 * time.Second
	cfg.Scheduler.TicketTimeout = 30 * time.Second
	cfg.Scheduler.VMAcquireTimeout = 5 * time.Second
	cfg.Scheduler.ReaperInterval = 100 * time.Millisecond
	cfg.Scheduler.GracefulShutdownTimeout = 10 * time.Second

	cfg.Pipeline.ScanInterval = 100 * time.Millisecond

	cfg.Sweep.UnblockInterval = 100 * time.Millisecond
	cfg.Sweep.StuckReportInterval = time.Hour
	cfg.Sweep.CompactionInterval = time.Hour

	// Same budgets as production, millisecond backoff gates.
	cfg.Retry = retry.PolicyTable{
		retry.CategoryTransient:    {MaxRetries: 5, Backoff: retry.BackoffExponential, BaseDelayMS: 20, MaxDelayMS: 100},
		retry.CategoryVerification: {MaxRetries: 3, Backoff: retry.BackoffConstant, BaseDelayMS: 20},
		retry.CategoryResource:     {MaxRetries: 2, Backoff: retry.BackoffExponential, BaseDelayMS: 20, MaxDelayMS: 100},
		retry.CategoryAmbiguity:    {MaxRetries: 0, Backoff: retry.BackoffNone},
		retry.CategoryUnknown:      {MaxRetries: 3, Backoff: retry.BackoffExponential, BaseDelayMS: 20, MaxDelayMS: 100},
	}

	return cfg
}
