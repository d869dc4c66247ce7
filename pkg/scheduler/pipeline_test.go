package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/verification"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPipeline wires a pipeline with scripted verifier and forge fakes.
func newTestPipeline(t *testing.T, client *ent.Client, cfg *config.PipelineConfig) (*Pipeline, *scriptedVerifier, *scriptedForge) {
	t.Helper()
	if cfg == nil {
		cfg = intTestPipelineConfig()
	}
	verifier := &scriptedVerifier{}
	forge := &scriptedForge{url: "https://github.com/forgeworks/checkout-service/pull/42"}
	p := NewPipeline(
		services.NewTicketService(client),
		services.NewArtifactService(client),
		services.NewProjectService(client),
		verifier, forge, nil, cfg)
	t.Cleanup(p.Stop)
	return p, verifier, forge
}

// seedVerifying inserts a ticket that just finished execution: branch pushed,
// slot still recorded, waiting for the pipeline.
func seedVerifying(t *testing.T, client *ent.Client, projectID string, mutate func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	return seedDirectTicket(t, client, projectID, ticket.StateVerifying, func(b *ent.TicketCreate) {
		b.SetVMID("vm-501").
			SetBranchName("forge/ticket-1").
			SetOutputs(map[string]any{"files_changed": 2})
		if mutate != nil {
			mutate(b)
		}
	})
}

// seedFeedbackArtifact records one failed verification attempt.
func seedFeedbackArtifact(t *testing.T, client *ent.Client, ticketID string, attempt int) {
	t.Helper()
	_, err := client.TicketArtifact.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetKind(ticketartifact.KindVerificationFeedback).
		SetAttempt(attempt).
		SetContent("tests failed: TestCheckout_Retry").
		Save(context.Background())
	require.NoError(t, err)
}

func artifactsByKind(t *testing.T, client *ent.Client, ticketID string, kind ticketartifact.Kind) []*ent.TicketArtifact {
	t.Helper()
	rows, err := client.TicketArtifact.Query().
		Where(ticketartifact.TicketIDEQ(ticketID), ticketartifact.KindEQ(kind)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestPipelinePassedToReview(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedVerifying(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetDescription("Wrap the payment client with retries.").
			SetAcceptanceCriteria("Transient errors retried up to 3 times.")
	})

	p, verifier, forge := newTestPipeline(t, client, nil)
	verifier.verdicts = []*verification.Verdict{{
		Status:     verification.StatusPassed,
		ReadyForPR: true,
		Evidence:   map[string]any{"static": "clean", "tests": "42 passed"},
	}}

	require.NoError(t, p.Run(ctx, row.ID))

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInReview, fresh.State)
	require.NotNil(t, fresh.PrURL)
	assert.Equal(t, forge.url, *fresh.PrURL)
	require.NotNil(t, fresh.AssigneeID)
	assert.Equal(t, lifecycle.SentinelAgent, *fresh.AssigneeID)
	require.NotNil(t, fresh.VerificationStatus)
	assert.Equal(t, ticket.VerificationStatusPassed, *fresh.VerificationStatus)
	assert.Nil(t, fresh.VMID)

	// The verifier was asked for the right branch on attempt 1.
	require.Len(t, verifier.requests, 1)
	req := verifier.requests[0]
	assert.Equal(t, "forge/ticket-1", req.BranchName)
	assert.Equal(t, project.RepoURL, req.RepoURL)
	assert.Equal(t, 1, req.Attempt)
	assert.Equal(t, "Transient errors retried up to 3 times.", req.AcceptanceCriteria)
	assert.Equal(t, verification.AllPhases(), req.Phases)

	// The PR targets the project default branch with the pushed head.
	require.Len(t, forge.reqs, 1)
	pr := forge.reqs[0]
	assert.Equal(t, "forge/ticket-1", pr.Branch)
	assert.Equal(t, "main", pr.BaseBranch)
	assert.Equal(t, row.Title, pr.Title)
	assert.Contains(t, pr.Body, row.ID)

	// Evidence lands on the audit ledger even on success.
	evidence := artifactsByKind(t, client, row.ID, ticketartifact.KindVerificationEvidence)
	require.Len(t, evidence, 1)
	assert.Equal(t, 1, evidence[0].Attempt)
	assert.Equal(t, "42 passed", evidence[0].Metadata["tests"])
}

func TestPipelineFailedStoresFeedback(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedVerifying(t, client, project.ID, nil)

	p, verifier, forge := newTestPipeline(t, client, nil)
	verifier.verdicts = []*verification.Verdict{{
		Status:           verification.StatusFailed,
		FeedbackForAgent: "TestCheckout_Retry asserts 3 attempts, implementation stops at 2",
		Evidence:         map[string]any{"tests": "1 failed"},
	}}

	require.NoError(t, p.Run(ctx, row.ID))

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateNeedsReview, fresh.State)
	require.NotNil(t, fresh.VerificationStatus)
	assert.Equal(t, ticket.VerificationStatusFailed, *fresh.VerificationStatus)
	assert.Nil(t, fresh.VMID)
	assert.Nil(t, fresh.PrURL, "no PR for unverified work")
	assert.Equal(t, 0, forge.requestCount())

	feedback := artifactsByKind(t, client, row.ID, ticketartifact.KindVerificationFeedback)
	require.Len(t, feedback, 1)
	assert.Equal(t, 1, feedback[0].Attempt)
	assert.Contains(t, feedback[0].Content, "stops at 2")
}

func TestPipelineExhaustedStoresEvidence(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedVerifying(t, client, project.ID, nil)
	// Two failed attempts already on the ledger make this attempt 3 of 3.
	seedFeedbackArtifact(t, client, row.ID, 1)
	seedFeedbackArtifact(t, client, row.ID, 2)

	p, verifier, _ := newTestPipeline(t, client, nil)
	verifier.verdicts = []*verification.Verdict{{
		Status:           verification.StatusFailed,
		FeedbackForAgent: "still failing",
		Evidence:         map[string]any{"tests": "1 failed"},
	}}

	require.NoError(t, p.Run(ctx, row.ID))

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateNeedsReview, fresh.State)

	require.Len(t, verifier.requests, 1)
	assert.Equal(t, 3, verifier.requests[0].Attempt)

	// The budget is spent: the outcome is recorded as evidence for a human,
	// not as feedback for another run.
	assert.Len(t, artifactsByKind(t, client, row.ID, ticketartifact.KindVerificationFeedback), 2)
	evidence := artifactsByKind(t, client, row.ID, ticketartifact.KindVerificationEvidence)
	require.Len(t, evidence, 1)
	assert.Equal(t, 3, evidence[0].Attempt)
}

func TestPipelineReadyForPROverridesFailed(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedVerifying(t, client, project.ID, nil)

	p, verifier, forge := newTestPipeline(t, client, nil)
	verifier.verdicts = []*verification.Verdict{{
		Status:     verification.StatusFailed,
		ReadyForPR: true,
		Evidence:   map[string]any{"static": "2 warnings"},
	}}

	require.NoError(t, p.Run(ctx, row.ID))

	// ready_for_pr carries the verdict: soft failures still go to review.
	assert.Equal(t, ticket.StateInReview, ticketState(t, client, row.ID))
	assert.Equal(t, 1, forge.requestCount())
}

func TestPipelineVerifierErrorCompletesWithWarning(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedVerifying(t, client, project.ID, nil)

	p, verifier, forge := newTestPipeline(t, client, nil)
	verifier.err = fmt.Errorf("verifier sandbox unavailable: 503")

	require.NoError(t, p.Run(ctx, row.ID))

	fresh, err := client.Ticket.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateDone, fresh.State, "the push is never lost")
	require.NotNil(t, fresh.CompletedAt)
	assert.Nil(t, fresh.VMID)
	assert.Equal(t, 0, forge.requestCount())

	errors := artifactsByKind(t, client, row.ID, ticketartifact.KindPipelineError)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0].Content, "503")
}

func TestPipelineVerifierErrorNeedsReviewPolicy(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedVerifying(t, client, project.ID, nil)

	cfg := intTestPipelineConfig()
	cfg.OnError = config.PipelineErrorNeedsReview

	p, verifier, _ := newTestPipeline(t, client, cfg)
	verifier.err = fmt.Errorf("verifier sandbox unavailable")

	require.NoError(t, p.Run(ctx, row.ID))

	assert.Equal(t, ticket.StateNeedsReview, ticketState(t, client, row.ID))
	assert.Len(t, artifactsByKind(t, client, row.ID, ticketartifact.KindPipelineError), 1)
}

func TestPipelineMissingRepoURLCompletesWithWarning(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// A project with no repo wired up cannot be verified.
	project, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetName("scratch").
		Save(ctx)
	require.NoError(t, err)

	row := seedVerifying(t, client, project.ID, nil)

	p, verifier, _ := newTestPipeline(t, client, nil)

	require.NoError(t, p.Run(ctx, row.ID))

	assert.Equal(t, ticket.StateDone, ticketState(t, client, row.ID))
	assert.Equal(t, 0, verifier.requestCount(), "verification is skipped entirely")

	errors := artifactsByKind(t, client, row.ID, ticketartifact.KindPipelineError)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0].Content, "repo_url")
}

func TestPipelineSkipsNonVerifying(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	row := seedDirectTicket(t, client, project.ID, ticket.StateReady, nil)

	p, verifier, _ := newTestPipeline(t, client, nil)

	require.NoError(t, p.Run(ctx, row.ID))

	assert.Equal(t, ticket.StateReady, ticketState(t, client, row.ID))
	assert.Equal(t, 0, verifier.requestCount())
}

func TestPipelineScanDrivesVerifyingRows(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	project := seedProject(t, client)
	// A pull agent completed this ticket; no engine-side run exists for it.
	row := seedVerifying(t, client, project.ID, func(b *ent.TicketCreate) {
		b.SetVMID(services.AgentSlotPrefix + "agent-7")
	})

	cfg := intTestPipelineConfig()
	cfg.ScanInterval = 100 * time.Millisecond

	p, _, _ := newTestPipeline(t, client, cfg)
	p.Start(ctx)
	defer p.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for the scan to drive the ticket to review",
		func() bool { return ticketState(t, client, row.ID) == ticket.StateInReview })
}

func TestPipelineInflightGuard(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	p, _, _ := newTestPipeline(t, dbClient.Client, nil)

	require.True(t, p.begin("ticket-1"))
	assert.False(t, p.begin("ticket-1"), "a second run for the same ticket is refused")
	assert.True(t, p.isInflight("ticket-1"))

	p.end("ticket-1")
	assert.False(t, p.isInflight("ticket-1"))
	assert.True(t, p.begin("ticket-1"), "finished tickets can run again")
	p.end("ticket-1")
}
