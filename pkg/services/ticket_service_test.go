package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_CreateTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	t.Run("creates draft with defaults", func(t *testing.T) {
		req := models.CreateTicketRequest{
			TenantID:  "tenant-1",
			ProjectID: project.ID,
			BuildID:   "build-1",
			Title:     "Wire request tracing",
			DependsOn: []string{"some-other-ticket"},
		}

		created, err := service.CreateTicket(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateDraft, created.State)
		assert.Equal(t, ticket.ExecutionModePull, created.ExecutionMode)
		assert.Equal(t, ticket.SizeMedium, created.Size)
		assert.Equal(t, []string{"some-other-ticket"}, created.DependsOn)
		assert.Nil(t, created.AssigneeID, "drafts are unassigned until activation")
		assert.NotEmpty(t, created.ID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateTicketRequest
		}{
			{
				name: "missing tenant_id",
				req:  models.CreateTicketRequest{ProjectID: project.ID, Title: "x"},
			},
			{
				name: "missing project_id",
				req:  models.CreateTicketRequest{TenantID: "tenant-1", Title: "x"},
			},
			{
				name: "missing title",
				req:  models.CreateTicketRequest{TenantID: "tenant-1", ProjectID: project.ID},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateTicket(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects unknown project", func(t *testing.T) {
		_, err := service.CreateTicket(ctx, models.CreateTicketRequest{
			TenantID:  "tenant-1",
			ProjectID: "no-such-project",
			Title:     "x",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects duplicate ticket_id", func(t *testing.T) {
		req := models.CreateTicketRequest{
			TicketID:  uuid.New().String(),
			TenantID:  "tenant-1",
			ProjectID: project.ID,
			Title:     "x",
		}
		_, err := service.CreateTicket(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateTicket(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects invalid enums", func(t *testing.T) {
		_, err := service.CreateTicket(ctx, models.CreateTicketRequest{
			TenantID:      "tenant-1",
			ProjectID:     project.ID,
			Title:         "x",
			ExecutionMode: "batch",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateTicket(ctx, models.CreateTicketRequest{
			TenantID:  "tenant-1",
			ProjectID: project.ID,
			Title:     "x",
			Size:      "gigantic",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTicketService_ActivateBuild(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	t.Run("routes drafts by dependency resolution", func(t *testing.T) {
		buildID := "build-" + uuid.New().String()

		// Pre-existing done ticket the batch may depend on.
		doneDep := seedTicket(t, client.Client, project.ID, ticket.StateDone, nil)

		free := seedTicket(t, client.Client, project.ID, ticket.StateDraft, func(c *ent.TicketCreate) {
			c.SetBuildID(buildID)
		})
		onDone := seedTicket(t, client.Client, project.ID, ticket.StateDraft, func(c *ent.TicketCreate) {
			c.SetBuildID(buildID).SetDependsOn([]string{doneDep.ID})
		})
		gated := seedTicket(t, client.Client, project.ID, ticket.StateDraft, func(c *ent.TicketCreate) {
			c.SetBuildID(buildID).SetDependsOn([]string{free.ID})
		})
		dangling := seedTicket(t, client.Client, project.ID, ticket.StateDraft, func(c *ent.TicketCreate) {
			c.SetBuildID(buildID).SetDependsOn([]string{"never-created"})
		})

		counts, err := service.ActivateBuild(ctx, buildID)
		require.NoError(t, err)
		assert.Equal(t, 2, counts.Ready)
		assert.Equal(t, 2, counts.Blocked)
		assert.Equal(t, 4, counts.Total())

		for id, want := range map[string]ticket.State{
			free.ID:     ticket.StateReady,
			onDone.ID:   ticket.StateReady,
			gated.ID:    ticket.StateBlocked,
			dangling.ID: ticket.StateBlocked,
		} {
			row, err := client.Ticket.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, want, row.State, "ticket %s", id)
			require.NotNil(t, row.AssigneeID)
			assert.Equal(t, lifecycle.ForgeAgent, *row.AssigneeID)
			require.NotNil(t, row.AssigneeType)
			assert.Equal(t, ticket.AssigneeTypeAgent, *row.AssigneeType)
		}

		// Every routed draft got a transition event.
		events, err := client.TicketEvent.Query().
			Where(
				ticketevent.TicketIDIn(free.ID, onDone.ID, gated.ID, dangling.ID),
				ticketevent.KindEQ(ticketevent.KindTransition),
			).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 4)
		for _, evt := range events {
			assert.Equal(t, "activation", evt.Actor)
			assert.Equal(t, string(ticket.StateDraft), evt.FromState)
		}
	})

	t.Run("second activation is a no-op", func(t *testing.T) {
		buildID := "build-" + uuid.New().String()
		seedTicket(t, client.Client, project.ID, ticket.StateDraft, func(c *ent.TicketCreate) {
			c.SetBuildID(buildID)
		})

		first, err := service.ActivateBuild(ctx, buildID)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Ready)

		second, err := service.ActivateBuild(ctx, buildID)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Total())
	})

	t.Run("unknown build", func(t *testing.T) {
		_, err := service.ActivateBuild(ctx, "no-such-build")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty build_id", func(t *testing.T) {
		_, err := service.ActivateBuild(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTicketService_ClaimNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	leaseWindow := 2 * time.Minute

	t.Run("claims oldest ready ticket and opens lease", func(t *testing.T) {
		older := seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetCreatedAt(time.Now().Add(-2 * time.Hour))
		})
		seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetCreatedAt(time.Now().Add(-1 * time.Hour))
		})

		before := time.Now()
		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-7"}, leaseWindow)
		require.NoError(t, err)
		assert.Equal(t, older.ID, claimed.ID)
		assert.Equal(t, ticket.StateInProgress, claimed.State)
		require.NotNil(t, claimed.AssigneeID)
		assert.Equal(t, "agent-7", *claimed.AssigneeID)
		require.NotNil(t, claimed.VMID)
		assert.Equal(t, "agent-slot/agent-7", *claimed.VMID, "pull agents get a surrogate slot id")
		require.NotNil(t, claimed.StartedAt)
		require.NotNil(t, claimed.LeaseExpires)
		assert.WithinDuration(t, before.Add(leaseWindow), *claimed.LeaseExpires, 5*time.Second)

		// Transition recorded with the agent as actor.
		evt, err := client.TicketEvent.Query().
			Where(
				ticketevent.TicketIDEQ(claimed.ID),
				ticketevent.KindEQ(ticketevent.KindTransition),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "agent-7", evt.Actor)
		assert.Equal(t, string(ticket.StateReady), evt.FromState)
		assert.Equal(t, string(ticket.StateInProgress), evt.ToState)

		// Second claim takes the remaining ticket, third finds nothing.
		_, err = service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-8"}, leaseWindow)
		require.NoError(t, err)
		_, err = service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-9"}, leaseWindow)
		assert.ErrorIs(t, err, ErrNoTicketsAvailable)
	})

	t.Run("prefers small tickets among equals", func(t *testing.T) {
		createdAt := time.Now().Add(-30 * time.Minute)
		seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetCreatedAt(createdAt).SetSize(ticket.SizeLarge)
		})
		small := seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetCreatedAt(createdAt).SetSize(ticket.SizeSmall)
		})

		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-size"}, leaseWindow)
		require.NoError(t, err)
		assert.Equal(t, small.ID, claimed.ID)

		// Drain the large one so later subtests start clean.
		_, err = service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-size"}, leaseWindow)
		require.NoError(t, err)
	})

	t.Run("skips direct-mode tickets", func(t *testing.T) {
		seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetExecutionMode(ticket.ExecutionModeDirect)
		})

		_, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-pull"}, leaseWindow)
		assert.ErrorIs(t, err, ErrNoTicketsAvailable)

		// Park the direct ticket out of the way.
		_, err = client.Ticket.Update().
			Where(ticket.ExecutionModeEQ(ticket.ExecutionModeDirect)).
			SetState(ticket.StateCancelled).
			Save(ctx)
		require.NoError(t, err)
	})

	t.Run("honors retry not_before", func(t *testing.T) {
		delayed := seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetRetryStrategy(map[string]interface{}{
				"category":   "transient",
				"not_before": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
			})
		})

		_, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-wait"}, leaseWindow)
		assert.ErrorIs(t, err, ErrNoTicketsAvailable, "future not_before keeps the ticket out of the pool")

		// Rewind the delay; the ticket becomes claimable.
		_, err = client.Ticket.UpdateOneID(delayed.ID).
			SetRetryStrategy(map[string]interface{}{
				"category":   "transient",
				"not_before": time.Now().Add(-time.Minute).UTC().Format(time.RFC3339),
			}).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-wait"}, leaseWindow)
		require.NoError(t, err)
		assert.Equal(t, delayed.ID, claimed.ID)
	})

	t.Run("applies request filters", func(t *testing.T) {
		seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetSize(ticket.SizeLarge).SetBuildID("filter-build")
		})
		smallTarget := seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetSize(ticket.SizeSmall).SetBuildID("filter-build")
		})

		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-filter",
			Filter:  &models.ClaimFilter{Size: "small", BuildID: "filter-build"},
		}, leaseWindow)
		require.NoError(t, err)
		assert.Equal(t, smallTarget.ID, claimed.ID)

		_, err = service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-filter",
			Filter:  &models.ClaimFilter{Size: "small", BuildID: "filter-build"},
		}, leaseWindow)
		assert.ErrorIs(t, err, ErrNoTicketsAvailable)

		// Drain the large leftover.
		_, err = service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-filter"}, leaseWindow)
		require.NoError(t, err)
	})

	t.Run("uses caller-provided vm_id", func(t *testing.T) {
		seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-vm",
			VMID:    "vm-prewarmed-3",
		}, leaseWindow)
		require.NoError(t, err)
		require.NotNil(t, claimed.VMID)
		assert.Equal(t, "vm-prewarmed-3", *claimed.VMID)
	})

	t.Run("sentinel review poll is read-only", func(t *testing.T) {
		review := seedTicket(t, client.Client, project.ID, ticket.StateInReview, func(c *ent.TicketCreate) {
			c.SetAssigneeID(lifecycle.SentinelAgent)
		})

		got, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: lifecycle.SentinelAgent,
			Filter:  &models.ClaimFilter{State: "in_review"},
		}, leaseWindow)
		require.NoError(t, err)
		assert.Equal(t, review.ID, got.ID)

		// The row stays in_review; approval and rejection are the only
		// writes on the review path.
		row, err := client.Ticket.Get(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInReview, row.State)
		assert.Nil(t, row.LeaseExpires)
	})

	t.Run("rejects unsupported filter state", func(t *testing.T) {
		_, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-x",
			Filter:  &models.ClaimFilter{State: "done"},
		}, leaseWindow)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires agent_id", func(t *testing.T) {
		_, err := service.ClaimNext(ctx, models.ClaimRequest{}, leaseWindow)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

// TestTicketService_ConcurrentClaims verifies that competing agents dequeue
// distinct tickets under FOR UPDATE SKIP LOCKED.
func TestTicketService_ConcurrentClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	ticketIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)
		ticketIDs[row.ID] = struct{}{}
	}

	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(agentNum int) {
			defer wg.Done()
			row, err := service.ClaimNext(ctx, models.ClaimRequest{
				AgentID: fmt.Sprintf("agent-%d", agentNum),
			}, 2*time.Minute)
			if err != nil {
				errCh <- fmt.Errorf("agent-%d claim failed: %w", agentNum, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, row.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 tickets should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "ticket %s claimed by multiple agents", id)
		seen[id] = struct{}{}

		_, ok := ticketIDs[id]
		assert.True(t, ok, "claimed ticket %s was not in original set", id)
	}
}

func TestTicketService_Claim(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	t.Run("wins on ready unbound ticket", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

		ok, err := service.Claim(ctx, row.ID, "vm-pending", "engine-1", 2*time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		updated, err := client.Ticket.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, updated.State)
		require.NotNil(t, updated.VMID)
		assert.Equal(t, "vm-pending", *updated.VMID)
		require.NotNil(t, updated.EngineID)
		assert.Equal(t, "engine-1", *updated.EngineID)
		require.NotNil(t, updated.LeaseExpires)

		// Losing claim on the same row.
		ok, err = service.Claim(ctx, row.ID, "vm-other", "engine-2", 2*time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("refuses non-ready ticket", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateDraft, nil)

		ok, err := service.Claim(ctx, row.ID, "vm-x", "", 2*time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTicketService_BindVM(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)
	ok, err := service.Claim(ctx, row.ID, "vm-pending", "engine-1", 2*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("swaps placeholder for real slot", func(t *testing.T) {
		ok, err := service.BindVM(ctx, row.ID, "vm-pending", "vm-real-42")
		require.NoError(t, err)
		assert.True(t, ok)

		updated, err := client.Ticket.Get(ctx, row.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.VMID)
		assert.Equal(t, "vm-real-42", *updated.VMID)
	})

	t.Run("stale binding loses", func(t *testing.T) {
		ok, err := service.BindVM(ctx, row.ID, "vm-pending", "vm-real-43")
		require.NoError(t, err)
		assert.False(t, ok, "placeholder was already swapped")
	})
}

func TestTicketService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	leaseWindow := 2 * time.Minute

	seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)
	claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-hb"}, leaseWindow)
	require.NoError(t, err)
	initialLease := *claimed.LeaseExpires

	t.Run("extends lease and records progress", func(t *testing.T) {
		time.Sleep(20 * time.Millisecond)
		ok, err := service.Heartbeat(ctx, models.HeartbeatRequest{
			AgentID:  "agent-hb",
			TicketID: claimed.ID,
			Progress: "tests passing locally",
		}, leaseWindow)
		require.NoError(t, err)
		assert.True(t, ok)

		updated, err := client.Ticket.Get(ctx, claimed.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.LeaseExpires)
		assert.True(t, updated.LeaseExpires.After(initialLease), "lease should move forward")

		evt, err := client.TicketEvent.Query().
			Where(
				ticketevent.TicketIDEQ(claimed.ID),
				ticketevent.KindEQ(ticketevent.KindProgress),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tests passing locally", evt.Message)
		assert.Equal(t, "agent-hb", evt.Actor)
	})

	t.Run("plain heartbeat appends nothing", func(t *testing.T) {
		ok, err := service.Heartbeat(ctx, models.HeartbeatRequest{
			AgentID:  "agent-hb",
			TicketID: claimed.ID,
		}, leaseWindow)
		require.NoError(t, err)
		assert.True(t, ok)

		count, err := client.TicketEvent.Query().
			Where(
				ticketevent.TicketIDEQ(claimed.ID),
				ticketevent.KindIn(ticketevent.KindProgress, ticketevent.KindHeartbeat),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "only the earlier progress event exists")
	})

	t.Run("wrong agent is rejected", func(t *testing.T) {
		ok, err := service.Heartbeat(ctx, models.HeartbeatRequest{
			AgentID:  "agent-impostor",
			TicketID: claimed.ID,
		}, leaseWindow)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("terminal ticket is rejected", func(t *testing.T) {
		done := seedTicket(t, client.Client, project.ID, ticket.StateDone, func(c *ent.TicketCreate) {
			c.SetAssigneeID("agent-hb")
		})
		ok, err := service.Heartbeat(ctx, models.HeartbeatRequest{
			AgentID:  "agent-hb",
			TicketID: done.ID,
		}, leaseWindow)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTicketService_ConfirmBranch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)
	claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-br"}, 2*time.Minute)
	require.NoError(t, err)

	t.Run("records the branch for the owner", func(t *testing.T) {
		ok, err := service.ConfirmBranch(ctx, models.StartRequest{
			TicketID:   claimed.ID,
			AgentID:    "agent-br",
			BranchName: "forge/add-retry",
		})
		require.NoError(t, err)
		assert.True(t, ok)

		row, err := client.Ticket.Get(ctx, claimed.ID)
		require.NoError(t, err)
		require.NotNil(t, row.BranchName)
		assert.Equal(t, "forge/add-retry", *row.BranchName)
	})

	t.Run("repeat confirmation is idempotent", func(t *testing.T) {
		ok, err := service.ConfirmBranch(ctx, models.StartRequest{
			TicketID:   claimed.ID,
			AgentID:    "agent-br",
			BranchName: "forge/add-retry",
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong agent is rejected", func(t *testing.T) {
		ok, err := service.ConfirmBranch(ctx, models.StartRequest{
			TicketID:   claimed.ID,
			AgentID:    "agent-impostor",
			BranchName: "forge/stolen",
		})
		require.NoError(t, err)
		assert.False(t, ok)

		row, err := client.Ticket.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, "forge/add-retry", *row.BranchName)
	})

	t.Run("row outside in_progress is rejected", func(t *testing.T) {
		parked := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)
		ok, err := service.ConfirmBranch(ctx, models.StartRequest{
			TicketID:   parked.ID,
			AgentID:    "agent-br",
			BranchName: "forge/too-early",
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("branch name is required", func(t *testing.T) {
		_, err := service.ConfirmBranch(ctx, models.StartRequest{
			TicketID: claimed.ID,
			AgentID:  "agent-br",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTicketService_Transition(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	t.Run("applies state change with extra writes", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetVMID("vm-1").SetLeaseExpires(time.Now().Add(time.Minute))
		})

		ok, err := service.Transition(ctx, TransitionInput{
			TicketID: row.ID,
			From:     []ticket.State{ticket.StateInProgress},
			To:       ticket.StateVerifying,
			Actor:    "agent-1",
			Cause:    "work complete",
			Mutate: func(u *ent.TicketUpdate) {
				u.SetBranchName("forge/add-retry").
					SetVerificationStatus(ticket.VerificationStatusPending)
			},
		})
		require.NoError(t, err)
		assert.True(t, ok)

		updated, err := client.Ticket.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateVerifying, updated.State)
		require.NotNil(t, updated.BranchName)
		assert.Equal(t, "forge/add-retry", *updated.BranchName)
		require.NotNil(t, updated.VerificationStatus)
		assert.Equal(t, ticket.VerificationStatusPending, *updated.VerificationStatus)

		evt, err := client.TicketEvent.Query().
			Where(ticketevent.TicketIDEQ(row.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, string(ticket.StateInProgress), evt.FromState)
		assert.Equal(t, string(ticket.StateVerifying), evt.ToState)
		assert.Equal(t, "work complete", evt.Message)
	})

	t.Run("guard mismatch reports false", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

		ok, err := service.Transition(ctx, TransitionInput{
			TicketID: row.ID,
			From:     []ticket.State{ticket.StateInProgress},
			To:       ticket.StateVerifying,
			Actor:    "agent-1",
		})
		require.NoError(t, err)
		assert.False(t, ok)

		unchanged, err := client.Ticket.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, unchanged.State)
	})

	t.Run("illegal edge is rejected up front", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateDone, nil)

		_, err := service.Transition(ctx, TransitionInput{
			TicketID: row.ID,
			From:     []ticket.State{ticket.StateDone},
			To:       ticket.StateReady,
			Actor:    "operator",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("assignee guard passes for the owner", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetAssigneeID("agent-7")
		})

		ok, err := service.Transition(ctx, TransitionInput{
			TicketID: row.ID,
			From:     []ticket.State{ticket.StateInProgress},
			To:       ticket.StateVerifying,
			Actor:    "agent-7",
			Assignee: "agent-7",
			Cause:    "work complete",
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("assignee guard rejects a stale owner", func(t *testing.T) {
		// agent-old was reaped; the row now belongs to agent-new.
		row := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetAssigneeID("agent-new")
		})

		ok, err := service.Transition(ctx, TransitionInput{
			TicketID: row.ID,
			From:     []ticket.State{ticket.StateInProgress},
			To:       ticket.StateVerifying,
			Actor:    "agent-old",
			Assignee: "agent-old",
			Cause:    "stale completion report",
		})
		require.NoError(t, err)
		assert.False(t, ok)

		unchanged, err := client.Ticket.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, unchanged.State)
		assert.Equal(t, "agent-new", *unchanged.AssigneeID)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := service.Transition(ctx, TransitionInput{
			TicketID: "no-such-ticket",
			From:     []ticket.State{ticket.StateReady},
			To:       ticket.StateCancelled,
			Actor:    "operator",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketService_OperatorActions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	t.Run("resume grants a fresh retry budget", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateOnHold, func(c *ent.TicketCreate) {
			c.SetRetryCount(3).
				SetHoldReason("retry budget exhausted").
				SetError("verifier kept failing").
				SetRetryStrategy(map[string]interface{}{"category": "verification"})
		})

		resumed, err := service.ResumeTicket(ctx, row.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, resumed.State)
		assert.Equal(t, 0, resumed.RetryCount)
		assert.Nil(t, resumed.HoldReason)
		assert.Nil(t, resumed.Error)
		assert.Nil(t, resumed.RetryStrategy)
		require.NotNil(t, resumed.AssigneeID)
		assert.Equal(t, lifecycle.ForgeAgent, *resumed.AssigneeID)
	})

	t.Run("resume from wrong state conflicts", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

		_, err := service.ResumeTicket(ctx, row.ID, "alice")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGuardConflict)
	})

	t.Run("cancel detaches the slot", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetVMID("vm-9").
				SetEngineID("engine-1").
				SetLeaseExpires(time.Now().Add(time.Minute))
		})

		cancelled, err := service.CancelTicket(ctx, row.ID, "alice", "requirements changed")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, cancelled.State)
		assert.Nil(t, cancelled.VMID)
		assert.Nil(t, cancelled.EngineID)
		assert.Nil(t, cancelled.LeaseExpires)
		require.NotNil(t, cancelled.CompletedAt)
	})

	t.Run("cancel terminal ticket conflicts", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateDone, nil)

		_, err := service.CancelTicket(ctx, row.ID, "alice", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGuardConflict)
	})

	t.Run("replay clears verification outcome", func(t *testing.T) {
		row := seedTicket(t, client.Client, project.ID, ticket.StateNeedsReview, func(c *ent.TicketCreate) {
			c.SetVerificationStatus(ticket.VerificationStatusFailed).
				SetPrURL("https://github.com/forgeworks/checkout-service/pull/12")
		})

		replayed, err := service.ReplayTicket(ctx, row.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, replayed.State)
		assert.Nil(t, replayed.VerificationStatus)
		assert.Nil(t, replayed.PrURL)
		require.NotNil(t, replayed.AssigneeID)
		assert.Equal(t, lifecycle.ForgeAgent, *replayed.AssigneeID)
	})

	t.Run("approve and reject drive the review verdicts", func(t *testing.T) {
		approved := seedTicket(t, client.Client, project.ID, ticket.StateInReview, func(c *ent.TicketCreate) {
			c.SetAssigneeID(lifecycle.SentinelAgent)
		})
		row, err := service.ApproveTicket(ctx, approved.ID, lifecycle.SentinelAgent)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateDone, row.State)
		require.NotNil(t, row.CompletedAt)

		rejected := seedTicket(t, client.Client, project.ID, ticket.StateInReview, func(c *ent.TicketCreate) {
			c.SetAssigneeID(lifecycle.SentinelAgent)
		})
		row, err = service.RejectTicket(ctx, rejected.ID, lifecycle.SentinelAgent, "missing tests")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateNeedsReview, row.State)
		assert.Equal(t, 1, row.RejectionCount)
	})
}

func TestTicketService_ReserveReady(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	a := seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
		c.SetCreatedAt(time.Now().Add(-3 * time.Hour)).SetExecutionMode(ticket.ExecutionModeDirect)
	})
	b := seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
		c.SetCreatedAt(time.Now().Add(-2 * time.Hour)).SetExecutionMode(ticket.ExecutionModeDirect)
	})
	// Bound ticket must never be offered.
	seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
		c.SetVMID("vm-busy")
	})
	// Pull ticket is outside the direct dispatch pool.
	pull := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

	t.Run("returns unbound candidates oldest first", func(t *testing.T) {
		rows, err := service.ReserveReady(ctx, 10, []ticket.ExecutionMode{ticket.ExecutionModeDirect}, nil)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, a.ID, rows[0].ID)
		assert.Equal(t, b.ID, rows[1].ID)
	})

	t.Run("respects limit", func(t *testing.T) {
		rows, err := service.ReserveReady(ctx, 1, []ticket.ExecutionMode{ticket.ExecutionModeDirect}, nil)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, a.ID, rows[0].ID)
	})

	t.Run("mode filter widens to all modes when empty", func(t *testing.T) {
		rows, err := service.ReserveReady(ctx, 10, nil, nil)
		require.NoError(t, err)
		ids := make(map[string]bool)
		for _, r := range rows {
			ids[r.ID] = true
		}
		assert.True(t, ids[pull.ID])
		assert.Len(t, rows, 3)
	})

	t.Run("zero limit short-circuits", func(t *testing.T) {
		rows, err := service.ReserveReady(ctx, 0, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, rows)
	})

	t.Run("exclusion list admits rows bound elsewhere", func(t *testing.T) {
		rows, err := service.ReserveReady(ctx, 10, nil, []string{"vm-other"})
		require.NoError(t, err)
		assert.Len(t, rows, 4, "vm-busy is not excluded, so its row is offered too")

		rows, err = service.ReserveReady(ctx, 10, nil, []string{"vm-busy"})
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})
}

func TestTicketService_PoolQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	t.Run("expired leases use the database clock", func(t *testing.T) {
		expired := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetVMID("vm-dead").SetLeaseExpires(time.Now().Add(-time.Minute))
		})
		seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetVMID("vm-live").SetLeaseExpires(time.Now().Add(10 * time.Minute))
		})
		// Verifying rows are recovered by the pipeline scan, not the reaper.
		seedTicket(t, client.Client, project.ID, ticket.StateVerifying, func(c *ent.TicketCreate) {
			c.SetVMID("vm-verify").SetLeaseExpires(time.Now().Add(-time.Minute))
		})

		rows, err := service.ListExpiredLeases(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, expired.ID, rows[0].ID)
	})

	t.Run("engine-bound rows for startup recovery", func(t *testing.T) {
		mine := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetVMID("vm-a").SetEngineID("engine-self")
		})
		seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetVMID("vm-b").SetEngineID("engine-other")
		})

		rows, err := service.ListBoundToEngine(ctx, "engine-self")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, mine.ID, rows[0].ID)
	})

	t.Run("stuck report skips ready and terminal states", func(t *testing.T) {
		old := time.Now().Add(-2 * time.Hour)
		stuck := seedTicket(t, client.Client, project.ID, ticket.StateNeedsReview, func(c *ent.TicketCreate) {
			c.SetUpdatedAt(old)
		})
		seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetUpdatedAt(old)
		})
		seedTicket(t, client.Client, project.ID, ticket.StateDone, func(c *ent.TicketCreate) {
			c.SetUpdatedAt(old)
		})

		rows, err := service.ListStuck(ctx, time.Hour)
		require.NoError(t, err)
		ids := make(map[string]bool)
		for _, r := range rows {
			ids[r.ID] = true
		}
		assert.True(t, ids[stuck.ID], "aged needs_review ticket should be reported")
		for _, r := range rows {
			assert.NotEqual(t, ticket.StateReady, r.State)
			assert.NotEqual(t, ticket.StateDone, r.State)
		}
	})

	t.Run("dependency states resolve in bulk", func(t *testing.T) {
		done := seedTicket(t, client.Client, project.ID, ticket.StateDone, nil)
		pending := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

		states, err := service.DependencyStates(ctx, []string{done.ID, pending.ID, "ghost"})
		require.NoError(t, err)
		assert.Equal(t, ticket.StateDone, states[done.ID])
		assert.Equal(t, ticket.StateReady, states[pending.ID])
		_, ok := states["ghost"]
		assert.False(t, ok, "ids with no backing row are absent")
	})

	t.Run("verifying scan", func(t *testing.T) {
		rows, err := service.ListVerifying(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, ticket.StateVerifying, rows[0].State)
	})

	t.Run("counts over the dispatched pool", func(t *testing.T) {
		active, err := service.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, active)

		ready, err := service.CountByState(ctx, ticket.StateReady)
		require.NoError(t, err)
		assert.Equal(t, 2, ready)
	})
}

func TestTicketService_ListTickets(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	seedTicket(t, client.Client, project.ID, ticket.StateReady, func(c *ent.TicketCreate) {
		c.SetTitle("Fix flaky checkout integration test").SetBuildID("build-list")
	})
	seedTicket(t, client.Client, project.ID, ticket.StateDone, func(c *ent.TicketCreate) {
		c.SetTitle("Add idempotency keys to payment webhook").
			SetDescription("Duplicate deliveries double-charge carts").
			SetBuildID("build-list")
	})

	t.Run("filters by state", func(t *testing.T) {
		resp, err := service.ListTickets(ctx, models.TicketFilters{State: "done", BuildID: "build-list"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Tickets, 1)
		assert.Equal(t, ticket.StateDone, resp.Tickets[0].State)
	})

	t.Run("rejects invalid state filter", func(t *testing.T) {
		_, err := service.ListTickets(ctx, models.TicketFilters{State: "exploded"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("full-text search spans title and description", func(t *testing.T) {
		resp, err := service.ListTickets(ctx, models.TicketFilters{Search: "idempotency"})
		require.NoError(t, err)
		require.Len(t, resp.Tickets, 1)
		assert.Contains(t, resp.Tickets[0].Title, "idempotency")

		resp, err = service.ListTickets(ctx, models.TicketFilters{Search: "double-charge"})
		require.NoError(t, err)
		require.Len(t, resp.Tickets, 1, "description text should match")
	})

	t.Run("search combined with state filter", func(t *testing.T) {
		resp, err := service.ListTickets(ctx, models.TicketFilters{
			State:  "ready",
			Search: "checkout",
		})
		require.NoError(t, err)
		require.Len(t, resp.Tickets, 1)
		assert.Equal(t, ticket.StateReady, resp.Tickets[0].State)
	})

	t.Run("paginates with defaults", func(t *testing.T) {
		resp, err := service.ListTickets(ctx, models.TicketFilters{BuildID: "build-list", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Tickets, 1)
		assert.Equal(t, 1, resp.Limit)

		resp, err = service.ListTickets(ctx, models.TicketFilters{BuildID: "build-list"})
		require.NoError(t, err)
		assert.Equal(t, 20, resp.Limit)
	})
}

func TestTicketService_GetTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

	t.Run("loads project edge", func(t *testing.T) {
		got, err := service.GetTicket(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID)
		require.NotNil(t, got.Edges.Project)
		assert.Equal(t, project.ID, got.Edges.Project.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.GetTicket(ctx, "no-such-ticket")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
