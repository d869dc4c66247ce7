package services

import (
	"context"
	"testing"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// seedProject inserts a project for tickets to reference.
func seedProject(t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetName("checkout-service").
		SetRepoURL("https://github.com/forgeworks/checkout-service").
		SetSettings(map[string]any{
			"linter":       "golangci-lint",
			"coverage_min": 0.7,
		}).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// seedTicket inserts a ticket directly in the given state. Non-draft tickets
// get the standard agent assignment so they are claimable; mutate customizes
// the row before save.
func seedTicket(t *testing.T, client *ent.Client, projectID string, state ticket.State, mutate func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	builder := client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetProjectID(projectID).
		SetTitle("Add retry to payment client").
		SetState(state)
	if state != ticket.StateDraft {
		builder.SetAssigneeID(lifecycle.ForgeAgent).
			SetAssigneeType(ticket.AssigneeTypeAgent)
	}
	if mutate != nil {
		mutate(builder)
	}
	row, err := builder.Save(context.Background())
	require.NoError(t, err)
	return row
}
