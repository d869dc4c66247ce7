package services

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketevent"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_AppendNote(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

	t.Run("appends a note", func(t *testing.T) {
		evt, err := service.AppendNote(ctx, row.ID, "alice", "waiting on upstream schema change")
		require.NoError(t, err)
		assert.Equal(t, ticketevent.KindNote, evt.Kind)
		assert.Equal(t, "alice", evt.Actor)
		assert.Equal(t, "waiting on upstream schema change", evt.Message)
	})

	t.Run("defaults the actor", func(t *testing.T) {
		evt, err := service.AppendNote(ctx, row.ID, "", "unattributed note")
		require.NoError(t, err)
		assert.Equal(t, "operator", evt.Actor)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := service.AppendNote(ctx, "no-such-ticket", "alice", "orphan note")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires a message", func(t *testing.T) {
		_, err := service.AppendNote(ctx, row.ID, "alice", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_ListForTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	row := seedTicket(t, client.Client, project.ID, ticket.StateReady, nil)

	for i, msg := range []string{"first", "second", "third"} {
		_, err := client.TicketEvent.Create().
			SetID(uuid.New().String()).
			SetTicketID(row.ID).
			SetKind(ticketevent.KindNote).
			SetActor("test").
			SetMessage(msg).
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("returns oldest first", func(t *testing.T) {
		events, err := service.ListForTicket(ctx, row.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "first", events[0].Message)
		assert.Equal(t, "third", events[2].Message)
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := service.ListForTicket(ctx, row.ID, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestEventService_CompactTerminalEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)

	doneTicket := seedTicket(t, client.Client, project.ID, ticket.StateDone, nil)
	liveTicket := seedTicket(t, client.Client, project.ID, ticket.StateInProgress, func(c *ent.TicketCreate) {
		c.SetVMID("vm-1")
	})

	old := time.Now().Add(-60 * 24 * time.Hour)
	seedEvent := func(ticketID string, createdAt time.Time) {
		_, err := client.TicketEvent.Create().
			SetID(uuid.New().String()).
			SetTicketID(ticketID).
			SetKind(ticketevent.KindHeartbeat).
			SetActor("test").
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
	}

	// First is compacted; second is recent enough to keep; third belongs
	// to a non-terminal ticket and must survive.
	seedEvent(doneTicket.ID, old)
	seedEvent(doneTicket.ID, time.Now())
	seedEvent(liveTicket.ID, old)

	t.Run("deletes only old events of terminal tickets", func(t *testing.T) {
		count, err := service.CompactTerminalEvents(ctx, 30*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		remaining, err := client.TicketEvent.Query().
			Where(ticketevent.TicketIDEQ(doneTicket.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		kept, err := client.TicketEvent.Query().
			Where(ticketevent.TicketIDEQ(liveTicket.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, kept, "non-terminal tickets keep their history")
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := service.CompactTerminalEvents(ctx, 0)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
