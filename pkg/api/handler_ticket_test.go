package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/lifecycle"
	"github.com/forgeworks/forge/pkg/models"
)

func seedProjectOverHTTP(t *testing.T, s *Server) string {
	t.Helper()
	rec := doJSON(s, http.MethodPost, "/api/v1/projects",
		`{"project_id":"checkout-service","tenant_id":"tenant-1","name":"Checkout Service",
		  "repo_url":"https://forge.example.com/acme/checkout.git"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return "checkout-service"
}

func createTicketOverHTTP(t *testing.T, s *Server, id, title string) {
	t.Helper()
	rec := doJSON(s, http.MethodPost, "/api/v1/tickets",
		fmt.Sprintf(`{"ticket_id":%q,"tenant_id":"tenant-1","project_id":"checkout-service",
		              "build_id":"build-7","title":%q}`, id, title))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateTicketValidation(t *testing.T) {
	s, _ := newTestServer(t)
	seedProjectOverHTTP(t, s)

	t.Run("missing title", func(t *testing.T) {
		rec := doJSON(s, http.MethodPost, "/api/v1/tickets",
			`{"tenant_id":"tenant-1","project_id":"checkout-service"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "title")
	})

	t.Run("unknown project", func(t *testing.T) {
		rec := doJSON(s, http.MethodPost, "/api/v1/tickets",
			`{"tenant_id":"tenant-1","project_id":"no-such-project","title":"orphan"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate id", func(t *testing.T) {
		createTicketOverHTTP(t, s, "t-dup", "first")
		rec := doJSON(s, http.MethodPost, "/api/v1/tickets",
			`{"ticket_id":"t-dup","tenant_id":"tenant-1","project_id":"checkout-service","title":"second"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestListTicketsOverHTTP(t *testing.T) {
	s, _ := newTestServer(t)
	seedProjectOverHTTP(t, s)
	createTicketOverHTTP(t, s, "t-1", "Add idempotency key to POST /orders")
	createTicketOverHTTP(t, s, "t-2", "Wire the refund webhook")
	createTicketOverHTTP(t, s, "t-3", "Bump the payment client")

	t.Run("filter by state", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets?state=draft", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TicketListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets?limit=2&offset=0", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TicketListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Tickets, 2)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Equal(t, 2, resp.Limit)
	})

	t.Run("search", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets?search=refund", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TicketListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Tickets, 1)
		assert.Equal(t, "t-2", resp.Tickets[0].ID)
	})

	t.Run("invalid state is 400", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets?state=bogus", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid limit is 400", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets?limit=many", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid created_after is 400", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets?created_after=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "RFC3339")
	})
}

func TestStuckTicketsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("invalid older_than is 400", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets/stuck?older_than=fortnight", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("defaults to the sweep threshold", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets/stuck", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp StuckTicketsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Tickets)
	})
}

func TestTicketEventsAndNotes(t *testing.T) {
	s, _ := newTestServer(t)
	seedProjectOverHTTP(t, s)
	createTicketOverHTTP(t, s, "t-1", "Add idempotency key to POST /orders")

	rec := doJSON(s, http.MethodPost, "/api/v1/builds/build-7/activate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Activation wrote a transition event.
	rec = doJSON(s, http.MethodGet, "/api/v1/tickets/t-1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var events EventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.NotEmpty(t, events.Events)

	// Notes pick their author from the auth proxy headers.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets/t-1/notes",
		strings.NewReader(`{"message":"waiting on the schema review"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-User", "alice")
	noteRec := httptest.NewRecorder()
	s.echo.ServeHTTP(noteRec, req)
	require.Equal(t, http.StatusCreated, noteRec.Code, noteRec.Body.String())
	assert.Contains(t, noteRec.Body.String(), "alice")

	t.Run("empty message is 400", func(t *testing.T) {
		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/t-1/notes", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("note on unknown ticket is 404", func(t *testing.T) {
		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/no-such/notes", `{"message":"hi"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("limit caps the log", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets/t-1/events?limit=1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EventsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 1)
	})
}

func TestListArtifactsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	seedProjectOverHTTP(t, s)
	createTicketOverHTTP(t, s, "t-1", "Add idempotency key to POST /orders")

	t.Run("invalid kind is 400", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets/t-1/artifacts?kind=hologram", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty list", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/v1/tickets/t-1/artifacts", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ArtifactsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Artifacts)
	})
}

func TestOperatorActionsOverHTTP(t *testing.T) {
	s, dbClient := newTestServer(t)
	ctx := context.Background()
	seedProjectOverHTTP(t, s)

	setState := func(id string, st ticket.State) {
		_, err := dbClient.Ticket.UpdateOneID(id).SetState(st).Save(ctx)
		require.NoError(t, err)
	}

	t.Run("cancel and the terminal guard", func(t *testing.T) {
		createTicketOverHTTP(t, s, "t-cancel", "doomed")

		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/t-cancel/cancel",
			`{"reason":"descoped for this release"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		row, err := dbClient.Ticket.Get(ctx, "t-cancel")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, row.State)
		assert.NotNil(t, row.CompletedAt)

		// A second cancel hits the terminal guard.
		rec = doJSON(s, http.MethodPost, "/api/v1/tickets/t-cancel/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "cancelled")
	})

	t.Run("resume clears the hold", func(t *testing.T) {
		createTicketOverHTTP(t, s, "t-resume", "held")
		_, err := dbClient.Ticket.UpdateOneID("t-resume").
			SetState(ticket.StateOnHold).
			SetRetryCount(3).
			SetHoldReason("retry budget exhausted after 3 attempts").
			Save(ctx)
		require.NoError(t, err)

		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/t-resume/resume", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		row, err := dbClient.Ticket.Get(ctx, "t-resume")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, row.State)
		assert.Equal(t, 0, row.RetryCount, "resume grants a fresh budget")
		assert.Nil(t, row.HoldReason)
		require.NotNil(t, row.AssigneeID)
		assert.Equal(t, lifecycle.ForgeAgent, *row.AssigneeID)
	})

	t.Run("approve closes a review", func(t *testing.T) {
		createTicketOverHTTP(t, s, "t-approve", "reviewed")
		setState("t-approve", ticket.StateInReview)

		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/t-approve/approve", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		row, err := dbClient.Ticket.Get(ctx, "t-approve")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateDone, row.State)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("reject then replay", func(t *testing.T) {
		createTicketOverHTTP(t, s, "t-reject", "contested")
		setState("t-reject", ticket.StateInReview)

		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/t-reject/reject",
			`{"reason":"acceptance criteria 2 not met"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		row, err := dbClient.Ticket.Get(ctx, "t-reject")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateNeedsReview, row.State)
		assert.Equal(t, 1, row.RejectionCount)

		rec = doJSON(s, http.MethodPost, "/api/v1/tickets/t-reject/replay", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		row, err = dbClient.Ticket.Get(ctx, "t-reject")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, row.State)
		require.NotNil(t, row.AssigneeID)
		assert.Equal(t, lifecycle.ForgeAgent, *row.AssigneeID)
		assert.Nil(t, row.PrURL)
	})

	t.Run("approve outside review is 409", func(t *testing.T) {
		createTicketOverHTTP(t, s, "t-early", "still drafting")

		rec := doJSON(s, http.MethodPost, "/api/v1/tickets/t-early/approve", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
