package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/config"
)

func heldTicket() *ent.Ticket {
	return &ent.Ticket{
		ID:         "ticket-42",
		ProjectID:  "project-1",
		Title:      "Add idempotency key to checkout",
		RetryCount: 3,
	}
}

func TestBuildHeldMessage(t *testing.T) {
	blocks := BuildHeldMessage(heldTicket(), "needs a product decision on key format")

	require.Len(t, blocks, 2)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":warning:")
	assert.Contains(t, section.Text.Text, "Add idempotency key to checkout")
	assert.Contains(t, section.Text.Text, "needs a product decision")
	assert.Contains(t, section.Text.Text, "/api/v1/tickets/ticket-42/resume")

	meta, ok := blocks[1].(*goslack.ContextBlock)
	require.True(t, ok)
	require.Len(t, meta.ContextElements.Elements, 1)
	metaText := meta.ContextElements.Elements[0].(*goslack.TextBlockObject)
	assert.Contains(t, metaText.Text, "ticket-42")
	assert.Contains(t, metaText.Text, "retries 3")
}

func TestBuildHeldMessage_TruncatesLongReason(t *testing.T) {
	reason := strings.Repeat("ambiguity ", 400)
	blocks := BuildHeldMessage(heldTicket(), reason)

	section := blocks[0].(*goslack.SectionBlock)
	assert.Less(t, len(section.Text.Text), len(reason))
	assert.Contains(t, section.Text.Text, "truncated")
}

func TestBuildNeedsReviewMessage(t *testing.T) {
	blocks := BuildNeedsReviewMessage(heldTicket(), 2)

	require.Len(t, blocks, 2)
	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":mag:")
	assert.Contains(t, section.Text.Text, "attempt 2")
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Must not panic.
	s.TicketHeld(context.Background(), heldTicket(), "reason")
	s.TicketNeedsReview(context.Background(), heldTicket(), 1)
}

func TestNewService(t *testing.T) {
	t.Run("disabled returns nil", func(t *testing.T) {
		svc := NewService(&config.NotifierConfig{Enabled: false, TokenEnv: "X", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("missing channel returns nil", func(t *testing.T) {
		svc := NewService(&config.NotifierConfig{Enabled: true, TokenEnv: "X", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("empty token env returns nil", func(t *testing.T) {
		svc := NewService(&config.NotifierConfig{Enabled: true, TokenEnv: "FORGE_TEST_NO_SUCH_TOKEN", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("configured returns service", func(t *testing.T) {
		t.Setenv("FORGE_TEST_SLACK_TOKEN", "xoxb-test")
		svc := NewService(&config.NotifierConfig{Enabled: true, TokenEnv: "FORGE_TEST_SLACK_TOKEN", Channel: "C123"})
		assert.NotNil(t, svc)
	})
}

func TestService_PostsToSlack(t *testing.T) {
	var gotChannel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChannel = r.FormValue("channel")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1712345678.000100"}`))
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client)

	svc.TicketHeld(context.Background(), heldTicket(), "blocked on credentials")
	assert.Equal(t, "C123", gotChannel)
}

func TestService_FailureDoesNotPropagate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C404", server.URL+"/")
	svc := NewServiceWithClient(client)

	// Best-effort delivery: a Slack failure must not panic or block.
	svc.TicketNeedsReview(context.Background(), heldTicket(), 1)
}
