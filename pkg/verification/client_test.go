package verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifyRequest() *Request {
	return &Request{
		TicketID:           "ticket-123",
		BranchName:         "forge/ticket-123",
		RepoURL:            "https://github.com/forgeworks/checkout-service",
		Attempt:            2,
		AcceptanceCriteria: "idempotency key respected; tests pass",
		Phases:             AllPhases(),
	}
}

func TestHTTPClient_Verify(t *testing.T) {
	t.Run("returns passed verdict", func(t *testing.T) {
		var gotPath string
		var gotReq Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			_ = json.NewEncoder(w).Encode(Verdict{
				Status:     StatusPassed,
				ReadyForPR: true,
				Evidence:   map[string]any{"static": "clean", "automated": "42 tests"},
			})
		}))
		defer server.Close()

		client := NewHTTPClient(&config.VerifierConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
		verdict, err := client.Verify(context.Background(), newVerifyRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusPassed, verdict.Status)
		assert.True(t, verdict.ReadyForPR)
		assert.Equal(t, "clean", verdict.Evidence["static"])
		assert.Equal(t, "/v1/verify", gotPath)
		assert.Equal(t, "ticket-123", gotReq.TicketID)
		assert.Equal(t, 2, gotReq.Attempt)
		assert.Equal(t, []Phase{PhaseStatic, PhaseAutomated, PhaseSentinel}, gotReq.Phases)
	})

	t.Run("failed verdict is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(Verdict{
				Status:           StatusFailed,
				FeedbackForAgent: "handler drops the idempotency key on retry",
			})
		}))
		defer server.Close()

		client := NewHTTPClient(&config.VerifierConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
		verdict, err := client.Verify(context.Background(), newVerifyRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, verdict.Status)
		assert.False(t, verdict.ReadyForPR)
		assert.Contains(t, verdict.FeedbackForAgent, "idempotency key")
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream sandbox unavailable"))
		}))
		defer server.Close()

		client := NewHTTPClient(&config.VerifierConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
		_, err := client.Verify(context.Background(), newVerifyRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "sandbox unavailable")
	})

	t.Run("unknown status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"maybe"}`))
		}))
		defer server.Close()

		client := NewHTTPClient(&config.VerifierConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
		_, err := client.Verify(context.Background(), newVerifyRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown status")
	})

	t.Run("unconfigured base URL is an error", func(t *testing.T) {
		client := NewHTTPClient(config.DefaultVerifierConfig())
		_, err := client.Verify(context.Background(), newVerifyRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("requires ticket and branch", func(t *testing.T) {
		client := NewHTTPClient(&config.VerifierConfig{BaseURL: "http://verifier.local", Timeout: time.Second})

		req := newVerifyRequest()
		req.TicketID = ""
		_, err := client.Verify(context.Background(), req)
		require.Error(t, err)

		req = newVerifyRequest()
		req.BranchName = ""
		_, err = client.Verify(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))
		defer server.Close()

		client := NewHTTPClient(&config.VerifierConfig{BaseURL: server.URL, Timeout: 30 * time.Second})
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-started
			cancel()
		}()
		_, err := client.Verify(ctx, newVerifyRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
