package vmpool

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

func newTestAdapter(server *httptest.Server) *HTTPAdapter {
	adapter := NewHTTPAdapter(&config.VMPoolConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	})
	adapter.httpClient = server.Client()
	return adapter
}

func TestHTTPAdapter_Acquire(t *testing.T) {
	t.Run("leases a slot", func(t *testing.T) {
		var gotReq AcquireRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/slots", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Slot{ID: "vm-7", Endpoint: "http://10.0.0.7:8089"})
		}))
		defer server.Close()

		slot, err := newTestAdapter(server).Acquire(context.Background(), &AcquireRequest{
			TicketID:  "ticket-1",
			ProjectID: "project-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "vm-7", slot.ID)
		assert.Equal(t, "http://10.0.0.7:8089", slot.Endpoint)
		assert.Equal(t, "ticket-1", gotReq.TicketID)
	})

	t.Run("503 maps to ErrPoolExhausted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestAdapter(server).Acquire(context.Background(), &AcquireRequest{TicketID: "ticket-1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPoolExhausted)
	})

	t.Run("other errors are not exhaustion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("hypervisor on fire"))
		}))
		defer server.Close()

		_, err := newTestAdapter(server).Acquire(context.Background(), &AcquireRequest{TicketID: "ticket-1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPoolExhausted)
		assert.Contains(t, err.Error(), "hypervisor on fire")
	})

	t.Run("requires ticket id", func(t *testing.T) {
		adapter := NewHTTPAdapter(&config.VMPoolConfig{BaseURL: "http://pool.local", RequestTimeout: time.Second})
		_, err := adapter.Acquire(context.Background(), &AcquireRequest{})
		require.Error(t, err)
	})

	t.Run("rejects slot without id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(Slot{Endpoint: "http://10.0.0.7:8089"})
		}))
		defer server.Close()

		_, err := newTestAdapter(server).Acquire(context.Background(), &AcquireRequest{TicketID: "ticket-1"})
		require.Error(t, err)
	})
}

func TestHTTPAdapter_ReleaseAndKill(t *testing.T) {
	t.Run("release deletes the slot", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		require.NoError(t, newTestAdapter(server).Release(context.Background(), "vm-7"))
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/v1/slots/vm-7", gotPath)
	})

	t.Run("release of unknown slot is a no-op", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		require.NoError(t, newTestAdapter(server).Release(context.Background(), "vm-gone"))
	})

	t.Run("kill posts to the kill endpoint", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
		}))
		defer server.Close()

		require.NoError(t, newTestAdapter(server).Kill(context.Background(), "vm-7"))
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/v1/slots/vm-7/kill", gotPath)
	})

	t.Run("pool failure surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte("slot is detaching"))
		}))
		defer server.Close()

		err := newTestAdapter(server).Release(context.Background(), "vm-7")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "409")
	})

	t.Run("requires vm id", func(t *testing.T) {
		adapter := NewHTTPAdapter(&config.VMPoolConfig{BaseURL: "http://pool.local", RequestTimeout: time.Second})
		require.Error(t, adapter.Release(context.Background(), ""))
		require.Error(t, adapter.Kill(context.Background(), ""))
	})
}

func TestHTTPAdapter_Health(t *testing.T) {
	t.Run("reports liveness", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/slots/vm-7/health", r.URL.Path)
			_ = json.NewEncoder(w).Encode(SlotHealth{Alive: true, IP: "10.0.0.7"})
		}))
		defer server.Close()

		health, err := newTestAdapter(server).Health(context.Background(), "vm-7")
		require.NoError(t, err)
		assert.True(t, health.Alive)
		assert.Equal(t, "10.0.0.7", health.IP)
	})

	t.Run("unknown slot is not alive", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		health, err := newTestAdapter(server).Health(context.Background(), "vm-gone")
		require.NoError(t, err)
		assert.False(t, health.Alive)
	})
}
