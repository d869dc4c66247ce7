package gitforge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		owner   string
		repo    string
		wantErr bool
	}{
		{"plain", "https://github.com/forgeworks/checkout-service", "forgeworks", "checkout-service", false},
		{"dot git suffix", "https://github.com/forgeworks/checkout-service.git", "forgeworks", "checkout-service", false},
		{"trailing slash", "https://github.com/forgeworks/checkout-service/", "forgeworks", "checkout-service", false},
		{"deeper path ignored", "https://github.com/forgeworks/checkout-service/tree/main", "forgeworks", "checkout-service", false},
		{"missing repo", "https://github.com/forgeworks", "", "", true},
		{"bad scheme", "ssh://git@github.com/forgeworks/repo.git", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRepoURL(tt.rawURL)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, ref.Owner)
			assert.Equal(t, tt.repo, ref.Name)
		})
	}
}

// newTestClient points a GitHubClient at the test server.
func newTestClient(server *httptest.Server, token string) *GitHubClient {
	client := NewGitHubClient(&config.GitForgeConfig{
		APIBaseURL:     server.URL,
		TokenEnv:       "FORGE_TEST_NO_SUCH_TOKEN",
		RequestTimeout: 0,
	})
	client.token = token
	client.httpClient = server.Client()
	return client
}

func TestGitHubClient_CreatePullRequest(t *testing.T) {
	prReq := PRRequest{
		RepoURL:    "https://github.com/forgeworks/checkout-service",
		Branch:     "forge/ticket-123",
		BaseBranch: "main",
		Title:      "Add retry to payment client",
		Body:       "Closes ticket-123",
	}

	t.Run("creates PR", func(t *testing.T) {
		var gotPath string
		var gotBody prCreateBody
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(prResponse{
				HTMLURL: "https://github.com/forgeworks/checkout-service/pull/7",
				Number:  7,
			})
		}))
		defer server.Close()

		pr, err := newTestClient(server, "tok").CreatePullRequest(context.Background(), prReq)
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/forgeworks/checkout-service/pull/7", pr.URL)
		assert.Equal(t, 7, pr.Number)
		assert.Equal(t, "/repos/forgeworks/checkout-service/pulls", gotPath)
		assert.Equal(t, "forge/ticket-123", gotBody.Head)
		assert.Equal(t, "main", gotBody.Base)
	})

	t.Run("sends bearer token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(prResponse{HTMLURL: "u", Number: 1})
		}))
		defer server.Close()

		_, err := newTestClient(server, "token-abc").CreatePullRequest(context.Background(), prReq)
		require.NoError(t, err)
		assert.Equal(t, "Bearer token-abc", gotAuth)
	})

	t.Run("reuses existing PR on 422", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"message":"A pull request already exists"}`))
				return
			}
			assert.Equal(t, "forgeworks:forge/ticket-123", r.URL.Query().Get("head"))
			_ = json.NewEncoder(w).Encode([]prResponse{
				{HTMLURL: "https://github.com/forgeworks/checkout-service/pull/3", Number: 3},
			})
		}))
		defer server.Close()

		pr, err := newTestClient(server, "tok").CreatePullRequest(context.Background(), prReq)
		require.NoError(t, err)
		assert.Equal(t, 3, pr.Number)
	})

	t.Run("422 without existing PR is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"message":"Validation Failed: base branch missing"}`))
				return
			}
			_ = json.NewEncoder(w).Encode([]prResponse{})
		}))
		defer server.Close()

		_, err := newTestClient(server, "tok").CreatePullRequest(context.Background(), prReq)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Validation Failed")
	})

	t.Run("server error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Resource not accessible"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server, "tok").CreatePullRequest(context.Background(), prReq)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "Resource not accessible")
	})

	t.Run("defaults base branch to main", func(t *testing.T) {
		var gotBody prCreateBody
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(prResponse{HTMLURL: "u", Number: 1})
		}))
		defer server.Close()

		req := prReq
		req.BaseBranch = ""
		_, err := newTestClient(server, "tok").CreatePullRequest(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "main", gotBody.Base)
	})

	t.Run("rejects missing branch", func(t *testing.T) {
		req := prReq
		req.Branch = ""
		_, err := NewGitHubClient(config.DefaultGitForgeConfig()).CreatePullRequest(context.Background(), req)
		require.Error(t, err)
	})
}
