// Package gitforge opens pull requests on the project's git host once a
// ticket's branch has passed verification.
package gitforge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/forgeworks/forge/pkg/config"
)

// PRRequest describes the pull request to open for a completed ticket.
type PRRequest struct {
	RepoURL    string
	Branch     string
	BaseBranch string
	Title      string
	Body       string
}

// PullRequest is the created (or already-existing) pull request.
type PullRequest struct {
	URL    string
	Number int
}

// Client opens pull requests. Implementations must be safe for concurrent
// use; the pipeline calls from many ticket goroutines.
type Client interface {
	CreatePullRequest(ctx context.Context, req PRRequest) (*PullRequest, error)
}

// GitHubClient implements Client against the GitHub REST API.
type GitHubClient struct {
	httpClient *http.Client
	apiBase    string
	token      string
	logger     *slog.Logger
}

// NewGitHubClient creates a PR client from config. The token is read from the
// configured environment variable; empty means unauthenticated (public repos
// only, and PR creation will be refused by the host).
func NewGitHubClient(cfg *config.GitForgeConfig) *GitHubClient {
	return &GitHubClient{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		apiBase:    strings.TrimRight(cfg.APIBaseURL, "/"),
		token:      os.Getenv(cfg.TokenEnv),
		logger:     slog.Default(),
	}
}

// prCreateBody is the GitHub pulls API request payload.
type prCreateBody struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body,omitempty"`
}

// prResponse is the subset of the pulls API response the engine uses.
type prResponse struct {
	HTMLURL string `json:"html_url"`
	Number  int    `json:"number"`
}

// CreatePullRequest opens a PR for the branch. Creation is idempotent: if the
// host reports that a PR for this head already exists (HTTP 422), the open PR
// is looked up and returned instead of an error, so a replayed pipeline step
// converges on the same PR.
func (c *GitHubClient) CreatePullRequest(ctx context.Context, req PRRequest) (*PullRequest, error) {
	if req.Branch == "" {
		return nil, fmt.Errorf("branch is required")
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	repo, err := ParseRepoURL(req.RepoURL)
	if err != nil {
		return nil, fmt.Errorf("parse repo URL: %w", err)
	}
	base := req.BaseBranch
	if base == "" {
		base = "main"
	}

	payload, err := json.Marshal(prCreateBody{
		Title: req.Title,
		Head:  req.Branch,
		Base:  base,
		Body:  req.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/repos/%s/%s/pulls", c.apiBase, repo.Owner, repo.Name)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	httpReq.Header.Set("Content-Type", "application/json")
	c.setAuthHeader(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create pull request for %s: %w", req.Branch, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var pr prResponse
		if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
			return nil, fmt.Errorf("decode pull request response: %w", err)
		}
		c.logger.Info("Pull request created",
			"repo", repo.Owner+"/"+repo.Name,
			"branch", req.Branch,
			"pr_url", pr.HTMLURL)
		return &PullRequest{URL: pr.HTMLURL, Number: pr.Number}, nil

	case http.StatusUnprocessableEntity:
		// A PR for this head usually already exists; find and reuse it.
		existing, lookupErr := c.findOpenPR(ctx, repo, req.Branch)
		if lookupErr != nil {
			return nil, fmt.Errorf("git host rejected PR and lookup failed: %w", lookupErr)
		}
		if existing != nil {
			c.logger.Info("Reusing existing pull request",
				"repo", repo.Owner+"/"+repo.Name,
				"branch", req.Branch,
				"pr_url", existing.URL)
			return existing, nil
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("git host rejected PR for %s: %s", req.Branch, strings.TrimSpace(string(body)))

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("git host returned HTTP %d for %s: %s",
			resp.StatusCode, req.Branch, strings.TrimSpace(string(body)))
	}
}

// findOpenPR looks up the open PR whose head is the given branch.
func (c *GitHubClient) findOpenPR(ctx context.Context, repo *RepoRef, branch string) (*PullRequest, error) {
	query := url.Values{}
	query.Set("head", repo.Owner+":"+branch)
	query.Set("state", "open")
	apiURL := fmt.Sprintf("%s/repos/%s/%s/pulls?%s", c.apiBase, repo.Owner, repo.Name, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list pull requests: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("git host returned HTTP %d listing PRs for %s", resp.StatusCode, branch)
	}

	var prs []prResponse
	if err := json.NewDecoder(resp.Body).Decode(&prs); err != nil {
		return nil, fmt.Errorf("decode pull request list: %w", err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return &PullRequest{URL: prs[0].HTMLURL, Number: prs[0].Number}, nil
}

func (c *GitHubClient) setAuthHeader(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
