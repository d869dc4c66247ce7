package gitforge

import (
	"fmt"
	"net/url"
	"strings"
)

// RepoRef identifies a repository on the git host.
type RepoRef struct {
	Owner string
	Name  string
}

// ParseRepoURL extracts owner and repository name from an HTTPS clone URL.
// Accepts https://github.com/{owner}/{repo} with an optional .git suffix and
// ignores any deeper path segments.
func ParseRepoURL(rawURL string) (*RepoRef, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("malformed repo URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("repo URL %q does not name owner/repo", rawURL)
	}

	return &RepoRef{
		Owner: parts[0],
		Name:  strings.TrimSuffix(parts[1], ".git"),
	}, nil
}
