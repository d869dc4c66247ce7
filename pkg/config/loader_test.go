package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/retry"
)

func writeForgeYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Scheduler.MaxConcurrent)
	assert.Equal(t, 3, cfg.Pipeline.MaxAttempts)
	assert.Equal(t, PipelineErrorCompleteWithWarning, cfg.Pipeline.OnError)
	assert.False(t, cfg.Notifier.Enabled)
	assert.Equal(t, retry.DefaultPolicies(), cfg.Retry)
}

func TestInitializePartialOverride(t *testing.T) {
	dir := writeForgeYAML(t, `
scheduler:
  max_concurrent: 8
  backoff_max: 45s
pipeline:
  on_error: needs_review
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values take effect.
	assert.Equal(t, 8, cfg.Scheduler.MaxConcurrent)
	assert.Equal(t, 45*time.Second, cfg.Scheduler.BackoffMax)
	assert.Equal(t, PipelineErrorNeedsReview, cfg.Pipeline.OnError)

	// Untouched fields keep defaults, including within overridden sections.
	assert.Equal(t, 1*time.Second, cfg.Scheduler.BasePollInterval)
	assert.Equal(t, 2*time.Minute, cfg.Scheduler.LeaseWindow)
	assert.Equal(t, 3, cfg.Pipeline.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Verifier.Timeout)
}

func TestInitializeRetryPolicyOverride(t *testing.T) {
	dir := writeForgeYAML(t, `
retry_policies:
  transient-infrastructure:
    max_retries: 7
    backoff: exponential
    base_delay_ms: 1000
    max_delay_ms: 30000
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// The named category is replaced wholesale.
	assert.Equal(t, retry.Policy{
		MaxRetries:  7,
		Backoff:     retry.BackoffExponential,
		BaseDelayMS: 1000,
		MaxDelayMS:  30000,
	}, cfg.Retry[retry.CategoryTransient])

	// The rest of the table keeps defaults.
	assert.Equal(t, retry.DefaultPolicies()[retry.CategoryVerification], cfg.Retry[retry.CategoryVerification])
	assert.Equal(t, 0, cfg.Retry[retry.CategoryAmbiguity].MaxRetries)
}

func TestInitializeUnknownRetryCategory(t *testing.T) {
	dir := writeForgeYAML(t, `
retry_policies:
  cosmic-rays:
    max_retries: 1
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cosmic-rays")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_VERIFIER_URL", "http://verifier.internal:9090")
	dir := writeForgeYAML(t, `
verifier:
  base_url: "{{.TEST_VERIFIER_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://verifier.internal:9090", cfg.Verifier.BaseURL)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeForgeYAML(t, "scheduler: [not: a: mapping")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := writeForgeYAML(t, `
scheduler:
  max_concurrent: 500
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FORGE_TEST_HOST", "db.example.com")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expands known variable",
			input:    "host: {{.FORGE_TEST_HOST}}",
			expected: "host: db.example.com",
		},
		{
			name:     "missing variable becomes empty",
			input:    "token: {{.FORGE_TEST_DOES_NOT_EXIST}}",
			expected: "token: ",
		},
		{
			name:     "literal dollar passes through",
			input:    "password: p@ss$word",
			expected: "password: p@ss$word",
		},
		{
			name:     "no template syntax passes through",
			input:    "plain: value",
			expected: "plain: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
