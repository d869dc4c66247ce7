package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/retry"
)

func TestDefaultSchedulerConfig(t *testing.T) {
	cfg := DefaultSchedulerConfig()

	assert.Equal(t, 3, cfg.MaxConcurrent)
	assert.Equal(t, 1*time.Second, cfg.BasePollInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 1.5, cfg.BackoffFactor)
	assert.Equal(t, 30*time.Second, cfg.BackoffMax)
	assert.Equal(t, 2*time.Minute, cfg.LeaseWindow)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 5*time.Minute, cfg.TicketTimeout)
	assert.Equal(t, 30*time.Second, cfg.VMAcquireTimeout)
	assert.Equal(t, 30*time.Second, cfg.ReaperInterval)
	assert.Equal(t, 5*time.Minute, cfg.GracefulShutdownTimeout)
}

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestValidateScheduler(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SchedulerConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*SchedulerConfig) {},
		},
		{
			name:    "max_concurrent too low",
			mutate:  func(s *SchedulerConfig) { s.MaxConcurrent = 0 },
			wantErr: "max_concurrent",
		},
		{
			name:    "max_concurrent too high",
			mutate:  func(s *SchedulerConfig) { s.MaxConcurrent = 51 },
			wantErr: "max_concurrent",
		},
		{
			name:    "backoff factor below one",
			mutate:  func(s *SchedulerConfig) { s.BackoffFactor = 0.5 },
			wantErr: "backoff_factor",
		},
		{
			name:    "backoff max below base poll",
			mutate:  func(s *SchedulerConfig) { s.BackoffMax = 100 * time.Millisecond },
			wantErr: "backoff_max",
		},
		{
			name:    "lease window not exceeding heartbeat",
			mutate:  func(s *SchedulerConfig) { s.LeaseWindow = s.HeartbeatInterval },
			wantErr: "lease_window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg.Scheduler)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRetryTable(t *testing.T) {
	t.Run("missing unknown fallback", func(t *testing.T) {
		cfg := Default()
		delete(cfg.Retry, retry.CategoryUnknown)
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fallback category required")
	})

	t.Run("ambiguity must not be retriable", func(t *testing.T) {
		cfg := Default()
		cfg.Retry[retry.CategoryAmbiguity] = retry.Policy{MaxRetries: 2}
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be retriable")
	})

	t.Run("retry budget bounded", func(t *testing.T) {
		cfg := Default()
		cfg.Retry[retry.CategoryTransient] = retry.Policy{MaxRetries: 100}
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_retries")
	})
}

func TestValidatePipeline(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.OnError = "discard_work"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_error")

	cfg = Default()
	cfg.Pipeline.MaxAttempts = 0
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_attempts")

	cfg = Default()
	cfg.Pipeline.ScanInterval = 0
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan_interval")
}

func TestValidationErrorFormatting(t *testing.T) {
	err := NewValidationError("scheduler", "max_concurrent", ErrInvalidValue)
	assert.Contains(t, err.Error(), "scheduler")
	assert.Contains(t, err.Error(), "max_concurrent")
	assert.ErrorIs(t, err, ErrInvalidValue)

	bare := NewValidationError("pipeline", "", ErrMissingRequiredField)
	assert.Contains(t, bare.Error(), "pipeline")
	assert.ErrorIs(t, bare, ErrMissingRequiredField)
}
