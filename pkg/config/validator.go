package config

import (
	"fmt"

	"github.com/forgeworks/forge/pkg/retry"
)

// Validate performs comprehensive validation with clear error messages
// (fail-fast, stops at the first error).
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}
	if err := validateScheduler(cfg.Scheduler); err != nil {
		return err
	}
	if err := validateRetry(cfg.Retry); err != nil {
		return err
	}
	if err := validatePipeline(cfg.Pipeline); err != nil {
		return err
	}
	if err := validateSweep(cfg.Sweep); err != nil {
		return err
	}
	return nil
}

func validateScheduler(s *SchedulerConfig) error {
	if s == nil {
		return NewValidationError("scheduler", "", fmt.Errorf("%w: section", ErrMissingRequiredField))
	}
	if s.MaxConcurrent < 1 || s.MaxConcurrent > 50 {
		return NewValidationError("scheduler", "max_concurrent", fmt.Errorf("%w: must be between 1 and 50", ErrInvalidValue))
	}
	if s.BasePollInterval <= 0 {
		return NewValidationError("scheduler", "base_poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.BackoffFactor < 1.0 {
		return NewValidationError("scheduler", "backoff_factor", fmt.Errorf("%w: must be >= 1.0", ErrInvalidValue))
	}
	if s.BackoffMax < s.BasePollInterval {
		return NewValidationError("scheduler", "backoff_max", fmt.Errorf("%w: must be >= base_poll_interval", ErrInvalidValue))
	}
	if s.LeaseWindow <= s.HeartbeatInterval {
		return NewValidationError("scheduler", "lease_window", fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	if s.TicketTimeout <= 0 {
		return NewValidationError("scheduler", "ticket_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.ReaperInterval <= 0 {
		return NewValidationError("scheduler", "reaper_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func validateRetry(table retry.PolicyTable) error {
	if table == nil {
		return NewValidationError("retry_policies", "", fmt.Errorf("%w: table", ErrMissingRequiredField))
	}
	if _, ok := table[retry.CategoryUnknown]; !ok {
		return NewValidationError("retry_policies", string(retry.CategoryUnknown), fmt.Errorf("%w: fallback category required", ErrMissingRequiredField))
	}
	for category, policy := range table {
		if !category.IsValid() {
			return NewValidationError("retry_policies", string(category), fmt.Errorf("%w: unknown category", ErrInvalidValue))
		}
		if policy.MaxRetries < 0 || policy.MaxRetries > 20 {
			return NewValidationError("retry_policies", string(category), fmt.Errorf("%w: max_retries must be between 0 and 20", ErrInvalidValue))
		}
		if policy.BaseDelayMS < 0 {
			return NewValidationError("retry_policies", string(category), fmt.Errorf("%w: base_delay_ms must be non-negative", ErrInvalidValue))
		}
	}
	// Spec-ambiguity failures always park the ticket for a human; the
	// category must never carry a retry budget.
	if table[retry.CategoryAmbiguity].MaxRetries != 0 {
		return NewValidationError("retry_policies", string(retry.CategoryAmbiguity), fmt.Errorf("%w: must not be retriable", ErrInvalidValue))
	}
	return nil
}

func validatePipeline(p *PipelineConfig) error {
	if p == nil {
		return NewValidationError("pipeline", "", fmt.Errorf("%w: section", ErrMissingRequiredField))
	}
	if p.MaxAttempts < 1 || p.MaxAttempts > 10 {
		return NewValidationError("pipeline", "max_attempts", fmt.Errorf("%w: must be between 1 and 10", ErrInvalidValue))
	}
	if !p.OnError.IsValid() {
		return NewValidationError("pipeline", "on_error", fmt.Errorf("%w: %q", ErrInvalidValue, p.OnError))
	}
	if p.ScanInterval <= 0 {
		return NewValidationError("pipeline", "scan_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func validateSweep(s *SweepConfig) error {
	if s == nil {
		return NewValidationError("sweep", "", fmt.Errorf("%w: section", ErrMissingRequiredField))
	}
	if s.UnblockInterval <= 0 {
		return NewValidationError("sweep", "unblock_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.StuckThreshold <= 0 {
		return NewValidationError("sweep", "stuck_threshold", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
