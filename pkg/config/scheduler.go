package config

import "time"

// SchedulerConfig contains scheduler loop and lease configuration.
// These values control how tickets are polled, claimed, dispatched, and
// reaped.
type SchedulerConfig struct {
	// MaxConcurrent is the cap on simultaneously dispatched tickets.
	// Capacity each poll cycle is MaxConcurrent minus active executions.
	MaxConcurrent int `yaml:"max_concurrent"`

	// BasePollInterval is the poll interval while work is flowing.
	BasePollInterval time.Duration `yaml:"base_poll_interval"`

	// PollIntervalJitter is the random jitter applied to each sleep.
	// Actual interval: current ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// BackoffFactor multiplies the poll interval after an empty poll.
	BackoffFactor float64 `yaml:"backoff_factor"`

	// BackoffMax caps the adaptive poll interval.
	BackoffMax time.Duration `yaml:"backoff_max"`

	// LeaseWindow is how far each claim and heartbeat pushes lease_expires.
	// Must comfortably exceed HeartbeatInterval.
	LeaseWindow time.Duration `yaml:"lease_window"`

	// HeartbeatInterval is how often a direct-mode execution task extends
	// its own lease. Pull agents are expected to beat at the same rate.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// TicketTimeout is the hard cap on one execution attempt. Exceeding it
	// fails the ticket with a resource-exhaustion classification.
	TicketTimeout time.Duration `yaml:"ticket_timeout"`

	// VMAcquireTimeout bounds the wait for a VM slot before the claim is
	// rolled back and the loop backs off.
	VMAcquireTimeout time.Duration `yaml:"vm_acquire_timeout"`

	// ReaperInterval is how often expired leases are scanned for.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// GracefulShutdownTimeout is the max time to wait for active
	// executions to finish during drain before their slots are force
	// released and tickets returned to ready.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		MaxConcurrent:           3,
		BasePollInterval:        1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		BackoffFactor:           1.5,
		BackoffMax:              30 * time.Second,
		LeaseWindow:             2 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		TicketTimeout:           5 * time.Minute,
		VMAcquireTimeout:        30 * time.Second,
		ReaperInterval:          30 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
	}
}
