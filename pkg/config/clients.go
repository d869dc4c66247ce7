package config

import "time"

// VerifierConfig holds the verification service connection settings.
type VerifierConfig struct {
	// BaseURL of the verifier service. Empty disables verification calls;
	// the pipeline then treats every completion as unverifiable and
	// short-circuits per its no-repo policy.
	BaseURL string `yaml:"base_url"`

	// Timeout for one verify call. Verification runs real checks against
	// a branch, so this is generous by default.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultVerifierConfig returns the built-in verifier defaults.
func DefaultVerifierConfig() *VerifierConfig {
	return &VerifierConfig{
		Timeout: 2 * time.Minute,
	}
}

// VMPoolConfig holds the VM pool manager connection settings.
type VMPoolConfig struct {
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds single pool calls (release, kill, health).
	// Acquire uses the scheduler's vm_acquire_timeout instead.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultVMPoolConfig returns the built-in pool defaults.
func DefaultVMPoolConfig() *VMPoolConfig {
	return &VMPoolConfig{
		RequestTimeout: 15 * time.Second,
	}
}

// GitForgeConfig holds the git hosting API settings used for PR creation.
type GitForgeConfig struct {
	// APIBaseURL of the git host REST API.
	APIBaseURL string `yaml:"api_base_url"`

	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `yaml:"token_env"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultGitForgeConfig returns the built-in git host defaults.
func DefaultGitForgeConfig() *GitForgeConfig {
	return &GitForgeConfig{
		APIBaseURL:     "https://api.github.com",
		TokenEnv:       "GITHUB_TOKEN",
		RequestTimeout: 30 * time.Second,
	}
}

// NotifierConfig holds Slack notification settings for tickets that need
// human attention (on_hold, needs_review).
type NotifierConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// DefaultNotifierConfig returns the built-in notifier defaults (disabled).
func DefaultNotifierConfig() *NotifierConfig {
	return &NotifierConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}
}

// PipelineErrorPolicy selects what happens to a ticket whose verification or
// PR creation errored after a successful code push.
type PipelineErrorPolicy string

const (
	// PipelineErrorCompleteWithWarning completes the ticket to done with a
	// warning artifact. The agent's pushed work is never discarded.
	PipelineErrorCompleteWithWarning PipelineErrorPolicy = "complete_with_warning"
	// PipelineErrorNeedsReview parks the ticket in needs_review instead.
	PipelineErrorNeedsReview PipelineErrorPolicy = "needs_review"
)

// IsValid reports whether the policy is recognized.
func (p PipelineErrorPolicy) IsValid() bool {
	return p == PipelineErrorCompleteWithWarning || p == PipelineErrorNeedsReview
}

// PipelineConfig controls the post-execution pipeline.
type PipelineConfig struct {
	// MaxAttempts is the verification attempt budget per ticket.
	MaxAttempts int `yaml:"max_attempts"`

	// OnError is the policy applied when the verifier or the git host
	// errors out (as opposed to returning a failed verdict).
	OnError PipelineErrorPolicy `yaml:"on_error"`

	// ScanInterval is how often the pipeline re-scans verifying tickets.
	// The scan re-drives rows whose run was lost to a crash and picks up
	// completions reported by pull agents.
	ScanInterval time.Duration `yaml:"scan_interval"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxAttempts:  3,
		OnError:      PipelineErrorCompleteWithWarning,
		ScanInterval: 30 * time.Second,
	}
}

// SweepConfig controls the background sweep service: dependency unblocking,
// stuck-ticket reporting, and progress-log compaction.
type SweepConfig struct {
	// UnblockInterval is how often blocked tickets are re-checked against
	// their dependencies.
	UnblockInterval time.Duration `yaml:"unblock_interval"`

	// StuckThreshold is how long a non-terminal, non-ready ticket may sit
	// unchanged before it is reported as stuck.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// StuckReportInterval is how often the stuck report runs.
	StuckReportInterval time.Duration `yaml:"stuck_report_interval"`

	// EventRetention is the age past which progress events of terminal
	// tickets are compacted away.
	EventRetention time.Duration `yaml:"event_retention"`

	// CompactionInterval is how often the retention pass runs.
	CompactionInterval time.Duration `yaml:"compaction_interval"`
}

// DefaultSweepConfig returns the built-in sweep defaults.
func DefaultSweepConfig() *SweepConfig {
	return &SweepConfig{
		UnblockInterval:     15 * time.Second,
		StuckThreshold:      10 * time.Minute,
		StuckReportInterval: 5 * time.Minute,
		EventRetention:      30 * 24 * time.Hour,
		CompactionInterval:  12 * time.Hour,
	}
}
