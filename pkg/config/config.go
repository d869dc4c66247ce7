package config

import "github.com/forgeworks/forge/pkg/retry"

// Config is the umbrella configuration object for the engine: scheduler
// tuning, retry policy table, and connection settings for the external
// collaborators. This is the object returned by Initialize() and threaded
// through the application.
type Config struct {
	configDir string

	Scheduler *SchedulerConfig
	Retry     retry.PolicyTable
	Verifier  *VerifierConfig
	VMPool    *VMPoolConfig
	GitForge  *GitForgeConfig
	Notifier  *NotifierConfig
	Pipeline  *PipelineConfig
	Sweep     *SweepConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Default returns a Config carrying every built-in default, as if an empty
// forge.yaml had been loaded. Used directly by tests and by deployments that
// configure exclusively through the environment.
func Default() *Config {
	return &Config{
		Scheduler: DefaultSchedulerConfig(),
		Retry:     retry.DefaultPolicies(),
		Verifier:  DefaultVerifierConfig(),
		VMPool:    DefaultVMPoolConfig(),
		GitForge:  DefaultGitForgeConfig(),
		Notifier:  DefaultNotifierConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Sweep:     DefaultSweepConfig(),
	}
}
