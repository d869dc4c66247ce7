package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/forgeworks/forge/pkg/retry"
)

// engineYAMLConfig represents the complete forge.yaml file structure.
type engineYAMLConfig struct {
	Scheduler     *SchedulerConfig        `yaml:"scheduler"`
	RetryPolicies map[string]retry.Policy `yaml:"retry_policies"`
	Verifier      *VerifierConfig         `yaml:"verifier"`
	VMPool        *VMPoolConfig           `yaml:"vm_pool"`
	GitForge      *GitForgeConfig         `yaml:"git_forge"`
	Notifier      *NotifierConfig         `yaml:"notifier"`
	Pipeline      *PipelineConfig         `yaml:"pipeline"`
	Sweep         *SweepConfig            `yaml:"sweep"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load forge.yaml from configDir (a missing file means pure defaults)
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate the result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"max_concurrent", cfg.Scheduler.MaxConcurrent,
		"lease_window", cfg.Scheduler.LeaseWindow,
		"pipeline_max_attempts", cfg.Pipeline.MaxAttempts,
		"notifier_enabled", cfg.Notifier.Enabled)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := Default()
	cfg.configDir = configDir

	userCfg, err := loadEngineYAML(configDir)
	if err != nil {
		return nil, err
	}
	if userCfg == nil {
		return cfg, nil
	}

	// Merge user-provided sections into defaults; non-zero values override
	// so an unset field keeps its default.
	sections := []struct {
		dst any
		src any
	}{
		{cfg.Scheduler, userCfg.Scheduler},
		{cfg.Verifier, userCfg.Verifier},
		{cfg.VMPool, userCfg.VMPool},
		{cfg.GitForge, userCfg.GitForge},
		{cfg.Notifier, userCfg.Notifier},
		{cfg.Pipeline, userCfg.Pipeline},
		{cfg.Sweep, userCfg.Sweep},
	}
	for _, s := range sections {
		if isNil(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config section: %w", err)
		}
	}

	// Retry policies replace per category: an overridden category takes the
	// user's table entry wholesale, untouched categories keep defaults.
	for name, policy := range userCfg.RetryPolicies {
		category := retry.Category(name)
		if !category.IsValid() {
			return nil, NewValidationError("retry_policies", name, fmt.Errorf("%w: unknown category", ErrInvalidValue))
		}
		cfg.Retry[category] = policy
	}

	return cfg, nil
}

// loadEngineYAML reads forge.yaml. A missing file returns (nil, nil): the
// engine runs on defaults plus environment.
func loadEngineYAML(configDir string) (*engineYAMLConfig, error) {
	path := filepath.Join(configDir, "forge.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No forge.yaml found, using built-in defaults", "path", path)
			return nil, nil
		}
		return nil, NewLoadError("forge.yaml", err)
	}

	// Expand {{.VAR}} environment references before parsing.
	data = ExpandEnv(data)

	var cfg engineYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewLoadError("forge.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	return &cfg, nil
}

func isNil(v any) bool {
	switch s := v.(type) {
	case *SchedulerConfig:
		return s == nil
	case *VerifierConfig:
		return s == nil
	case *VMPoolConfig:
		return s == nil
	case *GitForgeConfig:
		return s == nil
	case *NotifierConfig:
		return s == nil
	case *PipelineConfig:
		return s == nil
	case *SweepConfig:
		return s == nil
	default:
		return v == nil
	}
}
