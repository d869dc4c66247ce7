// Package retry classifies agent failure reports into retry policies. The
// classifier is a pure function: given the error text and the current retry
// count it produces a deterministic policy with no hidden state. Category
// tables ship with defaults and may be overridden through configuration.
package retry

import "strings"

// Category identifies the failure class a ticket error falls into.
type Category string

const (
	// CategoryTransient covers infrastructure blips: network errors, API
	// rate limits, upstream timeouts on connect. Always worth retrying.
	CategoryTransient Category = "transient-infrastructure"
	// CategoryVerification covers failures reported by the verifier:
	// failing tests, lint errors, unmet acceptance criteria.
	CategoryVerification Category = "verification-failure"
	// CategoryResource covers execution resource exhaustion: ticket
	// timeout, out-of-memory, disk pressure inside the VM.
	CategoryResource Category = "resource-exhaustion"
	// CategoryAmbiguity marks errors where the agent could not resolve the
	// specification. Never retried; routed to on_hold for a human.
	CategoryAmbiguity Category = "specification-ambiguity"
	// CategoryUnknown is the fallback for unrecognized error text.
	CategoryUnknown Category = "unknown"
)

// IsValid reports whether the category is one of the recognized classes.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTransient, CategoryVerification, CategoryResource,
		CategoryAmbiguity, CategoryUnknown:
		return true
	default:
		return false
	}
}

// BackoffType names the delay growth curve between attempts.
type BackoffType string

const (
	BackoffExponential BackoffType = "exponential"
	BackoffConstant    BackoffType = "constant"
	BackoffCapped      BackoffType = "capped"
	BackoffNone        BackoffType = "none"
)

// Policy is the per-category retry budget and backoff plan.
type Policy struct {
	MaxRetries  int         `yaml:"max_retries"`
	Backoff     BackoffType `yaml:"backoff"`
	BaseDelayMS int64       `yaml:"base_delay_ms"`
	MaxDelayMS  int64       `yaml:"max_delay_ms,omitempty"`
}

// PolicyTable maps categories to policies. Zero-value lookups fall back to
// the unknown policy.
type PolicyTable map[Category]Policy

// DefaultPolicies returns the built-in category table.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		CategoryTransient:    {MaxRetries: 5, Backoff: BackoffExponential, BaseDelayMS: 2000, MaxDelayMS: 60000},
		CategoryVerification: {MaxRetries: 3, Backoff: BackoffConstant, BaseDelayMS: 5000},
		CategoryResource:     {MaxRetries: 2, Backoff: BackoffExponential, BaseDelayMS: 10000, MaxDelayMS: 120000},
		CategoryAmbiguity:    {MaxRetries: 0, Backoff: BackoffNone},
		CategoryUnknown:      {MaxRetries: 3, Backoff: BackoffExponential, BaseDelayMS: 5000, MaxDelayMS: 60000},
	}
}

// Classification is the full verdict for one failure report.
type Classification struct {
	Category          Category    `json:"category"`
	Subcategory       string      `json:"subcategory,omitempty"`
	MaxRetries        int         `json:"max_retries"`
	BackoffType       BackoffType `json:"backoff_type"`
	NextDelayMS       int64       `json:"next_delay_ms"`
	AttemptsRemaining int         `json:"attempts_remaining"`
	ShouldRetry       bool        `json:"should_retry"`
}

// Classifier evaluates error text against a policy table.
type Classifier struct {
	policies PolicyTable
}

// NewClassifier builds a classifier over the given table. A nil table uses
// the defaults.
func NewClassifier(policies PolicyTable) *Classifier {
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &Classifier{policies: policies}
}

// matcher binds a set of lowercase substrings to a category/subcategory.
// First match wins; order encodes precedence.
type matcher struct {
	category    Category
	subcategory string
	needles     []string
}

var matchers = []matcher{
	{CategoryAmbiguity, "", []string{
		"ambiguous", "specification unclear", "spec unclear", "unclear requirement",
		"cannot determine intent", "conflicting requirements", "do not retry",
	}},
	{CategoryResource, "timeout", []string{
		"ticket timeout", "execution timed out", "deadline exceeded", "context deadline",
	}},
	{CategoryResource, "memory", []string{
		"out of memory", "oom", "cannot allocate memory", "no space left on device",
	}},
	{CategoryTransient, "rate-limit", []string{
		"rate limit", "too many requests", "429", "quota exceeded",
	}},
	{CategoryTransient, "network", []string{
		"connection refused", "connection reset", "network", "dns", "no such host",
		"tls handshake", "502", "503", "504", "temporarily unavailable", "broken pipe",
		"eof", "i/o timeout",
	}},
	{CategoryVerification, "tests", []string{
		"test failed", "tests failed", "assertion", "verification failed",
	}},
	{CategoryVerification, "lint", []string{
		"lint", "static analysis", "type error", "compile error", "build failed",
	}},
	{CategoryVerification, "generic", []string{
		"acceptance criteria", "criteria not met",
	}},
}

// Classify maps an error report and the current retry count to a policy
// verdict. Empty error text classifies as unknown.
func (c *Classifier) Classify(errorText string, retryCount int) Classification {
	category, subcategory := match(errorText)
	policy := c.policy(category)

	remaining := policy.MaxRetries - retryCount
	if remaining < 0 {
		remaining = 0
	}

	return Classification{
		Category:          category,
		Subcategory:       subcategory,
		MaxRetries:        policy.MaxRetries,
		BackoffType:       policy.Backoff,
		NextDelayMS:       nextDelay(policy, retryCount),
		AttemptsRemaining: remaining,
		ShouldRetry:       retryCount < policy.MaxRetries && category != CategoryAmbiguity,
	}
}

func (c *Classifier) policy(category Category) Policy {
	if p, ok := c.policies[category]; ok {
		return p
	}
	return c.policies[CategoryUnknown]
}

func match(errorText string) (Category, string) {
	text := strings.ToLower(strings.TrimSpace(errorText))
	if text == "" {
		return CategoryUnknown, ""
	}
	for _, m := range matchers {
		for _, needle := range m.needles {
			if strings.Contains(text, needle) {
				return m.category, m.subcategory
			}
		}
	}
	return CategoryUnknown, ""
}

// nextDelay computes the advisory delay before the next attempt. retryCount
// is the number of attempts already consumed, so the first retry of an
// exponential policy waits exactly the base delay.
func nextDelay(policy Policy, retryCount int) int64 {
	switch policy.Backoff {
	case BackoffNone:
		return 0
	case BackoffConstant:
		return policy.BaseDelayMS
	default:
		delay := policy.BaseDelayMS
		for i := 0; i < retryCount; i++ {
			delay *= 2
			if policy.MaxDelayMS > 0 && delay >= policy.MaxDelayMS {
				return policy.MaxDelayMS
			}
		}
		if policy.MaxDelayMS > 0 && delay > policy.MaxDelayMS {
			return policy.MaxDelayMS
		}
		return delay
	}
}
