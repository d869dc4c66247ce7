package retry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategories(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name        string
		errorText   string
		category    Category
		subcategory string
	}{
		{"connection refused", "dial tcp 10.0.0.3:5432: connection refused", CategoryTransient, "network"},
		{"dns failure", "lookup verifier.internal: no such host", CategoryTransient, "network"},
		{"gateway error", "upstream returned 503 Service Unavailable", CategoryTransient, "network"},
		{"rate limited", "git host said: rate limit exceeded, retry later", CategoryTransient, "rate-limit"},
		{"http 429", "POST /pulls: 429", CategoryTransient, "rate-limit"},

		{"test failure", "verification failed: 3 tests failed in pkg/api", CategoryVerification, "tests"},
		{"build failure", "build failed: undefined symbol", CategoryVerification, "lint"},
		{"criteria", "acceptance criteria not satisfied for item 2", CategoryVerification, "generic"},

		{"timeout", "execution timed out after 5m0s", CategoryResource, "timeout"},
		{"context deadline", "context deadline exceeded", CategoryResource, "timeout"},
		{"oom", "agent process killed: out of memory", CategoryResource, "memory"},

		{"ambiguous spec", "ticket is ambiguous: two conflicting behaviors requested", CategoryAmbiguity, ""},
		{"explicit no-retry", "agent gave up, do not retry", CategoryAmbiguity, ""},

		{"empty", "", CategoryUnknown, ""},
		{"novel error", "segmentation fault in generated parser", CategoryUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.errorText, 0)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.subcategory, got.Subcategory)
		})
	}
}

func TestClassifyRetryBudget(t *testing.T) {
	c := NewClassifier(nil)

	// Transient errors retry up to 5 times.
	first := c.Classify("connection refused", 0)
	assert.True(t, first.ShouldRetry)
	assert.Equal(t, 5, first.MaxRetries)
	assert.Equal(t, 5, first.AttemptsRemaining)

	last := c.Classify("connection refused", 4)
	assert.True(t, last.ShouldRetry)
	assert.Equal(t, 1, last.AttemptsRemaining)

	exhausted := c.Classify("connection refused", 5)
	assert.False(t, exhausted.ShouldRetry)
	assert.Equal(t, 0, exhausted.AttemptsRemaining)
}

func TestClassifyAmbiguityNeverRetries(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Classify("requirements are ambiguous", 0)
	assert.False(t, got.ShouldRetry)
	assert.Equal(t, 0, got.MaxRetries)
	assert.Equal(t, BackoffNone, got.BackoffType)
	assert.Zero(t, got.NextDelayMS)
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(nil)

	a := c.Classify("connection reset by peer", 2)
	b := c.Classify("connection reset by peer", 2)
	assert.Equal(t, a, b)
}

func TestNextDelayExponential(t *testing.T) {
	c := NewClassifier(nil)

	// Transient: base 2s, doubling, capped at 60s.
	assert.Equal(t, int64(2000), c.Classify("network error", 0).NextDelayMS)
	assert.Equal(t, int64(4000), c.Classify("network error", 1).NextDelayMS)
	assert.Equal(t, int64(8000), c.Classify("network error", 2).NextDelayMS)
	assert.Equal(t, int64(60000), c.Classify("network error", 10).NextDelayMS)
}

func TestNextDelayConstant(t *testing.T) {
	c := NewClassifier(nil)

	// Verification failures use a constant 5s delay regardless of attempt.
	assert.Equal(t, int64(5000), c.Classify("tests failed", 0).NextDelayMS)
	assert.Equal(t, int64(5000), c.Classify("tests failed", 2).NextDelayMS)
}

func TestClassifyCustomTable(t *testing.T) {
	table := DefaultPolicies()
	table[CategoryTransient] = Policy{MaxRetries: 1, Backoff: BackoffConstant, BaseDelayMS: 100}
	c := NewClassifier(table)

	got := c.Classify("connection refused", 1)
	assert.False(t, got.ShouldRetry)
	assert.Equal(t, int64(100), got.NextDelayMS)
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range []Category{CategoryTransient, CategoryVerification, CategoryResource, CategoryAmbiguity, CategoryUnknown} {
		assert.True(t, c.IsValid())
	}
	assert.False(t, Category("made-up").IsValid())
}
