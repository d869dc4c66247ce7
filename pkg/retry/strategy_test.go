package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyDocument(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c := NewClassifier(nil).Classify("connection refused", 1)

	doc := StrategyDocument(c, now)
	assert.Equal(t, "transient-infrastructure", doc["category"])
	assert.Equal(t, "network", doc["subcategory"])
	assert.Equal(t, 5, doc["max_retries"])

	gate, ok := NotBefore(doc)
	require.True(t, ok)
	assert.Equal(t, now.Add(4*time.Second), gate, "second retry of a 2s exponential policy waits 4s")
}

func TestStrategyDocumentWithoutDelay(t *testing.T) {
	c := NewClassifier(nil).Classify("requirements are ambiguous", 0)

	doc := StrategyDocument(c, time.Now())
	assert.Equal(t, "specification-ambiguity", doc["category"])
	_, hasGate := NotBefore(doc)
	assert.False(t, hasGate, "no-retry verdicts carry no gate")
	_, hasSub := doc["subcategory"]
	assert.False(t, hasSub)
}

func TestNotBeforeMalformed(t *testing.T) {
	_, ok := NotBefore(nil)
	assert.False(t, ok)

	_, ok = NotBefore(map[string]interface{}{"not_before": 42})
	assert.False(t, ok)

	_, ok = NotBefore(map[string]interface{}{"not_before": "yesterday-ish"})
	assert.False(t, ok)
}
