package retry

import "time"

// StrategyDocument renders a classification into the document persisted on
// the ticket's retry_strategy column. The not_before timestamp gates the
// claim pools: claim queries compare it against the database clock, so a
// retried ticket stays invisible until its advisory delay has passed.
func StrategyDocument(c Classification, now time.Time) map[string]interface{} {
	doc := map[string]interface{}{
		"category":           string(c.Category),
		"max_retries":        c.MaxRetries,
		"backoff_type":       string(c.BackoffType),
		"next_delay_ms":      c.NextDelayMS,
		"attempts_remaining": c.AttemptsRemaining,
	}
	if c.Subcategory != "" {
		doc["subcategory"] = c.Subcategory
	}
	if c.NextDelayMS > 0 {
		doc["not_before"] = now.
			Add(time.Duration(c.NextDelayMS) * time.Millisecond).
			UTC().
			Format(time.RFC3339)
	}
	return doc
}

// NotBefore extracts the delay gate from a stored strategy document. The
// second return is false when the document carries no gate.
func NotBefore(doc map[string]interface{}) (time.Time, bool) {
	raw, ok := doc["not_before"].(string)
	if !ok {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
