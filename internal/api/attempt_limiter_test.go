package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterSlidingWindow(t *testing.T) {
	limiter := newAttemptLimiter()
	start := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	window := 15 * time.Minute

	for attempt := 0; attempt < 3; attempt++ {
		limiter.addFailure("key", start.Add(time.Duration(attempt)*time.Minute), window)
	}
	if !limiter.tooManyRecent("key", start.Add(3*time.Minute), 3, window) {
		t.Fatal("expected key to be limited after three failures")
	}
	if limiter.tooManyRecent("other", start.Add(3*time.Minute), 3, window) {
		t.Fatal("expected unrelated key to be allowed")
	}
	if limiter.tooManyRecent("key", start.Add(15*time.Minute+30*time.Second), 3, window) {
		t.Fatal("expected oldest failure to fall out of the window")
	}

	limiter.reset("key")
	if limiter.tooManyRecent("key", start.Add(4*time.Minute), 1, window) {
		t.Fatal("expected reset to clear failures")
	}
}
