package testutil

import (
	"testing"
	"time"
)

// TestContextAcceptsTB verifies Context works for benchmarks and tests alike.
func TestContextAcceptsTB(t *testing.T) {
	var tb testing.TB = t
	ctx := Context(tb, time.Minute)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if time.Until(deadline) > time.Minute {
		t.Fatalf("deadline exceeds the requested timeout: %v", deadline)
	}
	if ctx.Err() != nil {
		t.Fatalf("context cancelled early: %v", ctx.Err())
	}
}

// TestClockSteps verifies Now advances by the configured step.
func TestClockSteps(t *testing.T) {
	clock := NewClock(time.UnixMilli(10), time.Millisecond)
	if got := clock.Now().UnixMilli(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := clock.Now().UnixMilli(); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
	clock.Set(time.UnixMilli(99))
	if got := clock.Now().UnixMilli(); got != 99 {
		t.Fatalf("expected 99, got %d", got)
	}
}
