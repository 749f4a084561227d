package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds contexts created without an explicit timeout.
const DefaultTimeout = 5 * time.Second

// deadliner is implemented by *testing.T; testing.TB does not expose it.
type deadliner interface {
	Deadline() (time.Time, bool)
}

// Context returns a context cancelled when the test ends, after timeout,
// or one second before the go test deadline, whichever comes first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(deadliner); ok {
		if deadline, set := dt.Deadline(); set {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
