package workqueue

import (
	"testing"
	"time"
)

// waitUntil polls cond until it reports true or timeout elapses, failing
// the test otherwise. Used to observe internal scheduling state (e.g. "the
// worker has actually picked this item up") without a fixed sleep.
func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	if !cond() {
		t.Fatal("condition was not met before the timeout")
	}
}
