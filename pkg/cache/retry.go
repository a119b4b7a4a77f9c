package cache

import (
	"context"
	"errors"
	"net"
	"time"
)

// Connection retry policy for remote caches.
const (
	connectAttempts = 3
	connectDelay    = 200 * time.Millisecond
)

// transientError marks a failure worth retrying, such as a refused or timed
// out connection while the cache server starts up.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// retry runs fn up to attempts times, doubling delay after each failure. Only
// errors wrapped in *transientError are retried; anything else is returned
// at once. A cancelled ctx stops the loop with ctx.Err().
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*transientError)) {
			return err
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// classify wraps network-level failures as transient.
func classify(err error) error {
	var netErr net.Error
	if err != nil && errors.As(err, &netErr) {
		return &transientError{err: err}
	}
	return err
}
