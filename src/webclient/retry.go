package webclient

import (
	"context"
	"time"
)

// retryDelay is the backoff unit; attempt n sleeps n*retryDelay before the
// next try. Overridden in tests.
var retryDelay = time.Second

// Do runs fn up to attempts times with linear backoff. Any error triggers a
// retry; the final error is returned to the caller unmodified.
func Do(ctx context.Context, attempts int, fn func() error) error {
	if attempts <= 0 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		t := time.NewTimer(time.Duration(i) * retryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
	}
	return err
}
