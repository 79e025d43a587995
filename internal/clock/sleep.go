// Package clock holds the cancelable wait the scheduler loops are built on.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d, returning early with the context error when
// ctx is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
