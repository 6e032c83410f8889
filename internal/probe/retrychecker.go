package probe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/apphealth/internal/domain"
)

// RetryChecker retries Inner while it reports a Failure. Any Success,
// including non-2xx, is returned at once.
type RetryChecker struct {
	Inner   Checker
	Retries int // additional attempts after the first failure
	Backoff func(attempt int) time.Duration
	Sleep   func(ctx context.Context, d time.Duration) error
	Logger  *zap.Logger
}

// LinearBackoff waits 1+attempt seconds. attempt has already been
// incremented for the failure that triggered the wait, so the first retry
// waits 2s, then 3s, 4s and so on.
func LinearBackoff(attempt int) time.Duration {
	return time.Duration(1+attempt) * time.Second
}

func (r *RetryChecker) Check(ctx context.Context, target string) domain.Outcome {
	backoff := r.Backoff
	if backoff == nil {
		backoff = LinearBackoff
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	attempt := 0
	for {
		out := r.Inner.Check(ctx, target)
		fail, ok := out.(domain.Failure)
		if !ok {
			return out
		}

		attempt++
		if attempt > r.Retries {
			return fail
		}

		d := backoff(attempt)
		log.Warn("probe_attempt_failed",
			zap.String("url", target),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", d),
			zap.String("error", fail.Description),
		)
		if err := sleep(ctx, d); err != nil {
			return fail
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
