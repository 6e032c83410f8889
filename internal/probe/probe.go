package probe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/apphealth/internal/domain"
)

// Checker performs a check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) domain.Outcome
}

// New returns the production chain: one GET per attempt with the given
// timeout, retried on transport failure with LinearBackoff.
func New(logger *zap.Logger, timeout time.Duration, retries int) *RetryChecker {
	return &RetryChecker{
		Inner:   NewHTTPChecker(timeout),
		Retries: retries,
		Backoff: LinearBackoff,
		Logger:  logger,
	}
}
