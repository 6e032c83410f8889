package runner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/apphealth/internal/domain"
	"github.com/hamed0406/apphealth/internal/probe"
	"github.com/hamed0406/apphealth/internal/report"
)

// Emitter receives one rendered health line per URL.
type Emitter interface {
	Emit(line string) error
}

type Runner struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Sink    Emitter
	Now     func() time.Time
}

func New(logger *zap.Logger, checker probe.Checker, sink Emitter, now func() time.Time) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Runner{
		Logger:  logger,
		Checker: checker,
		Sink:    sink,
		Now:     now,
	}
}

// Run probes urls one after another and emits a line for each. A failed
// probe never stops the loop; a sink error does and is returned.
func (r *Runner) Run(ctx context.Context, urls []string) error {
	start := time.Now()
	counts := map[domain.Status]int{}

	for _, u := range urls {
		out := r.Checker.Check(ctx, u)
		status := report.Classify(out)
		counts[status]++

		line := report.Format(u, out, r.Now())
		if err := r.Sink.Emit(line); err != nil {
			r.Logger.Error("sink_write_error", zap.String("url", u), zap.Error(err))
			return err
		}
		r.Logger.Debug("probe_done",
			zap.String("url", u),
			zap.String("status", string(status)),
		)
	}

	r.Logger.Info("run_done",
		zap.Int("urls", len(urls)),
		zap.Int("up", counts[domain.StatusUp]),
		zap.Int("degraded", counts[domain.StatusDegraded]),
		zap.Int("down", counts[domain.StatusDown]),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
