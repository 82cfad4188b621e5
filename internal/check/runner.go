package check

import (
	"context"
	"fmt"

	"github.com/knowhow-tools/probe/internal/log"
)

// Reporter receives check lifecycle events. The TUI program implements
// this; tests substitute a recording fake.
type Reporter interface {
	// CreateCheckLogger registers a check and returns the logger its
	// output should go through
	CreateCheckLogger(name string, index, total int) log.Logger

	// Complete marks a check as passed
	Complete(index int)

	// Fail marks a check as failed
	Fail(index int)
}

// Runner executes checks sequentially and reports progress. The checks
// themselves are single-threaded synchronous code, so there is nothing
// to gain from running them concurrently.
type Runner struct {
	reporter Reporter
	logger   log.Logger
}

// NewRunner creates a runner that reports through the given reporter
func NewRunner(reporter Reporter) *Runner {
	return &Runner{
		reporter: reporter,
		logger:   log.Default(),
	}
}

// Run executes all checks in order. Every check runs even when an
// earlier one fails; the aggregate error reports how many failed.
func (r *Runner) Run(ctx context.Context, checks []*Check) error {
	total := len(checks)
	failed := 0

	r.logger.Debug("running checks", "total", total)

	for i, c := range checks {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger := r.reporter.CreateCheckLogger(c.Name, i+1, total)

		result, err := c.Run(ctx, logger)
		if err != nil {
			logger.Error("check failed", "error", err.Error())
			r.reporter.Fail(i + 1)
			failed++
			continue
		}

		for _, line := range result.Lines {
			logger.Info(line)
		}
		r.reporter.Complete(i + 1)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, total)
	}
	return nil
}
