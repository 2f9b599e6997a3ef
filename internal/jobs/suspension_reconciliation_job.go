package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/ports"
)

// SuspensionReconciliationJob scans for stale suspension markers every
// minute and logs each as a reconciliation candidate. It never mutates
// orders: whether a stale marker means a lost confirmation or a crashed
// clear is an operator's call.
type SuspensionReconciliationJob struct {
	orders    ports.OrderRepository
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSuspensionReconciliationJob creates the reconciliation job. Threshold
// is how old a marker must be before it is reported.
func NewSuspensionReconciliationJob(
	orders ports.OrderRepository,
	threshold time.Duration,
	logger *slog.Logger,
) *SuspensionReconciliationJob {
	return &SuspensionReconciliationJob{
		orders:    orders,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "suspension_reconciliation_job"),
	}
}

// Start begins the reconciliation scan, running every minute.
func (j *SuspensionReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Suspension reconciliation job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the reconciliation job.
func (j *SuspensionReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Suspension reconciliation job stopped")
}

func (j *SuspensionReconciliationJob) runOnce(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.threshold)
	stale, err := j.orders.FindStaleSuspensions(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Suspension reconciliation scan failed", "error", err)
		return
	}

	for _, aggregate := range stale {
		suspension := aggregate.Suspension()
		if suspension == nil {
			continue
		}
		j.logger.WarnContext(ctx, "stale suspension detected",
			"order", aggregate.Key().String(),
			"step", suspension.Step(),
			"status", string(aggregate.Status()),
			"pending_since", suspension.Since().Format(time.RFC3339))
	}
}
