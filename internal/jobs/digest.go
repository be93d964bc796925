package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// OrderSource lists every stored order, newest first.
type OrderSource interface {
	ListByCreatedDesc(ctx context.Context) ([]model.Order, error)
}

// DigestNotifier queues a summary for the operator. It must not block.
type DigestNotifier interface {
	Digest(ctx context.Context, stats model.OrderStats) bool
}

// DigestJob periodically sends the operator a summary of all orders.
type DigestJob struct {
	orders   OrderSource
	notifier DigestNotifier
	schedule string
	enabled  bool
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewDigestJob creates the digest job. A disabled job never schedules anything.
func NewDigestJob(orders OrderSource, notifier DigestNotifier, schedule string, enabled bool, logger *slog.Logger) *DigestJob {
	return &DigestJob{
		orders:   orders,
		notifier: notifier,
		schedule: schedule,
		enabled:  enabled,
		cron:     cron.New(),
		logger:   logger.With("component", "order_digest_job"),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *DigestJob) Start() error {
	if !j.enabled {
		j.logger.Info("order digest disabled")
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.logger.Error("order digest failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		return fmt.Errorf("schedule order digest %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.running = true
	j.logger.Info("order digest started", slog.String("schedule", j.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (j *DigestJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.running {
		return
	}
	<-j.cron.Stop().Done()
	j.running = false
	j.logger.Info("order digest stopped")
}

// Run builds one digest from the stored orders and queues it.
func (j *DigestJob) Run(ctx context.Context) error {
	orders, err := j.orders.ListByCreatedDesc(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	stats := usecase.Summarize(orders)
	if !j.notifier.Digest(ctx, stats) {
		j.logger.WarnContext(ctx, "order digest not queued", slog.Int("total", stats.Total))
		return nil
	}
	j.logger.DebugContext(ctx, "order digest queued", slog.Int("total", stats.Total))
	return nil
}
