package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/adapter/notify"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// NotificationDispatcher delivers operator notifications on a fixed worker pool.
// Delivery is best effort: a full queue or a failed send is logged and dropped.
type NotificationDispatcher struct {
	sender    notify.Sender
	recipient string
	timeout   time.Duration
	workers   int
	logger    *slog.Logger
	now       func() time.Time

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the notification worker pool.
func NewNotificationDispatcher(sender notify.Sender, recipient string, workers, queueSize int, timeout time.Duration, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NotificationDispatcher{
		sender:    sender,
		recipient: recipient,
		timeout:   timeout,
		workers:   workers,
		logger:    logger,
		now:       time.Now,
		jobs:      make(chan model.Notification, queueSize),
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish. Queued notifications are discarded.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
	if pending := len(d.jobs); pending > 0 {
		d.logger.Warn("discarding pending notifications", slog.Int("count", pending))
	}
}

// OrderCreated queues the new-order notification for the operator.
func (d *NotificationDispatcher) OrderCreated(ctx context.Context, order model.Order) bool {
	return d.enqueue(ctx, model.Notification{
		Kind:      model.NotificationOrderCreated,
		Recipient: d.recipient,
		Order:     &order,
		CreatedAt: d.now().UTC(),
	})
}

// Digest queues a summary of the current orders.
func (d *NotificationDispatcher) Digest(ctx context.Context, stats model.OrderStats) bool {
	return d.enqueue(ctx, model.Notification{
		Kind:      model.NotificationDigest,
		Recipient: d.recipient,
		Stats:     &stats,
		CreatedAt: d.now().UTC(),
	})
}

func (d *NotificationDispatcher) enqueue(ctx context.Context, n model.Notification) bool {
	select {
	case d.jobs <- n:
		return true
	default:
		d.logger.WarnContext(ctx, "notification queue full, dropping",
			slog.String("kind", string(n.Kind)), slog.String("key", n.Key()))
		return false
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.jobs:
			d.deliver(ctx, n)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n model.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.sender.Send(sendCtx, n)
	if err == nil {
		return
	}

	var throttled notify.ThrottledError
	if errors.As(err, &throttled) {
		d.logger.Warn("notification throttled",
			slog.String("kind", string(n.Kind)),
			slog.String("key", n.Key()),
			slog.Duration("retry_after", throttled.RetryAfter))
		return
	}
	d.logger.Error("notification delivery failed",
		slog.String("kind", string(n.Kind)),
		slog.String("key", n.Key()),
		slog.String("error", err.Error()))
}
