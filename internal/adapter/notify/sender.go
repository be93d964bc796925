package notify

import (
	"context"
	"log/slog"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Sender delivers a single notification to the operator.
type Sender interface {
	Send(ctx context.Context, n model.Notification) error
}

// LogSender writes notifications to the structured log instead of a broker.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, n model.Notification) error {
	attrs := []any{"kind", n.Kind, "recipient", n.Recipient, "key", n.Key()}
	if n.Order != nil {
		attrs = append(attrs, "customer", n.Order.Name, "service", n.Order.Service, "price", n.Order.Price.String())
	}
	if n.Stats != nil {
		attrs = append(attrs, "total", n.Stats.Total, "new", n.Stats.New)
	}
	s.logger.InfoContext(ctx, "operator notification", attrs...)
	return nil
}
