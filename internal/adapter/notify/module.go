package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
)

// Module exposes the notification sender chosen by configuration:
// Kafka when brokers are set, then a webhook, then the log.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	logger := p.Logger.With("component", "notify")
	if len(p.Config.KafkaBrokers) == 0 {
		if p.Config.NotifyWebhookURL != "" {
			return NewWebhookSender(p.Config.NotifyWebhookURL, logger)
		}
		logger.Info("no notification channel configured, notifications go to the log")
		return NewLogSender(logger), nil
	}

	sender, err := NewKafkaSender(p.Config.KafkaBrokers, p.Config.NotifyTopic, logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return sender.Close(ctx)
		},
	})
	return sender, nil
}
