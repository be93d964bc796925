package jobs

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// Module wires scheduled background jobs.
var Module = fx.Options(
	fx.Provide(newDigestJob),
	fx.Invoke(registerLifecycle),
)

type digestParams struct {
	fx.In

	Orders   repository.OrderRepository
	Notifier DigestNotifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newDigestJob(p digestParams) *DigestJob {
	return NewDigestJob(p.Orders, p.Notifier, p.Config.DigestSchedule, p.Config.DigestEnabled(), p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, job *DigestJob) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return job.Start()
		},
		OnStop: func(context.Context) error {
			job.Stop()
			return nil
		},
	})
}
