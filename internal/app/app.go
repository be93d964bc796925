package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/adapter/notify"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/jobs"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
	"github.com/polkiloo/orderdesk/internal/usecase"
	"github.com/polkiloo/orderdesk/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewOrderDeskFacade,
		func(f *OrderDeskFacade) handlers.OrderDeskFacade { return f },
		func(s *postgres.Storage) HealthChecker { return s },
		newHTTPServer,
		newNotificationDispatcher,
		func(d *worker.NotificationDispatcher) usecase.OrderNotifier { return d },
		func(d *worker.NotificationDispatcher) jobs.DigestNotifier { return d },
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Sender notify.Sender
	Config *config.Config
	Logger *slog.Logger
}

func newNotificationDispatcher(p dispatcherParams) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(
		p.Sender,
		p.Config.OperatorEmail,
		p.Config.NotifyWorkers,
		p.Config.NotifyQueueSize,
		p.Config.NotifyTimeout,
		p.Logger.With("component", "notifications"),
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.NotificationDispatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting orderdesk",
				slog.String("addr", p.Server.Addr),
				slog.String("price_source", string(p.Config.PriceSource)))
			// The start context expires once startup completes.
			p.Dispatcher.Start(context.Background())
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			p.Dispatcher.Stop()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("orderdesk stopped")
			return nil
		},
	})
}
