package usecase

import (
	"log/slog"

	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	model.DefaultCatalog,
	newLoginLimiter,
	NewAuthUseCase,
	NewAdminUseCase,
	newSubmissionUseCase,
)

func newLoginLimiter(cfg *config.Config) LoginLimiter {
	return rate.NewLimiter(rate.Every(cfg.LoginInterval), cfg.LoginBurst)
}

type submissionParams struct {
	fx.In

	Orders   repository.OrderRepository
	Catalog  *model.Catalog
	Config   *config.Config
	Notifier OrderNotifier
	Logger   *slog.Logger
}

func newSubmissionUseCase(p submissionParams) *SubmissionUseCase {
	return NewSubmissionUseCase(p.Orders, p.Catalog, p.Config.PriceSource, p.Notifier, p.Logger.With("component", "submission"))
}
