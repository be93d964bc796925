package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/adapter/credentials"
	"github.com/polkiloo/orderdesk/internal/adapter/notify"
	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/jobs"
	"github.com/polkiloo/orderdesk/internal/logger"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/router"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// Module composes the whole application graph. Extra options are appended
// last so callers can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		credentials.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
		jobs.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
