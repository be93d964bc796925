package credentials

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// Module exposes the operator credential store to fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Hasher auth.PasswordHasher
}

func newStore(p storeParams) (repository.CredentialRepository, error) {
	return NewStaticStore(p.Config.AdminPasswordHash, p.Config.AdminPassword, p.Hasher)
}
