package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// CredentialRepository resolves the operator credential used at login.
type CredentialRepository interface {
	OperatorCredential(ctx context.Context) (*model.Credential, error)
}
