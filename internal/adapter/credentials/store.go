package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// Operator is the account name of the single studio operator.
const Operator = "operator"

var errMissingPassword = errors.New("admin password is not configured")

// StaticStore serves the operator credential resolved at startup.
type StaticStore struct {
	credential model.Credential
}

// NewStaticStore accepts a bcrypt hash, or hashes a plain password once.
func NewStaticStore(passwordHash, password string, hasher auth.PasswordHasher) (*StaticStore, error) {
	hash := passwordHash
	switch {
	case hash != "":
		if !auth.IsBcryptHash(hash) {
			return nil, fmt.Errorf("admin password hash is not a bcrypt hash")
		}
	case password != "":
		var err error
		if hash, err = hasher.Hash(password); err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	default:
		return nil, errMissingPassword
	}

	return &StaticStore{credential: model.Credential{
		Operator:     Operator,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}}, nil
}

func (s *StaticStore) OperatorCredential(ctx context.Context) (*model.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.credential
	return &c, nil
}
