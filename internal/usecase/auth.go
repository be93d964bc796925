package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// LoginLimiter throttles login attempts.
type LoginLimiter interface {
	Allow() bool
}

// AuthUseCase authenticates the operator and validates admin sessions.
type AuthUseCase struct {
	credentials repository.CredentialRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
	limiter     LoginLimiter
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(credentials repository.CredentialRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, limiter LoginLimiter) *AuthUseCase {
	return &AuthUseCase{credentials: credentials, hasher: hasher, tokens: strategy, limiter: limiter}
}

// Login checks the password and opens an admin session.
func (u *AuthUseCase) Login(ctx context.Context, password string) (*model.Session, error) {
	if u.limiter != nil && !u.limiter.Allow() {
		return nil, domainErrors.ErrTooManyAttempts
	}
	if password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	cred, err := u.credentials.OperatorCredential(ctx)
	if err != nil {
		return nil, err
	}
	if cred.Role != model.RoleAdmin {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if err := u.hasher.Compare(cred.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	token, claims, err := u.tokens.IssueToken(cred.Operator, string(cred.Role))
	if err != nil {
		return nil, err
	}
	return &model.Session{
		Token:     token,
		Operator:  claims.Subject,
		Role:      model.Role(claims.Role),
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// ParseToken validates a session token.
func (u *AuthUseCase) ParseToken(token string) (*model.Session, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &model.Session{
		Token:     token,
		Operator:  claims.Subject,
		Role:      model.Role(claims.Role),
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
