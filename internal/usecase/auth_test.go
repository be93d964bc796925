package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	testhelpers "github.com/polkiloo/orderdesk/internal/test"
)

func operatorCredentials() testhelpers.CredentialRepositoryStub {
	return testhelpers.CredentialRepositoryStub{Credential: &model.Credential{
		Operator:     "operator",
		PasswordHash: "hash:secret",
		Role:         model.RoleAdmin,
	}}
}

func TestAuthUseCaseLoginSuccess(t *testing.T) {
	limiter := &testhelpers.LimiterStub{Remaining: -1}
	uc := NewAuthUseCase(operatorCredentials(), testhelpers.HasherStub{}, testhelpers.StrategyStub{}, limiter)

	session, err := uc.Login(context.Background(), "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token != "token:operator:admin" || session.Role != model.RoleAdmin || session.Operator != "operator" {
		t.Fatalf("unexpected session %+v", session)
	}
	if limiter.Calls != 1 {
		t.Fatalf("expected limiter to be consulted once, got %d", limiter.Calls)
	}
}

func TestAuthUseCaseLoginRejectsWrongPassword(t *testing.T) {
	uc := NewAuthUseCase(operatorCredentials(), testhelpers.HasherStub{}, testhelpers.StrategyStub{}, nil)

	for _, pw := range []string{"", "wrong"} {
		if _, err := uc.Login(context.Background(), pw); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for %q, got %v", pw, err)
		}
	}
}

func TestAuthUseCaseLoginRejectsNonAdminRole(t *testing.T) {
	creds := operatorCredentials()
	creds.Credential.Role = model.Role("viewer")
	uc := NewAuthUseCase(creds, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, nil)

	if _, err := uc.Login(context.Background(), "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthUseCaseLoginThrottled(t *testing.T) {
	limiter := &testhelpers.LimiterStub{Remaining: 1}
	uc := NewAuthUseCase(operatorCredentials(), testhelpers.HasherStub{}, testhelpers.StrategyStub{}, limiter)

	if _, err := uc.Login(context.Background(), "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "secret"); !errors.Is(err, domainErrors.ErrTooManyAttempts) {
		t.Fatalf("expected throttling, got %v", err)
	}
}

func TestAuthUseCaseLoginPropagatesErrors(t *testing.T) {
	credErr := errors.New("vault sealed")
	uc := NewAuthUseCase(testhelpers.CredentialRepositoryStub{Err: credErr}, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, nil)
	if _, err := uc.Login(context.Background(), "secret"); !errors.Is(err, credErr) {
		t.Fatalf("expected credential error, got %v", err)
	}

	issueErr := errors.New("sign failed")
	strategy := testhelpers.StrategyStub{IssueFn: func(string, string) (string, pkgAuth.Claims, error) {
		return "", pkgAuth.Claims{}, issueErr
	}}
	uc = NewAuthUseCase(operatorCredentials(), testhelpers.HasherStub{}, strategy, nil)
	if _, err := uc.Login(context.Background(), "secret"); !errors.Is(err, issueErr) {
		t.Fatalf("expected issue error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	strategy := testhelpers.StrategyStub{ParseFn: func(token string) (pkgAuth.Claims, error) {
		if token != "good" {
			return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
		}
		return pkgAuth.Claims{Subject: "operator", Role: "admin"}, nil
	}}
	uc := NewAuthUseCase(operatorCredentials(), testhelpers.HasherStub{}, strategy, nil)

	session, err := uc.ParseToken("good")
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if session.Token != "good" || session.Role != model.RoleAdmin {
		t.Fatalf("unexpected session %+v", session)
	}
	for _, tok := range []string{"", "bad"} {
		if _, err := uc.ParseToken(tok); !errors.Is(err, pkgAuth.ErrInvalidToken) {
			t.Fatalf("expected invalid token for %q, got %v", tok, err)
		}
	}
}
