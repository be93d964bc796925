package test

import (
	"errors"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(subject, role string) (string, pkgAuth.Claims, error)
	ParseFn func(string) (pkgAuth.Claims, error)
	NameVal string
}

// IssueToken returns "token:<subject>:<role>" valid for an hour.
func (s StrategyStub) IssueToken(subject, role string) (string, pkgAuth.Claims, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject, role)
	}
	claims := pkgAuth.Claims{Subject: subject, Role: role, ExpiresAt: time.Now().Add(time.Hour)}
	return "token:" + subject + ":" + role, claims, nil
}

// ParseToken accepts any token and grants the admin role unless overridden.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{Subject: "operator", Role: string(model.RoleAdmin), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Session *model.Session
	Err     error
	ParseFn func(string) (*model.Session, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (*model.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Session != nil {
		return s.Session, nil
	}
	return AdminSession(token), nil
}

// AdminSession builds a valid admin session for token.
func AdminSession(token string) *model.Session {
	return &model.Session{Token: token, Operator: "operator", Role: model.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
}

// LimiterStub allows a fixed number of attempts, or all when Remaining is negative.
type LimiterStub struct {
	Remaining int
	Calls     int
}

func (l *LimiterStub) Allow() bool {
	l.Calls++
	if l.Remaining < 0 {
		return true
	}
	if l.Remaining == 0 {
		return false
	}
	l.Remaining--
	return true
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
