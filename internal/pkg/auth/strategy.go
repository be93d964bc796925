package auth

import "time"

// Claims are the facts a session token vouches for.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(subject, role string) (string, Claims, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}
