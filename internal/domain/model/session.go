package model

import "time"

// Role grants access to a class of operations.
type Role string

const RoleAdmin Role = "admin"

// Credential is the stored secret of the operator account.
type Credential struct {
	Operator     string
	PasswordHash string
	Role         Role
}

// Session is an authenticated operator session backed by a signed token.
type Session struct {
	Token     string
	Operator  string
	Role      Role
	ExpiresAt time.Time
}

// HasRole reports whether the session grants role and is still valid at now.
func (s *Session) HasRole(role Role, now time.Time) bool {
	return s != nil && s.Role == role && now.Before(s.ExpiresAt)
}
