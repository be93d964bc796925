package dto

import "time"

// LoginRequest carries the operator password.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse describes an opened admin session.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
