package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	errClaimField   = errors.New("claim field must be non-empty and free of ':'")
)

const defaultTTL = 12 * time.Hour

// HMACStrategy signs subject, role and expiry with HMAC-SHA256.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates a signed token for subject acting as role.
func (s *HMACStrategy) IssueToken(subject, role string) (string, Claims, error) {
	if !validClaimField(subject) || !validClaimField(role) {
		return "", Claims{}, errClaimField
	}
	claims := Claims{Subject: subject, Role: role, ExpiresAt: s.now().Add(s.ttl).Truncate(time.Second)}
	payload := fmt.Sprintf("%s:%s:%d", subject, role, claims.ExpiresAt.Unix())
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), claims, nil
}

// ParseToken validates signature and expiry and returns the claims.
func (s *HMACStrategy) ParseToken(token string) (Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return Claims{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[3])) {
		return Claims{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	expiresAt := time.Unix(expires, 0)
	if !s.now().Before(expiresAt) {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Subject: parts[0], Role: parts[1], ExpiresAt: expiresAt}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func validClaimField(v string) bool {
	return v != "" && !strings.Contains(v, ":")
}
