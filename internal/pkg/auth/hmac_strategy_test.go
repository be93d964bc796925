package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewHMACStrategy_DefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != defaultTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.now == nil {
		t.Fatal("expected default clock")
	}
}

func TestNewHMACStrategy_CustomTTL(t *testing.T) {
	ttl := 2 * time.Hour
	strategy := NewHMACStrategy("secret", Options{TTL: ttl})
	if strategy.ttl != ttl {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute, Now: fixedClock(now)})

	token, issued, err := strategy.IssueToken("operator", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if !issued.ExpiresAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("unexpected expiry: %s", issued.ExpiresAt)
	}

	claims, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "operator" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.ExpiresAt.Equal(issued.ExpiresAt) {
		t.Fatalf("expiry mismatch: %s vs %s", claims.ExpiresAt, issued.ExpiresAt)
	}
}

func TestHMACStrategy_IssueRejectsBadFields(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	for _, tc := range [][2]string{{"", "admin"}, {"op", ""}, {"a:b", "admin"}, {"op", "ad:min"}} {
		if _, _, err := strategy.IssueToken(tc[0], tc[1]); err == nil {
			t.Fatalf("expected error for %q/%q", tc[0], tc[1])
		}
	}
}

func TestHMACStrategy_ParseInvalidBase64(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if _, err := strategy.ParseToken("not-base64"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidParts(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token := base64.StdEncoding.EncodeToString([]byte("only:two"))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, _, err := strategy.IssueToken("operator", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		t.Fatalf("unexpected parts count: %d", len(parts))
	}

	forgedRole := append([]string(nil), parts...)
	forgedRole[1] = "root"
	for _, forged := range [][]string{forgedRole, append(parts[:3:3], "tampered")} {
		tampered := base64.StdEncoding.EncodeToString([]byte(strings.Join(forged, ":")))
		if _, err := strategy.ParseToken(tampered); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	}

	other := NewHMACStrategy("other-secret", Options{})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected token from another secret to be rejected, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidExpiry(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	payload := "operator:admin:not-a-number"
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, strategy.sign(payload))))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewHMACStrategy("secret", Options{TTL: time.Minute, Now: fixedClock(now)})
	token, _, err := issuer.IssueToken("operator", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	later := NewHMACStrategy("secret", Options{Now: fixedClock(now.Add(time.Minute))})
	if _, err := later.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
}
