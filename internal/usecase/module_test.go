package usecase

import (
	"testing"
	"time"

	"github.com/polkiloo/orderdesk/internal/config"
)

func TestNewLoginLimiterHonoursBurst(t *testing.T) {
	limiter := newLoginLimiter(&config.Config{LoginInterval: time.Hour, LoginBurst: 2})
	if !limiter.Allow() || !limiter.Allow() {
		t.Fatalf("expected burst of two attempts")
	}
	if limiter.Allow() {
		t.Fatalf("expected third attempt to be throttled")
	}
}
