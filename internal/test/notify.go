package test

import (
	"context"
	"sync"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// SenderStub records every notification it is asked to send.
type SenderStub struct {
	SendFn func(context.Context, model.Notification) error
	Err    error

	mu   sync.Mutex
	sent []model.Notification
}

// Send records n, then returns the override result or Err.
func (s *SenderStub) Send(ctx context.Context, n model.Notification) error {
	s.mu.Lock()
	s.sent = append(s.sent, n)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, n)
	}
	return s.Err
}

// Snapshot returns the notifications recorded so far.
func (s *SenderStub) Snapshot() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.sent))
	copy(out, s.sent)
	return out
}

// NotifierStub captures synchronous notifier calls.
type NotifierStub struct {
	Orders  []model.Order
	Digests []model.OrderStats
	Reject  bool

	mu sync.Mutex
}

func (n *NotifierStub) OrderCreated(ctx context.Context, order model.Order) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Orders = append(n.Orders, order)
	return !n.Reject
}

func (n *NotifierStub) Digest(ctx context.Context, stats model.OrderStats) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Digests = append(n.Digests, stats)
	return !n.Reject
}
