package model

import "time"

// NotificationKind tags the payload of a notification.
type NotificationKind string

const (
	NotificationOrderCreated NotificationKind = "order_created"
	NotificationDigest       NotificationKind = "order_digest"
)

// Notification is a best-effort message to the operator.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Recipient string           `json:"recipient"`
	Order     *Order           `json:"order,omitempty"`
	Stats     *OrderStats      `json:"stats,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Key identifies the notification subject for partitioning.
func (n Notification) Key() string {
	if n.Order != nil {
		return n.Order.ID
	}
	return string(n.Kind)
}
