package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChanged is raised whenever an order's shipping status is set.
type StatusChanged struct {
	OrderID    kernel.UUID `json:"order_id"`
	From       Status      `json:"from"`
	To         Status      `json:"to"`
	IsAbnormal bool        `json:"is_abnormal"`
	Timestamp  time.Time   `json:"occurred_at"`
}

// EventName returns "order.status_changed".
func (e StatusChanged) EventName() string { return "order.status_changed" }

// OccurredAt returns when the event was raised.
func (e StatusChanged) OccurredAt() time.Time { return e.Timestamp }

// AggregateID returns the order, used as the partitioning key.
func (e StatusChanged) AggregateID() kernel.UUID { return e.OrderID }
