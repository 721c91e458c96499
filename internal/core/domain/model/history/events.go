package history

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// AbnormalTransitionDetected is raised when a recorded change moves an order backward
// outside the allowed recovery cases.
type AbnormalTransitionDetected struct {
	RecordID   kernel.UUID  `json:"record_id"`
	OrderID    kernel.UUID  `json:"order_id"`
	From       order.Status `json:"from"`
	To         order.Status `json:"to"`
	Reason     string       `json:"reason"`
	OperatorID *kernel.UUID `json:"operator_id,omitempty"`
	Timestamp  time.Time    `json:"occurred_at"`
}

// EventName returns "order.status_abnormal_transition".
func (e AbnormalTransitionDetected) EventName() string { return "order.status_abnormal_transition" }

// OccurredAt returns when the event was raised.
func (e AbnormalTransitionDetected) OccurredAt() time.Time { return e.Timestamp }

// AggregateID returns the order, used as the partitioning key.
func (e AbnormalTransitionDetected) AggregateID() kernel.UUID { return e.OrderID }
