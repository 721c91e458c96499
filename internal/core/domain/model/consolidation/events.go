package consolidation

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// ConsolidationCompleted is raised when a consolidated order is created.
type ConsolidationCompleted struct {
	ConsolidatedOrderID kernel.UUID   `json:"consolidated_order_id"`
	CustomerID          kernel.UUID   `json:"customer_id"`
	OriginalOrderIDs    []kernel.UUID `json:"original_order_ids"`
	ItemCount           int           `json:"item_count"`
	Total               string        `json:"total"`
	Currency            string        `json:"currency"`
	Timestamp           time.Time     `json:"occurred_at"`
}

// EventName returns "consolidation.completed".
func (e ConsolidationCompleted) EventName() string { return "consolidation.completed" }

// OccurredAt returns when the event was raised.
func (e ConsolidationCompleted) OccurredAt() time.Time { return e.Timestamp }

// AggregateID returns the consolidated order, used as the partitioning key.
func (e ConsolidationCompleted) AggregateID() kernel.UUID { return e.ConsolidatedOrderID }

// OpportunityDetected is an advisory event raised by the digest job when a customer's
// open orders are worth consolidating now.
type OpportunityDetected struct {
	CustomerID       kernel.UUID `json:"customer_id"`
	OrderCount       int         `json:"order_count"`
	ArrivedItems     int         `json:"arrived_items"`
	EstimatedSavings string      `json:"estimated_savings"`
	Timestamp        time.Time   `json:"occurred_at"`
}

// EventName returns "consolidation.opportunity_detected".
func (e OpportunityDetected) EventName() string { return "consolidation.opportunity_detected" }

// OccurredAt returns when the event was raised.
func (e OpportunityDetected) OccurredAt() time.Time { return e.Timestamp }

// AggregateID returns the customer, used as the partitioning key.
func (e OpportunityDetected) AggregateID() kernel.UUID { return e.CustomerID }
