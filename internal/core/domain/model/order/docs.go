// Package order provides the Order aggregate and its fulfillment vocabulary.
//
// The package includes:
//   - Status: the order-level shipping status and its forward ordering
//   - IsAbnormal / AvailableTransitions: the transition validator
//   - PaymentStatus: the payment side of the order, used to decide scan eligibility
//   - ArrivalState / ConsolidationState: per-line-item sub-states
//   - LineItem: a purchased product with its arrival and consolidation state
//   - Order: the aggregate root owning its line items
//
// Key business rules:
//   - Shipping status moves pending -> preparing -> processing -> shipped -> completed;
//     out_of_stock is a side channel reachable from and returnable to any state
//   - Backward moves are allowed but flagged abnormal; they are never rejected
//   - completed_at is stamped once, the first time the order becomes completed
//   - A line item is consolidated at most once and only while it has arrived
package order
