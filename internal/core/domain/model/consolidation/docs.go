// Package consolidation provides the ConsolidatedOrder aggregate and the value types
// around it.
//
// The package includes:
//   - MergePlan: the explicit, caller-supplied input of a consolidation
//   - ItemSnapshot: a frozen copy of a line item taken at consolidation time
//   - ConsolidatedOrder: the synthetic shipment that subsumes several orders
//   - Status: the consolidation lifecycle (pending, processing, completed, cancelled)
//   - Opportunity / Recommendation: the computed, never-persisted scan results
//
// Key business rules:
//   - A plan names at least two distinct orders, each with at least one item,
//     and no line item appears twice
//   - The destination is copied from the first order of the plan
//   - A consolidated order is immutable except for its status and destination
//
// Example:
//
//	plan, err := consolidation.NewMergePlan(customerID, []consolidation.PlanOrder{
//	    {OrderID: first.ID(), ItemIDs: []kernel.UUID{a.ID(), b.ID()}},
//	    {OrderID: second.ID(), ItemIDs: []kernel.UUID{c.ID()}},
//	})
package consolidation
