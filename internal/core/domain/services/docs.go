// Package services provides domain services that work across several aggregates
// of the fulfillment engine.
//
// The package includes:
//   - OpportunityScorer: turns open orders into ranked consolidation opportunities
//     and a recommendation for the whole candidate set
//   - Consolidator: applies a merge plan to locked orders and builds the
//     resulting ConsolidatedOrder
//
// Both services are pure: they read and mutate only the aggregates handed to them
// and never touch storage, so they can be exercised without a database.
package services
