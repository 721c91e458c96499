// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier for every aggregate and entity
//   - Money: exact decimal amount in a single currency
//   - Address: immutable shipping destination snapshot
//
// All values are immutable and safe for concurrent use. Zero values are invalid
// and fail Validate; build them through their constructors.
package kernel
