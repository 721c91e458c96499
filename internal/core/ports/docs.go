// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the unit of work, and the external collaborators
// (catalog, operator directory, event sink).
//
// Implementations live under internal/adapters. The core never imports them.
package ports
