// Package history provides the append-only status history ledger.
//
// A StatusChange is written once per shipping-status change and never updated.
// Abnormality is computed by order.IsAbnormal at write time and stored with the row,
// so later changes to the classification rules never rewrite the audit trail.
//
// Operators are stored as identifiers only; display names are resolved when the
// history is read (see Entry).
package history
