// Package queries contains read-only operations of the fulfillment engine.
//
// Handlers read through non-transactional repositories; stale reads are acceptable
// because every result here is advisory. None of them mutates state.
package queries
