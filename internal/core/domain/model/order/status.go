package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the order-level shipping status.
//
// Forward order:
//
//	pending(1) ──> preparing(2) ──> processing(3) ──> shipped(4) ──> completed(5)
//
//	out_of_stock(0) is reachable from, and returnable to, any state.
//
// The zero value is Unknown and fails Validate.
type Status string

const (
	Unknown    Status = ""
	OutOfStock Status = "out_of_stock"
	Pending    Status = "pending"
	Preparing  Status = "preparing"
	Processing Status = "processing"
	Shipped    Status = "shipped"
	Completed  Status = "completed"
)

// statusTable is the single source of truth for the vocabulary: rank in the
// forward sequence and human-readable label.
var statusTable = map[Status]struct {
	rank  int
	label string
}{
	OutOfStock: {0, "Out of stock"},
	Pending:    {1, "Pending"},
	Preparing:  {2, "Preparing"},
	Processing: {3, "Processing"},
	Shipped:    {4, "Shipped"},
	Completed:  {5, "Completed"},
}

// Statuses returns the vocabulary ordered by rank.
func Statuses() []Status {
	return []Status{OutOfStock, Pending, Preparing, Processing, Shipped, Completed}
}

// ParseStatus converts a stored or transported value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate returns an error for values outside the vocabulary.
func (s Status) Validate() error {
	if _, ok := statusTable[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipping status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// Rank returns the position in the forward sequence, or -1 for unknown values.
func (s Status) Rank() int {
	if entry, ok := statusTable[s]; ok {
		return entry.rank
	}
	return -1
}

// Label returns the display label used by history reads.
func (s Status) Label() string {
	if entry, ok := statusTable[s]; ok {
		return entry.label
	}
	return "Unknown"
}

// String returns the wire name of the status.
func (s Status) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}
