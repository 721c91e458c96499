package consolidation

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle of a consolidated order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var allowedStatusChanges = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusCancelled},
	StatusCancelled:  {},
}

// ParseStatus converts a stored or transported value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate returns an error for values outside the vocabulary.
func (s Status) Validate() error {
	if _, ok := allowedStatusChanges[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("consolidation status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// CanChangeTo reports whether a consolidated order in s may move to next.
func (s Status) CanChangeTo(next Status) bool {
	for _, allowed := range allowedStatusChanges[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// String returns the wire name of the status.
func (s Status) String() string { return string(s) }
