package history

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// SystemOperator is the display name used when a change was not made by a person.
const SystemOperator = "system"

// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not created
// through NewStatusChange or RestoreStatusChange.
var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange constructor")

// StatusChange is one immutable row of the ledger.
type StatusChange struct {
	kernel.EventRecorder

	id         kernel.UUID
	orderID    kernel.UUID
	from       order.Status
	to         order.Status
	reason     string
	operatorID *kernel.UUID
	isAbnormal bool
	occurredAt time.Time

	isConstructed bool
}

// NewStatusChange records a change from one status to another. A nil operator means
// the change was made by the system. Abnormal changes raise AbnormalTransitionDetected.
func NewStatusChange(
	orderID kernel.UUID,
	from order.Status,
	to order.Status,
	reason string,
	operatorID *kernel.UUID,
	occurredAt time.Time,
) (*StatusChange, error) {
	change, err := RestoreStatusChange(
		kernel.NewUUID(), orderID, from, to, reason, operatorID, order.IsAbnormal(from, to), occurredAt)
	if err != nil {
		return nil, err
	}

	if change.isAbnormal {
		change.Record(AbnormalTransitionDetected{
			RecordID:   change.id,
			OrderID:    orderID,
			From:       from,
			To:         to,
			Reason:     change.reason,
			OperatorID: operatorID,
			Timestamp:  occurredAt,
		})
	}
	return change, nil
}

// RestoreStatusChange rebuilds a ledger row from storage. The stored abnormality flag
// is kept as written.
func RestoreStatusChange(
	id kernel.UUID,
	orderID kernel.UUID,
	from order.Status,
	to order.Status,
	reason string,
	operatorID *kernel.UUID,
	isAbnormal bool,
	occurredAt time.Time,
) (*StatusChange, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), from.Validate(), to.Validate()); err != nil {
		return nil, err
	}
	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("operator id", err)
		}
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurred at")
	}

	return &StatusChange{
		id:            id,
		orderID:       orderID,
		from:          from,
		to:            to,
		reason:        strings.TrimSpace(reason),
		operatorID:    operatorID,
		isAbnormal:    isAbnormal,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the StatusChange instance was properly constructed.
func (c *StatusChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}

// ID returns the ledger record identifier.
func (c *StatusChange) ID() kernel.UUID { return c.id }

// OrderID returns the order the change belongs to.
func (c *StatusChange) OrderID() kernel.UUID { return c.orderID }

// From returns the status before the change.
func (c *StatusChange) From() order.Status { return c.from }

// To returns the status after the change.
func (c *StatusChange) To() order.Status { return c.to }

// Reason returns the recorded reason, possibly empty.
func (c *StatusChange) Reason() string { return c.reason }

// OperatorID returns the operator, or nil when the system made the change.
func (c *StatusChange) OperatorID() *kernel.UUID { return c.operatorID }

// IsAbnormal reports the classification frozen at write time.
func (c *StatusChange) IsAbnormal() bool { return c.isAbnormal }

// OccurredAt returns when the change was recorded.
func (c *StatusChange) OccurredAt() time.Time { return c.occurredAt }

// IsSystem reports whether no operator is attached to the change.
func (c *StatusChange) IsSystem() bool { return c.operatorID == nil }
