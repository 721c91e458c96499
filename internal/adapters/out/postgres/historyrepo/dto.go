// Package historyrepo persists the append-only order status ledger.
package historyrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO is one ledger row. A NULL operator means the system made the change.
type StatusChangeDTO struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	FromStatus string     `gorm:"column:from_status;type:varchar(16);not null"`
	ToStatus   string     `gorm:"column:to_status;type:varchar(16);not null"`
	Reason     string     `gorm:"column:reason;type:text;not null"`
	OperatorID *uuid.UUID `gorm:"column:operator_id;type:uuid"`
	IsAbnormal bool       `gorm:"column:is_abnormal;not null"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"`
}

// TableName specifies the ledger table.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(change *history.StatusChange) StatusChangeDTO {
	var operatorID *uuid.UUID
	if id := change.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	return StatusChangeDTO{
		ID:         change.ID().Bytes(),
		OrderID:    change.OrderID().Bytes(),
		FromStatus: string(change.From()),
		ToStatus:   string(change.To()),
		Reason:     change.Reason(),
		OperatorID: operatorID,
		IsAbnormal: change.IsAbnormal(),
		CreatedAt:  change.OccurredAt(),
	}
}

func toDomain(dto StatusChangeDTO) (*history.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var operatorID *kernel.UUID
	if dto.OperatorID != nil {
		opID, opErr := kernel.UUIDFromBytes((*dto.OperatorID)[:])
		if opErr != nil {
			return nil, opErr
		}
		operatorID = &opID
	}

	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return nil, err
	}
	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return nil, err
	}

	return history.RestoreStatusChange(id, orderID, from, to, dto.Reason, operatorID, dto.IsAbnormal, dto.CreatedAt)
}
