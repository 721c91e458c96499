// Package consolidationrepo persists consolidated orders. The item list, the subsumed
// order identifiers and the destination are frozen JSON snapshots.
package consolidationrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ConsolidatedOrderDTO represents one consolidated order row.
type ConsolidatedOrderDTO struct {
	ID               uuid.UUID                                `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID       uuid.UUID                                `gorm:"column:customer_id;type:uuid;not null;index"`
	OriginalOrderIDs datatypes.JSONSlice[uuid.UUID]           `gorm:"column:original_order_ids;type:jsonb;not null"`
	Items            datatypes.JSONSlice[ItemSnapshotDTO]     `gorm:"column:items;type:jsonb;not null"`
	TotalAmount      decimal.Decimal                          `gorm:"column:total_amount;type:numeric(14,2);not null"`
	Currency         string                                   `gorm:"column:currency;type:varchar(3);not null"`
	Destination      datatypes.JSONType[orderrepo.AddressDTO] `gorm:"column:destination;type:jsonb;not null"`
	Status           string                                   `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt        time.Time                                `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time                                `gorm:"column:updated_at;not null"`
}

// TableName specifies the consolidated order table.
func (ConsolidatedOrderDTO) TableName() string {
	return "consolidated_orders"
}

// ItemSnapshotDTO is the JSON shape of one consolidated line item.
type ItemSnapshotDTO struct {
	LineItemID uuid.UUID       `json:"line_item_id"`
	OrderID    uuid.UUID       `json:"order_id"`
	ProductRef string          `json:"product_ref"`
	SellerRef  string          `json:"seller_ref"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
	Currency   string          `json:"currency"`
}

func fromDomain(co *consolidation.ConsolidatedOrder) ConsolidatedOrderDTO {
	originals := make([]uuid.UUID, 0, len(co.OriginalOrderIDs()))
	for _, id := range co.OriginalOrderIDs() {
		originals = append(originals, id.Bytes())
	}

	items := make([]ItemSnapshotDTO, 0, len(co.Items()))
	for _, item := range co.Items() {
		items = append(items, ItemSnapshotDTO{
			LineItemID: item.LineItemID.Bytes(),
			OrderID:    item.OrderID.Bytes(),
			ProductRef: item.ProductRef,
			SellerRef:  item.SellerRef,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.Amount(),
			LineTotal:  item.LineTotal.Amount(),
			Currency:   item.LineTotal.Currency(),
		})
	}

	return ConsolidatedOrderDTO{
		ID:               co.ID().Bytes(),
		CustomerID:       co.CustomerID().Bytes(),
		OriginalOrderIDs: datatypes.NewJSONSlice(originals),
		Items:            datatypes.NewJSONSlice(items),
		TotalAmount:      co.Total().Amount(),
		Currency:         co.Total().Currency(),
		Destination:      datatypes.NewJSONType(orderrepo.AddressFromDomain(co.Destination())),
		Status:           string(co.Status()),
		CreatedAt:        co.CreatedAt(),
		UpdatedAt:        co.UpdatedAt(),
	}
}

func toDomain(dto ConsolidatedOrderDTO) (*consolidation.ConsolidatedOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	originals := make([]kernel.UUID, 0, len(dto.OriginalOrderIDs))
	for _, raw := range dto.OriginalOrderIDs {
		oid, oidErr := kernel.UUIDFromBytes(raw[:])
		if oidErr != nil {
			return nil, oidErr
		}
		originals = append(originals, oid)
	}

	items := make([]consolidation.ItemSnapshot, 0, len(dto.Items))
	for _, raw := range dto.Items {
		item, itemErr := snapshotToDomain(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	destination, err := dto.Destination.Data().ToDomain()
	if err != nil {
		return nil, err
	}
	status, err := consolidation.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return consolidation.RestoreConsolidatedOrder(
		id, customerID, originals, items, destination, status, dto.CreatedAt, dto.UpdatedAt)
}

func snapshotToDomain(dto ItemSnapshotDTO) (consolidation.ItemSnapshot, error) {
	lineItemID, err := kernel.UUIDFromBytes(dto.LineItemID[:])
	if err != nil {
		return consolidation.ItemSnapshot{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return consolidation.ItemSnapshot{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return consolidation.ItemSnapshot{}, err
	}
	lineTotal, err := kernel.NewMoney(dto.LineTotal, dto.Currency)
	if err != nil {
		return consolidation.ItemSnapshot{}, err
	}

	return consolidation.ItemSnapshot{
		LineItemID: lineItemID,
		OrderID:    orderID,
		ProductRef: dto.ProductRef,
		SellerRef:  dto.SellerRef,
		Quantity:   dto.Quantity,
		UnitPrice:  unitPrice,
		LineTotal:  lineTotal,
	}, nil
}
