package consolidation

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ItemSnapshot is a frozen copy of a line item taken when it was consolidated.
// It is not a live reference; later changes to the line item do not affect it.
type ItemSnapshot struct {
	LineItemID kernel.UUID
	OrderID    kernel.UUID
	ProductRef string
	SellerRef  string
	Quantity   int
	UnitPrice  kernel.Money
	LineTotal  kernel.Money
}

// SnapshotOf copies a line item.
func SnapshotOf(item *order.LineItem) ItemSnapshot {
	return ItemSnapshot{
		LineItemID: item.ID(),
		OrderID:    item.OrderID(),
		ProductRef: item.ProductRef(),
		SellerRef:  item.SellerRef(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice(),
		LineTotal:  item.LineTotal(),
	}
}
