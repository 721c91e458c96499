// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate and its line
// items, handling the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The destination is a JSON snapshot taken at checkout.
type OrderDTO struct {
	ID             uuid.UUID                      `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID     uuid.UUID                      `gorm:"column:customer_id;type:uuid;not null;index"`
	PaymentStatus  string                         `gorm:"column:payment_status;type:varchar(16);not null"`
	ShippingStatus string                         `gorm:"column:shipping_status;type:varchar(16);not null"`
	Currency       string                         `gorm:"column:currency;type:varchar(3);not null"`
	TotalAmount    decimal.Decimal                `gorm:"column:total_amount;type:numeric(14,2);not null"`
	Destination    datatypes.JSONType[AddressDTO] `gorm:"column:destination;type:jsonb;not null"`
	CreatedAt      time.Time                      `gorm:"column:created_at;not null"`
	CompletedAt    *time.Time                     `gorm:"column:completed_at"`
	Items          []LineItemDTO                  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one purchased product. Position keeps checkout order stable.
type LineItemDTO struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID            uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	Position           int             `gorm:"column:position;not null"`
	ProductRef         string          `gorm:"column:product_ref;type:varchar(128);not null"`
	SellerRef          string          `gorm:"column:seller_ref;type:varchar(128);not null"`
	Quantity           int             `gorm:"column:quantity;not null"`
	UnitPrice          decimal.Decimal `gorm:"column:unit_price;type:numeric(14,2);not null"`
	Currency           string          `gorm:"column:currency;type:varchar(3);not null"`
	ArrivalState       string          `gorm:"column:arrival_state;type:varchar(16);not null"`
	ConsolidationState string          `gorm:"column:consolidation_state;type:varchar(16);not null"`
	ConsolidatedAt     *time.Time      `gorm:"column:consolidated_at"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// AddressDTO is the JSON shape of a destination snapshot. It is shared with the
// consolidated order table.
type AddressDTO struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

// AddressFromDomain converts a destination into its JSON shape.
func AddressFromDomain(a kernel.Address) AddressDTO {
	f := a.Fields()
	return AddressDTO{
		Recipient:  f.Recipient,
		Phone:      f.Phone,
		Line1:      f.Line1,
		Line2:      f.Line2,
		City:       f.City,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

// ToDomain rebuilds the destination.
func (a AddressDTO) ToDomain() (kernel.Address, error) {
	return kernel.NewAddress(kernel.AddressFields{
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	})
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, lineItemFromDomain(item, i))
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		CustomerID:     o.CustomerID().Bytes(),
		PaymentStatus:  string(o.PaymentStatus()),
		ShippingStatus: string(o.ShippingStatus()),
		Currency:       o.Currency(),
		TotalAmount:    o.TotalAmount().Amount(),
		Destination:    datatypes.NewJSONType(AddressFromDomain(o.Destination())),
		CreatedAt:      o.CreatedAt(),
		CompletedAt:    o.CompletedAt(),
		Items:          items,
	}
}

func lineItemFromDomain(item *order.LineItem, position int) LineItemDTO {
	return LineItemDTO{
		ID:                 item.ID().Bytes(),
		OrderID:            item.OrderID().Bytes(),
		Position:           position,
		ProductRef:         item.ProductRef(),
		SellerRef:          item.SellerRef(),
		Quantity:           item.Quantity(),
		UnitPrice:          item.UnitPrice().Amount(),
		Currency:           item.UnitPrice().Currency(),
		ArrivalState:       string(item.Arrival()),
		ConsolidationState: string(item.Consolidation()),
		ConsolidatedAt:     item.ConsolidatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate. Items must be loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	payment, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	shipping, err := order.ParseStatus(dto.ShippingStatus)
	if err != nil {
		return nil, err
	}
	destination, err := dto.Destination.Data().ToDomain()
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, payment, shipping, destination, dto.CreatedAt, dto.CompletedAt, items)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return nil, err
	}
	arrival, err := order.ParseArrivalState(dto.ArrivalState)
	if err != nil {
		return nil, err
	}
	consolidationState, err := order.ParseConsolidationState(dto.ConsolidationState)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(
		id,
		orderID,
		dto.ProductRef,
		dto.SellerRef,
		dto.Quantity,
		price,
		arrival,
		consolidationState,
		dto.ConsolidatedAt,
	)
}
