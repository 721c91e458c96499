// Package servers holds the HTTP contract of the fulfillment API: wire types,
// the server interface, parameter binding and the embedded OpenAPI document.
// Types mirror the schemas in openapi.yaml one to one.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CreatedResource defines model for CreatedResource.
type CreatedResource struct {
	Id openapi_types.UUID `json:"id"`
}

// Address defines model for Address.
type Address struct {
	Recipient  string  `json:"recipient"`
	Phone      *string `json:"phone,omitempty"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    string  `json:"country"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Id            *openapi_types.UUID `json:"id,omitempty"`
	CustomerId    openapi_types.UUID  `json:"customer_id"`
	PaymentStatus string              `json:"payment_status"`
	Currency      string              `json:"currency"`
	Destination   Address             `json:"destination"`
	Items         []NewOrderItem      `json:"items"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	Id         *openapi_types.UUID `json:"id,omitempty"`
	ProductRef string              `json:"product_ref"`
	SellerRef  string              `json:"seller_ref"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  string              `json:"unit_price"`
}

// ItemArrival defines model for ItemArrival.
type ItemArrival struct {
	State string `json:"state"`
}

// Transition defines model for Transition.
type Transition struct {
	Status     string `json:"status"`
	Label      string `json:"label"`
	IsAbnormal bool   `json:"is_abnormal"`
}

// AvailableTransitions defines model for AvailableTransitions.
type AvailableTransitions struct {
	OrderId      openapi_types.UUID `json:"order_id"`
	Current      string             `json:"current"`
	CurrentLabel string             `json:"current_label"`
	Transitions  []Transition       `json:"transitions"`
}

// StatusChangeRequest defines model for StatusChangeRequest.
type StatusChangeRequest struct {
	Status     string              `json:"status"`
	Reason     *string             `json:"reason,omitempty"`
	OperatorId *openapi_types.UUID `json:"operator_id,omitempty"`
}

// StatusChangeResult defines model for StatusChangeResult.
type StatusChangeResult struct {
	RecordId   openapi_types.UUID `json:"record_id"`
	OrderId    openapi_types.UUID `json:"order_id"`
	From       string             `json:"from"`
	To         string             `json:"to"`
	IsAbnormal bool               `json:"is_abnormal"`
}

// BatchStatusChangeRequest defines model for BatchStatusChangeRequest.
type BatchStatusChangeRequest struct {
	OrderIds   []openapi_types.UUID `json:"order_ids"`
	Status     string               `json:"status"`
	Reason     *string              `json:"reason,omitempty"`
	OperatorId *openapi_types.UUID  `json:"operator_id,omitempty"`
}

// BatchStatusChangeResult defines model for BatchStatusChangeResult.
type BatchStatusChangeResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Id           openapi_types.UUID  `json:"id"`
	OrderId      openapi_types.UUID  `json:"order_id"`
	From         string              `json:"from"`
	FromLabel    string              `json:"from_label"`
	To           string              `json:"to"`
	ToLabel      string              `json:"to_label"`
	Reason       string              `json:"reason"`
	OperatorId   *openapi_types.UUID `json:"operator_id,omitempty"`
	OperatorName string              `json:"operator_name"`
	IsAbnormal   bool                `json:"is_abnormal"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ConsolidationItem defines model for ConsolidationItem.
type ConsolidationItem struct {
	LineItemId openapi_types.UUID `json:"line_item_id"`
	OrderId    openapi_types.UUID `json:"order_id"`
	ProductRef string             `json:"product_ref"`
	SellerRef  string             `json:"seller_ref"`
	Quantity   int                `json:"quantity"`
	UnitPrice  string             `json:"unit_price"`
	LineTotal  string             `json:"line_total"`
}

// Opportunity defines model for Opportunity.
type Opportunity struct {
	OrderId      openapi_types.UUID  `json:"order_id"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []ConsolidationItem `json:"items"`
	ArrivedTotal string              `json:"arrived_total"`
	Currency     string              `json:"currency"`
	Destination  Address             `json:"destination"`
	Sellers      []string            `json:"sellers"`
	Score        int                 `json:"score"`
}

// Recommendation defines model for Recommendation.
type Recommendation struct {
	Action           string `json:"action"`
	OrderCount       int    `json:"order_count"`
	ArrivedItems     int    `json:"arrived_items"`
	EstimatedSavings string `json:"estimated_savings"`
}

// OpportunityScan defines model for OpportunityScan.
type OpportunityScan struct {
	CustomerId     openapi_types.UUID `json:"customer_id"`
	Opportunities  []Opportunity      `json:"opportunities"`
	Recommendation Recommendation     `json:"recommendation"`
}

// MergePlanOrder defines model for MergePlanOrder.
type MergePlanOrder struct {
	OrderId openapi_types.UUID   `json:"order_id"`
	ItemIds []openapi_types.UUID `json:"item_ids"`
}

// MergePlan defines model for MergePlan.
type MergePlan struct {
	CustomerId openapi_types.UUID `json:"customer_id"`
	Orders     []MergePlanOrder   `json:"orders"`
}

// ConsolidatedOrder defines model for ConsolidatedOrder.
type ConsolidatedOrder struct {
	Id               openapi_types.UUID   `json:"id"`
	CustomerId       openapi_types.UUID   `json:"customer_id"`
	OriginalOrderIds []openapi_types.UUID `json:"original_order_ids"`
	Items            []ConsolidationItem  `json:"items"`
	Total            string               `json:"total"`
	Currency         string               `json:"currency"`
	Destination      Address              `json:"destination"`
	Status           string               `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// ConsolidationStatusChange defines model for ConsolidationStatusChange.
type ConsolidationStatusChange struct {
	Status string `json:"status"`
}

// GetOrderHistoryParams defines parameters for GetOrderHistory.
type GetOrderHistoryParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ScanOpportunitiesParams defines parameters for ScanOpportunities.
type ScanOpportunitiesParams struct {
	From *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To   *time.Time `form:"to,omitempty" json:"to,omitempty"`
}
