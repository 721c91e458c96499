package consolidation

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Opportunity is a computed candidate: one open order and its arrived, unconsolidated
// items. It is recomputed on every scan and never stored.
type Opportunity struct {
	OrderID      kernel.UUID
	CreatedAt    time.Time
	Items        []ItemSnapshot
	ArrivedTotal kernel.Money
	Destination  kernel.Address
	Sellers      []string
	Score        int
}

// Action is the advice given for a customer's whole candidate set.
type Action string

const (
	ActionNone           Action = "none"
	ActionWait           Action = "wait"
	ActionConsider       Action = "consider"
	ActionConsolidateNow Action = "consolidate_now"
)

// Recommendation is the scan verdict. EstimatedSavings is zero unless Action is
// ActionConsolidateNow.
type Recommendation struct {
	Action           Action
	OrderCount       int
	ArrivedItems     int
	EstimatedSavings decimal.Decimal
}

// ScanResult bundles the ranked opportunities with the recommendation.
type ScanResult struct {
	CustomerID     kernel.UUID
	Opportunities  []Opportunity
	Recommendation Recommendation
}

// Plan builds the merge plan that consolidates every ranked opportunity.
func (r ScanResult) Plan() (MergePlan, error) {
	orders := make([]PlanOrder, 0, len(r.Opportunities))
	for _, o := range r.Opportunities {
		ids := make([]kernel.UUID, 0, len(o.Items))
		for _, item := range o.Items {
			ids = append(ids, item.LineItemID)
		}
		orders = append(orders, PlanOrder{OrderID: o.OrderID, ItemIDs: ids})
	}
	return NewMergePlan(r.CustomerID, orders)
}
