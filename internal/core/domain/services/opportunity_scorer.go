package services

import (
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	pointsPerItem       = 10
	amountStep          = 1000
	maxAmountPoints     = 50
	pointsPerDay        = 2
	maxAgePoints        = 30
	singleSellerBonus   = 20
	consolidateNowOrder = 3
	consolidateNowItems = 5
)

// SellerResolver returns the seller owning a line item. Scans use it to attribute
// items to sellers through the catalog; nil falls back to the stored seller reference.
type SellerResolver func(item *order.LineItem) string

// OpportunityScorer ranks a customer's open orders for consolidation.
//
// Score of one opportunity:
//
//	10 * arrived items
//	+ min(floor(arrived total / 1000), 50)
//	+ min(floor(days since created * 2), 30)
//	+ 20 when every arrived item comes from the same seller
//
// Opportunities are sorted by score descending, ties by order id ascending.
type OpportunityScorer struct {
	flatShippingCost decimal.Decimal
}

// NewOpportunityScorer creates a scorer. flatShippingCost prices one saved shipment
// in the consolidate_now recommendation.
func NewOpportunityScorer(flatShippingCost decimal.Decimal) (OpportunityScorer, error) {
	if flatShippingCost.IsNegative() {
		return OpportunityScorer{}, errs.NewValueIsOutOfRangeError(
			"flat shipping cost", flatShippingCost.String(), 0, "unbounded")
	}
	return OpportunityScorer{flatShippingCost: flatShippingCost}, nil
}

// Scan builds, scores and ranks opportunities from orders, then recommends an action.
// Orders that are not open for consolidation or have no arrived, unconsolidated items
// are dropped. Scan never mutates the orders.
func (s OpportunityScorer) Scan(
	customerID kernel.UUID,
	orders []*order.Order,
	sellerOf SellerResolver,
	now time.Time,
) (consolidation.ScanResult, error) {
	opportunities := make([]consolidation.Opportunity, 0, len(orders))
	for _, o := range orders {
		if !o.IsOpenForConsolidation() {
			continue
		}
		opp, ok, err := buildOpportunity(o, sellerOf)
		if err != nil {
			return consolidation.ScanResult{}, err
		}
		if !ok {
			continue
		}
		opp.Score = s.Score(opp, now)
		opportunities = append(opportunities, opp)
	}

	slices.SortStableFunc(opportunities, func(a, b consolidation.Opportunity) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.OrderID.Compare(b.OrderID)
	})

	return consolidation.ScanResult{
		CustomerID:     customerID,
		Opportunities:  opportunities,
		Recommendation: s.Recommend(opportunities),
	}, nil
}

// Score computes the priority of one opportunity at the given moment.
func (s OpportunityScorer) Score(opp consolidation.Opportunity, now time.Time) int {
	score := pointsPerItem * len(opp.Items)

	amountPoints := opp.ArrivedTotal.Amount().Div(decimal.NewFromInt(amountStep)).Floor().IntPart()
	score += int(min(max(amountPoints, 0), maxAmountPoints))

	days := now.Sub(opp.CreatedAt).Hours() / 24
	agePoints := decimal.NewFromFloat(days * pointsPerDay).Floor().IntPart()
	score += int(min(max(agePoints, 0), maxAgePoints))

	if len(opp.Sellers) == 1 {
		score += singleSellerBonus
	}
	return score
}

// Recommend evaluates the whole candidate set.
func (s OpportunityScorer) Recommend(opportunities []consolidation.Opportunity) consolidation.Recommendation {
	rec := consolidation.Recommendation{
		Action:           consolidation.ActionNone,
		OrderCount:       len(opportunities),
		EstimatedSavings: decimal.Zero,
	}
	for _, opp := range opportunities {
		rec.ArrivedItems += len(opp.Items)
	}

	switch {
	case rec.OrderCount == 0:
		rec.Action = consolidation.ActionNone
	case rec.ArrivedItems < 2:
		rec.Action = consolidation.ActionWait
	case rec.OrderCount >= consolidateNowOrder && rec.ArrivedItems >= consolidateNowItems:
		rec.Action = consolidation.ActionConsolidateNow
		rec.EstimatedSavings = s.flatShippingCost.Mul(decimal.NewFromInt(int64(rec.OrderCount - 1)))
	default:
		rec.Action = consolidation.ActionConsider
	}
	return rec
}

func buildOpportunity(o *order.Order, sellerOf SellerResolver) (consolidation.Opportunity, bool, error) {
	items := o.ArrivedUnconsolidatedItems()
	if len(items) == 0 {
		return consolidation.Opportunity{}, false, nil
	}

	total, err := kernel.Zero(o.Currency())
	if err != nil {
		return consolidation.Opportunity{}, false, err
	}

	snapshots := make([]consolidation.ItemSnapshot, 0, len(items))
	sellers := make([]string, 0, 1)
	for _, item := range items {
		snap := consolidation.SnapshotOf(item)
		if sellerOf != nil {
			if seller := sellerOf(item); seller != "" {
				snap.SellerRef = seller
			}
		}
		if !slices.Contains(sellers, snap.SellerRef) {
			sellers = append(sellers, snap.SellerRef)
		}
		if total, err = total.Add(item.LineTotal()); err != nil {
			return consolidation.Opportunity{}, false, err
		}
		snapshots = append(snapshots, snap)
	}
	slices.Sort(sellers)

	return consolidation.Opportunity{
		OrderID:      o.ID(),
		CreatedAt:    o.CreatedAt(),
		Items:        snapshots,
		ArrivedTotal: total,
		Destination:  o.Destination(),
		Sellers:      sellers,
	}, true, nil
}
