package http

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}

func toOptionalUUID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := toUUID(name, *id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func toUUIDs(name string, ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := toUUID(name, id)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

func fromUUIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toAddressFields(a servers.Address) kernel.AddressFields {
	return kernel.AddressFields{
		Recipient:  a.Recipient,
		Phone:      deref(a.Phone),
		Line1:      a.Line1,
		Line2:      deref(a.Line2),
		City:       deref(a.City),
		PostalCode: deref(a.PostalCode),
		Country:    a.Country,
	}
}

func fromAddress(a kernel.Address) servers.Address {
	f := a.Fields()
	return servers.Address{
		Recipient:  f.Recipient,
		Phone:      optional(f.Phone),
		Line1:      f.Line1,
		Line2:      optional(f.Line2),
		City:       optional(f.City),
		PostalCode: optional(f.PostalCode),
		Country:    f.Country,
	}
}

func fromTransitions(r queries.GetAvailableTransitionsQueryResponse) servers.AvailableTransitions {
	transitions := make([]servers.Transition, 0, len(r.Transitions))
	for _, t := range r.Transitions {
		transitions = append(transitions, servers.Transition{
			Status:     t.Status.String(),
			Label:      t.Label,
			IsAbnormal: t.IsAbnormal,
		})
	}
	return servers.AvailableTransitions{
		OrderId:      r.OrderID.Bytes(),
		Current:      r.Current.String(),
		CurrentLabel: r.CurrentLabel,
		Transitions:  transitions,
	}
}

func fromHistory(entries []history.Entry) []servers.HistoryEntry {
	out := make([]servers.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		entry := servers.HistoryEntry{
			Id:           e.ID().Bytes(),
			OrderId:      e.OrderID().Bytes(),
			From:         e.From().String(),
			FromLabel:    e.FromLabel,
			To:           e.To().String(),
			ToLabel:      e.ToLabel,
			Reason:       e.Reason(),
			OperatorName: e.OperatorName,
			IsAbnormal:   e.IsAbnormal(),
			CreatedAt:    e.OccurredAt(),
		}
		if op := e.OperatorID(); op != nil {
			id := op.Bytes()
			entry.OperatorId = &id
		}
		out = append(out, entry)
	}
	return out
}

func fromItems(items []consolidation.ItemSnapshot) []servers.ConsolidationItem {
	out := make([]servers.ConsolidationItem, 0, len(items))
	for _, item := range items {
		out = append(out, servers.ConsolidationItem{
			LineItemId: item.LineItemID.Bytes(),
			OrderId:    item.OrderID.Bytes(),
			ProductRef: item.ProductRef,
			SellerRef:  item.SellerRef,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.Amount().StringFixed(2),
			LineTotal:  item.LineTotal.Amount().StringFixed(2),
		})
	}
	return out
}

func fromScan(r consolidation.ScanResult) servers.OpportunityScan {
	opportunities := make([]servers.Opportunity, 0, len(r.Opportunities))
	for _, o := range r.Opportunities {
		opportunities = append(opportunities, servers.Opportunity{
			OrderId:      o.OrderID.Bytes(),
			CreatedAt:    o.CreatedAt,
			Items:        fromItems(o.Items),
			ArrivedTotal: o.ArrivedTotal.Amount().StringFixed(2),
			Currency:     o.ArrivedTotal.Currency(),
			Destination:  fromAddress(o.Destination),
			Sellers:      append([]string{}, o.Sellers...),
			Score:        o.Score,
		})
	}
	return servers.OpportunityScan{
		CustomerId:    r.CustomerID.Bytes(),
		Opportunities: opportunities,
		Recommendation: servers.Recommendation{
			Action:           string(r.Recommendation.Action),
			OrderCount:       r.Recommendation.OrderCount,
			ArrivedItems:     r.Recommendation.ArrivedItems,
			EstimatedSavings: r.Recommendation.EstimatedSavings.StringFixed(2),
		},
	}
}

func fromConsolidatedOrder(co *consolidation.ConsolidatedOrder) servers.ConsolidatedOrder {
	return servers.ConsolidatedOrder{
		Id:               co.ID().Bytes(),
		CustomerId:       co.CustomerID().Bytes(),
		OriginalOrderIds: fromUUIDs(co.OriginalOrderIDs()),
		Items:            fromItems(co.Items()),
		Total:            co.Total().Amount().StringFixed(2),
		Currency:         co.Total().Currency(),
		Destination:      fromAddress(co.Destination()),
		Status:           co.Status().String(),
		CreatedAt:        co.CreatedAt(),
		UpdatedAt:        co.UpdatedAt(),
	}
}
