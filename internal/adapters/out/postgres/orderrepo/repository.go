package orderrepo

import (
	"context"
	"errors"
	"slices"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var forUpdate = clause.Locking{Strength: "UPDATE"}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add order", err)
	}

	return nil
}

// Update writes the mutable parts of an order: shipping status, completion time and
// the line items' arrival and consolidation sub-states.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"shipping_status": dto.ShippingStatus,
			"completed_at":    dto.CompletedAt,
		})
	if result.Error != nil {
		return pgerr.Wrap("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, item := range dto.Items {
		result = db.Model(&LineItemDTO{}).
			Where("id = ? AND order_id = ?", item.ID, dto.ID).
			Updates(map[string]any{
				"arrival_state":       item.ArrivalState,
				"consolidation_state": item.ConsolidationState,
				"consolidated_at":     item.ConsolidatedAt,
			})
		if result.Error != nil {
			return pgerr.Wrap("update line item", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("line item", item.ID.String())
		}
	}

	return nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Wrap("get order", err)
	}

	return toDomain(dto)
}

// GetForUpdate locks the orders and then their line items, both in identifier order,
// and returns the orders in the order they were asked for.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, ids ...kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, id.Bytes())
	}
	slices.SortFunc(keys, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	keys = slices.Compact(keys)

	db := r.db.WithContext(ctx)

	var dtos []OrderDTO
	if err := db.Clauses(forUpdate).
		Where("id IN ?", keys).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("lock orders", err)
	}

	var items []LineItemDTO
	if err := db.Clauses(forUpdate).
		Where("order_id IN ?", keys).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, pgerr.Wrap("lock line items", err)
	}

	byOrder := make(map[uuid.UUID][]LineItemDTO, len(dtos))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	loaded := make(map[uuid.UUID]*order.Order, len(dtos))
	for _, dto := range dtos {
		dto.Items = byOrder[dto.ID]
		slices.SortStableFunc(dto.Items, func(a, b LineItemDTO) int { return a.Position - b.Position })
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loaded[dto.ID] = o
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, ok := loaded[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// FindOpenByCustomer returns the customer's open orders, oldest first.
func (r *GormOrderRepository) FindOpenByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
	created ports.DateRange,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	query := r.openOrders(ctx).Where("customer_id = ?", customerID.Bytes())
	if created.From != nil {
		query = query.Where("created_at >= ?", *created.From)
	}
	if created.To != nil {
		query = query.Where("created_at <= ?", *created.To)
	}

	var dtos []OrderDTO
	if err := query.Preload("Items", orderedItems).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("find open orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// FindCustomersWithOpenOrders lists customers having at least one open order.
func (r *GormOrderRepository) FindCustomersWithOpenOrders(ctx context.Context) ([]kernel.UUID, error) {
	var keys []uuid.UUID
	if err := r.openOrders(ctx).
		Distinct("customer_id").
		Order("customer_id").
		Pluck("customer_id", &keys).Error; err != nil {
		return nil, pgerr.Wrap("find customers with open orders", err)
	}

	customers := make([]kernel.UUID, 0, len(keys))
	for _, key := range keys {
		id, err := kernel.UUIDFromBytes(key[:])
		if err != nil {
			return nil, err
		}
		customers = append(customers, id)
	}

	return customers, nil
}

func (r *GormOrderRepository) openOrders(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("shipping_status <> ?", string(order.Completed)).
		Where("payment_status IN ?", paymentStatusValues(order.OpenPaymentStatuses()))
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func paymentStatusValues(statuses []order.PaymentStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}
