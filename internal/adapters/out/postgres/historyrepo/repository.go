package historyrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
// Rows are only ever inserted.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

var _ ports.StatusHistoryRepository = (*GormStatusHistoryRepository)(nil)

// NewGormStatusHistoryRepository creates a ledger repository.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Add appends one ledger row.
func (r *GormStatusHistoryRepository) Add(ctx context.Context, change *history.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := fromDomain(change)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add status change", err)
	}
	return nil
}

// ListByOrder returns the most recent rows first. Rows written in the same instant
// keep a stable order through the identifier tie-break.
func (r *GormStatusHistoryRepository) ListByOrder(
	ctx context.Context,
	orderID kernel.UUID,
	limit int,
) ([]*history.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []StatusChangeDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("list status history", err)
	}

	changes := make([]*history.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}
