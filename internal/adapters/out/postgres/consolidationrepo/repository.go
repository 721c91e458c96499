package consolidationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConsolidationRepository implements ConsolidationRepository using GORM.
type GormConsolidationRepository struct {
	db *gorm.DB
}

var _ ports.ConsolidationRepository = (*GormConsolidationRepository)(nil)

// NewGormConsolidationRepository creates a consolidated order repository.
func NewGormConsolidationRepository(db *gorm.DB) *GormConsolidationRepository {
	return &GormConsolidationRepository{db: db}
}

// Add stores a new consolidated order with its snapshot.
func (r *GormConsolidationRepository) Add(ctx context.Context, aggregate *consolidation.ConsolidatedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add consolidated order", err)
	}
	return nil
}

// Update writes status, destination and the modification time. The snapshot is never rewritten.
func (r *GormConsolidationRepository) Update(ctx context.Context, aggregate *consolidation.ConsolidatedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ConsolidatedOrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":      dto.Status,
			"destination": dto.Destination,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return pgerr.Wrap("update consolidated order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consolidated order", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a consolidated order.
func (r *GormConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a consolidated order and locks its row.
func (r *GormConsolidationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormConsolidationRepository) get(
	ctx context.Context,
	db *gorm.DB,
	id kernel.UUID,
) (*consolidation.ConsolidatedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConsolidatedOrderDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consolidated order", id.String())
		}
		return nil, pgerr.Wrap("get consolidated order", err)
	}

	return toDomain(dto)
}
