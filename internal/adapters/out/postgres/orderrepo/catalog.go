package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalog answers product and seller lookups from the line item snapshot taken at
// checkout.
type GormCatalog struct {
	db *gorm.DB
}

var _ ports.Catalog = (*GormCatalog)(nil)

// NewGormCatalog creates a catalog over the line_items table.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetLineItem returns the product, seller and unit price recorded for a line item.
func (c *GormCatalog) GetLineItem(ctx context.Context, lineItemID kernel.UUID) (ports.CatalogItem, error) {
	if err := lineItemID.Validate(); err != nil {
		return ports.CatalogItem{}, err
	}

	var dto LineItemDTO
	if err := c.db.WithContext(ctx).
		Select("id", "product_ref", "seller_ref", "unit_price", "currency").
		First(&dto, "id = ?", lineItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogItem{}, errs.NewObjectNotFoundError("line item", lineItemID.String())
		}
		return ports.CatalogItem{}, pgerr.Wrap("get catalog item", err)
	}

	return toCatalogItem(dto)
}

// GetLineItems returns the known items among lineItemIDs, keyed by identifier.
func (c *GormCatalog) GetLineItems(ctx context.Context, lineItemIDs []kernel.UUID) (map[kernel.UUID]ports.CatalogItem, error) {
	items := make(map[kernel.UUID]ports.CatalogItem, len(lineItemIDs))
	if len(lineItemIDs) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, 0, len(lineItemIDs))
	for _, id := range lineItemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []LineItemDTO
	if err := c.db.WithContext(ctx).
		Select("id", "product_ref", "seller_ref", "unit_price", "currency").
		Where("id IN ?", ids).
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("list catalog items", err)
	}

	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		item, err := toCatalogItem(dto)
		if err != nil {
			return nil, err
		}
		items[id] = item
	}
	return items, nil
}

func toCatalogItem(dto LineItemDTO) (ports.CatalogItem, error) {
	price, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return ports.CatalogItem{}, err
	}

	return ports.CatalogItem{
		ProductRef: dto.ProductRef,
		SellerRef:  dto.SellerRef,
		UnitPrice:  price,
	}, nil
}
