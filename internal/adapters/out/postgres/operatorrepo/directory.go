// Package operatorrepo resolves operator identifiers to display names from the
// operators table.
package operatorrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OperatorDTO is one operator row.
type OperatorDTO struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255);not null"`
}

// TableName specifies the operators table.
func (OperatorDTO) TableName() string {
	return "operators"
}

// GormDirectory implements the operator Directory using GORM.
type GormDirectory struct {
	db *gorm.DB
}

var _ ports.Directory = (*GormDirectory)(nil)

// NewGormDirectory creates an operator directory.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// GetDisplayName returns the operator's display name.
func (d *GormDirectory) GetDisplayName(ctx context.Context, operatorID kernel.UUID) (string, error) {
	if err := operatorID.Validate(); err != nil {
		return "", err
	}

	var dto OperatorDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", operatorID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("operator", operatorID.String())
		}
		return "", pgerr.Wrap("get operator", err)
	}

	return dto.DisplayName, nil
}

// Save creates or renames an operator.
func (d *GormDirectory) Save(ctx context.Context, operatorID kernel.UUID, displayName string) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return errs.NewValueIsRequiredError("display name")
	}

	dto := OperatorDTO{ID: operatorID.Bytes(), DisplayName: displayName}
	if err := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name"}),
		}).
		Create(&dto).Error; err != nil {
		return pgerr.Wrap("save operator", err)
	}
	return nil
}
