// Package productrepo reads live product data from the catalog tables. The
// catalog itself is written elsewhere; this adapter only resolves the fields
// needed to price cart lines and freeze order line snapshots.
package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/retry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure of catalog products. Only the
// columns this core reads are mapped; the catalog owner manages the rest.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	Price          int64     `gorm:"not null"`
	AvailableStock int       `gorm:"not null"`
	Image          string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProduct resolves a product by id.
func (c *GormProductCatalog) GetProduct(ctx context.Context, productID kernel.UUID) (*ports.Product, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := retry.Do(ctx, func() error {
		if dbErr := c.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error; dbErr != nil {
			if errors.Is(dbErr, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("product", productID.String())
			}
			return dbErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toProduct(dto)
}

func toProduct(dto ProductDTO) (*ports.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return &ports.Product{
		ID:             id,
		Name:           dto.Name,
		Price:          price,
		AvailableStock: dto.AvailableStock,
		Image:          dto.Image,
	}, nil
}
