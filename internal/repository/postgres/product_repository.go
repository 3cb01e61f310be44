package postgres

import (
	"context"
	"urbankicks/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

// Count backs the catalog-size KPI on the admin dashboard. Catalog
// browsing itself is served elsewhere; checkout carries item snapshots.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
