package postgres

import (
	"context"
	"urbankicks/domain"

	"gorm.io/gorm"
)

type PromoRepository struct {
	DB *gorm.DB
}

func NewPromoRepository(db *gorm.DB) *PromoRepository {
	return &PromoRepository{
		DB: db,
	}
}

func (r *PromoRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.PromoCode{}).
		Where("active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
