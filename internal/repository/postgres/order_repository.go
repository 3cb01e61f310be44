package postgres

import (
	"context"
	"errors"
	"time"
	"urbankicks/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, errors.New("order not found")
		}
		return domain.Order{}, err
	}

	return order, nil
}

// FindByCustomerEmail matches on the email inside the customer_info
// document. Result order is whatever the database returns.
func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).
		Where("customer_info ->> 'email' = ?", email).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return domain.Order{}, result.Error
	}

	if result.RowsAffected == 0 {
		return domain.Order{}, errors.New("order not found")
	}

	return r.FindByID(ctx, id)
}

// CountCreatedBetween counts orders in the half-open window
// [start, end).
func (r *OrderRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// FindCreatedSince returns orders created at or after the given time,
// used by the weekly sales aggregation.
func (r *OrderRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Where("created_at >= ?", since).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
