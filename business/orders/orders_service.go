package orders

import (
	"context"
	"errors"
	"fmt"
	"time"
	"urbankicks/domain"
	"urbankicks/pkg/logger"

	"github.com/google/uuid"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (domain.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Order, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	FindCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error)
}

// ProductRepository is the slice of the catalog the order flow needs.
type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

type PromoRepository interface {
	CountActive(ctx context.Context) (int64, error)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

// PlacedOrder echoes back what the confirmation page needs.
type PlacedOrder struct {
	OrderID         string         `json:"orderId"`
	ShippingAddress domain.Address `json:"shippingAddress"`
	TotalPrice      float64        `json:"totalPrice"`
}

type Stats struct {
	OrdersToday   int64 `json:"ordersToday"`
	TotalProducts int64 `json:"totalProducts"`
	Customers     int64 `json:"customers"`
	CouponsActive int64 `json:"couponsActive"`
}

// DailySales is one bucket of the weekly sales series.
type DailySales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

const (
	SubjectOrderConfirmation   = "Your UrbanKicks order is confirmed!"
	EmailBodyOrderConfirmation = `Hi %v, thanks for shopping with us!</br></br>Order %v has been received and is being prepared. Total: %.2f`
)

type OrdersService struct {
	ordersRepo  OrdersRepository
	productRepo ProductRepository
	userRepo    UserRepository
	promoRepo   PromoRepository
	notifRepo   NotificationRepository
}

func NewOrdersService(
	ordersRepo OrdersRepository,
	productRepo ProductRepository,
	userRepo UserRepository,
	promoRepo PromoRepository,
	notifRepo NotificationRepository,
) *OrdersService {
	return &OrdersService{
		ordersRepo:  ordersRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		promoRepo:   promoRepo,
		notifRepo:   notifRepo,
	}
}

// CreateOrder persists the payload as-is apart from the fields the
// server owns: id, status and timestamps. Items and totals are fixed
// here for good; nothing recomputes them against live prices later.
func (s *OrdersService) CreateOrder(ctx context.Context, order domain.Order) (PlacedOrder, error) {
	now := time.Now()

	order.ID = uuid.NewString()
	order.Status = domain.StatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.ordersRepo.Create(ctx, &order); err != nil {
		logger.Error("Failed to persist order", err)
		return PlacedOrder{}, err
	}

	if s.notifRepo != nil && order.CustomerInfo.Email != "" {
		body := fmt.Sprintf(EmailBodyOrderConfirmation, order.CustomerInfo.FullName, order.ID, order.Totals.Total)
		if err := s.notifRepo.SendEmail(order.CustomerInfo.FullName, order.CustomerInfo.Email, SubjectOrderConfirmation, body); err != nil {
			logger.Warn("Failed to send order confirmation email", err)
		}
	}

	return PlacedOrder{
		OrderID:         order.ID,
		ShippingAddress: order.ShippingAddress,
		TotalPrice:      order.Totals.Total,
	}, nil
}

func (s *OrdersService) GetOrdersByCustomer(ctx context.Context, email string) ([]domain.Order, error) {
	return s.ordersRepo.FindByCustomerEmail(ctx, email)
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.ordersRepo.FindAll(ctx)
}

func (s *OrdersService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.ordersRepo.FindByID(ctx, id)
}

// UpdateStatus moves an order to one of the enumerated statuses. Any
// other value is rejected before the store is touched.
func (s *OrdersService) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	if !domain.IsValidStatus(status) {
		return domain.Order{}, errors.New("invalid status")
	}

	return s.ordersRepo.UpdateStatus(ctx, id, status)
}

// GetStats reports today's order count plus catalog, customer and
// active-coupon sizes. "Today" is the local calendar day.
func (s *OrdersService) GetStats(ctx context.Context) (Stats, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	ordersToday, err := s.ordersRepo.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return Stats{}, err
	}

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	customers, err := s.userRepo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	couponsActive, err := s.promoRepo.CountActive(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		OrdersToday:   ordersToday,
		TotalProducts: totalProducts,
		Customers:     customers,
		CouponsActive: couponsActive,
	}, nil
}

// GetWeeklySales sums order totals over the trailing 7 days including
// today, one bucket per day in chronological order.
func (s *OrdersService) GetWeeklySales(ctx context.Context) ([]DailySales, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -6)

	orders, err := s.ordersRepo.FindCreatedSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}

	return bucketWeekly(orders, now), nil
}

// bucketWeekly zero-fills exactly 7 buckets labeled by weekday
// abbreviation, from six days ago through today. Buckets are calendar
// days, so DST-shortened or -lengthened days stay in their own bucket.
func bucketWeekly(orders []domain.Order, now time.Time) []DailySales {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -6)

	series := make([]DailySales, 7)
	buckets := make(map[time.Time]int, 7)
	for i := range series {
		day := weekAgo.AddDate(0, 0, i)
		series[i] = DailySales{Name: day.Weekday().String()[:3]}
		buckets[day] = i
	}

	for _, order := range orders {
		created := order.CreatedAt.In(now.Location())
		day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, now.Location())
		if idx, ok := buckets[day]; ok {
			series[idx].Sales += order.Totals.Total
		}
	}

	return series
}
