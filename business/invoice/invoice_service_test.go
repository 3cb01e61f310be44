package invoice

import (
	"context"
	"errors"
	"testing"
	"time"
	"urbankicks/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	findByIDFn func(ctx context.Context, id string) (domain.Order, error)
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (domain.Order, error) {
	return f.findByIDFn(ctx, id)
}

func sampleOrder() domain.Order {
	return domain.Order{
		ID: "4f9d2c1a-8b3e-4a6f-9c0d-1e2f3a4b5c6d",
		CustomerInfo: domain.CustomerInfo{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
		},
		ShippingAddress: domain.Address{
			Street:  "14 Lake View Rd",
			City:    "Pune",
			State:   "MH",
			Zip:     "411001",
			Country: "India",
		},
		Items: []domain.OrderItem{
			{ProductID: 1, Title: "Street Runner", Price: 650, Quantity: 2, Size: "10"},
			{ProductID: 2, Title: "Court Classic", Price: 480, Quantity: 1, Size: "9"},
		},
		ShippingMethod: "Standard",
		Totals: domain.Totals{
			Subtotal:     1780,
			ShippingCost: 50,
			Taxes:        142.4,
			Discount:     0,
			Total:        1972.4,
		},
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	repo := &fakeOrderRepo{
		findByIDFn: func(ctx context.Context, id string) (domain.Order, error) {
			return sampleOrder(), nil
		},
	}
	svc := NewInvoiceService(repo, t.TempDir())

	data, err := svc.Render(context.Background(), "4f9d2c1a-8b3e-4a6f-9c0d-1e2f3a4b5c6d")

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderUnknownOrder(t *testing.T) {
	repo := &fakeOrderRepo{
		findByIDFn: func(ctx context.Context, id string) (domain.Order, error) {
			return domain.Order{}, errors.New("order not found")
		},
	}
	svc := NewInvoiceService(repo, t.TempDir())

	data, err := svc.Render(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, data)
}

func TestRenderHandlesSparseOrder(t *testing.T) {
	repo := &fakeOrderRepo{
		findByIDFn: func(ctx context.Context, id string) (domain.Order, error) {
			return domain.Order{ID: id}, nil
		},
	}
	svc := NewInvoiceService(repo, t.TempDir())

	data, err := svc.Render(context.Background(), "bare")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
