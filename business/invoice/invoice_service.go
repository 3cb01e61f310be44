package invoice

import (
	"context"
	"os"
	"path/filepath"
	"urbankicks/domain"
	"urbankicks/pkg/logger"
)

// OrderRepository is the read side the renderer needs.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (domain.Order, error)
}

type InvoiceService struct {
	ordersRepo OrderRepository
	logoPath   string
}

func NewInvoiceService(ordersRepo OrderRepository, assetsDir string) *InvoiceService {
	return &InvoiceService{
		ordersRepo: ordersRepo,
		logoPath:   filepath.Join(assetsDir, "logo.png"),
	}
}

// Render looks up the order and produces the invoice PDF. No document
// is produced when the order does not exist.
func (s *InvoiceService) Render(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		logger.Error("Failed to load order for invoice", err)
		return nil, err
	}

	logo := s.logoPath
	if _, err := os.Stat(logo); err != nil {
		logo = ""
	}

	return renderPDF(order, logo)
}
