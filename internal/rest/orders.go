package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"urbankicks/business/orders"
	"urbankicks/domain"
	"urbankicks/pkg/logger"
	"urbankicks/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		ordersService  OrdersService
		invoiceService InvoiceService
		timeout        time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, order domain.Order) (orders.PlacedOrder, error)
		GetOrdersByCustomer(ctx context.Context, email string) ([]domain.Order, error)
	}

	InvoiceService interface {
		Render(ctx context.Context, orderID string) ([]byte, error)
	}
)

func NewOrdersHandler(ordersService OrdersService, invoiceService InvoiceService) *OrdersHandler {
	return &OrdersHandler{
		ordersService:  ordersService,
		invoiceService: invoiceService,
		timeout:        10 * time.Second,
	}
}

// PlaceOrder accepts the checkout payload. Field shapes were validated
// client-side; the server only stamps what it owns and persists.
func (h *OrdersHandler) PlaceOrder(c echo.Context) error {
	var order domain.Order

	if err := c.Bind(&order); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	placed, err := h.ordersService.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to place order", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to place order"})
	}

	metrics.OrdersPlaced.Inc()

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":         "Order placed successfully",
		"orderId":         placed.OrderID,
		"shippingAddress": placed.ShippingAddress,
		"totalPrice":      placed.TotalPrice,
	})
}

func (h *OrdersHandler) GetOrdersByUser(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	userOrders, err := h.ordersService.GetOrdersByCustomer(ctx, email)
	if err != nil {
		logger.Error("Failed to get orders by user", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(userOrders))
}

// GetInvoice streams the invoice PDF as a download.
func (h *OrdersHandler) GetInvoice(c echo.Context) error {
	orderID := c.Param("orderId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	pdfData, err := h.invoiceService.Render(ctx, orderID)
	if err != nil {
		logger.Error("Failed to generate invoice", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Error generating invoice"})
	}
	metrics.InvoiceRenderDuration.Observe(time.Since(start).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=invoice-%s.pdf", orderID))

	return c.Blob(http.StatusOK, "application/pdf", pdfData)
}
