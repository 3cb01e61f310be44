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

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AdminHandler struct {
		ordersService AdminOrdersService
		userService   UserService
		validate      *validator.Validate
		timeout       time.Duration
	}

	AdminOrdersService interface {
		GetAllOrders(ctx context.Context) ([]domain.Order, error)
		GetOrder(ctx context.Context, id string) (domain.Order, error)
		UpdateStatus(ctx context.Context, id, status string) (domain.Order, error)
		GetStats(ctx context.Context) (orders.Stats, error)
		GetWeeklySales(ctx context.Context) ([]orders.DailySales, error)
	}

	UpdateStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)

func NewAdminHandler(ordersService AdminOrdersService, userService UserService) *AdminHandler {
	return &AdminHandler{
		ordersService: ordersService,
		userService:   userService,
		validate:      validator.New(),
		timeout:       10 * time.Second,
	}
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.ordersService.GetStats(ctx)
	if err != nil {
		logger.Error("Failed to compute admin stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetWeeklySales(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sales, err := h.ordersService.GetWeeklySales(ctx)
	if err != nil {
		logger.Error("Failed to compute weekly sales", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, sales)
}

func (h *AdminHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	allOrders, err := h.ordersService.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, allOrders)
}

func (h *AdminHandler) GetOrderByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, id)
	if err != nil {
		logger.Error("Failed to get order by id", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order along the fulfillment pipeline. Only
// values from the status enumeration make it past the service.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate status update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		logger.Error("Failed to update order status", err)
		if strings.Contains(err.Error(), "invalid status") {
			metrics.StatusRejections.Inc()
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Invalid status"})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) GetCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.userService.GetAllCustomers(ctx)
	if err != nil {
		logger.Error("Failed to get customers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, customers)
}

// ToggleCustomerBlock flips the blocked flag and reports the new value.
func (h *AdminHandler) ToggleCustomerBlock(c echo.Context) error {
	id := c.Param("id")

	var customerID uint
	if _, err := fmt.Sscan(id, &customerID); err != nil {
		logger.Error("Invalid customer ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	blocked, err := h.userService.ToggleBlock(ctx, customerID)
	if err != nil {
		logger.Error("Failed to toggle customer block", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"blocked": blocked,
	})
}
