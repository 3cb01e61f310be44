package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"urbankicks/business/checkout"
	"urbankicks/business/orders"
	"urbankicks/domain"

	"golang.org/x/sync/errgroup"
)

// StorefrontClient talks to the UrbanKicks API. It backs both the
// checkout form submission and the admin console views.
type StorefrontClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewStorefrontClient(baseURL string) *StorefrontClient {
	return &StorefrontClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches a session token to every subsequent request.
func (c *StorefrontClient) SetToken(token string) {
	c.token = token
}

func (c *StorefrontClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("api returned %d: %s", res.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("api returned %d", res.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func (c *StorefrontClient) Signup(ctx context.Context, email, username, password string) error {
	body := map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	}

	return c.do(ctx, http.MethodPost, "/signup", body, nil)
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

// Login establishes a session and remembers the token for later calls.
func (c *StorefrontClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &res); err != nil {
		return "", err
	}

	c.token = res.Token
	return res.Token, nil
}

// Logout revokes the session server-side and forgets the token.
func (c *StorefrontClient) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/logout", nil, nil); err != nil {
		return err
	}

	c.token = ""
	return nil
}

type placeOrderResponse struct {
	Message         string         `json:"message"`
	OrderID         string         `json:"orderId"`
	ShippingAddress domain.Address `json:"shippingAddress"`
	TotalPrice      float64        `json:"totalPrice"`
}

// PlaceOrder submits an assembled order. Implements checkout.OrderPlacer.
func (c *StorefrontClient) PlaceOrder(ctx context.Context, order domain.Order) (checkout.Confirmation, error) {
	var res placeOrderResponse
	if err := c.do(ctx, http.MethodPost, "/placeOrder", order, &res); err != nil {
		return checkout.Confirmation{}, err
	}

	return checkout.Confirmation{
		OrderID:         res.OrderID,
		ShippingAddress: res.ShippingAddress,
		Total:           res.TotalPrice,
	}, nil
}

type userOrdersResponse struct {
	Data []domain.Order `json:"data"`
}

// UserOrders fetches a customer's order history. The server wraps this
// listing in a data envelope, unlike the bare admin payloads.
func (c *StorefrontClient) UserOrders(ctx context.Context, email string) ([]domain.Order, error) {
	var res userOrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders/user/"+email, nil, &res); err != nil {
		return nil, err
	}

	return res.Data, nil
}

// Invoice downloads the invoice PDF for an order.
func (c *StorefrontClient) Invoice(ctx context.Context, orderID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/invoice/"+orderID, nil)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}

func (c *StorefrontClient) Stats(ctx context.Context) (orders.Stats, error) {
	var stats orders.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return orders.Stats{}, err
	}

	return stats, nil
}

func (c *StorefrontClient) WeeklySales(ctx context.Context) ([]orders.DailySales, error) {
	var sales []orders.DailySales
	if err := c.do(ctx, http.MethodGet, "/admin/sales/weekly", nil, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

// Dashboard fetches the KPI stats and the weekly sales series
// concurrently and waits for both before returning.
func (c *StorefrontClient) Dashboard(ctx context.Context) (orders.Stats, []orders.DailySales, error) {
	var (
		stats orders.Stats
		sales []orders.DailySales
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = c.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = c.WeeklySales(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return orders.Stats{}, nil, err
	}

	return stats, sales, nil
}

func (c *StorefrontClient) Orders(ctx context.Context) ([]domain.Order, error) {
	var list []domain.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

func (c *StorefrontClient) Order(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders/"+id, nil, &order); err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (c *StorefrontClient) UpdateOrderStatus(ctx context.Context, id, status string) (domain.Order, error) {
	body := map[string]string{"status": status}

	var order domain.Order
	if err := c.do(ctx, http.MethodPatch, "/admin/orders/"+id+"/status", body, &order); err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (c *StorefrontClient) Customers(ctx context.Context) ([]domain.User, error) {
	var customers []domain.User
	if err := c.do(ctx, http.MethodGet, "/admin/customers", nil, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// Lists fetches orders and customers concurrently, the way the console
// loads both tabs at once.
func (c *StorefrontClient) Lists(ctx context.Context) ([]domain.Order, []domain.User, error) {
	var (
		orderList []domain.Order
		customers []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orderList, err = c.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = c.Customers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return orderList, customers, nil
}

func (c *StorefrontClient) ToggleCustomerBlock(ctx context.Context, id uint) (bool, error) {
	var res struct {
		Blocked bool `json:"blocked"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/customers/%d/block", id), nil, &res); err != nil {
		return false, err
	}

	return res.Blocked, nil
}
