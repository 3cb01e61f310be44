package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"urbankicks/business/orders"
	"urbankicks/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Login successful",
			"token":   "token-abc",
			"user":    map[string]string{"email": body["email"], "username": "asha", "role": "customer"},
		})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	token, err := c.Login(context.Background(), "asha@example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, "token-abc", c.token)
}

func TestLogoutClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	c.SetToken("token-abc")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.token)
}

func TestPlaceOrderRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/placeOrder", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var order domain.Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		assert.Equal(t, "Pune", order.ShippingAddress.City)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":         "Order placed successfully",
			"orderId":         "abc-123",
			"shippingAddress": order.ShippingAddress,
			"totalPrice":      order.Totals.Total,
		})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	c.SetToken("token-abc")

	confirmation, err := c.PlaceOrder(context.Background(), domain.Order{
		ShippingAddress: domain.Address{Street: "14 Lake View Rd", City: "Pune", State: "MH", Zip: "411001", Country: "India"},
		Totals:          domain.Totals{Total: 1454},
	})

	require.NoError(t, err)
	assert.Equal(t, "abc-123", confirmation.OrderID)
	assert.Equal(t, "Pune", confirmation.ShippingAddress.City)
	assert.Equal(t, 1454.0, confirmation.Total)
}

func TestErrorResponsesSurfaceMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid status"})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	_, err := c.UpdateOrderStatus(context.Background(), "abc-123", "Archived")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid status")
	assert.Contains(t, err.Error(), "400")
}

func TestUserOrdersUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/user/asha@example.com", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "OK",
			"message": "success",
			"data": []domain.Order{
				{ID: "abc-123", Status: domain.StatusPending, Totals: domain.Totals{Total: 1454}},
				{ID: "def-456", Status: domain.StatusDelivered},
			},
		})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	history, err := c.UserOrders(context.Background(), "asha@example.com")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "abc-123", history[0].ID)
	assert.Equal(t, 1454.0, history[0].Totals.Total)
}

func TestUserOrdersEmptyHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"data":   []domain.Order{},
		})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	history, err := c.UserOrders(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestInvoiceDownload(t *testing.T) {
	pdf := []byte("%PDF-1.3 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/invoice/abc-123", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	data, err := c.Invoice(context.Background(), "abc-123")

	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestDashboardFetchesBothConcurrently(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/stats":
			json.NewEncoder(w).Encode(orders.Stats{OrdersToday: 12, TotalProducts: 240, Customers: 57, CouponsActive: 3})
		case "/admin/sales/weekly":
			json.NewEncoder(w).Encode([]orders.DailySales{
				{Name: "Sun"}, {Name: "Mon"}, {Name: "Tue"}, {Name: "Wed"},
				{Name: "Thu"}, {Name: "Fri"}, {Name: "Sat", Sales: 1454},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	stats, sales, err := c.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.OrdersToday)
	require.Len(t, sales, 7)
	assert.Equal(t, 1454.0, sales[6].Sales)
}

func TestDashboardPropagatesFirstError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/stats" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "Server error"})
			return
		}
		json.NewEncoder(w).Encode([]orders.DailySales{})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	_, _, err := c.Dashboard(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestListsFetchesOrdersAndCustomers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/orders":
			json.NewEncoder(w).Encode([]domain.Order{{ID: "abc-123"}})
		case "/admin/customers":
			json.NewEncoder(w).Encode([]domain.User{{ID: 1, Email: "a@example.com"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	orderList, customers, err := c.Lists(context.Background())

	require.NoError(t, err)
	require.Len(t, orderList, 1)
	require.Len(t, customers, 1)
	assert.Equal(t, "abc-123", orderList[0].ID)
}

func TestToggleCustomerBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/admin/customers/7/block", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"blocked": true})
	}))
	defer srv.Close()

	c := NewStorefrontClient(srv.URL)
	blocked, err := c.ToggleCustomerBlock(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, blocked)
}
