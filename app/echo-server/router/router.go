package router

import (
	"urbankicks/internal/middleware"
	"urbankicks/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupAuthRoutes(e *echo.Echo, handler *rest.AuthHandler, authRequired echo.MiddlewareFunc) {
	e.POST("/signup", handler.Signup)
	e.POST("/login", handler.Login)
	e.POST("/logout", handler.Logout, authRequired)
}

func SetupOrderRoutes(e *echo.Echo, handler *rest.OrdersHandler) {
	e.POST("/placeOrder", handler.PlaceOrder)
	e.GET("/orders/user/:email", handler.GetOrdersByUser)
	e.GET("/orders/invoice/:orderId", handler.GetInvoice)
}

// SetupAdminRoutes gates the console behind the session token's role
// claim.
func SetupAdminRoutes(e *echo.Echo, handler *rest.AdminHandler, authRequired echo.MiddlewareFunc) {
	admin := e.Group("/admin", authRequired, middleware.AdminOnly())

	admin.GET("/stats", handler.GetStats)
	admin.GET("/sales/weekly", handler.GetWeeklySales)
	admin.GET("/orders", handler.GetAllOrders)
	admin.GET("/orders/:id", handler.GetOrderByID)
	admin.PATCH("/orders/:id/status", handler.UpdateOrderStatus)
	admin.GET("/customers", handler.GetCustomers)
	admin.PATCH("/customers/:id/block", handler.ToggleCustomerBlock)
}

func SetupStatic(e *echo.Echo, assetsDir string) {
	e.Static("/assets", assetsDir)
}

func SetupMetrics(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
