package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"urbankicks/app/echo-server/router"
	"urbankicks/business/invoice"
	"urbankicks/business/orders"
	userService "urbankicks/business/user"
	"urbankicks/internal/middleware"
	"urbankicks/internal/repository/notification"
	psqlRepo "urbankicks/internal/repository/postgres"
	redisRepo "urbankicks/internal/repository/redis"
	"urbankicks/internal/rest"
	"urbankicks/pkg/config"
	"urbankicks/pkg/database"
	redisdb "urbankicks/pkg/database/redis"
	"urbankicks/pkg/logger"
	"urbankicks/pkg/metrics"
	"urbankicks/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting UrbanKicks", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	orderRepo := psqlRepo.NewOrderRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	promoRepo := psqlRepo.NewPromoRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	usersService := userService.NewUserService(userRepo, validate, sessionRepo, cfg.Store.AdminEmail)
	ordersService := orders.NewOrdersService(orderRepo, productRepo, userRepo, promoRepo, mailjetEmail)
	invoiceService := invoice.NewInvoiceService(orderRepo, cfg.Store.AssetsDir)

	// Init handler
	authHandler := rest.NewAuthHandler(usersService)
	ordersHandler := rest.NewOrdersHandler(ordersService, invoiceService)
	adminHandler := rest.NewAdminHandler(ordersService, usersService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	authRequired := middleware.AuthMiddlewareWithSession(sessionRepo)
	router.SetupAuthRoutes(e, authHandler, authRequired)
	router.SetupOrderRoutes(e, ordersHandler)
	router.SetupAdminRoutes(e, adminHandler, authRequired)
	router.SetupStatic(e, cfg.Store.AssetsDir)
	router.SetupMetrics(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
