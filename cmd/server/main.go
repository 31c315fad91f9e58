package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecoaction/ecopoints-backend/internal/cart"
	"github.com/ecoaction/ecopoints-backend/internal/config"
	"github.com/ecoaction/ecopoints-backend/internal/handlers"
	"github.com/ecoaction/ecopoints-backend/internal/ledger"
	"github.com/ecoaction/ecopoints-backend/internal/middleware"
	"github.com/ecoaction/ecopoints-backend/internal/orders"
	"github.com/ecoaction/ecopoints-backend/internal/repository"
	"github.com/ecoaction/ecopoints-backend/internal/service"
	"github.com/ecoaction/ecopoints-backend/internal/storage"
	"github.com/ecoaction/ecopoints-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting eco points api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Select the persistence backend
	var store storage.Store
	if cfg.Redis.Addr != "" {
		redisStore := storage.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisStore.Ping(context.Background()); err != nil {
			log.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
		log.Info("using redis store", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	} else {
		store = storage.NewMemoryStore()
		log.Info("using in-memory store")
	}

	// Initialize repositories and core state
	productRepo := repository.NewInMemoryProductRepository()
	pointsLedger := ledger.New(store)
	orderHistory := orders.NewHistory(store)
	shopCart := cart.New()

	// Initialize services
	productService := service.NewProductService(productRepo)
	checkoutService := service.NewCheckoutService(shopCart, pointsLedger, orderHistory)
	actionService := service.NewActionService(pointsLedger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	balanceHandler := handlers.NewBalanceHandler(pointsLedger, log)
	cartHandler := handlers.NewCartHandler(shopCart, productService, log)
	orderHandler := handlers.NewOrderHandler(checkoutService, orderHistory, log)
	actionHandler := handlers.NewActionHandler(actionService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)

		// Balance endpoint
		r.Get("/balance", balanceHandler.GetBalance)

		// Cart endpoints
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

		// Order endpoints; checkout requires an API key
		r.Get("/order", orderHandler.ListOrders)
		r.With(middleware.APIKeyAuth(cfg.Auth)).Post("/order", orderHandler.CreateOrder)

		// Eco-action endpoints
		r.Route("/action", func(r chi.Router) {
			r.Get("/steps", actionHandler.ListSteps)
			r.Post("/steps/{stepId}/complete", actionHandler.CompleteStep)
			r.Post("/photos", actionHandler.UploadPhoto)
			r.Get("/rewards", actionHandler.ListRewards)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
