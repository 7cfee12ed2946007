package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfront/internal/cart"
	"shopfront/internal/config"
	"shopfront/internal/database"
	"shopfront/internal/directory"
	"shopfront/internal/handler"
	"shopfront/internal/payment"
	"shopfront/internal/repository"
	"shopfront/internal/router"
	"shopfront/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shopfront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize directory loader with S3 and local fallback
	fileLoader := directory.NewFileLoader(logger)
	var directoryLoader directory.Loader

	if cfg.Directory.S3Enabled {
		s3Loader, err := directory.NewS3Loader(ctx, cfg.Directory.S3Bucket, cfg.Directory.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			directoryLoader = fileLoader
		} else {
			directoryLoader = s3Loader
		}
	} else {
		directoryLoader = fileLoader
		logger.Info().Msg("using local file system for business listings (S3 disabled)")
	}

	// Build the in-memory business index
	index, err := directory.NewIndex(ctx, cfg.Directory.FixturePath, directoryLoader, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize business directory: %w", err)
	}

	// Initialize the cart store and payment gateway
	store := cart.NewStore(logger)
	gateway := payment.NewSimulatedGateway(time.Duration(cfg.Payment.LatencyMS)*time.Millisecond, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	directoryService := service.NewDirectoryService(index, logger)
	cartService := service.NewCartService(store, productRepo, logger)
	checkoutService := service.NewCheckoutService(store, productRepo, orderRepo, gateway, cfg.Payment.Currency, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	businessHandler := handler.NewBusinessHandler(directoryService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)

	// Initialize router
	mux := router.New(productHandler, businessHandler, cartHandler, checkoutHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
