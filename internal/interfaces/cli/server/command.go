package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"simvia/internal/application/checkout"
	"simvia/internal/application/orders"
	"simvia/internal/application/storefront"
	"simvia/internal/infrastructure/cache"
	"simvia/internal/infrastructure/config"
	"simvia/internal/infrastructure/database"
	"simvia/internal/infrastructure/email"
	"simvia/internal/infrastructure/repository"
	httpRouter "simvia/internal/interfaces/http"
	"simvia/internal/shared/logger"
	"simvia/internal/shared/services/markdown"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the storefront HTTP server with the configured environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	db := database.Get()

	catalogCache := cache.NewCatalogCache(cfg.Redis, log)
	defer catalogCache.Close()

	var mailer email.Sender = email.NoopSender{}
	if cfg.Email.Enabled {
		mailer = email.NewSMTPSender(cfg.Email)
	}

	countryRepo := repository.NewCountryRepository(db, log)
	productRepo := repository.NewProductRepository(db, log)
	variantRepo := repository.NewVariantRepository(db, log)
	orderRepo := repository.NewOrderRepository(db, log)

	storefrontService := storefront.NewService(
		countryRepo, productRepo, variantRepo,
		catalogCache, markdown.NewService(), log)
	checkoutService := checkout.NewService(productRepo, variantRepo, orderRepo, mailer, log)
	orderService := orders.NewService(orderRepo, log)

	router := httpRouter.NewRouter(storefrontService, checkoutService, orderService, cfg.Server, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
