package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rescue365/rescue_dispatch_system/internal/config"
	v1 "github.com/rescue365/rescue_dispatch_system/internal/handler/http/v1"
	"github.com/rescue365/rescue_dispatch_system/internal/paypal"
	"github.com/rescue365/rescue_dispatch_system/internal/push"
	"github.com/rescue365/rescue_dispatch_system/internal/repository"
	"github.com/rescue365/rescue_dispatch_system/internal/service"
	"github.com/rescue365/rescue_dispatch_system/pkg/logger"
	"github.com/rescue365/rescue_dispatch_system/pkg/postgres"
	redisclient "github.com/rescue365/rescue_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/rescue365/rescue_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Rescue Dispatch System API
// @version 1.0
// @description Rescue report lifecycle and proximity dispatch API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Repositories
	reportRepo := repository.NewReportRepository(dbpool, redisClient)
	profileRepo := repository.NewProfileRepository(dbpool)

	// Push queue: publisher feeds the Redis list, the worker drains it and
	// delivers to the push gateway
	pushPublisher := push.NewRedisPublisher(redisClient)
	pushWorker := push.NewWorker(redisClient, profileRepo, log, cfg)
	pushWorker.Start(ctx)

	// Services
	vetVerifier := service.NewCredentialVetVerifier(profileRepo, cfg.VetOverrideEmails)
	reportService := service.NewReportService(reportRepo, vetVerifier, pushPublisher, log)
	profileService := service.NewProfileService(profileRepo, log)

	// Payment relay
	paymentClient := paypal.NewClient(cfg, log)

	// Handlers
	handler := v1.NewHandler(reportService, profileService, paymentClient, log, cfg)

	// Gin router
	router := gin.Default()

	api := router.Group("/api/v1")
	handler.RegisterSystemRoutes(api)
	api.Use(v1.APIKeyAuthMiddleware(cfg, log), v1.IdentityMiddleware(log))
	handler.RegisterRoutes(api)

	// Payment relay endpoints stay at the root, per the client contract
	handler.RegisterPaymentRoutes(router)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
