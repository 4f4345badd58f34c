package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-publisher/internal/config"
	"blog-publisher/internal/handler"
	"blog-publisher/internal/infrastructure/database"
	"blog-publisher/internal/logger"
	"blog-publisher/internal/metrics"
	"blog-publisher/internal/middleware"
	"blog-publisher/internal/repository"
	"blog-publisher/internal/service"
	"blog-publisher/internal/storage"
	"blog-publisher/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	// Connect to database
	poolConfig := database.PoolConfig{
		Host:               cfg.DBHost,
		Port:               cfg.DBPort,
		User:               cfg.DBUser,
		Password:           cfg.DBPassword,
		Database:           cfg.DBName,
		SSLMode:            cfg.DBSSLMode,
		InsecureSkipVerify: cfg.DBInsecureSkipVerify,
		MaxConns:           cfg.DBMaxConns,
		MinConns:           cfg.DBMinConns,
		MaxConnLifetime:    cfg.DBMaxConnLifetime,
		MaxConnIdleTime:    cfg.DBMaxConnIdleTime,
		HealthCheckPeriod:  cfg.DBHealthCheckPeriod,
	}
	pool, err := database.NewPostgres(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Create or upgrade the schema. Failures are logged and the server keeps running;
	// /ready reports the missing tables.
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), time.Minute)
	if _, err := database.Bootstrap(bootstrapCtx, pool, poolConfig.URL(), database.BootstrapOptions{Reset: cfg.DBResetSchema}); err != nil {
		logger.Error("Schema bootstrap failed",
			slog.Bool("reset", cfg.DBResetSchema),
			slog.String("error", err.Error()))
	}
	cancelBootstrap()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(context.Background(), 15*time.Second)
	defer poolStatsCollector.Stop()

	// Initialize image storage
	images, err := storage.NewDiskImageStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		logger.Fatal("Failed to prepare image storage",
			slog.String("dir", cfg.UploadDir),
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, images, v)
	commentService := service.NewCommentService(commentRepo, v)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Security(cfg.HTTPSEnabled))
	router.Use(gin.Logger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.RegisterRoutes(router, handler.Handlers{
		Articles: handler.NewArticleHandler(articleService),
		Comments: handler.NewCommentHandler(commentService),
		Images:   handler.NewImageHandler(images),
		Health:   handler.NewHealthHandler(pool),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
