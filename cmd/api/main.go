package main

// @title FloorPlan Microservice API
// @version 1.0.0
// @description Микросервис для работы с результатами 3D-сканирования помещений. Принимает набор отсканированных поверхностей (стены, двери, окна, проёмы, объекты), проецирует их в 2D модель плана и экспортирует её в векторные форматы.
// @description
// @description Основные возможности:
// @description - Построение 2D модели плана из отсканированных поверхностей
// @description - Экспорт плана в SVG и DXF с размерными линиями
// @description - Сохранение помещений и повторный экспорт без пересканирования
// @description - Фильтрация сохранённых помещений по категориям объектов
// @description - Статистика по сохранённым помещениям

// @contact.name API Support
// @contact.email support@floorplan-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/floorplan-microservice/docs/swagger"
	"github.com/floorplan-microservice/internal/config"
	httpDelivery "github.com/floorplan-microservice/internal/delivery/http"
	"github.com/floorplan-microservice/internal/delivery/http/handler"
	"github.com/floorplan-microservice/internal/pkg/logger"
	"github.com/floorplan-microservice/internal/repository/cache"
	"github.com/floorplan-microservice/internal/repository/postgres"
	"github.com/floorplan-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting FloorPlan Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	roomRepo := postgres.NewRoomRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	floorPlanUC := usecase.NewFloorPlanUseCase(log)

	roomUC := usecase.NewRoomUseCase(
		roomRepo,
		cacheRepo,
		log,
		cfg.Cache.ExportCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		roomRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	floorPlanHandler := handler.NewFloorPlanHandler(floorPlanUC, log)
	roomHandler := handler.NewRoomHandler(roomUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		floorPlanHandler,
		roomHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
