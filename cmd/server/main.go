package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/chrisdev-ui/million-luxury-real-estate/internal/adapter/http"
	natsadapter "github.com/chrisdev-ui/million-luxury-real-estate/internal/adapter/messaging/nats"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/adapter/repository/cache"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/adapter/repository/mongodb"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/adapter/storage/s3"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/config"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/platform/logger"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	defer zapLogger.Sync()

	zapLogger.Info("Configuration loaded",
		zap.String("http_port", cfg.HTTP.Port),
		zap.String("mongo_database", cfg.Mongo.Database),
	)

	mongoClient, err := mongodb.NewMongoDBConnection(&cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zapLogger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	zapLogger.Info("Successfully connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		zapLogger.Fatal("Failed to create MongoDB indexes", zap.Error(err))
	}

	propertyRepo := mongodb.NewPropertyRepository(db)
	ownerRepo := mongodb.NewOwnerRepository(db)
	imageRepo := mongodb.NewImageRepository(db)
	traceRepo := mongodb.NewTraceRepository(db)

	redisClient, err := cache.NewRedisClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	propertyCache := cache.NewRedisCache(redisClient, zapLogger)

	publisher, err := natsadapter.NewNATSPublisher(&cfg.NATS, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	imageStorage, err := s3.NewImageStorage(&cfg.MinIO, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	propertyUC := usecase.NewPropertyUsecase(propertyRepo, ownerRepo, imageRepo, traceRepo, publisher, propertyCache, zapLogger)
	ownerUC := usecase.NewOwnerUsecase(ownerRepo, zapLogger)
	imageUC := usecase.NewImageUsecase(imageRepo, propertyRepo, imageStorage, zapLogger)
	traceUC := usecase.NewTraceUsecase(traceRepo, propertyRepo, zapLogger)

	propertyHandler := httpadapter.NewPropertyHandler(propertyUC, imageUC, traceUC, zapLogger)
	ownerHandler := httpadapter.NewOwnerHandler(ownerUC, zapLogger)
	router := httpadapter.NewRouter(propertyHandler, ownerHandler, zapLogger)

	server := httpadapter.NewServer(&cfg.HTTP, router, zapLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	case sig := <-quit:
		zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
