package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/api/swagger"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/handler"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/middleware"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/repository"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/service"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/cache"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/config"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/database"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/logger"
	corsmiddleware "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/middleware/cors"
	reqidmiddleware "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/middleware/requestid"
)

const version = "1.0.0"

// @title PawPal User Service
// @version 1.0.0
// @description User and dog profiles for the PawPal dog-walking platform
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Stats.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, stats caching disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	defer cacheRepo.Close()

	metricsSvc := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	dogRepo := repository.NewDogRepository(db)

	userSvc := service.NewUserService(userRepo, cacheRepo, cfg.Stats.CacheTTL, metricsSvc, nil, logr)
	dogSvc := service.NewDogService(dogRepo, userRepo, cacheRepo, cfg.Stats.CacheTTL, metricsSvc, nil, logr)

	userHandler := handler.NewUserHandler(userSvc)
	dogHandler := handler.NewDogHandler(dogSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	healthHandler := handler.NewHealthHandler(db, version)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Timeout(cfg.Database.QueryTimeout))

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler.Handle)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	userHandler.RegisterRoutes(api.Group("/users"))
	dogHandler.RegisterRoutes(api.Group("/dogs"))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown incomplete", "error", err)
	}
}
