package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/sitetrack-api/api/v1"
	"github.com/sitetrack-api/config"
	"github.com/sitetrack-api/database"
	"github.com/sitetrack-api/logger"
	"github.com/sitetrack-api/metrics"
	"github.com/sitetrack-api/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.Initialize(cfg.Log.Level, cfg.Server.Env); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.GetLogger().Sync()

	database.Initialize(cfg.Database)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
	}))
	router.Use(middleware.RequestID())
	router.Use(logger.RequestLogger())

	httpMetrics := metrics.NewHTTPMetrics("sitetrack-api")
	router.Use(httpMetrics.Middleware())
	router.GET("/metrics", metrics.Handler())

	router.GET("/", v1.HealthCheck)
	router.Static("/uploads", cfg.Storage.UploadDir)

	api := router.Group("/api")
	v1.RegisterRoutes(api, cfg)

	zap.L().Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zap.L().Fatal("Server failed", zap.Error(err))
	}
}
