package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/studiopay/studio-pay-api/api/swagger"
	"github.com/studiopay/studio-pay-api/internal/handler"
	"github.com/studiopay/studio-pay-api/internal/middleware"
	"github.com/studiopay/studio-pay-api/internal/repository"
	"github.com/studiopay/studio-pay-api/internal/service"
	"github.com/studiopay/studio-pay-api/pkg/cache"
	"github.com/studiopay/studio-pay-api/pkg/config"
	"github.com/studiopay/studio-pay-api/pkg/database"
	"github.com/studiopay/studio-pay-api/pkg/logger"
	corsmiddleware "github.com/studiopay/studio-pay-api/pkg/middleware/cors"
	reqidmiddleware "github.com/studiopay/studio-pay-api/pkg/middleware/requestid"
)

// @title Studio Pay API
// @version 1.0.0
// @description Fitness-studio administration: disciplines, payroll periods, payment formulas and covers
// @BasePath /api/v1
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
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	disciplinaRepo := repository.NewDisciplinaRepository(db)
	periodoRepo := repository.NewPeriodoRepository(db)
	formulaRepo := repository.NewFormulaRepository(db)
	coverRepo := repository.NewCoverRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	disciplinaSvc := service.NewDisciplinaService(disciplinaRepo, cacheSvc, validate, logr)
	periodoSvc := service.NewPeriodoService(periodoRepo, formulaRepo, validate, logr)
	formulaSvc := service.NewFormulaService(formulaRepo, cacheSvc, validate, logr)
	coverSvc := service.NewCoverService(coverRepo, validate, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	disciplinaHandler := handler.NewDisciplinaHandler(disciplinaSvc)
	periodoHandler := handler.NewPeriodoHandler(periodoSvc)
	formulaHandler := handler.NewFormulaHandler(formulaSvc)
	coverHandler := handler.NewCoverHandler(coverSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	{
		protected.GET("/disciplinas", disciplinaHandler.List)
		protected.POST("/disciplinas", disciplinaHandler.Create)

		protected.GET("/periodos", periodoHandler.List)
		protected.POST("/periodos", periodoHandler.Create)
		if cfg.Exports.Enabled {
			protected.GET("/periodos/:id/export", periodoHandler.Export)
		}

		protected.GET("/formulas", formulaHandler.List)
		protected.POST("/formulas", formulaHandler.Create)
		protected.PUT("/formulas/:id", formulaHandler.Update)
		protected.DELETE("/formulas/:id", formulaHandler.Delete)

		protected.GET("/covers", coverHandler.List)
		protected.POST("/covers/enlazar", coverHandler.Enlazar)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
